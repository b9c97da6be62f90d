package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a pane or stack id is not in the layout.
	// Callers treat it as a benign no-op: the UI may hold a stale reference.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation is returned for operations that are rejected
	// without touching the layout (moving onto itself, center stack drops).
	ErrInvalidOperation = errors.New("invalid operation")
)

// StructuralViolation reports a malformed tree handed in from outside.
// It is raised with panic: the operation cannot continue without risking
// further corruption.
type StructuralViolation struct {
	Node   any
	Reason string
}

func (v *StructuralViolation) Error() string {
	return fmt.Sprintf("structural violation: %s (node %T)", v.Reason, v.Node)
}

// NewStructuralViolation builds the value panicked with when a type switch
// over DockNode meets a variant it does not know.
func NewStructuralViolation(node any, reason string) *StructuralViolation {
	return &StructuralViolation{Node: node, Reason: reason}
}

func unknownNode(node DockNode) *StructuralViolation {
	return NewStructuralViolation(node, "unknown dock node variant")
}
