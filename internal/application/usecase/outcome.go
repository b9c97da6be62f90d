package usecase

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Outcome classifies what a layout mutation did.
type Outcome string

const (
	// OutcomeApplied means the tree was mutated (possibly a no-op cleanup).
	OutcomeApplied Outcome = "applied"
	// OutcomeNotFound means a referenced pane or stack no longer exists.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeRejected means the request was structurally invalid.
	OutcomeRejected Outcome = "rejected"
	// OutcomeIgnored means there was nothing to do.
	OutcomeIgnored Outcome = "ignored"
)

// MutationOutput is the common result of layout mutations. Stale references
// and invalid requests are reported through Outcome, not as errors, since the
// UI may legitimately race ahead of the tree.
type MutationOutput struct {
	Outcome Outcome
	// Changed reports whether the tree differs from before the call.
	Changed bool
	// NewStackID is set when the mutation created a stack.
	NewStackID entity.NodeID
	// Reason carries the rejection or not-found message.
	Reason string
}

// Applied reports whether the mutation went through.
func (o *MutationOutput) Applied() bool {
	return o != nil && o.Outcome == OutcomeApplied
}

func applied(changed bool) *MutationOutput {
	return &MutationOutput{Outcome: OutcomeApplied, Changed: changed}
}

func ignored(reason string) *MutationOutput {
	return &MutationOutput{Outcome: OutcomeIgnored, Reason: reason}
}

// outcomeFromError turns domain sentinel errors into a benign outcome.
// Any other error is returned unchanged.
func outcomeFromError(ctx context.Context, op string, err error) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		log.Debug().Str("op", op).Err(err).Msg("stale reference, nothing to do")
		return &MutationOutput{Outcome: OutcomeNotFound, Reason: err.Error()}, nil
	case errors.Is(err, entity.ErrInvalidOperation):
		log.Debug().Str("op", op).Err(err).Msg("operation rejected")
		return &MutationOutput{Outcome: OutcomeRejected, Reason: err.Error()}, nil
	default:
		return nil, err
	}
}
