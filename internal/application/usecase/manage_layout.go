package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrLayoutRequired is returned when a use case is called without a layout.
var ErrLayoutRequired = errors.New("layout is required")

// ManageLayoutUseCase handles structural operations on the stack tree.
type ManageLayoutUseCase struct {
	newID entity.IDGenerator
}

// NewManageLayoutUseCase creates a new layout management use case.
func NewManageLayoutUseCase(newID entity.IDGenerator) *ManageLayoutUseCase {
	return &ManageLayoutUseCase{newID: newID}
}

// SplitInput contains parameters for splitting a stack.
type SplitInput struct {
	Layout        *entity.DockLayout
	TargetStackID entity.NodeID
	Pane          *entity.DockPane
	Zone          entity.DropZone
}

// Split places a pane in a new stack next to the target stack.
func (uc *ManageLayoutUseCase) Split(ctx context.Context, input SplitInput) (*MutationOutput, error) {
	ctx = logging.WithStackID(ctx, string(input.TargetStackID))
	log := logging.FromContext(ctx)
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	log.Debug().
		Str("zone", string(input.Zone)).
		Msg("splitting stack")

	stack, err := service.SplitStack(input.Layout, input.TargetStackID, input.Pane, input.Zone, uc.newID)
	if err != nil {
		return outcomeFromError(ctx, "split", err)
	}

	log.Info().
		Str("new_stack_id", string(stack.ID)).
		Str("pane_id", string(input.Pane.ID)).
		Msg("stack split")

	out := applied(true)
	out.NewStackID = stack.ID
	return out, nil
}

// MovePaneInput contains parameters for relocating one pane.
type MovePaneInput struct {
	Layout *entity.DockLayout
	PaneID entity.NodeID
	// SourceStackID, when set, must still hold the pane. A mismatch means
	// the caller's view is stale and the move is reported as not found.
	SourceStackID entity.NodeID
	TargetStackID entity.NodeID
	Zone          entity.DropZone
}

// MovePane moves a pane into another stack (center) or into a new stack
// split off the target.
func (uc *ManageLayoutUseCase) MovePane(ctx context.Context, input MovePaneInput) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	log.Debug().
		Str("pane_id", string(input.PaneID)).
		Str("target_id", string(input.TargetStackID)).
		Str("zone", string(input.Zone)).
		Msg("moving pane")

	if input.SourceStackID != "" {
		if _, source := input.Layout.FindPane(input.PaneID); source == nil || source.ID != input.SourceStackID {
			err := fmt.Errorf("pane %s in stack %s: %w", input.PaneID, input.SourceStackID, entity.ErrNotFound)
			return outcomeFromError(ctx, "move_pane", err)
		}
	}

	res, err := service.MovePane(input.Layout, input.PaneID, input.TargetStackID, input.Zone, uc.newID)
	if err != nil {
		return outcomeFromError(ctx, "move_pane", err)
	}

	out := applied(true)
	if res.NewStack != nil {
		out.NewStackID = res.NewStack.ID
	}
	log.Info().
		Str("pane_id", string(input.PaneID)).
		Str("target_id", string(input.TargetStackID)).
		Str("zone", string(input.Zone)).
		Bool("cleaned", res.Cleaned).
		Msg("pane moved")
	return out, nil
}

// MoveStackInput contains parameters for relocating a whole stack.
type MoveStackInput struct {
	Layout        *entity.DockLayout
	SourceStackID entity.NodeID
	TargetStackID entity.NodeID
	Zone          entity.DropZone
}

// MoveStack docks a stack to an edge of another stack.
func (uc *ManageLayoutUseCase) MoveStack(ctx context.Context, input MoveStackInput) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	log.Debug().
		Str("stack_id", string(input.SourceStackID)).
		Str("target_id", string(input.TargetStackID)).
		Str("zone", string(input.Zone)).
		Msg("moving stack")

	if err := service.MoveStack(input.Layout, input.SourceStackID, input.TargetStackID, input.Zone, uc.newID); err != nil {
		return outcomeFromError(ctx, "move_stack", err)
	}

	log.Info().
		Str("stack_id", string(input.SourceStackID)).
		Str("target_id", string(input.TargetStackID)).
		Msg("stack moved")
	return applied(true), nil
}

// Cleanup runs the cleanup pass on demand.
func (uc *ManageLayoutUseCase) Cleanup(ctx context.Context, layout *entity.DockLayout) (*MutationOutput, error) {
	if layout == nil {
		return nil, ErrLayoutRequired
	}
	changed := service.Cleanup(layout)
	logging.FromContext(ctx).Debug().Bool("changed", changed).Msg("cleanup pass")
	return applied(changed), nil
}

// SetWeightsInput contains parameters for resizing the children of a box.
type SetWeightsInput struct {
	Layout  *entity.DockLayout
	BoxID   entity.NodeID
	Weights []float64
}

// SetWeights replaces the weights of a box's children, typically after the
// renderer finished a divider drag.
func (uc *ManageLayoutUseCase) SetWeights(ctx context.Context, input SetWeightsInput) (*MutationOutput, error) {
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	if err := service.SetWeights(input.Layout, input.BoxID, input.Weights); err != nil {
		return outcomeFromError(ctx, "set_weights", err)
	}
	logging.FromContext(ctx).Debug().
		Str("box_id", string(input.BoxID)).
		Floats64("weights", input.Weights).
		Msg("weights updated")
	return applied(true), nil
}

// FocusNeighborInput contains parameters for geometric focus navigation.
type FocusNeighborInput struct {
	Layout        *entity.DockLayout
	ActiveStackID entity.NodeID
	Direction     service.NavigateDirection
	// Width and Height are the bounds the layout is arranged in.
	Width  int
	Height int
}

// FocusNeighborOutput contains the stack focus should move to.
type FocusNeighborOutput struct {
	StackID entity.NodeID
	Found   bool
}

// FocusNeighbor finds the stack adjacent to the active one in the given
// direction, using the arranged stack rectangles.
func (uc *ManageLayoutUseCase) FocusNeighbor(ctx context.Context, input FocusNeighborInput) (*FocusNeighborOutput, error) {
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	rects := service.ArrangeStacks(input.Layout, input.Width, input.Height)
	id, ok := service.NeighborStack(rects, input.ActiveStackID, input.Direction)

	logging.FromContext(ctx).Debug().
		Str("from", string(input.ActiveStackID)).
		Str("direction", string(input.Direction)).
		Str("to", string(id)).
		Bool("found", ok).
		Msg("focus navigation")
	return &FocusNeighborOutput{StackID: id, Found: ok}, nil
}
