package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrDragInProgress is returned when a drag starts while another is active.
var ErrDragInProgress = errors.New("a drag is already in progress")

// DragDropUseCase drives a drag session from start to drop. The session
// value itself is owned by the caller and passed into every call.
type DragDropUseCase struct {
	layouts   *ManageLayoutUseCase
	threshold float64
}

// NewDragDropUseCase creates a drag-and-drop use case. A threshold outside
// (0, 0.5) falls back to entity.DefaultEdgeThreshold.
func NewDragDropUseCase(layouts *ManageLayoutUseCase, threshold float64) *DragDropUseCase {
	if threshold <= 0 || threshold >= 0.5 {
		threshold = entity.DefaultEdgeThreshold
	}
	return &DragDropUseCase{layouts: layouts, threshold: threshold}
}

// Threshold returns the edge band used for zone classification.
func (uc *DragDropUseCase) Threshold() float64 {
	return uc.threshold
}

// BeginPaneDrag starts dragging a tab out of its stack.
func (uc *DragDropUseCase) BeginPaneDrag(
	ctx context.Context,
	current *entity.DragSession,
	layout *entity.DockLayout,
	paneID entity.NodeID,
) (*entity.DragSession, error) {
	if current.Active() {
		return current, ErrDragInProgress
	}
	if layout == nil {
		return nil, ErrLayoutRequired
	}
	_, source := layout.FindPane(paneID)
	if source == nil {
		return nil, fmt.Errorf("pane %s: %w", paneID, entity.ErrNotFound)
	}
	logging.FromContext(ctx).Debug().
		Str("pane_id", string(paneID)).
		Str("source_id", string(source.ID)).
		Msg("pane drag started")
	return entity.NewPaneDrag(paneID, source.ID), nil
}

// BeginStackDrag starts dragging a whole stack by its header.
func (uc *DragDropUseCase) BeginStackDrag(
	ctx context.Context,
	current *entity.DragSession,
	layout *entity.DockLayout,
	stackID entity.NodeID,
) (*entity.DragSession, error) {
	if current.Active() {
		return current, ErrDragInProgress
	}
	if layout == nil {
		return nil, ErrLayoutRequired
	}
	if layout.FindStack(stackID) == nil {
		return nil, fmt.Errorf("stack %s: %w", stackID, entity.ErrNotFound)
	}
	logging.FromContext(ctx).Debug().Str("stack_id", string(stackID)).Msg("stack drag started")
	return entity.NewStackDrag(stackID), nil
}

// DragOverInput describes the pointer over a candidate target stack.
type DragOverInput struct {
	StackID entity.NodeID
	// Rect is the target's on-screen rectangle.
	Rect entity.Rect
	// X and Y are absolute pointer coordinates.
	X, Y float64
}

// DragOver classifies the pointer against the target and records the hover
// target on the session. Returns nil when no drag is active.
func (uc *DragDropUseCase) DragOver(session *entity.DragSession, input DragOverInput) *entity.DropTarget {
	if !session.Active() {
		return nil
	}
	zone := entity.ClassifyZone(input.Rect, input.X, input.Y, uc.threshold)
	session.Target = &entity.DropTarget{
		StackID:   input.StackID,
		Zone:      zone,
		Indicator: entity.IndicatorRect(input.Rect, zone),
	}
	return session.Target
}

// DragOverPoint hit-tests the pointer against arranged stack rectangles and
// updates the hover target. Leaving every stack clears it.
func (uc *DragDropUseCase) DragOverPoint(session *entity.DragSession, rects []entity.StackRect, x, y float64) *entity.DropTarget {
	hit, ok := service.HitTest(rects, x, y)
	if !ok {
		uc.Leave(session)
		return nil
	}
	return uc.DragOver(session, DragOverInput{StackID: hit.StackID, Rect: hit.Rect, X: x, Y: y})
}

// Leave clears the hover target without ending the drag.
func (uc *DragDropUseCase) Leave(session *entity.DragSession) {
	if session != nil {
		session.Target = nil
	}
}

// Cancel ends the drag without touching the layout. The returned session is
// always idle.
func (uc *DragDropUseCase) Cancel(ctx context.Context, session *entity.DragSession) *entity.DragSession {
	if session.Active() {
		logging.FromContext(ctx).Debug().Str("state", session.State()).Msg("drag cancelled")
		session.Target = nil
	}
	return nil
}

// Drop resolves the drag against its current hover target. The session is
// always over afterwards; callers reset it to nil.
func (uc *DragDropUseCase) Drop(ctx context.Context, session *entity.DragSession, layout *entity.DockLayout) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if !session.Active() {
		return ignored("no drag in progress"), nil
	}
	target := session.Target
	session.Target = nil
	if target == nil {
		log.Debug().Str("state", session.State()).Msg("drop outside any stack")
		return ignored("no drop target"), nil
	}

	switch session.Kind {
	case entity.DragStack:
		if target.Zone == entity.ZoneCenter {
			log.Debug().Str("stack_id", string(session.SourceStackID)).Msg("stack dropped on center, ignoring")
			return ignored("stacks cannot be tabbed into another stack"), nil
		}
		return uc.layouts.MoveStack(ctx, MoveStackInput{
			Layout:        layout,
			SourceStackID: session.SourceStackID,
			TargetStackID: target.StackID,
			Zone:          target.Zone,
		})
	case entity.DragPane:
		return uc.layouts.MovePane(ctx, MovePaneInput{
			Layout:        layout,
			PaneID:        session.PaneID,
			SourceStackID: session.SourceStackID,
			TargetStackID: target.StackID,
			Zone:          target.Zone,
		})
	default:
		return nil, fmt.Errorf("unknown drag kind %q", session.Kind)
	}
}
