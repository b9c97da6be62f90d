package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultLayoutUseCase builds the layout used when nothing is stored: one
// stack with the configured content, plus the side panels marked visible.
type DefaultLayoutUseCase struct {
	panes      *ManagePanesUseCase
	newID      entity.IDGenerator
	contentIDs []string
	visible    []entity.NodeID
}

// NewDefaultLayoutUseCase creates a default layout builder. visible lists the
// side panels shown on start.
func NewDefaultLayoutUseCase(
	panes *ManagePanesUseCase,
	newID entity.IDGenerator,
	contentIDs []string,
	visible []entity.NodeID,
) *DefaultLayoutUseCase {
	return &DefaultLayoutUseCase{
		panes:      panes,
		newID:      newID,
		contentIDs: contentIDs,
		visible:    visible,
	}
}

// Build returns a fresh default layout.
func (uc *DefaultLayoutUseCase) Build(ctx context.Context) (*entity.DockLayout, error) {
	main := entity.NewStack(entity.NodeID(uc.newID()), 1)
	for _, id := range uc.contentIDs {
		if main.IndexOf(entity.NodeID(id)) >= 0 {
			continue
		}
		main.Children = append(main.Children, uc.panes.newPane(ctx, id))
	}
	main.ResetActive()
	layout := entity.NewLayout(main)

	for _, id := range uc.visible {
		out, err := uc.panes.UpdateVisibility(ctx, layout, id, true)
		if err != nil {
			return nil, err
		}
		if out.Outcome == OutcomeNotFound || out.Outcome == OutcomeRejected {
			return nil, fmt.Errorf("default layout: side panel %s: %s", id, out.Reason)
		}
	}

	if err := CheckLayout(layout); err != nil {
		return nil, fmt.Errorf("default layout: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Int("stacks", layout.StackCount()).
		Int("panes", layout.PaneCount()).
		Msg("default layout built")
	return layout, nil
}
