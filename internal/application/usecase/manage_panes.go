package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

// ManagePanesUseCase handles pane lifecycle: adding, closing, activating and
// reordering tabs, and showing or hiding the configured side panels.
type ManagePanesUseCase struct {
	registry port.ContentRegistry
	newID    entity.IDGenerator
	panels   []entity.SidePanel
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(
	registry port.ContentRegistry,
	newID entity.IDGenerator,
	panels []entity.SidePanel,
) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		registry: registry,
		newID:    newID,
		panels:   panels,
	}
}

// SidePanels returns the configured side panels.
func (uc *ManagePanesUseCase) SidePanels() []entity.SidePanel {
	return uc.panels
}

// AddPaneInput contains parameters for adding a pane.
type AddPaneInput struct {
	Layout *entity.DockLayout
	// StackID selects the target stack. Empty means the biggest stack.
	StackID   entity.NodeID
	ContentID string
	// Title overrides the registry title.
	Title string
}

// AddPane appends a new pane to a stack and activates it.
func (uc *ManagePanesUseCase) AddPane(ctx context.Context, input AddPaneInput) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	if input.ContentID == "" {
		return outcomeFromError(ctx, "add_pane", fmt.Errorf("%w: content id is required", entity.ErrInvalidOperation))
	}
	if input.Layout.Contains(entity.NodeID(input.ContentID)) {
		return outcomeFromError(ctx, "add_pane",
			fmt.Errorf("%w: content %s is already open", entity.ErrInvalidOperation, input.ContentID))
	}

	target := input.Layout.BiggestStack()
	if input.StackID != "" {
		target = input.Layout.FindStack(input.StackID)
	}
	if target == nil {
		return outcomeFromError(ctx, "add_pane", fmt.Errorf("stack %s: %w", input.StackID, entity.ErrNotFound))
	}

	pane := uc.newPane(ctx, input.ContentID)
	if input.Title != "" {
		pane.Title = input.Title
	}
	target.AppendPane(pane)

	log.Info().
		Str("pane_id", string(pane.ID)).
		Str("stack_id", string(target.ID)).
		Msg("pane added")
	return applied(true), nil
}

// ClosePaneInput contains parameters for closing a pane.
type ClosePaneInput struct {
	Layout *entity.DockLayout
	PaneID entity.NodeID
	// Force closes panes that are not closable.
	Force bool
}

// ClosePane removes a pane, reassigns its stack's active tab to the first
// remaining pane and runs the cleanup pass. Closing a missing pane is a no-op.
func (uc *ManagePanesUseCase) ClosePane(ctx context.Context, input ClosePaneInput) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	pane, stack := input.Layout.FindPane(input.PaneID)
	if pane == nil {
		return outcomeFromError(ctx, "close_pane", fmt.Errorf("pane %s: %w", input.PaneID, entity.ErrNotFound))
	}
	if !pane.Closable && !input.Force {
		return outcomeFromError(ctx, "close_pane",
			fmt.Errorf("%w: pane %s is not closable", entity.ErrInvalidOperation, input.PaneID))
	}

	stack.RemovePane(pane.ID)
	stack.ResetActive()
	cleaned := service.Cleanup(input.Layout)

	log.Info().
		Str("pane_id", string(pane.ID)).
		Str("stack_id", string(stack.ID)).
		Bool("cleaned", cleaned).
		Msg("pane closed")
	return applied(true), nil
}

// ActivatePaneInput contains parameters for activating a pane.
type ActivatePaneInput struct {
	Layout *entity.DockLayout
	// ContentID doubles as the pane id.
	ContentID string
}

// ActivatePane makes a pane the active tab of its stack. A pane that is not
// open yet is created from the content registry in the biggest stack.
func (uc *ManagePanesUseCase) ActivatePane(ctx context.Context, input ActivatePaneInput) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	id := entity.NodeID(input.ContentID)

	if _, stack := input.Layout.FindPane(id); stack != nil {
		if stack.ActiveID == id {
			return applied(false), nil
		}
		stack.ActiveID = id
		log.Debug().Str("pane_id", string(id)).Str("stack_id", string(stack.ID)).Msg("pane activated")
		return applied(true), nil
	}

	if _, ok := uc.lookup(ctx, input.ContentID); !ok {
		return outcomeFromError(ctx, "activate_pane", fmt.Errorf("content %s: %w", input.ContentID, entity.ErrNotFound))
	}
	target := input.Layout.BiggestStack()
	if target == nil {
		return outcomeFromError(ctx, "activate_pane", fmt.Errorf("no stack to open %s in: %w", input.ContentID, entity.ErrNotFound))
	}
	target.AppendPane(uc.newPane(ctx, input.ContentID))

	log.Info().
		Str("pane_id", string(id)).
		Str("stack_id", string(target.ID)).
		Msg("pane opened from registry")
	return applied(true), nil
}

// ReorderTabInput contains parameters for moving a tab within its stack.
type ReorderTabInput struct {
	Layout  *entity.DockLayout
	StackID entity.NodeID
	PaneID  entity.NodeID
	// TargetIndex is the index the pane ends up at.
	TargetIndex int
}

// ReorderTab moves a tab so it ends up at TargetIndex.
func (uc *ManagePanesUseCase) ReorderTab(ctx context.Context, input ReorderTabInput) (*MutationOutput, error) {
	if input.Layout == nil {
		return nil, ErrLayoutRequired
	}
	stack := input.Layout.FindStack(input.StackID)
	if stack == nil {
		return outcomeFromError(ctx, "reorder_tab", fmt.Errorf("stack %s: %w", input.StackID, entity.ErrNotFound))
	}
	if stack.IndexOf(input.PaneID) < 0 {
		return outcomeFromError(ctx, "reorder_tab",
			fmt.Errorf("pane %s in stack %s: %w", input.PaneID, input.StackID, entity.ErrNotFound))
	}
	if !stack.MovePane(input.PaneID, input.TargetIndex) {
		return ignored("tab already at index"), nil
	}
	logging.FromContext(ctx).Debug().
		Str("stack_id", string(stack.ID)).
		Str("pane_id", string(input.PaneID)).
		Int("index", input.TargetIndex).
		Msg("tab reordered")
	return applied(true), nil
}

// ReorderTabToGap moves a tab to the drop gap a tab bar reports: gap i sits
// before the tab currently at index i, and gap len(tabs) is after the last
// tab. Removing the pane first shifts every later gap left by one.
func (uc *ManagePanesUseCase) ReorderTabToGap(ctx context.Context, input ReorderTabInput) (*MutationOutput, error) {
	if input.Layout != nil {
		if stack := input.Layout.FindStack(input.StackID); stack != nil {
			if from := stack.IndexOf(input.PaneID); from >= 0 && from < input.TargetIndex {
				input.TargetIndex--
			}
		}
	}
	return uc.ReorderTab(ctx, input)
}

// PanelVisible reports whether the side panel's pane is open anywhere.
func (uc *ManagePanesUseCase) PanelVisible(layout *entity.DockLayout, panelID entity.NodeID) bool {
	panel, ok := uc.panel(panelID)
	if !ok || layout == nil {
		return false
	}
	p, _ := layout.FindPane(panel.PaneID())
	return p != nil
}

// ToggleSidePanel shows a hidden side panel or hides a visible one.
func (uc *ManagePanesUseCase) ToggleSidePanel(
	ctx context.Context,
	layout *entity.DockLayout,
	panelID entity.NodeID,
) (*MutationOutput, error) {
	return uc.UpdateVisibility(ctx, layout, panelID, !uc.PanelVisible(layout, panelID))
}

// UpdateVisibility shows the side panel when it has content and hides it
// otherwise. Already matching state is a no-op.
func (uc *ManagePanesUseCase) UpdateVisibility(
	ctx context.Context,
	layout *entity.DockLayout,
	panelID entity.NodeID,
	hasContent bool,
) (*MutationOutput, error) {
	log := logging.FromContext(ctx)
	if layout == nil {
		return nil, ErrLayoutRequired
	}
	panel, ok := uc.panel(panelID)
	if !ok {
		return outcomeFromError(ctx, "side_panel", fmt.Errorf("side panel %s: %w", panelID, entity.ErrNotFound))
	}
	if uc.PanelVisible(layout, panelID) == hasContent {
		return ignored("side panel already in requested state"), nil
	}

	if !hasContent {
		pane, stack := layout.FindPane(panel.PaneID())
		stack.RemovePane(pane.ID)
		stack.ResetActive()
		service.Cleanup(layout)
		log.Info().Str("panel_id", string(panelID)).Msg("side panel hidden")
		return applied(true), nil
	}

	pane := uc.newPane(ctx, panel.ContentID)
	if panel.Title != "" {
		pane.Title = panel.Title
	}
	if stack := layout.FindStack(panel.StackID); stack != nil {
		// the panel stack survived as the placeholder
		stack.AppendPane(pane)
	} else {
		stack := entity.NewStack(panel.StackID, panel.Weight, pane)
		err := service.DockAtRoot(layout, stack, panel.Direction, panel.Position == entity.PanelEnd, uc.newID)
		if err != nil {
			return outcomeFromError(ctx, "side_panel", err)
		}
		service.Cleanup(layout)
	}
	log.Info().
		Str("panel_id", string(panelID)).
		Str("position", string(panel.Position)).
		Msg("side panel shown")
	return applied(true), nil
}

func (uc *ManagePanesUseCase) panel(id entity.NodeID) (entity.SidePanel, bool) {
	for _, p := range uc.panels {
		if p.StackID == id {
			return p, true
		}
	}
	return entity.SidePanel{}, false
}

func (uc *ManagePanesUseCase) lookup(ctx context.Context, contentID string) (port.ContentMeta, bool) {
	if uc.registry == nil {
		return port.ContentMeta{}, false
	}
	return uc.registry.Lookup(ctx, contentID)
}

// newPane builds a pane for contentID, taking title and closable from the
// registry when the content is known.
func (uc *ManagePanesUseCase) newPane(ctx context.Context, contentID string) *entity.DockPane {
	pane := entity.NewPane(contentID, contentID)
	if meta, ok := uc.lookup(ctx, contentID); ok {
		if meta.Title != "" {
			pane.Title = meta.Title
		}
		pane.Closable = meta.Closable
	}
	return pane
}
