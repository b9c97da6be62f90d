// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/app/workspace"
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	// resizeStep is the share of the parent box moved by one grow or shrink.
	resizeStep = 0.05
	// minShare keeps every sibling visible while resizing.
	minShare = 0.05

	refreshInterval = 500 * time.Millisecond
)

// Deps holds what the layout model operates on.
type Deps struct {
	Workspace *workspace.Workspace
	Layouts   *usecase.ManageLayoutUseCase
	Panes     *usecase.ManagePanesUseCase
	DragDrop  *usecase.DragDropUseCase
	Persist   *usecase.PersistLayoutUseCase
	Registry  port.ContentRegistry
}

type refreshMsg time.Time

// LayoutModel is the interactive docking view. Stacks are focused with the
// keyboard, and tabs or whole stacks are dragged with the mouse.
type LayoutModel struct {
	ctx   context.Context
	deps  Deps
	theme *styles.Theme
	keys  styles.LayoutKeyMap
	help  help.Model

	width, height int
	activeStack   entity.NodeID
	status        string
	// dragMoved is set once the pointer moved during a drag; a release
	// without motion is a plain click.
	dragMoved bool
	version   uint64
	quitting  bool
}

// NewLayoutModel creates the layout model with the first stack focused.
func NewLayoutModel(ctx context.Context, theme *styles.Theme, deps Deps) *LayoutModel {
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	m := &LayoutModel{
		ctx:   logging.WithComponent(ctx, "tui"),
		deps:  deps,
		theme: theme,
		keys:  styles.DefaultLayoutKeyMap(),
		help:  styles.NewStyledHelp(theme),
	}
	m.ensureActive()
	return m
}

// ActiveStack returns the focused stack id.
func (m *LayoutModel) ActiveStack() entity.NodeID {
	return m.activeStack
}

// Status returns the last status line.
func (m *LayoutModel) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m *LayoutModel) Init() tea.Cmd {
	return refresh()
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Update implements tea.Model.
func (m *LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		// the HTTP API may change the tree behind our back
		if v := m.deps.Workspace.Version(); v != m.version {
			m.version = v
			m.ensureActive()
		}
		return m, refresh()

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *LayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag()
	case key.Matches(msg, m.keys.FocusLeft):
		m.focus(service.NavLeft)
	case key.Matches(msg, m.keys.FocusRight):
		m.focus(service.NavRight)
	case key.Matches(msg, m.keys.FocusUp):
		m.focus(service.NavUp)
	case key.Matches(msg, m.keys.FocusDown):
		m.focus(service.NavDown)
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
	case key.Matches(msg, m.keys.MoveTabL):
		m.moveTab(-1)
	case key.Matches(msg, m.keys.MoveTabR):
		m.moveTab(1)
	case key.Matches(msg, m.keys.SplitRight):
		m.split(entity.ZoneRight)
	case key.Matches(msg, m.keys.SplitDown):
		m.split(entity.ZoneBottom)
	case key.Matches(msg, m.keys.Close):
		m.closeActive()
	case key.Matches(msg, m.keys.Panel):
		m.togglePanel(msg.String())
	case key.Matches(msg, m.keys.Open):
		m.openNext()
	case key.Matches(msg, m.keys.Grow):
		m.resize(resizeStep)
	case key.Matches(msg, m.keys.Shrink):
		m.resize(-resizeStep)
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	}
	return m, nil
}

// layoutHeight is the number of rows left for the stacks. It reads the
// workspace, so it must not be called while holding it.
func (m *LayoutModel) layoutHeight() int {
	h := m.height - lipgloss.Height(m.footer())
	if h < 0 {
		return 0
	}
	return h
}

func (m *LayoutModel) footer() string {
	return m.statusLine() + "\n" + m.help.View(m.keys)
}

func (m *LayoutModel) statusLine() string {
	left := m.theme.Title.Render(m.deps.Workspace.LayoutName())
	m.deps.Workspace.Read(func(s workspace.State) {
		if s.Drag.Active() {
			left += m.theme.Highlight.Render(" [" + s.Drag.State() + "]")
		}
	})
	if m.status == "" {
		return left
	}
	return left + "  " + m.status
}

// View implements tea.Model.
func (m *LayoutModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return m.theme.Subtle.Render("loading layout...")
	}

	footer := m.footer()
	height := max(0, m.height-lipgloss.Height(footer))

	var body string
	m.deps.Workspace.Read(func(s workspace.State) {
		view := styles.LayoutView{
			Layout:        s.Layout,
			Width:         m.width,
			Height:        height,
			ActiveStackID: m.activeStack,
			Body:          m.paneBody,
		}
		if s.Drag != nil {
			view.Target = s.Drag.Target
		}
		body = m.theme.RenderLayout(view)
	})
	if body == "" {
		return footer
	}
	return body + "\n" + footer
}

func (m *LayoutModel) paneBody(pane *entity.DockPane) string {
	if m.deps.Registry != nil {
		if meta, ok := m.deps.Registry.Lookup(m.ctx, pane.ContentID); ok && meta.Body != "" {
			return meta.Body
		}
	}
	return pane.Title
}

// apply runs a mutation against the live layout and records its outcome.
func (m *LayoutModel) apply(op string, fn func(*workspace.State) (*usecase.MutationOutput, error)) *usecase.MutationOutput {
	out, err := m.deps.Workspace.Update(fn)
	if err != nil {
		m.fail(op, err)
		return nil
	}
	if out != nil {
		m.status = m.theme.RenderOutcome(op, out)
		if out.NewStackID != "" {
			m.activeStack = out.NewStackID
		}
	}
	m.ensureActive()
	return out
}

func (m *LayoutModel) fail(op string, err error) {
	logging.FromContext(m.ctx).Warn().Err(err).Str("op", op).Msg("layout action failed")
	m.status = m.theme.ErrorStyle.Render(fmt.Sprintf("%s: %v", op, err))
}

// ensureActive moves focus to the first stack when the focused one is gone.
func (m *LayoutModel) ensureActive() {
	m.deps.Workspace.Read(func(s workspace.State) {
		if s.Layout == nil {
			m.activeStack = ""
			return
		}
		if m.activeStack != "" && s.Layout.FindStack(m.activeStack) != nil {
			return
		}
		m.activeStack = ""
		if stacks := s.Layout.Stacks(); len(stacks) > 0 {
			m.activeStack = stacks[0].ID
		}
	})
}

// activePane returns the focused stack's visible pane, if any.
func activePane(s *workspace.State, stackID entity.NodeID) (*entity.Stack, *entity.DockPane) {
	stack := s.Layout.FindStack(stackID)
	if stack == nil {
		return nil, nil
	}
	return stack, stack.ActivePane()
}

func (m *LayoutModel) focus(dir service.NavigateDirection) {
	var (
		out *usecase.FocusNeighborOutput
		err error
	)
	height := m.layoutHeight()
	m.deps.Workspace.Read(func(s workspace.State) {
		out, err = m.deps.Layouts.FocusNeighbor(m.ctx, usecase.FocusNeighborInput{
			Layout:        s.Layout,
			ActiveStackID: m.activeStack,
			Direction:     dir,
			Width:         m.width,
			Height:        height,
		})
	})
	if err != nil {
		m.fail("focus", err)
		return
	}
	if out.Found {
		m.activeStack = out.StackID
	}
}

func (m *LayoutModel) cycleTab(delta int) {
	m.apply("activate", func(s *workspace.State) (*usecase.MutationOutput, error) {
		stack := s.Layout.FindStack(m.activeStack)
		if stack == nil || len(stack.Children) < 2 {
			return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "no other tab"}, nil
		}
		n := len(stack.Children)
		next := stack.Children[((stack.ActiveIndex()+delta)%n+n)%n]
		return m.deps.Panes.ActivatePane(m.ctx, usecase.ActivatePaneInput{
			Layout:    s.Layout,
			ContentID: next.ContentID,
		})
	})
}

func (m *LayoutModel) moveTab(delta int) {
	m.apply("reorder", func(s *workspace.State) (*usecase.MutationOutput, error) {
		stack, pane := activePane(s, m.activeStack)
		if pane == nil {
			return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "no active tab"}, nil
		}
		return m.deps.Panes.ReorderTab(m.ctx, usecase.ReorderTabInput{
			Layout:      s.Layout,
			StackID:     stack.ID,
			PaneID:      pane.ID,
			TargetIndex: stack.ActiveIndex() + delta,
		})
	})
}

// split moves the active tab into a new stack beside its own.
func (m *LayoutModel) split(zone entity.DropZone) {
	m.apply("split", func(s *workspace.State) (*usecase.MutationOutput, error) {
		stack, pane := activePane(s, m.activeStack)
		if pane == nil {
			return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "no active tab"}, nil
		}
		return m.deps.Layouts.MovePane(m.ctx, usecase.MovePaneInput{
			Layout:        s.Layout,
			PaneID:        pane.ID,
			SourceStackID: stack.ID,
			TargetStackID: stack.ID,
			Zone:          zone,
		})
	})
}

func (m *LayoutModel) closeActive() {
	m.apply("close", func(s *workspace.State) (*usecase.MutationOutput, error) {
		_, pane := activePane(s, m.activeStack)
		if pane == nil {
			return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "no active tab"}, nil
		}
		return m.deps.Panes.ClosePane(m.ctx, usecase.ClosePaneInput{
			Layout: s.Layout,
			PaneID: pane.ID,
		})
	})
}

// togglePanel toggles the side panel bound to digit key k (1-based).
func (m *LayoutModel) togglePanel(k string) {
	var n int
	if _, err := fmt.Sscanf(k, "%d", &n); err != nil {
		return
	}
	panels := m.deps.Panes.SidePanels()
	if n < 1 || n > len(panels) {
		m.status = m.theme.WarningStyle.Render(fmt.Sprintf("no side panel %d", n))
		return
	}
	panelID := panels[n-1].StackID
	m.apply("panel "+string(panelID), func(s *workspace.State) (*usecase.MutationOutput, error) {
		return m.deps.Panes.ToggleSidePanel(m.ctx, s.Layout, panelID)
	})
}

// openNext opens the first registered content that is not open yet in the
// focused stack.
func (m *LayoutModel) openNext() {
	if m.deps.Registry == nil {
		return
	}
	metas := m.deps.Registry.List(m.ctx)
	m.apply("open", func(s *workspace.State) (*usecase.MutationOutput, error) {
		for _, meta := range metas {
			if s.Layout.Contains(entity.NodeID(meta.ContentID)) {
				continue
			}
			return m.deps.Panes.AddPane(m.ctx, usecase.AddPaneInput{
				Layout:    s.Layout,
				StackID:   m.activeStack,
				ContentID: meta.ContentID,
			})
		}
		return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "all content is open"}, nil
	})
}

// resize grows (or shrinks, for a negative step) the focused stack within
// its parent box. Siblings give up or take space in proportion.
func (m *LayoutModel) resize(step float64) {
	m.apply("resize", func(s *workspace.State) (*usecase.MutationOutput, error) {
		parent := s.Layout.FindParent(m.activeStack)
		if parent == nil {
			return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "root stack fills the screen"}, nil
		}
		weights := resizedWeights(parent, parent.IndexOf(m.activeStack), step)
		if weights == nil {
			return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored, Reason: "size limit reached"}, nil
		}
		return m.deps.Layouts.SetWeights(m.ctx, usecase.SetWeightsInput{
			Layout:  s.Layout,
			BoxID:   parent.ID,
			Weights: weights,
		})
	})
}

// resizedWeights moves step (a share of the box) to or from child i and
// rescales the siblings. Returns nil when the change is not possible.
func resizedWeights(box *entity.Box, i int, step float64) []float64 {
	n := len(box.Children)
	if i < 0 || n < 2 {
		return nil
	}
	var total float64
	for _, c := range box.Children {
		total += c.NodeWeight()
	}
	if total <= 0 {
		return nil
	}

	current := box.Children[i].NodeWeight()
	target := current + step*total
	lo, hi := minShare*total, total-minShare*total*float64(n-1)
	target = max(lo, min(hi, target))
	if target == current {
		return nil
	}

	rest, newRest := total-current, total-target
	weights := make([]float64, n)
	for j, c := range box.Children {
		if j == i {
			weights[j] = target
			continue
		}
		weights[j] = c.NodeWeight() * newRest / rest
	}
	return weights
}

func (m *LayoutModel) reset() {
	layout, err := m.deps.Persist.Reset(m.ctx, m.deps.Workspace.LayoutName())
	if err != nil {
		m.fail("reset", err)
		return
	}
	m.deps.Workspace.Replace(layout)
	m.activeStack = ""
	m.ensureActive()
	m.status = m.theme.SuccessStyle.Render("layout reset")
}

func (m *LayoutModel) cancelDrag() {
	_, _ = m.deps.Workspace.Update(func(s *workspace.State) (*usecase.MutationOutput, error) {
		s.Drag = m.deps.DragDrop.Cancel(m.ctx, s.Drag)
		return nil, nil
	})
	m.dragMoved = false
}

func (m *LayoutModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.dragOver(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.release(msg.X, msg.Y)
	}
}

// press focuses the stack under the pointer. The top border starts a
// stack drag, a tab activates its pane and starts a pane drag.
func (m *LayoutModel) press(x, y int) {
	height := m.layoutHeight()
	var (
		begin func(*workspace.State) (*usecase.MutationOutput, error)
		hitID entity.NodeID
	)
	m.deps.Workspace.Read(func(s workspace.State) {
		rects := s.Arrange(m.width, height)
		hit, ok := service.HitTest(rects, float64(x), float64(y))
		if !ok {
			return
		}
		hitID = hit.StackID
		switch y - int(hit.Rect.Y) {
		case 0:
			begin = func(st *workspace.State) (*usecase.MutationOutput, error) {
				session, err := m.deps.DragDrop.BeginStackDrag(m.ctx, st.Drag, st.Layout, hit.StackID)
				if err != nil {
					return nil, err
				}
				st.Drag = session
				return nil, nil
			}
		case 1:
			stack := s.Layout.FindStack(hit.StackID)
			paneID, ok := m.theme.TabAt(stack, x-int(hit.Rect.X)-1)
			if !ok {
				return
			}
			contentID := stack.Pane(paneID).ContentID
			begin = func(st *workspace.State) (*usecase.MutationOutput, error) {
				session, err := m.deps.DragDrop.BeginPaneDrag(m.ctx, st.Drag, st.Layout, paneID)
				if err != nil {
					return nil, err
				}
				st.Drag = session
				return m.deps.Panes.ActivatePane(m.ctx, usecase.ActivatePaneInput{
					Layout:    st.Layout,
					ContentID: contentID,
				})
			}
		}
	})
	if hitID == "" {
		return
	}
	m.activeStack = hitID
	if begin == nil {
		return
	}

	_, err := m.deps.Workspace.Update(begin)
	switch {
	case errors.Is(err, usecase.ErrDragInProgress):
		m.status = m.theme.WarningStyle.Render(err.Error())
	case err != nil:
		m.fail("drag", err)
	default:
		m.dragMoved = false
	}
}

func (m *LayoutModel) dragOver(x, y int) {
	height := m.layoutHeight()
	_, _ = m.deps.Workspace.Update(func(s *workspace.State) (*usecase.MutationOutput, error) {
		if !s.Drag.Active() {
			return nil, nil
		}
		rects := s.Arrange(m.width, height)
		m.deps.DragDrop.DragOverPoint(s.Drag, rects, float64(x), float64(y))
		m.dragMoved = true
		return nil, nil
	})
}

// release drops the drag on its hover target. A click without motion only
// ends the session.
func (m *LayoutModel) release(x, y int) {
	var active bool
	m.deps.Workspace.Read(func(s workspace.State) { active = s.Drag.Active() })
	if !active {
		return
	}
	if !m.dragMoved {
		m.cancelDrag()
		return
	}
	m.dragOver(x, y)

	var target entity.NodeID
	out := m.apply("drop", func(s *workspace.State) (*usecase.MutationOutput, error) {
		if s.Drag.Target != nil {
			target = s.Drag.Target.StackID
		}
		out, err := m.deps.DragDrop.Drop(m.ctx, s.Drag, s.Layout)
		s.Drag = nil
		return out, err
	})
	m.dragMoved = false
	if out != nil && out.Applied() && out.NewStackID == "" && target != "" {
		m.activeStack = target
		m.ensureActive()
	}
}
