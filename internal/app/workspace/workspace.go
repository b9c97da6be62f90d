// Package workspace owns the live layout shared by the terminal UI and the
// HTTP API: the tree, the drag session, and the autosave hook.
package workspace

import (
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/infrastructure/cache"
)

// arrangeCacheSize covers a few renderers at different sizes.
const arrangeCacheSize = 8

// Autosaver is notified after every change to the tree.
type Autosaver interface {
	MarkDirty()
}

// State is the mutable view handed to Update callbacks.
type State struct {
	Layout *entity.DockLayout
	Drag   *entity.DragSession

	arrange func(width, height int) []entity.StackRect
}

// Arrange returns the stack rectangles of the layout in the given bounds.
// Results are cached per tree version, so a callback that changes the tree
// must not call Arrange afterwards.
func (s State) Arrange(width, height int) []entity.StackRect {
	if s.arrange == nil {
		return service.ArrangeStacks(s.Layout, width, height)
	}
	return s.arrange(width, height)
}

type arrangeKey struct {
	version       uint64
	width, height int
}

// Workspace serializes access to the live layout.
type Workspace struct {
	mu       sync.Mutex
	name     string
	state    State
	autosave Autosaver
	version  uint64
	rects    port.Cache[arrangeKey, []entity.StackRect]
}

var _ port.LayoutProvider = (*Workspace)(nil)

// New creates a workspace around an already loaded layout.
func New(name string, layout *entity.DockLayout) *Workspace {
	w := &Workspace{
		name:  name,
		state: State{Layout: layout},
		rects: cache.NewLRU[arrangeKey, []entity.StackRect](arrangeCacheSize),
	}
	w.state.arrange = w.arrangeLocked
	return w
}

// arrangeLocked runs with w.mu held, from inside Read or Update.
func (w *Workspace) arrangeLocked(width, height int) []entity.StackRect {
	key := arrangeKey{version: w.version, width: width, height: height}
	if rects, ok := w.rects.Get(key); ok {
		return rects
	}
	rects := service.ArrangeStacks(w.state.Layout, width, height)
	w.rects.Set(key, rects)
	return rects
}

// SetAutosave installs the autosave hook. Nil disables it.
func (w *Workspace) SetAutosave(a Autosaver) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.autosave = a
}

// LayoutName returns the name the layout is stored under.
func (w *Workspace) LayoutName() string {
	return w.name
}

// CurrentLayout returns a deep copy of the live layout.
func (w *Workspace) CurrentLayout() *entity.DockLayout {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Layout == nil {
		return nil
	}
	return w.state.Layout.Clone()
}

// Version increases every time the tree changes. Renderers poll it to
// decide whether to redraw.
func (w *Workspace) Version() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.version
}

// Read calls fn with the current state. fn must not retain the pointers.
func (w *Workspace) Read(fn func(State)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.state)
}

// Update runs fn with exclusive access to the state. A result reporting a
// change bumps the version and marks the layout dirty.
func (w *Workspace) Update(fn func(*State) (*usecase.MutationOutput, error)) (*usecase.MutationOutput, error) {
	w.mu.Lock()
	out, err := fn(&w.state)
	changed := err == nil && out != nil && out.Changed
	if changed {
		w.version++
	}
	autosave := w.autosave
	w.mu.Unlock()

	if changed && autosave != nil {
		autosave.MarkDirty()
	}
	return out, err
}

// Replace swaps the whole tree, for example after an import or reset.
// Any drag in progress is dropped since it may reference removed nodes.
func (w *Workspace) Replace(layout *entity.DockLayout) {
	_, _ = w.Update(func(s *State) (*usecase.MutationOutput, error) {
		s.Layout = layout
		s.Drag = nil
		return &usecase.MutationOutput{Outcome: usecase.OutcomeApplied, Changed: true}, nil
	})
}
