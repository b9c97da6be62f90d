package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/domain/validation"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrInvalidLayout is returned when a layout fails structural validation at
// the load or save boundary.
var ErrInvalidLayout = errors.New("invalid layout")

// CheckLayout runs the structural validator and wraps its findings in
// ErrInvalidLayout.
func CheckLayout(layout *entity.DockLayout) error {
	problems := validation.ValidateLayout(layout)
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n  - %s", ErrInvalidLayout, strings.Join(problems, "\n  - "))
}

// LayoutSource tells where a loaded layout came from.
type LayoutSource string

const (
	SourceStored  LayoutSource = "stored"
	SourceDefault LayoutSource = "default"
)

// LoadLayoutOutput contains a loaded layout.
type LoadLayoutOutput struct {
	Layout *entity.DockLayout
	Source LayoutSource
}

// PersistLayoutUseCase loads and stores named layouts. Every layout crossing
// this boundary is validated.
type PersistLayoutUseCase struct {
	repo     repository.LayoutRepository
	defaults *DefaultLayoutUseCase
}

// NewPersistLayoutUseCase creates a new persistence use case.
func NewPersistLayoutUseCase(repo repository.LayoutRepository, defaults *DefaultLayoutUseCase) *PersistLayoutUseCase {
	return &PersistLayoutUseCase{repo: repo, defaults: defaults}
}

// Load returns the stored layout, or the default layout when none is stored.
// A stored layout that fails validation is rejected.
func (uc *PersistLayoutUseCase) Load(ctx context.Context, name string) (*LoadLayoutOutput, error) {
	log := logging.FromContext(ctx)

	stored, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	if stored == nil {
		layout, buildErr := uc.defaults.Build(ctx)
		if buildErr != nil {
			return nil, buildErr
		}
		log.Debug().Str("layout", name).Msg("no stored layout, using default")
		return &LoadLayoutOutput{Layout: layout, Source: SourceDefault}, nil
	}

	if err := CheckLayout(stored); err != nil {
		log.Warn().Err(err).Str("layout", name).Msg("stored layout rejected")
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	log.Debug().
		Str("layout", name).
		Int("stacks", stored.StackCount()).
		Int("panes", stored.PaneCount()).
		Msg("layout loaded")
	return &LoadLayoutOutput{Layout: stored, Source: SourceStored}, nil
}

// Save validates and stores the layout under name.
func (uc *PersistLayoutUseCase) Save(ctx context.Context, name string, layout *entity.DockLayout) error {
	if name == "" {
		return fmt.Errorf("layout name is required")
	}
	if layout == nil {
		return ErrLayoutRequired
	}
	if err := CheckLayout(layout); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}
	if err := uc.repo.Save(ctx, name, layout); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("layout saved")
	return nil
}

// Reset replaces the stored layout with the default one and returns it.
func (uc *PersistLayoutUseCase) Reset(ctx context.Context, name string) (*entity.DockLayout, error) {
	layout, err := uc.defaults.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.Save(ctx, name, layout); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("layout", name).Msg("layout reset to default")
	return layout, nil
}

// Import decodes a snapshot, validates it and stores it under name.
func (uc *PersistLayoutUseCase) Import(ctx context.Context, name string, snap *entity.LayoutSnapshot) (*entity.DockLayout, error) {
	layout, err := entity.LayoutFromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("import layout %q: %w", name, err)
	}
	if err := uc.Save(ctx, name, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// Export returns the snapshot of the stored (or default) layout.
func (uc *PersistLayoutUseCase) Export(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	out, err := uc.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return entity.SnapshotFromLayout(out.Layout), nil
}

// List returns a summary of every stored layout.
func (uc *PersistLayoutUseCase) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	return uc.repo.List(ctx)
}

// Delete removes a stored layout.
func (uc *PersistLayoutUseCase) Delete(ctx context.Context, name string) error {
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("layout", name).Msg("layout deleted")
	return nil
}
