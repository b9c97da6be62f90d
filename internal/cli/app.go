// Package cli wires configuration, logging, storage and use cases for the
// dockyard commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/app/workspace"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/idgen"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/infrastructure/registry"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
)

// Options select how the app is initialized.
type Options struct {
	// ConfigFile overrides the XDG config file.
	ConfigFile string
	// LayoutName overrides layout.name from the config.
	LayoutName string
	// FileLog sends logs to the rotated log file instead of stderr. The
	// terminal UI needs this since it owns the screen.
	FileLog bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Registry  *registry.Static

	// Use cases
	Layouts  *usecase.ManageLayoutUseCase
	Panes    *usecase.ManagePanesUseCase
	DragDrop *usecase.DragDropUseCase
	Persist  *usecase.PersistLayoutUseCase

	manager    *config.Manager
	db         *sqlite.LazyDB
	layoutName string

	// Context with logger
	ctx      context.Context
	logClose io.Closer
}

// NewApp creates a new CLI application with all dependencies. The database
// is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logClose := newLogger(cfg, opts.FileLog)
	ctx := logging.WithContext(context.Background(), logger)

	layoutName := cfg.Layout.Name
	if opts.LayoutName != "" {
		layoutName = opts.LayoutName
	}
	ctx = logging.WithLayout(ctx, layoutName)

	reg := registry.NewStatic(cfg.Content)
	newID := idgen.New("node")
	layouts := usecase.NewManageLayoutUseCase(newID)
	panes := usecase.NewManagePanesUseCase(reg, newID, cfg.Layout.Panels())
	defaults := usecase.NewDefaultLayoutUseCase(panes, newID, cfg.Layout.DefaultContent, cfg.Layout.VisiblePanels())

	db := sqlite.NewLazyDB(cfg.Database.Path)
	repo := sqlite.NewLazyLayoutRepository(db)

	logging.FromContext(ctx).Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("app initialized")
	logging.LogRuntimeInfo(ctx)

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(cfg),
		Registry:   reg,
		Layouts:    layouts,
		Panes:      panes,
		DragDrop:   usecase.NewDragDropUseCase(layouts, cfg.Layout.EdgeThreshold),
		Persist:    usecase.NewPersistLayoutUseCase(repo, defaults),
		manager:    mgr,
		db:         db,
		layoutName: layoutName,
		ctx:        ctx,
		logClose:   logClose,
	}, nil
}

func newManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerWithFile(path)
	}
	return config.NewManager()
}

// newLogger builds the stderr logger, or the file logger when asked. A log
// file that cannot be opened falls back to a disabled logger so the screen
// stays clean.
func newLogger(cfg *config.Config, fileLog bool) (zerolog.Logger, io.Closer) {
	if !fileLog {
		return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format), nil
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logger, closer, err := logging.NewFileLogger(logCfg, cfg.Logging.LogDir, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		return zerolog.Nop(), nil
	}
	return logger, closer
}

// Close releases all resources.
func (a *App) Close() error {
	var dbErr error
	if a.db != nil {
		dbErr = a.db.Close()
	}
	if a.logClose != nil {
		_ = a.logClose.Close()
	}
	return dbErr
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LayoutName returns the name of the layout the commands operate on.
func (a *App) LayoutName() string {
	return a.layoutName
}

// Manager returns the config manager, for watching.
func (a *App) Manager() *config.Manager {
	return a.manager
}

// LoadLayout returns the stored layout, or the default one.
func (a *App) LoadLayout() (*usecase.LoadLayoutOutput, error) {
	return a.Persist.Load(a.ctx, a.layoutName)
}

// SaveLayout stores layout under the current name.
func (a *App) SaveLayout(layout *entity.DockLayout) error {
	return a.Persist.Save(a.ctx, a.layoutName, layout)
}

// Mutate loads the layout, applies fn and saves the result when it changed.
// One-shot commands use this instead of a workspace.
func (a *App) Mutate(fn func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error)) (*usecase.MutationOutput, error) {
	loaded, err := a.LoadLayout()
	if err != nil {
		return nil, err
	}
	out, err := fn(a.ctx, loaded.Layout)
	if err != nil {
		return nil, err
	}
	if out.Changed {
		if err := a.SaveLayout(loaded.Layout); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NewWorkspace loads the layout into a live workspace with autosave attached.
// Callers stop the returned service to flush the final state.
func (a *App) NewWorkspace() (*workspace.Workspace, *snapshot.Service, error) {
	loaded, err := a.LoadLayout()
	if err != nil {
		return nil, nil, err
	}
	ws := workspace.New(a.layoutName, loaded.Layout)

	autosave := snapshot.NewService(a.Persist, ws, a.Config.Layout.AutosaveIntervalMs)
	autosave.Start(a.ctx)
	ws.SetAutosave(autosave)
	autosave.SetReady()

	logging.FromContext(a.ctx).Info().
		Str("source", string(loaded.Source)).
		Int("stacks", loaded.Layout.StackCount()).
		Msg("workspace ready")
	return ws, autosave, nil
}

// WatchConfig reloads the content registry when the config file changes.
func (a *App) WatchConfig() error {
	a.manager.OnConfigChange(func(cfg *config.Config) {
		a.Registry.Replace(cfg.Content)
		logging.FromContext(a.ctx).Info().Int("content", len(cfg.Content)).Msg("content registry reloaded")
	})
	return a.manager.Watch()
}
