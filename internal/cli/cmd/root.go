// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
)

// errOutcome makes the process exit non-zero when a mutation was refused.
// The outcome itself is already printed.
var errOutcome = errors.New("layout unchanged")

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	layoutName string
	rootCmd    = &cobra.Command{
		Use:   "dockyard",
		Short: "A docking layout engine for terminal and HTTP front ends",
		Long: `Dockyard - tabbed stacks you can split, drag and dock.

Dockyard keeps a tree of boxes and tabbed stacks, applies split, move and
tab operations to it, prunes what becomes empty, and stores named layouts
in SQLite.

Features:
  - Split a stack on any edge, or move a tab or a whole stack next to another
  - Drag sessions with edge and center drop zones
  - Toggleable side panels docked at the start or end of the root
  - Interactive terminal UI with mouse dragging ('dockyard tui')
  - HTTP API for external renderers ('dockyard serve')
  - JSON and YAML import/export, JSON Schema for the snapshot format

Every command operates on the layout named by layout.name in the config,
or the one given with --layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema", "validate", "init", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LayoutName: layoutName,
				FileLog:    cmd.Name() == "tui",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dockyard/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&layoutName, "layout", "l", "", "layout name (default layout.name from config)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errOutcome) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// printOutcome prints a mutation result and turns refusals into errOutcome.
func printOutcome(a *cli.App, op string, out *usecase.MutationOutput) error {
	fmt.Println(a.Theme.RenderOutcome(op, out))
	switch out.Outcome {
	case usecase.OutcomeNotFound, usecase.OutcomeRejected:
		return errOutcome
	default:
		return nil
	}
}
