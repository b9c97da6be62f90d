package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/app/api"
	"github.com/bnema/dockyard/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live layout over HTTP",
	Long: `Load the layout into memory and expose it over a JSON API so external
renderers can read it, run operations and drive drag sessions.

Changes are saved after autosave_interval_ms of quiet and once more on exit.
Editing the content section of the config file reloads the registry.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.listen_addr)")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	log := logging.FromContext(a.Ctx())

	addr := serveAddr
	if addr == "" {
		addr = a.Config.Server.ListenAddr
	}

	ws, autosave, err := a.NewWorkspace()
	if err != nil {
		return err
	}
	defer func() {
		if err := autosave.Stop(a.Ctx()); err != nil {
			log.Error().Err(err).Msg("final layout save failed")
		}
	}()

	if err := a.WatchConfig(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(addr, api.Deps{
		Workspace: ws,
		Layouts:   a.Layouts,
		Panes:     a.Panes,
		DragDrop:  a.DragDrop,
		Persist:   a.Persist,
		Registry:  a.Registry,
	})
	if err := srv.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Info().Msg("layout API stopped")
	return nil
}

