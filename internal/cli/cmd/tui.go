package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the layout interactively",
	Long: `Open the layout in a full-screen terminal UI.

Drag a tab bar row to move a tab, drag a stack title to move the whole
stack, and drop on an edge to split. Press ? for the key bindings.

Logs go to the log file under logging.log_dir while the UI runs.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	log := logging.FromContext(a.Ctx())

	ws, autosave, err := a.NewWorkspace()
	if err != nil {
		return err
	}
	if err := a.WatchConfig(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	m := model.NewLayoutModel(a.Ctx(), a.Theme, model.Deps{
		Workspace: ws,
		Layouts:   a.Layouts,
		Panes:     a.Panes,
		DragDrop:  a.DragDrop,
		Persist:   a.Persist,
		Registry:  a.Registry,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(a.Ctx()))
	_, runErr := p.Run()

	if err := autosave.Stop(a.Ctx()); err != nil {
		log.Error().Err(err).Msg("final layout save failed")
		if runErr == nil {
			return fmt.Errorf("save layout: %w", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("run tui: %w", runErr)
	}
	return nil
}
