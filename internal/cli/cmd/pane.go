package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
)

var (
	addStack      string
	addTitle      string
	closeForce    bool
	reorderGap    bool
	moveFrom      string
	panelShow     bool
	panelHide     bool
	neighborWidth int
	neighborHigh  int
)

var addCmd = &cobra.Command{
	Use:   "add <content-id>",
	Short: "Open content as a new tab",
	Long: `Open registered content as a new tab and make it active.

Without --stack the tab goes to the biggest stack.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var closeCmd = &cobra.Command{
	Use:   "close <pane-id>",
	Short: "Close a tab",
	Long: `Close a tab. Stacks left empty are pruned.

Panes registered as not closable are kept unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runClose,
}

var activateCmd = &cobra.Command{
	Use:   "activate <content-id>",
	Short: "Make a tab active, opening it if needed",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <stack-id> <pane-id> <index>",
	Short: "Move a tab within its stack",
	Long: `Move a tab so it ends up at index.

With --gap the index names the gap between tabs a drop landed in: gap i
sits before the tab currently at i.`,
	Args: cobra.ExactArgs(3),
	RunE: runReorder,
}

var splitCmd = &cobra.Command{
	Use:   "split <stack-id> <left|right|top|bottom> <content-id>",
	Short: "Open content in a new stack beside another",
	Args:  cobra.ExactArgs(3),
	RunE:  runSplit,
}

var moveCmd = &cobra.Command{
	Use:   "move <pane-id> <stack-id> <zone>",
	Short: "Move a tab onto a stack or one of its edges",
	Long: `Move a tab into another stack (center) or into a new stack split off
the target's left, right, top or bottom edge.

Examples:
  dockyard move notes main center     # join the main stack
  dockyard move notes main right      # dock to the right of main`,
	Args: cobra.ExactArgs(3),
	RunE: runMove,
}

var moveStackCmd = &cobra.Command{
	Use:   "move-stack <stack-id> <target-stack-id> <left|right|top|bottom>",
	Short: "Dock a whole stack beside another",
	Args:  cobra.ExactArgs(3),
	RunE:  runMoveStack,
}

var resizeCmd = &cobra.Command{
	Use:   "resize <box-id> <weight>...",
	Short: "Set the weights of a box's children",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runResize,
}

var panelCmd = &cobra.Command{
	Use:   "panel [panel-id]",
	Short: "List or toggle side panels",
	Long: `Without arguments, list the configured side panels and whether they
are shown. With a panel id, toggle it, or force a state with --show or --hide.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPanel,
}

var neighborCmd = &cobra.Command{
	Use:   "neighbor <stack-id> <left|right|up|down>",
	Short: "Print the stack adjacent to another on screen",
	Args:  cobra.ExactArgs(2),
	RunE:  runNeighbor,
}

func init() {
	rootCmd.AddCommand(addCmd, closeCmd, activateCmd, reorderCmd, splitCmd, moveCmd,
		moveStackCmd, resizeCmd, panelCmd, neighborCmd)

	addCmd.Flags().StringVarP(&addStack, "stack", "s", "", "target stack (default biggest stack)")
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "tab title (default registry title)")
	closeCmd.Flags().BoolVar(&closeForce, "force", false, "close panes that are not closable")
	reorderCmd.Flags().BoolVar(&reorderGap, "gap", false, "treat index as a drop gap")
	moveCmd.Flags().StringVar(&moveFrom, "from", "", "fail unless the pane is still in this stack")
	panelCmd.Flags().BoolVar(&panelShow, "show", false, "show the panel")
	panelCmd.Flags().BoolVar(&panelHide, "hide", false, "hide the panel")
	panelCmd.MarkFlagsMutuallyExclusive("show", "hide")
	neighborCmd.Flags().IntVar(&neighborWidth, "width", 120, "screen width used to arrange stacks")
	neighborCmd.Flags().IntVar(&neighborHigh, "height", 40, "screen height used to arrange stacks")
}

func runAdd(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Panes.AddPane(ctx, usecase.AddPaneInput{
			Layout:    layout,
			StackID:   entity.NodeID(addStack),
			ContentID: args[0],
			Title:     addTitle,
		})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "add "+args[0], out)
}

func runClose(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Panes.ClosePane(ctx, usecase.ClosePaneInput{
			Layout: layout,
			PaneID: entity.NodeID(args[0]),
			Force:  closeForce,
		})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "close "+args[0], out)
}

func runActivate(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Panes.ActivatePane(ctx, usecase.ActivatePaneInput{Layout: layout, ContentID: args[0]})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "activate "+args[0], out)
}

func runReorder(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[2], err)
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		input := usecase.ReorderTabInput{
			Layout:      layout,
			StackID:     entity.NodeID(args[0]),
			PaneID:      entity.NodeID(args[1]),
			TargetIndex: index,
		}
		if reorderGap {
			return a.Panes.ReorderTabToGap(ctx, input)
		}
		return a.Panes.ReorderTab(ctx, input)
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "reorder "+args[1], out)
}

func parseZone(s string) (entity.DropZone, error) {
	zone, ok := entity.ParseDropZone(s)
	if !ok {
		return "", fmt.Errorf("unknown zone %q (want left, right, top, bottom or center)", s)
	}
	return zone, nil
}

func runSplit(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	zone, err := parseZone(args[1])
	if err != nil {
		return err
	}
	meta, ok := a.Registry.Lookup(a.Ctx(), args[2])
	if !ok {
		return fmt.Errorf("content %s: %w", args[2], entity.ErrNotFound)
	}
	pane := entity.NewPane(meta.ContentID, meta.Title)
	pane.Closable = meta.Closable

	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Layouts.Split(ctx, usecase.SplitInput{
			Layout:        layout,
			TargetStackID: entity.NodeID(args[0]),
			Pane:          pane,
			Zone:          zone,
		})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "split "+args[0], out)
}

func runMove(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	zone, err := parseZone(args[2])
	if err != nil {
		return err
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Layouts.MovePane(ctx, usecase.MovePaneInput{
			Layout:        layout,
			PaneID:        entity.NodeID(args[0]),
			SourceStackID: entity.NodeID(moveFrom),
			TargetStackID: entity.NodeID(args[1]),
			Zone:          zone,
		})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "move "+args[0], out)
}

func runMoveStack(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	zone, err := parseZone(args[2])
	if err != nil {
		return err
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Layouts.MoveStack(ctx, usecase.MoveStackInput{
			Layout:        layout,
			SourceStackID: entity.NodeID(args[0]),
			TargetStackID: entity.NodeID(args[1]),
			Zone:          zone,
		})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "move-stack "+args[0], out)
}

func runResize(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	weights := make([]float64, 0, len(args)-1)
	for _, s := range args[1:] {
		w, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q: %w", s, err)
		}
		weights = append(weights, w)
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Layouts.SetWeights(ctx, usecase.SetWeightsInput{
			Layout:  layout,
			BoxID:   entity.NodeID(args[0]),
			Weights: weights,
		})
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "resize "+args[0], out)
}

func runPanel(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		loaded, err := a.LoadLayout()
		if err != nil {
			return err
		}
		panels := a.Panes.SidePanels()
		if len(panels) == 0 {
			fmt.Println(a.Theme.Subtle.Render("No side panels configured"))
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Panel", "Content", "Position", "Direction", "Shown"})
		for _, p := range panels {
			shown := "no"
			if a.Panes.PanelVisible(loaded.Layout, p.StackID) {
				shown = "yes"
			}
			t.AppendRow(table.Row{p.StackID, p.ContentID, p.Position, p.Direction, shown})
		}
		t.Render()
		return nil
	}

	id := entity.NodeID(args[0])
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		switch {
		case panelShow:
			return a.Panes.UpdateVisibility(ctx, layout, id, true)
		case panelHide:
			return a.Panes.UpdateVisibility(ctx, layout, id, false)
		default:
			return a.Panes.ToggleSidePanel(ctx, layout, id)
		}
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "panel "+args[0], out)
}

func runNeighbor(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	dir, ok := service.ParseNavigateDirection(args[1])
	if !ok {
		return fmt.Errorf("unknown direction %q (want left, right, up or down)", args[1])
	}
	loaded, err := a.LoadLayout()
	if err != nil {
		return err
	}
	res, err := a.Layouts.FocusNeighbor(a.Ctx(), usecase.FocusNeighborInput{
		Layout:        loaded.Layout,
		ActiveStackID: entity.NodeID(args[0]),
		Direction:     dir,
		Width:         neighborWidth,
		Height:        neighborHigh,
	})
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Println(a.Theme.Subtle.Render("No stack " + args[1] + " of " + args[0]))
		return errOutcome
	}
	fmt.Println(res.StackID)
	return nil
}
