package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/domain/validation"
	"github.com/bnema/dockyard/internal/infrastructure/layoutfile"
)

var (
	showFormat   string
	showWidth    int
	showHeight   int
	stacksWidth  int
	stacksHeight int
	exportFormat string
	exportOutput string
	importFormat string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current layout",
	Long: `Print the layout as a tree, or as JSON or YAML.

With --width and --height the stacks are drawn in their arranged
rectangles instead.

Examples:
  dockyard show                       # tree view
  dockyard show --format yaml         # snapshot as YAML
  dockyard show --width 100 --height 30`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "List the stacks of the current layout",
	Long: `List every stack in depth-first order with its tabs and weight.

With --width and --height each stack also shows its arranged rectangle.`,
	Args: cobra.NoArgs,
	RunE: runStacks,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored layouts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the current layout with the default one",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Prune empty stacks and collapse single-child boxes",
	Args:  cobra.NoArgs,
	RunE:  runCleanup,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a layout file against the tree invariants",
	Long: `Decode a JSON or YAML layout snapshot and report every structural
problem found. Exits non-zero when the layout is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current layout as a snapshot",
	Long: `Write the stored (or default) layout as JSON or YAML.

Examples:
  dockyard export > layout.json
  dockyard export --format yaml -o layout.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a layout snapshot under the current name",
	Long: `Read a JSON or YAML snapshot, validate it and store it under the
current layout name. Use - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(showCmd, stacksCmd, listCmd, deleteCmd, resetCmd, cleanupCmd,
		validateCmd, exportCmd, importCmd)

	showCmd.Flags().StringVarP(&showFormat, "format", "f", "tree", "output format: tree, json, yaml")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "draw the layout this many cells wide")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "draw the layout this many rows high")

	stacksCmd.Flags().IntVar(&stacksWidth, "width", 0, "arrange stacks in this width")
	stacksCmd.Flags().IntVar(&stacksHeight, "height", 0, "arrange stacks in this height")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "input format: json, yaml (default from extension)")
}

func runShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	loaded, err := a.LoadLayout()
	if err != nil {
		return err
	}

	if showWidth > 0 && showHeight > 0 {
		fmt.Println(a.Theme.RenderLayout(styles.LayoutView{
			Layout: loaded.Layout,
			Width:  showWidth,
			Height: showHeight,
			Body:   registryBody(a.Ctx(), a.Registry),
		}))
		return nil
	}

	switch showFormat {
	case "tree":
		fmt.Println(a.Theme.Title.Render(a.LayoutName()) + a.Theme.Subtle.Render(" ("+string(loaded.Source)+")"))
		fmt.Println(a.Theme.RenderTree(loaded.Layout))
		return nil
	default:
		format, err := layoutfile.ParseFormat(showFormat)
		if err != nil {
			return err
		}
		return layoutfile.Encode(os.Stdout, entity.SnapshotFromLayout(loaded.Layout), format)
	}
}

// registryBody shows the registered body of a pane, or its title.
func registryBody(ctx context.Context, reg port.ContentRegistry) func(*entity.DockPane) string {
	return func(pane *entity.DockPane) string {
		if meta, ok := reg.Lookup(ctx, pane.ContentID); ok && meta.Body != "" {
			return meta.Body
		}
		return pane.Title
	}
}

func runStacks(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	loaded, err := a.LoadLayout()
	if err != nil {
		return err
	}
	renderStacks(os.Stdout, loaded.Layout, stacksWidth, stacksHeight)
	return nil
}

func renderStacks(w io.Writer, layout *entity.DockLayout, width, height int) {
	rects := service.ArrangeStacks(layout, width, height)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Stack", "Weight", "Active", "Tabs"}
	if len(rects) > 0 {
		header = append(header, "Rect")
	}
	t.AppendHeader(header)

	for _, stack := range layout.Stacks() {
		tabs := make([]string, 0, len(stack.Children))
		for _, p := range stack.Children {
			tabs = append(tabs, p.Title)
		}
		row := table.Row{stack.ID, fmt.Sprintf("%.3g", stack.Weight), stack.ActiveID, strings.Join(tabs, ", ")}
		if len(rects) > 0 {
			rect, _ := service.FindRect(rects, stack.ID)
			row = append(row, fmt.Sprintf("%gx%g+%g+%g", rect.W, rect.H, rect.X, rect.Y))
		}
		t.AppendRow(row)
	}
	t.Render()
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	infos, err := a.Persist.List(a.Ctx())
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println(a.Theme.Subtle.Render("No stored layouts"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Stacks", "Panes", "Updated"})
	for _, info := range infos {
		name := info.Name
		if name == a.LayoutName() {
			name += " *"
		}
		t.AppendRow(table.Row{name, info.StackCount, info.PaneCount, styles.RelativeTime(info.UpdatedAt)})
	}
	t.Render()
	return nil
}

func runDelete(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.Persist.Delete(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(a.Theme.SuccessStyle.Render("Deleted layout " + args[0]))
	return nil
}

func runReset(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	layout, err := a.Persist.Reset(a.Ctx(), a.LayoutName())
	if err != nil {
		return err
	}
	fmt.Println(a.Theme.SuccessStyle.Render("Layout " + a.LayoutName() + " reset"))
	fmt.Println(a.Theme.RenderTree(layout))
	return nil
}

func runCleanup(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.Mutate(func(ctx context.Context, layout *entity.DockLayout) (*usecase.MutationOutput, error) {
		return a.Layouts.Cleanup(ctx, layout)
	})
	if err != nil {
		return err
	}
	return printOutcome(a, "cleanup", out)
}

// readSnapshot decodes a snapshot file, or stdin for "-".
func readSnapshot(path, format string) (*entity.LayoutSnapshot, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f := layoutfile.FormatFromPath(path)
	if format != "" {
		if f, err = layoutfile.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	return layoutfile.Decode(data, f)
}

func runValidate(_ *cobra.Command, args []string) error {
	snap, err := readSnapshot(args[0], "")
	if err != nil {
		return err
	}
	layout, err := entity.LayoutFromSnapshot(snap)
	if err != nil {
		return err
	}

	theme := styles.NewTheme(nil)
	if a := GetApp(); a != nil {
		theme = a.Theme
	}
	problems := validation.ValidateLayout(layout)
	if len(problems) == 0 {
		fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("%s is valid (%d stacks, %d panes)",
			args[0], layout.StackCount(), layout.PaneCount())))
		return nil
	}
	for _, p := range problems {
		fmt.Println(theme.ErrorStyle.Render("✗ ") + p)
	}
	return fmt.Errorf("%s: %d problem(s)", args[0], len(problems))
}

func runExport(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	format, err := layoutfile.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	snap, err := a.Persist.Export(a.Ctx(), a.LayoutName())
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return layoutfile.Encode(os.Stdout, snap, format)
	}
	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOutput, err)
	}
	if err := layoutfile.Encode(f, snap, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, a.Theme.SuccessStyle.Render("Exported "+a.LayoutName()+" to "+exportOutput))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	snap, err := readSnapshot(args[0], importFormat)
	if err != nil {
		return err
	}
	layout, err := a.Persist.Import(a.Ctx(), a.LayoutName(), snap)
	if err != nil {
		return err
	}
	fmt.Println(a.Theme.SuccessStyle.Render(fmt.Sprintf("Imported %d stacks into %s", layout.StackCount(), a.LayoutName())))
	return nil
}
