package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if versionShort {
			fmt.Println(buildInfo.Version)
			return nil
		}
		fmt.Println(renderVersion(styles.NewTheme(nil), buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version only")
}

func renderVersion(t *styles.Theme, info build.Info) string {
	row := func(label, value string) string {
		if value == "" {
			value = "unknown"
		}
		return t.Subtle.Render(fmt.Sprintf("%-8s", label)) + " " + t.Normal.Render(value)
	}
	return t.Title.Render("dockyard") + " " + t.Highlight.Render(info.Version) + "\n" +
		row("commit", info.Commit) + "\n" +
		row("built", info.BuildDate) + "\n" +
		row("go", info.GoVersion) + "\n" +
		row("source", build.RepoURL())
}
