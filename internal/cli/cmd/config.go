package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/schema"
)

var (
	configForce   bool
	configSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create the config file, list the available keys and show the effective settings.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write the default configuration to the config file, next to a JSON
Schema editors can use for completion. An existing file is kept unless
--force is given.

The first command that loads the config creates the file on its own, so
init is mostly useful with --force to restore the defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every config key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configKeysCmd, configShowCmd, configPathCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configKeysCmd.Flags().StringVarP(&configSection, "section", "s", "", "only list keys of this section")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := configFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	if err := config.WriteConfigFile(config.DefaultConfig(), path, configForce); err != nil {
		return err
	}
	schemaPath, err := schema.WriteConfigSchema(filepath.Dir(path))
	if err != nil {
		return err
	}
	theme := styles.NewTheme(nil)
	fmt.Println(theme.SuccessStyle.Render("Wrote " + path))
	fmt.Println(theme.Subtle.Render("Schema: " + schemaPath))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		fmt.Println(a.Theme.WarningStyle.Render("No keys in section " + configSection))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Type", "Default", "Allowed", "Description"})
	for _, k := range out.Keys {
		allowed := k.Range
		if len(k.Values) > 0 {
			allowed = strings.Join(k.Values, ", ")
		}
		t.AppendRow(table.Row{k.Key, k.Type, k.Default, allowed, k.Description})
	}
	t.Render()
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	data, err := config.EncodeTOML(a.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path := a.Manager().GetConfigFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println(path + a.Theme.Subtle.Render(" (not created yet, run 'dockyard config init')"))
		return nil
	}
	fmt.Println(path)
	return nil
}
