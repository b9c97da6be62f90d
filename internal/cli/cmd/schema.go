package cmd

import (
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/infrastructure/schema"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema <layout|config>",
	Short: "Print the JSON Schema of layout snapshots or the config file",
	Long: `Print a JSON Schema for layout snapshot files (as written by export)
or for the config file.

Examples:
  dockyard schema layout > layout.schema.json
  dockyard schema config -o config.schema.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"layout", "config"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write to file instead of stdout")
}

func runSchema(_ *cobra.Command, args []string) error {
	var s *jsonschema.Schema
	switch args[0] {
	case "layout":
		s = schema.Layout()
	case "config":
		s = schema.Config()
	default:
		return fmt.Errorf("unknown schema %q (use: layout, config)", args[0])
	}

	data, err := schema.Marshal(s)
	if err != nil {
		return err
	}
	if schemaOutput == "" {
		_, err = fmt.Println(string(data))
		return err
	}
	return os.WriteFile(schemaOutput, append(data, '\n'), 0o644)
}
