// Package schema generates JSON Schemas for the layout snapshot format and
// the configuration file, for use by external validators and editors.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

const (
	layoutSchemaID = "https://github.com/bnema/dockyard/layout.schema.json"
	configSchemaID = "https://github.com/bnema/dockyard/config.schema.json"

	// ConfigSchemaFile is written next to config.toml.
	ConfigSchemaFile = "config.schema.json"

	filePerm = 0o644
)

// Layout returns the JSON Schema of entity.LayoutSnapshot.
func Layout() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	s := r.Reflect(&entity.LayoutSnapshot{})
	s.ID = layoutSchemaID
	s.Title = "Dockyard Layout"
	s.Description = "Serialized dock layout: a tree of boxes and stacks holding panes"
	return s
}

// Config returns the JSON Schema of the configuration file.
func Config() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	s := r.Reflect(&config.Config{})
	s.ID = configSchemaID
	s.Title = "Dockyard Configuration"
	s.Description = "Configuration schema for dockyard"
	return s
}

// Marshal renders a schema as indented JSON.
func Marshal(s *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteConfigSchema writes the configuration schema into dir and returns the
// written path.
func WriteConfigSchema(dir string) (string, error) {
	data, err := Marshal(Config())
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ConfigSchemaFile)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
