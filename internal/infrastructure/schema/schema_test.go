package schema

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestLayout(t *testing.T) {
	data, err := Marshal(Layout())
	require.NoError(t, err)

	doc := decode(t, data)
	assert.Equal(t, layoutSchemaID, doc["$id"])

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, defs, "NodeSnapshot")
	assert.Contains(t, string(data), `"box"`, "node type enum is exported")
}

func TestWriteConfigSchema(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteConfigSchema(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := decode(t, data)
	assert.Equal(t, configSchemaID, doc["$id"])
	assert.Contains(t, string(data), "edge_threshold")
}
