package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	gen := New("node")
	seen := map[string]bool{}
	for range 100 {
		id := gen()
		require.True(t, strings.HasPrefix(id, "node-"))
		assert.Len(t, id, len("node-")+shortLen)
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, New("")(), shortLen)
}
