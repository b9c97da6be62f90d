// Package idgen generates node ids for boxes and stacks.
package idgen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// shortLen keeps ids readable in logs and CLI output.
const shortLen = 8

// New returns a generator of short random ids with the given prefix,
// e.g. "stack-1f0c2a9b".
func New(prefix string) entity.IDGenerator {
	return func() string {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:shortLen]
		if prefix == "" {
			return id
		}
		return prefix + "-" + id
	}
}
