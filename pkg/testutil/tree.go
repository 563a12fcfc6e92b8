package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tsscaffold/pkg/types"
	"github.com/stretchr/testify/require"
)

// DirMarker is the snapshot value recorded for directories
const DirMarker = "<dir>"

// Snapshot walks root and returns every path below it, relative to root and
// slash separated, mapped to file content or DirMarker.
func Snapshot(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	tree := make(map[string]string)
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err, "reading %s", dir)
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			rel, err := filepath.Rel(root, path)
			require.NoError(t, err)
			rel = filepath.ToSlash(rel)

			if entry.IsDir() {
				tree[rel] = DirMarker
				walk(path)
				continue
			}
			content, err := fsys.ReadFile(path)
			require.NoError(t, err, "reading %s", path)
			tree[rel] = string(content)
		}
	}
	walk(root)
	return tree
}
