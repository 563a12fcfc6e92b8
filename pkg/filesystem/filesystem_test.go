package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()

	// Nested directories are created ancestor first
	subDir := filepath.Join(tmpDir, "src", "core")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	info, err := fsys.Stat(subDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// MkdirAll on an existing directory is a no-op
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	testFile := filepath.Join(subDir, "index.ts")
	content := []byte("export * from './types';\n")
	require.NoError(t, fsys.WriteFile(testFile, content, 0644))

	got, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	entries, err := fsys.ReadDir(subDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.ts", entries[0].Name())
}

func TestNewOS_MkdirAllThroughFile(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	blocker := filepath.Join(tmpDir, "examples")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))

	err := fsys.MkdirAll(filepath.Join(blocker, "basic"), 0755)
	require.Error(t, err)
}

func TestAferoFS(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.MkdirAll("/project/docs", 0755))
	require.NoError(t, fsys.WriteFile("/project/docs/API.md", []byte("# API\n"), 0644))

	content, err := fsys.ReadFile("/project/docs/API.md")
	require.NoError(t, err)
	assert.Equal(t, "# API\n", string(content))

	_, err = fsys.ReadFile("/project/docs")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fsys.Stat("/project/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	entries, err := fsys.ReadDir("/project")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}

func TestDryRun_LeavesDiskUntouched(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("# mine\n"), 0644))

	fsys := NewDryRun()

	// Existing files are visible through the overlay
	content, err := fsys.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))

	newDir := filepath.Join(tmpDir, "src")
	require.NoError(t, fsys.MkdirAll(newDir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(newDir, "index.ts"), []byte("x"), 0644))

	// The overlay sees the writes
	_, err = fsys.Stat(filepath.Join(newDir, "index.ts"))
	require.NoError(t, err)

	// The disk does not
	_, err = os.Stat(newDir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewAferoFS_WrapsGivenFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/a.txt", []byte("a"), 0644))

	fsys := NewAferoFS(mem)
	content, err := fsys.ReadFile("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))
}
