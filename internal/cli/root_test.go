package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/tsscaffold/internal/version"
	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/arthur-debert/tsscaffold/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_Scaffold(t *testing.T) {
	root := testutil.Isolate(t)

	out, err := execute(t, "-C", root)
	require.NoError(t, err)

	assert.Contains(t, out, "🚀 Creating TsStoreX project structure...")
	assert.Contains(t, out, "✅ created file: "+filepath.Join(root, "src", "core", "store.ts")+" (*.ts)")
	assert.Contains(t, out, "🎉 TsStoreX project structure is ready!")
	assert.Contains(t, out, "📁 Project root: "+root)
	assert.Contains(t, out, "   1. cd "+root)

	content, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"TODO\": \"待實現\"\n}\n", string(content))

	// Second run reports everything as already present
	out, err = execute(t, "-C", root)
	require.NoError(t, err)
	assert.NotContains(t, out, "✅ created")
	assert.Contains(t, out, "⏭️  file exists: "+filepath.Join(root, "LICENSE"))
	assert.Contains(t, out, "📊 0 directories and 0 files created")
}

func TestRootCmd_DryRun(t *testing.T) {
	root := filepath.Join(testutil.Isolate(t), "preview")

	out, err := execute(t, "--dry-run", "-C", root)
	require.NoError(t, err)

	assert.Contains(t, out, "📝 would create directory: "+root)
	assert.Contains(t, out, "nothing was written")

	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_ProjectConfigAndEnv(t *testing.T) {
	root := testutil.Isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".tsscaffold.toml"), []byte("[scaffold]\ndry_run = true\n"), 0644))
	t.Setenv("TSSCAFFOLD_OUTPUT__NEXT_STEPS", "false")

	out, err := execute(t, "-C", root)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing was written")
	assert.NotContains(t, out, "Next steps")

	_, err = os.Stat(filepath.Join(root, "src"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_PathConflict(t *testing.T) {
	root := testutil.Isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "core"), []byte("in the way"), 0644))

	out, err := execute(t, "-C", root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathConflict))
	assert.NotContains(t, out, "project structure is ready")

	// Nothing after the conflicting entry was created
	_, err = os.Stat(filepath.Join(root, "src", "signals"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	testutil.Isolate(t)
	_, err := execute(t, "somewhere")
	require.Error(t, err)
}

func TestBlueprintCmd(t *testing.T) {
	root := testutil.Isolate(t)

	out, err := execute(t, "-C", root, "blueprint")
	require.NoError(t, err)
	assert.Contains(t, out, "TsStoreX")
	assert.Contains(t, out, "src/core")
	assert.Contains(t, out, "[[templates]]")
	assert.NotContains(t, out, "source =")

	// Exporting writes nothing into the root
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBlueprintCmd_CustomBlueprint(t *testing.T) {
	root := testutil.Isolate(t)
	path := filepath.Join(root, "mini.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"Mini\"\n\n[[directories]]\npath = \"lib\"\n"), 0644))

	out, err := execute(t, "--blueprint", path, "blueprint")
	require.NoError(t, err)
	assert.Contains(t, out, "Mini")
	assert.NotContains(t, out, "TsStoreX")
}

func TestResolveCmd(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "resolve", "index.ts", "store.ts", "Makefile")
	require.NoError(t, err)

	assert.Contains(t, out, "index.ts -> index.ts\n// TODO: 導出此模組的公共 API\nexport * from './types';\n")
	assert.Contains(t, out, "store.ts -> *.ts\n")
	assert.Contains(t, out, "Makefile -> (none)\n(empty file)\n")

	_, err = execute(t, "resolve")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tsscaffold version "+version.Version+"\n"))
}

func TestHelpUsesTemplate(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "--dry-run")
	assert.Contains(t, out, "resolve")
}

func TestHelpTopics(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  blueprints\n  configuration\n")
	assert.Contains(t, out, "  --dry-run\n")

	out, err = execute(t, "help", "configuration")
	require.NoError(t, err)
	assert.Contains(t, out, "TSSCAFFOLD_PERMISSIONS__FILE")
}
