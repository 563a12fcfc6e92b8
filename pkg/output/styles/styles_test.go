package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, Parse(defaultStyles))
	})
}

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Title", "Rule", "Created", "Exists", "Preview", "Path", "RuleName", "Success", "Count", "Error", "Muted"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %s", name)
	}

	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("RuleName").GetItalic())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStyles(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  pink:
    light: "#FF00FF"
    dark: "#FF77FF"
styles:
  Error:
    underline: true
    foreground: pink
`), 0644))

	require.NoError(t, LoadStyles(path))
	assert.True(t, GetStyle("Error").GetUnderline())
	assert.False(t, GetStyle("Error").GetBold())

	_, ok := StyleRegistry["Created"]
	assert.False(t, ok, "a loaded file replaces the registry")
}

func TestLoadStyles_Errors(t *testing.T) {
	restoreDefaults(t)

	err := LoadStyles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	err = Parse([]byte("styles: [not, a, map"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
