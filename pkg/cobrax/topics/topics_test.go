package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"blueprints.md":       {Data: []byte("# Blueprints\n\nHow blueprints work\n")},
		"option-dry-run.txt":  {Data: []byte("Dry run writes nothing\n")},
		"nested/config.txt":   {Data: []byte("Configuration layers\n")},
		"ignored.json":        {Data: []byte("{}")},
		"nested/ignored.yaml": {Data: []byte("a: b")},
	}
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return strings.ToUpper(content)
}

func TestLoad(t *testing.T) {
	m, err := Load(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"blueprints", "config", "option-dry-run"}, m.Names())

	topic, ok := m.Get("config")
	require.True(t, ok)
	assert.Equal(t, ".txt", topic.Format)
	assert.Equal(t, "Configuration layers\n", topic.Content)

	_, ok = m.Get("ignored")
	assert.False(t, ok)
}

func TestLoad_CustomExtensions(t *testing.T) {
	m, err := Load(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ignored"}, m.Names())
}

func TestGet_FlagSpelling(t *testing.T) {
	m, err := Load(testFS(), Options{})
	require.NoError(t, err)

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := m.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

func newRoot(t *testing.T, renderer Renderer) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	m, err := Load(testFS(), Options{Renderer: renderer})
	require.NoError(t, err)

	root := &cobra.Command{Use: "tool", Short: "A tool", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall_ListTopics(t *testing.T) {
	root, out := newRoot(t, nil)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Equal(t, `Available help topics:

General topics:
  blueprints
  config

Option topics:
  --dry-run

Use 'tool help <topic>' to read about a specific topic.
`, out.String())
}

func TestInstall_ShowTopic(t *testing.T) {
	renderer := &upperRenderer{}
	root, out := newRoot(t, renderer)
	root.SetArgs([]string{"help", "blueprints"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "# BLUEPRINTS\n\nHOW BLUEPRINTS WORK\n", out.String())
	assert.Equal(t, []string{".md"}, renderer.formats)
}

func TestInstall_FallsBackToCommandHelp(t *testing.T) {
	root, out := newRoot(t, nil)
	root.SetArgs([]string{"help", "sub"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "A subcommand")
}
