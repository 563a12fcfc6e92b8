package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tsscaffold/pkg/config"
	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Empty(t, cfg.Scaffold.Blueprint)
	assert.False(t, cfg.Scaffold.DryRun)
	assert.Equal(t, fs.FileMode(0755), cfg.Permissions.Directory)
	assert.Equal(t, fs.FileMode(0644), cfg.Permissions.File)
	assert.False(t, cfg.Output.NoColor)
	assert.True(t, cfg.Output.NextSteps)
}

func TestLoad_NoSourcesMatchesDefault(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Layers(t *testing.T) {
	root := t.TempDir()
	writeProjectConfig(t, root, `
[scaffold]
blueprint = "custom.toml"

[permissions]
directory = "0700"
file = "0600"

[output]
next_steps = false
`)

	t.Run("project_file", func(t *testing.T) {
		cfg, err := config.Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "custom.toml", cfg.Scaffold.Blueprint)
		assert.Equal(t, fs.FileMode(0700), cfg.Permissions.Directory)
		assert.Equal(t, fs.FileMode(0600), cfg.Permissions.File)
		assert.False(t, cfg.Output.NextSteps)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		t.Setenv("TSSCAFFOLD_PERMISSIONS__FILE", "0640")
		t.Setenv("TSSCAFFOLD_OUTPUT__NO_COLOR", "true")

		cfg, err := config.Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0640), cfg.Permissions.File)
		assert.True(t, cfg.Output.NoColor)
		assert.Equal(t, "custom.toml", cfg.Scaffold.Blueprint)
	})

	t.Run("flags_override_env", func(t *testing.T) {
		t.Setenv("TSSCAFFOLD_SCAFFOLD__DRY_RUN", "false")

		cfg, err := config.Load(root, map[string]interface{}{
			config.KeyDryRun:    true,
			config.KeyBlueprint: "flag.toml",
		})
		require.NoError(t, err)
		assert.True(t, cfg.Scaffold.DryRun)
		assert.Equal(t, "flag.toml", cfg.Scaffold.Blueprint)
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed_toml", content: "[scaffold\nblueprint ="},
		{name: "non_octal_mode", content: "[permissions]\nfile = \"rw-r--r--\""},
		{name: "mode_out_of_range", content: "[permissions]\ndirectory = \"17777\""},
		{name: "zero_mode", content: "[permissions]\nfile = \"0\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeProjectConfig(t, root, tt.content)

			_, err := config.Load(root, nil)
			require.Error(t, err)
			assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
		})
	}
}
