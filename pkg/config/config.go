package config

import "io/fs"

// FileName is the per-project config file looked up in the project root
const FileName = ".tsscaffold.toml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "TSSCAFFOLD_"

// Config holds all tsscaffold settings
type Config struct {
	Scaffold    Scaffold    `koanf:"scaffold"`
	Permissions Permissions `koanf:"permissions"`
	Output      Output      `koanf:"output"`
}

// Scaffold controls what gets materialized
type Scaffold struct {
	// Blueprint is a path to a blueprint file; empty means built-in
	Blueprint string `koanf:"blueprint"`
	DryRun    bool   `koanf:"dry_run"`
}

// Permissions are applied to created paths
type Permissions struct {
	Directory fs.FileMode `koanf:"directory"`
	File      fs.FileMode `koanf:"file"`
}

// Output controls console rendering
type Output struct {
	NoColor   bool `koanf:"no_color"`
	NextSteps bool `koanf:"next_steps"`
}

// Config keys, as used by flag overrides
const (
	KeyBlueprint     = "scaffold.blueprint"
	KeyDryRun        = "scaffold.dry_run"
	KeyDirectoryMode = "permissions.directory"
	KeyFileMode      = "permissions.file"
	KeyNoColor       = "output.no_color"
	KeyNextSteps     = "output.next_steps"
)
