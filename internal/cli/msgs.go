package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Create the TsStoreX project skeleton"
	MsgBlueprintShort = "Print the effective blueprint as TOML"
	MsgResolveShort   = "Show the template chosen for file names"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview what would be created without writing anything"
	MsgFlagRoot      = "Project root to scaffold into"
	MsgFlagBlueprint = "Blueprint TOML file to use instead of the built-in one"
	MsgFlagNoColor   = "Disable colored output"

	// Error messages
	MsgErrConfig   = "failed to load configuration: %w"
	MsgErrScaffold = "scaffold stopped: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/blueprint-long.txt
	msgBlueprintLongRaw string
	MsgBlueprintLong    = strings.TrimSpace(msgBlueprintLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
