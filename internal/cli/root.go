// Package cli builds tsscaffold's cobra command tree. It is shared by the
// main binary and the man page and completion generators.
package cli

import (
	"fmt"

	"github.com/arthur-debert/tsscaffold/internal/version"
	"github.com/arthur-debert/tsscaffold/pkg/commands"
	"github.com/arthur-debert/tsscaffold/pkg/config"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flag names shared by several commands
const (
	flagRoot      = "root"
	flagBlueprint = "blueprint"
	flagDryRun    = "dry-run"
	flagNoColor   = "no-color"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "tsscaffold",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, root)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&root, flagRoot, "C", ".", MsgFlagRoot)
	rootCmd.PersistentFlags().String(flagBlueprint, "", MsgFlagBlueprint)
	rootCmd.PersistentFlags().Bool(flagNoColor, false, MsgFlagNoColor)

	rootCmd.Flags().Bool(flagDryRun, false, MsgFlagDryRun)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBlueprintCmd(&root))
	rootCmd.AddCommand(newResolveCmd(&root))
	rootCmd.AddCommand(newVersionCmd())

	installHelpTopics(rootCmd)

	return rootCmd
}

// loadConfig layers only the flags the user actually set over the
// configuration files and environment.
func loadConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	flags := cmd.Flags()
	overrides := map[string]interface{}{}

	if flags.Changed(flagBlueprint) {
		v, _ := flags.GetString(flagBlueprint)
		overrides[config.KeyBlueprint] = v
	}
	if flags.Changed(flagDryRun) {
		v, _ := flags.GetBool(flagDryRun)
		overrides[config.KeyDryRun] = v
	}
	if flags.Changed(flagNoColor) {
		v, _ := flags.GetBool(flagNoColor)
		overrides[config.KeyNoColor] = v
	}

	cfg, err := config.Load(root, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrConfig, err)
	}
	return cfg, nil
}

func newConsole(cmd *cobra.Command, cfg *config.Config) *output.Console {
	out := cmd.OutOrStdout()
	return output.NewConsole(out, cfg.Output.NoColor || output.DetectNoColor(out))
}

func runScaffold(cmd *cobra.Command, root string) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	bp, err := commands.LoadBlueprint(cfg.Scaffold.Blueprint)
	if err != nil {
		return err
	}

	console := newConsole(cmd, cfg)
	console.Start(bp.Name, cfg.Scaffold.DryRun)

	result, err := commands.Create(commands.CreateOptions{
		Root:      root,
		Blueprint: bp,
		Config:    cfg,
		Reporter:  console,
	})
	if err != nil {
		return fmt.Errorf(MsgErrScaffold, err)
	}

	var nextSteps []string
	if cfg.Output.NextSteps {
		nextSteps = bp.NextSteps
	}
	console.Summary(result, bp.Name, nextSteps)
	return nil
}
