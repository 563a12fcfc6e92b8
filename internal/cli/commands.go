package cli

import (
	"fmt"

	"github.com/arthur-debert/tsscaffold/internal/version"
	"github.com/arthur-debert/tsscaffold/pkg/commands"
	"github.com/spf13/cobra"
)

func newBlueprintCmd(root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "blueprint",
		Short: MsgBlueprintShort,
		Long:  MsgBlueprintLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *root)
			if err != nil {
				return err
			}
			bp, err := commands.LoadBlueprint(cfg.Scaffold.Blueprint)
			if err != nil {
				return err
			}
			data, err := commands.ExportBlueprint(bp)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newResolveCmd(root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <filename>...",
		Short: MsgResolveShort,
		Long:  MsgResolveLong,
		Example: `  tsscaffold resolve index.ts store.ts package.json
  tsscaffold resolve --blueprint ./my-blueprint.toml docs/API.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *root)
			if err != nil {
				return err
			}
			bp, err := commands.LoadBlueprint(cfg.Scaffold.Blueprint)
			if err != nil {
				return err
			}
			resolutions, err := commands.Resolve(commands.ResolveOptions{
				Blueprint: bp,
				Filenames: args,
			})
			if err != nil {
				return err
			}

			console := newConsole(cmd, cfg)
			for _, r := range resolutions {
				console.Resolution(r.Filename, r.Rule, r.Content)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tsscaffold version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
