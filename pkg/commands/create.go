package commands

import (
	"github.com/arthur-debert/tsscaffold/pkg/config"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/scaffold"
	"github.com/arthur-debert/tsscaffold/pkg/types"
)

// CreateOptions defines the options for the Create command.
type CreateOptions struct {
	// Root is the project root to scaffold into.
	Root string
	// Blueprint to materialize (optional, loaded from Config when nil)
	Blueprint *types.Blueprint
	// Config supplies permissions and dry-run (optional, defaults apply)
	Config *config.Config
	// FileSystem is the filesystem to use (optional, defaults to the OS
	// filesystem or a dry-run overlay)
	FileSystem types.FS
	// Reporter receives one notice per ensured path (optional)
	Reporter scaffold.Reporter
}

// Create materializes the blueprint under Root. On failure the partial
// result is returned alongside the error.
func Create(opts CreateOptions) (*types.ScaffoldResult, error) {
	log := logging.GetLogger("commands.create")
	log.Debug().Str("command", "Create").Str("root", opts.Root).Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	bp := opts.Blueprint
	if bp == nil {
		var err error
		if bp, err = LoadBlueprint(cfg.Scaffold.Blueprint); err != nil {
			return nil, err
		}
	}

	s, err := scaffold.New(scaffold.Options{
		Root:       opts.Root,
		Blueprint:  bp,
		FileSystem: opts.FileSystem,
		Reporter:   opts.Reporter,
		DirMode:    cfg.Permissions.Directory,
		FileMode:   cfg.Permissions.File,
		DryRun:     cfg.Scaffold.DryRun,
	})
	if err != nil {
		return nil, err
	}

	return s.Run()
}
