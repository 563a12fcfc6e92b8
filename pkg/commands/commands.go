// Package commands provides the high-level operations behind the CLI.
//
// It sits between the cobra commands and the core packages: each function
// takes an options struct, resolves defaults (configuration, blueprint,
// filesystem) and returns a result for the caller to render. Nothing here
// writes to the terminal.
package commands

import (
	"github.com/arthur-debert/tsscaffold/pkg/blueprint"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/types"
)

// LoadBlueprint returns the blueprint at path, or the built-in one when path
// is empty. Relative paths are resolved against the working directory.
func LoadBlueprint(path string) (*types.Blueprint, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("path", path).Msg("Loading blueprint")

	bp, err := blueprint.Load(path)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", bp.Name).
		Int("directories", len(bp.Directories)).
		Int("templates", len(bp.Templates)).
		Msg("Blueprint loaded")
	return bp, nil
}
