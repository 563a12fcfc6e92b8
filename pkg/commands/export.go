package commands

import (
	"github.com/arthur-debert/tsscaffold/pkg/blueprint"
	"github.com/arthur-debert/tsscaffold/pkg/types"
)

// ExportBlueprint encodes the blueprint as self-contained TOML, with every
// template's content inlined. A nil blueprint exports the built-in one.
func ExportBlueprint(bp *types.Blueprint) ([]byte, error) {
	if bp == nil {
		var err error
		if bp, err = LoadBlueprint(""); err != nil {
			return nil, err
		}
	}
	return blueprint.Export(bp)
}
