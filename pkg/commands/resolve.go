package commands

import (
	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/arthur-debert/tsscaffold/pkg/rules"
	"github.com/arthur-debert/tsscaffold/pkg/types"
)

// ResolveOptions defines the options for the Resolve command.
type ResolveOptions struct {
	// Blueprint whose template rules are used (optional, built-in when nil)
	Blueprint *types.Blueprint
	// Filenames to resolve, matched on their base name
	Filenames []string
}

// Resolution is the outcome of resolving one filename
type Resolution struct {
	Filename string
	Rule     string
	Content  string
}

// Resolve reports which template rule each filename picks and its content
func Resolve(opts ResolveOptions) ([]Resolution, error) {
	if len(opts.Filenames) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one filename is required")
	}

	bp := opts.Blueprint
	if bp == nil {
		var err error
		if bp, err = LoadBlueprint(""); err != nil {
			return nil, err
		}
	}

	resolver := rules.NewResolver(bp.Templates)
	out := make([]Resolution, 0, len(opts.Filenames))
	for _, name := range opts.Filenames {
		content, rule := resolver.Resolve(name)
		out = append(out, Resolution{Filename: name, Rule: rule, Content: content})
	}
	return out, nil
}
