package blueprint

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded
var embedded embed.FS

// DefaultFile is the name of the built-in blueprint inside the embedded tree
const DefaultFile = "blueprint.toml"

// Default returns the built-in blueprint
func Default() (*types.Blueprint, error) {
	sub, err := fs.Sub(embedded, "embedded")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded blueprint is missing")
	}
	return Parse(sub, DefaultFile)
}

// LoadFile loads a blueprint from disk. Template sources are resolved
// relative to the directory holding the file.
func LoadFile(path string) (*types.Blueprint, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBlueprintLoad, "cannot read blueprint %s", path)
	}
	return Parse(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load returns the blueprint at path, or the built-in one when path is empty
func Load(path string) (*types.Blueprint, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes the blueprint called name in fsys, reads every template
// source and validates the result.
func Parse(fsys fs.FS, name string) (*types.Blueprint, error) {
	log := logging.GetLogger("blueprint")

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBlueprintLoad, "failed to read blueprint %s", name)
	}

	var bp types.Blueprint
	if err := toml.Unmarshal(data, &bp); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBlueprintLoad, "failed to parse blueprint %s", name)
	}

	if err := resolveSources(fsys, &bp); err != nil {
		return nil, err
	}
	if err := Validate(&bp); err != nil {
		return nil, err
	}

	log.Debug().
		Str("blueprint", name).
		Int("directories", len(bp.Directories)).
		Int("files", bp.FileCount()).
		Int("templates", len(bp.Templates)).
		Msg("Blueprint loaded")

	return &bp, nil
}

// Export encodes bp as TOML with every template inlined, so the output can
// be fed back through --blueprint on its own.
func Export(bp *types.Blueprint) ([]byte, error) {
	out := exportBlueprint{
		Name:        bp.Name,
		NextSteps:   bp.NextSteps,
		Directories: bp.Directories,
		Templates:   make([]exportRule, 0, len(bp.Templates)),
	}
	for _, t := range bp.Templates {
		out.Templates = append(out.Templates, exportRule{
			Match:   t.Match,
			Kind:    t.Kind,
			Content: t.Content,
		})
	}
	data, err := toml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode blueprint")
	}
	return data, nil
}

type exportBlueprint struct {
	Name        string                 `toml:"name"`
	NextSteps   []string               `toml:"next_steps,omitempty"`
	Directories []types.DirectoryEntry `toml:"directories"`
	Templates   []exportRule           `toml:"templates"`
}

type exportRule struct {
	Match   string         `toml:"match"`
	Kind    types.RuleKind `toml:"kind"`
	Content string         `toml:"content,multiline"`
}

// InferKind returns the rule kind implied by a match string
func InferKind(match string) types.RuleKind {
	if strings.ContainsAny(match, "*?[") {
		return types.RuleGlob
	}
	return types.RuleExact
}

func resolveSources(fsys fs.FS, bp *types.Blueprint) error {
	for i := range bp.Templates {
		rule := &bp.Templates[i]
		if rule.Source == "" {
			continue
		}
		if rule.Content != "" {
			return errors.Newf(errors.ErrBlueprintInvalid,
				"template %q sets both source and content", rule.Match)
		}
		if !fs.ValidPath(rule.Source) {
			return errors.Newf(errors.ErrBlueprintInvalid,
				"template %q has invalid source path %q", rule.Match, rule.Source)
		}
		data, err := fs.ReadFile(fsys, rule.Source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTemplateNotFound,
				"template %q: cannot read %s", rule.Match, rule.Source).
				WithDetail("source", rule.Source)
		}
		rule.Content = string(data)
	}
	return nil
}
