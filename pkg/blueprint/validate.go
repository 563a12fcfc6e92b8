package blueprint

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/arthur-debert/tsscaffold/pkg/types"
)

// Validate checks a blueprint's structure table and template rules, and
// fills in rule kinds that were left empty.
func Validate(bp *types.Blueprint) error {
	if len(bp.Directories) == 0 {
		return errors.New(errors.ErrBlueprintInvalid, "blueprint declares no directories")
	}

	seenDirs := make(map[string]bool, len(bp.Directories))
	for i, dir := range bp.Directories {
		if dir.Path == "" {
			return errors.Newf(errors.ErrBlueprintInvalid, "directory %d has an empty path", i)
		}
		// "." is the root; anything else must be a clean relative path
		if !fs.ValidPath(dir.Path) {
			return errors.Newf(errors.ErrBlueprintInvalid,
				"directory %q must be a clean relative path", dir.Path)
		}
		if seenDirs[dir.Path] {
			return errors.Newf(errors.ErrBlueprintInvalid, "directory %q is declared twice", dir.Path)
		}
		seenDirs[dir.Path] = true

		seenFiles := make(map[string]bool, len(dir.Files))
		for _, name := range dir.Files {
			if err := validateFileName(name); err != nil {
				return errors.Wrapf(err, errors.ErrBlueprintInvalid, "directory %q", dir.Path)
			}
			if seenFiles[name] {
				return errors.Newf(errors.ErrBlueprintInvalid,
					"file %q is declared twice in %q", name, dir.Path)
			}
			seenFiles[name] = true
		}
	}

	for i := range bp.Templates {
		rule := &bp.Templates[i]
		if rule.Match == "" {
			return errors.Newf(errors.ErrBlueprintInvalid, "template %d has an empty match", i)
		}
		if rule.Kind == "" {
			rule.Kind = InferKind(rule.Match)
		}
		switch rule.Kind {
		case types.RuleExact:
		case types.RuleGlob:
			if _, err := filepath.Match(rule.Match, ""); err != nil {
				return errors.Wrapf(err, errors.ErrBlueprintInvalid,
					"template %q has a malformed pattern", rule.Match)
			}
		default:
			return errors.Newf(errors.ErrBlueprintInvalid,
				"template %q has unknown kind %q", rule.Match, rule.Kind)
		}
	}

	return nil
}

func validateFileName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidInput, "empty file name")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid file name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrInvalidInput, "file name %q must not contain a path separator", name)
	}
	return nil
}
