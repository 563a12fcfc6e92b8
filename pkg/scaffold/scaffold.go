package scaffold

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/arthur-debert/tsscaffold/pkg/filesystem"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/rules"
	"github.com/arthur-debert/tsscaffold/pkg/types"
	"github.com/rs/zerolog"
)

// Default permissions for created paths
const (
	DefaultDirMode  fs.FileMode = 0755
	DefaultFileMode fs.FileMode = 0644
)

// Reporter receives a notice for every path the scaffolder ensures
type Reporter interface {
	Item(item types.ItemResult)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(item types.ItemResult)

// Item calls f(item)
func (f ReporterFunc) Item(item types.ItemResult) { f(item) }

// Options defines the options for a Scaffolder.
type Options struct {
	// Root is the project root every blueprint directory is relative to.
	Root string
	// Blueprint is the skeleton to materialize.
	Blueprint *types.Blueprint
	// FileSystem is the filesystem to use (optional, defaults to the OS
	// filesystem, or to a dry-run overlay when DryRun is set)
	FileSystem types.FS
	// Reporter receives per-item notices (optional)
	Reporter Reporter
	// DirMode and FileMode are applied to created paths (optional)
	DirMode  fs.FileMode
	FileMode fs.FileMode
	// DryRun marks results as previews
	DryRun bool
}

// Scaffolder creates a blueprint's directories and files, never clobbering
// what is already there.
type Scaffolder struct {
	root      string
	blueprint *types.Blueprint
	resolver  *rules.Resolver
	fs        types.FS
	reporter  Reporter
	dirMode   fs.FileMode
	fileMode  fs.FileMode
	dryRun    bool
	items     []types.ItemResult
	logger    zerolog.Logger
}

// New creates a Scaffolder
func New(opts Options) (*Scaffolder, error) {
	if opts.Root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "project root cannot be empty")
	}
	if opts.Blueprint == nil {
		return nil, errors.New(errors.ErrInvalidInput, "blueprint is required")
	}

	fsys := opts.FileSystem
	if fsys == nil {
		if opts.DryRun {
			fsys = filesystem.NewDryRun()
		} else {
			fsys = filesystem.NewOS()
		}
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = ReporterFunc(func(types.ItemResult) {})
	}

	dirMode := opts.DirMode
	if dirMode == 0 {
		dirMode = DefaultDirMode
	}
	fileMode := opts.FileMode
	if fileMode == 0 {
		fileMode = DefaultFileMode
	}

	return &Scaffolder{
		root:      opts.Root,
		blueprint: opts.Blueprint,
		resolver:  rules.NewResolver(opts.Blueprint.Templates),
		fs:        fsys,
		reporter:  reporter,
		dirMode:   dirMode,
		fileMode:  fileMode,
		dryRun:    opts.DryRun,
		logger:    logging.GetLogger("scaffold"),
	}, nil
}

// Resolver returns the template resolver built from the blueprint
func (s *Scaffolder) Resolver() *rules.Resolver {
	return s.resolver
}

// Run ensures the project root and then every declared directory and file,
// in blueprint order. On error the partial result is returned with it.
func (s *Scaffolder) Run() (*types.ScaffoldResult, error) {
	done := logging.LogOperationStart(s.logger, "scaffold")
	defer done()

	s.items = nil
	result := &types.ScaffoldResult{Root: s.root, DryRun: s.dryRun}

	s.logger.Info().
		Str("root", s.root).
		Str("blueprint", s.blueprint.Name).
		Int("directories", len(s.blueprint.Directories)).
		Int("files", s.blueprint.FileCount()).
		Bool("dryRun", s.dryRun).
		Msg("Starting scaffold")

	if _, err := s.EnsureDir(s.root); err != nil {
		result.Items = s.items
		return result, err
	}

	for _, dir := range s.blueprint.Directories {
		dirPath := s.root
		if dir.Path != types.RootDir {
			dirPath = filepath.Join(s.root, filepath.FromSlash(dir.Path))
		}

		if _, err := s.EnsureDir(dirPath); err != nil {
			result.Items = s.items
			return result, err
		}

		for _, name := range dir.Files {
			content, rule := s.resolver.Resolve(name)
			item, err := s.ensureFile(filepath.Join(dirPath, name), content, rule)
			if err != nil {
				result.Items = s.items
				return result, err
			}
			s.logger.Debug().
				Str("file", item.Path).
				Str("status", string(item.Status)).
				Str("rule", rule).
				Msg("File ensured")
		}
	}

	result.Items = s.items
	s.logger.Info().
		Int("created", len(result.Created())).
		Int("items", len(result.Items)).
		Msg("Scaffold finished")
	return result, nil
}

// EnsureDir creates path and any missing ancestors when it does not exist.
// An existing directory is reported and left alone; an existing
// non-directory is a conflict.
func (s *Scaffolder) EnsureDir(path string) (types.ItemResult, error) {
	return s.ensureDir(path, false)
}

// EnsureFile writes content to a new file at path, creating its parent
// directory first. An existing file is never rewritten.
func (s *Scaffolder) EnsureFile(path, content string) (types.ItemResult, error) {
	return s.ensureFile(path, content, "")
}

func (s *Scaffolder) ensureDir(path string, quiet bool) (types.ItemResult, error) {
	item := types.ItemResult{Kind: types.ItemDirectory, Path: path}

	info, err := s.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return item, errors.Newf(errors.ErrPathConflict,
				"%s exists and is not a directory", path).WithDetail("path", path)
		}
		item.Status = types.StatusExists
		if !quiet {
			s.report(item)
		}
		return item, nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return item, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path).
			WithDetail("path", path)
	}

	if err := s.fs.MkdirAll(path, s.dirMode); err != nil {
		return item, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", path).
			WithDetail("path", path)
	}

	item.Status = types.StatusCreated
	s.report(item)
	return item, nil
}

func (s *Scaffolder) ensureFile(path, content, rule string) (types.ItemResult, error) {
	item := types.ItemResult{Kind: types.ItemFile, Path: path}

	info, err := s.fs.Stat(path)
	if err == nil {
		if info.IsDir() {
			return item, errors.Newf(errors.ErrPathConflict,
				"%s exists and is a directory", path).WithDetail("path", path)
		}
		item.Status = types.StatusExists
		s.report(item)
		return item, nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return item, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path).
			WithDetail("path", path)
	}

	// The driver already reported the parent; only a creation is news here
	if _, err := s.ensureDir(filepath.Dir(path), true); err != nil {
		return item, err
	}

	if err := s.fs.WriteFile(path, []byte(content), s.fileMode); err != nil {
		return item, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	item.Status = types.StatusCreated
	item.Rule = rule
	s.report(item)
	return item, nil
}

func (s *Scaffolder) report(item types.ItemResult) {
	s.items = append(s.items, item)
	s.reporter.Item(item)
}
