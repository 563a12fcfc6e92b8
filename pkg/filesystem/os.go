package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/types"
	"github.com/rs/zerolog"
)

// osFS implements types.FS on the OS filesystem. Reads use the os package
// directly; every mutation runs as a single synthfs operation.
type osFS struct {
	sfs    *synthfs.SynthFS
	fs     filesystem.FullFileSystem
	logger zerolog.Logger
}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	// Use PathAwareFileSystem to handle absolute paths directly
	osfs := filesystem.NewOSFileSystem("/")
	return &osFS{
		sfs:    synthfs.New(),
		fs:     synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(),
		logger: logging.GetLogger("filesystem.os"),
	}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// WriteFile creates name with data. The parent directory must exist.
func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	target, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	id := fmt.Sprintf("write_%s_%d", filepath.Base(target), time.Now().UnixNano())
	return o.run(o.sfs.CreateFileWithID(id, target, data, perm))
}

// MkdirAll creates path and any missing ancestors, outermost first, one
// synthfs operation per directory.
func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var missing []string
	for dir := target; ; dir = filepath.Dir(dir) {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: fs.ErrExist}
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		missing = append(missing, dir)
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		dir := missing[i]
		id := fmt.Sprintf("mkdir_%s_%d", filepath.Base(dir), time.Now().UnixNano())
		if err := o.run(o.sfs.CreateDirWithID(id, dir, perm)); err != nil {
			return err
		}
	}
	return nil
}

func (o *osFS) run(op synthfs.Operation) error {
	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	o.logger.Trace().Str("operation", string(op.ID())).Msg("Running synthfs operation")
	if _, err := synthfs.RunWithOptions(context.Background(), o.fs, options, op); err != nil {
		return fmt.Errorf("synthfs operation %s failed: %w", op.ID(), err)
	}
	return nil
}
