// Package resolver locates course assets below a fixed base directory.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/image.course/internal/fsutil"
)

// Resolved is the outcome of a single lookup. An empty FullPath means no
// path was computed (blank filename).
type Resolved struct {
	Exists   bool
	FullPath string
}

// NotFound returns a NotFoundError for a lookup that missed, or nil when
// the file exists.
func (r Resolved) NotFound() error {
	if r.Exists {
		return nil
	}
	return &NotFoundError{Path: r.FullPath}
}

// NotFoundError describes a lookup miss. It is informational; Resolve never
// returns it.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return "no file name given"
	}
	return fmt.Sprintf("There is not file %s", e.Path)
}

// FilesystemError reports a stat failure that is not "does not exist",
// such as permission denied or an I/O error.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("check %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Resolver joins file names onto a base directory fixed at construction.
type Resolver struct {
	baseDir string
	fs      fsutil.FileSystem
}

// NewResolver returns a Resolver rooted at baseDir. A nil fs selects the OS
// filesystem.
func NewResolver(baseDir string, fsys fsutil.FileSystem) *Resolver {
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}
	return &Resolver{baseDir: baseDir, fs: fsys}
}

// BaseDir returns the directory all lookups are relative to.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Path computes base/subFolders.../filename without touching the filesystem.
func (r *Resolver) Path(filename string, subFolders ...string) string {
	parts := make([]string, 0, len(subFolders)+2)
	parts = append(parts, r.baseDir)
	parts = append(parts, subFolders...)
	parts = append(parts, filename)
	return filepath.Join(parts...)
}

// Resolve checks whether filename exists under base/subFolders.
//
// A blank filename yields a zero Resolved and no filesystem access. A miss
// still reports the checked path. Only stat failures other than "not
// exist" are returned as errors, wrapped in *FilesystemError.
func (r *Resolver) Resolve(filename string, subFolders ...string) (Resolved, error) {
	if strings.TrimSpace(filename) == "" {
		return Resolved{}, nil
	}

	full := r.Path(filename, subFolders...)
	if _, err := r.fs.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolved{FullPath: full}, nil
		}
		return Resolved{FullPath: full}, &FilesystemError{Path: full, Err: err}
	}
	return Resolved{Exists: true, FullPath: full}, nil
}

// ExecutableDir returns the absolute directory holding the running binary.
// The entry point calls it once at startup and injects the result.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
