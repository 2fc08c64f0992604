package display

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"sync"

	"github.com/gosimple/slug"

	"github.com/banshee-data/image.course/internal/fsutil"
)

// Snapshots writes presented images as numbered PNG files instead of
// opening windows. Dismissal is immediate, which suits CI and machines
// without a display.
type Snapshots struct {
	fs  fsutil.FileSystem
	dir string

	mu      sync.Mutex
	seq     int
	written []string
}

// NewSnapshots writes into dir through fsys. A nil fsys selects the OS
// filesystem.
func NewSnapshots(fsys fsutil.FileSystem, dir string) *Snapshots {
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}
	return &Snapshots{fs: fsys, dir: dir}
}

// Dir returns the output directory.
func (s *Snapshots) Dir() string {
	return s.dir
}

// Written returns every file written so far, in order.
func (s *Snapshots) Written() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.written...)
}

// View implements Viewer.
func (s *Snapshots) View(caption string, img image.Image) error {
	return s.write(caption, img)
}

// Open implements WindowSystem.
func (s *Snapshots) Open(title string) (Surface, error) {
	return &snapshotSurface{owner: s, title: title}, nil
}

// WaitKey implements WindowSystem. There is nothing to wait for.
func (s *Snapshots) WaitKey() error { return nil }

func (s *Snapshots) write(title string, img image.Image) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	s.mu.Lock()
	s.seq++
	name := filepath.Join(s.dir, fmt.Sprintf("%03d_%s.png", s.seq, Slug(title)))
	s.written = append(s.written, name)
	s.mu.Unlock()

	f, err := s.fs.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}

type snapshotSurface struct {
	owner *Snapshots
	title string
}

func (s *snapshotSurface) Show(img image.Image) error {
	return s.owner.write(s.title, img)
}

func (s *snapshotSurface) Close() error { return nil }

// Slug turns a title into a lowercase, dash-separated file name stem.
func Slug(title string) string {
	if out := slug.Make(title); out != "" {
		return out
	}
	return "image"
}
