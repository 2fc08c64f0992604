package display

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// FitWidth is the width images are scaled to when fitting the screen.
const FitWidth = 300

// WindowSystem opens independent display surfaces and waits for the single
// signal that dismisses all of them.
type WindowSystem interface {
	Open(title string) (Surface, error)
	WaitKey() error
}

// Surface is one independently resizable window.
type Surface interface {
	Show(img image.Image) error
	Close() error
}

// Windows renders each item in its own surface.
type Windows struct {
	sys WindowSystem

	// Reportf receives one dimension line per image. Nil selects
	// monitoring.Printf.
	Reportf func(format string, v ...interface{})
}

// NewWindows returns a window backend over sys.
func NewWindows(sys WindowSystem) *Windows {
	return &Windows{sys: sys}
}

// Render opens one surface per item, optionally scaled to FitWidth, then
// blocks on a single WaitKey. Every surface opened is closed afterwards,
// also when setup fails part way.
func (w *Windows) Render(items []Item, fitToScreen bool) (err error) {
	if len(items) == 0 {
		return fmt.Errorf("%w: no images", ErrInvalidRequest)
	}

	var opened []Surface
	defer func() {
		var closeErrs []error
		for _, s := range opened {
			if cerr := s.Close(); cerr != nil {
				closeErrs = append(closeErrs, cerr)
			}
		}
		if err == nil && len(closeErrs) > 0 {
			err = fmt.Errorf("close windows: %w", errors.Join(closeErrs...))
		}
	}()

	report := reportf(w.Reportf)
	titles := uniqueTitles(items)
	for i, it := range items {
		if berr := checkBuffer(it.Image); berr != nil {
			return &RenderError{Index: i, Title: it.Title, Err: berr}
		}
		s, oerr := w.sys.Open(titles[i])
		if oerr != nil {
			return &RenderError{Index: i, Title: it.Title, Err: oerr}
		}
		opened = append(opened, s)

		img := it.Image
		if fitToScreen {
			img = FitToWidth(img, FitWidth)
		}
		if serr := s.Show(img); serr != nil {
			return &RenderError{Index: i, Title: it.Title, Err: serr}
		}
		report.dimensions(it.Title, it.Image)
	}

	if werr := w.sys.WaitKey(); werr != nil {
		return fmt.Errorf("wait for dismissal: %w", werr)
	}
	return nil
}

// FitSize scales w x h to the target width keeping the aspect ratio.
func FitSize(w, h, width int) (int, int) {
	if w <= 0 || width <= 0 {
		return w, h
	}
	return width, int(float64(h) * float64(width) / float64(w))
}

// FitToWidth resamples img to the given width. Single-channel sources stay
// single-channel.
func FitToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	nw, nh := FitSize(b.Dx(), b.Dy(), width)
	if nw == b.Dx() && nh == b.Dy() {
		return img
	}
	rect := image.Rect(0, 0, nw, nh)

	var dst xdraw.Image
	if ShapeOf(img).Channels == 1 {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewRGBA(rect)
	}
	xdraw.CatmullRom.Scale(dst, rect, img, b, xdraw.Src, nil)
	return dst
}

// uniqueTitles suffixes repeated titles so every window name is distinct.
// A suffixed name never reuses one already assigned.
func uniqueTitles(items []Item) []string {
	used := make(map[string]bool, len(items))
	out := make([]string, len(items))
	for i, it := range items {
		name := it.Title
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s (%d)", it.Title, n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}
