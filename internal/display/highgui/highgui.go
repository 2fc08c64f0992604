// Package highgui presents display output in OpenCV HighGUI windows.
//
// HighGUI must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before using this package.
package highgui

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/banshee-data/image.course/internal/display"
)

// System opens one resizable window per surface. WaitKey blocks on the most
// recently opened window until any key is pressed.
type System struct {
	last *gocv.Window
}

var (
	_ display.WindowSystem = (*System)(nil)
	_ display.Viewer       = Viewer{}
)

// NewSystem returns a window system backed by HighGUI.
func NewSystem() *System {
	return &System{}
}

// Open implements display.WindowSystem.
func (s *System) Open(title string) (display.Surface, error) {
	w := gocv.NewWindow(title)
	s.last = w
	return &window{sys: s, w: w}, nil
}

// WaitKey implements display.WindowSystem.
func (s *System) WaitKey() error {
	if s.last == nil {
		return fmt.Errorf("no window to wait on")
	}
	s.last.WaitKey(0)
	return nil
}

type window struct {
	sys *System
	w   *gocv.Window
}

func (w *window) Show(img image.Image) error {
	mat, err := toMat(img)
	if err != nil {
		return err
	}
	defer mat.Close()

	w.w.ResizeWindow(mat.Cols(), mat.Rows())
	w.w.IMShow(mat)
	return nil
}

func (w *window) Close() error {
	if w.sys.last == w.w {
		w.sys.last = nil
	}
	return w.w.Close()
}

// Viewer shows a canvas in its own window until a key is pressed.
type Viewer struct{}

// View implements display.Viewer.
func (Viewer) View(caption string, img image.Image) error {
	mat, err := toMat(img)
	if err != nil {
		return err
	}
	defer mat.Close()

	w := gocv.NewWindow(caption)
	defer w.Close()

	w.ResizeWindow(mat.Cols(), mat.Rows())
	w.IMShow(mat)
	w.WaitKey(0)
	return nil
}

// toMat converts to an 8-bit BGR Mat, or a single-channel Mat for gray
// buffers so HighGUI shows them unmodified.
func toMat(img image.Image) (gocv.Mat, error) {
	if display.ShapeOf(img).Channels == 1 {
		if g, ok := img.(*image.Gray); ok {
			return gocv.ImageGrayToMatGray(g)
		}
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("convert image: %w", err)
	}
	return mat, nil
}
