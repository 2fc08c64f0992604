// Package display arranges labeled images into a grid and presents them,
// either on one shared plotting canvas or in independent windows.
//
// Callers hand over an ordered []Item. The package checks only that the
// request is non-empty; buffer contents are left to the rendering backend,
// which reports problems as *RenderError.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/banshee-data/image.course/internal/monitoring"
)

var (
	// ErrInvalidRequest rejects a render call before any output is produced.
	ErrInvalidRequest = errors.New("invalid display request")

	// ErrEmptyBuffer is the cause inside a RenderError for a nil or
	// zero-size image.
	ErrEmptyBuffer = errors.New("empty image buffer")
)

// RenderError identifies the item a backend could not draw.
type RenderError struct {
	Index int
	Title string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render image %d (%q): %v", e.Index, e.Title, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Item is one labeled image of a display request.
type Item struct {
	Image image.Image
	Title string
	Style Style
}

// NewItem builds an Item.
func NewItem(img image.Image, title string, style Style) Item {
	return Item{Image: img, Title: title, Style: style}
}

// Shape is height x width x channels, like an array shape.
type Shape struct {
	Height   int
	Width    int
	Channels int
}

// String prints (h, w) for single-channel buffers and (h, w, c) otherwise.
func (s Shape) String() string {
	if s.Channels <= 1 {
		return fmt.Sprintf("(%d, %d)", s.Height, s.Width)
	}
	return fmt.Sprintf("(%d, %d, %d)", s.Height, s.Width, s.Channels)
}

// ShapeOf reports the dimensions of img. Buffers may declare their channel
// count with a Channels() int method; otherwise it is taken from the color
// model, counting alpha only when the image is not opaque.
func ShapeOf(img image.Image) Shape {
	if img == nil {
		return Shape{}
	}
	b := img.Bounds()
	return Shape{Height: b.Dy(), Width: b.Dx(), Channels: channels(img)}
}

func channels(img image.Image) int {
	if c, ok := img.(interface{ Channels() int }); ok {
		return c.Channels()
	}
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.CMYK:
		return 4
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

func checkBuffer(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyBuffer
	}
	return nil
}

// reportf is the diagnostic sink shared by both backends.
type reportf func(format string, v ...interface{})

func (r reportf) dimensions(title string, img image.Image) {
	if r == nil {
		r = monitoring.Printf
	}
	r("%s dimensions: %s\n", title, ShapeOf(img))
}
