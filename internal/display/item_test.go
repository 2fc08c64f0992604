package display

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type declared struct {
	*image.RGBA
	n int
}

func (d declared) Channels() int { return d.n }

func TestShapeOf(t *testing.T) {
	t.Parallel()

	opaque := image.NewRGBA(image.Rect(0, 0, 1200, 900))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}

	cases := []struct {
		name string
		img  image.Image
		want Shape
		str  string
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 18, 18)), Shape{18, 18, 1}, "(18, 18)"},
		{"gray16", image.NewGray16(image.Rect(0, 0, 4, 2)), Shape{2, 4, 1}, "(2, 4)"},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 640, 480), image.YCbCrSubsampleRatio420), Shape{480, 640, 3}, "(480, 640, 3)"},
		{"opaque rgba", opaque, Shape{900, 1200, 3}, "(900, 1200, 3)"},
		{"transparent nrgba", image.NewNRGBA(image.Rect(0, 0, 3, 2)), Shape{2, 3, 4}, "(2, 3, 4)"},
		{"declared", declared{image.NewRGBA(image.Rect(0, 0, 5, 5)), 3}, Shape{5, 5, 3}, "(5, 5, 3)"},
		{"opaque paletted", image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White}), Shape{2, 2, 3}, "(2, 2, 3)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ShapeOf(tc.img)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, got.String())
		})
	}

	assert.Equal(t, Shape{}, ShapeOf(nil))
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	err := &RenderError{Index: 2, Title: "Blue channel", Err: ErrEmptyBuffer}
	assert.Equal(t, `render image 2 ("Blue channel"): empty image buffer`, err.Error())
	assert.True(t, errors.Is(err, ErrEmptyBuffer))
}

func TestCheckBuffer(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, checkBuffer(nil), ErrEmptyBuffer)
	assert.ErrorIs(t, checkBuffer(image.NewGray(image.Rect(0, 0, 0, 5))), ErrEmptyBuffer)
	assert.NoError(t, checkBuffer(image.NewGray(image.Rect(0, 0, 1, 1))))
}
