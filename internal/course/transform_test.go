package course

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/image.course/internal/config"
)

func TestCropRect(t *testing.T) {
	t.Parallel()

	defaults := config.CropConfig{Top: 0.30, Bottom: 0.30, Left: 0.05, Right: 0.02}

	tests := []struct {
		name   string
		h, w   int
		crop   config.CropConfig
		want   image.Rectangle
		reason string
	}{
		{"defaults", 30, 40, defaults, image.Rect(2, 9, 39, 21), ""},
		{"no cut", 30, 40, config.CropConfig{}, image.Rect(0, 0, 40, 30), ""},
		{"negative", 30, 40, config.CropConfig{Left: -0.1}, image.Rectangle{},
			"Check the cut percentages, because they must be greater than 0."},
		{"top and bottom", 30, 40, config.CropConfig{Top: 0.6, Bottom: 0.5}, image.Rectangle{},
			"Check the top and bottom percentages, because their addition is greater than 1."},
		{"left and right", 30, 40, config.CropConfig{Left: 0.6, Right: 0.5}, image.Rectangle{},
			"Check the left and right percentages, because their addition is greater than 1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, reason := cropRect(tt.h, tt.w, tt.crop)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestEnlargedSize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, image.Pt(60, 45), enlargedSize(30, 40, 0.5))
	assert.Equal(t, image.Pt(1500, 1125), enlargedSize(900, 1200, 0.25))
}

func TestShiftHue(t *testing.T) {
	t.Parallel()

	src := []byte{0, 100, 179, 250}
	assert.Equal(t, []byte{10, 110, 189, 4}, shiftHue(src, 10))
	assert.Equal(t, []byte{246, 90, 169, 240}, shiftHue(src, -10))
	assert.Equal(t, []byte{0, 100, 179, 250}, src, "source untouched")
}

func TestScaleBytes(t *testing.T) {
	t.Parallel()

	src := []byte{0, 100, 201, 250}
	assert.Equal(t, []byte{0, 50, 100, 125}, scaleBytes(src, 0.5, false))
	assert.Equal(t, []byte{0, 120, 241, 44}, scaleBytes(src, 1.2, false))
	assert.Equal(t, []byte{0, 120, 241, 255}, scaleBytes(src, 1.2, true))
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	width := int(float64(len(overflowNote)) * 0.6)
	lines := wrapText(overflowNote, width)
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), width)
	}
	assert.Equal(t, overflowNote, strings.Join(lines, " "))

	assert.Equal(t, []string{"abc", "def", "g h"}, wrapText("abcdefg h", 3))
	assert.Empty(t, wrapText("   ", 10))
	assert.Equal(t, []string{"a", "b"}, wrapText("a b", 0))
}
