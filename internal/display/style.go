package display

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap names a tint for single-channel buffers.
type Colormap string

const (
	Gray    Colormap = "gray"
	Reds    Colormap = "Reds"
	Greens  Colormap = "Greens"
	Blues   Colormap = "Blues"
	Viridis Colormap = "viridis"
)

// Gradient stops, low intensity first. Values follow the matplotlib maps of
// the same name.
var colormapStops = map[Colormap][]string{
	Gray:    {"#000000", "#ffffff"},
	Reds:    {"#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d"},
	Greens:  {"#f7fcf5", "#c7e9c0", "#74c476", "#238b45", "#00441b"},
	Blues:   {"#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"},
	Viridis: {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
}

// ParseColormap accepts a map name case-insensitively.
func ParseColormap(name string) (Colormap, error) {
	for cm := range colormapStops {
		if strings.EqualFold(string(cm), name) {
			return cm, nil
		}
	}
	return "", fmt.Errorf("unknown color map %q", name)
}

// Style is an optional color map. The zero value is Unstyled.
type Style struct {
	cmap Colormap
	set  bool
}

// Styled selects a color map.
func Styled(cm Colormap) Style {
	return Style{cmap: cm, set: true}
}

// Unstyled draws the buffer with its own colors.
func Unstyled() Style {
	return Style{}
}

// Colormap returns the selected map and whether one was selected.
func (s Style) Colormap() (Colormap, bool) {
	return s.cmap, s.set
}

func (s Style) String() string {
	if !s.set {
		return "none"
	}
	return string(s.cmap)
}

// lut is a 256-entry lookup table for one colormap.
type lut [256]color.RGBA

func newLUT(cm Colormap) (*lut, error) {
	hexes, ok := colormapStops[cm]
	if !ok {
		return nil, fmt.Errorf("unknown color map %q", cm)
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("color map %s stop %d: %w", cm, i, err)
		}
		stops[i] = c
	}

	var t lut
	segments := float64(len(stops) - 1)
	for v := 0; v < 256; v++ {
		pos := float64(v) / 255 * segments
		idx := int(pos)
		if idx >= len(stops)-1 {
			idx = len(stops) - 2
		}
		c := stops[idx]
		switch frac := pos - float64(idx); {
		case frac >= 1:
			c = stops[idx+1]
		case frac > 0:
			c = c.BlendLab(stops[idx+1], frac).Clamped()
		}
		r, g, b := c.RGB255()
		t[v] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return &t, nil
}

// applyStyle returns the image to draw for an item. Color maps only apply to
// single-channel buffers.
func applyStyle(img image.Image, s Style) (image.Image, error) {
	cm, ok := s.Colormap()
	if !ok || ShapeOf(img).Channels != 1 {
		return img, nil
	}
	table, err := newLUT(cm)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, table[g.Y])
		}
	}
	return out, nil
}
