package course

import (
	"image"
	"math"
	"strings"

	"github.com/banshee-data/image.course/internal/config"
)

// cropRect converts edge fractions to the kept region of an h x w image.
// The returned reason is empty when the fractions are usable.
func cropRect(h, w int, c config.CropConfig) (image.Rectangle, string) {
	switch {
	case c.Top < 0 || c.Bottom < 0 || c.Left < 0 || c.Right < 0:
		return image.Rectangle{}, "Check the cut percentages, because they must be greater than 0."
	case c.Top+c.Bottom > 1:
		return image.Rectangle{}, "Check the top and bottom percentages, because their addition is greater than 1."
	case c.Left+c.Right > 1:
		return image.Rectangle{}, "Check the left and right percentages, because their addition is greater than 1."
	}
	top := int(float64(h) * c.Top)
	bottom := int(float64(h) * (1 - c.Bottom))
	left := int(float64(w) * c.Left)
	right := int(float64(w) * (1 - c.Right))
	return image.Rect(left, top, right, bottom), ""
}

// enlargedSize is the size of an h x w image scaled by 1+factor.
func enlargedSize(h, w int, factor float64) image.Point {
	return image.Pt(int(float64(w)*(1+factor)), int(float64(h)*(1+factor)))
}

// shiftHue adds inc to every hue value with 8-bit wraparound.
func shiftHue(hue []byte, inc int) []byte {
	out := make([]byte, len(hue))
	for i, v := range hue {
		out[i] = byte(int(v) + inc)
	}
	return out
}

// scaleBytes multiplies every sample by k. Without clip, results above 255
// wrap the way an unchecked 8-bit cast does; with clip they saturate.
func scaleBytes(src []byte, k float64, clip bool) []byte {
	out := make([]byte, len(src))
	for i, v := range src {
		f := float64(v) * k
		if clip {
			out[i] = byte(math.Max(0, math.Min(255, f)))
			continue
		}
		out[i] = byte(int64(f))
	}
	return out
}

// wrapText breaks text into lines of at most width characters at word
// boundaries. Words longer than width are split.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case cur.Len()+1+len(word) <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
