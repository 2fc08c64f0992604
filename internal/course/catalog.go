package course

import (
	"fmt"
	"sort"
	"strings"

	"github.com/banshee-data/image.course/internal/display"
)

// ReadMode selects how an asset is decoded.
type ReadMode int

const (
	ReadColor ReadMode = iota
	ReadGrayscale
)

func (m ReadMode) String() string {
	if m == ReadGrayscale {
		return "grayscale"
	}
	return "color"
}

// StyleForRead is the default style for an image decoded with mode: color
// reads draw with their own colors, single-channel reads in gray.
func StyleForRead(mode ReadMode) display.Style {
	if mode == ReadGrayscale {
		return display.Styled(display.Gray)
	}
	return display.Unstyled()
}

// Step is one scheduled lesson run.
type Step struct {
	Lesson string
	File   string

	// Read and Style only apply to plot-image. A nil Style falls back to
	// StyleForRead with the configured gray map.
	Read  ReadMode
	Style *display.Style

	// PrintPixels dumps the decoded matrix before plotting.
	PrintPixels bool
}

// Lesson is a catalog entry.
type Lesson struct {
	Name    string
	Module  int
	Summary string
	Run     func(s *Session, st Step) error
}

var catalog = []Lesson{
	{"plot-image", 1, "read an image and plot it", plotImage},
	{"split-image", 1, "split the color channels and merge them back", splitImage},
	{"convert-color-space", 1, "convert to HSV and show each channel", convertColorSpace},
	{"modify-hue", 1, "shift the hue channel", modifyHue},
	{"modify-pixels", 2, "overwrite a block of pixels", modifyPixels},
	{"crop-image", 2, "crop by edge percentages", cropImage},
	{"resize-image", 2, "reduce and enlarge by a factor", resizeImage},
	{"flip-image", 2, "flip horizontally, vertically and both", flipImage},
	{"draw-line", 3, "annotate with a line", drawLine},
	{"draw-circle", 3, "annotate with a circle", drawCircle},
	{"draw-rectangle", 3, "annotate with a rectangle", drawRectangle},
	{"put-text", 3, "annotate with text", putText},
	{"brightness", 4, "add and subtract a constant", brightness},
	{"contrast", 4, "multiply by a constant with and without clipping", contrast},
}

// Catalog returns every lesson in course order.
func Catalog() []Lesson {
	return append([]Lesson(nil), catalog...)
}

// Lookup finds a lesson by name.
func Lookup(name string) (Lesson, bool) {
	for _, l := range catalog {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}

func styled(cm display.Colormap) *display.Style {
	s := display.Styled(cm)
	return &s
}

// DefaultSequence is the run performed without a lesson selection.
func DefaultSequence() []Step {
	return []Step{
		{Lesson: "plot-image", File: "checkerboard_18x18.png", Read: ReadGrayscale, Style: styled(display.Gray)},
		{Lesson: "plot-image", File: "checkerboard_fuzzy_18x18.jpg", Read: ReadGrayscale},
		{Lesson: "plot-image", File: "coca-cola-logo.png", Read: ReadColor},
		{Lesson: "plot-image", File: "bicycle.jpg", Read: ReadColor},
		{Lesson: "split-image", File: "bicycle.jpg"},
		{Lesson: "convert-color-space", File: "mafalda.jpg"},
		{Lesson: "modify-hue", File: "mafalda.jpg"},
		{Lesson: "modify-pixels", File: "checkerboard_18x18.png"},
		{Lesson: "crop-image", File: "bicycle.jpg"},
		{Lesson: "resize-image", File: "mafalda.jpg"},
		{Lesson: "flip-image", File: "coca-cola-logo.png"},
	}
}

// AllSteps extends DefaultSequence with the annotation and enhancement
// lessons.
func AllSteps() []Step {
	const launch = "apollo-11-launch.jpg"
	const coast = "new-zealand-coast.jpg"
	return append(DefaultSequence(),
		Step{Lesson: "draw-line", File: launch},
		Step{Lesson: "draw-circle", File: launch},
		Step{Lesson: "draw-rectangle", File: launch},
		Step{Lesson: "put-text", File: launch},
		Step{Lesson: "brightness", File: coast},
		Step{Lesson: "contrast", File: coast},
	)
}

// Select keeps the steps of AllSteps whose lesson is named, in course
// order. Names may also be module selectors such as "module-3".
func Select(names []string) ([]Step, error) {
	want := make(map[string]bool, len(names))
	modules := make(map[int]bool)
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		var m int
		if _, err := fmt.Sscanf(n, "module-%d", &m); err == nil {
			modules[m] = true
			continue
		}
		if _, ok := Lookup(n); !ok {
			return nil, fmt.Errorf("unknown lesson %q (known: %s)", n, strings.Join(Names(), ", "))
		}
		want[n] = true
	}

	var out []Step
	for _, st := range AllSteps() {
		l, _ := Lookup(st.Lesson)
		if want[st.Lesson] || modules[l.Module] {
			out = append(out, st)
		}
	}
	return out, nil
}

// Names lists the catalog names sorted alphabetically.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for _, l := range catalog {
		out = append(out, l.Name)
	}
	sort.Strings(out)
	return out
}
