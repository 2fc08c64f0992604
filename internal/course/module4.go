package course

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/banshee-data/image.course/internal/display"
)

// Module 4: enhancement by pixel arithmetic.

const overflowNote = "The values which are already high, are becoming greater than 255. Thus, the overflow issue."

func brightness(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	v := float64(s.cfg().GetBrightnessOffset())
	offset := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(v, v, v, 0), img.Rows(), img.Cols(), img.Type())
	defer offset.Close()

	brighter := gocv.NewMat()
	defer brighter.Close()
	gocv.Add(img, offset, &brighter)
	darker := gocv.NewMat()
	defer darker.Close()
	gocv.Subtract(img, offset, &darker)

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	l.add(brighter, "Image Brighter", display.Unstyled())
	l.add(darker, "Image Darker", display.Unstyled())
	return s.showList(&l, true)
}

func contrast(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	src := img.ToBytes()
	scaled := func(k float64, clip bool) (gocv.Mat, error) {
		m, err := gocv.NewMatFromBytes(img.Rows(), img.Cols(), img.Type(), scaleBytes(src, k, clip))
		if err != nil {
			return m, fmt.Errorf("scale by %.2f: %w", k, err)
		}
		return m, nil
	}

	lower, err := scaled(s.cfg().GetContrastLow(), false)
	if err != nil {
		return err
	}
	defer lower.Close()
	overflow, err := scaled(s.cfg().GetContrastHigh(), false)
	if err != nil {
		return err
	}
	defer overflow.Close()
	clipped, err := scaled(s.cfg().GetContrastHigh(), true)
	if err != nil {
		return err
	}
	defer clipped.Close()

	writeNote(&overflow, overflowNote)

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	l.add(lower, "Lower Contrast", display.Unstyled())
	l.add(overflow, "Higher Contrast with Overflow", display.Unstyled())
	l.add(clipped, "Higher Contrast with Adjusted Overflow", display.Unstyled())
	return s.showList(&l, true)
}

// writeNote prints text onto m in yellow, wrapped to 60% of its length.
func writeNote(m *gocv.Mat, text string) {
	const (
		font      = gocv.FontHersheyDuplex
		scale     = 0.8
		thickness = 1
	)
	lines := wrapText(text, int(float64(len(text))*0.6))
	if len(lines) == 0 {
		return
	}
	gap := gocv.GetTextSize(lines[0], font, scale, thickness).Y + 5
	org := image.Pt(180, 280)
	for _, line := range lines {
		gocv.PutTextWithParams(m, line, org, font, scale, yellow, thickness, gocv.LineAA, false)
		org.Y += gap
	}
}
