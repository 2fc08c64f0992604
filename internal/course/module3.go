package course

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/banshee-data/image.course/internal/display"
)

// Module 3: annotation. Each lesson draws on a copy and shows the original
// next to it.

var (
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	red    = color.RGBA{R: 255, A: 255}
	rose   = color.RGBA{R: 243, G: 58, B: 106, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const launchCaption = "Apollo 11 Saturn V Launch, July 16, 1969"

func drawLine(s *Session, st Step) error {
	return annotate(s, st, func(m *gocv.Mat) {
		gocv.Line(m, image.Pt(200, 100), image.Pt(400, 100), yellow, 5)
	})
}

func drawCircle(s *Session, st Step) error {
	return annotate(s, st, func(m *gocv.Mat) {
		gocv.CircleWithParams(m, image.Pt(900, 500), 100, red, 5, gocv.LineAA, 0)
	})
}

func drawRectangle(s *Session, st Step) error {
	return annotate(s, st, func(m *gocv.Mat) {
		gocv.RectangleWithParams(m, image.Rect(500, 100, 700, 600), rose, 5, gocv.Line8, 0)
	})
}

func putText(s *Session, st Step) error {
	return annotate(s, st, func(m *gocv.Mat) {
		gocv.PutTextWithParams(m, launchCaption, image.Pt(50, 700), gocv.FontHersheyDuplex, 1.1,
			white, 2, gocv.LineAA, false)
	})
}

func annotate(s *Session, st Step, draw func(m *gocv.Mat)) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	marked := img.Clone()
	defer marked.Close()
	draw(&marked)

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	l.add(marked, "Annotated Image", display.Unstyled())
	return s.showList(&l, true)
}
