package course

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/banshee-data/image.course/internal/display"
)

// Module 2: basic manipulation. Results go to independent windows.

func modifyPixels(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadGrayscale)
	if err != nil {
		return err
	}
	defer img.Close()

	cp := img.Clone()
	defer cp.Close()
	for y := 2; y < min(4, cp.Rows()); y++ {
		for x := 2; x < min(4, cp.Cols()); x++ {
			cp.SetUCharAt(y, x, 200)
		}
	}
	s.printPixels(cp)

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	l.add(cp, "Image Copy", display.Unstyled())
	return s.showList(&l, true)
}

func cropImage(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	crop := s.cfg().GetCrop()
	// Fractions are checked against a unit image before decoding anything.
	if _, reason := cropRect(1, 1, crop); reason != "" {
		return &ParamError{Lesson: st.Lesson, Reason: reason}
	}

	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	rect, _ := cropRect(img.Rows(), img.Cols(), crop)
	region := img.Region(rect)
	cropped := region.Clone()
	region.Close()
	defer cropped.Close()

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	l.add(cropped, "Cropped Image", display.Unstyled())
	return s.showList(&l, true)
}

func resizeImage(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	f := s.cfg().GetResizeFactor()
	if f <= 0 || f >= 1 {
		return &ParamError{Lesson: st.Lesson, Reason: "Check the resize factor, because it must be between 0 and 1."}
	}

	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	reduced := gocv.NewMat()
	defer reduced.Close()
	gocv.Resize(img, &reduced, image.Point{}, f, f, gocv.InterpolationArea)

	enlarged := gocv.NewMat()
	defer enlarged.Close()
	gocv.Resize(img, &enlarged, enlargedSize(img.Rows(), img.Cols(), f), 0, 0, gocv.InterpolationCubic)

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	l.add(reduced, "Reduced Image", display.Unstyled())
	l.add(enlarged, "Increased Image", display.Unstyled())
	return s.showList(&l, false)
}

func flipImage(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	flips := []struct {
		code  int
		title string
	}{
		{1, "Image Flipped Horizontally"},
		{0, "Image Flipped Vertically"},
		{-1, "Image Flipped Fully"},
	}

	var l itemList
	l.add(img, "Original Image", display.Unstyled())
	for _, fl := range flips {
		dst := gocv.NewMat()
		defer dst.Close()
		gocv.Flip(img, &dst, fl.code)
		l.add(dst, fl.title, display.Unstyled())
	}
	return s.showList(&l, true)
}

func (s *Session) showList(l *itemList, fit bool) error {
	items, err := l.result()
	if err != nil {
		return err
	}
	return s.show(items, fit)
}
