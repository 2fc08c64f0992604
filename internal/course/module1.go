package course

import (
	"fmt"
	"path/filepath"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/image.course/internal/display"
	"github.com/banshee-data/image.course/internal/monitoring"
)

// Module 1: getting started with images. Results go to the shared canvas.

func plotImage(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, st.Read)
	if err != nil {
		return err
	}
	defer img.Close()

	s.printf("Image dimensions: %s\n", matShape(img))
	s.printf("Image data type : %s\n", depthName(img.Type()))
	if st.PrintPixels {
		s.printPixels(img)
	}

	style := s.readStyle(st.Read)
	if st.Style != nil {
		style = *st.Style
	}

	var l itemList
	l.add(img, st.File, style)
	items, err := l.result()
	if err != nil {
		return err
	}
	return s.plot(items)
}

func splitImage(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	// Planes come back in B, G, R order.
	planes := gocv.Split(img)
	defer closeAll(planes...)
	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge(planes, &merged)

	var l itemList
	l.add(planes[2], "Red channel", display.Styled(display.Reds))
	l.add(planes[1], "Green channel", display.Styled(display.Greens))
	l.add(planes[0], "Blue channel", display.Styled(display.Blues))
	l.add(merged, "Full Merged Image", display.Unstyled())
	items, err := l.result()
	if err != nil {
		return err
	}
	return s.plot(items)
}

func convertColorSpace(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)
	planes := gocv.Split(hsv)
	defer closeAll(planes...)

	// The HSV buffer is drawn as if it were BGR, so value shows as red and
	// hue as blue.
	var l itemList
	l.add(planes[0], "Hue channel", display.Styled(display.Gray))
	l.add(planes[1], "Saturation channel", display.Styled(display.Gray))
	l.add(planes[2], "Value channel", display.Styled(display.Gray))
	l.add(hsv, "HSV Image", display.Unstyled())
	l.add(img, "Original Image", display.Unstyled())
	items, err := l.result()
	if err != nil {
		return err
	}
	return s.plot(items)
}

func modifyHue(s *Session, st Step) error {
	path, err := s.locate(st.File)
	if err != nil {
		return err
	}
	img, err := readImage(path, ReadColor)
	if err != nil {
		return err
	}
	defer img.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)
	planes := gocv.Split(hsv)
	defer closeAll(planes...)
	hue := planes[0]

	shifted, err := gocv.NewMatFromBytes(hue.Rows(), hue.Cols(), hue.Type(),
		shiftHue(hue.ToBytes(), s.cfg().GetHueIncrement()))
	if err != nil {
		return fmt.Errorf("shift hue: %w", err)
	}
	defer shifted.Close()

	s.printf("%v\t%v\n",
		mat.Formatted(matrixOf(hue, 1, 10), mat.Squeeze()),
		mat.Formatted(matrixOf(shifted, 1, 10), mat.Squeeze()))

	newHSV := gocv.NewMat()
	defer newHSV.Close()
	gocv.Merge([]gocv.Mat{shifted, planes[1], planes[2]}, &newHSV)
	newImg := gocv.NewMat()
	defer newImg.Close()
	gocv.CvtColor(newHSV, &newImg, gocv.ColorHSVToBGR)

	var l itemList
	l.add(hue, "Hue channel", display.Styled(display.Gray))
	l.add(shifted, "New Hue channel", display.Styled(display.Gray))
	l.add(hsv, "HSV Image", display.Unstyled())
	l.add(newHSV, "New HSV Image", display.Unstyled())
	l.add(img, "Original Image", display.Unstyled())
	l.add(newImg, "New image", display.Unstyled())
	items, err := l.result()
	if err != nil {
		return err
	}
	if err := s.plot(items); err != nil {
		return err
	}

	if s.cfg().GetSaveDerived() {
		out := filepath.Join(filepath.Dir(path), "new_"+filepath.Base(path))
		if !gocv.IMWrite(out, newImg) {
			return fmt.Errorf("write %s failed", out)
		}
		monitoring.Logf("saved %s", out)
	}
	return nil
}
