package course

import (
	"fmt"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/image.course/internal/display"
)

func imreadFlag(m ReadMode) gocv.IMReadFlag {
	if m == ReadGrayscale {
		return gocv.IMReadGrayScale
	}
	return gocv.IMReadColor
}

// readImage decodes path. The caller owns the returned Mat.
func readImage(path string, mode ReadMode) (gocv.Mat, error) {
	m := gocv.IMRead(path, imreadFlag(mode))
	if m.Empty() {
		m.Close()
		return gocv.Mat{}, fmt.Errorf("decode %s: no image data", path)
	}
	return m, nil
}

// depthName names the element type of a Mat the way array libraries do.
func depthName(t gocv.MatType) string {
	switch t & 7 {
	case 0:
		return "uint8"
	case 1:
		return "int8"
	case 2:
		return "uint16"
	case 3:
		return "int16"
	case 4:
		return "int32"
	case 5:
		return "float32"
	case 6:
		return "float64"
	}
	return "unknown"
}

// matShape is the array shape of a Mat.
func matShape(m gocv.Mat) display.Shape {
	return display.Shape{Height: m.Rows(), Width: m.Cols(), Channels: m.Channels()}
}

// itemList converts Mats to display items, keeping the first failure.
type itemList struct {
	items []display.Item
	err   error
}

func (l *itemList) add(m gocv.Mat, title string, style display.Style) {
	if l.err != nil {
		return
	}
	img, err := m.ToImage()
	if err != nil {
		l.err = fmt.Errorf("convert %q: %w", title, err)
		return
	}
	l.items = append(l.items, display.NewItem(img, title, style))
}

func (l *itemList) result() ([]display.Item, error) {
	return l.items, l.err
}

// matrixOf copies a single-channel 8-bit Mat, or one row range of it, into a
// dense matrix for printing.
func matrixOf(m gocv.Mat, rows, cols int) *mat.Dense {
	rows = min(rows, m.Rows())
	cols = min(cols, m.Cols())
	data := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			data[y*cols+x] = float64(m.GetUCharAt(y, x))
		}
	}
	return mat.NewDense(rows, cols, data)
}

// printPixels dumps every channel of m.
func (s *Session) printPixels(m gocv.Mat) {
	if m.Empty() {
		return
	}
	if m.Channels() == 1 {
		s.printf("%v\n", mat.Formatted(matrixOf(m, m.Rows(), m.Cols()), mat.Squeeze()))
		return
	}
	planes := gocv.Split(m)
	defer closeAll(planes...)
	for i, p := range planes {
		s.printf("channel %d:\n%v\n", i, mat.Formatted(matrixOf(p, p.Rows(), p.Cols()), mat.Squeeze()))
	}
}

func closeAll(ms ...gocv.Mat) {
	for i := range ms {
		ms[i].Close()
	}
}
