package display

import "fmt"

// MaxColumns caps the number of cells per grid row.
const MaxColumns = 5

// Grid is the row/column arrangement for a display request. It is derived
// from the item count on every render call and never stored.
type Grid struct {
	Rows int
	Cols int
}

// LayoutFor returns the grid for count images: Cols = min(count, 5) and
// Rows = ceil(count / Cols).
func LayoutFor(count int) (Grid, error) {
	if count < 1 {
		return Grid{}, fmt.Errorf("%w: layout for %d images", ErrInvalidRequest, count)
	}
	cols := min(count, MaxColumns)
	rows := (count + cols - 1) / cols
	return Grid{Rows: rows, Cols: cols}, nil
}

// Cell returns the row-major position of image i.
func (g Grid) Cell(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// Cells is the total number of cells, including blank trailing ones.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}
