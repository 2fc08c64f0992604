package display

import (
	"fmt"
	"image"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Canvas envelope. It stays wide and short whatever the image count; only
// the cell packing adapts.
const (
	CanvasWidth  = 12 * vg.Inch
	CanvasHeight = 6 * vg.Inch
)

// Viewer presents a composed canvas and blocks until it is dismissed.
type Viewer interface {
	View(caption string, img image.Image) error
}

// Canvas renders a display request as a grid of plots on one surface.
type Canvas struct {
	viewer Viewer

	// Reportf receives one dimension line per image. Nil selects
	// monitoring.Printf.
	Reportf func(format string, v ...interface{})
}

// NewCanvas returns a canvas backend presenting through viewer.
func NewCanvas(viewer Viewer) *Canvas {
	return &Canvas{viewer: viewer}
}

// Render draws items into a Rows x Cols grid, cell i at row-major position
// i, and hands the result to the viewer. Axes are hidden and each title
// labels its cell. An empty request fails with ErrInvalidRequest before any
// output.
func (c *Canvas) Render(items []Item) error {
	grid, err := LayoutFor(len(items))
	if err != nil {
		return err
	}

	img := vgimg.New(CanvasWidth, CanvasHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      grid.Rows,
		Cols:      grid.Cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: vg.Millimeter,
		PadLeft:   vg.Millimeter,
		PadRight:  vg.Millimeter,
	}

	report := reportf(c.Reportf)
	for i, it := range items {
		row, col := grid.Cell(i)
		tile := tiles.At(dc, col, row)
		p, err := cellPlot(it, tile)
		if err != nil {
			return &RenderError{Index: i, Title: it.Title, Err: err}
		}
		p.Draw(tile)
		report.dimensions(it.Title, it.Image)
	}

	if err := c.viewer.View(caption(items), img.Image()); err != nil {
		return fmt.Errorf("view canvas: %w", err)
	}
	return nil
}

// cellPlot builds the plot for one cell: the image alone, titled, with
// axes hidden and data ranges padded so the pixels keep their aspect ratio
// inside the data area left over by the title and axis padding.
func cellPlot(it Item, tile draw.Canvas) (*plot.Plot, error) {
	if err := checkBuffer(it.Image); err != nil {
		return nil, err
	}
	src, err := applyStyle(it.Image, it.Style)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	p := plot.New()
	p.Title.Text = it.Title
	p.HideAxes()
	p.Add(plotter.NewImage(src, 0, 0, w, h))

	p.X.Min, p.X.Max = 0, w
	p.Y.Min, p.Y.Max = 0, h
	area := p.DataCanvas(tile).Rectangle.Size()
	xmin, xmax, ymin, ymax := aspectRange(w, h, float64(area.X), float64(area.Y))
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
	return p, nil
}

// aspectRange widens [0,w]x[0,h] along one axis so that its aspect matches
// the cell's, centering the image.
func aspectRange(w, h, cellW, cellH float64) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = 0, w, 0, h
	if w <= 0 || h <= 0 || cellW <= 0 || cellH <= 0 {
		return
	}
	cellAspect := cellW / cellH
	if w/h > cellAspect {
		span := w / cellAspect
		pad := (span - h) / 2
		return 0, w, -pad, h + pad
	}
	span := h * cellAspect
	pad := (span - w) / 2
	return -pad, w + pad, 0, h
}

func caption(items []Item) string {
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	return strings.Join(titles, " / ")
}
