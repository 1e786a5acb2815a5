// Package chart maps point series onto fixed character grids and exports
// them as PNG or interactive HTML charts.
package chart

import (
	"math"

	"sciview/pkg/dataset"
)

// Raster is a rows x cols grid of occupancy cells. Multiple points mapping
// to the same cell merge into a single mark.
type Raster struct {
	Rows int
	Cols int

	cells []bool
}

// NewRaster allocates an empty grid.
func NewRaster(rows, cols int) *Raster {
	return &Raster{
		Rows:  rows,
		Cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Set marks a cell. Out-of-bounds coordinates are ignored.
func (r *Raster) Set(row, col int) {
	if row < 0 || row >= r.Rows || col < 0 || col >= r.Cols {
		return
	}
	r.cells[row*r.Cols+col] = true
}

// At reports whether a cell is occupied.
func (r *Raster) At(row, col int) bool {
	if row < 0 || row >= r.Rows || col < 0 || col >= r.Cols {
		return false
	}
	return r.cells[row*r.Cols+col]
}

// Rasterize maps a series onto a rows x cols grid using linear axis scaling.
// Larger y maps to a smaller row index, since row 0 is the top of the grid.
// A degenerate axis maps every point to its central row or column. The
// result is a pure function of the arguments.
func Rasterize(s dataset.Series, ar dataset.AxisRange, rows, cols int) *Raster {
	grid := NewRaster(rows, cols)
	if rows < 1 || cols < 1 {
		return grid
	}

	for _, p := range s {
		col := scale(p.X, ar.MinX, ar.MaxX, cols)
		row := rows - 1 - scale(p.Y, ar.MinY, ar.MaxY, rows)
		grid.Set(row, col)
	}
	return grid
}

// Render downsamples a series to the target width and rasterizes it onto a
// rows x cols grid using the series' own axis range.
func Render(s dataset.Series, rows, cols int) *Raster {
	reduced := dataset.Downsample(s, cols)
	return Rasterize(reduced, s.Range(), rows, cols)
}

// scale maps v in [min, max] to a cell index in [0, n-1], clamping values
// outside the range and centering when the range is degenerate.
func scale(v, min, max float64, n int) int {
	if max <= min {
		return (n - 1) / 2
	}
	idx := int(math.Round((v - min) / (max - min) * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
