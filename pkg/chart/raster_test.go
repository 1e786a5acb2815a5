package chart

import (
	"reflect"
	"testing"

	"sciview/pkg/dataset"
)

func TestRasterizePeakPlacement(t *testing.T) {
	// Peak at x=1.0 must land in the middle column, top row.
	s := dataset.Series{{X: 0, Y: 1}, {X: 1, Y: 5}, {X: 2, Y: 1}}
	r := s.Range()

	grid := Rasterize(s, r, 5, 3)

	if !grid.At(0, 1) {
		t.Error("expected peak in middle column, top row")
	}
	if !grid.At(4, 0) || !grid.At(4, 2) {
		t.Error("expected baseline points in bottom corners")
	}
}

func TestRasterizeMergesCoincidentPoints(t *testing.T) {
	s := dataset.Series{{X: 0, Y: 0}, {X: 0.01, Y: 0.01}, {X: 10, Y: 10}}
	r := s.Range()

	grid := Rasterize(s, r, 4, 4)

	occupied := 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if grid.At(row, col) {
				occupied++
			}
		}
	}
	if occupied != 2 {
		t.Errorf("expected nearby points to merge into 2 cells, got %d", occupied)
	}
}

func TestRasterizeDegenerateRangeCenters(t *testing.T) {
	s := dataset.Series{{X: 5, Y: 5}, {X: 5, Y: 5}}
	// Deliberately degenerate, bypassing the widening in Range().
	ar := dataset.AxisRange{MinX: 5, MaxX: 5, MinY: 5, MaxY: 5}

	grid := Rasterize(s, ar, 5, 7)

	if !grid.At(2, 3) {
		t.Error("degenerate range should map to the central cell")
	}
}

func TestRasterizePure(t *testing.T) {
	s := dataset.Series{{X: 0, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: 1}, {X: 3, Y: 4}}
	r := s.Range()

	a := Rasterize(s, r, 10, 20)
	b := Rasterize(s, r, 10, 20)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical arguments must yield identical grids")
	}
}

func TestRenderEndToEnd(t *testing.T) {
	// Three points at width 3: downsampling is a no-op and the peak lands
	// mid-column, top row.
	s := dataset.Series{{X: 0, Y: 1}, {X: 1, Y: 5}, {X: 2, Y: 1}}

	grid := Render(s, 5, 3)
	if !grid.At(0, 1) {
		t.Error("expected peak in the middle column, top row")
	}
}

func TestRasterizeOutOfRangeClamped(t *testing.T) {
	s := dataset.Series{{X: -100, Y: -100}, {X: 100, Y: 100}}
	ar := dataset.AxisRange{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}

	grid := Rasterize(s, ar, 3, 3)

	if !grid.At(2, 0) || !grid.At(0, 2) {
		t.Error("out-of-range points should clamp to the grid edges")
	}
}
