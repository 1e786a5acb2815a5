// Package dataset turns loosely formatted two-column numeric text into
// bounded point series suitable for character-cell plotting.
package dataset

// Point is a single (x, y) sample extracted from one line of a data file.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered sequence of points in original line order. Line order
// is significant: x values may be non-monotonic or effectively absent, in
// which case position substitutes for them.
type Series []Point

// AxisRange holds the extent of a series on both axes.
type AxisRange struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Range computes the axis extent of the series in a single scan. A
// degenerate axis (all values identical) is widened by 1.0 on each side so
// that rasterization never divides by zero.
func (s Series) Range() AxisRange {
	if len(s) == 0 {
		return AxisRange{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	}

	r := AxisRange{
		MinX: s[0].X, MaxX: s[0].X,
		MinY: s[0].Y, MaxY: s[0].Y,
	}
	for _, p := range s[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}

	if r.MinX == r.MaxX {
		r.MinX--
		r.MaxX++
	}
	if r.MinY == r.MaxY {
		r.MinY--
		r.MaxY++
	}
	return r
}

// Padded returns the range widened by 5% on each axis for display bounds, so
// points at the extremes are not plotted on the chart border.
func (r AxisRange) Padded() AxisRange {
	xPad := (r.MaxX - r.MinX) * 0.05
	yPad := (r.MaxY - r.MinY) * 0.05
	return AxisRange{
		MinX: r.MinX - xPad,
		MaxX: r.MaxX + xPad,
		MinY: r.MinY - yPad,
		MaxY: r.MaxY + yPad,
	}
}
