package chart

import (
	"fmt"
	"math"
	"strings"

	"sciview/pkg/dataset"
)

// Braille cells pack 2x4 sub-cell dots, giving a width x height character
// pane an effective resolution of 2*width by 4*height.
const (
	brailleBase = 0x2800

	dotsPerCellX = 2
	dotsPerCellY = 4
)

// brailleDots holds the bit for each (dx, dy) dot position within a cell,
// dy counted from the top.
var brailleDots = [dotsPerCellX][dotsPerCellY]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RenderBraille plots a series into a width x height braille character
// block. The series is downsampled to the sub-cell column resolution first,
// then rasterized and folded into glyphs. Rows are joined with newlines.
// Identical arguments always yield an identical string.
func RenderBraille(s dataset.Series, ar dataset.AxisRange, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	reduced := dataset.Downsample(s, width*dotsPerCellX)
	grid := Rasterize(reduced, ar, height*dotsPerCellY, width*dotsPerCellX)

	var b strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			glyph := rune(brailleBase)
			for dx := 0; dx < dotsPerCellX; dx++ {
				for dy := 0; dy < dotsPerCellY; dy++ {
					if grid.At(row*dotsPerCellY+dy, col*dotsPerCellX+dx) {
						glyph |= brailleDots[dx][dy]
					}
				}
			}
			b.WriteRune(glyph)
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatAxisValue renders a number compactly for axis labels: scientific
// notation for very large or very small magnitudes, fewer decimals as the
// magnitude grows.
func FormatAxisValue(v float64) string {
	abs := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case abs >= 1e6 || abs < 1e-3:
		return fmt.Sprintf("%.1e", v)
	case abs >= 1000:
		return fmt.Sprintf("%.0f", v)
	case abs >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
