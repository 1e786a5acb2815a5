package dataset

import (
	"math"
	"strconv"
	"strings"
)

// LineClass is the classification of a single input line.
type LineClass int

const (
	// LineComment marks blank lines and lines starting with '#' or ';'.
	// These are skipped: neither data nor a parse failure.
	LineComment LineClass = iota
	// LineData marks a line that yielded exactly one (x, y) pair.
	LineData
	// LineMalformed marks a line that looked like data but did not parse.
	// Non-fatal; callers count and continue.
	LineMalformed
)

func isSeparator(c rune) bool {
	return c == ' ' || c == '\t' || c == ','
}

// ParseLine attempts to extract a two-column numeric point from one line.
//
// The line is trimmed, split on any mixture of whitespace, tabs and commas,
// and accepted only when exactly two tokens remain and both parse as finite
// floats (decimal or scientific notation). NaN and Inf literals are
// rejected.
func ParseLine(line string) (Point, LineClass) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
		return Point{}, LineComment
	}

	tokens := strings.FieldsFunc(trimmed, isSeparator)
	if len(tokens) != 2 {
		return Point{}, LineMalformed
	}

	x, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return Point{}, LineMalformed
	}
	y, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Point{}, LineMalformed
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, LineMalformed
	}

	return Point{X: x, Y: y}, LineData
}
