package dataset

import "math"

// Downsample reduces a series to at most 2*width points while preserving
// local extrema. The input is partitioned by index into width contiguous
// buckets whose sizes differ by at most one element; each bucket contributes
// its minimum-y and maximum-y points, ordered by original position so the
// trend direction within the bucket is not misrepresented.
//
// Bucketing by index rather than by x keeps the reduction robust to
// non-monotonic or irregularly spaced x values. Identical input and width
// always produce identical output.
//
// When len(s) <= width the series is returned unchanged.
func Downsample(s Series, width int) Series {
	if width < 1 || len(s) <= width {
		return s
	}

	out := make(Series, 0, 2*width)
	for b := 0; b < width; b++ {
		start := b * len(s) / width
		end := (b + 1) * len(s) / width

		lo, hi := start, start
		for i := start + 1; i < end; i++ {
			if s[i].Y < s[lo].Y {
				lo = i
			}
			if s[i].Y > s[hi].Y {
				hi = i
			}
		}

		first, second := lo, hi
		if hi < lo {
			first, second = hi, lo
		}
		out = append(out, s[first])
		if second != first {
			out = append(out, s[second])
		}
	}
	return out
}

// DownsampleCapped behaves like Downsample but emits exactly one point per
// bucket, for callers that need a hard cap of width output points. When a
// bucket's min and max differ, the survivor is the point deviating further
// from the bucket's mean y, so the more salient extreme is kept.
func DownsampleCapped(s Series, width int) Series {
	if width < 1 || len(s) <= width {
		return s
	}

	out := make(Series, 0, width)
	for b := 0; b < width; b++ {
		start := b * len(s) / width
		end := (b + 1) * len(s) / width

		lo, hi := start, start
		sum := 0.0
		for i := start; i < end; i++ {
			sum += s[i].Y
			if s[i].Y < s[lo].Y {
				lo = i
			}
			if s[i].Y > s[hi].Y {
				hi = i
			}
		}

		pick := lo
		if lo != hi {
			mean := sum / float64(end-start)
			if math.Abs(s[hi].Y-mean) > math.Abs(s[lo].Y-mean) {
				pick = hi
			}
		}
		out = append(out, s[pick])
	}
	return out
}
