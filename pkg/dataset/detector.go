package dataset

// DetectorConfig holds the tunable chart-eligibility thresholds. The sniff
// pass is deliberately cheap so arbitrary text and log files are rejected
// without materializing a full series.
type DetectorConfig struct {
	SampleLines int     // data lines examined by the sniff pass
	MinRatio    float64 // required parsed/attempted ratio among sampled lines
	MinPoints   int     // required absolute number of parsed lines
}

// DefaultDetectorConfig returns the default eligibility thresholds.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		SampleLines: 40,
		MinRatio:    0.8,
		MinPoints:   3,
	}
}

// Detector classifies files as chart-eligible and extracts their series.
type Detector struct {
	config DetectorConfig
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(cfg DetectorConfig) *Detector {
	return &Detector{config: cfg}
}

// Sniff samples up to SampleLines non-comment lines and reports whether the
// file qualifies as two-column numeric data. A file with no data lines at
// all is never eligible.
func (d *Detector) Sniff(lines []string) bool {
	attempted := 0
	parsed := 0

	for _, line := range lines {
		if attempted >= d.config.SampleLines {
			break
		}
		_, class := ParseLine(line)
		switch class {
		case LineComment:
			continue
		case LineData:
			attempted++
			parsed++
		case LineMalformed:
			attempted++
		}
	}

	if parsed < d.config.MinPoints {
		return false
	}
	return float64(parsed)/float64(attempted) >= d.config.MinRatio
}

// Extract scans every line and collects all parseable points in original
// line order. Malformed data lines are dropped silently.
func (d *Detector) Extract(lines []string) Series {
	var series Series
	for _, line := range lines {
		if p, class := ParseLine(line); class == LineData {
			series = append(series, p)
		}
	}
	return series
}

// DetectAndExtract runs the sniff pass and, when the file qualifies,
// extracts the full series. Returns nil and false for ineligible files.
func (d *Detector) DetectAndExtract(lines []string) (Series, bool) {
	if !d.Sniff(lines) {
		return nil, false
	}
	series := d.Extract(lines)
	if len(series) == 0 {
		return nil, false
	}
	return series, true
}
