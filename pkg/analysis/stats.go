// Package analysis computes the per-file statistics shown in the info pane.
package analysis

import (
	"fmt"
	"os"
	"time"
)

// FileStats describes the loaded file for the stats pane.
type FileStats struct {
	Path     string
	Size     int64
	Modified time.Time
	Lines    int
	Points   int
}

// Describe stats a file and combines the result with the line and point
// counts from the loaded entry. Points is zero for chart-ineligible files.
func Describe(path string, lines, points int) (FileStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileStats{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return FileStats{
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime(),
		Lines:    lines,
		Points:   points,
	}, nil
}

// Summary returns the stats pane lines.
func (s FileStats) Summary() []string {
	lines := []string{
		fmt.Sprintf("Size: %s", FormatSize(s.Size)),
		fmt.Sprintf("Modified: %s", s.Modified.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Lines: %d", s.Lines),
	}
	if s.Points > 0 {
		lines = append(lines, fmt.Sprintf("Data points: %d", s.Points))
	}
	return lines
}

const (
	kb = 1024
	mb = kb * 1024
	gb = mb * 1024
)

// FormatSize renders a byte count in human-readable form.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
