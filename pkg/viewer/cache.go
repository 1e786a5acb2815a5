package viewer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"sciview/pkg/dataset"
)

// ErrBinaryFile marks files whose content is not displayable text. The
// session survives; the presentation layer shows a fallback message.
var ErrBinaryFile = errors.New("binary file")

// Entry is the cached state for the loaded file: its raw lines plus the
// extraction result when the file qualifies as two-column numeric data.
// Entries are replaced wholesale on file change, never mutated.
type Entry struct {
	Path  string
	Lines []string

	// Series and Range are nil for files that failed chart detection.
	Series dataset.Series
	Range  *dataset.AxisRange
}

// Eligible reports whether the file qualified for chart rendering.
func (e *Entry) Eligible() bool {
	return len(e.Series) > 0
}

// Load reads a file and runs chart detection over its lines. Unreadable
// files return the underlying error; files containing NUL bytes return
// ErrBinaryFile.
func Load(path string, detector *dataset.Detector) (*Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return nil, ErrBinaryFile
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = []string{"(empty file)"}
	}

	entry := &Entry{
		Path:  path,
		Lines: lines,
	}

	if series, ok := detector.DetectAndExtract(lines); ok {
		r := series.Range()
		entry.Series = series
		entry.Range = &r
	}
	return entry, nil
}
