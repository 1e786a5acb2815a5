// Package viewer owns the per-file viewing state: the scroll viewport over
// raw lines, the cached extraction result for the loaded file, and the
// session tying both to the user's navigation.
package viewer

// Viewport tracks which slice of a file's lines is visible in the content
// pane. Offset is always clamped to [0, max(0, TotalLines-PageSize)], no
// matter what sequence of commands or resizes is applied.
type Viewport struct {
	Offset     int
	PageSize   int
	TotalLines int
}

func (v *Viewport) maxOffset() int {
	m := v.TotalLines - v.PageSize
	if m < 0 {
		return 0
	}
	return m
}

func (v *Viewport) clamp() {
	if v.Offset < 0 {
		v.Offset = 0
	}
	if m := v.maxOffset(); v.Offset > m {
		v.Offset = m
	}
}

// ScrollUp moves one line toward the start.
func (v *Viewport) ScrollUp() {
	v.Offset--
	v.clamp()
}

// ScrollDown moves one line toward the end.
func (v *Viewport) ScrollDown() {
	v.Offset++
	v.clamp()
}

// PageUp moves up by one page.
func (v *Viewport) PageUp() {
	v.Offset -= v.PageSize
	v.clamp()
}

// PageDown moves down by one page.
func (v *Viewport) PageDown() {
	v.Offset += v.PageSize
	v.clamp()
}

// Home jumps to the first line.
func (v *Viewport) Home() {
	v.Offset = 0
}

// End jumps so the last page is visible.
func (v *Viewport) End() {
	v.Offset = v.maxOffset()
}

// Resize updates the page size and re-clamps the offset so it never points
// past the new end.
func (v *Viewport) Resize(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	v.PageSize = pageSize
	v.clamp()
}

// SetContent resets the viewport for a newly loaded file.
func (v *Viewport) SetContent(totalLines int) {
	if totalLines < 0 {
		totalLines = 0
	}
	v.TotalLines = totalLines
	v.Offset = 0
}

// VisibleRange returns the half-open line interval [start, end) currently
// visible, bounded by the file length.
func (v *Viewport) VisibleRange() (start, end int) {
	start = v.Offset
	end = v.Offset + v.PageSize
	if end > v.TotalLines {
		end = v.TotalLines
	}
	if start > end {
		start = end
	}
	return start, end
}
