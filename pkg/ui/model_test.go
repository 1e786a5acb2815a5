package ui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"sciview/pkg/config"
	"sciview/pkg/viewer"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	cfg.StartDir = t.TempDir()
	return New(&cfg, log.New(io.Discard))
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeSetsPageSize(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(*Model)

	// Two bars, two border rows and the pane title line are not content.
	if got := m.session.Viewport.PageSize; got != 19 {
		t.Errorf("page size = %d, want 19", got)
	}
}

func TestChartToggle(t *testing.T) {
	m := newTestModel(t)
	if !m.showChart {
		t.Fatal("chart pane should default on")
	}

	next, _ := m.Update(keyMsg("c"))
	m = next.(*Model)
	if m.showChart {
		t.Error("'c' should hide the chart pane")
	}

	next, _ = m.Update(keyMsg("c"))
	m = next.(*Model)
	if !m.showChart {
		t.Error("'c' should show the chart pane again")
	}
}

func TestStaleLoadResultDropped(t *testing.T) {
	m := newTestModel(t)

	stale := m.session.BeginLoad()
	m.session.BeginLoad()

	next, _ := m.Update(loadedMsg{
		generation: stale,
		entry:      &viewer.Entry{Path: "old.dat", Lines: []string{"1 2"}},
	})
	m = next.(*Model)

	if m.session.Entry() != nil {
		t.Error("stale load result must not be installed")
	}
}

func TestLoadedMsgInstallsEntry(t *testing.T) {
	m := newTestModel(t)

	gen := m.session.BeginLoad()
	m.loading = true

	next, _ := m.Update(loadedMsg{
		generation: gen,
		entry:      &viewer.Entry{Path: "new.dat", Lines: []string{"a", "b"}},
		stats:      []string{"Lines: 2"},
	})
	m = next.(*Model)

	if m.loading {
		t.Error("loading flag should clear")
	}
	if m.session.Entry() == nil || m.session.Entry().Path != "new.dat" {
		t.Error("entry not installed")
	}
	if m.session.Viewport.Offset != 0 || m.session.Viewport.TotalLines != 2 {
		t.Errorf("viewport not reset: %+v", m.session.Viewport)
	}
}

func TestOpenDirectoryNavigates(t *testing.T) {
	base := t.TempDir()
	sub := filepath.Join(base, "subdir")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.StartDir = base
	m := New(&cfg, log.New(io.Discard))

	// Select "subdir": entry 0 is "..".
	m.selected = 1
	if cmd := m.openSelected(); cmd != nil {
		t.Error("opening a directory should not spawn a load command")
	}
	if m.currentDir != sub {
		t.Errorf("current dir = %s, want %s", m.currentDir, sub)
	}
	if m.selected != 0 {
		t.Errorf("selection should reset on directory change, got %d", m.selected)
	}
}

func TestRecentPopupToggle(t *testing.T) {
	m := newTestModel(t)
	m.session.AddRecent("/tmp/a.dat")

	next, _ := m.Update(keyMsg("h"))
	m = next.(*Model)
	if !m.showRecent {
		t.Fatal("'h' should open the recent files popup")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(*Model)
	if m.showRecent {
		t.Error("esc should close the popup")
	}
}

func TestViewRendersWithoutFile(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(*Model)

	out := m.View()
	if out == "" {
		t.Fatal("view should render before any file is opened")
	}
}
