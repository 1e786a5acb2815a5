package viewer

import (
	"fmt"
	"testing"
)

func TestSessionStaleResultDropped(t *testing.T) {
	s := NewSession()

	first := s.BeginLoad()
	second := s.BeginLoad()

	// The result for the abandoned first load must be rejected.
	if s.Accept(first, &Entry{Path: "old.dat", Lines: []string{"1 2"}}) {
		t.Error("stale generation should be rejected")
	}
	if s.Entry() != nil {
		t.Error("stale result must not be installed")
	}

	if !s.Accept(second, &Entry{Path: "new.dat", Lines: []string{"a", "b", "c"}}) {
		t.Fatal("current generation should be accepted")
	}
	if s.Entry().Path != "new.dat" {
		t.Errorf("wrong entry installed: %s", s.Entry().Path)
	}
}

func TestSessionAcceptResetsViewport(t *testing.T) {
	s := NewSession()
	s.Viewport.Resize(10)

	gen := s.BeginLoad()
	lines := make([]string, 100)
	s.Accept(gen, &Entry{Path: "a.dat", Lines: lines})
	s.Viewport.End()
	if s.Viewport.Offset == 0 {
		t.Fatal("setup: expected non-zero offset")
	}

	gen = s.BeginLoad()
	if s.Entry() != nil {
		t.Error("BeginLoad should invalidate the cached entry")
	}
	s.Accept(gen, &Entry{Path: "b.dat", Lines: []string{"one"}})

	if s.Viewport.Offset != 0 {
		t.Errorf("file change should reset scroll offset, got %d", s.Viewport.Offset)
	}
	if s.Viewport.TotalLines != 1 {
		t.Errorf("total lines not recomputed: %d", s.Viewport.TotalLines)
	}
}

func TestRecentFilesOrderAndDedup(t *testing.T) {
	s := NewSession()

	s.AddRecent("a")
	s.AddRecent("b")
	s.AddRecent("c")
	s.AddRecent("a")

	recent := s.Recent()
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	if recent[0] != "a" || recent[1] != "c" || recent[2] != "b" {
		t.Errorf("unexpected order: %v", recent)
	}
}

func TestRecentFilesCapped(t *testing.T) {
	s := NewSession()

	for i := 0; i < 25; i++ {
		s.AddRecent(fmt.Sprintf("file-%d", i))
	}

	recent := s.Recent()
	if len(recent) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(recent))
	}
	if recent[0] != "file-24" {
		t.Errorf("most recent first, got %s", recent[0])
	}
}
