package viewer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxRecentFiles = 10

// Session owns the active file entry, the content viewport and the
// recent-files history. It is the single mutator of all three: load results
// arriving from background commands are accepted only when their generation
// still matches, so results for files the user has navigated away from are
// dropped instead of applied.
type Session struct {
	Viewport Viewport

	entry      *Entry
	generation int
	recent     []string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Entry returns the active file entry, nil before the first load.
func (s *Session) Entry() *Entry {
	return s.entry
}

// Generation returns the current load generation.
func (s *Session) Generation() int {
	return s.generation
}

// BeginLoad invalidates the cached entry for the old file and returns the
// generation tag a background load must carry to be accepted.
func (s *Session) BeginLoad() int {
	s.generation++
	s.entry = nil
	return s.generation
}

// Accept installs a load result if its generation is still current. Stale
// results are rejected and the session is left untouched.
func (s *Session) Accept(generation int, entry *Entry) bool {
	if generation != s.generation {
		return false
	}
	s.entry = entry
	s.Viewport.SetContent(len(entry.Lines))
	s.AddRecent(entry.Path)
	return true
}

// AddRecent records a path as most recently used, deduplicating and keeping
// at most ten entries.
func (s *Session) AddRecent(path string) {
	kept := s.recent[:0]
	for _, p := range s.recent {
		if p != path {
			kept = append(kept, p)
		}
	}
	s.recent = append([]string{path}, kept...)
	if len(s.recent) > maxRecentFiles {
		s.recent = s.recent[:maxRecentFiles]
	}
}

// Recent returns the history, most recent first.
func (s *Session) Recent() []string {
	return s.recent
}

// lastDirPath returns the location of the persisted last-directory file.
func lastDirPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "sciview", "last_dir"), nil
}

// LoadLastDirectory returns the persisted starting directory, or "" when
// none is stored or the stored path is no longer a directory.
func LoadLastDirectory() string {
	path, err := lastDirPath()
	if err != nil {
		return ""
	}
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	dir := strings.TrimSpace(scanner.Text())
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// SaveLastDirectory persists the directory to restore on next startup.
func SaveLastDirectory(dir string) error {
	path, err := lastDirPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(dir+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to save last directory: %w", err)
	}
	return nil
}
