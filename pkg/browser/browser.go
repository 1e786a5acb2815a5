// Package browser lists directory contents for the file tree pane.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Entry is one row in the file tree.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// List returns the entries of dir sorted directories-first, then
// case-insensitively by name. When dir has a parent, a ".." entry leads the
// list.
func List(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(items)+1)
	if parent := filepath.Dir(dir); parent != dir {
		entries = append(entries, Entry{Name: "..", Path: parent, IsDir: true})
	}

	listed := make([]Entry, 0, len(items))
	for _, item := range items {
		listed = append(listed, Entry{
			Name:  item.Name(),
			Path:  filepath.Join(dir, item.Name()),
			IsDir: item.IsDir(),
		})
	}

	sort.Slice(listed, func(i, j int) bool {
		if listed[i].IsDir != listed[j].IsDir {
			return listed[i].IsDir
		}
		return strings.ToLower(listed[i].Name) < strings.ToLower(listed[j].Name)
	})

	return append(entries, listed...), nil
}

// HomeDir resolves the user's home directory for the '~' jump.
func HomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}
