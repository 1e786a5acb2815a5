package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sciview/pkg/browser"
)

// Nerd-font glyphs with emoji fallbacks, per entry kind.
var icons = map[string][2]string{
	"parent": {"\uf062 ", "\u2b06\ufe0f "},
	"dir":    {"\uf07b ", "\U0001f4c1 "},
	"chem":   {"\uf0c3 ", "\U0001f52c "},
	"data":   {"\uf0ce ", "\U0001f4ca "},
	"text":   {"\uf0f6 ", "\U0001f4c4 "},
	"code":   {"\uf121 ", "\U0001f4bb "},
	"other":  {"\uf016 ", "\U0001f4c4 "},
}

// iconFor picks the tree icon and color for an entry.
func iconFor(entry browser.Entry, nerdFonts bool) (string, lipgloss.Color) {
	kind := "other"
	color := colorDim

	switch {
	case entry.IsDir && entry.Name == "..":
		kind, color = "parent", colorBlue
	case entry.IsDir:
		kind, color = "dir", colorYellow
	default:
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name)), ".")
		switch ext {
		case "xyz", "pdb", "cif":
			kind, color = "chem", colorPurple
		case "dat", "csv":
			kind, color = "data", colorGreen
		case "txt", "log":
			kind, color = "text", colorFg
		case "go", "rs", "py", "js", "ts":
			kind, color = "code", colorCyan
		}
	}

	pair := icons[kind]
	if nerdFonts {
		return pair[0], color
	}
	return pair[1], color
}
