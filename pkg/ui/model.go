// Package ui wires the browser, viewer and chart packages into the Bubble
// Tea terminal interface.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"sciview/pkg/analysis"
	"sciview/pkg/browser"
	"sciview/pkg/chart"
	"sciview/pkg/config"
	"sciview/pkg/dataset"
	"sciview/pkg/viewer"
)

// loadedMsg delivers a finished background load. The generation tag lets the
// session drop results for files the user has navigated away from.
type loadedMsg struct {
	generation int
	entry      *viewer.Entry
	stats      []string
}

type loadFailedMsg struct {
	generation int
	path       string
	err        error
	stats      []string
}

type exportDoneMsg struct {
	path string
	err  error
}

var welcomeLines = []string{
	"Welcome to sciview!",
	"",
	"Select a file and press Enter to view its contents.",
	"",
	"Two-column numeric files are plotted automatically.",
}

// Model is the top-level Bubble Tea model.
type Model struct {
	cfg      *config.Config
	logger   *log.Logger
	detector *dataset.Detector
	session  *viewer.Session

	startupDir string
	currentDir string
	entries    []browser.Entry
	selected   int
	treeScroll int
	dirErr     error

	loading  bool
	loadErr  error
	stats    []string
	status   string
	showHelp bool

	showChart      bool
	nerdFonts      bool
	showRecent     bool
	recentSelected int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width  int
	height int
}

// New builds the initial model. Start directory priority: -dir flag, then
// the persisted last directory, then the working directory.
func New(cfg *config.Config, logger *log.Logger) *Model {
	startupDir, err := os.Getwd()
	if err != nil {
		startupDir = "."
	}

	dir := cfg.StartDir
	if dir == "" {
		dir = viewer.LoadLastDirectory()
	}
	if dir == "" {
		dir = startupDir
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = plotStyle

	m := &Model{
		cfg: cfg,
		logger: logger,
		detector: dataset.NewDetector(dataset.DetectorConfig{
			SampleLines: cfg.SampleLines,
			MinRatio:    cfg.MinRatio,
			MinPoints:   cfg.MinPoints,
		}),
		session:    viewer.NewSession(),
		startupDir: startupDir,
		currentDir: dir,
		showChart:  cfg.ShowChart,
		nerdFonts:  cfg.NerdFonts,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
	}
	m.session.Viewport.Resize(20)
	m.refreshDirectory()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// refreshDirectory re-lists the current directory and resets the selection.
func (m *Model) refreshDirectory() {
	m.selected = 0
	m.treeScroll = 0
	m.entries, m.dirErr = browser.List(m.currentDir)
	if m.dirErr != nil {
		m.logger.Error("failed to list directory", "dir", m.currentDir, "err", m.dirErr)
		m.entries = nil
	}
}

// changeDirectory moves the tree to a new directory.
func (m *Model) changeDirectory(dir string) {
	m.currentDir = dir
	m.refreshDirectory()
}

// openSelected enters a directory or starts loading a file.
func (m *Model) openSelected() tea.Cmd {
	if m.selected >= len(m.entries) {
		return nil
	}
	entry := m.entries[m.selected]
	if entry.IsDir {
		m.changeDirectory(entry.Path)
		return nil
	}
	return m.beginLoad(entry.Path)
}

// beginLoad invalidates the old entry and spawns the background load for a
// file. The UI stays responsive while parsing runs.
func (m *Model) beginLoad(path string) tea.Cmd {
	generation := m.session.BeginLoad()
	m.loading = true
	m.loadErr = nil
	m.status = ""
	m.logger.Info("loading file", "path", path, "generation", generation)
	return tea.Batch(m.spinner.Tick, loadCmd(path, generation, m.detector))
}

// loadCmd reads and parses a file off the event loop.
func loadCmd(path string, generation int, detector *dataset.Detector) tea.Cmd {
	return func() tea.Msg {
		entry, err := viewer.Load(path, detector)
		if err != nil {
			stats := []string{}
			if fs, statErr := analysis.Describe(path, 0, 0); statErr == nil {
				stats = fs.Summary()
			}
			return loadFailedMsg{generation: generation, path: path, err: err, stats: stats}
		}

		stats := []string{}
		if fs, statErr := analysis.Describe(path, len(entry.Lines), len(entry.Series)); statErr == nil {
			stats = fs.Summary()
		}
		return loadedMsg{generation: generation, entry: entry, stats: stats}
	}
}

// exportCmd writes the loaded series to a chart file next to the source.
func exportCmd(series dataset.Series, title, filename string, html bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if html {
			err = chart.ExportHTML(series, title, filename)
		} else {
			err = chart.ExportPNG(series, title, filename)
		}
		return exportDoneMsg{path: filename, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.session.Viewport.Resize(m.contentHeight())
		return m, nil

	case loadedMsg:
		if !m.session.Accept(msg.generation, msg.entry) {
			m.logger.Debug("dropped stale load result", "path", msg.entry.Path)
			return m, nil
		}
		m.loading = false
		m.loadErr = nil
		m.stats = msg.stats
		m.logger.Info("file loaded",
			"path", msg.entry.Path,
			"lines", len(msg.entry.Lines),
			"points", len(msg.entry.Series))
		return m, nil

	case loadFailedMsg:
		if msg.generation != m.session.Generation() {
			return m, nil
		}
		m.loading = false
		m.loadErr = msg.err
		m.stats = msg.stats
		m.session.AddRecent(msg.path)
		m.logger.Warn("file not displayable", "path", msg.path, "err", msg.err)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("export failed: %v", msg.err))
			m.logger.Error("chart export failed", "err", msg.err)
		} else {
			m.status = fmt.Sprintf("chart written to %s", msg.path)
			m.logger.Info("chart exported", "path", msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showRecent {
		return m.handleRecentKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := viewer.SaveLastDirectory(m.currentDir); err != nil {
			m.logger.Warn("failed to persist last directory", "err", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.Parent):
		if len(m.entries) > 0 && m.entries[0].Name == ".." {
			m.changeDirectory(m.entries[0].Path)
		}

	case key.Matches(msg, m.keys.ScrollUp):
		m.session.Viewport.ScrollUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.session.Viewport.ScrollDown()
	case key.Matches(msg, m.keys.PageUp):
		m.session.Viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.session.Viewport.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.session.Viewport.Home()
	case key.Matches(msg, m.keys.End):
		m.session.Viewport.End()

	case key.Matches(msg, m.keys.Chart):
		m.showChart = !m.showChart
	case key.Matches(msg, m.keys.Icons):
		m.nerdFonts = !m.nerdFonts
	case key.Matches(msg, m.keys.Refresh):
		m.refreshDirectory()
	case key.Matches(msg, m.keys.History):
		m.showRecent = true
		m.recentSelected = 0
	case key.Matches(msg, m.keys.Startup):
		m.changeDirectory(m.startupDir)
	case key.Matches(msg, m.keys.GoHome):
		if home, err := browser.HomeDir(); err == nil {
			m.changeDirectory(home)
		}

	case key.Matches(msg, m.keys.ExportPNG):
		return m, m.export(false)
	case key.Matches(msg, m.keys.ExportHTML):
		return m, m.export(true)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

func (m *Model) handleRecentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recent := m.session.Recent()

	switch msg.String() {
	case "esc", "q", "h":
		m.showRecent = false
	case "up":
		if len(recent) > 0 {
			m.recentSelected = (m.recentSelected + len(recent) - 1) % len(recent)
		}
	case "down":
		if len(recent) > 0 {
			m.recentSelected = (m.recentSelected + 1) % len(recent)
		}
	case "enter":
		if m.recentSelected < len(recent) {
			path := recent[m.recentSelected]
			m.showRecent = false
			return m, m.beginLoad(path)
		}
	}
	return m, nil
}

// export spawns a chart export for the loaded series, if any.
func (m *Model) export(html bool) tea.Cmd {
	entry := m.session.Entry()
	if entry == nil || !entry.Eligible() {
		m.status = dimStyle.Render("no chart data to export")
		return nil
	}

	ext := ".png"
	if html {
		ext = ".html"
	}
	filename := strings.TrimSuffix(entry.Path, ext) + ext
	return exportCmd(entry.Series, entry.Path, filename, html)
}

// contentHeight is the number of file lines the content pane can show.
func (m *Model) contentHeight() int {
	// Two bars plus the pane border rows and title line.
	h := m.height - 2 - 2 - 1
	if h < 1 {
		return 1
	}
	return h
}
