package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sciview/pkg/chart"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "starting..."
	}

	mainHeight := m.height - 2
	treeWidth := m.width / 5
	chartWidth := m.width * 3 / 10
	contentWidth := m.width - treeWidth - chartWidth

	var main string
	if m.showRecent {
		main = m.viewRecentPopup(mainHeight)
	} else {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewTree(treeWidth, mainHeight),
			m.viewContent(contentWidth, mainHeight),
			m.viewRight(chartWidth, mainHeight),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		m.viewPathBar(),
		m.viewStatusBar(),
	)
}

func (m *Model) viewTree(width, height int) string {
	innerW := width - 2
	innerH := height - 2
	visible := innerH - 1

	if visible > 0 {
		if m.selected < m.treeScroll {
			m.treeScroll = m.selected
		} else if m.selected >= m.treeScroll+visible {
			m.treeScroll = m.selected - visible + 1
		}
	}

	title := "Files"
	if len(m.entries) > visible && visible > 0 {
		last := m.treeScroll + visible
		if last > len(m.entries) {
			last = len(m.entries)
		}
		title = fmt.Sprintf("Files [%d-%d/%d]", m.treeScroll+1, last, len(m.entries))
	}

	lines := []string{paneTitleStyle.Render(title)}
	if m.dirErr != nil {
		lines = append(lines, errorStyle.Render("unreadable directory"))
	}
	for i := m.treeScroll; i < len(m.entries) && len(lines) <= visible; i++ {
		entry := m.entries[i]
		icon, color := iconFor(entry, m.nerdFonts)
		row := runewidth.Truncate(icon+entry.Name, innerW, "…")
		if i == m.selected {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(color).Render(row))
		}
	}

	return treePaneStyle.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

// contentLines returns the full text shown in the content pane before
// windowing: welcome text, a load-failure message, or the file itself.
func (m *Model) contentLines() []string {
	if m.loadErr != nil {
		return []string{"Binary or unreadable file - no text content to display"}
	}
	if entry := m.session.Entry(); entry != nil {
		return entry.Lines
	}
	return welcomeLines
}

func (m *Model) viewContent(width, height int) string {
	innerW := width - 2
	innerH := height - 2

	content := m.contentLines()
	start, end := m.session.Viewport.VisibleRange()
	title := "Content"
	if entry := m.session.Entry(); entry != nil && len(content) > 0 {
		title = fmt.Sprintf("Content [%d-%d/%d]", start+1, end, len(content))
	}

	lines := []string{paneTitleStyle.Render(title)}
	if m.loading {
		lines = append(lines, m.spinner.View()+" loading...")
	} else if m.session.Entry() == nil {
		for _, line := range content {
			lines = append(lines, runewidth.Truncate(line, innerW, "…"))
		}
	} else {
		numWidth := len(strconv.Itoa(len(content)))
		for i := start; i < end; i++ {
			prefix := fmt.Sprintf("%*d │ ", numWidth, i+1)
			body := runewidth.Truncate(content[i], innerW-numWidth-3, "…")
			lines = append(lines, lineNumStyle.Render(prefix)+body)
		}
	}

	return contentPaneStyle.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewRight(width, height int) string {
	if !m.showChart {
		return m.viewStats(width, height)
	}
	chartHeight := height * 3 / 5
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewChart(width, chartHeight),
		m.viewStats(width, height-chartHeight),
	)
}

func (m *Model) viewChart(width, height int) string {
	innerW := width - 2
	innerH := height - 2

	lines := []string{paneTitleStyle.Render("Scatter Plot")}

	entry := m.session.Entry()
	switch {
	case m.loading:
		lines = append(lines, m.spinner.View()+" extracting...")

	case entry == nil || !entry.Eligible():
		lines = append(lines,
			"",
			dimStyle.Render(" No numeric data"),
			dimStyle.Render(" detected."),
			"",
			dimStyle.Render(" Open a two-column"),
			dimStyle.Render(" data file to see"),
			dimStyle.Render(" a scatter plot."),
		)

	default:
		plotH := innerH - 3
		if plotH < 1 {
			plotH = 1
		}
		padded := entry.Range.Padded()
		plot := chart.RenderBraille(entry.Series, padded, innerW, plotH)
		for _, row := range strings.Split(plot, "\n") {
			lines = append(lines, plotStyle.Render(row))
		}
		lines = append(lines,
			axisLineStyle.Render(fmt.Sprintf("y: %s .. %s",
				chart.FormatAxisValue(entry.Range.MinY),
				chart.FormatAxisValue(entry.Range.MaxY))),
			axisLineStyle.Render(fmt.Sprintf("x: %s .. %s",
				chart.FormatAxisValue(entry.Range.MinX),
				chart.FormatAxisValue(entry.Range.MaxX))),
		)
	}

	return chartPaneStyle.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewStats(width, height int) string {
	innerW := width - 2
	innerH := height - 2

	lines := []string{paneTitleStyle.Render("Info & Stats")}
	if len(m.stats) == 0 {
		lines = append(lines, dimStyle.Render("No file selected"))
	}
	for _, line := range m.stats {
		lines = append(lines, statsStyle.Render(runewidth.Truncate(line, innerW, "…")))
	}

	return statsPaneStyle.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewRecentPopup(height int) string {
	recent := m.session.Recent()

	var lines []string
	lines = append(lines, paneTitleStyle.Render("Recent Files"), "")
	if len(recent) == 0 {
		lines = append(lines, dimStyle.Render("No history"))
	}
	for i, path := range recent {
		name := filepath.Base(path)
		if i == m.recentSelected {
			lines = append(lines, selectedStyle.Render(name))
		} else {
			lines = append(lines, statsStyle.Render(name))
		}
	}

	popup := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) viewPathBar() string {
	text := " " + m.currentDir
	if entry := m.session.Entry(); entry != nil {
		text = " " + entry.Path
	}
	return pathBarStyle.Width(m.width).Render(runewidth.Truncate(text, m.width, "…"))
}

func (m *Model) viewStatusBar() string {
	if m.status != "" {
		return statusBar.Width(m.width).Render(" " + m.status)
	}
	return statusBar.Width(m.width).Render(m.help.View(m.keys))
}
