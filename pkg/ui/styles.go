package ui

import "github.com/charmbracelet/lipgloss"

// Atom One Dark palette.
const (
	colorBg     = lipgloss.Color("#282c34")
	colorBgBar  = lipgloss.Color("#21252b")
	colorFg     = lipgloss.Color("#abb2bf")
	colorDim    = lipgloss.Color("#5c6370")
	colorBlue   = lipgloss.Color("#61afef")
	colorGreen  = lipgloss.Color("#98c379")
	colorYellow = lipgloss.Color("#e5c07b")
	colorPurple = lipgloss.Color("#c678dd")
	colorCyan   = lipgloss.Color("#56b6c2")
	colorRed    = lipgloss.Color("#e06c75")
	colorOrange = lipgloss.Color("#d19a66")
)

var (
	treePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorCyan)
	contentPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorGreen)
	chartPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPurple)
	statsPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorYellow)
	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	selectedStyle  = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorBlue).
			Bold(true)
	lineNumStyle  = lipgloss.NewStyle().Foreground(colorDim)
	plotStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	statsStyle    = lipgloss.NewStyle().Foreground(colorFg)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	pathBarStyle  = lipgloss.NewStyle().Foreground(colorFg).Background(colorBg)
	statusBar     = lipgloss.NewStyle().Background(colorBgBar)
	axisLineStyle = lipgloss.NewStyle().Foreground(colorDim)
)
