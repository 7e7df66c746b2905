package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic ANSI colors, kept low so they work on any terminal theme.
const (
	colorGood     lipgloss.Color = "2" // green
	colorWarning  lipgloss.Color = "3" // yellow
	colorCritical lipgloss.Color = "1" // red
	colorInfo     lipgloss.Color = "6" // cyan
	colorMuted    lipgloss.Color = "8" // bright black
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	goodStyle     = lipgloss.NewStyle().Foreground(colorGood)
	warningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	criticalStyle = lipgloss.NewStyle().Foreground(colorCritical).Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	statusOKStyle  = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorCritical).Bold(true)
	confirmStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("1")).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)

	gaugeFill  = "█"
	gaugeEmpty = "░"
)

// hasColor is resolved once; on a colorless terminal the severity styles
// degrade to plain text so the bands stay readable as bare numbers.
var hasColor = termenv.ColorProfile() != termenv.Ascii

// severityStyle picks the render style for a classified percentage.
func severityStyle(sev Severity) lipgloss.Style {
	if !hasColor {
		return lipgloss.NewStyle()
	}
	switch sev {
	case SeverityCritical:
		return criticalStyle
	case SeverityWarning:
		return warningStyle
	default:
		return goodStyle
	}
}
