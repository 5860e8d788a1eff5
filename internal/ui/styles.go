package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Issue   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Sentence  lipgloss.Style
	Rule      lipgloss.Style
	Score     lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconIssue   string
	IconWarning string
	IconSuccess string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Issue = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))   // Yellow
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Sentence = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray
		s.Score = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Cyan

		s.IconIssue = "⚠"
		s.IconWarning = "✗"
		s.IconSuccess = "✓"
	} else {
		s.Issue = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Sentence = lipgloss.NewStyle()
		s.Rule = lipgloss.NewStyle()
		s.Score = lipgloss.NewStyle()

		s.IconIssue = "!"
		s.IconWarning = "x"
		s.IconSuccess = "ok"
	}

	return s
}
