package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by text rendering.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Status icons, pre-rendered.
	StatusSuccess string
	StatusFailed  string
	StatusSkipped string
}

func newStyles() Styles {
	// On dumb terminals and in pipes lipgloss falls back to plain text on
	// its own, but pre-rendered icons need the explicit profile check.
	plain := termenv.ColorProfile() == termenv.Ascii

	s := Styles{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	if plain {
		s.StatusSuccess = "[ok]"
		s.StatusFailed = "[fail]"
		s.StatusSkipped = "[skip]"
	} else {
		s.StatusSuccess = s.Success.Render("✓")
		s.StatusFailed = s.Error.Render("✗")
		s.StatusSkipped = s.Muted.Render("-")
	}
	return s
}
