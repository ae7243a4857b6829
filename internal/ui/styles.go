// Package ui provides Charm-based UI components for translator
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette, replaced by ApplyPalette
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color

	Bold = lipgloss.NewStyle().Bold(true)

	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style

	HeaderStyle lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
)

func init() {
	ApplyPalette(DefaultPalette())
}

func buildStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = box(Secondary)
	SuccessBox = box(Success)
	ErrorBox = box(Error)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		SetString("✓")

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		SetString("✗")

	StatusPending = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("○")
}

func box(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(title)
}
