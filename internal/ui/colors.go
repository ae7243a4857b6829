package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/moderntranslator/internal/catalog"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
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
	Disabled   bool
}

// PaletteFor builds the palette for a color pair in dark or light mode.
func PaletteFor(colorID string, dark bool) Palette {
	pair := catalog.Color(colorID)
	p := Palette{
		Name:      pair.ID,
		Primary:   lipgloss.Color(pair.Primary),
		Secondary: lipgloss.Color(pair.Accent),
		Accent:    lipgloss.Color(pair.Accent),
		Highlight: lipgloss.Color(pair.Primary),
	}
	if dark {
		p.Info = lipgloss.Color("#60A5FA")
		p.Success = lipgloss.Color("#34D399")
		p.Warning = lipgloss.Color("#FBBF24")
		p.Error = lipgloss.Color("#F87171")
		p.Muted = lipgloss.Color("#94A3B8")
		p.Background = lipgloss.Color("#0B1120")
		p.Foreground = lipgloss.Color("#E2E8F0")
		p.Border = lipgloss.Color("#334155")
		return p
	}
	p.Info = lipgloss.Color("#2563EB")
	p.Success = lipgloss.Color("#059669")
	p.Warning = lipgloss.Color("#D97706")
	p.Error = lipgloss.Color("#DC2626")
	p.Muted = lipgloss.Color("#64748B")
	p.Background = lipgloss.Color("#F8FAFC")
	p.Foreground = lipgloss.Color("#0F172A")
	p.Border = lipgloss.Color("#CBD5E1")
	return p
}

// DefaultPalette returns the palette of a fresh install.
func DefaultPalette() Palette {
	return PaletteFor(catalog.DefaultColorID, false)
}

// ActivePalette is the palette styles were last built from.
var ActivePalette = DefaultPalette()

// ApplyPalette switches the package colors and rebuilds the styles.
func ApplyPalette(p Palette) {
	if p.Disabled {
		p = Palette{Name: p.Name, Disabled: true}
	}
	ActivePalette = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight

	buildStyles()
}
