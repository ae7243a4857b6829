package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns the form theme built from the active palette.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	if ActivePalette.Disabled {
		return t
	}

	t.Focused.Base = t.Focused.Base.BorderForeground(Border)
	t.Focused.Title = t.Focused.Title.Foreground(Highlight).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(Accent)
	t.Focused.Option = t.Focused.Option.Foreground(Foreground)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(Accent)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(Accent)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(Foreground)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(Muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Foreground).Background(lipgloss.Color(""))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}

// HuhKeyMap keeps the default form bindings and adds q as a back key.
func HuhKeyMap() *huh.KeyMap {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "back"),
	)
	return keyMap
}
