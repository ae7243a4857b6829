package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// StartScreen clears an interactive terminal and prints a screen title to w.
func StartScreen(w io.Writer, title string, subtitle string) {
	if IsInteractiveTerminal() {
		fmt.Fprint(w, "\033[2J\033[H") //nolint:errcheck
	}
	fmt.Fprintln(w, Header(title)) //nolint:errcheck
	if subtitle != "" {
		fmt.Fprintln(w, Tagline.Render(subtitle)) //nolint:errcheck
	}
	if !CurrentPreferences.Dense {
		fmt.Fprintln(w) //nolint:errcheck
	}
}

func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Frame renders a full-screen TUI layout.
func Frame(title string, subtitle string, body string, footer string) string {
	parts := make([]string, 0, 5)
	parts = append(parts, Header(title))
	if subtitle != "" {
		parts = append(parts, Tagline.Render(subtitle))
	}
	parts = append(parts, body)
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
