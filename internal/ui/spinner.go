package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

type taskDoneMsg struct{ err error }

// taskModel shows a spinner until a background task reports back.
type taskModel struct {
	spinner spinner.Model
	message string
	cancel  context.CancelFunc
	done    bool
	err     error
}

func newTaskModel(message string, cancel context.CancelFunc) taskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = fg(string(Primary))
	return taskModel{spinner: s, message: message, cancel: cancel}
}

func (m taskModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			// The task sees the cancellation and reports back.
			m.cancel()
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m taskModel) View() tea.View {
	if m.done {
		if m.err != nil {
			return tea.NewView(ErrorStyle.Render("✗ "+m.message+": "+m.err.Error()) + "\n")
		}
		return tea.NewView(SuccessStyle.Render("✓ "+m.message) + "\n")
	}
	return tea.NewView(m.spinner.View() + " " + m.message + "\n")
}

// RunWithSpinner runs fn while showing message. Ctrl+C cancels the context
// handed to fn. Without a terminal the progress is printed as plain lines.
func RunWithSpinner(ctx context.Context, message string, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !IsInteractiveTerminal() {
		return runPlain(ctx, os.Stdout, message, fn)
	}

	p := tea.NewProgram(newTaskModel(message, cancel))

	errCh := make(chan error, 1)
	go func() {
		err := fn(ctx)
		errCh <- err
		p.Send(taskDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-errCh
		return fmt.Errorf("spinner: %w", err)
	}
	return <-errCh
}

func runPlain(ctx context.Context, w io.Writer, message string, fn func(context.Context) error) error {
	fmt.Fprintf(w, "%s...\n", message) //nolint:errcheck
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Fprintf(w, "✗ %s failed (%s): %v\n", message, elapsed, err) //nolint:errcheck
		return err
	}
	fmt.Fprintf(w, "✓ %s (%s)\n", message, elapsed) //nolint:errcheck
	return nil
}
