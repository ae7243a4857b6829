// Package exec runs the helper processes translator talks to, such as the
// store bridge.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Result holds the outcome of one helper invocation.
type Result struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool
	Err      error
}

// Options configures a helper invocation.
type Options struct {
	Env     []string
	Timeout time.Duration
	Stdin   io.Reader
	Logger  *log.Logger
}

// DefaultOptions returns the options for short helper calls.
func DefaultOptions() Options {
	return Options{
		Timeout: 2 * time.Minute,
	}
}

// Runner runs a command. Run satisfies it; tests substitute fakes.
type Runner func(ctx context.Context, name string, args []string, opts Options) *Result

// Run executes name with args and captures its output. A zero timeout waits
// until ctx is done.
func Run(ctx context.Context, name string, args []string, opts Options) *Result {
	start := time.Now()
	result := &Result{Command: name, Args: args}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("running helper", "cmd", FormatCommand(name, args))

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		result.TimedOut = errors.Is(ctx.Err(), context.DeadlineExceeded)
		result.Err = err
		logger.Debug("helper failed", "cmd", name, "exit_code", result.ExitCode, "timed_out", result.TimedOut, "duration", result.Duration)
		return result
	}

	logger.Debug("helper finished", "cmd", name, "duration", result.Duration)
	return result
}

// Failure describes a failed run for error messages, preferring the last
// lines the helper wrote to stderr. It returns nil for a successful run.
func (r *Result) Failure() error {
	if r.Err == nil {
		return nil
	}
	if r.TimedOut {
		return fmt.Errorf("%s: timed out after %s", FormatCommand(r.Command, r.Args), r.Duration.Round(time.Millisecond))
	}
	detail := strings.TrimSpace(LastNLines(r.Stderr, 3))
	if detail == "" {
		detail = r.Err.Error()
	}
	return fmt.Errorf("%s: %s", FormatCommand(r.Command, r.Args), detail)
}

// CheckCommand reports whether name resolves in PATH.
func CheckCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// FormatCommand formats a command for display
func FormatCommand(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}

// LastNLines returns the last n lines of a string
func LastNLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
