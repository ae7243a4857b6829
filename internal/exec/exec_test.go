package exec

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "powershell -File store.ps1", FormatCommand("powershell", []string{"-File", "store.ps1"}))
	assert.Equal(t, "powershell", FormatCommand("powershell", nil))
}

func TestLastNLines(t *testing.T) {
	assert.Equal(t, "b\nc", LastNLines("a\nb\nc\n", 2))
	assert.Equal(t, "a\n", LastNLines("a\n", 3))
}

func TestCheckCommandMissing(t *testing.T) {
	assert.False(t, CheckCommand("translator-no-such-binary"))
}

func TestFailure(t *testing.T) {
	ok := &Result{Command: "helper"}
	assert.NoError(t, ok.Failure())

	failed := &Result{
		Command: "helper",
		Args:    []string{"purchase"},
		Stderr:  "one\ntwo\nthree\nfour\n",
		Err:     errors.New("exit status 1"),
	}
	assert.EqualError(t, failed.Failure(), "helper purchase: two\nthree\nfour")

	quiet := &Result{Command: "helper", Err: errors.New("exit status 2")}
	assert.EqualError(t, quiet.Failure(), "helper: exit status 2")

	timedOut := &Result{Command: "helper", TimedOut: true, Duration: 1500 * time.Millisecond, Err: errors.New("signal: killed")}
	assert.EqualError(t, timedOut.Failure(), "helper: timed out after 1.5s")
}

func TestRunCapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	res := Run(context.Background(), "sh", []string{"-c", "echo out; echo err 1>&2; exit 3"}, DefaultOptions())
	require.Error(t, res.Err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
}

func TestRunTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	opts := DefaultOptions()
	opts.Timeout = 50 * time.Millisecond
	res := Run(context.Background(), "sh", []string{"-c", "sleep 5"}, opts)
	require.Error(t, res.Err)
	assert.True(t, res.TimedOut)
}

func TestRunMissingBinary(t *testing.T) {
	res := Run(context.Background(), "translator-no-such-binary", nil, DefaultOptions())
	require.Error(t, res.Err)
	assert.Equal(t, -1, res.ExitCode)
}
