// Package opener hands URIs to the operating system.
package opener

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
)

// Opener opens an external URI.
type Opener interface {
	Open(uri string) error
}

// System opens URIs with the OS URI handler.
type System struct {
	Logger *log.Logger
}

func init() {
	// The handler's own output would scribble over the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Open launches uri.
func (s System) Open(uri string) error {
	if s.Logger != nil {
		s.Logger.Debug("opening uri", "uri", uri)
	}
	return browser.OpenURL(uri)
}

// Fire opens uri and drops any failure after logging it.
func Fire(o Opener, uri string, logger *log.Logger) {
	if err := o.Open(uri); err != nil && logger != nil {
		logger.Debug("uri handler failed", "uri", uri, "err", err)
	}
}
