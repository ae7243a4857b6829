// Package platform describes the host the app runs on. It is resolved once
// at startup and passed down rather than queried while rendering.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind identifies an app build target.
type Kind string

const (
	Windows  Kind = "windows"
	Electron Kind = "electron"
	Other    Kind = "other"
)

// Descriptor carries the platform capabilities the settings screen cares about.
type Descriptor struct {
	Kind Kind
}

// Parse validates a platform name.
func Parse(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case Windows:
		return Windows, nil
	case Electron, "mac", "darwin":
		return Electron, nil
	case Other:
		return Other, nil
	}
	return "", fmt.Errorf("unknown platform %q (expected windows, electron or other)", name)
}

// Resolve returns the descriptor for override, or for the running OS when
// override is empty.
func Resolve(override string) (Descriptor, error) {
	if strings.TrimSpace(override) != "" {
		kind, err := Parse(override)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Kind: kind}, nil
	}
	return FromGOOS(runtime.GOOS), nil
}

// FromGOOS maps a GOOS value to a descriptor.
func FromGOOS(goos string) Descriptor {
	switch goos {
	case "windows":
		return Descriptor{Kind: Windows}
	case "darwin":
		return Descriptor{Kind: Electron}
	default:
		return Descriptor{Kind: Other}
	}
}

// Is reports whether the descriptor is of kind k.
func (d Descriptor) Is(k Kind) bool {
	return d.Kind == k
}

// PreventsScreenLock reports whether screen lock prevention is available.
func (d Descriptor) PreventsScreenLock() bool {
	return d.Kind == Windows
}

// HasWindowsStore reports whether in-app purchases and the Windows Store
// review page are available.
func (d Descriptor) HasWindowsStore() bool {
	return d.Kind == Windows
}

// HasMacAppStore reports whether the Mac App Store review page is available.
func (d Descriptor) HasMacAppStore() bool {
	return d.Kind == Electron
}

// RequireWindowsStore returns an error if purchases are unavailable.
func (d Descriptor) RequireWindowsStore(feature string) error {
	if !d.HasWindowsStore() {
		if feature == "" {
			feature = "in-app purchases"
		}
		return fmt.Errorf("%s are supported on Windows only (current: %s)", feature, d.Kind)
	}
	return nil
}
