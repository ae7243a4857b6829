// Package version resolves the version string shown on the settings screen
package version

import (
	"os"
	"runtime/debug"
	"strings"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// EnvAppVersion overrides the ldflags version when set.
const EnvAppVersion = "TRANSLATOR_APP_VERSION"

// Resolve returns the display version.
func Resolve() string {
	return ResolveFrom(os.Getenv, debug.ReadBuildInfo)
}

// ResolveFrom is Resolve with injectable sources.
func ResolveFrom(getenv func(string) string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if v := strings.TrimSpace(getenv(EnvAppVersion)); v != "" {
		return v
	}
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := buildInfo(); ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return strings.TrimPrefix(info.Main.Version, "v")
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				revision := setting.Value
				if len(revision) > 7 {
					revision = revision[:7]
				}
				return "dev-" + revision
			}
		}
	}
	return "dev"
}
