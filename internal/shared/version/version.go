// Package version reports build information set at link time, e.g.
// -ldflags "-X weiyue/internal/shared/version.Version=v1.2.0".
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Normalize ensures version string has "v" prefix, e.g. "1.2.3" -> "v1.2.3".
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "dev" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// String renders a one-line build summary.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Normalize(Version), Commit, BuildTime, runtime.Version())
}
