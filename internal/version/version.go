// Package version reports the application name and build version.
package version

import "runtime/debug"

// AppName is the application name used in logs.
const AppName = "SWRPG"

// Version is set at link time: -ldflags "-X github.com/keshon/swrpg-bot/internal/version.Version=1.2.3".
var Version = ""

// String returns Version, falling back to the module version recorded in the
// binary's build info, then to "dev".
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// Banner is the line logged once the host reports it is ready.
func Banner() string {
	return "[" + AppName + "] v" + String() + " loaded."
}
