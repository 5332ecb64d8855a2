package version

import (
	"fmt"
	"runtime/debug"
)

// Populated at build time via -ldflags "-X jlv/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String reports the ldflags version, falling back to the module version
// recorded by `go install`.
func String() string {
	base := Version
	if base == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			base = bi.Main.Version
		}
	}
	if Commit != "" {
		base += fmt.Sprintf(" (%s)", Commit)
	}
	if Date != "" {
		base += " built " + Date
	}
	return base
}
