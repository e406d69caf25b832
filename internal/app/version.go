package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/agbru/recipsum/internal/app.Version=...".
var Version = "1.0.0"

// HasVersionFlag reports whether the argument list requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "recipsum %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
