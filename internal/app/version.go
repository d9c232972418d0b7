package app

import (
	"fmt"
	"io"
)

// Build information, set with
//
//	go build -ldflags "-X github.com/agbru/fibtime/internal/app.Version=v1.2.0 ..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fibtime %s (%s, %s)\n", Version, Commit, BuildDate)
}
