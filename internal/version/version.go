// Package version holds build information for the strcalc command.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the command.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String renders the version with any commit and build date, coloring the
// version number when colored is true.
func String(colored bool) string {
	c := color.New(color.FgGreen, color.Bold)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	var b strings.Builder
	b.WriteString("strcalc ")
	b.WriteString(c.Sprint(Version))
	if GitCommit != "" {
		b.WriteString(" (" + GitCommit + ")")
	}
	if BuildDate != "" {
		b.WriteString(" built " + BuildDate)
	}
	return b.String()
}
