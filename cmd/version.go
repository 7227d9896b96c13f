package cmd

import (
	"fmt"
	"io"
)

// Set at build time with -ldflags "-X weles-ai/cmd.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func versionText() string {
	return fmt.Sprintf("weles-ai %s (commit %s, built %s)", Version, Commit, BuildTime)
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, versionText())
}
