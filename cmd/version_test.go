package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionAndPrint(t *testing.T) {
	oldV, oldC, oldB := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = oldV, oldC, oldB }()
	Version = "1.2.3"
	Commit = "abc"
	BuildTime = "2026-02-27"

	vt := versionText()
	if !strings.Contains(vt, "1.2.3") || !strings.Contains(vt, "abc") {
		t.Fatalf("versionText unexpected: %s", vt)
	}

	buf := &bytes.Buffer{}
	printVersion(buf)
	if buf.String() != "weles-ai 1.2.3 (commit abc, built 2026-02-27)\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
