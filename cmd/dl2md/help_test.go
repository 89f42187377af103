package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	got := buf.String()
	for _, want := range []string{
		"Usage: dl2md",
		"<datalog_file>",
		"--output",
		"--fenced",
		"--lang",
		"--quiet",
		"--verbose",
		"--version",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("usage output missing %q:\n%s", want, got)
		}
	}
}
