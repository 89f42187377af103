package main

import (
	"fmt"
	"io"
)

// printUsage prints the CLI usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dl2md [flags] <datalog_file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an annotated datalog file to a literate Markdown document.")
	fmt.Fprintln(w, "The document is written to stdout unless --output is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Write the document to a file instead of stdout")
	fmt.Fprintln(w, "      --fenced          Render code as fenced blocks")
	fmt.Fprintln(w, "      --lang <name>     Info string for fenced blocks (implies --fenced)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show per-run statistics")
	fmt.Fprintln(w, "      --version         Show version information")
}
