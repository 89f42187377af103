package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	output  string
	fenced  bool
	lang    string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses CLI flags and returns the positional arguments.
// args excludes the program name.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("dl2md", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write the document to a file instead of stdout")
	fs.BoolVar(&f.fenced, "fenced", false, "render code as fenced blocks")
	fs.StringVar(&f.lang, "lang", "", "info string for fenced blocks (implies --fenced)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-run statistics")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
