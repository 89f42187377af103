package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	deps := DefaultDeps()

	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Fprintf(deps.Stdout, "dl2md %s\n", Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, flags, args, deps); err != nil {
		fmt.Fprintln(deps.Stderr, err)
		if errors.Is(err, ErrNoInput) {
			fmt.Fprintln(deps.Stderr)
			printUsage(deps.Stderr)
		}
		os.Exit(exitCodeFor(err))
	}
}
