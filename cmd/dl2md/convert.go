package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	dl2md "github.com/alnah/go-dl2md"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("missing datalog file")
	ErrReadInput   = errors.New("failed to read datalog file")
	ErrWriteOutput = errors.New("failed to write output")
)

// filePermissions for documents written with --output.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// run reads the input file, converts it, and writes the document to
// stdout or to the --output path.
func run(ctx context.Context, flags *convertFlags, args []string, deps *Dependencies) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	inputPath := args[0]

	source, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	var opts []dl2md.Option
	if flags.fenced || flags.lang != "" {
		opts = append(opts, dl2md.WithFencedCode(flags.lang))
	}

	conv, err := dl2md.NewConverter(opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := conv.Convert(ctx, dl2md.Input{Source: string(source)})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if flags.output == "" {
		if _, err := deps.Stdout.Write(result.Markdown); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	} else {
		// #nosec G306 -- rendered documents are meant to be readable
		if err := os.WriteFile(flags.output, result.Markdown, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.quiet {
			fmt.Fprintf(deps.Stdout, "Created %s\n", flags.output)
		}
	}

	if flags.verbose {
		fmt.Fprintf(deps.Stderr, "%s: %d lines, %d sections, %d declarations (%v)\n",
			inputPath, result.Stats.Lines, result.Stats.Sections, result.Stats.Declarations,
			time.Since(start).Round(time.Microsecond))
	}

	return nil
}
