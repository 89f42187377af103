package dl2md

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-dl2md/internal/pipeline"
)

// Converter renders annotated Datalog source as a literate Markdown
// document. Create with NewConverter. A Converter is safe for concurrent
// use: each Convert call owns its own run state.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter and validates its options.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := converterConfig{codeStyle: CodeStyleIndented}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.codeStyle == CodeStyleFenced {
		if cfg.fenceLanguage == "" {
			cfg.fenceLanguage = DefaultFenceLanguage
		}
		if lexers.Get(cfg.fenceLanguage) == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFenceLanguage, cfg.fenceLanguage)
		}
	}

	return &Converter{cfg: cfg}, nil
}

// Convert performs one pass over the input and returns the rendered
// document. The context is checked before the pass and at every section
// boundary; output already rendered is discarded on cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	lines := pipeline.SplitLines(input.Source)
	render := pipeline.RenderOptions{
		CodeStyle:     c.cfg.codeStyle,
		FenceLanguage: c.cfg.fenceLanguage,
	}

	var buf bytes.Buffer
	cl := pipeline.NewClassifier()
	stats := Stats{Lines: len(lines)}

	for i, line := range lines {
		boundary, err := cl.Classify(i+1, line)
		if err != nil {
			return Result{}, err
		}
		if !boundary {
			continue
		}

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// Consecutive blank lines flush an empty section, which is a no-op.
		if !cl.Section().Empty() {
			pipeline.WriteSection(&buf, cl.Section(), render)
			stats.Sections++
			cl.Section().Reset()
		}
	}

	// Input need not end with a blank line; flush whatever remains.
	if !cl.Section().Empty() {
		pipeline.WriteSection(&buf, cl.Section(), render)
		stats.Sections++
	}

	stats.Declarations = cl.Declarations()
	stats.HeadingDepth = cl.HeadingDepth()

	return Result{Markdown: buf.Bytes(), Stats: stats}, nil
}
