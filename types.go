package dl2md

import "github.com/alnah/go-dl2md/internal/pipeline"

// Code rendering styles.
const (
	CodeStyleIndented = pipeline.CodeStyleIndented
	CodeStyleFenced   = pipeline.CodeStyleFenced
)

// DefaultFenceLanguage is the info string used for fenced code blocks when
// none is given.
const DefaultFenceLanguage = "prolog"

// Input contains conversion parameters.
type Input struct {
	Source string // Datalog source text (may be empty)
}

// Result holds the rendered document and per-run counters.
type Result struct {
	Markdown []byte
	Stats    Stats
}

// Stats reports counters gathered during one conversion.
type Stats struct {
	Lines        int // input lines consumed
	Sections     int // sections flushed to the document
	Declarations int // .type/.decl statements seen

	// HeadingDepth is the level implied by the most recent heading marker
	// seen in a comment. Generated declaration headings are pinned to
	// level 4 and do not follow it.
	HeadingDepth int
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	codeStyle     string
	fenceLanguage string
}

// WithFencedCode renders code as fenced blocks with the given info string
// instead of tab-indented blocks. An empty language uses
// DefaultFenceLanguage. The language must be known to the chroma lexer
// registry; NewConverter fails with ErrUnknownFenceLanguage otherwise.
func WithFencedCode(language string) Option {
	return func(cfg *converterConfig) {
		cfg.codeStyle = CodeStyleFenced
		cfg.fenceLanguage = language
	}
}
