package dl2md

import (
	"errors"

	"github.com/alnah/go-dl2md/internal/pipeline"
)

// Sentinel errors for library operations. Pipeline errors are aliased so
// callers can match them with errors.Is without importing internal packages.
var (
	// Input errors. Both are fatal: the rest of the document's structure
	// cannot be trusted once either occurs.
	ErrMalformedDeclaration = pipeline.ErrMalformedDeclaration
	ErrCommentAfterCode     = pipeline.ErrCommentAfterCode

	// Option validation errors.
	ErrUnknownFenceLanguage = errors.New("unknown fence language")
)
