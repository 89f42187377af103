package main

import (
	"fmt"
	"os"
	"testing"

	dl2md "github.com/alnah/go-dl2md"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"malformed declaration", dl2md.ErrMalformedDeclaration, ExitInput},
		{"wrapped malformed declaration", fmt.Errorf("converting x: %w", dl2md.ErrMalformedDeclaration), ExitInput},
		{"comment after code", dl2md.ErrCommentAfterCode, ExitInput},
		{"read failure", ErrReadInput, ExitIO},
		{"write failure", ErrWriteOutput, ExitIO},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"missing input", ErrNoInput, ExitUsage},
		{"unknown fence language", dl2md.ErrUnknownFenceLanguage, ExitUsage},
		{"unexpected error", fmt.Errorf("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
