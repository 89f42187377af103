package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     convertFlags
		wantArgs []string
	}{
		{
			name:     "defaults",
			args:     []string{"rules.dl"},
			want:     convertFlags{},
			wantArgs: []string{"rules.dl"},
		},
		{
			name:     "output shorthand",
			args:     []string{"-o", "rules.md", "rules.dl"},
			want:     convertFlags{output: "rules.md"},
			wantArgs: []string{"rules.dl"},
		},
		{
			name:     "fenced with language",
			args:     []string{"--fenced", "--lang", "prolog", "rules.dl"},
			want:     convertFlags{fenced: true, lang: "prolog"},
			wantArgs: []string{"rules.dl"},
		},
		{
			name:     "quiet and verbose shorthands",
			args:     []string{"-q", "-v", "rules.dl"},
			want:     convertFlags{quiet: true, verbose: true},
			wantArgs: []string{"rules.dl"},
		},
		{
			name:     "version without input",
			args:     []string{"--version"},
			want:     convertFlags{version: true},
			wantArgs: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, args, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(&tt.want, got, cmp.AllowUnexported(convertFlags{})); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("positional args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--no-such-flag"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}
