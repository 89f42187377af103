package pipeline

import "bytes"

// Code rendering styles.
const (
	CodeStyleIndented = "indented"
	CodeStyleFenced   = "fenced"
)

// RenderOptions control how a section's code lines are written.
type RenderOptions struct {
	CodeStyle     string // CodeStyleIndented or CodeStyleFenced
	FenceLanguage string // info string for fenced blocks
}

// WriteSection renders one section: comment lines first, a separating
// blank line, then the code block, then a blank line before whatever
// follows. Writing an empty section emits nothing.
func WriteSection(buf *bytes.Buffer, s *Section, opts RenderOptions) {
	if s.Empty() {
		return
	}

	for _, line := range s.Comments {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if n := len(s.Comments); n > 0 && !IsBlank(s.Comments[n-1]) {
		buf.WriteByte('\n')
	}

	if opts.CodeStyle == CodeStyleFenced {
		writeFencedCode(buf, s.Code, opts.FenceLanguage)
		return
	}
	writeIndentedCode(buf, s.Code)
}

// writeIndentedCode renders code lines with one tab of indentation each.
func writeIndentedCode(buf *bytes.Buffer, code []string) {
	for _, line := range code {
		buf.WriteByte('\t')
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if n := len(code); n > 0 && !IsBlank(code[n-1]) {
		buf.WriteByte('\n')
	}
}

// writeFencedCode renders code lines verbatim inside a fenced block.
// Sections without code get no fence at all.
func writeFencedCode(buf *bytes.Buffer, code []string, language string) {
	if len(code) == 0 {
		return
	}

	buf.WriteString("```")
	buf.WriteString(language)
	buf.WriteByte('\n')
	for _, line := range code {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("```\n\n")
}
