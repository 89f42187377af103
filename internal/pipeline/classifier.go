package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for line classification.
var (
	ErrMalformedDeclaration = errors.New("malformed declaration")
	ErrCommentAfterCode     = errors.New("comment after code in section")
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Leading identifier of a declared name. Datalog identifiers start
	// with a letter, underscore, or '?' and continue over the same set.
	declaredName = regexp.MustCompile(`^[?_a-zA-Z][?_a-zA-Z]*`)
)

// Generated declaration headings are pinned to level 4. The tracked
// heading depth is recorded but not applied here.
const declarationHeadingMarker = "####"

// SplitLines normalizes line endings to LF and splits the source into
// terminator-free lines. A trailing newline does not produce a final
// empty line.
func SplitLines(source string) []string {
	source = crlfOrCR.ReplaceAllString(source, "\n")
	lines := strings.Split(source, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// IsBlank reports whether a line is empty or whitespace-only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Section accumulates one run of lines between blank-line boundaries.
// Comment lines always precede code lines; a declaration prepends its
// generated heading ahead of any comments already buffered.
type Section struct {
	Comments []string
	Code     []string
}

// Empty reports whether the section has nothing buffered.
func (s *Section) Empty() bool {
	return len(s.Comments) == 0 && len(s.Code) == 0
}

// Reset clears both buffers for the next section.
func (s *Section) Reset() {
	s.Comments, s.Code = nil, nil
}

// Classifier folds input lines into sections. One Classifier serves one
// conversion run; the heading depth it tracks lives for the whole run
// and is not reset between sections.
type Classifier struct {
	section      Section
	headingDepth int
	declarations int
}

// NewClassifier returns a Classifier with the heading depth at the
// top-level default.
func NewClassifier() *Classifier {
	return &Classifier{headingDepth: 1}
}

// Section returns the currently buffered section.
func (c *Classifier) Section() *Section {
	return &c.section
}

// HeadingDepth returns the depth implied by the most recent heading
// marker seen in a comment.
func (c *Classifier) HeadingDepth() int {
	return c.headingDepth
}

// Declarations returns the number of .type/.decl lines seen so far.
func (c *Classifier) Declarations() int {
	return c.declarations
}

// Classify consumes one input line and reports whether it is a section
// boundary, in which case the caller flushes the buffered section and
// resets it. The line itself never produces buffered content when it is
// a boundary or a preprocessor directive. lineNo is 1-based and used in
// diagnostics only.
func (c *Classifier) Classify(lineNo int, line string) (boundary bool, err error) {
	// An empty line ends the section
	if IsBlank(line) {
		return true, nil
	}

	// Preprocessor directives produce no output
	if strings.HasPrefix(line, "#") {
		return false, nil
	}

	// A comment
	if strings.HasPrefix(line, "//") {
		return false, c.comment(lineNo, line)
	}

	// A line of code
	return false, c.code(lineNo, line)
}

// comment strips the comment marker and buffers the remaining text.
// Comments may not follow code within the same section.
func (c *Classifier) comment(lineNo int, line string) error {
	if len(c.section.Code) > 0 {
		return fmt.Errorf("%w at line %d: %q", ErrCommentAfterCode, lineNo, line)
	}

	text := strings.Trim(line, "/")
	text = strings.TrimPrefix(text, " ")
	c.section.Comments = append(c.section.Comments, text)

	// Heading markers embedded in comments drive the tracked depth, so
	// the document's own heading level follows the most recent one.
	if depth := len(text) - len(strings.TrimLeft(text, "#")); depth > 0 {
		c.headingDepth = depth
	}

	return nil
}

// code buffers a code line. Declaration lines additionally get a
// generated section heading prepended ahead of any comments already
// buffered for this section.
func (c *Classifier) code(lineNo int, line string) error {
	fields := strings.Fields(line)
	if len(fields) > 0 && (fields[0] == ".type" || fields[0] == ".decl") {
		var name string
		if len(fields) > 1 {
			name = declaredName.FindString(fields[1])
		}
		if name == "" {
			return fmt.Errorf("%w at line %d: %q", ErrMalformedDeclaration, lineNo, line)
		}

		c.declarations++
		heading := fmt.Sprintf("%s `%s`", declarationHeadingMarker, name)
		c.section.Comments = append([]string{heading, ""}, c.section.Comments...)
	}

	c.section.Code = append(c.section.Code, line)
	return nil
}
