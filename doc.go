// Package dl2md converts annotated Datalog source files into literate
// Markdown documents.
//
// # Quick Start
//
// Create a converter and convert source text:
//
//	conv, err := dl2md.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, dl2md.Input{
//	    Source: "// Base case.\n.decl base(x: number)\nbase(0).\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Markdown)
//
// The result contains the rendered document (result.Markdown) and per-run
// counters (result.Stats).
//
// # Conversion Model
//
// The converter makes a single pass over the input. Lines are grouped into
// sections at blank-line boundaries; each section renders its `//` comments
// as Markdown prose followed by its code as an indented block. Lines
// beginning with `#` are treated as preprocessor directives and discarded.
// A `.type` or `.decl` statement gets a generated heading carrying the
// declared name, placed ahead of the section's prose:
//
//	#### `base`
//
//	Base case.
//
//		.decl base(x: number)
//		base(0).
//
// Within a section comments must precede code; a comment that follows code
// fails the run with ErrCommentAfterCode.
//
// # Fenced Code Blocks
//
// By default code renders tab-indented. Use WithFencedCode to render fenced
// blocks with an info string instead:
//
//	conv, err := dl2md.NewConverter(dl2md.WithFencedCode("prolog"))
//
// The language must be known to the chroma lexer registry so downstream
// highlighters can render it.
package dl2md
