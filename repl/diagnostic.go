// Copyright © 2024 The seqgen authors

package repl

import (
	"io"

	"github.com/luthersystems/seqgen/diagnostic"
)

// renderError renders err using the diagnostic renderer for Rust-style
// annotated output.  Every lexer, parser, and evaluation error carries the
// offending input line, so the snippet always matches what was typed.
func renderError(w io.Writer, color diagnostic.ColorMode, err error) {
	d := diagnostic.FromError(err)
	r := &diagnostic.Renderer{Color: color}
	_ = r.Render(w, d)
}
