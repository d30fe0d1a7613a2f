// Copyright © 2024 The seqgen authors

package diagnostic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// noteWrapWidth bounds "= note:" lines so long hints stay readable in
// narrow terminals.
const noteWrapWidth = 76

// Renderer formats diagnostics as Rust-style annotated source snippets.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode
}

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	p := choosePalette(r.Color, fileFromWriter(w))
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	// Header: "error: message" or "warning: message"
	r.writeHeader(ew, d, p)

	// Annotated input spans
	for _, span := range d.Spans {
		r.writeSpan(ew, d.Source, span, p)
	}

	// Notes
	for _, note := range d.Notes {
		wrapped := strings.Split(wordwrap.String(note, noteWrapWidth), "\n")
		for i, line := range wrapped {
			if i == 0 {
				ew.printf("   %s=%s note: %s\n", p.boldCyan, p.reset, line)
				continue
			}
			ew.printf("           %s\n", line)
		}
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// errWriter wraps a writer and captures the first error, short-circuiting
// subsequent writes. This avoids checking every fmt.Fprintf return value.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (r *Renderer) writeHeader(ew *errWriter, d Diagnostic, p palette) {
	var sevColor, sevText string
	switch d.Severity {
	case SeverityError:
		sevColor = p.boldRed
		sevText = "error"
	case SeverityWarning:
		sevColor = p.yellow
		sevText = "warning"
	case SeverityNote:
		sevColor = p.boldCyan
		sevText = "note"
	}
	ew.printf("%s%s%s%s:%s %s%s%s\n",
		sevColor, p.bold, sevText, p.reset,
		p.reset,
		p.bold, d.Message, p.reset)
}

func (r *Renderer) writeSpan(ew *errWriter, source string, span Span, p palette) {
	col := span.Col
	if col <= 0 {
		col = 1
	}

	// Location line: "  --> input:col"
	ew.printf("  %s-->%s input:%d\n", p.boldBlue, p.reset, col)

	if source == "" {
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}

	// Empty gutter line
	ew.printf("   %s|%s\n", p.boldBlue, p.reset)

	// The input expression is always a single line; tabs are expanded for
	// consistent underline alignment.
	displaySource := strings.ReplaceAll(source, "\t", "    ")
	ew.printf("   %s|%s  %s\n", p.boldBlue, p.reset, displaySource)

	// Underline
	runes := []rune(source)
	endCol := span.EndCol
	if endCol <= 0 {
		endCol = col
	}
	if endCol < col {
		endCol = col
	}
	if endCol > len(runes) {
		endCol = len(runes)
	}
	underLen := endCol - col + 1
	if underLen < 1 {
		underLen = 1
	}

	var prefix []rune
	if col > 1 && col-1 <= len(runes) {
		prefix = runes[:col-1]
	}
	underPad := strings.Repeat(" ", displayWidth(prefix))
	underline := strings.Repeat("^", underLen)

	ew.printf("   %s|%s  %s%s%s%s", p.boldBlue, p.reset, underPad, p.boldRed, underline, p.reset)
	if span.Label != "" {
		ew.printf(" %s%s%s", p.boldRed, span.Label, p.reset)
	}
	ew.print("\n")

	// Trailing gutter
	ew.printf("   %s|%s\n", p.boldBlue, p.reset)
}

// displayWidth returns the display width of the runes, expanding tabs to
// 4 spaces.
func displayWidth(s []rune) int {
	w := 0
	for _, ch := range s {
		if ch == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// fileFromWriter attempts to extract an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
