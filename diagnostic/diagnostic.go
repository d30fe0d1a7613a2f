// Copyright © 2024 The seqgen authors

// Package diagnostic provides Rust-style annotated error rendering for
// seqgen CLI output.  It is intentionally independent of the parser
// packages' internals so that it can be used by any CLI command without
// creating import cycles.
package diagnostic

import (
	"errors"

	"github.com/luthersystems/seqgen/parser/token"
)

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span identifies a character region of the input expression to highlight
// in the diagnostic.  Columns are 1-based and inclusive, matching the
// offsets the lexer and parser attach to their errors.
type Span struct {
	Col    int    // 1-based start column
	EndCol int    // 1-based end column (0 = same as Col)
	Label  string // text shown under the underline
}

// Diagnostic represents a single error, warning, or note annotated
// against the expression text that produced it.
type Diagnostic struct {
	Severity Severity
	Message  string
	Source   string // the full input expression
	Spans    []Span
	Notes    []string // "= note:" lines
}

// SourceError is the interface satisfied by lexer, parser, and evaluation
// errors.  Any error carrying its input and a span can be rendered as an
// annotated diagnostic.
type SourceError interface {
	error
	SourceInput() []rune
	SourceSpan() token.Span
}

// FromError converts err into a renderable diagnostic.  Errors that do
// not implement SourceError produce a bare message with no source
// annotation.
func FromError(err error) Diagnostic {
	var src SourceError
	if !errors.As(err, &src) {
		return Diagnostic{
			Severity: SeverityError,
			Message:  err.Error(),
		}
	}
	span := src.SourceSpan()
	return Diagnostic{
		Severity: SeverityError,
		Message:  src.Error(),
		Source:   string(src.SourceInput()),
		Spans: []Span{{
			Col:    span.Start,
			EndCol: span.End,
		}},
	}
}
