// Copyright © 2024 The seqgen authors

package lexer

import (
	"fmt"

	"github.com/luthersystems/seqgen/parser/token"
)

// ErrorKind discriminates the closed set of lexical errors.
type ErrorKind uint

const (
	InvalidToken ErrorKind = iota
	MissingColon
	InvalidRange
	UnexpectedEqual
	MalformedNumber
	NumberTooLarge
	MisplacedRngSyntax

	numErrorKinds
)

func (k ErrorKind) String() string {
	kindStrings := [numErrorKinds]string{
		InvalidToken:       "invalid-token",
		MissingColon:       "missing-colon",
		InvalidRange:       "invalid-range",
		UnexpectedEqual:    "unexpected-equal",
		MalformedNumber:    "malformed-number",
		NumberTooLarge:     "number-too-large",
		MisplacedRngSyntax: "misplaced-range-syntax",
	}
	if k >= numErrorKinds {
		return "unknown"
	}
	return kindStrings[k]
}

// Error is a lexical error located in the scanned input.  The full input
// buffer travels with the error so that a presentation layer can underline
// the offending substring.
type Error struct {
	Kind  ErrorKind
	Input []rune
	Span  token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("invalid token %q at position %d", e.spanText(), e.Span.Start)
	case MissingColon:
		return fmt.Sprintf("expected ':' after %q at position %d", e.spanText(), e.Span.Start)
	case InvalidRange:
		return fmt.Sprintf("invalid range syntax %q at position %s", e.spanText(), e.Span)
	case UnexpectedEqual:
		return fmt.Sprintf("unexpected '=' in range at position %s", e.Span)
	case MalformedNumber:
		return fmt.Sprintf("malformed number %q at position %s", e.spanText(), e.Span)
	case NumberTooLarge:
		return fmt.Sprintf("number %q at position %s overflows a 64-bit integer", e.spanText(), e.Span)
	case MisplacedRngSyntax:
		return fmt.Sprintf("%q at position %d is only valid inside a range specification", e.spanText(), e.Span.Start)
	default:
		return fmt.Sprintf("lexical error at position %s", e.Span)
	}
}

// SourceInput implements diagnostic.SourceError.
func (e *Error) SourceInput() []rune {
	return e.Input
}

// SourceSpan implements diagnostic.SourceError.
func (e *Error) SourceSpan() token.Span {
	return e.Span
}

func (e *Error) spanText() string {
	start, end := e.Span.Start-1, e.Span.End
	if start < 0 || end > len(e.Input) || start >= end {
		return ""
	}
	return string(e.Input[start:end])
}
