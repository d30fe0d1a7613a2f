// Copyright © 2024 The seqgen authors

package seqparser

import (
	"fmt"

	"github.com/luthersystems/seqgen/parser/token"
)

// ErrorKind discriminates the closed set of syntactic errors.
type ErrorKind uint

const (
	UnexpectedComma ErrorKind = iota
	UnexpectedMathOp
	IncompleteInt
	InvalidInt
	EmptyParen
	IncompleteMathExpr
	InvalidMathExpr
	InvalidMathOp
	UnmatchedParen
	TooManyParen

	numErrorKinds
)

func (k ErrorKind) String() string {
	kindStrings := [numErrorKinds]string{
		UnexpectedComma:    "unexpected-comma",
		UnexpectedMathOp:   "unexpected-math-operator",
		IncompleteInt:      "incomplete-int",
		InvalidInt:         "invalid-int",
		EmptyParen:         "empty-parentheses",
		IncompleteMathExpr: "incomplete-math-expression",
		InvalidMathExpr:    "invalid-math-expression",
		InvalidMathOp:      "invalid-math-operator",
		UnmatchedParen:     "unmatched-parenthesis",
		TooManyParen:       "too-many-parentheses",
	}
	if k >= numErrorKinds {
		return "unknown"
	}
	return kindStrings[k]
}

// Error is a syntactic error located in the token stream.  Like lexical
// errors it carries the full input buffer and the span of the offending
// substring.
type Error struct {
	Kind  ErrorKind
	Input []rune
	Span  token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedComma:
		return fmt.Sprintf("unexpected comma at position %d", e.Span.Start)
	case UnexpectedMathOp:
		return fmt.Sprintf("unexpected math operator %q at position %d", e.spanText(), e.Span.Start)
	case IncompleteInt:
		return fmt.Sprintf("expected a number after the math operator %q at position %d", e.spanText(), e.Span.Start)
	case InvalidInt:
		return fmt.Sprintf("expected a number, found %q at position %d", e.spanText(), e.Span.Start)
	case EmptyParen:
		return fmt.Sprintf("empty parentheses at position %d", e.Span.Start)
	case IncompleteMathExpr:
		return fmt.Sprintf("incomplete math expression at position %s", e.Span)
	case InvalidMathExpr:
		return fmt.Sprintf("invalid math expression at position %s", e.Span)
	case InvalidMathOp:
		return fmt.Sprintf("expected a math operator, found %q at position %d", e.spanText(), e.Span.Start)
	case UnmatchedParen:
		return fmt.Sprintf("unmatched parenthesis at position %d", e.Span.Start)
	case TooManyParen:
		return fmt.Sprintf("parentheses nested deeper than %d levels at position %d", MaxParenDepth, e.Span.Start)
	default:
		return fmt.Sprintf("parse error at position %s", e.Span)
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
