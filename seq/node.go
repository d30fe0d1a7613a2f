// Copyright © 2024 The seqgen authors

// Package seq defines the parsed form of a sequence expression and
// reduces parsed node lists to the concrete integer sequences they
// denote.
package seq

import "github.com/luthersystems/seqgen/parser/token"

// Node is one parsed item of a sequence expression.  The concrete
// variants are Int, MathExpr, and RangeExpr.
type Node interface {
	// NodeSpan locates the node in the original input.
	NodeSpan() token.Span

	node()
}

// Int is a fully resolved signed integer literal.
type Int struct {
	Span  token.Span
	Value int64
}

func (n Int) NodeSpan() token.Span { return n.Span }
func (Int) node()                  {}

// MathExpr is an arithmetic sub-expression reduced to evaluable form.
// RPN holds the expression's operand and operator tokens in postfix
// order, so evaluation never needs operator-precedence lookahead.  A
// RANGE_MUT_ARG token in the sequence stands for an externally supplied
// operand and only occurs in range mutation expressions.
type MathExpr struct {
	Span token.Span
	RPN  []token.Token
}

func (n MathExpr) NodeSpan() token.Span { return n.Span }
func (MathExpr) node()                  {}

// RangeExpr describes a brace-delimited range specification.  Start and
// End are Int or MathExpr nodes; Step and Mutation are optional.
type RangeExpr struct {
	Span      token.Span
	Start     Node
	End       Node
	Step      Node      // nil means a step of magnitude 1
	Mutation  *MathExpr // nil means identity
	Inclusive bool      // true for `..=`, false for `..`
}

func (n RangeExpr) NodeSpan() token.Span { return n.Span }
func (RangeExpr) node()                  {}
