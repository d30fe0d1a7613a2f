// Copyright © 2024 The seqgen authors

// Package parser ties the lexer and sequence parser together behind a
// small facade so that callers evaluating expressions do not manage the
// intermediate token stream themselves.
package parser

import (
	"github.com/luthersystems/seqgen/parser/lexer"
	"github.com/luthersystems/seqgen/parser/seqparser"
	"github.com/luthersystems/seqgen/seq"
)

// Parse lexes and parses text, returning one node per top-level item.
func Parse(text string) ([]seq.Node, error) {
	tokens, err := lexer.Lex(text)
	if err != nil {
		return nil, err
	}
	return seqparser.Parse(text, tokens)
}

// Eval parses text and materializes it into a flat integer sequence.
// Range items expand in place so the result preserves item order.
func Eval(text string) ([]int64, error) {
	nodes, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return seq.EvalNodes([]rune(text), nodes)
}
