// Copyright © 2024 The seqgen authors

package token

import "unicode"

// Scanner facilitates construction of tokens from an input string.  The
// scanner holds the entire input in memory and exposes one rune of
// lookahead, which is all the sequence grammar requires.
type Scanner struct {
	input []rune
	start int // index of the first rune of the current token
	next  int // index of the rune following the scanned text
}

// NewScanner initializes and returns a new Scanner reading input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// Input returns the complete input rune buffer.  Errors hold a reference
// to the buffer so that diagnostics can reproduce the offending line.
func (s *Scanner) Input() []rune {
	return s.input
}

// EOF returns true once all input runes have been scanned.
func (s *Scanner) EOF() bool {
	return s.next >= len(s.input)
}

// Peek returns the next rune to be scanned, if there is one.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.input[s.next], true
}

// ScanRune consumes the next rune into the current token and returns it.
func (s *Scanner) ScanRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	c := s.input[s.next]
	s.next++
	return c, true
}

// Pos returns the 1-indexed position of the next rune to be scanned.  At
// the end of input Pos indexes one past the final rune.
func (s *Scanner) Pos() int {
	return s.next + 1
}

// Accept consumes the next rune if fn approves it.
func (s *Scanner) Accept(fn func(rune) bool) bool {
	c, ok := s.Peek()
	if !ok {
		return false
	}
	if !fn(c) {
		return false
	}
	s.next++
	return true
}

// AcceptRune consumes the next rune if it equals c.
func (s *Scanner) AcceptRune(c rune) bool {
	return s.Accept(func(r rune) bool { return r == c })
}

// AcceptDigit consumes the next rune if it is a decimal digit.
func (s *Scanner) AcceptDigit() bool {
	return s.Accept(func(r rune) bool { return '0' <= r && r <= '9' })
}

// AcceptSeq consumes a maximal run of runes approved by fn and returns the
// run's length.
func (s *Scanner) AcceptSeq(fn func(rune) bool) int {
	var n int
	for s.Accept(fn) {
		n++
	}
	return n
}

// AcceptSeqSpace consumes a maximal run of whitespace runes.
func (s *Scanner) AcceptSeqSpace() int {
	return s.AcceptSeq(unicode.IsSpace)
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.input[s.start:s.next])
}

// Span returns the 1-indexed inclusive span of the current text.  When no
// runes have been scanned since the last Ignore the span indexes the
// upcoming rune.
func (s *Scanner) Span() Span {
	if s.start == s.next {
		return NewSpan(s.next+1, s.next+1)
	}
	return NewSpan(s.start+1, s.next)
}

// Ignore causes the scanner to skip all text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
}

// EmitToken returns a token containing the text scanned since the last
// call to either EmitToken or Ignore.
func (s *Scanner) EmitToken(kind Kind) Token {
	tok := Token{
		Kind: kind,
		Text: s.Text(),
		Span: s.Span(),
	}
	s.Ignore()
	return tok
}
