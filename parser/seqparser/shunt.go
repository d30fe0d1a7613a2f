// Copyright © 2024 The seqgen authors

package seqparser

import "github.com/luthersystems/seqgen/parser/token"

// shunter reduces infix operator tokens to postfix order using the
// shunting-yard discipline: two explicit stacks with precedence and
// associativity deciding when pending operators move to the output.  The
// caller is responsible for token classification (unary versus binary,
// operand versus operator position); the shunter only orders what it is
// given.
type shunter struct {
	output []token.Token
	ops    []token.Token
}

func (s *shunter) pushOperand(tok token.Token) {
	s.output = append(s.output, tok)
}

// pushOperator moves pending operators that bind at least as tightly as
// tok to the output and then stacks tok.  Right-associative operators
// yield only to strictly tighter ones, which makes successive unary signs
// nest from the right.
func (s *shunter) pushOperator(tok token.Token) {
	for len(s.ops) > 0 {
		top := s.ops[len(s.ops)-1]
		if top.Kind != token.OPERATOR {
			break
		}
		if top.Op.Precedence() < tok.Op.Precedence() {
			break
		}
		if top.Op.Precedence() == tok.Op.Precedence() && tok.Op.Associativity() == token.AssocRight {
			break
		}
		s.popOp()
	}
	s.ops = append(s.ops, tok)
}

func (s *shunter) openParen(tok token.Token) {
	s.ops = append(s.ops, tok)
}

// closeParen moves pending operators to the output until the matching
// open parenthesis is found and discarded.  The parser's pre-scan
// guarantees the match exists.
func (s *shunter) closeParen() {
	for len(s.ops) > 0 {
		if s.ops[len(s.ops)-1].Kind == token.PAREN_L {
			s.ops = s.ops[:len(s.ops)-1]
			return
		}
		s.popOp()
	}
	panic("seqparser: unbalanced parenthesis reached the shunter")
}

// finish drains any remaining operators and returns the completed postfix
// sequence.
func (s *shunter) finish() []token.Token {
	for len(s.ops) > 0 {
		if s.ops[len(s.ops)-1].Kind == token.PAREN_L {
			panic("seqparser: unbalanced parenthesis reached the shunter")
		}
		s.popOp()
	}
	return s.output
}

func (s *shunter) popOp() {
	s.output = append(s.output, s.ops[len(s.ops)-1])
	s.ops = s.ops[:len(s.ops)-1]
}
