// Copyright © 2024 The seqgen authors

// Package seqparser turns a lexed token list into a flat list of
// sequence nodes, one per top-level comma-separated item.  Arithmetic
// sub-expressions are reduced to postfix form with a shunting-yard pass
// so that evaluation never needs precedence lookahead, and parenthesis
// nesting is bounded by an explicit depth counter.
package seqparser

import (
	"github.com/luthersystems/seqgen/parser/token"
	"github.com/luthersystems/seqgen/seq"
)

// MaxParenDepth bounds arithmetic sub-expression nesting so that hostile
// input cannot drive the parser into unbounded stack growth.  Exceeding
// the bound is an ordinary TooManyParen error, not a crash.
const MaxParenDepth = 69

// Parse consumes tokens, which must have been produced by lexing input,
// and returns one node per top-level item.  Parsing is fail-fast: the
// first error aborts the call.
func Parse(input string, tokens []token.Token) ([]seq.Node, error) {
	return New([]rune(input), tokens).Parse()
}

// Parser consumes a token list left to right exactly once.
type Parser struct {
	input  []rune
	tokens []token.Token
	pos    int // index of the next unconsumed token
}

// New initializes and returns a Parser over input's token list.
func New(input []rune, tokens []token.Token) *Parser {
	return &Parser{
		input:  input,
		tokens: tokens,
	}
}

// Parse returns the node list for the token stream.
func (p *Parser) Parse() ([]seq.Node, error) {
	var nodes []seq.Node
	if tok, ok := p.peek(); ok && tok.Kind == token.COMMA {
		return nil, p.errorAt(UnexpectedComma, tok.Span)
	}
	for {
		if _, ok := p.peek(); !ok {
			return nodes, nil
		}
		node, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		if err := p.acceptComma(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseItem() (seq.Node, error) {
	tok, _ := p.peek()
	switch tok.Kind {
	case token.INT:
		return p.parseSignedInt()
	case token.OPERATOR:
		if tok.Op == token.ADD || tok.Op == token.SUB {
			return p.parseSignedInt()
		}
		return nil, p.errorAt(UnexpectedMathOp, tok.Span)
	case token.PAREN_L:
		return p.parseMathExpr()
	case token.BRACE_L:
		return p.parseRange()
	case token.COMMA:
		return nil, p.errorAt(UnexpectedComma, tok.Span)
	default:
		return nil, p.errorAt(InvalidMathExpr, tok.Span)
	}
}

// acceptComma consumes the separator following an item.  At most one
// comma may separate two items; a doubled comma and a comma that ends the
// input are both errors.
func (p *Parser) acceptComma() error {
	tok, ok := p.peek()
	if !ok || tok.Kind != token.COMMA {
		return nil
	}
	p.next()
	next, ok := p.peek()
	if !ok {
		return p.errorAt(UnexpectedComma, tok.Span)
	}
	if next.Kind == token.COMMA {
		return p.errorAt(UnexpectedComma, next.Span)
	}
	return nil
}

// parseSignedInt consumes a run of leading '+' and '-' operator tokens
// followed by an integer token.  The literal's sign is the parity of the
// '-' count, so "--10" parses to 10 and "-+10" parses to -10.
func (p *Parser) parseSignedInt() (seq.Node, error) {
	first, _ := p.peek()
	last := first
	minus := 0
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, p.errorAt(IncompleteInt, last.Span)
		}
		if tok.Kind != token.OPERATOR || (tok.Op != token.ADD && tok.Op != token.SUB) {
			break
		}
		if tok.Op == token.SUB {
			minus++
		}
		last = tok
		p.next()
	}
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorAt(IncompleteInt, last.Span)
	}
	if tok.Kind != token.INT {
		return nil, p.errorAt(InvalidInt, tok.Span)
	}
	p.next()
	value := tok.Int
	if minus%2 != 0 {
		value = -value
	}
	return seq.Int{
		Span:  token.NewSpan(first.Span.Start, tok.Span.End),
		Value: value,
	}, nil
}

// checkParens verifies that every parenthesis in the remaining token
// stream has a structural match before any expression evaluation begins.
// An excess ')' is reported at its own position; a leftover '(' is
// reported once the scan is exhausted.
func (p *Parser) checkParens() error {
	var stack []token.Span
	for _, tok := range p.tokens[p.pos:] {
		switch tok.Kind {
		case token.PAREN_L:
			stack = append(stack, tok.Span)
		case token.PAREN_R:
			if len(stack) == 0 {
				return p.errorAt(UnmatchedParen, tok.Span)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return p.errorAt(UnmatchedParen, stack[0])
	}
	return nil
}

// parseMathExpr parses a parenthesized arithmetic expression beginning at
// the current '(' token and reduces it to postfix form.  The expression
// ends when the opening parenthesis is matched; trailing tokens are left
// for the caller.
func (p *Parser) parseMathExpr() (seq.Node, error) {
	if err := p.checkParens(); err != nil {
		return nil, err
	}
	open, _ := p.next()
	sh := &shunter{}
	sh.openParen(open)
	depth := 1
	expectOperand := true
	last := open
	for {
		tok, ok := p.next()
		if !ok {
			// Unreachable after checkParens, but guard the invariant.
			return nil, p.errorAt(IncompleteMathExpr, last.Span)
		}
		switch tok.Kind {
		case token.INT:
			if !expectOperand {
				return nil, p.errorAt(InvalidMathOp, tok.Span)
			}
			sh.pushOperand(tok)
			expectOperand = false
		case token.OPERATOR:
			if expectOperand {
				switch tok.Op {
				case token.ADD:
					tok.Op = token.UNARY_ADD
				case token.SUB:
					tok.Op = token.UNARY_SUB
				default:
					return nil, p.errorAt(UnexpectedMathOp, tok.Span)
				}
			}
			sh.pushOperator(tok)
			expectOperand = true
		case token.PAREN_L:
			if !expectOperand {
				return nil, p.errorAt(InvalidMathOp, tok.Span)
			}
			depth++
			if depth > MaxParenDepth {
				return nil, p.errorAt(TooManyParen, tok.Span)
			}
			sh.openParen(tok)
		case token.PAREN_R:
			if expectOperand {
				if last.Kind == token.PAREN_L {
					return nil, p.errorAt(EmptyParen, last.Span)
				}
				// An operand was due, so the ')' sits where a number
				// belonged.
				return nil, p.errorAt(InvalidInt, tok.Span)
			}
			sh.closeParen()
			depth--
			if depth == 0 {
				return seq.MathExpr{
					Span: token.NewSpan(open.Span.Start, tok.Span.End),
					RPN:  sh.finish(),
				}, nil
			}
		default:
			if expectOperand {
				return nil, p.errorAt(InvalidMathExpr, tok.Span)
			}
			return nil, p.errorAt(InvalidMathOp, tok.Span)
		}
		last = tok
	}
}

// parseRange parses a brace-delimited range specification: a start bound,
// a range operator, an end bound, and trailing `s:`/`m:` arguments in
// either order, each at most once.
func (p *Parser) parseRange() (seq.Node, error) {
	open, _ := p.next()
	start, err := p.parseRangeBound(open)
	if err != nil {
		return nil, err
	}
	op, ok := p.peek()
	if !ok {
		return nil, p.errorAt(IncompleteMathExpr, p.prevSpan())
	}
	inclusive := false
	switch op.Kind {
	case token.RANGE_EXCLUSIVE:
	case token.RANGE_INCLUSIVE:
		inclusive = true
	default:
		return nil, p.errorAt(InvalidMathExpr, op.Span)
	}
	p.next()
	end, err := p.parseRangeBound(op)
	if err != nil {
		return nil, err
	}
	var step seq.Node
	var mutation *seq.MathExpr
	for {
		sep, ok := p.peek()
		if !ok {
			return nil, p.errorAt(IncompleteMathExpr, p.prevSpan())
		}
		if sep.Kind != token.COMMA {
			break
		}
		p.next()
		arg, ok := p.peek()
		if !ok {
			return nil, p.errorAt(IncompleteMathExpr, sep.Span)
		}
		switch arg.Kind {
		case token.RANGE_STEP:
			if step != nil {
				return nil, p.errorAt(InvalidMathExpr, arg.Span)
			}
			p.next()
			step, err = p.parseRangeBound(arg)
		case token.RANGE_MUTATION:
			if mutation != nil {
				return nil, p.errorAt(InvalidMathExpr, arg.Span)
			}
			p.next()
			mutation, err = p.parseMutation(arg)
		default:
			return nil, p.errorAt(InvalidMathExpr, arg.Span)
		}
		if err != nil {
			return nil, err
		}
	}
	close, _ := p.peek()
	if close.Kind != token.BRACE_R {
		return nil, p.errorAt(InvalidMathExpr, close.Span)
	}
	p.next()
	return seq.RangeExpr{
		Span:      token.NewSpan(open.Span.Start, close.Span.End),
		Start:     start,
		End:       end,
		Step:      step,
		Mutation:  mutation,
		Inclusive: inclusive,
	}, nil
}

// parseRangeBound parses a range bound or step value: a signed integer
// literal or a parenthesized arithmetic expression.
func (p *Parser) parseRangeBound(prev token.Token) (seq.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorAt(IncompleteMathExpr, prev.Span)
	}
	switch tok.Kind {
	case token.INT:
		return p.parseSignedInt()
	case token.OPERATOR:
		if tok.Op == token.ADD || tok.Op == token.SUB {
			return p.parseSignedInt()
		}
		return nil, p.errorAt(UnexpectedMathOp, tok.Span)
	case token.PAREN_L:
		return p.parseMathExpr()
	default:
		return nil, p.errorAt(InvalidMathExpr, tok.Span)
	}
}

// parseMutation parses the expression following an `m:` marker, up to the
// next top-level comma or closing brace.  The generated range value is
// the expression's implicit left operand when the expression begins with
// an operator; the '@' marker names the same operand explicitly.
func (p *Parser) parseMutation(marker token.Token) (*seq.MathExpr, error) {
	sh := &shunter{}
	depth := 0
	expectOperand := true
	first := true
	last := marker
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, p.errorAt(IncompleteMathExpr, last.Span)
		}
		if depth == 0 && (tok.Kind == token.COMMA || tok.Kind == token.BRACE_R) {
			break
		}
		p.next()
		switch tok.Kind {
		case token.INT, token.RANGE_MUT_ARG:
			if !expectOperand {
				return nil, p.errorAt(InvalidMathOp, tok.Span)
			}
			sh.pushOperand(tok)
			expectOperand = false
		case token.OPERATOR:
			if expectOperand {
				if first {
					sh.pushOperand(token.Token{
						Kind: token.RANGE_MUT_ARG,
						Text: "@",
						Span: marker.Span,
					})
				} else {
					switch tok.Op {
					case token.ADD:
						tok.Op = token.UNARY_ADD
					case token.SUB:
						tok.Op = token.UNARY_SUB
					default:
						return nil, p.errorAt(UnexpectedMathOp, tok.Span)
					}
				}
			}
			sh.pushOperator(tok)
			expectOperand = true
		case token.PAREN_L:
			if !expectOperand {
				return nil, p.errorAt(InvalidMathOp, tok.Span)
			}
			depth++
			if depth > MaxParenDepth {
				return nil, p.errorAt(TooManyParen, tok.Span)
			}
			sh.openParen(tok)
		case token.PAREN_R:
			if depth == 0 {
				return nil, p.errorAt(UnmatchedParen, tok.Span)
			}
			if expectOperand {
				if last.Kind == token.PAREN_L {
					return nil, p.errorAt(EmptyParen, last.Span)
				}
				return nil, p.errorAt(InvalidInt, tok.Span)
			}
			sh.closeParen()
			depth--
		default:
			if expectOperand {
				return nil, p.errorAt(InvalidMathExpr, tok.Span)
			}
			return nil, p.errorAt(InvalidMathOp, tok.Span)
		}
		last = tok
		first = false
	}
	if first {
		return nil, p.errorAt(IncompleteMathExpr, marker.Span)
	}
	if expectOperand {
		return nil, p.errorAt(IncompleteMathExpr, last.Span)
	}
	return &seq.MathExpr{
		Span: token.NewSpan(marker.Span.Start, last.Span.End),
		RPN:  sh.finish(),
	}, nil
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// prevSpan returns the span of the most recently consumed token.
func (p *Parser) prevSpan() token.Span {
	if p.pos == 0 {
		panic("seqparser: no token has been consumed")
	}
	return p.tokens[p.pos-1].Span
}

func (p *Parser) errorAt(kind ErrorKind, span token.Span) error {
	return &Error{
		Kind:  kind,
		Input: p.input,
		Span:  span,
	}
}
