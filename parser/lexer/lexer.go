// Copyright © 2024 The seqgen authors

// Package lexer scans sequence expressions into flat token lists.  The
// scan is context sensitive in exactly one way: the tokens `s:`, `m:`,
// and `@` are meaningful only between an opening `{` and its closing `}`,
// so the lexer carries a single boolean flag tracking whether it is
// currently inside a brace-delimited range specification.
package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/luthersystems/seqgen/parser/token"
)

// Lex scans input and returns its complete token list, or the first
// lexical error encountered.  Lexing is stateless across invocations.
func Lex(input string) ([]token.Token, error) {
	lex := New(token.NewScanner(input))
	return lex.Tokens()
}

// Lexer scans sequence-expression tokens from a Scanner.
type Lexer struct {
	scanner *token.Scanner
	inBrace bool // set on '{' and cleared on '}'
	tokens  []token.Token
}

// New initializes and returns a new Lexer reading runes from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// Tokens scans the remaining input to completion and returns the
// accumulated token list.
func (lex *Lexer) Tokens() ([]token.Token, error) {
	for {
		lex.skipWhitespace()
		c, ok := lex.scanner.Peek()
		if !ok {
			return lex.tokens, nil
		}
		var err error
		switch {
		case c == ',':
			lex.charToken(token.COMMA)
		case isDigit(c):
			err = lex.readNumber()
		case c == '.':
			err = lex.readRangeOp()
		case c == 's':
			err = lex.readRangeArg(token.RANGE_STEP)
		case c == 'm':
			err = lex.readRangeArg(token.RANGE_MUTATION)
		case c == '@':
			err = lex.readMutArg()
		case strings.ContainsRune("+-*/^%", c):
			lex.readOperator(c)
		case c == '(':
			lex.charToken(token.PAREN_L)
		case c == ')':
			lex.charToken(token.PAREN_R)
		case c == '{':
			lex.charToken(token.BRACE_L)
			lex.inBrace = true
		case c == '}':
			lex.charToken(token.BRACE_R)
			lex.inBrace = false
		default:
			lex.scanner.ScanRune()
			return nil, lex.errorAt(InvalidToken, lex.scanner.Span())
		}
		if err != nil {
			return nil, err
		}
	}
}

func (lex *Lexer) skipWhitespace() {
	if lex.scanner.AcceptSeqSpace() > 0 {
		lex.scanner.Ignore()
	}
}

func (lex *Lexer) charToken(kind token.Kind) {
	lex.scanner.ScanRune()
	lex.emit(kind)
}

func (lex *Lexer) emit(kind token.Kind) {
	lex.tokens = append(lex.tokens, lex.scanner.EmitToken(kind))
}

func (lex *Lexer) readOperator(c rune) {
	ops := map[rune]token.Op{
		'+': token.ADD,
		'-': token.SUB,
		'*': token.MUL,
		'/': token.DIV,
		'^': token.POW,
		'%': token.MOD,
	}
	lex.scanner.ScanRune()
	tok := lex.scanner.EmitToken(token.OPERATOR)
	tok.Op = ops[c]
	lex.tokens = append(lex.tokens, tok)
}

// readNumber scans a maximal run of digits and '_' separators.  The
// separators carry no value and are stripped before conversion.
func (lex *Lexer) readNumber() error {
	lex.scanner.AcceptSeq(func(c rune) bool { return isDigit(c) || c == '_' })
	text := lex.scanner.Text()
	span := lex.scanner.Span()
	value, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return lex.errorAt(NumberTooLarge, span)
		}
		return lex.errorAt(MalformedNumber, span)
	}
	tok := lex.scanner.EmitToken(token.INT)
	tok.Int = value
	lex.tokens = append(lex.tokens, tok)
	return nil
}

// readRangeOp scans a run of '.' and '=' runes beginning at a '.'.  The
// only well-formed runs are ".." and "..=": any other dot count is an
// invalid range, and an '=' that is followed by anything (or that follows
// another '=') is reported where the stray character becomes apparent.
func (lex *Lexer) readRangeOp() error {
	runStart := lex.scanner.Pos()
	dots := 0
	sawEqual := false
	prevEqual := false
	for {
		c, ok := lex.scanner.Peek()
		if !ok || (c != '.' && c != '=') {
			break
		}
		pos := lex.scanner.Pos()
		lex.scanner.ScanRune()
		if c == '=' {
			if prevEqual {
				return lex.errorAt(UnexpectedEqual, token.NewSpan(runStart, pos))
			}
			sawEqual = true
			prevEqual = true
			continue
		}
		if sawEqual {
			return lex.errorAt(UnexpectedEqual, token.NewSpan(runStart, pos))
		}
		dots++
		prevEqual = false
	}
	if dots != 2 {
		return lex.errorAt(InvalidRange, lex.scanner.Span())
	}
	if sawEqual {
		lex.emit(token.RANGE_INCLUSIVE)
	} else {
		lex.emit(token.RANGE_EXCLUSIVE)
	}
	return nil
}

// readRangeArg scans an `s:` or `m:` argument marker.  The marker letters
// are ordinary invalid characters outside brace context.
func (lex *Lexer) readRangeArg(kind token.Kind) error {
	pos := lex.scanner.Pos()
	lex.scanner.ScanRune()
	if !lex.inBrace {
		return lex.errorAt(MisplacedRngSyntax, token.NewSpan(pos, pos))
	}
	if !lex.scanner.AcceptRune(':') {
		return lex.errorAt(MissingColon, token.NewSpan(pos, pos))
	}
	lex.emit(kind)
	return nil
}

func (lex *Lexer) readMutArg() error {
	pos := lex.scanner.Pos()
	lex.scanner.ScanRune()
	if !lex.inBrace {
		return lex.errorAt(MisplacedRngSyntax, token.NewSpan(pos, pos))
	}
	lex.emit(token.RANGE_MUT_ARG)
	return nil
}

func (lex *Lexer) errorAt(kind ErrorKind, span token.Span) error {
	return &Error{
		Kind:  kind,
		Input: lex.scanner.Input(),
		Span:  span,
	}
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
