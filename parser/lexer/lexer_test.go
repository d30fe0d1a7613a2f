// Copyright © 2024 The seqgen authors

package lexer

import (
	"testing"

	"github.com/luthersystems/seqgen/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(kind token.Kind, text string, start, end int) token.Token {
	return token.Token{
		Kind: kind,
		Text: text,
		Span: token.NewSpan(start, end),
	}
}

func intToken(text string, value int64, start, end int) token.Token {
	tok := testToken(token.INT, text, start, end)
	tok.Int = value
	return tok
}

func opToken(op token.Op, text string, pos int) token.Token {
	tok := testToken(token.OPERATOR, text, pos, pos)
	tok.Op = op
	return tok
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input  string
		tokens []token.Token
	}{
		{``, nil},
		{`   `, nil},
		{`1, 2, 3`, []token.Token{
			intToken("1", 1, 1, 1),
			testToken(token.COMMA, ",", 2, 2),
			intToken("2", 2, 4, 4),
			testToken(token.COMMA, ",", 5, 5),
			intToken("3", 3, 7, 7),
		}},
		{`1_000, 2__000`, []token.Token{
			intToken("1_000", 1000, 1, 5),
			testToken(token.COMMA, ",", 6, 6),
			intToken("2__000", 2000, 8, 13),
		}},
		{`(1 + 2)`, []token.Token{
			testToken(token.PAREN_L, "(", 1, 1),
			intToken("1", 1, 2, 2),
			opToken(token.ADD, "+", 4),
			intToken("2", 2, 6, 6),
			testToken(token.PAREN_R, ")", 7, 7),
		}},
		{`-+*/^%`, []token.Token{
			opToken(token.SUB, "-", 1),
			opToken(token.ADD, "+", 2),
			opToken(token.MUL, "*", 3),
			opToken(token.DIV, "/", 4),
			opToken(token.POW, "^", 5),
			opToken(token.MOD, "%", 6),
		}},
		{`{1..5}`, []token.Token{
			testToken(token.BRACE_L, "{", 1, 1),
			intToken("1", 1, 2, 2),
			testToken(token.RANGE_EXCLUSIVE, "..", 3, 4),
			intToken("5", 5, 5, 5),
			testToken(token.BRACE_R, "}", 6, 6),
		}},
		{`{1..=5, s:2}`, []token.Token{
			testToken(token.BRACE_L, "{", 1, 1),
			intToken("1", 1, 2, 2),
			testToken(token.RANGE_INCLUSIVE, "..=", 3, 5),
			intToken("5", 5, 6, 6),
			testToken(token.COMMA, ",", 7, 7),
			testToken(token.RANGE_STEP, "s:", 9, 10),
			intToken("2", 2, 11, 11),
			testToken(token.BRACE_R, "}", 12, 12),
		}},
		{`{0..9, m:@+1}`, []token.Token{
			testToken(token.BRACE_L, "{", 1, 1),
			intToken("0", 0, 2, 2),
			testToken(token.RANGE_EXCLUSIVE, "..", 3, 4),
			intToken("9", 9, 5, 5),
			testToken(token.COMMA, ",", 6, 6),
			testToken(token.RANGE_MUTATION, "m:", 8, 9),
			testToken(token.RANGE_MUT_ARG, "@", 10, 10),
			opToken(token.ADD, "+", 11),
			intToken("1", 1, 12, 12),
			testToken(token.BRACE_R, "}", 13, 13),
		}},
		{`{s:1,m:+20_000_000}`, []token.Token{
			testToken(token.BRACE_L, "{", 1, 1),
			testToken(token.RANGE_STEP, "s:", 2, 3),
			intToken("1", 1, 4, 4),
			testToken(token.COMMA, ",", 5, 5),
			testToken(token.RANGE_MUTATION, "m:", 6, 7),
			opToken(token.ADD, "+", 8),
			intToken("20_000_000", 20000000, 9, 18),
			testToken(token.BRACE_R, "}", 19, 19),
		}},
	}
	for _, test := range tests {
		tokens, err := Lex(test.input)
		require.NoError(t, err, "input: %q", test.input)
		require.Equal(t, test.tokens, tokens, "input: %q", test.input)
	}
}

func TestLexerBraceContext(t *testing.T) {
	// The marker letters and '@' are ordinary invalid characters once the
	// closing brace resets the lexer's context flag.
	_, err := Lex(`{1..2}, s:1`)
	require.Error(t, err)
	lexErr := requireLexError(t, err)
	assert.Equal(t, MisplacedRngSyntax, lexErr.Kind)
	assert.Equal(t, token.NewSpan(9, 9), lexErr.Span)
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		span  token.Span
	}{
		{`1, 2, 9_223_372_036_854_775_808`, NumberTooLarge, token.NewSpan(7, 31)},
		{`{1.=.5}`, UnexpectedEqual, token.NewSpan(3, 5)},
		{`{1..==5}`, UnexpectedEqual, token.NewSpan(3, 6)},
		{`{1.=5}`, InvalidRange, token.NewSpan(3, 4)},
		{`{1...5}`, InvalidRange, token.NewSpan(3, 5)},
		{`{1.5}`, InvalidRange, token.NewSpan(3, 3)},
		{`{1..=5, s2}`, MissingColon, token.NewSpan(9, 9)},
		{`{1..=5, mability}`, MissingColon, token.NewSpan(9, 9)},
		{`s:1`, MisplacedRngSyntax, token.NewSpan(1, 1)},
		{`m:2`, MisplacedRngSyntax, token.NewSpan(1, 1)},
		{`1, 3, 2__000, @`, MisplacedRngSyntax, token.NewSpan(15, 15)},
		{`1, 2, &`, InvalidToken, token.NewSpan(7, 7)},
		{`{1..=5, x:2}`, InvalidToken, token.NewSpan(9, 9)},
	}
	for _, test := range tests {
		_, err := Lex(test.input)
		require.Error(t, err, "input: %q", test.input)
		lexErr := requireLexError(t, err)
		assert.Equal(t, test.kind, lexErr.Kind, "input: %q", test.input)
		assert.Equal(t, test.span, lexErr.Span, "input: %q", test.input)
		assert.Equal(t, []rune(test.input), lexErr.SourceInput(), "input: %q", test.input)
	}
}

func TestLexerIdempotent(t *testing.T) {
	// Lexing the same input twice yields the same tokens.
	const input = `1, (2^3), {4..=5, s:1, m:@*2}`
	first, err := Lex(input)
	require.NoError(t, err)
	second, err := Lex(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func requireLexError(t *testing.T, err error) *Error {
	t.Helper()
	lexErr, ok := err.(*Error)
	require.True(t, ok, "unexpected error type %T: %v", err, err)
	return lexErr
}
