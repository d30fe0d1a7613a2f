// Copyright © 2024 The seqgen authors

package token

import "fmt"

// Kind constants used for the seqgen lexer/parser.
type Kind uint

const (
	INVALID Kind = iota

	COMMA
	INT
	OPERATOR

	// Delimiters
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R

	// Range syntax
	RANGE_EXCLUSIVE // ..
	RANGE_INCLUSIVE // ..=
	RANGE_STEP      // s:
	RANGE_MUTATION  // m:
	RANGE_MUT_ARG   // @

	numTokenKinds
)

func (k Kind) String() string {
	kindStrings := [numTokenKinds]string{
		INVALID:         "invalid",
		COMMA:           ",",
		INT:             "int",
		OPERATOR:        "operator",
		PAREN_L:         "(",
		PAREN_R:         ")",
		BRACE_L:         "{",
		BRACE_R:         "}",
		RANGE_EXCLUSIVE: "..",
		RANGE_INCLUSIVE: "..=",
		RANGE_STEP:      "s:",
		RANGE_MUTATION:  "m:",
		RANGE_MUT_ARG:   "@",
	}
	if k >= numTokenKinds {
		return kindStrings[INVALID]
	}
	return kindStrings[k]
}

// Op identifies an arithmetic operation carried by an OPERATOR token.  The
// lexer only emits the binary operations; the parser rewrites ADD and SUB
// tokens to their unary forms when they appear in operand position.
type Op uint

const (
	ADD Op = iota
	SUB
	MUL
	DIV
	POW
	MOD
	UNARY_ADD
	UNARY_SUB

	numOps
)

// Operator associativity values returned by Op.Associativity.
const (
	AssocLeft = iota
	AssocRight
)

// Precedence returns the binding power of op.  Higher values bind tighter.
func (op Op) Precedence() int {
	switch op {
	case ADD, SUB:
		return 1
	case MUL, DIV, MOD:
		return 2
	case POW:
		return 3
	case UNARY_ADD, UNARY_SUB:
		return 4
	}
	return 0
}

// Associativity returns AssocLeft for all binary operations and AssocRight
// for the unary signs, so that successive unary applications nest from the
// right.
func (op Op) Associativity() int {
	if op.Unary() {
		return AssocRight
	}
	return AssocLeft
}

// Unary returns true for the unary sign operations.
func (op Op) Unary() bool {
	return op == UNARY_ADD || op == UNARY_SUB
}

func (op Op) String() string {
	opStrings := [numOps]string{
		ADD:       "+",
		SUB:       "-",
		MUL:       "*",
		DIV:       "/",
		POW:       "^",
		MOD:       "%",
		UNARY_ADD: "+",
		UNARY_SUB: "-",
	}
	if op >= numOps {
		return "invalid"
	}
	return opStrings[op]
}

// Span locates a token or node in the original input as a pair of
// 1-indexed, inclusive character offsets.  Start is never greater than
// End.
type Span struct {
	Start int
	End   int
}

// NewSpan initializes and returns a Span.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Token is a lexeme classified by the lexer.  Tokens are produced once and
// never mutated afterwards.
type Token struct {
	Kind Kind
	Op   Op    // operation tag, valid when Kind is OPERATOR
	Int  int64 // literal value, valid when Kind is INT
	Text string
	Span Span
}

func (tok Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", tok.Kind, tok.Text, tok.Span)
}
