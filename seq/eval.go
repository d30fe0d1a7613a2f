// Copyright © 2024 The seqgen authors

package seq

import (
	"fmt"

	"github.com/luthersystems/seqgen/parser/token"
)

// EvalErrorKind discriminates the closed set of evaluation-time faults.
type EvalErrorKind uint

const (
	DivisionByZero EvalErrorKind = iota
	NegativeExponent

	numEvalErrorKinds
)

func (k EvalErrorKind) String() string {
	kindStrings := [numEvalErrorKinds]string{
		DivisionByZero:   "division-by-zero",
		NegativeExponent: "negative-exponent",
	}
	if k >= numEvalErrorKinds {
		return "unknown"
	}
	return kindStrings[k]
}

// EvalError reports a fault raised while folding a postfix expression.
// The span indexes the offending operator so diagnostics can underline
// it, exactly like structural parser errors.
type EvalError struct {
	Kind  EvalErrorKind
	Input []rune
	Span  token.Span
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return fmt.Sprintf("division by zero at position %d", e.Span.Start)
	case NegativeExponent:
		return fmt.Sprintf("negative exponent at position %d", e.Span.Start)
	default:
		return fmt.Sprintf("evaluation error at position %s", e.Span)
	}
}

// SourceInput implements diagnostic.SourceError.
func (e *EvalError) SourceInput() []rune {
	return e.Input
}

// SourceSpan implements diagnostic.SourceError.
func (e *EvalError) SourceSpan() token.Span {
	return e.Span
}

// EvalNodes reduces a parsed node list to the final flat integer
// sequence, in left-to-right item order.  Each literal or arithmetic node
// contributes a single value and each range contributes its materialized
// elements.  The input buffer is retained only for error reporting.
func EvalNodes(input []rune, nodes []Node) ([]int64, error) {
	out := make([]int64, 0, len(nodes))
	for _, node := range nodes {
		switch node := node.(type) {
		case RangeExpr:
			vals, err := Expand(input, node)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
		default:
			v, err := Eval(input, node)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// Eval reduces a literal or arithmetic node to its integer value.  Range
// nodes are multi-valued and must go through Expand instead.
func Eval(input []rune, node Node) (int64, error) {
	switch node := node.(type) {
	case Int:
		return node.Value, nil
	case MathExpr:
		return evalRPN(input, node.RPN, nil)
	default:
		panic(fmt.Sprintf("seq: cannot evaluate %T as a single value", node))
	}
}

// evalRPN folds a postfix token sequence left to right using a value
// stack.  RANGE_MUT_ARG tokens substitute *arg; they never occur when arg
// is nil.  Malformed postfix sequences indicate a parser bug and panic.
func evalRPN(input []rune, rpn []token.Token, arg *int64) (int64, error) {
	var stack []int64
	push := func(v int64) { stack = append(stack, v) }
	pop := func() int64 {
		if len(stack) == 0 {
			panic("seq: postfix operand stack underflow")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	for _, tok := range rpn {
		switch tok.Kind {
		case token.INT:
			push(tok.Int)
		case token.RANGE_MUT_ARG:
			if arg == nil {
				panic("seq: mutation operand outside a mutation expression")
			}
			push(*arg)
		case token.OPERATOR:
			if tok.Op.Unary() {
				v := pop()
				if tok.Op == token.UNARY_SUB {
					v = -v
				}
				push(v)
				continue
			}
			b, a := pop(), pop()
			v, err := applyOp(input, tok, a, b)
			if err != nil {
				return 0, err
			}
			push(v)
		default:
			panic(fmt.Sprintf("seq: unexpected %s token in postfix expression", tok.Kind))
		}
	}
	if len(stack) != 1 {
		panic("seq: postfix expression left an unbalanced operand stack")
	}
	return stack[0], nil
}

func applyOp(input []rune, tok token.Token, a, b int64) (int64, error) {
	switch tok.Op {
	case token.ADD:
		return a + b, nil
	case token.SUB:
		return a - b, nil
	case token.MUL:
		return a * b, nil
	case token.DIV:
		if b == 0 {
			return 0, evalError(DivisionByZero, input, tok.Span)
		}
		// Go's integer division truncates toward zero.
		return a / b, nil
	case token.MOD:
		if b == 0 {
			return 0, evalError(DivisionByZero, input, tok.Span)
		}
		return a % b, nil
	case token.POW:
		if b < 0 {
			return 0, evalError(NegativeExponent, input, tok.Span)
		}
		return ipow(a, b), nil
	default:
		panic(fmt.Sprintf("seq: unexpected operator %s in postfix expression", tok.Op))
	}
}

// ipow raises a to a non-negative integer power by repeated
// multiplication.
func ipow(a, b int64) int64 {
	v := int64(1)
	for ; b > 0; b-- {
		v *= a
	}
	return v
}

func evalError(kind EvalErrorKind, input []rune, span token.Span) error {
	return &EvalError{
		Kind:  kind,
		Input: input,
		Span:  span,
	}
}
