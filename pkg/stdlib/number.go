// Package stdlib implements the grounded operators and values of the
// domain stack: arithmetic on Number, the grounded Bool truth values returned
// by the comparison operators, and Dict, a supplemented associative-commutative
// grounded container demonstrating the custom-match hook.
package stdlib

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

// Number is a grounded numeric value. It stores either an integer or a
// float. Arithmetic on two integers stays integer, except for / and for %
// by zero, which produce floats; any float operand gives a float result.
// Float results are never converted back to integers, even when
// integer-valued.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// Int builds an integer Number.
func Int(n int64) Number { return Number{i: n} }

// Float builds a floating Number.
func Float(f float64) Number { return Number{isFloat: true, f: f} }

// ParseNumber parses a decimal literal the way the tokenizer's number rule
// recognizes it: integer if it contains no '.' or exponent, float otherwise.
func ParseNumber(s string) (Number, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("stdlib: %q is not a number", s)
	}
	return Float(f), nil
}

// AsFloat returns the value widened to float64, regardless of which variant
// is stored.
func (n Number) AsFloat() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// IsFloat reports whether n was constructed from a floating literal.
func (n Number) IsFloat() bool { return n.isFloat }

func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// EqValue implements atom.Value. Integer and float Numbers of equal
// numeric value are NOT considered equal grounded values — 2 and 2.0 are
// distinct atoms.
func (n Number) EqValue(other atom.Value) bool {
	o, ok := other.(Number)
	if !ok || o.isFloat != n.isFloat {
		return false
	}
	if n.isFloat {
		return n.f == o.f
	}
	return n.i == o.i
}

// CloneValue returns n unchanged: Number is an immutable value type, so no
// copy is needed beyond Go's own value semantics.
func (n Number) CloneValue() atom.Value { return n }

// AsAtom boxes n as a grounded atom with default (equality) match and no
// execute hook.
func (n Number) AsAtom() atom.Atom { return atom.NewGrounded(n) }

// binaryNumOp builds an executable grounded atom for a two-argument
// arithmetic operator: both arguments are expected to already be reduced
// Number grounded atoms, since Execute only ever receives already-reduced
// atoms.
func binaryNumOp(name string, intOp func(a, b int64) (int64, bool), floatOp func(a, b float64) float64) atom.Grounded {
	exec := func(args []atom.Atom) ([]atom.Atom, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		a, ok := asNumber(args[0])
		if !ok {
			return nil, fmt.Errorf("%s: %s is not a Number", name, args[0].String())
		}
		b, ok := asNumber(args[1])
		if !ok {
			return nil, fmt.Errorf("%s: %s is not a Number", name, args[1].String())
		}
		if !a.isFloat && !b.isFloat && intOp != nil {
			r, exact := intOp(a.i, b.i)
			if exact {
				return []atom.Atom{Int(r).AsAtom()}, nil
			}
		}
		return []atom.Atom{Float(floatOp(a.AsFloat(), b.AsFloat())).AsAtom()}, nil
	}
	return atom.NewExecutableGrounded(opName(name), exec)
}

func asNumber(a atom.Atom) (Number, bool) {
	g, ok := a.(atom.Grounded)
	if !ok {
		return Number{}, false
	}
	n, ok := g.Value.(Number)
	return n, ok
}

// opName is the grounded value wrapped around an executable operator's
// symbol-like identity, so that the operator prints and compares the way a
// bare symbol such as "+" would, while still being Executable.
type opName string

func (o opName) String() string { return string(o) }
func (o opName) EqValue(other atom.Value) bool {
	n, ok := other.(opName)
	return ok && n == o
}
func (o opName) CloneValue() atom.Value { return o }

// Add, Sub, Mul, Div, Mod are the arithmetic operators of the domain stack:
// each is a grounded, executable atom bound to its symbol by RegisterArithTokens.
var (
	Add = binaryNumOp("+", func(a, b int64) (int64, bool) { return a + b, true }, func(a, b float64) float64 { return a + b })
	Sub = binaryNumOp("-", func(a, b int64) (int64, bool) { return a - b, true }, func(a, b float64) float64 { return a - b })
	Mul = binaryNumOp("*", func(a, b int64) (int64, bool) { return a * b, true }, func(a, b float64) float64 { return a * b })
	Div = binaryNumOp("/", nil, func(a, b float64) float64 { return a / b })
	Mod = binaryNumOp("%", func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a % b, true
	}, math.Mod)
)

// compareOp builds a two-argument grounded predicate returning Bool.
func compareOp(name string, cmp func(a, b float64) bool) atom.Grounded {
	exec := func(args []atom.Atom) ([]atom.Atom, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		a, ok := asNumber(args[0])
		if !ok {
			return nil, fmt.Errorf("%s: %s is not a Number", name, args[0].String())
		}
		b, ok := asNumber(args[1])
		if !ok {
			return nil, fmt.Errorf("%s: %s is not a Number", name, args[1].String())
		}
		return []atom.Atom{Bool(cmp(a.AsFloat(), b.AsFloat())).AsAtom()}, nil
	}
	return atom.NewExecutableGrounded(opName(name), exec)
}

var (
	Lt = compareOp("<", func(a, b float64) bool { return a < b })
	Gt = compareOp(">", func(a, b float64) bool { return a > b })
	Le = compareOp("<=", func(a, b float64) bool { return a <= b })
	Ge = compareOp(">=", func(a, b float64) bool { return a >= b })
)
