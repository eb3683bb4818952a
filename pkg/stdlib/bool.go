package stdlib

import "github.com/gitrdm/gokanlogic/pkg/atom"

// Bool is a grounded boolean value. The interpreter's own if-* bootstrap
// equalities pattern-match on the bare symbols True/False rather than on
// this type (see pkg/interpreter/bootstrap.go); Bool exists so that
// stdlib predicates (the comparison operators) have a concrete grounded
// result to return rather than a bare symbol.
type Bool bool

// FromStr parses the tokenizer's "True"/"False" literal into a Bool.
func FromStr(s string) (Bool, bool) {
	switch s {
	case "True":
		return Bool(true), true
	case "False":
		return Bool(false), true
	default:
		return false, false
	}
}

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}

func (b Bool) EqValue(other atom.Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

func (b Bool) CloneValue() atom.Value { return b }

// AsAtom boxes b as a grounded atom.
func (b Bool) AsAtom() atom.Atom { return atom.NewGrounded(b) }

// AsSymbol renders b as the bare Symbol True/False that the bootstrap
// if-equalities dispatch on, for callers that need the symbol form rather
// than the grounded form.
func (b Bool) AsSymbol() atom.Atom {
	return atom.Sym(b.String())
}
