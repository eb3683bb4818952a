// Package atom implements the four-variant atom algebra at the heart of the
// MeTTa-family term-rewriting engine: symbols, variables, expressions, and
// grounded host values. It also carries the unification matcher and the
// variable-binding substitutions the matcher produces, since the grounded
// protocol's match hook needs to return binding streams and Go has no way to
// let two packages depend on each other to express that.
//
// Atoms are value types. Equality is structural except for Grounded atoms,
// whose equality additionally requires the match/execute hooks to be the
// same function (see Grounded.Equal).
package atom

import "fmt"

// Kind identifies an atom's syntactic category (its "metatype" in spec
// terms). Exactly one of these applies to any atom.
type Kind int

const (
	SymbolKind Kind = iota
	VariableKind
	ExpressionKind
	GroundedKind
)

func (k Kind) String() string {
	switch k {
	case SymbolKind:
		return "Symbol"
	case VariableKind:
		return "Variable"
	case ExpressionKind:
		return "Expression"
	case GroundedKind:
		return "Grounded"
	default:
		return "Unknown"
	}
}

// Atom is the unit of data manipulated by the interpreter: a symbol, a
// variable, an ordered expression of child atoms, or a grounded host value.
type Atom interface {
	// String renders the atom using the surface display rules:
	// symbols as their name, variables as "$name", expressions
	// space-separated in parens, grounded atoms delegating to the value.
	String() string

	// Equal reports structural equality. Symbol equality is name equality;
	// Variable equality requires both name and freshness tag to match;
	// Expression equality is pointwise; Grounded equality delegates to the
	// wrapped value's Eq plus identity of the match/execute hooks.
	Equal(other Atom) bool

	// Clone returns a deep copy. Symbol/Variable/Expression clones
	// recursively; Grounded clones delegate to the value's Clone hook.
	Clone() Atom

	// Kind returns the atom's metatype.
	Kind() Kind
}

// Symbol is an interned textual name. Two symbols are equal iff their names
// are equal.
type Symbol struct {
	Name string
}

// Sym constructs a Symbol atom.
func Sym(name string) Symbol { return Symbol{Name: name} }

func (s Symbol) String() string  { return s.Name }
func (s Symbol) Kind() Kind      { return SymbolKind }
func (s Symbol) Clone() Atom     { return Symbol{Name: s.Name} }
func (s Symbol) Equal(o Atom) bool {
	other, ok := o.(Symbol)
	return ok && other.Name == s.Name
}

// Variable is a textual name plus an implicit freshness Tag used during
// alpha-renaming. Tag 0 denotes a variable as written by the user or parser;
// non-zero tags are assigned by Freshen when a stored rule is instantiated
// for a query, so that repeated lookups of the same rule never alias.
//
// Two variables are equal iff both Name and Tag match: a freshened $x#3 is a
// different variable from the original $x, and from a separately freshened
// $x#7.
type Variable struct {
	Name string
	Tag  uint64
}

// Var constructs an unfreshened Variable atom, as the parser would produce
// from "$name".
func Var(name string) Variable { return Variable{Name: name} }

func (v Variable) String() string {
	return "$" + v.Name
}
func (v Variable) Kind() Kind { return VariableKind }
func (v Variable) Clone() Atom {
	return Variable{Name: v.Name, Tag: v.Tag}
}
func (v Variable) Equal(o Atom) bool {
	other, ok := o.(Variable)
	return ok && other.Name == v.Name && other.Tag == v.Tag
}

// Expression is an ordered, possibly empty, sequence of child atoms.
// Equality is pointwise.
type Expression struct {
	Children []Atom
}

// Expr constructs an Expression atom from the given children.
func Expr(children ...Atom) Expression {
	return Expression{Children: children}
}

// ExprSlice constructs an Expression atom from a slice without copying the
// backing array; callers must not mutate it afterwards.
func ExprSlice(children []Atom) Expression {
	return Expression{Children: children}
}

func (e Expression) String() string {
	s := "("
	for i, c := range e.Children {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + ")"
}
func (e Expression) Kind() Kind { return ExpressionKind }
func (e Expression) Clone() Atom {
	children := make([]Atom, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.Clone()
	}
	return Expression{Children: children}
}
func (e Expression) Equal(o Atom) bool {
	other, ok := o.(Expression)
	if !ok || len(other.Children) != len(e.Children) {
		return false
	}
	for i, c := range e.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// IsPlain reports whether no child is itself an Expression.
func (e Expression) IsPlain() bool {
	for _, c := range e.Children {
		if c.Kind() == ExpressionKind {
			return false
		}
	}
	return true
}

// Empty is the canonical empty expression "()". It is not the driver's
// "no result" marker; that is EmptySymbol.
var Empty Atom = Expression{}

// IsEmptySymbol reports whether a is the Empty sentinel, i.e. the symbol Empty
// used by the bootstrap equalities (if-empty, return-on-error, …) — not to
// be confused with the empty expression "()" which is a distinct atom.
func IsEmptySymbol(a Atom) bool {
	s, ok := a.(Symbol)
	return ok && s.Name == "Empty"
}

// EmptySymbol is the symbol Empty, the driver's "no value" marker. It is
// distinct from the empty expression Expr().
var EmptySymbol Atom = Symbol{Name: "Empty"}

// ErrorAtom builds an (Error subject message) atom.
func ErrorAtom(subject Atom, message string) Atom {
	return Expr(Sym("Error"), subject, Sym(fmt.Sprintf("%q", message)))
}

// IsError reports whether a is an (Error subject message) atom and, if so,
// returns it decomposed.
func IsError(a Atom) (subject Atom, message Atom, ok bool) {
	e, isExpr := a.(Expression)
	if !isExpr || len(e.Children) != 3 {
		return nil, nil, false
	}
	head, isSym := e.Children[0].(Symbol)
	if !isSym || head.Name != "Error" {
		return nil, nil, false
	}
	return e.Children[1], e.Children[2], true
}
