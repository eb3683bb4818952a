package atom

import "fmt"

// Value is the interface a host value must implement to be boxed into a
// Grounded atom. It supplies the two capabilities every grounded value has
// regardless of domain: structural equality against another grounded value,
// and deep clone. The behavioral hooks (Match, Execute) are supplied
// separately as function pointers on the Grounded atom itself, not on
// Value, so that the same host value can be given different operational
// semantics by different callers.
type Value interface {
	fmt.Stringer

	// EqValue reports whether this value is structurally equal to other.
	// Implementations should type-assert other and compare; an other of an
	// unrelated type is simply not equal.
	EqValue(other Value) bool

	// CloneValue returns a deep copy of the value.
	CloneValue() Value
}

// MatchFunc implements a grounded atom's custom unification semantics: given
// the grounded value and the other atom it is being matched against, produce
// the lazy sequence of bindings that make them equivalent. The default,
// DefaultMatch, treats grounded equality as the only source of bindings.
type MatchFunc func(this Value, other Atom) Stream

// ExecuteFunc implements a grounded atom's callable semantics: given
// already-reduced argument atoms, either produce the resulting atoms or an
// error message (lifted by callers into an (Error …) atom). The
// default, DefaultExecute, reports that the value is not executable.
type ExecuteFunc func(args []Atom) ([]Atom, error)

// DefaultMatch yields exactly one empty binding if other is a Grounded atom
// wrapping an equal value, else no bindings.
func DefaultMatch(this Value, other Atom) Stream {
	g, ok := other.(Grounded)
	if ok && g.Value.EqValue(this) {
		return SingleStream(NewMatchResult())
	}
	return EmptyStream()
}

// DefaultExecute reports that the value does not support execution.
func DefaultExecute(args []Atom) ([]Atom, error) {
	return nil, fmt.Errorf("Execute is not implemented")
}

// Grounded wraps a host Value behind a uniform four-capability interface:
// downcast (via a type assertion on Value), structural
// equality, deep clone, and the two behavioral hooks Match and Execute.
// Function-pointer identity of Match/Execute participates in equality, so
// two Grounded atoms carrying equal values but different hooks compare
// unequal — this is what lets a grounded protocol encode custom unification
// (an associative-commutative container) without risk of being silently
// conflated with a plain value of the same underlying type matched by
// default equality.
type Grounded struct {
	Value   Value
	doMatch MatchFunc
	doExec  ExecuteFunc
}

// NewGrounded boxes value with default match/execute semantics (equality
// match, unsupported execute).
func NewGrounded(value Value) Grounded {
	return Grounded{Value: value, doMatch: DefaultMatch, doExec: DefaultExecute}
}

// NewMatchableGrounded boxes value with a custom Match hook and default
// (unsupported) Execute.
func NewMatchableGrounded(value Value, match MatchFunc) Grounded {
	return Grounded{Value: value, doMatch: match, doExec: DefaultExecute}
}

// NewExecutableGrounded boxes value with a custom Execute hook and default
// (equality) Match.
func NewExecutableGrounded(value Value, exec ExecuteFunc) Grounded {
	return Grounded{Value: value, doMatch: DefaultMatch, doExec: exec}
}

// NewFullGrounded boxes value with both custom Match and Execute hooks.
func NewFullGrounded(value Value, match MatchFunc, exec ExecuteFunc) Grounded {
	return Grounded{Value: value, doMatch: match, doExec: exec}
}

func (g Grounded) String() string { return g.Value.String() }
func (g Grounded) Kind() Kind     { return GroundedKind }
func (g Grounded) Clone() Atom {
	return Grounded{Value: g.Value.CloneValue(), doMatch: g.doMatch, doExec: g.doExec}
}

// Equal requires the wrapped values to be equal AND both behavioral hooks to
// be the identical function.
func (g Grounded) Equal(o Atom) bool {
	other, ok := o.(Grounded)
	if !ok {
		return false
	}
	return g.Value.EqValue(other.Value) &&
		funcsEqual(g.doMatch, other.doMatch) &&
		funcsEqual(g.doExec, other.doExec)
}

// Match runs the grounded atom's match hook against other.
func (g Grounded) Match(other Atom) Stream {
	return g.doMatch(g.Value, other)
}

// Execute runs the grounded atom's execute hook on already-reduced args.
func (g Grounded) Execute(args []Atom) ([]Atom, error) {
	return g.doExec(args)
}

// Executable reports whether this grounded atom has a non-default Execute
// hook, used by the interpreter driver to decide whether a call expression
// with this head is eligible for execution.
func (g Grounded) Executable() bool {
	return funcPointer(g.doExec) != funcPointer(ExecuteFunc(DefaultExecute))
}

func funcsEqual(a, b interface{}) bool {
	return funcPointer(a) == funcPointer(b)
}
