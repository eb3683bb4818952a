package stdlib

import (
	"strings"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

// Dict is an order-preserving association list grounded value with a custom
// Match hook: two Dicts unify not by comparing their entries positionally
// but by requiring every (key, value) pair of the query side to structurally
// match *some* pair of the receiver, independent of order — the
// associative-commutative matching semantics demonstrated by the original
// implementation's TestDict (lib/src/atom/mod.rs, test_custom_matching).
// Put overwrites an existing key's value in place, matching TestDict's
// remove-then-append semantics except that Dict keeps the original slot to
// preserve insertion order of first-seen keys.
type Dict struct {
	pairs []dictPair
}

type dictPair struct {
	key, value atom.Atom
}

// NewDict returns an empty Dict.
func NewDict() *Dict { return &Dict{} }

// Get returns the value bound to key, if any.
func (d *Dict) Get(key atom.Atom) (atom.Atom, bool) {
	for _, p := range d.pairs {
		if p.key.Equal(key) {
			return p.value, true
		}
	}
	return nil, false
}

// Put binds key to value, overwriting any existing binding, and returns the
// previous value if there was one.
func (d *Dict) Put(key, value atom.Atom) (atom.Atom, bool) {
	for i, p := range d.pairs {
		if p.key.Equal(key) {
			old := p.value
			d.pairs[i].value = value
			return old, true
		}
	}
	d.pairs = append(d.pairs, dictPair{key: key, value: value})
	return nil, false
}

// Remove deletes key's entry, returning its value if present.
func (d *Dict) Remove(key atom.Atom) (atom.Atom, bool) {
	for i, p := range d.pairs {
		if p.key.Equal(key) {
			old := p.value
			d.pairs = append(d.pairs[:i:i], d.pairs[i+1:]...)
			return old, true
		}
	}
	return nil, false
}

func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, p := range d.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.key.String())
		sb.WriteString(": ")
		sb.WriteString(p.value.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// EqValue compares Dicts pairwise in insertion order, matching TestDict's
// Vec-backed equality rather than the order-independent semantics Match
// provides.
func (d *Dict) EqValue(other atom.Value) bool {
	o, ok := other.(*Dict)
	if !ok || len(o.pairs) != len(d.pairs) {
		return false
	}
	for i, p := range d.pairs {
		if !p.key.Equal(o.pairs[i].key) || !p.value.Equal(o.pairs[i].value) {
			return false
		}
	}
	return true
}

// CloneValue deep-copies the pair list so that mutating a clone never
// affects the original.
func (d *Dict) CloneValue() atom.Value {
	pairs := make([]dictPair, len(d.pairs))
	for i, p := range d.pairs {
		pairs[i] = dictPair{key: p.key.Clone(), value: p.value.Clone()}
	}
	return &Dict{pairs: pairs}
}

// AsAtom boxes d as a grounded atom with DictMatch as its custom Match hook.
func (d *Dict) AsAtom() atom.Atom {
	return atom.NewMatchableGrounded(d, DictMatch)
}

// DictMatch implements Dict's associative-commutative unification: for
// every (keyQ, valueQ) pair of other (also expected to be a Dict), collect
// the union, over every (key, value) pair of this dict, of matching
// (key value) against (keyQ valueQ); then take the product across all of
// other's pairs. This is a direct port of the original's test_dict_match,
// generalized from the test fixture into a reusable grounded value.
func DictMatch(this atom.Value, other atom.Atom) atom.Stream {
	self, ok := this.(*Dict)
	if !ok {
		return atom.EmptyStream()
	}
	g, ok := other.(atom.Grounded)
	if !ok {
		return atom.EmptyStream()
	}
	query, ok := g.Value.(*Dict)
	if !ok {
		return atom.EmptyStream()
	}

	result := atom.SingleStream(atom.NewMatchResult())
	for _, qp := range query.pairs {
		queryPair := atom.Expr(qp.key, qp.value)
		options := atom.EmptyStream()
		for _, p := range self.pairs {
			selfPair := atom.Expr(p.key, p.value)
			options = atom.Concat(options, func() atom.Stream { return atom.DoMatch(selfPair, queryPair) })
		}
		result = atom.Product(result, options)
	}
	return result
}
