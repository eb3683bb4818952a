package stdlib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

func TestDictGetPutRemove(t *testing.T) {
	d := NewDict()
	_, ok := d.Get(atom.Sym("a"))
	require.False(t, ok)

	_, existed := d.Put(atom.Sym("a"), atom.Sym("1"))
	require.False(t, existed)

	v, ok := d.Get(atom.Sym("a"))
	require.True(t, ok)
	require.True(t, v.Equal(atom.Sym("1")))

	old, existed := d.Put(atom.Sym("a"), atom.Sym("2"))
	require.True(t, existed)
	require.True(t, old.Equal(atom.Sym("1")))

	removed, ok := d.Remove(atom.Sym("a"))
	require.True(t, ok)
	require.True(t, removed.Equal(atom.Sym("2")))
	_, ok = d.Get(atom.Sym("a"))
	require.False(t, ok)
}

func TestDictEqValueIsPositional(t *testing.T) {
	a := NewDict()
	a.Put(atom.Sym("x"), atom.Sym("1"))
	a.Put(atom.Sym("y"), atom.Sym("2"))

	b := NewDict()
	b.Put(atom.Sym("y"), atom.Sym("2"))
	b.Put(atom.Sym("x"), atom.Sym("1"))

	require.False(t, a.EqValue(b), "EqValue compares pair order, unlike Match")
	require.True(t, a.EqValue(a))
}

func TestDictCloneValueIsIndependent(t *testing.T) {
	d := NewDict()
	d.Put(atom.Sym("a"), atom.Sym("1"))

	clone := d.CloneValue().(*Dict)
	clone.Put(atom.Sym("a"), atom.Sym("2"))

	v, _ := d.Get(atom.Sym("a"))
	require.True(t, v.Equal(atom.Sym("1")), "mutating the clone must not affect the original")
}

// TestDictMatchIsAssociativeCommutative checks that every (key, value) pair
// of the query dict structurally matches some pair of the stored dict,
// independent of order, with free variables in the query picking up the
// stored value.
func TestDictMatchIsAssociativeCommutative(t *testing.T) {
	self := NewDict()
	self.Put(atom.Sym("a"), atom.Sym("1"))
	self.Put(atom.Sym("b"), atom.Sym("2"))
	self.Put(atom.Sym("c"), atom.Sym("3"))

	query := NewDict()
	query.Put(atom.Sym("b"), atom.Sym("2"))
	query.Put(atom.Sym("a"), atom.Var("x"))

	results := DictMatch(self, query.AsAtom()).ToSlice()
	require.Len(t, results, 1)
	merged, ok := atom.Merge(results[0].Candidate, results[0].Pattern)
	require.True(t, ok)
	require.True(t, merged[atom.Var("x")].Equal(atom.Sym("1")))
}

// TestDictMatchCrossPairSharedVariable reproduces the original TestDict
// fixture (lib/src/atom/mod.rs, test_custom_matching): a query variable
// ($y) appears in two different query pairs, so only the combination of
// per-pair candidate matches that agrees on $y across both pairs survives
// the product.
func TestDictMatchCrossPairSharedVariable(t *testing.T) {
	self := NewDict()
	self.Put(atom.Sym("x"), atom.Expr(atom.Sym("2"), atom.Sym("5")))
	self.Put(atom.Sym("y"), atom.Sym("5"))

	query := NewDict()
	query.Put(atom.Var("b"), atom.Var("y"))
	query.Put(atom.Var("a"), atom.Expr(atom.Sym("2"), atom.Var("y")))

	results := DictMatch(self, query.AsAtom()).ToSlice()
	require.Len(t, results, 1)
	merged, ok := atom.Merge(results[0].Candidate, results[0].Pattern)
	require.True(t, ok)
	require.True(t, merged[atom.Var("y")].Equal(atom.Sym("5")))
	require.True(t, merged[atom.Var("b")].Equal(atom.Sym("y")))
	require.True(t, merged[atom.Var("a")].Equal(atom.Sym("x")))
}

func TestDictMatchFailsWhenAQueryPairHasNoCounterpart(t *testing.T) {
	self := NewDict()
	self.Put(atom.Sym("a"), atom.Sym("1"))

	query := NewDict()
	query.Put(atom.Sym("missing"), atom.Sym("1"))

	require.Empty(t, DictMatch(self, query.AsAtom()).ToSlice())
}
