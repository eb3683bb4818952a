package space

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

func TestQueryReturnsInsertionOrder(t *testing.T) {
	s := New("test")
	s.Add(atom.Expr(atom.Sym(":"), atom.Sym("a"), atom.Sym("A")))
	s.Add(atom.Expr(atom.Sym(":"), atom.Sym("a"), atom.Sym("B")))

	pattern := atom.Expr(atom.Sym(":"), atom.Sym("a"), atom.Var("t"))
	var types []string
	for _, b := range s.Query(pattern).ToSlice() {
		types = append(types, b[atom.Var("t")].String())
	}
	require.Equal(t, []string{"A", "B"}, types)
}

func TestQueryFreshensStoredVariables(t *testing.T) {
	s := New("test")
	s.Add(atom.Expr(atom.Sym("="), atom.Expr(atom.Sym("id"), atom.Var("x")), atom.Var("x")))

	first, _, ok := s.Query(atom.Expr(atom.Sym("="), atom.Expr(atom.Sym("id"), atom.Sym("A")), atom.Var("r"))).Next()
	require.True(t, ok)
	second, _, ok := s.Query(atom.Expr(atom.Sym("="), atom.Expr(atom.Sym("id"), atom.Sym("B")), atom.Var("r"))).Next()
	require.True(t, ok)

	require.True(t, first[atom.Var("r")].Equal(atom.Sym("A")))
	require.True(t, second[atom.Var("r")].Equal(atom.Sym("B")))
}

func TestRemoveDeletesFirstOccurrenceOnly(t *testing.T) {
	s := New("test")
	s.Add(atom.Sym("A"))
	s.Add(atom.Sym("A"))

	require.True(t, s.Remove(atom.Sym("A")))
	require.Equal(t, 1, s.Len())
}

func TestSpaceAsGroundedAtomIsANonOwningHandle(t *testing.T) {
	s := New("test")
	a1 := s.AsAtom()
	a2 := a1.Clone()

	g2, ok := a2.(atom.Grounded)
	require.True(t, ok)
	sp2, ok := g2.Value.(*Space)
	require.True(t, ok)
	require.Same(t, s, sp2, "cloning a grounded atom wrapping a space must not fork the space")

	s.Add(atom.Sym("A"))
	require.Equal(t, 1, sp2.Len())
}

func TestGetTypeDefaultsToUndefined(t *testing.T) {
	s := New("test")
	s.Add(atom.Expr(atom.Sym(":"), atom.Sym("a"), atom.Sym("A")))

	require.Equal(t, []atom.Atom{atom.Sym("A")}, GetType(atom.Sym("a"), s))
	require.Equal(t, []atom.Atom{atom.Sym("%Undefined%")}, GetType(atom.Sym("b"), s))
}

func TestGetMetaType(t *testing.T) {
	require.Equal(t, atom.Sym("Symbol"), GetMetaType(atom.Sym("a")))
	require.Equal(t, atom.Sym("Variable"), GetMetaType(atom.Var("x")))
	require.Equal(t, atom.Sym("Expression"), GetMetaType(atom.Expr(atom.Sym("a"))))
	require.Equal(t, atom.Sym("Grounded"), GetMetaType(atom.NewGrounded(dummyValue{})))
}

type dummyValue struct{}

func (dummyValue) String() string                   { return "dummy" }
func (dummyValue) EqValue(other atom.Value) bool     { _, ok := other.(dummyValue); return ok }
func (dummyValue) CloneValue() atom.Value            { return dummyValue{} }
