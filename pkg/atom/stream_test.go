package atom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyStreamIndependentCursors(t *testing.T) {
	s := Cons(1, func() LazyStream[int] { return Cons(2, func() LazyStream[int] { return Single(3) }) })

	head, rest, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, 1, head)

	// Re-reading from s itself must reproduce the same head: advancing rest
	// must not have mutated s.
	head2, _, ok2 := s.Next()
	require.True(t, ok2)
	require.Equal(t, 1, head2)

	require.Equal(t, []int{2, 3}, rest.ToSlice())
	require.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestConcat(t *testing.T) {
	a := Single(1)
	got := Concat(a, func() LazyStream[int] { return Single(2) }).ToSlice()
	require.Equal(t, []int{1, 2}, got)
}

func TestProductOrderingAndMergeFailure(t *testing.T) {
	a := SingleStream(MatchResultFrom(Bindings{Var("x"): Sym("A")}, EmptyBindings()))
	b := ConsStream(MatchResultFrom(Bindings{Var("y"): Sym("1")}, EmptyBindings()),
		func() Stream {
			return SingleStream(MatchResultFrom(Bindings{Var("y"): Sym("2")}, EmptyBindings()))
		})

	results := Product(a, b).ToSlice()
	require.Len(t, results, 2)
	require.True(t, results[0].Candidate[Var("y")].Equal(Sym("1")))
	require.True(t, results[1].Candidate[Var("y")].Equal(Sym("2")))

	conflicting := SingleStream(MatchResultFrom(Bindings{Var("x"): Sym("B")}, EmptyBindings()))
	require.Empty(t, Product(a, conflicting).ToSlice())
}
