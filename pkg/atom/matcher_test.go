package atom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoMatchSymbols(t *testing.T) {
	t.Run("equal symbols match with empty bindings", func(t *testing.T) {
		results := DoMatch(Sym("A"), Sym("A")).ToSlice()
		require.Len(t, results, 1)
		require.Empty(t, results[0].Candidate)
	})

	t.Run("distinct symbols do not match", func(t *testing.T) {
		require.Empty(t, DoMatch(Sym("A"), Sym("B")).ToSlice())
	})
}

func TestDoMatchVariables(t *testing.T) {
	t.Run("variable on the left binds to the right atom", func(t *testing.T) {
		results := DoMatch(Var("x"), Sym("A")).ToSlice()
		require.Len(t, results, 1)
		require.True(t, results[0].Candidate[Var("x")].Equal(Sym("A")))
	})

	t.Run("two distinct variables bind each other", func(t *testing.T) {
		results := DoMatch(Var("x"), Var("y")).ToSlice()
		require.Len(t, results, 1)
		require.True(t, results[0].Candidate[Var("x")].Equal(Var("y")))
	})

	t.Run("a variable matched against itself needs no binding", func(t *testing.T) {
		v := Var("x")
		results := DoMatch(v, v).ToSlice()
		require.Len(t, results, 1)
		require.Empty(t, results[0].Candidate)
	})
}

func TestDoMatchExpressions(t *testing.T) {
	t.Run("pointwise unification across children", func(t *testing.T) {
		pattern := Expr(Sym("f"), Var("x"), Sym("B"))
		candidate := Expr(Sym("f"), Sym("A"), Sym("B"))
		results := DoMatch(candidate, pattern).ToSlice()
		require.Len(t, results, 1)
		require.True(t, results[0].Pattern[Var("x")].Equal(Sym("A")))
	})

	t.Run("mismatched arity fails", func(t *testing.T) {
		require.Empty(t, DoMatch(Expr(Sym("f"), Sym("A")), Expr(Sym("f"), Sym("A"), Sym("B"))).ToSlice())
	})

	t.Run("repeated variable forces equal bindings", func(t *testing.T) {
		pattern := Expr(Var("x"), Var("x"))
		candidate := Expr(Sym("A"), Sym("A"))
		require.Len(t, DoMatch(candidate, pattern).ToSlice(), 1)
		require.Empty(t, DoMatch(Expr(Sym("A"), Sym("B")), pattern).ToSlice())
	})
}

func TestFreshenNeverAliasesAcrossCalls(t *testing.T) {
	rule := Expr(Sym("="), Expr(Sym("f"), Var("x")), Var("x"))
	a := Freshen(rule, NextTag())
	b := Freshen(rule, NextTag())

	aVar := a.(Expression).Children[2].(Variable)
	bVar := b.(Expression).Children[2].(Variable)
	require.NotEqual(t, aVar.Tag, bVar.Tag)
	require.False(t, aVar.Equal(bVar))
}

func TestAtomsAreEquivalent(t *testing.T) {
	t.Run("alpha-equivalent expressions are equivalent", func(t *testing.T) {
		a := Expr(Sym("f"), Var("x"), Var("y"))
		b := Expr(Sym("f"), Var("p"), Var("q"))
		require.True(t, AtomsAreEquivalent(a, b))
	})

	t.Run("structurally different expressions are not equivalent", func(t *testing.T) {
		a := Expr(Sym("f"), Var("x"))
		b := Expr(Sym("f"), Sym("A"))
		require.False(t, AtomsAreEquivalent(a, b))
	})

	t.Run("an atom is equivalent to itself", func(t *testing.T) {
		a := Expr(Sym("f"), Sym("A"), Var("x"))
		require.True(t, AtomsAreEquivalent(a, a))
	})
}
