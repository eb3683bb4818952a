package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

// requireSameSet asserts got and want contain the same atoms up to order,
// the "permutation-equal" comparison the concrete scenarios call for.
func requireSameSet(t *testing.T, want, got []atom.Atom) {
	t.Helper()
	require.Len(t, got, len(want))
	remaining := append([]atom.Atom(nil), got...)
	for _, w := range want {
		found := -1
		for i, r := range remaining {
			if r.Equal(w) {
				found = i
				break
			}
		}
		require.GreaterOrEqualf(t, found, 0, "expected %s among remaining results %v", w.String(), remaining)
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
}

func TestCarOnNonEmptyExpression(t *testing.T) {
	s := NewBootstrapped("test")
	d := New(s, nil)

	expr := atom.Expr(sym("car"), atom.Expr(atom.Sym("A"), atom.Var("b")))
	got := d.Reduce(EvalCall(expr))
	requireSameSet(t, []atom.Atom{atom.Sym("A")}, got)
}

func TestCarOnEmptyExpressionIsExactlyOneError(t *testing.T) {
	s := NewBootstrapped("test")
	d := New(s, nil)

	carOfEmpty := atom.Expr(sym("car"), atom.Expr())
	got := d.Reduce(EvalCall(carOfEmpty))
	require.Len(t, got, 1)
	subject, _, isErr := atom.IsError(got[0])
	require.True(t, isErr)
	require.True(t, subject.Equal(carOfEmpty))
}

func TestSwitchPicksFirstMatchingCase(t *testing.T) {
	s := NewBootstrapped("test")
	d := New(s, nil)

	cases := expr(
		expr(expr(sym("A"), v("x")), expr(sym("got"), v("x"))),
		expr(expr(sym("B")), sym("other")),
	)
	val := expr(sym("A"), sym("hello"))
	got := d.Reduce(EvalCall(expr(sym("switch"), val, cases)))
	requireSameSet(t, []atom.Atom{expr(sym("got"), sym("hello"))}, got)
}

func TestSwitchWithNoMatchingCaseYieldsNothing(t *testing.T) {
	s := NewBootstrapped("test")
	d := New(s, nil)

	cases := expr(expr(sym("X"), sym("Y")))
	got := d.Reduce(EvalCall(expr(sym("switch"), sym("A"), cases)))
	require.Empty(t, got)
}

func TestReduceAppliesRuleToFixpointThenSubstitutes(t *testing.T) {
	s := NewBootstrapped("test")
	s.Add(eq(sym("A"), sym("B")))
	s.Add(eq(sym("B"), sym("C")))
	d := New(s, nil)

	body := expr(sym("wrap"), v("x"))
	got := d.Reduce(EvalCall(expr(sym("reduce"), sym("A"), v("x"), body)))
	requireSameSet(t, []atom.Atom{expr(sym("wrap"), sym("C"))}, got)
}

func TestTypeCastScenarios(t *testing.T) {
	s := NewBootstrapped("test")
	s.Add(atom.Expr(atom.Sym(":"), atom.Sym("a"), atom.Sym("A")))
	d := New(s, nil)
	self := s.AsAtom()

	t.Run("exact type match is identity", func(t *testing.T) {
		got := d.Reduce(EvalCall(expr(sym("type-cast"), sym("a"), sym("A"), self)))
		requireSameSet(t, []atom.Atom{sym("a")}, got)
	})

	t.Run("undefined target type is identity", func(t *testing.T) {
		got := d.Reduce(EvalCall(expr(sym("type-cast"), sym("a"), sym("%Undefined%"), self)))
		requireSameSet(t, []atom.Atom{sym("a")}, got)
	})

	t.Run("mismatched type yields BadType", func(t *testing.T) {
		got := d.Reduce(EvalCall(expr(sym("type-cast"), sym("a"), sym("B"), self)))
		requireSameSet(t, []atom.Atom{badType(sym("a"))}, got)
	})
}

func TestInterpretDispatchesAllMatchingEqualities(t *testing.T) {
	s := NewBootstrapped("test")
	color := expr(sym("color"))
	s.Add(eq(color, sym("blue")))
	s.Add(eq(color, sym("red")))
	s.Add(eq(color, sym("green")))
	d := New(s, nil)

	got := d.Reduce(EvalCall(InterpretCall(color, sym("%Undefined%"), s)))
	requireSameSet(t, []atom.Atom{sym("blue"), sym("red"), sym("green")}, got)
}

func TestInterpretOnIrreducibleAtomIsIdentity(t *testing.T) {
	s := NewBootstrapped("test")
	d := New(s, nil)

	got := d.Reduce(EvalCall(InterpretCall(sym("A"), sym("%Undefined%"), s)))
	requireSameSet(t, []atom.Atom{sym("A")}, got)
}
