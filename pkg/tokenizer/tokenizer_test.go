package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

func TestParseSExpression(t *testing.T) {
	tok := New()
	got, err := tok.Parse("(foo $x (bar 1))")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(atom.Expr(
		atom.Sym("foo"), atom.Var("x"), atom.Expr(atom.Sym("bar"), atom.Sym("1")),
	)))
}

func TestParseMultipleTopLevelExpressions(t *testing.T) {
	tok := New()
	got, err := tok.Parse("(a) (b)")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Equal(atom.Expr(atom.Sym("a"))))
	require.True(t, got[1].Equal(atom.Expr(atom.Sym("b"))))
}

func TestParseSkipsComments(t *testing.T) {
	tok := New()
	got, err := tok.Parse("; a comment\n(a) ; trailing\n")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestParseUnbalancedParenthesesIsAnError(t *testing.T) {
	tok := New()
	_, err := tok.Parse("(a (b)")
	require.Error(t, err)
}

func TestParseVariableFallback(t *testing.T) {
	tok := New()
	got, err := tok.Parse("$my-var")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(atom.Var("my-var")))
}

func TestParseBareSymbolFallback(t *testing.T) {
	tok := New()
	got, err := tok.Parse("foo")
	require.NoError(t, err)
	require.True(t, got[0].Equal(atom.Sym("foo")))
}

func TestParseStringLiteralFallback(t *testing.T) {
	tok := New()
	got, err := tok.Parse(`"hello world"`)
	require.NoError(t, err)
	require.True(t, got[0].Equal(atom.Sym(`"hello world"`)))
}

func TestRegisteredRuleTakesPriorityOverBareSymbolFallback(t *testing.T) {
	tok := New()
	tok.MustRegisterToken(`foo`, func(string) atom.Atom { return atom.Sym("FOO-REWRITTEN") })
	got, err := tok.Parse("foo")
	require.NoError(t, err)
	require.True(t, got[0].Equal(atom.Sym("FOO-REWRITTEN")))
}

func TestMoveFrontGivesSplicedRulesPriority(t *testing.T) {
	base := New()
	base.MustRegisterToken(`[0-9]+`, func(tok string) atom.Atom { return atom.Sym("generic-number") })

	custom := New()
	custom.MustRegisterToken(`42`, func(string) atom.Atom { return atom.Sym("the-answer") })

	base.MoveFront(custom)

	got, err := base.Parse("42")
	require.NoError(t, err)
	require.True(t, got[0].Equal(atom.Sym("the-answer")), "spliced rule must be tried before the base rule")
	require.Empty(t, custom.rules, "MoveFront must leave the source tokenizer with no rules")

	got, err = base.Parse("7")
	require.NoError(t, err)
	require.True(t, got[0].Equal(atom.Sym("generic-number")), "base rule must still fire for non-overlapping input")
}
