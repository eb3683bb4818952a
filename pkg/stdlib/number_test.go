package stdlib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

func TestParseNumber(t *testing.T) {
	t.Run("integer literal", func(t *testing.T) {
		n, err := ParseNumber("42")
		require.NoError(t, err)
		require.False(t, n.IsFloat())
		require.Equal(t, "42", n.String())
	})

	t.Run("float literal", func(t *testing.T) {
		n, err := ParseNumber("3.5")
		require.NoError(t, err)
		require.True(t, n.IsFloat())
		require.Equal(t, "3.5", n.String())
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseNumber("abc")
		require.Error(t, err)
	})
}

func TestNumberEqValueDistinguishesIntFromFloat(t *testing.T) {
	require.False(t, Int(2).EqValue(Float(2.0)))
	require.True(t, Int(2).EqValue(Int(2)))
	require.True(t, Float(2.0).EqValue(Float(2.0)))
	require.False(t, Int(2).EqValue(Int(3)))
}

func TestAddStaysIntegerWhenBothOperandsAreIntegers(t *testing.T) {
	out, err := Add.Execute([]atom.Atom{Int(2).AsAtom(), Int(3).AsAtom()})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Equal(Int(5).AsAtom()))
}

func TestAddPromotesToFloatWhenEitherOperandIsFloat(t *testing.T) {
	out, err := Add.Execute([]atom.Atom{Int(2).AsAtom(), Float(0.5).AsAtom()})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Equal(Float(2.5).AsAtom()))
}

func TestDivAlwaysProducesFloat(t *testing.T) {
	out, err := Div.Execute([]atom.Atom{Int(4).AsAtom(), Int(2).AsAtom()})
	require.NoError(t, err)
	require.True(t, out[0].Equal(Float(2.0).AsAtom()))
}

func TestModByZeroFallsBackToFloatMath(t *testing.T) {
	out, err := Mod.Execute([]atom.Atom{Int(5).AsAtom(), Int(0).AsAtom()})
	require.NoError(t, err)
	require.Len(t, out, 1)
	n, ok := out[0].(atom.Grounded).Value.(Number)
	require.True(t, ok)
	require.True(t, n.IsFloat())
}

func TestCompareOperators(t *testing.T) {
	out, err := Lt.Execute([]atom.Atom{Int(1).AsAtom(), Int(2).AsAtom()})
	require.NoError(t, err)
	require.True(t, out[0].Equal(Bool(true).AsAtom()))

	out, err = Ge.Execute([]atom.Atom{Int(1).AsAtom(), Int(2).AsAtom()})
	require.NoError(t, err)
	require.True(t, out[0].Equal(Bool(false).AsAtom()))
}

func TestArithOperatorsAreExecutableAndPrintLikeBareSymbols(t *testing.T) {
	require.True(t, Add.Executable())
	require.Equal(t, "+", Add.String())
}
