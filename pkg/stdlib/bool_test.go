package stdlib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolFromStr(t *testing.T) {
	t.Run("True parses to true", func(t *testing.T) {
		b, ok := FromStr("True")
		require.True(t, ok)
		require.True(t, bool(b))
	})

	t.Run("False parses to false", func(t *testing.T) {
		b, ok := FromStr("False")
		require.True(t, ok)
		require.False(t, bool(b))
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		_, ok := FromStr("true")
		require.False(t, ok)
	})
}

func TestBoolAsSymbolRoundTrips(t *testing.T) {
	require.Equal(t, "True", Bool(true).AsSymbol().String())
	require.Equal(t, "False", Bool(false).AsSymbol().String())
}

func TestBoolEqValue(t *testing.T) {
	require.True(t, Bool(true).EqValue(Bool(true)))
	require.False(t, Bool(true).EqValue(Bool(false)))
}
