package parse

import (
	"testing"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"github.com/stretchr/testify/require"
)

func TestParseSemanticsFlag(t *testing.T) {
	s, ok := ParseSemanticsFlag("Admissible")
	require.True(t, ok)
	require.Equal(t, Admissible, s)

	s, ok = ParseSemanticsFlag("Stable")
	require.True(t, ok)
	require.Equal(t, Stable, s)

	_, ok = ParseSemanticsFlag("stable")
	require.False(t, ok)
}

func TestClassifyAdmissible(t *testing.T) {
	c := Admissible.classify("1 -2 0")
	require.True(t, c.ok)
	require.Equal(t, store.KindRUP, c.kind)
	require.Equal(t, 0, c.start)

	c = Admissible.classify("i -1 2 0")
	require.True(t, c.ok)
	require.Equal(t, store.KindAdmissibility, c.kind)
	require.Equal(t, -1, c.attackIndex)
	require.Equal(t, 2, c.start)

	c = Admissible.classify("i13 -1 2 0")
	require.True(t, c.ok)
	require.Equal(t, store.KindAdmissibility, c.kind)
	require.Equal(t, 13, c.attackIndex)
	require.Equal(t, 4, c.start)

	c = Admissible.classify("ix -1 0")
	require.False(t, c.ok)
}

func TestClassifyStableIgnoresAttackIndexDigits(t *testing.T) {
	c := Stable.classify("i 1 2 0")
	require.True(t, c.ok)
	require.Equal(t, store.KindStability, c.kind)
	require.Equal(t, 2, c.start)

	// A digit run after "i" is Admissible-only syntax; under Stable the
	// whole line falls through to RUP.
	c = Stable.classify("i13 1 2 0")
	require.True(t, c.ok)
	require.Equal(t, store.KindRUP, c.kind)
	require.Equal(t, 0, c.start)
}
