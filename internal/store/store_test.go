package store_test

import (
	"testing"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"github.com/stretchr/testify/require"
)

func TestClauseSetUsedIsMonotoneAndFirstWins(t *testing.T) {
	var c store.Clause
	require.False(t, c.IsUsed())

	require.True(t, c.SetUsed(), "first transition should report fresh")
	require.False(t, c.SetUsed(), "second call must not report fresh again")
	require.True(t, c.IsUsed())
}

func TestClauseUnit(t *testing.T) {
	one := store.Clause{Members: []store.Literal{{Argument: 0, Sign: true}}}
	require.True(t, one.Unit())

	two := store.Clause{Members: []store.Literal{{Argument: 0, Sign: true}, {Argument: 1, Sign: false}}}
	require.False(t, two.Unit())
}

func TestStoreVisible(t *testing.T) {
	s := &store.Store{Clauses: []store.Clause{
		{Index: 0, DeletedAt: -1},
		{Index: 1, DeletedAt: 5},
	}}

	require.True(t, s.Visible(0, 100), "never-deleted clause is always visible")
	require.True(t, s.Visible(1, 4), "deleted strictly after the verification index stays visible")
	require.False(t, s.Visible(1, 5), "deleted at the verification index is no longer visible")
	require.False(t, s.Visible(1, 6), "deleted before the verification index is no longer visible")
}
