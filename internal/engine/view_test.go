package engine

import (
	"testing"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"github.com/stretchr/testify/require"
)

func TestViewUnitClauseQueuedOnReset(t *testing.T) {
	b := store.NewBuilder(1)
	b.StartProof()
	b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}}, store.KindRUP, -1)
	s := b.Freeze()

	v := NewView(s)
	v.Reset()

	idx, ok := v.NextToCheck()
	require.True(t, ok)
	require.Equal(t, 0, idx)

	lit, did := v.CheckPropagation(idx)
	require.True(t, did)
	require.Equal(t, store.Literal{Argument: 0, Sign: true}, lit)
}

func TestViewWatchMigratesThenForcesPropagation(t *testing.T) {
	b := store.NewBuilder(3)
	clauseIdx := b.AddAttack(0, []int{1, 2}) // members: {0,f} {1,f} {2,f}
	s := b.Freeze()

	v := NewView(s)
	v.Reset()

	v.Assign(0, true) // falsifies the watch on argument 0
	idx, ok := v.NextToCheck()
	require.True(t, ok)
	require.Equal(t, clauseIdx, idx)

	_, did := v.CheckPropagation(idx)
	require.False(t, did, "a fresh unassigned watch absorbs the falsified one")
	require.Equal(t, [2]int{2, 1}, v.watches[clauseIdx])

	v.Assign(2, true) // falsifies the migrated watch; only argument 1 remains
	idx, ok = v.NextToCheck()
	require.True(t, ok)
	require.Equal(t, clauseIdx, idx)

	lit, did := v.CheckPropagation(idx)
	require.True(t, did)
	require.Equal(t, store.Literal{Argument: 1, Sign: false}, lit)
}

func TestViewResetIsCheapAcrossIterations(t *testing.T) {
	b := store.NewBuilder(2)
	b.AddAttack(0, []int{1})
	s := b.Freeze()

	v := NewView(s)
	v.Reset()
	v.Assign(0, true)
	_, ok := v.Value(0)
	require.True(t, ok)

	v.Reset()
	_, ok = v.Value(0)
	require.False(t, ok, "reset must invalidate prior assignments without touching the assignment vector")
}
