package engine

import (
	"testing"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"github.com/stretchr/testify/require"
)

func TestRunExecuteSucceedsOnContradictingUnitClauses(t *testing.T) {
	b := store.NewBuilder(1)
	b.AddAttack(0, nil) // unit clause: {0,false}
	b.StartProof()
	b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}}, store.KindRUP, -1) // unit clause: {0,true}
	s := b.Freeze()

	r := NewRun(s, NewCancellationToken())
	r.Execute(2, false)

	require.Equal(t, StateFinished, r.Supervisor.State())
	result := r.Supervisor.Result()
	require.True(t, result.Successful)
}

func TestRunExecuteFailsWithoutContradiction(t *testing.T) {
	b := store.NewBuilder(2)
	b.StartProof()
	b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}, {Argument: 1, Sign: true}}, store.KindRUP, -1)
	s := b.Freeze()

	r := NewRun(s, NewCancellationToken())
	r.Execute(2, false)

	require.Equal(t, StateFinished, r.Supervisor.State())
	result := r.Supervisor.Result()
	require.False(t, result.Successful)
	require.True(t, result.FailedEmptyClause)
}

func TestRunExecuteCompleteModeMarksEveryProofClauseUsed(t *testing.T) {
	b := store.NewBuilder(1)
	b.AddAttack(0, nil)
	b.StartProof()
	idx := b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}}, store.KindRUP, -1)
	s := b.Freeze()

	r := NewRun(s, NewCancellationToken())
	r.Execute(2, true)

	require.True(t, s.Clauses[idx].IsUsed())
}

func TestRunExecuteVerdictIndependentOfThreadCount(t *testing.T) {
	build := func() *store.Store {
		b := store.NewBuilder(3)
		b.AddAttack(0, []int{1})    // b attacks a
		b.AddAttack(1, []int{2})    // c attacks b
		b.AddAttack(2, []int{0})    // a attacks c
		b.StartProof()
		b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}, {Argument: 1, Sign: true}}, store.KindRUP, -1)
		b.AddProofClause([]store.Literal{{Argument: 0, Sign: false}}, store.KindRUP, -1)
		b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}}, store.KindRUP, -1)
		return b.Freeze()
	}

	var verdicts []bool
	for _, threads := range []int{1, 4} {
		r := NewRun(build(), NewCancellationToken())
		r.Execute(threads, false)
		require.Equal(t, StateFinished, r.Supervisor.State())
		verdicts = append(verdicts, r.Supervisor.Result().Successful)
	}
	require.Equal(t, verdicts[0], verdicts[1])
}

func TestRunExecuteObservesCancellation(t *testing.T) {
	b := store.NewBuilder(2)
	b.StartProof()
	b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}, {Argument: 1, Sign: true}}, store.KindRUP, -1)
	s := b.Freeze()

	token := NewCancellationToken()
	token.Cancel()
	r := NewRun(s, token)
	r.Execute(2, false)

	require.NotEqual(t, StateFinished, r.Supervisor.State())
}
