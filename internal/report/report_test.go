package report

import (
	"bytes"
	"testing"

	"github.com/dbai-tuwien/setafrup/internal/engine"
	"github.com/dbai-tuwien/setafrup/internal/store"
	"github.com/stretchr/testify/require"
)

func TestWriteVerdictSuccess(t *testing.T) {
	s := &store.Store{ProofStart: 2}
	var buf bytes.Buffer
	WriteVerdict(&buf, s, Verdict{Successful: true})
	require.Equal(t, "the proof is valid\n", buf.String())
}

func TestWriteVerdictFailedClauseIsProofRelative(t *testing.T) {
	s := &store.Store{ProofStart: 2}
	var buf bytes.Buffer
	WriteVerdict(&buf, s, Verdict{FailedClauseIndex: 5})
	require.Equal(t, "the proof is invalid: clause 3 could not be verified\n", buf.String())
}

func TestWriteVerdictFailedEmptyClause(t *testing.T) {
	s := &store.Store{ProofStart: 2}
	var buf bytes.Buffer
	WriteVerdict(&buf, s, Verdict{FailedEmptyClause: true})
	require.Equal(t, "the proof is invalid: the empty clause could not be verified\n", buf.String())
}

func TestWriteUsedSplitsAttacksAndProofClauses(t *testing.T) {
	b := store.NewBuilder(1)
	b.AddAttack(0, nil)
	b.StartProof()
	b.AddProofClause([]store.Literal{{Argument: 0, Sign: true}}, store.KindRUP, -1)
	s := b.Freeze()

	s.Clauses[0].SetUsed()
	s.Clauses[1].SetUsed()

	var buf bytes.Buffer
	WriteUsed(&buf, s)
	require.Equal(t, "used attacks: 0\nused proof clauses: 0\n", buf.String())
}

func TestWriteSkipsUsedListOnFailure(t *testing.T) {
	s := &store.Store{}
	var buf bytes.Buffer
	Write(&buf, s, engine.Result{Successful: false, FailedClauseIndex: 0}, true)
	require.Equal(t, "the proof is invalid: clause 0 could not be verified\n", buf.String())
}
