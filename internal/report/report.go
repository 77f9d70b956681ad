// Package report formats a finished Run's verdict for the CLI: the
// pass/fail line, the failing clause (if any), and — on request — the
// ascending lists of used original-attack and proof-clause indices.
package report

import (
	"fmt"
	"io"

	"github.com/dbai-tuwien/setafrup/internal/engine"
	"github.com/dbai-tuwien/setafrup/internal/store"
)

// Verdict is the rendered outcome of one run, independent of how it was
// reached (normal completion, required-argument short circuit, timeout,
// cancellation, or an unexpected worker error).
type Verdict struct {
	Successful        bool
	FailedClauseIndex int
	FailedEmptyClause bool
}

// FromResult builds a Verdict from a finished Supervisor's Result. A
// required-argument short circuit and a normal finish both arrive here as
// an ordinary successful Result.
func FromResult(result engine.Result) Verdict {
	return Verdict{
		Successful:        result.Successful,
		FailedClauseIndex: result.FailedClauseIndex,
		FailedEmptyClause: result.FailedEmptyClause,
	}
}

// WriteVerdict prints the pass/fail line and, on failure, identifies the
// clause (proof-relative, 0-based) that could not be verified.
func WriteVerdict(w io.Writer, s *store.Store, v Verdict) {
	if v.Successful {
		fmt.Fprintln(w, "the proof is valid")
		return
	}
	if v.FailedEmptyClause {
		fmt.Fprintln(w, "the proof is invalid: the empty clause could not be verified")
		return
	}
	fmt.Fprintf(w, "the proof is invalid: clause %d could not be verified\n", v.FailedClauseIndex-s.ProofStart)
}

// Write prints the verdict and, if used is true and the run succeeded,
// the used-clause lists, to w.
func Write(w io.Writer, s *store.Store, result engine.Result, used bool) {
	v := FromResult(result)
	WriteVerdict(w, s, v)
	if used && v.Successful {
		WriteUsed(w, s)
	}
}

// WriteUsed prints the ascending list of used original-attack indices and
// the ascending list of used proof-clause indices (proof-relative), one
// list per line.
func WriteUsed(w io.Writer, s *store.Store) {
	var attacks, proof []int
	for i := range s.Clauses {
		if !s.Clauses[i].IsUsed() {
			continue
		}
		if i < s.ProofStart {
			attacks = append(attacks, i)
		} else {
			proof = append(proof, i-s.ProofStart)
		}
	}

	fmt.Fprintf(w, "used attacks: %s\n", formatIndices(attacks))
	fmt.Fprintf(w, "used proof clauses: %s\n", formatIndices(proof))
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "(none)"
	}
	out := fmt.Sprintf("%d", indices[0])
	for _, i := range indices[1:] {
		out += fmt.Sprintf(" %d", i)
	}
	return out
}
