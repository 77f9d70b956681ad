package engine

import "github.com/dbai-tuwien/setafrup/internal/store"

// RupVerify checks whether the clause at index follows from the clauses
// visible to it by reverse unit propagation. index < 0 means "verify the
// empty clause" (used once, at the end of the proof, to certify that the
// framework is unsatisfiable under the claimed semantics): the empty
// clause has no members of its own, and its verification index is one
// past the last clause, so every clause in the database is eligible.
//
// The view must already have been Reset by the caller; RUP seeds its
// working assignment directly from the target clause's own members (no
// logical negation is applied in code — the clauses are stored in a form
// that already bakes in the negation this rule needs).
func RupVerify(v *View, sup *Supervisor, index int) bool {
	s := v.Store()

	var todo []store.Literal
	if index >= 0 {
		todo = append(todo, s.Clauses[index].Members...)
	}

	verificationIndex := index
	if index < 0 {
		verificationIndex = len(s.Clauses)
	}

	for {
		propagated := false

		for len(todo) > 0 {
			lit := todo[0]
			todo = todo[1:]
			current, ok := v.Value(lit.Argument)
			if ok {
				if current != lit.Sign {
					return true
				}
			} else {
				v.Assign(lit.Argument, lit.Sign)
			}
		}

		for {
			clauseIdx, ok := v.NextToCheck()
			if !ok {
				break
			}
			if clauseIdx < verificationIndex && s.Visible(clauseIdx, verificationIndex) {
				if lit, did := v.CheckPropagation(clauseIdx); did {
					propagated = true
					todo = append(todo, lit)
					if s.Clauses[clauseIdx].SetUsed() {
						sup.AddClauseToCheck(clauseIdx)
					}
					break
				}
			}
		}

		if !propagated {
			break
		}
	}

	return false
}
