package engine

import "github.com/dbai-tuwien/setafrup/internal/store"

// AdmissibilityVerify checks whether the clause at index witnesses that
// its leading argument is defended by the remaining members of the
// clause. The leading literal must carry a negative sign (the argument
// being defended is asserted "out"); every other member is read only as a
// set of potential counter-attackers, never propagated against the
// current assignment.
//
// attackIndex, when hasAttackIndex is true, pins the single attack that
// must be shown defended (an "iK" proof line); otherwise every attack on
// the leading argument is tried in ascending order and the first one that
// can be defended wins.
func AdmissibilityVerify(v *View, sup *Supervisor, index, attackIndex int, hasAttackIndex bool) bool {
	s := v.Store()
	members := s.Clauses[index].Members
	leading := members[0]
	if leading.Sign {
		return false
	}

	attacks := s.AttackedBy[leading.Argument]
	witnesses := argumentSet(members)

	if hasAttackIndex {
		found := false
		for _, a := range attacks {
			if a == attackIndex {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		if !admissibilityDefends(s, witnesses, attackIndex) {
			return false
		}
		markCounterAttacks(s, sup, witnesses, attackIndex)
		markUsed(s, sup, attackIndex)
		return true
	}

	for _, a := range attacks {
		if admissibilityDefends(s, witnesses, a) {
			markCounterAttacks(s, sup, witnesses, a)
			markUsed(s, sup, a)
			return true
		}
	}
	return false
}

// admissibilityDefends reports whether, for every non-target member of the
// attack clause at attackIndex, each attack on that member has at least
// one attacker in witnesses.
func admissibilityDefends(s *store.Store, witnesses map[int]struct{}, attackIndex int) bool {
	for _, m := range s.Clauses[attackIndex].Members[1:] {
		if !containsWitnesses(s, witnesses, s.AttackedBy[m.Argument]) {
			return false
		}
	}
	return true
}

// markCounterAttacks marks every attack against every non-target member
// of the attack clause at attackIndex used — these are the
// counter-attacks that admissibilityDefends confirmed are covered by
// witnesses.
func markCounterAttacks(s *store.Store, sup *Supervisor, witnesses map[int]struct{}, attackIndex int) {
	for _, m := range s.Clauses[attackIndex].Members[1:] {
		for _, counter := range s.AttackedBy[m.Argument] {
			markUsed(s, sup, counter)
		}
	}
}

func markUsed(s *store.Store, sup *Supervisor, clauseIndex int) {
	if s.Clauses[clauseIndex].SetUsed() {
		sup.AddClauseToCheck(clauseIndex)
	}
}
