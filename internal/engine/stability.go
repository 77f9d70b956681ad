package engine

// StabilityVerify checks whether the clause at index witnesses that every
// attack on its leading argument is countered by some other member of the
// clause. Every member must carry a positive sign (a stability witness
// clause lists only arguments asserted "in").
func StabilityVerify(v *View, sup *Supervisor, index int) bool {
	s := v.Store()
	members := s.Clauses[index].Members
	for _, m := range members {
		if !m.Sign {
			return false
		}
	}

	leading := members[0]
	attackedBy := s.AttackedBy[leading.Argument]
	witnesses := argumentSet(members)

	if !containsWitnesses(s, witnesses, attackedBy) {
		return false
	}

	for _, a := range attackedBy {
		markUsed(s, sup, a)
	}
	return true
}
