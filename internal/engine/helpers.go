package engine

import "github.com/dbai-tuwien/setafrup/internal/store"

// containsWitnesses reports whether, for every attack clause in
// attackedBy, at least one of its non-target members (every member after
// the attacked argument itself) is present in witnesses. This is the
// shared "is every attacker on this argument countered by the witness
// set?" check used by both the admissibility and stability verifiers.
func containsWitnesses(s *store.Store, witnesses map[int]struct{}, attackedBy []int) bool {
attackLoop:
	for _, attackIdx := range attackedBy {
		members := s.Clauses[attackIdx].Members
		for _, m := range members[1:] {
			if _, ok := witnesses[m.Argument]; ok {
				continue attackLoop
			}
		}
		return false
	}
	return true
}

func argumentSet(members []store.Literal) map[int]struct{} {
	set := make(map[int]struct{}, len(members))
	for _, m := range members {
		set[m.Argument] = struct{}{}
	}
	return set
}
