// Package store holds the frozen, shared representation of a SETAF
// instance's clause database: the original framework's attack clauses
// followed by the proof's derived clauses, all in one contiguous index
// space. Everything here is safe for concurrent read access from multiple
// worker goroutines; the only field that changes after construction is each
// clause's Used flag.
package store

import "go.uber.org/atomic"

// VerifierKind names the rule a proof clause claims to satisfy. Original
// framework attack clauses carry KindNone; they are never themselves
// re-verified.
type VerifierKind int

const (
	KindNone VerifierKind = iota
	KindRUP
	KindAdmissibility
	KindStability
)

// Literal is a signed reference to an argument. Sign true means the
// argument is asserted present (a "positive" literal); false means it is
// asserted absent.
type Literal struct {
	Argument int
	Sign     bool
}

// Clause is one row of the shared database: either an original attack (a
// disjunction encoding "not all of these arguments are simultaneously
// in, with the attacked argument out") or a line of the proof.
type Clause struct {
	Index   int
	Members []Literal

	// Kind and AttackIndex are set only for proof clauses (Index >=
	// ProofStart). AttackIndex is the optional attack-clause index pinned by
	// an "iK" admissibility proof line; -1 means "try every attack on the
	// leading argument".
	Kind        VerifierKind
	AttackIndex int

	// DeletedAt, once set, is never changed. A clause with DeletedAt == -1
	// has not been deleted.
	DeletedAt int

	used atomic.Bool
}

// SetUsed marks the clause used, returning true only the first time this
// happens for this clause (a fresh false->true transition). Callers use the
// return value to decide whether this clause is now a new dependency that
// itself needs verifying.
func (c *Clause) SetUsed() bool {
	return c.used.CAS(false, true)
}

// IsUsed reports whether the clause has ever been marked used.
func (c *Clause) IsUsed() bool {
	return c.used.Load()
}

// Unit reports whether the clause has exactly one member, i.e. it can be
// propagated unconditionally without consulting any watch.
func (c *Clause) Unit() bool {
	return len(c.Members) == 1
}

// Store is the immutable clause database shared by every worker. Construct
// one with a Builder; once Freeze returns, every field below except the
// per-clause Used flag is read-only.
type Store struct {
	Clauses []Clause

	// ProofStart is the index of the first proof clause; clauses before it
	// are the original framework's attacks.
	ProofStart int

	// ArgumentCount is the dense argument id space, 0..ArgumentCount.
	ArgumentCount int

	// UnitClauses lists the indices of every clause with exactly one
	// member, original or proof; these are queued unconditionally whenever
	// a worker view is reset.
	UnitClauses []int

	// RequiredArguments are applied directly (no negation) on every reset.
	RequiredArguments []Literal

	// AttackedBy maps an argument index to the ascending list of original
	// attack-clause indices that target it.
	AttackedBy [][]int
}

// ClauseCount returns the total number of clauses, original and proof.
func (s *Store) ClauseCount() int {
	return len(s.Clauses)
}

// Visible reports whether clause at index is still part of the database as
// of verificationIndex: either it has never been deleted, or it was
// deleted strictly after verificationIndex.
func (s *Store) Visible(index, verificationIndex int) bool {
	d := s.Clauses[index].DeletedAt
	return d == -1 || d > verificationIndex
}
