package store

// Builder accumulates clauses while a framework/proof is parsed, then
// produces a frozen Store. It is not safe for concurrent use; parsing is
// single-threaded.
type Builder struct {
	argumentCount int
	clauses       []Clause
	proofStart    int
	required      []Literal
	attackedBy    [][]int
	started       bool
}

// NewBuilder creates a Builder for a framework with the given number of
// arguments.
func NewBuilder(argumentCount int) *Builder {
	return &Builder{
		argumentCount: argumentCount,
		attackedBy:    make([][]int, argumentCount),
	}
}

// AddAttack appends an original-framework attack clause: attacked is the
// target argument (recorded with negative sign, position 0), attackers are
// the remaining negative-sign members. Returns the new clause's index.
func (b *Builder) AddAttack(attacked int, attackers []int) int {
	members := make([]Literal, 0, 1+len(attackers))
	members = append(members, Literal{Argument: attacked, Sign: false})
	for _, a := range attackers {
		members = append(members, Literal{Argument: a, Sign: false})
	}
	idx := len(b.clauses)
	b.clauses = append(b.clauses, Clause{Index: idx, Members: members, Kind: KindNone, AttackIndex: -1, DeletedAt: -1})
	b.attackedBy[attacked] = append(b.attackedBy[attacked], idx)
	return idx
}

// StartProof marks the boundary between the original framework and the
// proof; subsequent clauses added via AddProofClause are proof clauses.
func (b *Builder) StartProof() {
	b.proofStart = len(b.clauses)
	b.started = true
}

// AddProofClause appends a proof clause and returns its index.
func (b *Builder) AddProofClause(members []Literal, kind VerifierKind, attackIndex int) int {
	idx := len(b.clauses)
	b.clauses = append(b.clauses, Clause{
		Index:       idx,
		Members:     members,
		Kind:        kind,
		AttackIndex: attackIndex,
		DeletedAt:   -1,
	})
	return idx
}

// DeleteClause marks the clause live at index as deleted as of the current
// write position (deletedAt). Safe to call at most once per index.
func (b *Builder) DeleteClause(index, deletedAt int) {
	b.clauses[index].DeletedAt = deletedAt
}

// NextIndex returns the index the next AddAttack/AddProofClause call will
// assign, used by the proof parser to compute deletion markers for "d"
// lines that don't themselves occupy a slot.
func (b *Builder) NextIndex() int {
	return len(b.clauses)
}

// SetRequired installs the required-argument assignments.
func (b *Builder) SetRequired(required []Literal) {
	b.required = required
}

// ArgumentCount returns the argument space size the builder was created with.
func (b *Builder) ArgumentCount() int {
	return b.argumentCount
}

// Freeze produces the immutable Store. ProofStart defaults to the current
// clause count if StartProof was never called (no proof clauses).
func (b *Builder) Freeze() *Store {
	proofStart := b.proofStart
	if !b.started {
		proofStart = len(b.clauses)
	}

	var units []int
	for i := range b.clauses {
		if b.clauses[i].Unit() {
			units = append(units, i)
		}
	}

	return &Store{
		Clauses:           b.clauses,
		ProofStart:        proofStart,
		ArgumentCount:     b.argumentCount,
		UnitClauses:       units,
		RequiredArguments: b.required,
		AttackedBy:        b.attackedBy,
	}
}
