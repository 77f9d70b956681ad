// Package engine implements the parallel proof-checking core: per-worker
// propagation views, the RUP/admissibility/stability verifiers, and the
// supervisor/worker scheduler that drives them.
package engine

import "github.com/dbai-tuwien/setafrup/internal/store"

type argumentState struct {
	iteration  uint64
	value      bool
	posWatched map[int]struct{}
	negWatched map[int]struct{}
}

func (a *argumentState) setValue(value bool, iteration uint64, queue *[]int) {
	a.iteration = iteration
	a.value = value
	set := a.negWatched
	if !value {
		set = a.posWatched
	}
	for id := range set {
		*queue = append(*queue, id)
	}
}

func (a *argumentState) getValue(iteration uint64) (bool, bool) {
	if a.iteration == iteration {
		return a.value, true
	}
	return false, false
}

// View is one worker's private, mutable window into a shared Store: its
// own assignment vector, its own watched-literal state, and its own
// propagation queue. Resetting a View bumps an internal iteration counter
// rather than clearing the assignment vector, so a reset costs O(queue)
// rather than O(arguments).
type View struct {
	store     *store.Store
	iteration uint64
	arguments []argumentState
	watches   [][2]int
	queue     []int
	qHead     int
}

// NewView builds a View over s, wiring up the initial two watches (or the
// sole watch, for unit clauses) for every clause exactly as the clause was
// constructed.
func NewView(s *store.Store) *View {
	v := &View{
		store:     s,
		arguments: make([]argumentState, s.ArgumentCount),
		watches:   make([][2]int, len(s.Clauses)),
	}
	for i := range v.arguments {
		v.arguments[i] = argumentState{posWatched: map[int]struct{}{}, negWatched: map[int]struct{}{}}
	}
	for idx := range s.Clauses {
		c := &s.Clauses[idx]
		m0 := c.Members[0]
		v.setArgumentWatch(true, m0.Argument, idx, m0.Sign)
		if len(c.Members) > 1 {
			v.watches[idx][1] = 1
			m1 := c.Members[1]
			v.setArgumentWatch(true, m1.Argument, idx, m1.Sign)
		}
	}
	return v
}

// Store returns the shared database this view reads from.
func (v *View) Store() *store.Store {
	return v.store
}

func (v *View) setArgumentWatch(add bool, argIdx, clauseIdx int, sign bool) {
	a := &v.arguments[argIdx]
	set := a.negWatched
	if sign {
		set = a.posWatched
	}
	if add {
		set[clauseIdx] = struct{}{}
	} else {
		delete(set, clauseIdx)
	}
}

// Reset bumps the iteration counter (invalidating every prior assignment in
// O(1)), clears the propagation queue, then seeds it with every known unit
// clause and applies every required-argument assignment.
func (v *View) Reset() {
	v.iteration++
	v.queue = v.queue[:0]
	v.qHead = 0
	v.queue = append(v.queue, v.store.UnitClauses...)
	for _, lit := range v.store.RequiredArguments {
		v.Assign(lit.Argument, lit.Sign)
	}
}

// Assign records arg's value for the current iteration and enqueues every
// clause watching arg under the opposite sign (those clauses now have a
// watch that may need updating).
func (v *View) Assign(arg int, value bool) {
	v.arguments[arg].setValue(value, v.iteration, &v.queue)
}

// Value returns arg's value and whether it is assigned in the current
// iteration.
func (v *View) Value(arg int) (bool, bool) {
	return v.arguments[arg].getValue(v.iteration)
}

// NextToCheck pops the next clause index off the propagation queue.
func (v *View) NextToCheck() (int, bool) {
	if v.qHead >= len(v.queue) {
		return 0, false
	}
	id := v.queue[v.qHead]
	v.qHead++
	return id, true
}

type watchOutcome int

const (
	watchFailed watchOutcome = iota
	watchSuccess
	watchAlreadySatisfied
)

// CheckPropagation re-examines clause idx's two watches against the
// current assignment, updating watches as needed. It returns the literal
// that must now be asserted to keep the clause satisfiable, if any.
func (v *View) CheckPropagation(idx int) (store.Literal, bool) {
	c := &v.store.Clauses[idx]
	if len(c.Members) == 1 {
		return c.Members[0], true
	}

	w0, w1 := v.watches[idx][0], v.watches[idx][1]

	lit0 := c.Members[w0]
	val0, ok0 := v.Value(lit0.Argument)
	if ok0 && val0 == lit0.Sign {
		return store.Literal{}, false
	}
	firstFalsified := ok0

	lit1 := c.Members[w1]
	val1, ok1 := v.Value(lit1.Argument)
	if ok1 && val1 == lit1.Sign {
		return store.Literal{}, false
	}
	secondFalsified := ok1

	curW0Pos, curW0Lit := w0, lit0

	if firstFalsified {
		pos, lit, outcome := v.updateWatch(idx, w0, w1)
		switch outcome {
		case watchSuccess:
			v.applyWatchUpdate(idx, 0, curW0Lit, lit, pos)
			curW0Pos, curW0Lit = pos, lit
		case watchAlreadySatisfied:
			return store.Literal{}, false
		case watchFailed:
			return lit1, true
		}
	}

	if secondFalsified {
		pos, lit, outcome := v.updateWatch(idx, w1, curW0Pos)
		switch outcome {
		case watchSuccess:
			v.applyWatchUpdate(idx, 1, lit1, lit, pos)
		case watchAlreadySatisfied:
			return store.Literal{}, false
		case watchFailed:
			return curW0Lit, true
		}
	}

	return store.Literal{}, false
}

// updateWatch scans, circularly from initialPos+1 and skipping otherPos,
// for a replacement watch position: one that is unassigned (a fresh
// watch), or already satisfying (the whole clause is satisfied), or
// exhausts back to initialPos (no replacement exists).
func (v *View) updateWatch(idx, initialPos, otherPos int) (int, store.Literal, watchOutcome) {
	c := &v.store.Clauses[idx]
	n := len(c.Members)
	running := (initialPos + 1) % n

	for running != initialPos {
		if running != otherPos {
			lit := c.Members[running]
			val, ok := v.Value(lit.Argument)
			if ok {
				if val == lit.Sign {
					return 0, store.Literal{}, watchAlreadySatisfied
				}
			} else {
				return running, lit, watchSuccess
			}
		}
		running = (running + 1) % n
	}
	return 0, store.Literal{}, watchFailed
}

func (v *View) applyWatchUpdate(idx, slot int, oldLit, newLit store.Literal, newPos int) {
	v.watches[idx][slot] = newPos
	v.setArgumentWatch(false, oldLit.Argument, idx, oldLit.Sign)
	v.setArgumentWatch(true, newLit.Argument, idx, newLit.Sign)
}
