package engine

import (
	"sync"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"go.uber.org/atomic"
)

// CancellationToken is an explicit, per-run substitute for a process-wide
// "should I keep working" flag: every goroutine that needs to observe
// cancellation holds a reference to the same token instead of reading
// mutable package state, so multiple runs (e.g. in tests) never interfere
// with each other.
type CancellationToken struct {
	stopped atomic.Bool
}

// NewCancellationToken returns a token in the "keep working" state.
func NewCancellationToken() *CancellationToken {
	return &CancellationToken{}
}

// Cancel requests that the run stop at its next checkpoint.
func (t *CancellationToken) Cancel() {
	t.stopped.Store(true)
}

// ShouldStop reports whether Cancel has been called.
func (t *CancellationToken) ShouldStop() bool {
	return t.stopped.Load()
}

// Run bundles a frozen Store with the Supervisor and CancellationToken
// that drive one verification pass over it. It owns no package-level
// state: every field a worker goroutine needs is reached through the Run
// value passed to it.
type Run struct {
	Store      *store.Store
	Supervisor *Supervisor
	Cancel     *CancellationToken
}

// NewRun constructs a Run over s, observing cancel.
func NewRun(s *store.Store, cancel *CancellationToken) *Run {
	return &Run{
		Store:      s,
		Supervisor: NewSupervisor(cancel),
		Cancel:     cancel,
	}
}

// Execute deploys min(threads, len(Store.Clauses)) worker goroutines and
// blocks until the proof is fully checked, a clause fails to verify, a
// worker panics, or Cancel is triggered (workers already stalled at that
// point only exit once Supervisor.NotifyCancelled wakes them). Inspect r.Supervisor.Result() and
// r.Supervisor.State() after Execute returns.
func (r *Run) Execute(threads int, complete bool) {
	r.Supervisor.Start(r.Store, threads, complete)

	var wg sync.WaitGroup
	wg.Add(len(r.Supervisor.workers))
	for i := range r.Supervisor.workers {
		go func(id int) {
			defer wg.Done()
			runWorker(r, id)
		}(i)
	}
	wg.Wait()
}

func runWorker(r *Run, id int) {
	defer func() {
		if recover() != nil {
			r.Supervisor.WorkerErrorOccurred()
		}
	}()

	view := NewView(r.Store)
	for {
		work := r.Supervisor.GetWork(id)
		switch work.Kind {
		case WorkDispatch:
			result := dispatch(view, r.Supervisor, r.Store, work.ClauseIndex)
			r.Supervisor.WorkerFinished(work, result)
		case WorkStall:
			r.Supervisor.workers[id].stall()
		case WorkFinished:
			return
		}
	}
}

func dispatch(view *View, sup *Supervisor, s *store.Store, clauseIndex int) bool {
	if clauseIndex < 0 {
		view.Reset()
		return RupVerify(view, sup, -1)
	}

	switch s.Clauses[clauseIndex].Kind {
	case store.KindRUP:
		view.Reset()
		return RupVerify(view, sup, clauseIndex)
	case store.KindAdmissibility:
		c := &s.Clauses[clauseIndex]
		return AdmissibilityVerify(view, sup, clauseIndex, c.AttackIndex, c.AttackIndex >= 0)
	case store.KindStability:
		return StabilityVerify(view, sup, clauseIndex)
	default:
		panic("engine: clause scheduled for verification has no verifier kind")
	}
}
