package engine

import (
	"sync"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"go.uber.org/atomic"
)

// State is the Supervisor's lifecycle state.
type State uint32

const (
	StateNotStarted State = iota
	StateWorking
	StateParsingFailed
	StateRequiredArgumentInconsistent
	StateFinished
	StateUnexpectedError
)

// WorkKind tells a worker what to do next.
type WorkKind int

const (
	WorkDispatch WorkKind = iota
	WorkStall
	WorkFinished
)

// Work is one instruction handed to a worker by GetWork. ClauseIndex is
// only meaningful when Kind is WorkDispatch; a negative value means
// "verify the empty clause".
type Work struct {
	Kind        WorkKind
	ClauseIndex int
}

// Result is the terminal outcome of a run, valid once State is Finished or
// RequiredArgumentInconsistent.
type Result struct {
	Successful        bool
	FailedClauseIndex int
	FailedEmptyClause bool
}

// Supervisor distributes clause-verification work to a fixed pool of
// workers, supports lazy (demand-driven) scheduling via a stall/wake
// protocol, and aggregates the final verdict. All of its mutable
// scheduling state lives behind one mutex; its result scalars are atomics
// so GetWork/WorkerFinished never need to block a reader of the result.
type Supervisor struct {
	cancel *CancellationToken
	state  atomic.Uint32

	workers []*Worker

	mu              sync.Mutex
	toCheck         []int // LIFO; a negative entry means "the empty clause"
	stalled         []int
	deployedWorkers int

	verificationSuccessful   atomic.Bool
	failedClauseIndex        atomic.Int64
	failedEmptyClauseVerif   atomic.Bool
	firstClauseIndexToVerify atomic.Int64
}

// NewSupervisor creates a Supervisor that observes cancel for early
// termination (timeouts, signals).
func NewSupervisor(cancel *CancellationToken) *Supervisor {
	sup := &Supervisor{cancel: cancel}
	sup.verificationSuccessful.Store(true)
	sup.state.Store(uint32(StateNotStarted))
	return sup
}

func (s *Supervisor) State() State {
	return State(s.state.Load())
}

func (s *Supervisor) setState(st State) {
	s.state.Store(uint32(st))
}

func (s *Supervisor) setFinished() {
	s.state.CAS(uint32(StateWorking), uint32(StateFinished))
}

// Start computes the deployed worker count (min(threads, clause count),
// at least one), builds the worker pool, seeds the initial work item (the
// empty clause), and — in complete mode — pre-marks every proof clause
// used and schedules it, so the run verifies the whole proof rather than
// only the clauses the empty clause's refutation happens to depend on.
func (s *Supervisor) Start(st *store.Store, threads int, complete bool) {
	deployed := threads
	if c := len(st.Clauses); c < deployed {
		deployed = c
	}
	if deployed < 1 {
		deployed = 1
	}

	s.deployedWorkers = deployed
	s.workers = make([]*Worker, deployed)
	for i := range s.workers {
		s.workers[i] = newWorker(i)
	}

	s.firstClauseIndexToVerify.Store(int64(st.ProofStart))
	s.toCheck = append(s.toCheck, -1)

	if complete {
		for i := st.ProofStart; i < len(st.Clauses); i++ {
			st.Clauses[i].SetUsed()
			s.toCheck = append(s.toCheck, i)
		}
	}

	s.setState(StateWorking)
}

// SetRequiredArgumentInconsistent short-circuits the run: an inconsistent
// set of required arguments makes the instance trivially correct (every
// extension is vacuously admissible/stable), so verification succeeds
// without running a single worker.
func (s *Supervisor) SetRequiredArgumentInconsistent() {
	s.verificationSuccessful.Store(true)
	s.setState(StateRequiredArgumentInconsistent)
}

// WorkerErrorOccurred records that a worker panicked and terminates the
// run.
func (s *Supervisor) WorkerErrorOccurred() {
	s.setState(StateUnexpectedError)
	s.wakeAllStalled()
}

// NotifyCancelled wakes every stalled worker after the run's
// CancellationToken has been triggered; each woken worker observes the
// token on its next GetWork and exits. Without this a worker stalled at
// cancellation time would sleep forever and Execute would never return.
func (s *Supervisor) NotifyCancelled() {
	s.wakeAllStalled()
}

// wakeAllStalled drains the stalled list under the mutex, then wakes the
// drained workers with no lock held.
func (s *Supervisor) wakeAllStalled() {
	s.mu.Lock()
	stalled := s.stalled
	s.stalled = nil
	s.mu.Unlock()
	for _, id := range stalled {
		s.workers[id].wakeUp()
	}
}

// GetWork returns the next instruction for the worker identified by
// workerIndex: a clause to check, an instruction to stall until woken, or
// termination.
func (s *Supervisor) GetWork(workerIndex int) Work {
	if s.cancel.ShouldStop() || s.State() != StateWorking {
		return Work{Kind: WorkFinished}
	}

	s.mu.Lock()

	if n := len(s.toCheck); n > 0 {
		idx := s.toCheck[n-1]
		s.toCheck = s.toCheck[:n-1]
		s.mu.Unlock()
		return Work{Kind: WorkDispatch, ClauseIndex: idx}
	}

	// Re-check under the mutex: a failure or cancellation that raced with
	// the lock-free check above must not let this worker stall after the
	// wake-everyone sweep has already run.
	if s.cancel.ShouldStop() || s.State() != StateWorking {
		s.mu.Unlock()
		return Work{Kind: WorkFinished}
	}

	if len(s.stalled) == s.deployedWorkers-1 {
		s.setFinished()
		stalled := s.stalled
		s.stalled = nil
		s.mu.Unlock()
		for _, id := range stalled {
			s.workers[id].wakeUp()
		}
		return Work{Kind: WorkFinished}
	}

	s.stalled = append(s.stalled, workerIndex)
	s.mu.Unlock()
	return Work{Kind: WorkStall}
}

// WorkerFinished records the outcome of verifying work. A failure is
// terminal: it fixes the failing clause (or flags the empty clause) and
// ends the run immediately, without waiting for other in-flight work.
func (s *Supervisor) WorkerFinished(work Work, result bool) {
	if result {
		return
	}
	s.verificationSuccessful.Store(false)
	if work.ClauseIndex >= 0 {
		s.failedClauseIndex.Store(int64(work.ClauseIndex))
	} else {
		s.failedEmptyClauseVerif.Store(true)
	}
	s.setFinished()
	s.wakeAllStalled()
}

// AddClauseToCheck schedules clauseIndex for verification, waking a
// stalled worker if one is available. Clauses that are not part of the
// proof (original framework attacks) are silently ignored.
func (s *Supervisor) AddClauseToCheck(clauseIndex int) {
	if int64(clauseIndex) < s.firstClauseIndexToVerify.Load() {
		return
	}

	s.mu.Lock()
	s.toCheck = append(s.toCheck, clauseIndex)
	wake := -1
	if n := len(s.stalled); n > 0 {
		wake = s.stalled[n-1]
		s.stalled = s.stalled[:n-1]
	}
	s.mu.Unlock()

	if wake >= 0 {
		s.workers[wake].wakeUp()
	}
}

// Result reports the final verdict. Only meaningful once State is
// StateFinished or StateRequiredArgumentInconsistent.
func (s *Supervisor) Result() Result {
	return Result{
		Successful:        s.verificationSuccessful.Load(),
		FailedClauseIndex: int(s.failedClauseIndex.Load()),
		FailedEmptyClause: s.failedEmptyClauseVerif.Load(),
	}
}
