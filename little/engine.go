// Package little — the best-first branch-and-bound engine.
//
// The engine is an explicit resumable state machine (a dedicated struct,
// not a host of mutable closures): every Next call advances the search
// until exactly one StepRecord is produced, then suspends. Driving Next to
// exhaustion is a complete run; stopping between calls aborts cleanly,
// since all state lives in the frontier plus the incumbent.
//
// States: Initialize → Pop ⇄ Branch → Done. Terminal checks, pruning, and
// draining happen inside the Pop loop (they emit no records of their own):
//   - bound ≥ incumbent at the heap top drains the search — best-first
//     order guarantees no remaining node can contain a better tour;
//   - level == n attempts tour assembly and may update the incumbent;
//   - a node with no zero cell (no branching candidate) is discarded.
//
// Invariants:
//   - Child bounds never decrease: each child adds a non-negative
//     reduction total (plus a non-negative arc cost) to its parent bound.
//   - The root bound is a valid lower bound on any tour cost.
//   - No mutable state crosses branch-node boundaries: every child clones
//     its matrix and copies its arc sets.

package little

import (
	"fmt"
	"math"
	"time"

	"github.com/littletsp/littletsp/matrix"
)

// engineState enumerates the resumable machine's suspension points.
type engineState uint8

const (
	stateInit   engineState = iota // nothing run yet
	statePop                       // pop/prune/terminal-check loop
	stateBranch                    // regret emitted; children pending
	stateDone                      // trace complete (or run aborted)
)

// Stepper is the resumable Little branch-and-bound engine.
// Create one with NewStepper or NewStepperDense; call Next until it
// reports done; then collect Result.
type Stepper struct {
	n      int
	labels []string
	opts   Options

	// orig holds the caller's costs untouched; final tour costs are summed
	// here, never over reduced values.
	orig *matrix.Dense

	state engineState
	front frontier

	// cur/pick bridge the regret record and the branch record: the node is
	// popped and its arc selected in statePop, its children are built on
	// the following Next call in stateBranch.
	cur  *branchNode
	pick Arc

	best     []int
	bestCost float64
	found    bool

	trace []StepRecord

	useDeadline bool
	deadline    time.Time

	finished bool
	err      error
}

// NewStepper validates the inputs and prepares (but does not start) a
// search over an n×n cost grid. The grid is copied; the caller's slices
// are never retained.
//
// Errors: ErrInsufficientCities, ErrNonSquare, ErrNaNInf,
// ErrNonPositiveWeight, ErrBadLabels, ErrBadOptions.
func NewStepper(costs [][]float64, labels []string, opts Options) (*Stepper, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	n, err := validateCosts(costs)
	if err != nil {
		return nil, err
	}
	if err = validateLabels(labels, n); err != nil {
		return nil, err
	}
	orig, err := matrix.FromRows(costs)
	if err != nil {
		return nil, ErrNaNInf
	}

	return newStepper(orig, n, labels, opts), nil
}

// NewStepperDense is NewStepper for a pre-built *matrix.Dense (for
// example one ingested via matrix.FromGonum). The matrix is cloned.
// A nil matrix yields ErrNilMatrix.
func NewStepperDense(d *matrix.Dense, labels []string, opts Options) (*Stepper, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	n, err := validateDense(d)
	if err != nil {
		return nil, err
	}
	if err = validateLabels(labels, n); err != nil {
		return nil, err
	}

	return newStepper(d.Clone(), n, labels, opts), nil
}

// newStepper wires the validated pieces together.
func newStepper(orig *matrix.Dense, n int, labels []string, opts Options) *Stepper {
	s := &Stepper{
		n:        n,
		labels:   append([]string(nil), labels...),
		opts:     opts,
		orig:     orig,
		state:    stateInit,
		bestCost: math.Inf(1),
	}
	if opts.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = time.Now().Add(opts.TimeLimit)
	}

	return s
}

// Next advances the search until one StepRecord is produced.
// ok is false when the trace is complete; err is non-nil only for run
// aborts (ErrTimeLimit) or a search that exhausted the frontier without a
// feasible leaf (ErrNoFeasibleTour). Calling Next after completion keeps
// returning (zero, false, same err).
func (s *Stepper) Next() (rec StepRecord, ok bool, err error) {
	if s.finished {
		return StepRecord{}, false, s.err
	}

	switch s.state {
	case stateInit:
		return s.initialize(), true, nil
	case statePop:
		return s.popLoop()
	case stateBranch:
		return s.branch(), true, nil
	default:
		return StepRecord{}, false, s.err
	}
}

// Trace returns the records produced so far, in order. The slice is the
// engine's own append-only log: callers must treat it as read-only.
func (s *Stepper) Trace() []StepRecord { return s.trace }

// Done reports whether the search has finished (successfully or not).
func (s *Stepper) Done() bool { return s.finished }

// Result returns the outcome once the search has finished.
// Errors: ErrUnfinished before completion; ErrTimeLimit or
// ErrNoFeasibleTour when the run ended without an optimal tour.
func (s *Stepper) Result() (Result, error) {
	if !s.finished {
		return Result{}, ErrUnfinished
	}
	if s.err != nil {
		return Result{}, s.err
	}

	var res Result
	res.Tour = append([]int(nil), s.best...)
	res.Cost = s.bestCost
	if len(s.labels) > 0 {
		res.Labels = append([]string(nil), s.labels...)
	}
	res.Trace = s.trace

	return res, nil
}

// initialize builds the root: diagonal to Forbidden, one reduction, one
// node on the frontier, one reduction record.
func (s *Stepper) initialize() StepRecord {
	var (
		working = s.orig.Clone()
		i       int
	)
	for i = 0; i < s.n; i++ {
		_ = working.Set(i, i, matrix.Forbidden()) // indices in range by construction
	}

	red, total, _ := matrix.Reduce(working)
	s.front.push(&branchNode{mat: red, bound: total, level: 0})
	s.state = statePop

	return s.emit(StepRecord{
		Kind:        StepReduction,
		Matrix:      red.Snapshot(),
		Bound:       total,
		Description: fmt.Sprintf("initial reduction subtracted %g; root bound %g", total, total),
	})
}

// popLoop is the Pop/Terminal-Check/Prune/Drain loop. It runs until a node
// needs branching (emitting its regret record) or the search finishes.
func (s *Stepper) popLoop() (StepRecord, bool, error) {
	var (
		nd   *branchNode
		pick Arc
		reg  float64
		grid [][]float64
		ok   bool
	)
	for {
		// Cooperative cancellation point: top of Pop.
		if s.useDeadline && time.Now().After(s.deadline) {
			s.finished = true
			s.state = stateDone
			s.err = ErrTimeLimit

			return StepRecord{}, false, s.err
		}

		nd = s.front.pop()
		if nd == nil {
			return s.finish()
		}

		// Drain: the heap is bound-ordered, so once the top cannot beat the
		// incumbent, nothing below it can either.
		if nd.bound >= s.bestCost {
			return s.finish()
		}

		// Terminal check: a full set of n arcs is a candidate leaf.
		if nd.level == s.n {
			if tour, cost, valid := assembleTour(nd.included, s.n, s.orig); valid && cost < s.bestCost {
				s.best = tour
				s.bestCost = cost
				s.found = true
			}

			continue
		}

		pick, reg, grid, ok = bestRegret(nd.mat, !s.opts.LeanTrace)
		if !ok {
			continue // no branching candidate; discard the node
		}

		s.cur = nd
		s.pick = pick
		s.state = stateBranch
		arc := pick

		return s.emit(StepRecord{
			Kind:        StepRegret,
			Matrix:      nd.mat.Snapshot(),
			Bound:       nd.bound,
			Arc:         &arc,
			Regrets:     grid,
			Description: fmt.Sprintf("selected zero cell %s with regret %g", pick, reg),
		}), true, nil
	}
}

// branch materializes both children of the stashed node and emits the
// branch record describing their bounds and side effects.
func (s *Stepper) branch() StepRecord {
	var (
		nd   = s.cur
		pick = s.pick
	)
	s.cur = nil
	s.state = statePop

	// Exclude child: ban the arc, re-reduce, bound rises by the reduction.
	em := nd.mat.Clone()
	_ = em.Set(pick.From, pick.To, matrix.Excluded())
	eRed, eTotal, _ := matrix.Reduce(em)
	excludeBound := nd.bound + eTotal
	if excludeBound < s.bestCost {
		s.front.push(&branchNode{
			mat:      eRed,
			bound:    excludeBound,
			level:    nd.level,
			included: copyArcs(nd.included),
			excluded: withArc(nd.excluded, pick),
		})
	}

	// Include child: commit the arc, eliminate its row/column, forbid the
	// reverse arc, consult the connectivity guard, re-reduce.
	var (
		includeBound = math.Inf(1)
		blocked      []Arc
		pruned       bool
		snapshot     [][]float64
	)
	arcCost, _ := nd.mat.At(pick.From, pick.To)
	verdict := checkInclude(s.n, nd.included, pick, nd.level+1 == s.n)
	if verdict.premature {
		pruned = true
		snapshot = eRed.Snapshot()
	} else {
		im := nd.mat.Clone()
		_ = im.EliminateRowCol(pick.From, pick.To)
		_ = im.Set(pick.To, pick.From, matrix.Forbidden())
		if verdict.hasBlock {
			blocked = append(blocked, verdict.blocked)
			if verdict.blocked != (Arc{From: pick.To, To: pick.From}) {
				// The reverse arc is already Forbidden; only distinct
				// closing arcs need the exclusion sentinel.
				_ = im.Set(verdict.blocked.From, verdict.blocked.To, matrix.Excluded())
			}
		}
		iRed, iTotal, _ := matrix.Reduce(im)
		includeBound = nd.bound + arcCost + iTotal
		snapshot = iRed.Snapshot()
		if includeBound < s.bestCost {
			s.front.push(&branchNode{
				mat:      iRed,
				bound:    includeBound,
				level:    nd.level + 1,
				included: withArc(nd.included, pick),
				excluded: copyArcs(nd.excluded),
			})
		}
	}

	arc := pick

	return s.emit(StepRecord{
		Kind:         StepBranch,
		Matrix:       snapshot,
		Bound:        nd.bound,
		Arc:          &arc,
		ExcludeBound: excludeBound,
		IncludeBound: includeBound,
		Blocked:      blocked,
		CyclePruned:  pruned,
		Description:  describeBranch(pick, excludeBound, includeBound, blocked, pruned),
	})
}

// finish closes the run: a final record when an incumbent exists,
// ErrNoFeasibleTour otherwise.
func (s *Stepper) finish() (StepRecord, bool, error) {
	s.finished = true
	s.state = stateDone

	if !s.found {
		s.err = ErrNoFeasibleTour

		return StepRecord{}, false, s.err
	}

	return s.emit(StepRecord{
		Kind:        StepFinal,
		Bound:       s.bestCost,
		Description: fmt.Sprintf("optimal tour %s, cost %g", fmtTour(s.best), s.bestCost),
	}), true, nil
}
