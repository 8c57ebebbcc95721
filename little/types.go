// Package little: public types and sentinel error set.
// All solver surfaces MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package little

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInsufficientCities is returned when n < 3: no run is attempted and
	// no partial state is produced.
	ErrInsufficientCities = errors.New("little: fewer than 3 cities")

	// ErrNonSquare signals a cost grid whose row count and column counts disagree.
	ErrNonSquare = errors.New("little: cost matrix is not square")

	// ErrNilMatrix signals a nil *matrix.Dense argument.
	ErrNilMatrix = errors.New("little: nil cost matrix")

	// ErrNonPositiveWeight signals an off-diagonal cost ≤ 0. The diagonal is
	// ignored (replaced internally with the forbidden sentinel).
	ErrNonPositiveWeight = errors.New("little: off-diagonal cost must be positive")

	// ErrNaNInf signals a NaN or ±Inf off-diagonal cost. Sentinels are an
	// internal representation; callers supply finite costs only.
	ErrNaNInf = errors.New("little: off-diagonal cost must be finite")

	// ErrBadLabels signals a label slice of the wrong length, or with empty
	// or duplicate entries.
	ErrBadLabels = errors.New("little: invalid city labels")

	// ErrBadOptions signals an internally inconsistent Options value
	// (currently: a negative TimeLimit).
	ErrBadOptions = errors.New("little: invalid options")

	// ErrNoFeasibleTour is returned when the frontier empties without ever
	// reaching a feasible leaf. It cannot occur for a fully-connected
	// finite-cost matrix but is surfaced rather than returning a degenerate
	// result.
	ErrNoFeasibleTour = errors.New("little: no feasible tour")

	// ErrTimeLimit is returned when a positive time budget is exceeded.
	ErrTimeLimit = errors.New("little: time limit exceeded")

	// ErrUnfinished is returned by Stepper.Result before the search has
	// been driven to completion.
	ErrUnfinished = errors.New("little: search not finished")
)

// Arc is a directed city pair committed to (or banned from) a tour.
// Arcs are value types: they are copied, never shared, across branch nodes.
type Arc struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// String renders the arc as "from→to".
func (a Arc) String() string { return fmt.Sprintf("%d→%d", a.From, a.To) }

// StepKind classifies a StepRecord.
type StepKind uint8

const (
	// StepReduction — the initial matrix reduction that sets the root bound.
	StepReduction StepKind = iota

	// StepRegret — a regret evaluation that selected the branching arc.
	StepRegret

	// StepBranch — the two children (exclude/include) computed for the
	// selected arc, including any subtour arcs blocked and cycle prunes.
	StepBranch

	// StepFinal — the terminal record carrying the incumbent tour and cost.
	StepFinal
)

// String implements fmt.Stringer for StepKind.
func (k StepKind) String() string {
	switch k {
	case StepReduction:
		return "reduction"
	case StepRegret:
		return "regret"
	case StepBranch:
		return "branch"
	case StepFinal:
		return "final"
	default:
		return "unknown"
	}
}

// StepRecord is one immutable snapshot per algorithm decision. Records are
// append-only and ordered by Seq; they are the sole channel to external
// visualizers. Matrix and Regrets are fresh copies — mutating them cannot
// affect the engine.
//
// Sentinel rendering in Matrix snapshots: +Inf is a forbidden cell,
// −Inf is an explicitly excluded arc (see package matrix).
type StepRecord struct {
	// Seq is the zero-based position of this record in the trace.
	Seq int

	// Kind classifies the decision.
	Kind StepKind

	// Matrix is a snapshot of the working matrix after the decision
	// (nil when Options.LeanTrace is set).
	Matrix [][]float64

	// Bound is the lower bound of the node the decision was made on.
	Bound float64

	// Description is a short human-readable account of the decision.
	Description string

	// Arc is the selected branching arc (regret and branch records only).
	Arc *Arc

	// Regrets holds, for regret records, the per-cell regret of every
	// zero cell; non-zero cells are NaN. Nil when LeanTrace is set.
	Regrets [][]float64

	// ExcludeBound and IncludeBound are the child bounds computed by a
	// branch record. IncludeBound is +Inf when the include child was
	// discarded as a premature cycle.
	ExcludeBound float64
	IncludeBound float64

	// Blocked lists closing arcs set to the exclusion sentinel in the
	// include child to prevent a subtour (branch records only).
	Blocked []Arc

	// CyclePruned is true when the include child would have closed a cycle
	// before all n cities were chained and was discarded.
	CyclePruned bool
}

// Options configures a solver run. The zero value is valid and equals
// DefaultOptions().
type Options struct {
	// TimeLimit is a soft budget for the whole search; 0 means unlimited.
	// Exceeding it surfaces ErrTimeLimit. Checked cooperatively at the top
	// of the Pop state, so playback state is never corrupted mid-step.
	TimeLimit time.Duration

	// LeanTrace omits matrix and regret snapshots from StepRecords.
	// Decisions, bounds, and arcs are still recorded. Useful for large n
	// where O(steps·n²) snapshot memory is unwanted.
	LeanTrace bool
}

// DefaultOptions returns the canonical solver configuration: unlimited
// time, full trace snapshots.
func DefaultOptions() Options { return Options{} }

// Result is the outcome of a completed search.
type Result struct {
	// Tour is the optimal Hamiltonian cycle, closed: len(Tour) == n+1 and
	// Tour[0] == Tour[n] == 0. Tour[:n] is a permutation of all n cities.
	Tour []int

	// Cost is the total of original matrix entries along the cyclic tour,
	// including the closing edge, stabilized to 1e-9.
	Cost float64

	// Labels echoes the caller's display labels (nil when none were given).
	Labels []string

	// Trace is the ordered, append-only decision log of the run.
	Trace []StepRecord
}
