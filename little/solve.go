// Package little — one-shot entry points.
//
// Solve and SolveDense drive the resumable Stepper to completion in a
// single pass. The core stays a pure function from (matrix, labels) to
// (tour, cost, trace): no global state, no callbacks, no I/O.

package little

import "github.com/littletsp/littletsp/matrix"

// Solve runs the full search on an n×n cost grid (n ≥ 3, finite positive
// off-diagonal costs; the diagonal is ignored) and returns the optimal
// tour, its cost, and the complete decision trace.
//
// Determinism: identical inputs yield identical Results, trace included.
//
// Errors: validation sentinels from NewStepper, plus ErrTimeLimit and
// ErrNoFeasibleTour from the run itself.
func Solve(costs [][]float64, labels []string, opts Options) (Result, error) {
	s, err := NewStepper(costs, labels, opts)
	if err != nil {
		return Result{}, err
	}

	return drive(s)
}

// SolveDense is Solve for a pre-built *matrix.Dense (for example one
// ingested via matrix.FromGonum).
func SolveDense(d *matrix.Dense, labels []string, opts Options) (Result, error) {
	s, err := NewStepperDense(d, labels, opts)
	if err != nil {
		return Result{}, err
	}

	return drive(s)
}

// drive steps s to exhaustion and collects the result.
func drive(s *Stepper) (Result, error) {
	var (
		ok  bool
		err error
	)
	for {
		_, ok, err = s.Next()
		if err != nil {
			return Result{}, err
		}
		if !ok {
			break
		}
	}

	return s.Result()
}
