// Package little — validation utilities shared by all entry points.
//
// Design principles (mirrored across the module):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n²) worst case; no hidden allocations beyond the uniqueness set.

package little

import (
	"math"

	"github.com/littletsp/littletsp/matrix"
)

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}

	return nil
}

// validateCosts verifies an n×n cost grid and returns n.
//
// Contract:
//   - square, n ≥ 3;
//   - every off-diagonal entry finite and strictly positive;
//   - diagonal entries are ignored entirely (the engine replaces them with
//     the forbidden sentinel).
//
// Complexity: O(n²).
func validateCosts(costs [][]float64) (int, error) {
	var n = len(costs)
	if n < 3 {
		return 0, ErrInsufficientCities
	}

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return 0, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			x = costs[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, ErrNaNInf
			}
			if x <= 0 {
				return 0, ErrNonPositiveWeight
			}
		}
	}

	return n, nil
}

// validateDense applies the validateCosts contract to a *matrix.Dense.
//
// Complexity: O(n²).
func validateDense(d *matrix.Dense) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	var n = d.Rows()
	if n != d.Cols() {
		return 0, ErrNonSquare
	}
	if n < 3 {
		return 0, ErrInsufficientCities
	}

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			x, err = d.At(i, j)
			if err != nil {
				return 0, ErrNonSquare
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, ErrNaNInf
			}
			if x <= 0 {
				return 0, ErrNonPositiveWeight
			}
		}
	}

	return n, nil
}

// validateLabels enforces the optional display-label contract: when labels
// are supplied, len(labels) == n with non-empty, unique entries.
//
// Complexity: O(n) time, O(n) space.
func validateLabels(labels []string, n int) error {
	if labels == nil {
		return nil
	}
	if len(labels) != n {
		return ErrBadLabels
	}

	var (
		seen = make(map[string]struct{}, n)
		i    int
		ok   bool
	)
	for i = 0; i < n; i++ {
		if labels[i] == "" {
			return ErrBadLabels
		}
		if _, ok = seen[labels[i]]; ok {
			return ErrBadLabels
		}
		seen[labels[i]] = struct{}{}
	}

	return nil
}
