// Package little — tour assembly and cost accounting.
//
// A feasible leaf carries exactly n included arcs. Assembly follows the
// single-successor chain from city 0 and accepts only a full Hamiltonian
// cycle: n distinct cities, closing back to 0. Anything else is an
// internal consistency failure — the leaf is rejected rather than
// surfacing a malformed tour. Cost is summed over the ORIGINAL (unreduced)
// matrix, closing edge included.

package little

import (
	"math"

	"github.com/littletsp/littletsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drift across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 { return math.Round(x*roundScale) / roundScale }

// assembleTour converts a leaf's included arcs into a closed tour
// (len n+1, tour[0] == tour[n] == 0) and its total cost over orig.
// ok is false when the arc set does not describe one Hamiltonian cycle.
//
// Complexity: O(n) walk + O(n) cost accumulation.
func assembleTour(included []Arc, n int, orig *matrix.Dense) (tour []int, cost float64, ok bool) {
	if len(included) != n {
		return nil, 0, false
	}

	// Successor table; duplicate out- or in-degree rejects the leaf.
	var (
		next = make([]int, n)
		seen = make([]bool, n)
		i    int
		a    Arc
	)
	for i = 0; i < n; i++ {
		next[i] = -1
	}
	for _, a = range included {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return nil, 0, false
		}
		if next[a.From] != -1 || seen[a.To] {
			return nil, 0, false
		}
		next[a.From] = a.To
		seen[a.To] = true
	}

	// Walk the chain from the fixed start (city 0).
	var (
		visited = make([]bool, n)
		u       = 0
	)
	tour = make([]int, n+1)
	for i = 0; i < n; i++ {
		if u == -1 || visited[u] {
			return nil, 0, false // dead end or revisit before n cities
		}
		visited[u] = true
		tour[i] = u
		u = next[u]
	}
	if u != 0 {
		return nil, 0, false // chain does not close back to the start
	}
	tour[n] = 0

	// Total original cost along consecutive tour edges (closing included).
	var (
		sum float64
		w   float64
		err error
	)
	for i = 0; i < n; i++ {
		w, err = orig.At(tour[i], tour[i+1])
		if err != nil || !matrix.IsCost(w) {
			return nil, 0, false
		}
		sum += w
	}

	return tour, round1e9(sum), true
}
