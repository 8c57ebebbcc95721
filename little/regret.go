// Package little — regret evaluation (branching-arc selection).
//
// After reduction, every row and column of a live matrix holds at least one
// zero. Branching on an arbitrary zero is wasteful; Little's method picks
// the zero whose *exclusion* would be most expensive: its regret, the sum
// of the cheapest alternative in its row and in its column. Excluding a
// high-regret arc forces both alternatives into the tour, so the exclude
// child's bound rises the most — pruning it early.

package little

import (
	"math"

	"github.com/littletsp/littletsp/matrix"
)

// bestRegret scans d for cells equal to exactly zero and computes
// regret = (min finite value in the row, excluding this column)
//        + (min finite value in the column, excluding this row),
// with a missing finite alternative counting as zero.
//
// Selection rule: the zero cell with the strictly greatest regret wins;
// ties break by row-major scan order (first encountered). ok is false when
// the matrix holds no zero cell — the node has no branching candidate.
//
// When withGrid is true the full per-cell regret grid is returned for the
// trace (NaN marks non-zero cells); otherwise regrets is nil.
//
// Complexity: O(n²) zero scan with O(n) minima per zero cell.
func bestRegret(d *matrix.Dense, withGrid bool) (pick Arc, best float64, regrets [][]float64, ok bool) {
	var (
		n    = d.Rows()
		snap = d.Snapshot()
		i, j int
		rm   float64
		cm   float64
		rok  bool
		cok  bool
		r    float64
	)

	if withGrid {
		regrets = make([][]float64, n)
		for i = 0; i < n; i++ {
			regrets[i] = make([]float64, d.Cols())
			for j = 0; j < d.Cols(); j++ {
				regrets[i][j] = math.NaN()
			}
		}
	}

	best = -1 // any real regret (≥ 0) beats this
	for i = 0; i < n; i++ {
		for j = 0; j < len(snap[i]); j++ {
			if snap[i][j] != 0 {
				continue
			}
			rm, rok = d.RowMin(i, j)
			if !rok {
				rm = 0
			}
			cm, cok = d.ColMin(j, i)
			if !cok {
				cm = 0
			}
			r = rm + cm
			if withGrid {
				regrets[i][j] = r
			}
			// Strictly greater wins; row-major first-encountered on ties.
			if r > best {
				best = r
				pick = Arc{From: i, To: j}
				ok = true
			}
		}
	}
	if !ok {
		return Arc{}, 0, nil, false
	}

	return pick, best, regrets, true
}
