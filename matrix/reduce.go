// Package matrix — row/column reduction.
//
// Reduction subtracts each row's (then each column's) minimum finite value
// from every finite cell in that line. The sum of subtractions is a valid
// lower-bound contribution for any Hamiltonian cycle completable in the
// matrix: every city must be left exactly once (rows) and entered exactly
// once (columns), so each line's minimum is unavoidable.
//
// Design principles:
//   - Pure: the input is cloned, never mutated.
//   - Sentinel-safe: only IsCost values are scanned or rewritten; ±Inf
//     cells pass through reduction untouched.
//   - A line with no finite cell contributes zero and is skipped (an
//     already-infeasible line must not poison the total).

package matrix

// Reduce returns a reduced deep copy of m together with the total amount
// subtracted. Rows are reduced first, then columns (so column minima are
// taken over the row-reduced values).
//
// Contract:
//   - m must be non-nil; ErrNilMatrix otherwise.
//
// Complexity: O(r·c) time, O(r·c) space for the copy.
func Reduce(m *Dense) (*Dense, float64, error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}

	var (
		out   = m.Clone()
		total float64
		i, j  int
		min   float64
		ok    bool
		base  int
	)

	// Row pass.
	for i = 0; i < out.r; i++ {
		min, ok = out.RowMin(i, -1)
		if !ok || min <= 0 {
			continue // all-sentinel row, or already holds a zero
		}
		base = i * out.c
		for j = 0; j < out.c; j++ {
			if IsCost(out.data[base+j]) {
				out.data[base+j] -= min
			}
		}
		total += min
	}

	// Column pass (over row-reduced values).
	for j = 0; j < out.c; j++ {
		min, ok = out.ColMin(j, -1)
		if !ok || min <= 0 {
			continue
		}
		for i = 0; i < out.r; i++ {
			if IsCost(out.data[i*out.c+j]) {
				out.data[i*out.c+j] -= min
			}
		}
		total += min
	}

	return out, total, nil
}
