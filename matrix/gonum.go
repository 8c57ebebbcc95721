// Package matrix — gonum interop.
//
// FromGonum lets callers that already hold distances in a gonum matrix
// (mat.Dense, mat.SymDense, …) feed the solver without an intermediate
// [][]float64 copy of their own.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromGonum builds a Dense from any gonum mat.Matrix. Values are copied;
// the source is never retained. NaN entries are rejected; ±Inf entries
// are carried over as sentinels (gonum conventionally uses +Inf for
// "no edge", which matches Forbidden here).
//
// Complexity: O(r·c) time and memory.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	var r, c = src.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	var (
		out  = &Dense{r: r, c: c, data: make([]float64, r*c)}
		i, j int
		x    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x = src.At(i, j)
			if math.IsNaN(x) {
				return nil, ErrNaN
			}
			out.data[i*c+j] = x
		}
	}

	return out, nil
}
