package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Forbidden is the sentinel for "no edge allowed here": self-loops,
// eliminated rows/columns, and reverse arcs of committed inclusions.
func Forbidden() float64 { return math.Inf(1) }

// Excluded is the sentinel for an arc ruled out by an explicit search
// decision. Distinct from Forbidden so traces can render the two apart.
func Excluded() float64 { return math.Inf(-1) }

// IsForbidden reports whether x is the Forbidden sentinel.
func IsForbidden(x float64) bool { return math.IsInf(x, 1) }

// IsExcluded reports whether x is the Excluded sentinel.
func IsExcluded(x float64) bool { return math.IsInf(x, -1) }

// IsCost reports whether x is a real (finite) cost, i.e. neither sentinel
// nor NaN. Only IsCost values participate in reduction arithmetic.
func IsCost(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular [][]float64. The input is
// copied; later mutations of rows do not alias the matrix. NaN entries are
// rejected; ±Inf entries are accepted as sentinels.
//
// Complexity: O(r·c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	var (
		r = len(rows)
		c = len(rows[0])
	)
	if c == 0 {
		return nil, ErrBadShape
	}

	var (
		m    = &Dense{r: r, c: c, data: make([]float64, r*c)}
		i, j int
		x    float64
	)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		for j = 0; j < c; j++ {
			x = rows[i][j]
			if math.IsNaN(x) {
				return nil, ErrNaN
			}
			m.data[i*c+j] = x
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Sentinels (±Inf) are legal values;
// NaN is rejected.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return ErrNaN
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy. Branch nodes rely on this for value
// semantics: sibling branches never alias each other's matrices.
//
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Snapshot returns the matrix contents as a fresh [][]float64, sentinels
// included. Trace records embed snapshots so visualizers can render any
// step without touching live engine state.
//
// Complexity: O(r·c).
func (m *Dense) Snapshot() [][]float64 {
	out := make([][]float64, m.r)

	var i int
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// RowMin returns the minimum IsCost value in row i, ignoring column
// skipCol (pass -1 to consider every column). ok is false when the row
// holds no finite cell at all.
//
// Complexity: O(c).
func (m *Dense) RowMin(i, skipCol int) (min float64, ok bool) {
	if i < 0 || i >= m.r {
		return 0, false
	}
	var (
		j    int
		x    float64
		base = i * m.c
	)
	min = math.Inf(1)
	for j = 0; j < m.c; j++ {
		if j == skipCol {
			continue
		}
		x = m.data[base+j]
		if IsCost(x) && x < min {
			min, ok = x, true
		}
	}
	if !ok {
		return 0, false
	}

	return min, true
}

// ColMin returns the minimum IsCost value in column j, ignoring row
// skipRow (pass -1 to consider every row). ok is false when the column
// holds no finite cell at all.
//
// Complexity: O(r).
func (m *Dense) ColMin(j, skipRow int) (min float64, ok bool) {
	if j < 0 || j >= m.c {
		return 0, false
	}
	var (
		i int
		x float64
	)
	min = math.Inf(1)
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		x = m.data[i*m.c+j]
		if IsCost(x) && x < min {
			min, ok = x, true
		}
	}
	if !ok {
		return 0, false
	}

	return min, true
}

// EliminateRowCol fills row `row` and column `col` with the Forbidden
// sentinel. Used when an arc (row→col) is committed: the city is left via
// `row` exactly once and entered via `col` exactly once.
//
// Complexity: O(r+c).
func (m *Dense) EliminateRowCol(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}
	var (
		k   int
		inf = math.Inf(1)
	)
	for k = 0; k < m.c; k++ {
		m.data[row*m.c+k] = inf
	}
	for k = 0; k < m.r; k++ {
		m.data[k*m.c+col] = inf
	}

	return nil
}

// String implements fmt.Stringer for debugging; sentinels render as "M"
// (Forbidden) and "X" (Excluded).
func (m *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
		x    float64
	)
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			x = m.data[i*m.c+j]
			switch {
			case IsForbidden(x):
				b.WriteByte('M')
			case IsExcluded(x):
				b.WriteByte('X')
			default:
				fmt.Fprintf(&b, "%g", x)
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
