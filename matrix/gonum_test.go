package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/littletsp/littletsp/matrix"
)

func TestFromGonum(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	// Values are copied; mutating the source afterwards changes nothing.
	src.Set(0, 0, 99)
	v, err = d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestFromGonum_InfBecomesSentinel(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{math.Inf(1), 2, 3, 4})

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.True(t, matrix.IsForbidden(v))
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	src := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum(src)
	assert.ErrorIs(t, err, matrix.ErrNaN)
}
