package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muonsuite/govib/pkg/grid"
)

func diagTensor(v float64) grid.Tensor {
	return grid.Tensor{{v, 0, 0}, {0, v, 0}, {0, 0, v}}
}

func TestAverageOneHot(t *testing.T) {
	t.Parallel()

	tensors := [][]grid.Tensor{
		{diagTensor(1)},
		{diagTensor(2)},
		{diagTensor(3)},
	}
	avg, err := grid.Average(tensors, []float64{0, 1, 0})
	require.NoError(t, err)
	require.Len(t, avg, 1)
	assert.Equal(t, diagTensor(2), avg[0])
}

func TestAverageNormalizationInvariance(t *testing.T) {
	t.Parallel()

	tensors := [][]grid.Tensor{
		{diagTensor(1), diagTensor(-1)},
		{diagTensor(2), diagTensor(4)},
	}
	w := []float64{0.25, 0.75}
	a1, err := grid.Average(tensors, w)
	require.NoError(t, err)

	scaled := []float64{w[0] * 7.5, w[1] * 7.5}
	a2, err := grid.Average(tensors, scaled)
	require.NoError(t, err)

	for a := range a1 {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.InDelta(t, a1[a][i][j], a2[a][i][j], 1e-12)
			}
		}
	}
}

// Two modes, grid_n=3, unit weight everywhere: the average is the plain
// mean over the 6 grid points.
func TestAverageUniformWeights(t *testing.T) {
	t.Parallel()

	var tensors [][]grid.Tensor
	sum := 0.0
	for n := 0; n < 6; n++ {
		v := float64(n + 1)
		sum += v
		tensors = append(tensors, []grid.Tensor{diagTensor(v)})
	}
	w := []float64{1, 1, 1, 1, 1, 1}

	avg, err := grid.Average(tensors, w)
	require.NoError(t, err)
	assert.InDelta(t, sum/6.0, avg[0][0][0], 1e-12)
	assert.InDelta(t, sum/6.0, avg[0][1][1], 1e-12)
}

func TestAverageErrors(t *testing.T) {
	t.Parallel()

	tensors := [][]grid.Tensor{{diagTensor(1)}, {diagTensor(2)}}

	_, err := grid.Average(tensors, []float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrShapeMismatch))

	_, err = grid.Average(tensors, []float64{0, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrZeroWeight))

	_, err = grid.Average(tensors, []float64{1, -1})
	require.Error(t, err)

	ragged := [][]grid.Tensor{{diagTensor(1)}, {diagTensor(2), diagTensor(3)}}
	_, err = grid.Average(ragged, []float64{1, 1})
	require.Error(t, err)

	_, err = grid.Average(nil, nil)
	require.Error(t, err)
}

func TestWeightedScalarAverage(t *testing.T) {
	t.Parallel()

	v, err := grid.WeightedScalarAverage([]float64{1, 3}, []float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)

	v, err = grid.WeightedScalarAverage([]float64{1, 3}, []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)

	_, err = grid.WeightedScalarAverage([]float64{1}, []float64{0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrZeroWeight))
}
