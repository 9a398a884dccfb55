// Package report_test contains unit tests for table validation, the
// harmonic consistency check and the derived report quantities.
package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muonsuite/govib/pkg/grid"
	"github.com/muonsuite/govib/pkg/report"
)

func diag(a, b, c float64) grid.Tensor {
	return grid.Tensor{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

func TestDipolarParamsDominantHigh(t *testing.T) {
	t.Parallel()

	// traceless eigenvalues [-2,-1,3]: anisotropy on the highest
	d1, d2, err := report.DipolarParams(diag(-2, -1, 3))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d1, 1e-12)
	assert.InDelta(t, 1.0, d2, 1e-12)
}

func TestDipolarParamsDominantLow(t *testing.T) {
	t.Parallel()

	// eigenvalues [-3,1,2]: anisotropy on the lowest
	d1, d2, err := report.DipolarParams(diag(1, -3, 2))
	require.NoError(t, err)
	assert.InDelta(t, -3.0, d1, 1e-12)
	assert.InDelta(t, 1.0, d2, 1e-12)
}

func TestDipolarParamsIsotropicInvariance(t *testing.T) {
	t.Parallel()

	// adding c*I only shifts the isotropic part
	d1a, d2a, err := report.DipolarParams(diag(-2, -1, 3))
	require.NoError(t, err)
	d1b, d2b, err := report.DipolarParams(diag(-2+10, -1+10, 3+10))
	require.NoError(t, err)
	assert.InDelta(t, d1a, d1b, 1e-10)
	assert.InDelta(t, d2a, d2b, 1e-10)
}

func TestDipolarParamsSymmetrizes(t *testing.T) {
	t.Parallel()

	// slightly asymmetric input is averaged with its transpose
	asym := grid.Tensor{{-2, 0.1, 0}, {-0.1, -1, 0}, {0, 0, 3}}
	sym := grid.Tensor{{-2, 0, 0}, {0, -1, 0}, {0, 0, 3}}
	d1a, d2a, err := report.DipolarParams(asym)
	require.NoError(t, err)
	d1s, d2s, err := report.DipolarParams(sym)
	require.NoError(t, err)
	assert.InDelta(t, d1s, d1a, 1e-12)
	assert.InDelta(t, d2s, d2a, 1e-12)
}
