package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muonsuite/govib/pkg/grid"
	"github.com/muonsuite/govib/pkg/report"
)

func TestHyperfine(t *testing.T) {
	t.Parallel()

	tensors := []grid.Tensor{
		diag(3, 3, 3),  // iso 3
		diag(6, 6, 6),  // iso 6
		diag(12, 9, 9), // iso 10
	}
	avg := diag(-2, -1, 3)

	r, err := report.Hyperfine("mu", tensors, avg, []float64{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, "mu", r.Label)
	assert.InDelta(t, (3.0+6.0+10.0)/3.0, r.Iso, 1e-12)
	assert.InDelta(t, 3.0, r.D1, 1e-12)
	assert.InDelta(t, 1.0, r.D2, 1e-12)
}

func TestHyperfineZeroWeights(t *testing.T) {
	t.Parallel()

	_, err := report.Hyperfine("mu", []grid.Tensor{diag(1, 1, 1)}, diag(1, 1, 1), []float64{0})
	require.Error(t, err)
}

func TestHyperfineReportWriteTo(t *testing.T) {
	t.Parallel()

	r := &report.HyperfineReport{Label: "H 4 (ipso)", Iso: 12.5, D1: 3, D2: 1}
	var sb strings.Builder
	_, err := r.WriteTo(&sb)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "Predicted hyperfine coupling on labeled atom (H 4 (ipso)): 12.5 MHz")
	assert.Contains(t, out, "D1:\t3 MHz")
	assert.Contains(t, out, "D2:\t1 MHz")
}
