package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"

	"github.com/muonsuite/govib/pkg/phys"
	"github.com/muonsuite/govib/pkg/report"
)

// A perfectly harmonic energy table must come out with zero deviation
// after the per-mode normalization.
func TestHarmonicComparisonExact(t *testing.T) {
	t.Parallel()

	mass := phys.MuonMass
	omega := []float64{phys.OmegaFromWavenumber(1200)}
	R := []float64{0.15}
	gridN := 7

	x := make([]float64, gridN)
	floats.Span(x, -3*R[0], 3*R[0])
	row := make([]float64, gridN)
	offset := -250.0 // arbitrary absolute energy
	for j, xj := range x {
		xm := xj / phys.AngstromPerMeter
		row[j] = offset + 0.5*mass*omega[0]*omega[0]*xm*xm/phys.EV
	}

	h, err := report.NewHarmonicComparison(R, gridN, mass, omega, report.EnergyTable{row})
	require.NoError(t, err)
	require.Len(t, h.RMSD, 1)
	assert.InDelta(t, 0.0, h.RMSD[0], 1e-10)

	for j := range x {
		assert.InDelta(t, h.Harmonic[0][j], h.Sampled[0][j], 1e-10)
	}
}

// With an even grid the row minimum is the normalization reference.
func TestHarmonicComparisonEvenGrid(t *testing.T) {
	t.Parallel()

	mass := phys.MuonMass
	omega := []float64{phys.OmegaFromWavenumber(800)}
	R := []float64{0.2}
	gridN := 4

	E := report.EnergyTable{{5.0, 2.0, 2.0, 5.0}}
	h, err := report.NewHarmonicComparison(R, gridN, mass, omega, E)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, h.Sampled[0][0], 1e-12)
	assert.InDelta(t, 0.0, h.Sampled[0][1], 1e-12)
}

func TestHarmonicComparisonIncomplete(t *testing.T) {
	t.Parallel()

	omega := []float64{1e14}
	_, err := report.NewHarmonicComparison([]float64{0.2}, 5, phys.MuonMass, omega,
		report.EnergyTable{{1, 2, 3, 4}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, report.ErrIncompleteData))
}

func TestHarmonicComparisonWriteTo(t *testing.T) {
	t.Parallel()

	omega := []float64{1e14}
	h, err := report.NewHarmonicComparison([]float64{0.2}, 3, phys.MuonMass, omega,
		report.EnergyTable{{1, 0, 1}})
	require.NoError(t, err)

	var sb strings.Builder
	_, err = h.WriteTo(&sb)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "# mode 1")
	assert.Len(t, strings.Split(strings.TrimSpace(sb.String()), "\n"), 4)
}
