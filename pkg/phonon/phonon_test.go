package phonon_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muonsuite/govib/pkg/phonon"
	"github.com/muonsuite/govib/pkg/phys"
)

func TestAmplitudes(t *testing.T) {
	t.Parallel()

	omega := []float64{phys.OmegaFromWavenumber(1000), phys.OmegaFromWavenumber(2000)}
	R, err := phonon.Amplitudes(omega, phys.MuonMass)
	require.NoError(t, err)
	require.Len(t, R, 2)

	for i, w := range omega {
		want := math.Sqrt(phys.Hbar/(w*phys.MuonMass)) * phys.AngstromPerMeter
		assert.InDelta(t, want, R[i], 1e-15)
		assert.Positive(t, R[i])
	}

	// doubling the frequency shrinks the amplitude by sqrt(2)
	assert.InDelta(t, R[0]/math.Sqrt2, R[1], 1e-12)
}

func TestAmplitudesBadFrequency(t *testing.T) {
	t.Parallel()

	_, err := phonon.Amplitudes([]float64{1e14, 0}, phys.MuonMass)
	require.Error(t, err)
	assert.True(t, errors.Is(err, phonon.ErrBadFrequency))

	_, err = phonon.Amplitudes([]float64{-1e14}, phys.MuonMass)
	require.Error(t, err)
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	dump := `2 2
150.5
1.0 0.0  0.0 0.5  0.0 0.0
0.0 0.0  1.0 0.0  0.0 0.0
301.0
0.0 0.0  0.0 0.0  1.0 -1.0
0.5 0.0  0.0 0.0  0.0 0.0
`
	fname := filepath.Join(t.TempDir(), "phonons.dat")
	require.NoError(t, os.WriteFile(fname, []byte(dump), 0644))

	src, err := phonon.NewFileSource(fname)
	require.NoError(t, err)

	freqs := src.Frequencies()
	require.Equal(t, []float64{150.5, 301.0}, freqs)

	evecs := src.Eigenvectors()
	require.Len(t, evecs, 2)
	require.Len(t, evecs[0], 2)
	assert.Equal(t, phonon.Vector{complex(1, 0), complex(0, 0.5), 0}, evecs[0][0])
	assert.Equal(t, phonon.Vector{0, 0, complex(1, -1)}, evecs[1][0])
	assert.Equal(t, phonon.Vector{complex(0.5, 0), 0, 0}, evecs[1][1])
}

func TestFileSourceTruncated(t *testing.T) {
	t.Parallel()

	dump := `2 2
150.5
1.0 0.0  0.0 0.5  0.0 0.0
`
	fname := filepath.Join(t.TempDir(), "phonons.dat")
	require.NoError(t, os.WriteFile(fname, []byte(dump), 0644))

	_, err := phonon.NewFileSource(fname)
	require.Error(t, err)
}

func TestMemSource(t *testing.T) {
	t.Parallel()

	s := &phonon.MemSource{
		Freqs: []float64{10},
		Evecs: [][]phonon.Vector{{{complex(1, 0), 0, 0}}},
	}
	assert.Equal(t, s.Freqs, s.Frequencies())
	assert.Equal(t, s.Evecs, s.Eigenvectors())
}
