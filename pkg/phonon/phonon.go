// phonon.go --  This file is part of govib project.
//
//	govib is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package phonon gives access to the vibrational modes of a reference
// structure and selects the modes that dominate the motion of one atom.
//
// The package does not compute phonons itself. They come from an external
// vibrational-analysis backend through the Source interface, either parsed
// from a dump file (FileSource) or handed over in memory (MemSource).
package phonon

import (
	"errors"
	"math"

	"github.com/muonsuite/govib/pkg/phys"
)

// Vector is one complex phonon eigenvector component, per Cartesian axis,
// for a single atom.
type Vector [3]complex128

// Source is the capability a phonon backend must provide: one frequency
// per mode, in cm^-1, and one eigenvector per mode per atom.
type Source interface {
	Frequencies() []float64
	Eigenvectors() [][]Vector
}

// MemSource is an in-memory Source, for callers that computed or parsed
// the phonon data themselves.
type MemSource struct {
	Freqs []float64
	Evecs [][]Vector
}

func (s *MemSource) Frequencies() []float64 { return s.Freqs }

func (s *MemSource) Eigenvectors() [][]Vector { return s.Evecs }

var (
	// ErrDegenerate reports that fewer than 3 usable phonon modes exist at
	// the target atom, so no 3-axis sampling basis can be built.
	ErrDegenerate = errors.New("fewer than 3 usable phonon modes")

	// ErrBadFrequency reports a zero or negative angular frequency, for
	// which no displacement amplitude is defined.
	ErrBadFrequency = errors.New("zero or negative mode frequency")
)

// Amplitudes computes the quantum harmonic displacement amplitude
// R_i = sqrt(hbar/(omega_i*mass)) for each mode, in Angstrom. omega is in
// rad/s, mass in kg. Every frequency must be strictly positive.
func Amplitudes(omega []float64, mass float64) ([]float64, error) {
	R := make([]float64, len(omega))
	for i, w := range omega {
		if w <= 0 {
			return nil, ErrBadFrequency
		}
		R[i] = math.Sqrt(phys.Hbar/(w*mass)) * phys.AngstromPerMeter
	}
	return R, nil
}
