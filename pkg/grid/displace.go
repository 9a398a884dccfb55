// displace.go --  This file is part of govib project.
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
package grid

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/muonsuite/govib/pkg/phonon"
	"github.com/muonsuite/govib/pkg/phys"
)

// Linear generates the deterministic wavefunction-sampling grid for one
// atom: for each mode m the atom is displaced by t * 3*evec(m)*factor(m)
// with t running over gridN uniform values in [-1, 1]. factors are the
// per-mode displacement amplitudes in Angstrom, evecs the (real) mode
// eigenvectors at the atom. The returned slice has gridN*len(factors)
// entries in mode-major order and is symmetric about zero within each
// mode block.
func Linear(factors []float64, evecs [][3]float64, gridN int) ([][3]float64, error) {
	if len(factors) != len(evecs) {
		return nil, fmt.Errorf("%w: %d amplitudes vs %d eigenvectors",
			ErrShapeMismatch, len(factors), len(evecs))
	}
	if gridN < 2 {
		return nil, fmt.Errorf("%w: grid_n must be at least 2, got %d", ErrShapeMismatch, gridN)
	}
	for m, f := range factors {
		if f <= 0 {
			return nil, fmt.Errorf("%w: mode %d has amplitude %g", ErrBadAmplitude, m, f)
		}
	}

	t := make([]float64, gridN)
	floats.Span(t, -1, 1)

	disp := make([][3]float64, gridN*len(factors))
	for m := range evecs {
		var max [3]float64
		for k := 0; k < 3; k++ {
			max[k] = 3 * evecs[m][k] * factors[m]
		}
		for n, tn := range t {
			for k := 0; k < 3; k++ {
				disp[n+m*gridN][k] = tn * max[k]
			}
		}
	}
	return disp, nil
}

// ThermalLine draws one stochastic displaced structure: for every mode a
// sign is drawn uniformly from {-1,+1}, the mode amplitude (normCoords, in
// meters) is scaled by it, and each mode's contribution is accumulated
// into a per-atom displacement through the real part of its eigenvector,
// converted to Angstrom. Unlike Linear this displaces every atom, and one
// call yields a single structure; independent draws build the ensemble.
//
// rng may be nil, in which case a time-seeded source is used. Pass a
// seeded *rand.Rand for reproducible sampling.
func ThermalLine(normCoords []float64, evecs [][]phonon.Vector, numAtoms int, rng *rand.Rand) ([][3]float64, error) {
	if len(normCoords) != len(evecs) {
		return nil, fmt.Errorf("%w: %d amplitudes vs %d eigenvectors",
			ErrShapeMismatch, len(normCoords), len(evecs))
	}
	for m := range evecs {
		if len(evecs[m]) < numAtoms {
			return nil, fmt.Errorf("%w: mode %d has %d atoms, want %d",
				ErrShapeMismatch, m, len(evecs[m]), numAtoms)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	therm := make([]float64, len(normCoords))
	for m, q := range normCoords {
		sign := 1.0
		if rng.Intn(2) == 0 {
			sign = -1.0
		}
		therm[m] = sign * q
	}

	disp := make([][3]float64, numAtoms)
	for a := 0; a < numAtoms; a++ {
		for m := range therm {
			for k := 0; k < 3; k++ {
				disp[a][k] += therm[m] * real(evecs[m][a][k]) * phys.AngstromPerMeter
			}
		}
	}
	return disp, nil
}
