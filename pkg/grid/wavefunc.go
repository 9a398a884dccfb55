// wavefunc.go --  This file is part of govib project.
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
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DensityTable holds the diagnostic wavefunction table: per axis, the
// sampled coordinates (Angstrom) and the plain Born density |psi|^2 at
// each coordinate. It is a value to be written by an explicit I/O call,
// not a side effect of the computation.
type DensityTable struct {
	Coords [][]float64
	Psi2   [][]float64
}

// WriteTo writes one row per grid point: the coordinate along each axis
// followed by |psi|^2 along each axis.
func (dt *DensityTable) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for j := range dt.Coords[0] {
		for i := range dt.Coords {
			n, err := fmt.Fprintf(w, "%14.6e", dt.Coords[i][j])
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		for i := range dt.Psi2 {
			n, err := fmt.Fprintf(w, "%14.6e", dt.Psi2[i][j])
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		n, err := fmt.Fprintln(w)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Wavefunction evaluates the ground-state quantum harmonic oscillator on
// the sampling grid. For each axis i, gridN coordinates span
// [-3*R_i, 3*R_i] and psi(x) = norm * exp(-(x/R_i)^2/2) with the shared
// 3-axis normalization norm = (1/(prod(R)^2*pi^3))^(1/4). Axes are
// evaluated independently (product ansatz, kept for parity with the
// reference behavior).
//
// The returned weights are the position-moment density x^2*|psi|^2, NOT
// the plain probability density; downstream averaging depends on exactly
// this quantity. Layout is dens[j + i*gridN]. The DensityTable carries
// coordinates and |psi|^2 for diagnostics.
func Wavefunction(R []float64, gridN int) ([]float64, *DensityTable, error) {
	if len(R) == 0 {
		return nil, nil, fmt.Errorf("%w: no displacement amplitudes", ErrShapeMismatch)
	}
	if gridN < 2 {
		return nil, nil, fmt.Errorf("%w: grid_n must be at least 2, got %d", ErrShapeMismatch, gridN)
	}
	prod := 1.0
	for i, Ri := range R {
		if Ri <= 0 {
			return nil, nil, fmt.Errorf("%w: axis %d has R=%g", ErrBadAmplitude, i, Ri)
		}
		prod *= Ri
	}

	norm := math.Pow(1.0/(prod*prod*math.Pow(math.Pi, 3)), 0.25)

	dens := make([]float64, gridN*len(R))
	table := &DensityTable{
		Coords: make([][]float64, len(R)),
		Psi2:   make([][]float64, len(R)),
	}
	for i, Ri := range R {
		x := make([]float64, gridN)
		floats.Span(x, -3*Ri, 3*Ri)
		psi2 := make([]float64, gridN)
		for j, xj := range x {
			psi := norm * math.Exp(-(xj/Ri)*(xj/Ri)/2.0)
			psi2[j] = psi * psi
			dens[j+i*gridN] = xj * xj * psi2[j]
		}
		table.Coords[i] = x
		table.Psi2[i] = psi2
	}
	return dens, table, nil
}
