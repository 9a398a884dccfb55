// average.go --  This file is part of govib project.
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

	"gonum.org/v1/gonum/floats"
)

// Average combines per-grid-point property tensors into one effective
// tensor per atom: for each atom, sum weight[n]*tensors[n][atom] over all
// grid points n and divide by the weight sum. tensors is indexed
// [gridPoint][atom]; the weight vector is shared across atoms. Weights
// must be non-negative with a positive sum.
func Average(tensors [][]Tensor, weights []float64) ([]Tensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("%w: no grid points", ErrShapeMismatch)
	}
	if len(tensors) != len(weights) {
		return nil, fmt.Errorf("%w: %d grid points vs %d weights",
			ErrShapeMismatch, len(tensors), len(weights))
	}
	numAtoms := len(tensors[0])
	for n := range tensors {
		if len(tensors[n]) != numAtoms {
			return nil, fmt.Errorf("%w: grid point %d has %d atoms, want %d",
				ErrShapeMismatch, n, len(tensors[n]), numAtoms)
		}
	}
	for n, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %g at grid point %d", ErrZeroWeight, w, n)
		}
	}
	wsum := floats.Sum(weights)
	if wsum <= 0 {
		return nil, fmt.Errorf("%w: sum=%g", ErrZeroWeight, wsum)
	}

	avg := make([]Tensor, numAtoms)
	for a := 0; a < numAtoms; a++ {
		for n := range tensors {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					avg[a][i][j] += weights[n] * tensors[n][a][i][j]
				}
			}
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				avg[a][i][j] /= wsum
			}
		}
	}
	return avg, nil
}

// WeightedScalarAverage is the scalar counterpart of Average: the
// weight-normalized mean of one value per grid point. It is used for the
// isotropic hyperfine average in reports.
func WeightedScalarAverage(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("%w: %d values vs %d weights",
			ErrShapeMismatch, len(values), len(weights))
	}
	wsum := floats.Sum(weights)
	if wsum <= 0 {
		return 0, fmt.Errorf("%w: sum=%g", ErrZeroWeight, wsum)
	}
	var s float64
	for n := range values {
		s += values[n] * weights[n]
	}
	return s / wsum, nil
}
