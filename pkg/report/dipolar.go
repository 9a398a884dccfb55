// dipolar.go --  This file is part of govib project.
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
package report

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/muonsuite/govib/pkg/grid"
)

// ErrEigenFailed reports a failed eigendecomposition of the averaged
// tensor.
var ErrEigenFailed = errors.New("tensor eigendecomposition failed")

// DipolarParams derives the dipolar coupling parameters D1 and D2 from an
// averaged hyperfine tensor. The tensor is symmetrized, eigensolved, and
// the mean eigenvalue (the isotropic part) subtracted, leaving the
// traceless values notr in ascending eigenvalue order. The axis-labeling
// convention: if |notr[2]| > |notr[0]| the anisotropy sits on the
// highest eigenvalue and D1 = notr[2], D2 = notr[1] - notr[0]; otherwise
// D1 = notr[0], D2 = notr[2] - notr[1].
func DipolarParams(t grid.Tensor) (d1, d2 float64, err error) {
	var sym [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sym[i*3+j] = (t[i][j] + t[j][i]) / 2.0
		}
	}

	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(mat.NewSymDense(3, sym[:]), false); !ok {
		return 0, 0, ErrEigenFailed
	}
	evals := eigsym.Values(nil)
	mean := stat.Mean(evals, nil)

	var notr [3]float64
	for i := range evals {
		notr[i] = evals[i] - mean
	}

	if math.Abs(notr[2]) > math.Abs(notr[0]) {
		return notr[2], notr[1] - notr[0], nil
	}
	return notr[0], notr[2] - notr[1], nil
}
