// modes.go --  This file is part of govib project.
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
package phonon

import (
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/exp/slices"
)

// amplitude threshold below which a mode is considered trivial at the atom
const minModeAmp = 1e-12

// MajorModes selects the 3 phonon modes with the largest projected
// displacement on the atom with index atom. It returns their indices in
// descending order of projected magnitude, the real parts of their
// eigenvectors at that atom, and a Gram-Schmidt orthogonalized copy of
// those vectors, usable as a sampling basis even when the raw modes are
// not perfectly orthogonal at the atom.
func MajorModes(evecs [][]Vector, atom int) (idx [3]int, vecs, ortho [3][3]float64, err error) {
	if len(evecs) < 3 {
		return idx, vecs, ortho, fmt.Errorf("%w: have %d modes", ErrDegenerate, len(evecs))
	}
	if atom < 0 || atom >= len(evecs[0]) {
		return idx, vecs, ortho, fmt.Errorf("atom index %d out of range (%d atoms)", atom, len(evecs[0]))
	}

	amp := make([]float64, len(evecs))
	order := make([]int, len(evecs))
	for m := range evecs {
		amp[m] = vectorNorm(evecs[m][atom])
		order[m] = m
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case amp[a] > amp[b]:
			return -1
		case amp[a] < amp[b]:
			return 1
		}
		return 0
	})

	for i := 0; i < 3; i++ {
		m := order[i]
		if amp[m] < minModeAmp {
			return idx, vecs, ortho, fmt.Errorf("%w: only %d modes move atom %d", ErrDegenerate, i, atom)
		}
		idx[i] = m
		for k := 0; k < 3; k++ {
			vecs[i][k] = real(evecs[m][atom][k])
		}
	}

	ortho, err = gramSchmidt(vecs)
	if err != nil {
		return idx, vecs, ortho, fmt.Errorf("orthogonalizing modes at atom %d: %w", atom, err)
	}
	return idx, vecs, ortho, nil
}

func vectorNorm(v Vector) float64 {
	var s float64
	for _, c := range v {
		a := cmplx.Abs(c)
		s += a * a
	}
	return math.Sqrt(s)
}

// gramSchmidt orthonormalizes 3 vectors in their given order.
func gramSchmidt(v [3][3]float64) ([3][3]float64, error) {
	var q [3][3]float64
	for i := 0; i < 3; i++ {
		u := v[i]
		for j := 0; j < i; j++ {
			p := dot3(v[i], q[j])
			for k := 0; k < 3; k++ {
				u[k] -= p * q[j][k]
			}
		}
		n := math.Sqrt(dot3(u, u))
		if n < minModeAmp {
			return q, fmt.Errorf("%w: mode %d is linearly dependent", ErrDegenerate, i)
		}
		for k := 0; k < 3; k++ {
			q[i][k] = u[k] / n
		}
	}
	return q, nil
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
