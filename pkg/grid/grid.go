// grid.go --  This file is part of govib project.
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

// Package grid builds displacement grids along phonon modes, evaluates the
// harmonic-oscillator sampling weights on them, and averages externally
// computed property tensors over the grid.
//
// Grid ordering is mode-major and significant everywhere in this package:
// all grid_n points of mode 0 come first, then mode 1, then mode 2, each
// block ordered by increasing displacement parameter. Flattened per-point
// quantities use index j + m*gridN for point j of mode m.
package grid

import "errors"

// Tensor is a 3x3 property tensor (e.g. a hyperfine coupling tensor)
// attached to one atom at one grid point.
type Tensor [3][3]float64

// Trace returns the sum of the diagonal elements.
func (t Tensor) Trace() float64 {
	return t[0][0] + t[1][1] + t[2][2]
}

// Iso returns the isotropic part, Trace/3.
func (t Tensor) Iso() float64 {
	return t.Trace() / 3.0
}

var (
	// ErrShapeMismatch reports arrays whose lengths disagree with the
	// number of modes or grid points. This is a configuration error.
	ErrShapeMismatch = errors.New("mismatched array shapes")

	// ErrZeroWeight reports a weight vector whose sum is not positive, so
	// no normalized average exists.
	ErrZeroWeight = errors.New("weight sum is not positive")

	// ErrBadAmplitude reports a zero or negative displacement amplitude.
	ErrBadAmplitude = errors.New("displacement amplitude must be positive")
)
