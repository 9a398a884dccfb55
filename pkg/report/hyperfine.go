// hyperfine.go --  This file is part of govib project.
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
	"fmt"
	"io"

	"github.com/muonsuite/govib/pkg/grid"
)

// HyperfineReport is the final predicted coupling for one labeled atom:
// the weighted isotropic average over the grid and the dipolar parameters
// of the averaged tensor, all in MHz.
type HyperfineReport struct {
	Label  string
	Iso    float64
	D1, D2 float64
}

// Hyperfine builds the report for one atom. tensors holds that atom's
// property tensor at every grid point in flattened mode-major order, and
// must match the weight vector from the wavefunction model; avg is the
// atom's weight-averaged tensor.
func Hyperfine(label string, tensors []grid.Tensor, avg grid.Tensor, weights []float64) (*HyperfineReport, error) {
	iso := make([]float64, len(tensors))
	for n, t := range tensors {
		iso[n] = t.Iso()
	}
	isoAvg, err := grid.WeightedScalarAverage(iso, weights)
	if err != nil {
		return nil, fmt.Errorf("isotropic average for %s: %w", label, err)
	}
	d1, d2, err := DipolarParams(avg)
	if err != nil {
		return nil, fmt.Errorf("dipolar parameters for %s: %w", label, err)
	}
	return &HyperfineReport{Label: label, Iso: isoAvg, D1: d1, D2: d2}, nil
}

// WriteTo appends the report for this atom in the legacy wording.
func (r *HyperfineReport) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"Predicted hyperfine coupling on labeled atom (%s): %g MHz\n"+
			"Predicted dipolar hyperfine components on labeled atom (%s):\n"+
			"D1:\t%g MHz\nD2:\t%g MHz\n",
		r.Label, r.Iso, r.Label, r.D1, r.D2)
	return int64(n), err
}
