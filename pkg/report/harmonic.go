// harmonic.go --  This file is part of govib project.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/muonsuite/govib/pkg/grid"
	"github.com/muonsuite/govib/pkg/phys"
)

// HarmonicComparison is the per-mode comparison between the sampled
// energy landscape and the harmonic potential implied by the phonon
// eigenvalue and the sampled particle's mass. All energies in eV,
// coordinates in Angstrom.
type HarmonicComparison struct {
	Coords   [][]float64 // [mode][gridPoint]
	Sampled  [][]float64 // normalized sampled energies
	Harmonic [][]float64 // 1/2 m omega^2 x^2
	RMSD     []float64   // per-mode root-mean-square deviation
}

// NewHarmonicComparison validates the energy table against the grid shape
// and builds the comparison. The sampled energies are normalized per mode:
// the midpoint value is subtracted when gridN is odd, the row minimum
// otherwise. mass is in kg, omega in rad/s, R in Angstrom.
func NewHarmonicComparison(R []float64, gridN int, mass float64, omega []float64, E EnergyTable) (*HarmonicComparison, error) {
	if err := E.Validate(len(R), gridN); err != nil {
		return nil, err
	}
	if len(omega) != len(R) {
		return nil, fmt.Errorf("%w: %d frequencies vs %d amplitudes",
			grid.ErrShapeMismatch, len(omega), len(R))
	}

	h := &HarmonicComparison{
		Coords:   make([][]float64, len(R)),
		Sampled:  make([][]float64, len(R)),
		Harmonic: make([][]float64, len(R)),
		RMSD:     make([]float64, len(R)),
	}
	for m, Rm := range R {
		x := make([]float64, gridN)
		floats.Span(x, -3*Rm, 3*Rm)
		h.Coords[m] = x

		ref := floats.Min(E[m])
		if gridN%2 == 1 {
			ref = E[m][gridN/2]
		}
		sam := make([]float64, gridN)
		har := make([]float64, gridN)
		sq := make([]float64, gridN)
		k := mass * omega[m] * omega[m]
		for j := range x {
			sam[j] = E[m][j] - ref
			xm := x[j] / phys.AngstromPerMeter
			har[j] = 0.5 * k * xm * xm / phys.EV
			d := sam[j] - har[j]
			sq[j] = d * d
		}
		h.Sampled[m] = sam
		h.Harmonic[m] = har
		h.RMSD[m] = math.Sqrt(stat.Mean(sq, nil))
	}
	return h, nil
}

// WriteTo writes, per mode, one row per grid point with the coordinate,
// the normalized sampled energy and the harmonic energy, followed by the
// mode's RMS deviation.
func (h *HarmonicComparison) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for m := range h.Coords {
		n, err := fmt.Fprintf(w, "# mode %d  rmsd %14.6e eV\n", m+1, h.RMSD[m])
		written += int64(n)
		if err != nil {
			return written, err
		}
		for j := range h.Coords[m] {
			n, err := fmt.Fprintf(w, "%14.6e%14.6e%14.6e\n",
				h.Coords[m][j], h.Sampled[m][j], h.Harmonic[m][j])
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, nil
}
