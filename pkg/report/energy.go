// energy.go --  This file is part of govib project.
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

// Package report validates sampled calculation results against the
// expected grid shape, checks them against the harmonic model, and derives
// the physically interpretable quantities (isotropic coupling, dipolar
// parameters D1/D2) written to the run report.
package report

import (
	"errors"
	"fmt"
)

// ErrIncompleteData reports an energy or tensor table that does not cover
// the full (modes x grid_n) grid. It signals a failed or missing upstream
// calculation; averaging over a partial grid is never allowed.
var ErrIncompleteData = errors.New("incomplete calculation data")

// EnergyTable holds one final energy (eV) per grid point, indexed
// [mode][gridPoint].
type EnergyTable [][]float64

// Validate checks that the table covers exactly numModes rows of gridN
// points each. Any missing or extra cell makes the whole table unusable.
func (e EnergyTable) Validate(numModes, gridN int) error {
	if len(e) != numModes {
		return fmt.Errorf("%w: energy table has %d modes, want %d",
			ErrIncompleteData, len(e), numModes)
	}
	for m, row := range e {
		if len(row) != gridN {
			return fmt.Errorf("%w: mode %d has %d grid points, want %d",
				ErrIncompleteData, m, len(row), gridN)
		}
	}
	return nil
}
