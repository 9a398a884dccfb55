// const.go --  This file is part of govib project.
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

// Package phys provides the physical constants and unit conversions used
// throughout govib. Values are CODATA 2018. All internal computation is in
// SI; distances exposed to grid generation are in Angstrom.
package phys

import "math"

const (
	// Hbar is the reduced Planck constant in J*s.
	Hbar = 1.054571817e-34

	// C is the speed of light in vacuum in m/s.
	C = 2.99792458e8

	// EV is one electronvolt in J.
	EV = 1.602176634e-19

	// U is the unified atomic mass unit in kg.
	U = 1.66053906660e-27

	// MuonMass is the muon rest mass in kg.
	MuonMass = 1.883531627e-28

	// AngstromPerMeter converts meters to Angstrom.
	AngstromPerMeter = 1e10
)

// MuonMassAMU is the muon rest mass in atomic mass units.
const MuonMassAMU = MuonMass / U

// OmegaFromWavenumber converts a vibrational frequency given as a
// spectroscopic wavenumber in cm^-1 (the CASTEP phonon convention) into an
// angular frequency in rad/s.
func OmegaFromWavenumber(nu float64) float64 {
	return nu * 1e2 * C * 2 * math.Pi
}
