// cfg.go --  This file is part of govib project.
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

// Package cfg loads and validates the YAML run configuration.
package cfg

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muonsuite/govib/pkg/phys"
)

// Method is the displacement sampling strategy.
type Method string

// Accepted sampling methods. MWavefunction is the deterministic per-axis
// linear grid; MThermal is independent stochastic thermal-line draws.
var (
	MWavefunction Method = "wavefunction"
	MThermal      Method = "thermal"
)

// Property is the sampled physical property.
type Property string

// Accepted properties.
var (
	PHyperfine Property = "hyperfine"
)

// Cfg holds the parameters of one govib run. It can be instanced through
// New or by hand; if built by hand, call Check before use.
type Cfg struct {
	// Phonons is the path of the phonon dump file
	Phonons string `yaml:"phonons"`

	// MuonIndex is the index of the muon in the structure (0-based)
	MuonIndex int `yaml:"muon_index"`

	// IpsoIndex is the index of the ipso hydrogen, or -1 to ignore it
	IpsoIndex int `yaml:"ipso_index"`

	// MuonMassAMU is the sampled particle mass in atomic mass units.
	// Zero means the muon rest mass.
	MuonMassAMU float64 `yaml:"muon_mass_amu"`

	// GridN is the number of grid points along each mode axis
	GridN int `yaml:"grid_n"`

	// Property is the sampled property (e.g. hyperfine)
	Property Property `yaml:"property"`

	// Method is the sampling strategy (wavefunction or thermal)
	Method Method `yaml:"method"`

	// Seed seeds the thermal-line random source. Zero means time-seeded
	Seed int64 `yaml:"seed"`

	// Energies is the path of the sampled energy table (average phase)
	Energies string `yaml:"energies"`

	// Tensors is the path of the sampled tensor table (average phase)
	Tensors string `yaml:"tensors"`

	// Labels are the atom labels of the structure, in table order
	Labels []string `yaml:"labels"`

	// Out is the prefix of every output file written by the run
	Out string `yaml:"out"`
}

// New opens and decodes the specified YAML configuration file and checks
// its integrity.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	c.IpsoIndex = -1
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check returns an error if a field does not meet the requirements.
func (c *Cfg) Check() error {
	if c.Phonons == "" {
		return fmt.Errorf("phonons file must be specified")
	}

	if c.MuonIndex < 0 {
		return fmt.Errorf("muon_index cannot be lower than 0")
	}

	if c.GridN < 2 {
		return fmt.Errorf("grid_n must be at least 2")
	}

	if c.MuonMassAMU == 0 {
		c.MuonMassAMU = phys.MuonMassAMU
	}
	if c.MuonMassAMU < 0 {
		return fmt.Errorf("muon_mass_amu cannot be negative")
	}

	switch c.Property {
	case PHyperfine:
	case "":
		c.Property = PHyperfine
	default:
		return fmt.Errorf("unknown property %q", c.Property)
	}

	switch c.Method {
	case MWavefunction, MThermal:
	case "":
		c.Method = MWavefunction
	default:
		return fmt.Errorf("unknown method %q", c.Method)
	}

	if c.Out == "" {
		return fmt.Errorf("out prefix must be specified")
	}

	return nil
}

// MassKG returns the sampled particle mass in kg.
func (c *Cfg) MassKG() float64 {
	return c.MuonMassAMU * phys.U
}
