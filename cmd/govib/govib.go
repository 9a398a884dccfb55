// govib.go --  This file is part of govib project.
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
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/muonsuite/govib/pkg/cfg"
	"github.com/muonsuite/govib/pkg/grid"
	"github.com/muonsuite/govib/pkg/phonon"
	"github.com/muonsuite/govib/pkg/phys"
	"github.com/muonsuite/govib/pkg/report"
)

var (
	WarningLogger *log.Logger
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	OutputLogger  *log.Logger
)

func initLog(fname string) {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}

	InfoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(file, "", 0)
}

func printOutputDelimiter() {
	OutputLogger.Println(strings.Repeat("-", 70))
}

func usage() {
	log.Fatal("usage: govib <write|average> <config.yaml>")
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}
	phase := os.Args[1]
	if phase != "write" && phase != "average" {
		usage()
	}

	c, err := cfg.New(os.Args[2])
	if err != nil {
		log.Fatal("Cannot load configuration: ", err)
	}

	initLog(c.Out + ".out")
	InfoLogger.Println("Starting govib...")
	OutputLogger.Println("govib -- vibrational averaging of muon couplings")
	printOutputDelimiter()

	src, err := phonon.NewFileSource(c.Phonons)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	freqs := src.Frequencies()
	evecs := src.Eigenvectors()
	numAtoms := len(evecs[0])

	idx, vecs, ortho, err := phonon.MajorModes(evecs, c.MuonIndex)
	if err != nil {
		ErrorLogger.Fatal("Mode selection failed: ", err)
	}
	OutputLogger.Println("Major modes at muon atom", c.MuonIndex, ":", idx)
	OutputLogger.Println("Orthogonalized sampling basis:", ortho)

	omega := make([]float64, 3)
	for i := 0; i < 3; i++ {
		omega[i] = phys.OmegaFromWavenumber(freqs[idx[i]])
	}
	R, err := phonon.Amplitudes(omega, c.MassKG())
	if err != nil {
		ErrorLogger.Fatal("Displacement amplitudes: ", err)
	}
	OutputLogger.Println("Displacement amplitudes (Angstrom):", R)
	printOutputDelimiter()

	switch phase {
	case "write":
		runWrite(c, R, vecs, evecs, idx, numAtoms)
	case "average":
		runAverage(c, R, omega, numAtoms)
	}

	InfoLogger.Println("Exiting govib...")
	fmt.Println("govib done.")
}

// runWrite emits the displacement grid the external DFT calculations must
// be run on. One row per grid point, mode-major for the wavefunction
// method; one file per stochastic draw for the thermal-line method.
func runWrite(c *cfg.Cfg, R []float64, vecs [3][3]float64, evecs [][]phonon.Vector, idx [3]int, numAtoms int) {
	switch c.Method {
	case cfg.MWavefunction:
		disp, err := grid.Linear(R, vecs[:], c.GridN)
		if err != nil {
			ErrorLogger.Fatal("Displacement grid: ", err)
		}
		if err := writeDisp(c.Out+"_disp.dat", disp); err != nil {
			ErrorLogger.Fatal(err)
		}
		OutputLogger.Println("Wrote", len(disp), "displacements to", c.Out+"_disp.dat")

	case cfg.MThermal:
		var rng *rand.Rand
		if c.Seed != 0 {
			rng = rand.New(rand.NewSource(c.Seed))
		}
		// amplitudes back in meters for the thermal-line accumulation
		qm := make([]float64, 3)
		for i := range R {
			qm[i] = R[i] / phys.AngstromPerMeter
		}
		sel := [][]phonon.Vector{evecs[idx[0]], evecs[idx[1]], evecs[idx[2]]}
		for n := 0; n < c.GridN; n++ {
			disp, err := grid.ThermalLine(qm, sel, numAtoms, rng)
			if err != nil {
				ErrorLogger.Fatal("Thermal line: ", err)
			}
			fname := fmt.Sprintf("%s_tl_%d.dat", c.Out, n+1)
			if err := writeDisp(fname, disp); err != nil {
				ErrorLogger.Fatal(err)
			}
		}
		OutputLogger.Println("Wrote", c.GridN, "thermal-line structures")
	}
}

// runAverage combines previously computed per-grid-point results into the
// averaged tensors and the final report.
func runAverage(c *cfg.Cfg, R, omega []float64, numAtoms int) {
	dens, table, err := grid.Wavefunction(R, c.GridN)
	if err != nil {
		ErrorLogger.Fatal("Wavefunction: ", err)
	}
	if err := writeTo(c.Out+"_psi.dat", table); err != nil {
		ErrorLogger.Fatal(err)
	}

	E, err := readEnergies(c.Energies, len(R), c.GridN)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	tensors, err := readTensors(c.Tensors, c.GridN*len(R), numAtoms)
	if err != nil {
		ErrorLogger.Fatal(err)
	}

	avg, err := grid.Average(tensors, dens)
	if err != nil {
		ErrorLogger.Fatal("Tensor averaging: ", err)
	}

	labels := c.Labels
	if len(labels) != numAtoms {
		if len(labels) != 0 {
			WarningLogger.Println("labels do not match atom count, using generic labels")
		}
		labels = make([]string, numAtoms)
		for a := range labels {
			labels[a] = fmt.Sprintf("atom_%d", a)
		}
	}

	tf, err := os.Create(c.Out + "_tensors.dat")
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	defer tf.Close()
	if err := report.WriteTensors(tf, labels, avg); err != nil {
		ErrorLogger.Fatal(err)
	}

	harm, err := report.NewHarmonicComparison(R, c.GridN, c.MassKG(), omega, E)
	if err != nil {
		ErrorLogger.Fatal("Harmonic check: ", err)
	}
	if err := writeTo(c.Out+"_V_plot.dat", harm); err != nil {
		ErrorLogger.Fatal(err)
	}
	for m, r := range harm.RMSD {
		if r > 0 {
			InfoLogger.Println("Mode", m+1, "harmonic rmsd:", r, "eV")
		}
	}

	rf, err := os.OpenFile(c.Out+"_report.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	defer rf.Close()

	hr, err := report.Hyperfine("mu", atomTensors(tensors, c.MuonIndex), avg[c.MuonIndex], dens)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	if _, err := hr.WriteTo(rf); err != nil {
		ErrorLogger.Fatal(err)
	}

	if c.IpsoIndex >= 0 && c.IpsoIndex < numAtoms {
		label := fmt.Sprintf("%s %d (ipso)", labels[c.IpsoIndex], c.IpsoIndex)
		ir, err := report.Hyperfine(label, atomTensors(tensors, c.IpsoIndex), avg[c.IpsoIndex], dens)
		if err != nil {
			ErrorLogger.Fatal(err)
		}
		if _, err := ir.WriteTo(rf); err != nil {
			ErrorLogger.Fatal(err)
		}
	}

	OutputLogger.Println("Averaged tensors, density table, harmonic check and report written with prefix", c.Out)
}

func atomTensors(tensors [][]grid.Tensor, atom int) []grid.Tensor {
	out := make([]grid.Tensor, len(tensors))
	for n := range tensors {
		out[n] = tensors[n][atom]
	}
	return out
}

func writeDisp(fname string, disp [][3]float64) error {
	rows := make([][]float64, len(disp))
	for i := range disp {
		rows[i] = disp[i][:]
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteTable(f, rows)
}

func writeTo(fname string, wt io.WriterTo) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = wt.WriteTo(f)
	return err
}

func readEnergies(fname string, numModes, gridN int) (report.EnergyTable, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("cannot read energy table %s: %w", fname, err)
	}
	defer f.Close()
	return report.ReadEnergyTable(f, numModes, gridN)
}

func readTensors(fname string, numPoints, numAtoms int) ([][]grid.Tensor, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("cannot read tensor table %s: %w", fname, err)
	}
	defer f.Close()
	return report.ReadTensors(f, numPoints, numAtoms)
}
