// io.go --  This file is part of govib project.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muonsuite/govib/pkg/grid"
)

// ReadEnergyTable parses a whitespace-float energy table, one mode per
// line, gridN values each, and validates its shape. Blank lines and lines
// starting with '#' are skipped.
func ReadEnergyTable(r io.Reader, numModes, gridN int) (EnergyTable, error) {
	rows, err := readFloatRows(r)
	if err != nil {
		return nil, fmt.Errorf("energy table: %w", err)
	}
	e := EnergyTable(rows)
	if err := e.Validate(numModes, gridN); err != nil {
		return nil, err
	}
	return e, nil
}

// ReadTensors parses per-grid-point property tensors: for each of
// numPoints grid points (mode-major order), numAtoms tensors of 3 rows
// with 3 values each. The result is indexed [gridPoint][atom].
func ReadTensors(r io.Reader, numPoints, numAtoms int) ([][]grid.Tensor, error) {
	rows, err := readFloatRows(r)
	if err != nil {
		return nil, fmt.Errorf("tensor table: %w", err)
	}
	want := numPoints * numAtoms * 3
	if len(rows) != want {
		return nil, fmt.Errorf("%w: tensor table has %d rows, want %d (%d points x %d atoms x 3)",
			ErrIncompleteData, len(rows), want, numPoints, numAtoms)
	}
	tensors := make([][]grid.Tensor, numPoints)
	pos := 0
	for n := 0; n < numPoints; n++ {
		tensors[n] = make([]grid.Tensor, numAtoms)
		for a := 0; a < numAtoms; a++ {
			for i := 0; i < 3; i++ {
				if len(rows[pos]) != 3 {
					return nil, fmt.Errorf("%w: grid point %d atom %d row %d has %d values, want 3",
						ErrIncompleteData, n, a, i, len(rows[pos]))
				}
				for j := 0; j < 3; j++ {
					tensors[n][a][i][j] = rows[pos][j]
				}
				pos++
			}
		}
	}
	return tensors, nil
}

// WriteTensors writes one averaged tensor per labeled atom.
func WriteTensors(w io.Writer, labels []string, tens []grid.Tensor) error {
	if len(labels) != len(tens) {
		return fmt.Errorf("%w: %d labels vs %d tensors", grid.ErrShapeMismatch, len(labels), len(tens))
	}
	for a, t := range tens {
		if _, err := fmt.Fprintf(w, "%s\n", labels[a]); err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			if _, err := fmt.Fprintf(w, "%12.6f%12.6f%12.6f\n", t[i][0], t[i][1], t[i][2]); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTable writes a 2-D float table, one row per line.
func WriteTable(w io.Writer, data [][]float64) error {
	for i := range data {
		for j := range data[i] {
			if _, err := fmt.Fprintf(w, "%14.6e", data[i][j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func readFloatRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}
