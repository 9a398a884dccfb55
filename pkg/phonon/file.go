// file.go --  This file is part of govib project.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileSource is a Source backed by a plain-text phonon dump, as written by
// the conversion script accompanying the external vibrational backend.
//
// Format, whitespace separated, blank lines ignored:
//
//	nmodes natoms
//	freq_1              (cm^-1)
//	re im re im re im   (eigenvector of atom 1, x y z)
//	...                 (natoms lines)
//	freq_2
//	...
type FileSource struct {
	freqs []float64
	evecs [][]Vector
}

func (s *FileSource) Frequencies() []float64 { return s.freqs }

func (s *FileSource) Eigenvectors() [][]Vector { return s.evecs }

// NewFileSource reads and parses a phonon dump file.
func NewFileSource(fname string) (*FileSource, error) {
	lines, err := readFileLines(fname)
	if err != nil {
		return nil, fmt.Errorf("cannot read phonon file %s: %w", fname, err)
	}
	var fields [][]string
	for _, l := range lines {
		if w := strings.Fields(l); len(w) > 0 {
			fields = append(fields, w)
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("phonon file %s is empty", fname)
	}
	if len(fields[0]) < 2 {
		return nil, fmt.Errorf("phonon file %s: malformed header line", fname)
	}
	nModes, err1 := strconv.Atoi(fields[0][0])
	nAtoms, err2 := strconv.Atoi(fields[0][1])
	if err1 != nil || err2 != nil || nModes <= 0 || nAtoms <= 0 {
		return nil, fmt.Errorf("phonon file %s: bad mode/atom counts %q", fname, fields[0])
	}
	want := 1 + nModes*(1+nAtoms)
	if len(fields) != want {
		return nil, fmt.Errorf("phonon file %s: expected %d data lines for %d modes x %d atoms, got %d",
			fname, want-1, nModes, nAtoms, len(fields)-1)
	}

	s := &FileSource{
		freqs: make([]float64, nModes),
		evecs: make([][]Vector, nModes),
	}
	pos := 1
	for m := 0; m < nModes; m++ {
		s.freqs[m], err = strconv.ParseFloat(fields[pos][0], 64)
		if err != nil {
			return nil, fmt.Errorf("phonon file %s: mode %d frequency: %w", fname, m, err)
		}
		pos++
		s.evecs[m] = make([]Vector, nAtoms)
		for a := 0; a < nAtoms; a++ {
			if len(fields[pos]) < 6 {
				return nil, fmt.Errorf("phonon file %s: mode %d atom %d: want 6 values, got %d",
					fname, m, a, len(fields[pos]))
			}
			var c [6]float64
			for k := 0; k < 6; k++ {
				c[k], err = strconv.ParseFloat(fields[pos][k], 64)
				if err != nil {
					return nil, fmt.Errorf("phonon file %s: mode %d atom %d: %w", fname, m, a, err)
				}
			}
			s.evecs[m][a] = Vector{
				complex(c[0], c[1]),
				complex(c[2], c[3]),
				complex(c[4], c[5]),
			}
			pos++
		}
	}
	return s, nil
}

func readFileLines(fname string) ([]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result, scanner.Err()
}
