// Package mapfile reads occupancy grids from text files.
//
// A map file holds one line per row. Every character is a cell whose value is
// the character minus '0', so '1' is passable and '0' is blocked. All rows
// must have the same width. Trailing blank lines and carriage returns are
// ignored.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/pdrpinto/gridsearch"
)

// Load opens path and decodes it.
func Load(path string) (*gridsearch.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open map %s", path)
	}
	defer f.Close()

	grid, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load map %s", path)
	}
	return grid, nil
}

// MalformedError lists every problem found in a map. It matches
// gridsearch.ErrMalformedGrid under errors.Is.
type MalformedError struct {
	Errors *multierror.Error
}

func (e *MalformedError) Error() string {
	return gridsearch.ErrMalformedGrid.Error() + ": " + e.Errors.Error()
}

func (e *MalformedError) Unwrap() error { return e.Errors }

func (e *MalformedError) Is(target error) bool { return target == gridsearch.ErrMalformedGrid }

// Decode reads a map from r. Rows have no length limit.
func Decode(r io.Reader) (*gridsearch.Grid, error) {
	var rows []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to read map")
		}
		if line != "" {
			rows = append(rows, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
	}
	return DecodeRows(rows)
}

// DecodeRows builds a grid from already split rows. Every bad row is
// reported, not only the first one.
func DecodeRows(rows []string) (*gridsearch.Grid, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(gridsearch.ErrMalformedGrid, "empty map")
	}

	width := len(rows[0])
	cells := make([]byte, 0, width*len(rows))
	var result *multierror.Error
	for y, row := range rows {
		if len(row) != width {
			result = multierror.Append(result, fmt.Errorf("row %d: width %d, expected %d", y, len(row), width))
			continue
		}
		for x := 0; x < len(row); x++ {
			v := row[x] - '0'
			if v != gridsearch.Blocked && v != gridsearch.Passable {
				result = multierror.Append(result, fmt.Errorf("row %d: column %d: unexpected symbol %q", y, x, row[x]))
				v = gridsearch.Blocked
			}
			cells = append(cells, v)
		}
	}
	if result != nil {
		return nil, &MalformedError{Errors: result}
	}

	return gridsearch.NewGrid(width, len(rows), cells)
}

// Encode writes grid in the format Decode reads.
func Encode(w io.Writer, grid *gridsearch.Grid) error {
	_, err := io.WriteString(w, grid.String())
	return err
}
