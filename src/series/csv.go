package series

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"
)

var (
	// ErrFileNotFound reports a CSV path that does not exist or cannot be read.
	ErrFileNotFound = errors.New("series: file not found")
	// ErrMalformedRow reports a line with fewer than two fields or a field
	// that does not parse as a number.
	ErrMalformedRow = errors.New("series: malformed row")
)

// Load reads the CSV file at path. The file is closed before Load returns,
// whether or not parsing succeeded.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%s: %v", path, err)
	}
	defer f.Close()
	return LoadReader(f, path)
}

// LoadReader reads header-less "x,y" lines from r. name is used in error
// messages and as the Series name. Columns past the second are ignored and
// fields may carry surrounding blanks. Any malformed line, blank lines
// included, fails the whole load; no partial Series is returned.
func LoadReader(r io.Reader, name string) (*Series, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	tbl := &csvutil.Table{Reader: cr}
	defer tbl.Close()

	rows, err := tbl.ReadRows(0, -1)
	if err != nil {
		return nil, readError(err, name, 1)
	}
	defer rows.Close()

	out := &Series{Name: name, Points: []Point{}}
	lastLine := 0 // physical line the previous record ended on
	var end int64 // input offset just past the previous record
	for rows.Next() {
		fields := rows.Fields()
		line, _ := cr.FieldPos(0)
		if line > lastLine+1 {
			// encoding/csv drops empty lines silently
			return nil, errors.Wrapf(ErrMalformedRow, "%s line %d: empty line", name, lastLine+1)
		}
		if len(fields) < 2 {
			return nil, errors.Wrapf(ErrMalformedRow, "%s line %d: want 2 fields, got %d", name, line, len(fields))
		}
		var p Point
		if p.X, err = parseField(fields[0]); err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "%s line %d: x: %v", name, line, err)
		}
		if p.Y, err = parseField(fields[1]); err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "%s line %d: y: %v", name, line, err)
		}
		out.Points = append(out.Points, p)
		lastLine, _ = cr.FieldPos(len(fields) - 1)
		end = cr.InputOffset()
	}
	if err := rows.Err(); err != nil && err != io.EOF {
		return nil, readError(err, name, lastLine+1)
	}
	if cr.InputOffset() > end {
		// only skipped empty lines follow the last record
		return nil, errors.Wrapf(ErrMalformedRow, "%s line %d: empty line", name, lastLine+1)
	}
	return out, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// readError classifies an error from the CSV reader: syntax problems are
// malformed rows, anything else means the file could not be read.
func readError(err error, name string, line int) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return errors.Wrapf(ErrMalformedRow, "%s line %d: %v", name, perr.Line, perr.Err)
	}
	return errors.Wrapf(ErrFileNotFound, "%s line %d: read: %v", name, line, err)
}
