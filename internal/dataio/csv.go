package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"drawdata/internal/dataset"
)

// WriteCSV writes t with an x,y,color header. Coordinates use the shortest
// representation that parses back to the same float64.
func WriteCSV(w io.Writer, t dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.Header); err != nil {
		return err
	}
	rec := make([]string, 3)
	for _, r := range t {
		rec[0] = strconv.FormatFloat(r.X, 'g', -1, 64)
		rec[1] = strconv.FormatFloat(r.Y, 'g', -1, 64)
		rec[2] = strconv.Itoa(r.Code)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV. Columns are located by header
// name (case-insensitive) so extra columns and other orders are accepted.
// Every row is checked; the first problem is returned as an
// *dataset.InvalidFileError.
func ReadCSV(r io.Reader) (dataset.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &dataset.InvalidFileError{Line: pe.Line, Reason: "malformed csv", Err: err}
		}
		return nil, err
	}
	if len(recs) == 0 {
		return nil, &dataset.InvalidFileError{Reason: "empty file"}
	}
	header := recs[0]
	idxX, idxY, idxColor := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case dataset.ColumnX:
			if idxX == -1 {
				idxX = i
			}
		case dataset.ColumnY:
			if idxY == -1 {
				idxY = i
			}
		case dataset.ColumnColor:
			if idxColor == -1 {
				idxColor = i
			}
		}
	}
	for _, c := range []struct {
		name string
		idx  int
	}{{dataset.ColumnX, idxX}, {dataset.ColumnY, idxY}, {dataset.ColumnColor, idxColor}} {
		if c.idx == -1 {
			return nil, &dataset.InvalidFileError{Line: 1, Column: c.name, Reason: "missing column"}
		}
	}

	t := make(dataset.Table, 0, len(recs)-1)
	for i, row := range recs[1:] {
		line := i + 2
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		field := func(idx int, name string) (string, error) {
			if idx >= len(row) {
				return "", &dataset.InvalidFileError{Line: line, Column: name, Reason: "missing value"}
			}
			return strings.TrimSpace(row[idx]), nil
		}
		var vals [2]float64
		for k, c := range []struct {
			name string
			idx  int
		}{{dataset.ColumnX, idxX}, {dataset.ColumnY, idxY}} {
			s, err := field(c.idx, c.name)
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &dataset.InvalidFileError{Line: line, Column: c.name, Reason: "not a number", Err: err}
			}
			vals[k] = v
		}
		s, err := field(idxColor, dataset.ColumnColor)
		if err != nil {
			return nil, err
		}
		code, err := parseCode(s)
		if err != nil {
			return nil, &dataset.InvalidFileError{Line: line, Column: dataset.ColumnColor, Reason: "not a color code", Err: err}
		}
		t = append(t, dataset.Row{X: vals[0], Y: vals[1], Code: code})
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseCode accepts "2" and integral floats such as "2.0".
func parseCode(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-integral code %q", s)
	}
	return int(f), nil
}
