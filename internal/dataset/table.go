package dataset

import (
	"fmt"
	"math"
)

// Column names of an exported table, in order.
const (
	ColumnX     = "x"
	ColumnY     = "y"
	ColumnColor = "color"
)

// Header is the header row of an exported table.
var Header = []string{ColumnX, ColumnY, ColumnColor}

// Row is one exported point. Code is the label's integer code.
type Row struct {
	X    float64
	Y    float64
	Code int
}

// Table is the flat form of a dataset handed to file writers.
type Table []Row

// Export returns one row per point with raw coordinates.
func (s *Store) Export() Table {
	t := make(Table, len(s.points))
	for i, p := range s.points {
		t[i] = Row{X: p.X, Y: p.Y, Code: p.Label.Code()}
	}
	return t
}

// Validate checks every row. Line numbers in the returned error assume a
// header line precedes the rows.
func (t Table) Validate() error {
	for i, r := range t {
		line := i + 2
		if math.IsNaN(r.X) || math.IsInf(r.X, 0) {
			return &InvalidFileError{Line: line, Column: ColumnX, Reason: fmt.Sprintf("non-finite coordinate %v", r.X)}
		}
		if math.IsNaN(r.Y) || math.IsInf(r.Y, 0) {
			return &InvalidFileError{Line: line, Column: ColumnY, Reason: fmt.Sprintf("non-finite coordinate %v", r.Y)}
		}
		if _, ok := LabelFromCode(r.Code); !ok {
			return &InvalidFileError{Line: line, Column: ColumnColor, Reason: fmt.Sprintf("unknown color code %d", r.Code)}
		}
	}
	return nil
}

// Import adds every row of t as a point. The whole table is validated first;
// if any row is invalid nothing is added.
func (s *Store) Import(t Table) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	for _, r := range t {
		l, _ := LabelFromCode(r.Code)
		s.AddPoint(r.X, r.Y, l)
	}
	s.log.Debug().Int("rows", len(t)).Msg("table imported")
	return len(t), nil
}
