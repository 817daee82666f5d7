package dataset

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportUsesFixedCodes(t *testing.T) {
	s := NewStore(newFakeRenderer())
	s.AddPoint(1.5, 2.25, Red)
	s.AddPoint(3, 4, Green)
	s.AddPoint(-5, 6.125, Blue)

	assert.Equal(t, Table{
		{X: 1.5, Y: 2.25, Code: 0},
		{X: 3, Y: 4, Code: 1},
		{X: -5, Y: 6.125, Code: 2},
	}, s.Export())
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewStore(newFakeRenderer(), WithSampler(NewGaussianSampler(11)))
	src.AddCluster(120, 80, Red, 12, 30)
	src.AddCluster(40, 30, Green, 4, 20)
	src.AddPoint(0.1, 0.2, Blue)

	dst := NewStore(newFakeRenderer())
	n, err := dst.Import(src.Export())
	require.NoError(t, err)
	assert.Equal(t, src.Len(), n)
	assert.Equal(t, src.Points(), dst.Points())
}

func TestImportAppends(t *testing.T) {
	r := newFakeRenderer()
	s := NewStore(r)
	s.AddPoint(9, 9, Green)
	_, err := s.Import(Table{{X: 1, Y: 1, Code: 2}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 9, Y: 9, Label: Green}, {X: 1, Y: 1, Label: Blue}}, s.Points())
	assertAligned(t, s, r)
}

func TestImportRejectsWholeTable(t *testing.T) {
	tests := []struct {
		name   string
		table  Table
		line   int
		column string
	}{
		{"unknown code", Table{{X: 1, Y: 1, Code: 0}, {X: 2, Y: 2, Code: 3}}, 3, ColumnColor},
		{"negative code", Table{{X: 1, Y: 1, Code: -1}}, 2, ColumnColor},
		{"nan x", Table{{X: math.NaN(), Y: 1, Code: 1}}, 2, ColumnX},
		{"inf y", Table{{X: 0, Y: 1, Code: 1}, {X: 0, Y: math.Inf(1), Code: 1}}, 3, ColumnY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRenderer()
			s := NewStore(r)
			n, err := s.Import(tt.table)
			require.Error(t, err)
			assert.Equal(t, 0, n)
			assert.Equal(t, 0, s.Len())
			assert.Empty(t, r.live)

			var ife *InvalidFileError
			require.True(t, errors.As(err, &ife))
			assert.Equal(t, tt.line, ife.Line)
			assert.Equal(t, tt.column, ife.Column)
			assert.ErrorIs(t, err, ErrInvalidFile)
		})
	}
}

func TestInvalidFileErrorMessage(t *testing.T) {
	cause := errors.New("strconv.ParseFloat: parsing \"abc\": invalid syntax")
	err := &InvalidFileError{Path: "a.csv", Line: 4, Column: "x", Reason: "bad number", Err: cause}
	assert.Equal(t, `invalid dataset file a.csv: line 4: column "x": bad number: `+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestLabels(t *testing.T) {
	for _, l := range Labels {
		got, err := ParseLabel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)

		back, ok := LabelFromCode(l.Code())
		require.True(t, ok)
		assert.Equal(t, l, back)
	}
	_, err := ParseLabel("erase")
	assert.Error(t, err)
	_, ok := LabelFromCode(3)
	assert.False(t, ok)
	assert.Equal(t, "label(7)", Label(7).String())
	assert.Equal(t, 0, Red.Code())
	assert.Equal(t, 1, Green.Code())
	assert.Equal(t, 2, Blue.Code())
}
