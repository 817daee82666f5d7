package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawdata/internal/dataset"
)

type call struct {
	op    string
	x, y  float64
	label dataset.Label
	sigma float64
	count int
}

type spyStore struct {
	calls []call
}

func (s *spyStore) AddCluster(cx, cy float64, label dataset.Label, sigma float64, count int) int {
	s.calls = append(s.calls, call{op: "cluster", x: cx, y: cy, label: label, sigma: sigma, count: count})
	return count
}

func (s *spyStore) EraseNear(x, y, radius float64) int {
	s.calls = append(s.calls, call{op: "erase", x: x, y: y, sigma: radius})
	return 0
}

func newTestController() (*Controller, *spyStore) {
	st := &spyStore{}
	return New(st, Config{Label: dataset.Blue, Sigma: 10, Count: 5}), st
}

func TestPressSamplesCluster(t *testing.T) {
	c, st := newTestController()
	c.Press(30, 40)
	require.Len(t, st.calls, 1)
	assert.Equal(t, call{op: "cluster", x: 30, y: 40, label: dataset.Blue, sigma: 10, count: 5}, st.calls[0])
	assert.True(t, c.Dragging())
}

func TestPressErases(t *testing.T) {
	c, st := newTestController()
	c.SetMode(Erase)
	c.Press(1, 2)
	assert.Equal(t, []call{{op: "erase", x: 1, y: 2, sigma: 10}}, st.calls)
}

func TestDragDebounce(t *testing.T) {
	c, st := newTestController()
	c.Press(0, 0)

	// Each move is 2 units from the last sampled position.
	c.Move(2, 0)
	c.Move(0, 2)
	c.Move(-2, 0)
	c.Move(0, -2)
	assert.Len(t, st.calls, 1)

	c.Move(6, 0)
	require.Len(t, st.calls, 2)
	assert.Equal(t, 6.0, st.calls[1].x)

	// The anchor moved to (6, 0).
	c.Move(9, 0)
	assert.Len(t, st.calls, 2)
	c.Move(11, 0)
	assert.Len(t, st.calls, 3)
}

func TestMoveThresholdBoundary(t *testing.T) {
	c, st := newTestController()
	c.Press(0, 0)
	c.Move(3, 4) // squared distance 25
	assert.Len(t, st.calls, 2)
}

func TestMoveWhileIdleIsIgnored(t *testing.T) {
	c, st := newTestController()
	c.Move(100, 100)
	assert.Empty(t, st.calls)
	assert.False(t, c.Dragging())
}

func TestReleaseChecksThenStops(t *testing.T) {
	c, st := newTestController()
	c.Press(0, 0)
	c.Release(10, 0)
	assert.Len(t, st.calls, 2)
	assert.False(t, c.Dragging())

	c.Move(50, 50)
	assert.Len(t, st.calls, 2)

	c.Press(0, 0)
	c.Release(1, 1)
	assert.Len(t, st.calls, 3)
}

func TestEraseDrag(t *testing.T) {
	c, st := newTestController()
	c.SetMode(Erase)
	c.SetSigma(4)
	c.Press(0, 0)
	c.Move(0, 7)
	assert.Equal(t, []call{
		{op: "erase", x: 0, y: 0, sigma: 4},
		{op: "erase", x: 0, y: 7, sigma: 4},
	}, st.calls)
}

func TestSetters(t *testing.T) {
	c, st := newTestController()
	c.SetMode(Erase)
	c.SetLabel(dataset.Red)
	assert.Equal(t, Draw, c.Mode())
	assert.Equal(t, dataset.Red, c.Label())

	c.SetSigma(2.5)
	c.SetCount(12)
	assert.Equal(t, 2.5, c.Sigma())
	assert.Equal(t, 12, c.Count())

	c.Press(1, 1)
	assert.Equal(t, call{op: "cluster", x: 1, y: 1, label: dataset.Red, sigma: 2.5, count: 12}, st.calls[0])
}

func TestWithRealStore(t *testing.T) {
	s := dataset.NewStore(nopRenderer{}, dataset.WithSampler(dataset.NewGaussianSampler(5)))
	c := New(s, Config{Label: dataset.Green, Sigma: 3, Count: 4})
	c.Press(10, 10)
	c.Move(11, 10)
	c.Move(20, 10)
	c.Release(20, 10)
	assert.Equal(t, 8, s.Len())

	c.SetMode(Erase)
	c.SetSigma(1000)
	c.Press(15, 10)
	c.Release(15, 10)
	assert.Equal(t, 0, s.Len())
}

type nopRenderer struct{}

func (nopRenderer) CreateMarker(x, y, size float64, label dataset.Label) dataset.Handle { return 0 }
func (nopRenderer) DestroyMarker(dataset.Handle)                                       {}

func TestModeString(t *testing.T) {
	assert.Equal(t, "draw", Draw.String())
	assert.Equal(t, "erase", Erase.String())
	assert.Equal(t, "mode(5)", Mode(5).String())
}
