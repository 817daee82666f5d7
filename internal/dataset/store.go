package dataset

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// MaxSigma bounds the spread of a cluster.
	MaxSigma = 50.0
	// MaxCount bounds the number of points in a cluster.
	MaxCount = 1000
	// DefaultMarkerSize is the marker radius in canvas units.
	DefaultMarkerSize = 2.0
)

// Store owns the points of a session and the markers drawn for them.
// points[i] is displayed by handles[i]; every method keeps both slices the
// same length. A Store is not safe for concurrent use.
type Store struct {
	points  []Point
	handles []Handle

	renderer   Renderer
	sampler    Sampler
	markerSize float64
	log        zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSampler replaces the time-seeded Gaussian sampler.
func WithSampler(s Sampler) Option {
	return func(st *Store) { st.sampler = s }
}

// WithMarkerSize sets the size passed to CreateMarker.
func WithMarkerSize(size float64) Option {
	return func(st *Store) { st.markerSize = size }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(st *Store) { st.log = l.With().Str("component", "store").Logger() }
}

// NewStore returns an empty store drawing through r.
func NewStore(r Renderer, opts ...Option) *Store {
	s := &Store{
		renderer:   r,
		markerSize: DefaultMarkerSize,
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.sampler == nil {
		s.sampler = newTimeSeededSampler()
	}
	return s
}

// Len returns the number of points.
func (s *Store) Len() int { return len(s.points) }

// At returns the i-th point.
func (s *Store) At(i int) Point { return s.points[i] }

// Points returns a copy of all points in insertion order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Counts returns the number of points per label.
func (s *Store) Counts() map[Label]int {
	c := make(map[Label]int, len(Labels))
	for _, p := range s.points {
		c[p.Label]++
	}
	return c
}

// Bounds returns the extent of all points; ok is false for an empty store.
func (s *Store) Bounds() (bb BBox, ok bool) {
	for i, p := range s.points {
		bb.extend(p.X, p.Y, i == 0)
	}
	return bb, len(s.points) > 0
}

// AddPoint appends a point and draws its marker. It returns the new index.
func (s *Store) AddPoint(x, y float64, label Label) int {
	h := s.renderer.CreateMarker(x, y, s.markerSize, label)
	s.points = append(s.points, Point{X: x, Y: y, Label: label})
	s.handles = append(s.handles, h)
	return len(s.points) - 1
}

// AddCluster samples count points around (cx, cy) with standard deviation
// sigma on both axes. sigma is clamped to [0, MaxSigma] and count to
// [0, MaxCount]. It returns the number of points added.
func (s *Store) AddCluster(cx, cy float64, label Label, sigma float64, count int) int {
	sigma = clampSigma(sigma)
	count = min(max(count, 0), MaxCount)
	if count == 0 {
		return 0
	}
	xs := make([]float64, count)
	ys := make([]float64, count)
	for i := range xs {
		xs[i] = s.sampler.Normal(cx, sigma)
	}
	for i := range ys {
		ys[i] = s.sampler.Normal(cy, sigma)
	}
	for i := range xs {
		s.AddPoint(xs[i], ys[i], label)
	}
	s.log.Debug().
		Float64("x", cx).Float64("y", cy).
		Str("label", label.String()).
		Float64("sigma", sigma).Int("count", count).
		Msg("cluster sampled")
	return count
}

func clampSigma(sigma float64) float64 {
	if math.IsNaN(sigma) || sigma < 0 {
		return 0
	}
	return math.Min(sigma, MaxSigma)
}

// EraseNear removes every point within radius of (x, y), boundary included,
// and destroys their markers. It returns the number of points removed.
func (s *Store) EraseNear(x, y, radius float64) int {
	if radius < 0 || math.IsNaN(radius) {
		return 0
	}
	r2 := radius * radius
	kept := 0
	for i, p := range s.points {
		dx, dy := p.X-x, p.Y-y
		if dx*dx+dy*dy <= r2 {
			s.renderer.DestroyMarker(s.handles[i])
			continue
		}
		s.points[kept] = p
		s.handles[kept] = s.handles[i]
		kept++
	}
	removed := len(s.points) - kept
	clear(s.points[kept:])
	clear(s.handles[kept:])
	s.points = s.points[:kept]
	s.handles = s.handles[:kept]
	if removed > 0 {
		s.log.Debug().Float64("x", x).Float64("y", y).Float64("radius", radius).
			Int("removed", removed).Msg("points erased")
	}
	return removed
}

// Clear removes every point and marker.
func (s *Store) Clear() {
	for _, h := range s.handles {
		s.renderer.DestroyMarker(h)
	}
	s.log.Debug().Int("removed", len(s.points)).Msg("store cleared")
	s.points = nil
	s.handles = nil
}

// Undo removes the most recently added point. It returns ErrEmptyStore and
// leaves the store unchanged when there are no points.
func (s *Store) Undo() (Point, error) {
	n := len(s.points)
	if n == 0 {
		return Point{}, ErrEmptyStore
	}
	p := s.points[n-1]
	s.renderer.DestroyMarker(s.handles[n-1])
	s.points = s.points[:n-1]
	s.handles = s.handles[:n-1]
	s.log.Debug().Float64("x", p.X).Float64("y", p.Y).Str("label", p.Label.String()).Msg("undo")
	return p, nil
}
