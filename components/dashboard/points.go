package dashboard

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ScatterPoint is one animal on the body-development chart.
type ScatterPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Bounds is the generation window for scatter points.
type Bounds struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

// DefaultBounds covers dorsal development 140-200cm and body weight 320-600kg.
func DefaultBounds() Bounds {
	return Bounds{XMin: 140, XMax: 200, YMin: 320, YMax: 600}
}

// Validate ensures both ranges are ordered.
func (b Bounds) Validate() error {
	if b.XMin > b.XMax {
		return fmt.Errorf("scatter x bounds out of order: %v > %v", b.XMin, b.XMax)
	}
	if b.YMin > b.YMax {
		return fmt.Errorf("scatter y bounds out of order: %v > %v", b.YMin, b.YMax)
	}
	return nil
}

// Contains reports whether the point lies inside the closed window.
func (b Bounds) Contains(p ScatterPoint) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// PointSource supplies scatter points for a render.
type PointSource interface {
	Points(n int, bounds Bounds) []ScatterPoint
}

// RandomPointSource draws uniform points. Safe for concurrent renders.
type RandomPointSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPointSource seeds the generator; a zero seed uses the clock.
func NewRandomPointSource(seed int64) *RandomPointSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPointSource{rnd: rand.New(rand.NewSource(seed))}
}

// Points returns n fresh points inside bounds.
func (s *RandomPointSource) Points(n int, bounds Bounds) []ScatterPoint {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	points := make([]ScatterPoint, n)
	for i := range points {
		points[i] = ScatterPoint{
			X: bounds.XMin + s.rnd.Float64()*(bounds.XMax-bounds.XMin),
			Y: bounds.YMin + s.rnd.Float64()*(bounds.YMax-bounds.YMin),
		}
	}
	return points
}

// FixedPointSource replays a fixture, cycling when more points are requested.
type FixedPointSource []ScatterPoint

// Points ignores bounds and returns the fixture in order.
func (s FixedPointSource) Points(n int, _ Bounds) []ScatterPoint {
	if n <= 0 || len(s) == 0 {
		return nil
	}
	points := make([]ScatterPoint, n)
	for i := range points {
		points[i] = s[i%len(s)]
	}
	return points
}
