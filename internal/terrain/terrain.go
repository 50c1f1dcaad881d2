// Package terrain generates deterministic planet surface profiles.
//
// A profile is a closed loop of piecewise quadratic height segments around
// the planet's circumference. The same seed always yields the same profile,
// so a planet's ground never changes between visits or sessions.
package terrain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Params bounds the generated curves so surfaces stay navigable.
type Params struct {
	Segments  int     // number of quadratic segments in the loop
	MaxHeight float64 // boundary heights stay within ±MaxHeight
	MaxSlope  float64 // |dh/dx| bound along the surface
	AmpMin    float64 // curvature coefficient range (before slope capping)
	AmpMax    float64
}

// DefaultParams returns the tuning used for standard planets.
func DefaultParams() Params {
	return Params{
		Segments:  8,
		MaxHeight: 18,
		MaxSlope:  0.45,
		AmpMin:    4,
		AmpMax:    14,
	}
}

// Point is one sampled (arc position, height) pair.
type Point struct {
	X, H float64
}

// segment is h(u) = a·u² + b·u + c over normalized u ∈ [0,1),
// valid for arc positions [x0, x1).
type segment struct {
	a, b, c float64
	x0, x1  float64
}

func (s *segment) heightAt(x float64) float64 {
	u := (x - s.x0) / (s.x1 - s.x0)
	return s.a*u*u + s.b*u + s.c
}

func (s *segment) slopeAt(x float64) float64 {
	u := (x - s.x0) / (s.x1 - s.x0)
	return (2*s.a*u + s.b) / (s.x1 - s.x0)
}

// Profile is a generated surface height function around one planet.
type Profile struct {
	radius   float64
	circ     float64
	segments []segment
	landing  int // index of the flat landing segment
}

// Generate builds a profile from a seed and planet radius. Segment boundary
// heights are drawn as a de-trended random walk that returns to zero at the
// closure boundary, so the surface loops without a seam. One segment is left
// perfectly flat as a landing strip.
func Generate(seed int64, radius float64, p Params) (*Profile, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("terrain: radius %v must be positive", radius)
	}
	if p.Segments < 4 {
		return nil, fmt.Errorf("terrain: need at least 4 segments, got %d", p.Segments)
	}
	if p.MaxHeight <= 0 || p.MaxSlope <= 0 {
		return nil, fmt.Errorf("terrain: MaxHeight and MaxSlope must be positive")
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))
	circ := 2 * math.Pi * radius

	// Uneven segment widths, normalized to the circumference.
	weights := make([]float64, p.Segments)
	total := 0.0
	for i := range weights {
		weights[i] = 1 + rng.Float64()
		total += weights[i]
	}
	minLen := circ
	for i := range weights {
		weights[i] = weights[i] / total * circ
		if weights[i] < minLen {
			minLen = weights[i]
		}
	}

	landing := 1 + rng.IntN(p.Segments-2)

	// Boundary heights form a random walk around the loop. The walk is
	// de-trended so it returns to 0 exactly at the closure boundary, which
	// keeps HeightAt continuous across the wrap. The landing segment
	// contributes a zero step so its two boundaries coincide.
	stepMax := 0.45 * p.MaxSlope * minLen
	steps := make([]float64, p.Segments)
	drift := 0.0
	for i := range steps {
		if i == landing {
			continue
		}
		steps[i] = (rng.Float64()*2 - 1) * stepMax
		drift += steps[i]
	}
	drift /= float64(p.Segments - 1)
	bounds := make([]float64, p.Segments+1)
	peak := 0.0
	for i := 1; i <= p.Segments; i++ {
		step := steps[i-1]
		if i-1 != landing {
			step -= drift
		}
		bounds[i] = bounds[i-1] + step
		if math.Abs(bounds[i]) > peak {
			peak = math.Abs(bounds[i])
		}
	}
	bounds[p.Segments] = 0
	if peak > p.MaxHeight {
		// Uniform rescale preserves closure, flatness and slope bounds.
		for i := range bounds {
			bounds[i] *= p.MaxHeight / peak
		}
	}

	segs := make([]segment, p.Segments)
	x0 := 0.0
	for i := range segs {
		x1 := x0 + weights[i]
		if i == p.Segments-1 {
			x1 = circ
		}
		left, right := bounds[i], bounds[i+1]

		// h(0) = left and h(1) = right pin c and b once a is chosen,
		// so adjacent segments meet exactly.
		a := 0.0
		if i != landing {
			a = p.AmpMin + rng.Float64()*(p.AmpMax-p.AmpMin)
			if rng.IntN(2) == 0 {
				a = -a
			}
			// The extreme slope over the segment is |right-left| + |a|
			// in u-space; shrink a to honor the navigability bound.
			slopeCap := p.MaxSlope*(x1-x0) - math.Abs(right-left)
			if slopeCap < 0 {
				slopeCap = 0
			}
			// The curve deviates from the boundary chord by at most
			// |a|/4, so this keeps every interior point under MaxHeight.
			heightCap := 4 * (p.MaxHeight - math.Max(math.Abs(left), math.Abs(right)))
			if heightCap < 0 {
				heightCap = 0
			}
			a = clamp(a, -math.Min(slopeCap, heightCap), math.Min(slopeCap, heightCap))
		}
		segs[i] = segment{
			a:  a,
			b:  right - a - left,
			c:  left,
			x0: x0,
			x1: x1,
		}
		x0 = x1
	}

	prof := &Profile{
		radius:   radius,
		circ:     circ,
		segments: segs,
		landing:  landing,
	}
	for _, pt := range prof.Sample(4 * p.Segments) {
		if math.IsNaN(pt.H) || math.IsInf(pt.H, 0) {
			return nil, fmt.Errorf("terrain: seed %d produced a non-finite height", seed)
		}
	}
	return prof, nil
}

// Radius returns the planet's base radius.
func (p *Profile) Radius() float64 { return p.radius }

// Circumference returns the surface parameter period.
func (p *Profile) Circumference() float64 { return p.circ }

// HeightAt returns the terrain height above the base radius at arc position
// x. The surface is a closed loop: x wraps modulo the circumference, so any
// real x (including negatives) is valid.
func (p *Profile) HeightAt(x float64) float64 {
	return p.segments[p.segmentAt(p.wrap(x))].heightAt(p.wrap(x))
}

// SlopeAt returns dh/dx at arc position x.
func (p *Profile) SlopeAt(x float64) float64 {
	return p.segments[p.segmentAt(p.wrap(x))].slopeAt(p.wrap(x))
}

// HeightAtAngle is HeightAt for an angle around the planet center.
func (p *Profile) HeightAtAngle(theta float64) float64 {
	return p.HeightAt(theta / (2 * math.Pi) * p.circ)
}

// SlopeAtAngle is SlopeAt for an angle around the planet center.
func (p *Profile) SlopeAtAngle(theta float64) float64 {
	return p.SlopeAt(theta / (2 * math.Pi) * p.circ)
}

// LandingRange returns the [x0, x1) arc interval of the flat landing strip.
func (p *Profile) LandingRange() (float64, float64) {
	s := p.segments[p.landing]
	return s.x0, s.x1
}

// Sample returns n evenly spaced (x, h) points for the renderer.
func (p *Profile) Sample(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		x := float64(i) / float64(n) * p.circ
		pts[i] = Point{X: x, H: p.HeightAt(x)}
	}
	return pts
}

func (p *Profile) wrap(x float64) float64 {
	x = math.Mod(x, p.circ)
	if x < 0 {
		x += p.circ
	}
	return x
}

func (p *Profile) segmentAt(x float64) int {
	// Few segments per planet; a scan beats bookkeeping.
	for i := range p.segments {
		if x < p.segments[i].x1 {
			return i
		}
	}
	return len(p.segments) - 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
