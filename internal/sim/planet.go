package sim

import (
	"math"

	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/geom"
	"github.com/lifeline-game/lifeline/internal/terrain"
)

// Planet is one body in the sector. Population and Infection evolve over
// time; Ground is immutable after generation.
type Planet struct {
	Index     int
	Name      string
	Center    geom.Vec2
	Radius    float64
	Gravity   float64 // surface acceleration scale
	Influence float64 // gravity cutoff distance from the center

	Ground *terrain.Profile

	Population float64 // living population, 0..MaxPopulation
	Infection  float64 // disease severity, 0..1
	Cured      bool    // infection reached zero; state is frozen
}

// SurfaceRadiusAt returns the distance from the planet center to the ground
// at the given world angle.
func (p *Planet) SurfaceRadiusAt(angle float64) float64 {
	return p.Radius + p.Ground.HeightAtAngle(angle)
}

// SurfaceDot returns the cosine of the angle between the local surface
// normal and the radial direction at the given world angle. A flat surface
// yields 1; steep ground trends toward 0.
func (p *Planet) SurfaceDot(angle float64) float64 {
	s := p.Ground.SlopeAtAngle(angle)
	return 1 / math.Sqrt(1+s*s)
}

func (p *Planet) Inhabited() bool { return p.Population > 0 }

// NeedsSupplies reports whether a crate dropped here has any effect.
func (p *Planet) NeedsSupplies() bool {
	return !p.Cured && p.Inhabited()
}

// GravityAt returns the gravitational acceleration at pos. Only the nearest
// planet pulls, and only within its influence radius; everywhere else space
// is inert.
func GravityAt(pos geom.Vec2, planets []*Planet, cfg *config.Tuning) geom.Vec2 {
	nearest := nearestPlanet(pos, planets)
	if nearest == nil {
		return geom.Vec2{}
	}
	rel := nearest.Center.Sub(pos)
	d := rel.Len()
	if d > nearest.Influence {
		return geom.Vec2{}
	}
	if d < cfg.MinGravityDist {
		d = cfg.MinGravityDist
	}
	return rel.Normalize().Scale(nearest.Gravity * nearest.Radius / d)
}

// nearestPlanet returns the planet whose center is closest to pos, or nil
// when the sector has no planets.
func nearestPlanet(pos geom.Vec2, planets []*Planet) *Planet {
	var best *Planet
	bestSq := math.MaxFloat64
	for _, p := range planets {
		dSq := pos.Sub(p.Center).LenSq()
		if dSq < bestSq {
			bestSq = dSq
			best = p
		}
	}
	return best
}
