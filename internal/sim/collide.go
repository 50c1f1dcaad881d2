package sim

import (
	"github.com/lifeline-game/lifeline/internal/geom"
)

// contact describes a body touching a planet surface this tick.
type contact struct {
	planet *Planet
	speed  float64 // speed at the moment of impact
	dot    float64 // surface flatness at the impact point, 1 = level ground
}

// collidePlanet pushes a circular body of the given size out of the ground
// of the nearest planet and kills its inward radial velocity. It returns
// the contact when the body touched down this tick.
func collidePlanet(pos *geom.Vec2, vel *geom.Vec2, size float64, planets []*Planet) (contact, bool) {
	p := nearestPlanet(*pos, planets)
	if p == nil {
		return contact{}, false
	}
	rel := pos.Sub(p.Center)
	d := rel.Len()
	angle := rel.Angle()
	surf := p.SurfaceRadiusAt(angle) + size
	if d >= surf {
		return contact{}, false
	}

	c := contact{planet: p, speed: vel.Len(), dot: p.SurfaceDot(angle)}

	radial := rel.Normalize()
	*pos = p.Center.Add(radial.Scale(surf))
	if vr := vel.Dot(radial); vr < 0 {
		*vel = vel.Sub(radial.Scale(vr))
	}
	return c, true
}

// withinDeliveryRange reports whether pos is close enough above the ground
// of planet p to count as a supply drop.
func withinDeliveryRange(pos geom.Vec2, p *Planet, margin float64) bool {
	rel := pos.Sub(p.Center)
	return rel.Len() <= p.SurfaceRadiusAt(rel.Angle())+margin
}
