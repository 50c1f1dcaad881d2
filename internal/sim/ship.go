package sim

import (
	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/geom"
)

// ShipState is the towing ship. Heading is in radians, 0 pointing along
// +X, increasing clockwise in screen space.
type ShipState struct {
	Pos     geom.Vec2
	Vel     geom.Vec2
	Heading float64
	Thrust  bool // engine firing this tick, for the renderer
}

// Integrate advances the ship one tick with semi-implicit Euler: turn,
// accumulate thrust and gravity into velocity, then move by the new
// velocity. Speed is capped at MaxSpeed.
func (s *ShipState) Integrate(dt float64, in Input, gravity geom.Vec2, cfg *config.Tuning) {
	s.Heading += cfg.TurnRate * in.turn() * dt

	s.Thrust = in.Thrust
	if in.Thrust {
		s.Vel = s.Vel.Add(geom.FromAngle(s.Heading, cfg.ThrustAccel*dt))
	}
	s.Vel = s.Vel.Add(gravity.Scale(dt))

	if speed := s.Vel.Len(); speed > cfg.MaxSpeed {
		s.Vel = s.Vel.Scale(cfg.MaxSpeed / speed)
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
}

// clampToBounds keeps pos inside the world rectangle, zeroing the velocity
// component that pushed past an edge.
func clampToBounds(pos *geom.Vec2, vel *geom.Vec2, w, h float64) {
	if pos.X < 0 {
		pos.X, vel.X = 0, 0
	} else if pos.X > w {
		pos.X, vel.X = w, 0
	}
	if pos.Y < 0 {
		pos.Y, vel.Y = 0, 0
	} else if pos.Y > h {
		pos.Y, vel.Y = h, 0
	}
}
