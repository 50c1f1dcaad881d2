package sim

import (
	"math"
	"testing"

	"github.com/lifeline-game/lifeline/internal/geom"
)

func TestCollidePlanet_PushOut(t *testing.T) {
	p := groundedPlanet(t, geom.Vec2{}, 100)
	planets := []*Planet{p}

	// Start buried well beneath any possible terrain height, falling in.
	pos := geom.Vec2{X: 60}
	vel := geom.Vec2{X: -40}
	c, hit := collidePlanet(&pos, &vel, 10, planets)
	if !hit {
		t.Fatal("no contact reported inside the planet")
	}
	if c.planet != p {
		t.Error("contact names the wrong planet")
	}
	if math.Abs(c.speed-40) > 1e-9 {
		t.Errorf("impact speed = %v, want 40", c.speed)
	}

	// Resolved position sits exactly on the surface shell.
	rel := pos.Sub(p.Center)
	want := p.SurfaceRadiusAt(rel.Angle()) + 10
	if math.Abs(rel.Len()-want) > 1e-9 {
		t.Errorf("resolved distance = %v, want %v", rel.Len(), want)
	}

	// Inward radial velocity is gone.
	if vr := vel.Dot(rel.Normalize()); vr < -1e-9 {
		t.Errorf("residual inward velocity %v", vr)
	}
}

func TestCollidePlanet_MissesAboveSurface(t *testing.T) {
	p := groundedPlanet(t, geom.Vec2{}, 100)

	pos := geom.Vec2{X: 200}
	vel := geom.Vec2{X: -40}
	if _, hit := collidePlanet(&pos, &vel, 10, []*Planet{p}); hit {
		t.Fatal("contact reported in open space")
	}
	if pos.X != 200 || vel.X != -40 {
		t.Error("miss modified position or velocity")
	}
}

func TestCollidePlanet_TangentialVelocityKept(t *testing.T) {
	p := groundedPlanet(t, geom.Vec2{}, 100)

	pos := geom.Vec2{X: 60}
	vel := geom.Vec2{Y: 30} // purely tangential
	if _, hit := collidePlanet(&pos, &vel, 10, []*Planet{p}); !hit {
		t.Fatal("no contact reported")
	}
	if math.Abs(vel.Y-30) > 1e-9 {
		t.Errorf("tangential velocity changed to %v", vel.Y)
	}
}

func TestWithinDeliveryRange(t *testing.T) {
	p := groundedPlanet(t, geom.Vec2{}, 100)
	surf := p.SurfaceRadiusAt(0)

	tests := []struct {
		name string
		d    float64
		want bool
	}{
		{"on_surface", surf, true},
		{"inside_margin", surf + 5, true},
		{"at_margin", surf + 10, true},
		{"beyond_margin", surf + 11, false},
		{"high_orbit", surf + 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := geom.Vec2{X: tt.d}
			if got := withinDeliveryRange(pos, p, 10); got != tt.want {
				t.Errorf("withinDeliveryRange at %v = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
