package sim

import (
	"math"
	"testing"

	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/geom"
	"github.com/lifeline-game/lifeline/internal/terrain"
)

func groundedPlanet(t *testing.T, center geom.Vec2, radius float64) *Planet {
	t.Helper()
	ground, err := terrain.Generate(11, radius, terrain.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	return &Planet{
		Center:    center,
		Radius:    radius,
		Gravity:   20,
		Influence: 4 * radius,
		Ground:    ground,
	}
}

func TestGravityAt(t *testing.T) {
	cfg := config.Default()
	p := groundedPlanet(t, geom.Vec2{}, 100)
	planets := []*Planet{p}

	tests := []struct {
		name     string
		pos      geom.Vec2
		wantMag  float64
		wantZero bool
	}{
		{"inside_influence", geom.Vec2{X: 200}, 20 * 100 / 200.0, false},
		{"at_influence_edge", geom.Vec2{X: 400}, 20 * 100 / 400.0, false},
		{"outside_influence", geom.Vec2{X: 401}, 0, true},
		{"far_away", geom.Vec2{X: 2000, Y: 2000}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GravityAt(tt.pos, planets, cfg)
			if tt.wantZero {
				if g != (geom.Vec2{}) {
					t.Fatalf("gravity = %v, want zero", g)
				}
				return
			}
			if math.Abs(g.Len()-tt.wantMag) > 1e-9 {
				t.Errorf("magnitude = %v, want %v", g.Len(), tt.wantMag)
			}
			// Always pulls toward the center.
			if g.Dot(p.Center.Sub(tt.pos)) <= 0 {
				t.Errorf("gravity %v does not point at the planet", g)
			}
		})
	}
}

func TestGravityAt_DistanceFloor(t *testing.T) {
	cfg := config.Default()
	p := groundedPlanet(t, geom.Vec2{}, 100)

	g := GravityAt(geom.Vec2{X: 1e-12}, []*Planet{p}, cfg)
	if !g.IsFinite() {
		t.Fatalf("gravity at the center is not finite: %v", g)
	}
	if want := 20 * 100 / cfg.MinGravityDist; math.Abs(g.Len()-want) > 1e-6 {
		t.Errorf("magnitude = %v, want floor value %v", g.Len(), want)
	}
}

func TestGravityAt_NearestPlanetOnly(t *testing.T) {
	cfg := config.Default()
	near := groundedPlanet(t, geom.Vec2{X: 0}, 100)
	far := groundedPlanet(t, geom.Vec2{X: 1000}, 100)
	far.Gravity = 1000 // must not matter

	g := GravityAt(geom.Vec2{X: 300}, []*Planet{near, far}, cfg)
	if g.X >= 0 {
		t.Errorf("gravity %v pulls toward the far planet", g)
	}
}

func TestGravityAt_NoPlanets(t *testing.T) {
	if g := GravityAt(geom.Vec2{X: 5}, nil, config.Default()); g != (geom.Vec2{}) {
		t.Errorf("gravity in empty space = %v, want zero", g)
	}
}

func TestPlanet_SurfaceDot(t *testing.T) {
	p := groundedPlanet(t, geom.Vec2{}, 100)

	// The landing strip is flat, so the surface normal lines up with the
	// radial direction there.
	x0, x1 := p.Ground.LandingRange()
	angle := (x0 + x1) / 2 / p.Ground.Circumference() * 2 * math.Pi
	if got := p.SurfaceDot(angle); math.Abs(got-1) > 1e-9 {
		t.Errorf("landing strip dot = %v, want 1", got)
	}

	// Everywhere, the dot must stay in (0, 1].
	for i := 0; i < 100; i++ {
		a := float64(i) / 100 * 2 * math.Pi
		d := p.SurfaceDot(a)
		if d <= 0 || d > 1 {
			t.Fatalf("dot %v at angle %v outside (0, 1]", d, a)
		}
	}
}

func TestPlanet_NeedsSupplies(t *testing.T) {
	tests := []struct {
		name string
		p    Planet
		want bool
	}{
		{"infected_and_inhabited", Planet{Population: 3, Infection: 0.5}, true},
		{"cured", Planet{Population: 3, Cured: true}, false},
		{"dead", Planet{Population: 0, Infection: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.NeedsSupplies(); got != tt.want {
				t.Errorf("NeedsSupplies() = %v, want %v", got, tt.want)
			}
		})
	}
}
