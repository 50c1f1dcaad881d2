package sim

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/lifeline-game/lifeline/internal/geom"
)

// EffectKind selects the sprite a decorative entity renders with.
type EffectKind int

const (
	FxStar EffectKind = iota
	FxFlash
	FxExplosion
	FxDebris
)

// Fx is the marker component on every decorative entity. Die is the sim
// time at which the entity expires; stars never do.
type Fx struct {
	Kind EffectKind
	Die  float64
}

// Position is the world position of a decorative entity.
type Position struct {
	Pos  geom.Vec2
	Spin float64
}

// Motion gives drifting effects a velocity and rotation.
type Motion struct {
	Vel      geom.Vec2
	SpinRate float64
}

const (
	flashLife     = 0.6
	explosionLife = 0.9
	debrisLife    = 2.5
	noExpiry      = -1.0
)

// Effects owns the short-lived decorative entities: the star backdrop,
// delivery flashes, explosions and tumbling debris. None of it feeds back
// into the simulation.
type Effects struct {
	world    *ecs.World
	static   *ecs.Map2[Position, Fx]
	drifting *ecs.Map3[Position, Motion, Fx]
	filter   *ecs.Filter2[Position, Fx]
	motions  *ecs.Filter3[Position, Motion, Fx]
	now      float64
}

func NewEffects() *Effects {
	w := ecs.NewWorld(256)
	return &Effects{
		world:    w,
		static:   ecs.NewMap2[Position, Fx](w),
		drifting: ecs.NewMap3[Position, Motion, Fx](w),
		filter:   ecs.NewFilter2[Position, Fx](w),
		motions:  ecs.NewFilter3[Position, Motion, Fx](w),
	}
}

// SpawnStars scatters the fixed star backdrop across the world rectangle.
func (e *Effects) SpawnStars(rng *rand.Rand, w, h float64, n int) {
	for i := 0; i < n; i++ {
		pos := Position{Pos: geom.Vec2{X: rng.Float64() * w, Y: rng.Float64() * h}}
		fx := Fx{Kind: FxStar, Die: noExpiry}
		e.static.NewEntity(&pos, &fx)
	}
}

func (e *Effects) SpawnFlash(at geom.Vec2) {
	pos := Position{Pos: at}
	fx := Fx{Kind: FxFlash, Die: e.now + flashLife}
	e.static.NewEntity(&pos, &fx)
}

func (e *Effects) SpawnExplosion(at geom.Vec2) {
	pos := Position{Pos: at}
	fx := Fx{Kind: FxExplosion, Die: e.now + explosionLife}
	e.static.NewEntity(&pos, &fx)
}

// SpawnDebris launches a tumbling crate husk, used when a crate is severed
// from the chain or destroyed in a crash.
func (e *Effects) SpawnDebris(at geom.Vec2, vel geom.Vec2, spinRate float64) {
	pos := Position{Pos: at}
	mot := Motion{Vel: vel, SpinRate: spinRate}
	fx := Fx{Kind: FxDebris, Die: e.now + debrisLife}
	e.drifting.NewEntity(&pos, &mot, &fx)
}

// Tick advances drifting effects and reaps everything past its expiry.
func (e *Effects) Tick(dt float64) {
	e.now += dt

	q := e.motions.Query()
	for q.Next() {
		pos, mot, _ := q.Get()
		pos.Pos = pos.Pos.Add(mot.Vel.Scale(dt))
		pos.Spin += mot.SpinRate * dt
	}

	var dead []ecs.Entity
	all := e.filter.Query()
	for all.Next() {
		_, fx := all.Get()
		if fx.Die >= 0 && e.now >= fx.Die {
			dead = append(dead, all.Entity())
		}
	}
	for _, ent := range dead {
		e.world.RemoveEntity(ent)
	}
}

// EffectView is a render-ready copy of one decorative entity.
type EffectView struct {
	Kind EffectKind
	Pos  geom.Vec2
	Spin float64
	Life float64 // remaining seconds, negative for permanent effects
}

// Views copies all live effects into the given slice, reusing its capacity.
func (e *Effects) Views(out []EffectView) []EffectView {
	out = out[:0]
	q := e.filter.Query()
	for q.Next() {
		pos, fx := q.Get()
		life := noExpiry
		if fx.Die >= 0 {
			life = fx.Die - e.now
		}
		out = append(out, EffectView{Kind: fx.Kind, Pos: pos.Pos, Spin: pos.Spin, Life: life})
	}
	return out
}
