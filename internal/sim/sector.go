package sim

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/geom"
	"github.com/lifeline-game/lifeline/internal/terrain"
)

const (
	worldSize = 2600.0 // square sector, world units

	shipSize  = 10.0 // collision radius of the ship hull
	crateSize = 8.0  // collision radius of a crate

	looseCrateCap    = 16  // loose crates in the sector at once
	starCount        = 140 // backdrop stars
	multiplierWindow = 4.0 // seconds between drops before the bonus resets
	placeAttempts    = 100
)

var planetNames = []string{
	"Ashfall", "Bracken", "Cinder Reach", "Dawnhold", "Ember's Gate",
	"Fallow", "Gloamwick", "Harrow", "Ironvale", "Juniper Deep",
	"Kestrel", "Lowmarch", "Mirrorhome", "Northwake", "Oldlight",
}

// Stats tracks one run for the end screen.
type Stats struct {
	Delivered int
	Lost      int
	Crashes   int
	MaxTrain  int
	BestBonus float64
}

// Sector owns the whole simulation: the ship, its crate train, the
// planets, the epidemic model and the decorative effects. One Tick call
// advances everything by a single frame.
type Sector struct {
	Ship    ShipState
	Train   Train
	Loose   []CrateLink
	Planets []*Planet

	Epidemic *Epidemic
	Log      *MessageLog
	FX       *Effects
	Stats    Stats

	cfg         *config.Tuning
	seed        int64
	planetCount int            // requested count, 0 means pick from the seed
	rng         *rand.Rand
	lastIn      Input

	start      geom.Vec2 // respawn point
	score      float64
	multiplier float64
	sinceDrop  float64
}

// New generates a sector from a seed. The same seed, planet count and
// tuning always produce the same sector. A planetCount of 0 lets the
// seed pick; anything else must fit the sector.
func New(seed int64, planetCount int, cfg *config.Tuning) (*Sector, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sector tuning: %w", err)
	}
	if planetCount < 0 || planetCount > len(planetNames) {
		return nil, fmt.Errorf("sector: planet count %d outside 1..%d", planetCount, len(planetNames))
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	s := &Sector{
		cfg:         cfg,
		seed:        seed,
		planetCount: planetCount,
		rng:         rng,
		start:       geom.Vec2{X: worldSize / 2, Y: 140},
		multiplier:  1,
	}
	s.Ship = ShipState{Pos: s.start, Heading: math.Pi / 2}

	names := make([]string, len(planetNames))
	copy(names, planetNames)
	rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	numPlanets := planetCount
	if numPlanets == 0 {
		numPlanets = 5 + rng.IntN(3)
	}
	for i := 0; i < numPlanets; i++ {
		radius := 80 + rng.Float64()*40
		influence := cfg.InfluenceFactor * radius

		var center geom.Vec2
		for attempt := 0; attempt < placeAttempts; attempt++ {
			center = geom.Vec2{
				X: influence + rng.Float64()*(worldSize-2*influence),
				Y: influence + rng.Float64()*(worldSize-2*influence),
			}
			if !s.tooClose(center, radius, influence) {
				break
			}
		}

		ground, err := terrain.Generate(seed*1000+int64(i), radius, terrain.DefaultParams())
		if err != nil {
			return nil, fmt.Errorf("planet %d terrain: %w", i, err)
		}

		p := &Planet{
			Index:     i,
			Name:      names[i%len(names)],
			Center:    center,
			Radius:    radius,
			Gravity:   cfg.GravityMin + rng.Float64()*(cfg.GravityMax-cfg.GravityMin),
			Influence: influence,
			Ground:    ground,
		}
		// The first planet always has survivors; the rest may be barren.
		if i == 0 || rng.Float64() > 0.15 {
			p.Population = float64(2 + rng.IntN(4))
			p.Infection = 0.3 + rng.Float64()*0.5
		}
		s.Planets = append(s.Planets, p)
	}

	s.Log = NewMessageLog()
	s.Epidemic = NewEpidemic(cfg, s.Planets, s.Log)
	s.FX = NewEffects()
	s.FX.SpawnStars(rng, worldSize, worldSize, starCount)

	for _, p := range s.Planets {
		if p.Inhabited() {
			s.spawnLooseCrate(p)
			s.spawnLooseCrate(p)
		}
	}

	s.Log.Add(1, MsgStory, "distress calls on every channel, the outbreak is sector wide")
	s.Log.Add(1, MsgInfo, "hitch supply crates and haul them to the infected colonies")
	s.Log.Add(1, MsgInfo, "fly gently, a hard landing destroys the cargo")

	return s, nil
}

// Reset rebuilds the sector from its original seed and tuning.
func (s *Sector) Reset() error {
	fresh, err := New(s.seed, s.planetCount, s.cfg)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// tooClose keeps planet bodies apart and the spawn point outside every
// gravity well. Influence fields may overlap; gravity only ever pulls
// toward the nearest planet.
func (s *Sector) tooClose(center geom.Vec2, radius, influence float64) bool {
	if center.Dist(s.start) < influence+200 {
		return true
	}
	for _, p := range s.Planets {
		if center.Dist(p.Center) < radius+p.Radius+260 {
			return true
		}
	}
	return false
}

// spawnLooseCrate rests a crate on the surface of p at a random angle.
func (s *Sector) spawnLooseCrate(p *Planet) {
	angle := s.rng.Float64() * 2 * math.Pi
	dir := geom.FromAngle(angle, 1)
	pos := p.Center.Add(dir.Scale(p.SurfaceRadiusAt(angle) + crateSize))
	s.Loose = append(s.Loose, CrateLink{
		Pos:      pos,
		SpinRate: (s.rng.Float64() - 0.5) * 2,
		Occupied: true,
	})
}

// Over reports whether the run has ended either way.
func (s *Sector) Over() bool { return s.Epidemic.Won() || s.Epidemic.Lost() }

// Tick advances the simulation by dt seconds. Oversized deltas are clamped
// so a stalled frame cannot tunnel the ship through terrain.
func (s *Sector) Tick(dt float64, in Input) {
	s.lastIn = in
	if dt <= 0 {
		return
	}
	if dt > s.cfg.MaxTickDelta {
		dt = s.cfg.MaxTickDelta
	}
	if s.Over() {
		s.FX.Tick(dt)
		return
	}

	gravity := GravityAt(s.Ship.Pos, s.Planets, s.cfg)
	s.Ship.Integrate(dt, in, gravity, s.cfg)
	clampToBounds(&s.Ship.Pos, &s.Ship.Vel, worldSize, worldSize)

	s.tickTrain(dt)
	s.tickPickup()
	s.tickShipContact()
	s.tickCrates(dt)
	s.tickBonus(dt)

	dayBefore := s.Epidemic.Day()
	s.Epidemic.Tick(dt)
	if s.Epidemic.Day() != dayBefore {
		s.restock()
	}

	s.FX.Tick(dt)

	if n := s.Train.Len(); n > s.Stats.MaxTrain {
		s.Stats.MaxTrain = n
	}
}

func (s *Sector) tickTrain(dt float64) {
	severed := s.Train.Solve(s.Ship.Pos, dt, s.cfg)
	if len(severed) == 0 {
		return
	}
	for _, link := range severed {
		if !link.Occupied {
			continue
		}
		s.Stats.Lost++
		s.FX.SpawnDebris(link.Pos, link.Vel.Scale(0.5), link.SpinRate*3)
	}
	s.multiplier = 1
	s.Log.Add(s.Epidemic.Day(), MsgBad, "the chain snapped, crates are adrift")
}

func (s *Sector) tickPickup() {
	kept := s.Loose[:0]
	for _, crate := range s.Loose {
		if crate.Pos.Dist(s.Ship.Pos) <= s.cfg.PickupRadius &&
			s.Train.Attach(crate.Pos, crate.SpinRate, s.cfg) {
			if s.Train.Len() == 1 {
				s.Log.Add(s.Epidemic.Day(), MsgGood, "supply crate hitched")
			}
			continue
		}
		kept = append(kept, crate)
	}
	s.Loose = kept
}

func (s *Sector) tickShipContact() {
	c, hit := collidePlanet(&s.Ship.Pos, &s.Ship.Vel, shipSize, s.Planets)
	if !hit {
		return
	}
	if c.speed <= s.cfg.LethalSpeed && c.dot >= s.cfg.LandingDot {
		return
	}
	s.crash(c.planet)
}

// crash destroys the ship and everything in tow, then respawns the ship at
// the sector start.
func (s *Sector) crash(on *Planet) {
	s.FX.SpawnExplosion(s.Ship.Pos)
	for _, link := range s.Train.DropAll() {
		if !link.Occupied {
			continue
		}
		s.Stats.Lost++
		s.FX.SpawnDebris(link.Pos, link.Vel.Scale(0.3), link.SpinRate*4)
	}
	s.Stats.Crashes++
	s.score -= float64(s.cfg.CrashPenalty)
	if s.score < 0 {
		s.score = 0
	}
	s.multiplier = 1
	s.Ship = ShipState{Pos: s.start, Heading: math.Pi / 2}
	s.Log.Add(s.Epidemic.Day(), MsgBad, fmt.Sprintf("ship down on %s, cargo lost", on.Name))
}

// tickCrates handles towed crates touching planets: a drop on a colony
// that still needs supplies delivers the cargo, anything else is ordinary
// terrain contact, lethal at speed.
func (s *Sector) tickCrates(dt float64) {
	for i := range s.Loose {
		s.Loose[i].Spin += s.Loose[i].SpinRate * dt
	}

	for i := range s.Train.Links {
		link := &s.Train.Links[i]
		if !link.Occupied {
			continue
		}

		if p := nearestPlanet(link.Pos, s.Planets); p != nil &&
			p.NeedsSupplies() && withinDeliveryRange(link.Pos, p, s.cfg.DeliveryMargin) {
			s.deliver(link, p)
			continue
		}

		c, hit := collidePlanet(&link.Pos, &link.Vel, crateSize, s.Planets)
		if hit && c.speed > s.cfg.LethalSpeed {
			link.Occupied = false
			s.Stats.Lost++
			s.FX.SpawnExplosion(link.Pos)
		}
	}
	s.Train.Compact()
}

func (s *Sector) deliver(link *CrateLink, p *Planet) {
	if !s.Epidemic.ApplyDelivery(p.Index) {
		return
	}
	link.Occupied = false
	s.score += float64(s.cfg.ScorePerDrop) * s.multiplier
	s.Stats.Delivered++
	if s.multiplier > s.Stats.BestBonus {
		s.Stats.BestBonus = s.multiplier
	}
	s.FX.SpawnFlash(link.Pos)
	if s.multiplier > 1 {
		s.Log.Add(s.Epidemic.Day(), MsgGood,
			fmt.Sprintf("supplies down on %s, x%.1f bonus", p.Name, s.multiplier))
	} else {
		s.Log.Add(s.Epidemic.Day(), MsgGood, fmt.Sprintf("supplies down on %s", p.Name))
	}
	s.multiplier += 0.5
	s.sinceDrop = 0
}

// tickBonus lets the delivery bonus lapse when drops stop coming.
func (s *Sector) tickBonus(dt float64) {
	s.sinceDrop += dt
	if s.sinceDrop > multiplierWindow {
		s.multiplier = 1
	}
}

// restock spawns fresh crates on inhabited planets at each day boundary,
// up to the sector cap.
func (s *Sector) restock() {
	for _, p := range s.Planets {
		if len(s.Loose) >= looseCrateCap {
			return
		}
		if p.Inhabited() && s.rng.Float64() < 0.5 {
			s.spawnLooseCrate(p)
		}
	}
}

func (s *Sector) Score() int          { return int(s.score) }
func (s *Sector) Multiplier() float64 { return s.multiplier }
func (s *Sector) Seed() int64         { return s.seed }
func (s *Sector) WorldSize() float64  { return worldSize }
