package sim

import (
	"github.com/lifeline-game/lifeline/internal/geom"
	"github.com/lifeline-game/lifeline/internal/terrain"
)

// ShipView is the render-ready ship state.
type ShipView struct {
	Pos     geom.Vec2
	Vel     geom.Vec2
	Heading float64
	Thrust  bool
}

// CrateView is one crate, towed or loose.
type CrateView struct {
	Pos  geom.Vec2
	Spin float64
}

// PlanetView is one planet. Ground is immutable and safe to share with the
// renderer.
type PlanetView struct {
	Name       string
	Center     geom.Vec2
	Radius     float64
	Influence  float64
	Population float64
	Infection  float64
	Cured      bool
	Ground     *terrain.Profile
}

// Snapshot is everything the renderer needs for one frame. The simulation
// never reads it back.
type Snapshot struct {
	Ship    ShipView
	Train   []CrateView
	Loose   []CrateView
	Planets []PlanetView
	Effects []EffectView

	Research   float64
	Day        int
	TotalPop   float64
	Score      int
	Multiplier float64
	Won        bool
	Lost       bool

	Stats    Stats
	Messages []Message

	// UI flags from the last Tick input, echoed back untouched.
	ShowMap  bool
	OpenMenu bool

	WorldSize float64
}

// Snapshot copies the current frame state into snap, reusing its slice
// capacity across frames.
func (s *Sector) Snapshot(snap *Snapshot) {
	snap.Ship = ShipView{
		Pos:     s.Ship.Pos,
		Vel:     s.Ship.Vel,
		Heading: s.Ship.Heading,
		Thrust:  s.Ship.Thrust,
	}

	snap.Train = snap.Train[:0]
	for _, link := range s.Train.Links {
		if link.Occupied {
			snap.Train = append(snap.Train, CrateView{Pos: link.Pos, Spin: link.Spin})
		}
	}

	snap.Loose = snap.Loose[:0]
	for _, crate := range s.Loose {
		snap.Loose = append(snap.Loose, CrateView{Pos: crate.Pos, Spin: crate.Spin})
	}

	snap.Planets = snap.Planets[:0]
	for _, p := range s.Planets {
		snap.Planets = append(snap.Planets, PlanetView{
			Name:       p.Name,
			Center:     p.Center,
			Radius:     p.Radius,
			Influence:  p.Influence,
			Population: p.Population,
			Infection:  p.Infection,
			Cured:      p.Cured,
			Ground:     p.Ground,
		})
	}

	snap.Effects = s.FX.Views(snap.Effects)

	snap.Research = s.Epidemic.ResearchProgress()
	snap.Day = s.Epidemic.Day()
	snap.TotalPop = s.Epidemic.TotalPopulation()
	snap.Score = s.Score()
	snap.Multiplier = s.multiplier
	snap.Won = s.Epidemic.Won()
	snap.Lost = s.Epidemic.Lost()
	snap.Stats = s.Stats
	snap.Messages = s.Log.Recent(6)
	snap.ShowMap = s.lastIn.ShowMap
	snap.OpenMenu = s.lastIn.OpenMenu
	snap.WorldSize = worldSize
}
