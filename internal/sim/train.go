package sim

import (
	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/geom"
)

// CrateLink is one towed crate. Links form an ordered chain behind the
// ship; index 0 follows the ship directly. A link whose Occupied flag is
// false has delivered its cargo and is compacted out at the end of the
// tick.
type CrateLink struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Spin     float64 // visual rotation, radians
	SpinRate float64
	Occupied bool
}

// Train is the chain of crates towed behind the ship.
type Train struct {
	Links []CrateLink
}

func (t *Train) Len() int { return len(t.Links) }

// Attach adds a crate at the tail of the chain. It reports false when the
// chain is already at capacity.
func (t *Train) Attach(pos geom.Vec2, spinRate float64, cfg *config.Tuning) bool {
	if len(t.Links) >= cfg.MaxTrain {
		return false
	}
	t.Links = append(t.Links, CrateLink{Pos: pos, SpinRate: spinRate, Occupied: true})
	return true
}

// Solve runs one tick of chain physics. Each link first drifts by its own
// velocity, then the distance constraint pulls it back toward its
// predecessor so no gap exceeds the rest distance. If a pre-solve gap
// exceeds rest distance plus MaxStretch the chain severs there: the
// trailing sublist is removed and returned as lost crates.
//
// After Solve returns, every adjacent pair is at most CrateRestDist apart.
func (t *Train) Solve(head geom.Vec2, dt float64, cfg *config.Tuning) []CrateLink {
	prev := head
	for i := range t.Links {
		link := &t.Links[i]
		old := link.Pos
		link.Pos = link.Pos.Add(link.Vel.Scale(dt))
		link.Spin += link.SpinRate * dt

		gap := link.Pos.Sub(prev)
		dist := gap.Len()
		if dist > cfg.CrateRestDist+cfg.MaxStretch {
			severed := make([]CrateLink, len(t.Links)-i)
			copy(severed, t.Links[i:])
			t.Links = t.Links[:i]
			return severed
		}
		if dist > cfg.CrateRestDist {
			link.Pos = prev.Add(gap.Normalize().Scale(cfg.CrateRestDist))
		}
		if dt > 0 {
			link.Vel = link.Pos.Sub(old).Scale(1 / dt)
		}
		prev = link.Pos
	}
	return nil
}

// Compact removes delivered links, splicing the chain back together so the
// survivors close ranks on the next Solve.
func (t *Train) Compact() {
	kept := t.Links[:0]
	for _, link := range t.Links {
		if link.Occupied {
			kept = append(kept, link)
		}
	}
	t.Links = kept
}

// DropAll empties the chain and returns the crates that were in tow.
func (t *Train) DropAll() []CrateLink {
	if len(t.Links) == 0 {
		return nil
	}
	dropped := make([]CrateLink, len(t.Links))
	copy(dropped, t.Links)
	t.Links = t.Links[:0]
	return dropped
}
