package sim

import (
	"fmt"

	"github.com/lifeline-game/lifeline/internal/config"
)

// Epidemic runs the sector-wide disease and research model. It shares the
// planet slice with the Sector that owns it.
type Epidemic struct {
	cfg     *config.Tuning
	planets []*Planet
	log     *MessageLog

	research  float64 // cure progress, 0..1
	elapsed   float64 // seconds since sector start
	day       int     // 1-based in-game day
	mutations int     // count of strain mutations applied so far

	won  bool
	lost bool

	quarterTold bool
	halfTold    bool
}

func NewEpidemic(cfg *config.Tuning, planets []*Planet, log *MessageLog) *Epidemic {
	return &Epidemic{cfg: cfg, planets: planets, log: log, day: 1}
}

// Tick advances time, applies infection attrition on every uncured planet,
// accrues cure research from the surviving population, and updates the
// win and loss flags. Once either flag is set the model freezes.
func (e *Epidemic) Tick(dt float64) {
	if e.won || e.lost {
		return
	}

	e.elapsed += dt
	day := 1 + int(e.elapsed/e.cfg.DayLength)
	if day != e.day {
		e.day = day
		e.onNewDay()
	}

	total := 0.0
	for _, p := range e.planets {
		if !p.Cured && p.Infection > 0 && p.Population > 0 {
			p.Population -= p.Population * p.Infection * e.cfg.AttritionRate * dt
			if p.Population < 1e-3 {
				p.Population = 0
				e.log.Add(e.day, MsgBad, fmt.Sprintf("%s has gone silent", p.Name))
			}
		}
		total += p.Population
	}

	e.research += e.cfg.ResearchRate * total * dt
	if e.research >= 1 {
		e.research = 1
		e.won = true
		e.log.Add(e.day, MsgStory, "the cure is synthesized, the outbreak is over")
		return
	}
	e.announceMilestones()

	if total <= 0 {
		e.lost = true
		e.log.Add(e.day, MsgBad, "no one is left to save")
	}
}

// ApplyDelivery lands one supply crate on the planet with the given index.
// It reports whether the crate had any effect.
func (e *Epidemic) ApplyDelivery(idx int) bool {
	if idx < 0 || idx >= len(e.planets) {
		return false
	}
	p := e.planets[idx]
	if !p.NeedsSupplies() {
		return false
	}

	p.Infection -= e.cfg.InfectionPerDelivery
	if p.Infection <= 0 {
		p.Infection = 0
		p.Cured = true
		e.log.Add(e.day, MsgGood, fmt.Sprintf("%s is free of the disease", p.Name))
	}
	p.Population += e.cfg.PopPerDelivery
	if p.Population > e.cfg.MaxPopulation {
		p.Population = e.cfg.MaxPopulation
	}
	return true
}

// onNewDay fires day-boundary events: strain mutations on their scheduled
// days and the rising sense of urgency in the log.
func (e *Epidemic) onNewDay() {
	if e.mutations < len(e.cfg.MutationDays) && e.day >= e.cfg.MutationDays[e.mutations] {
		e.mutations++
		worse := false
		for _, p := range e.planets {
			if p.Cured || p.Infection <= 0 {
				continue
			}
			p.Infection *= e.cfg.MutationFactor
			if p.Infection > 1 {
				p.Infection = 1
			}
			worse = true
		}
		if worse {
			e.log.Add(e.day, MsgBad, "the strain has mutated, infections are accelerating")
		}
	}
}

func (e *Epidemic) announceMilestones() {
	if !e.quarterTold && e.research >= 0.25 {
		e.quarterTold = true
		e.log.Add(e.day, MsgStory, "research teams report a promising antigen")
	}
	if !e.halfTold && e.research >= 0.5 {
		e.halfTold = true
		e.log.Add(e.day, MsgStory, "cure trials have begun on the inner colonies")
	}
}

func (e *Epidemic) ResearchProgress() float64 { return e.research }
func (e *Epidemic) Won() bool                 { return e.won }
func (e *Epidemic) Lost() bool                { return e.lost }
func (e *Epidemic) Day() int                  { return e.day }
func (e *Epidemic) Elapsed() float64          { return e.elapsed }

// TotalPopulation sums the living population across the sector.
func (e *Epidemic) TotalPopulation() float64 {
	total := 0.0
	for _, p := range e.planets {
		total += p.Population
	}
	return total
}
