// Package config holds the gameplay tuning knobs. Defaults are compiled in;
// an optional YAML file overrides them for balancing without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning stores every balance constant of the simulation.
type Tuning struct {
	// Ship physics.
	ThrustAccel float64 `yaml:"thrust_accel"` // forward acceleration, units/s²
	TurnRate    float64 `yaml:"turn_rate"`    // heading change, rad/s
	MaxSpeed    float64 `yaml:"max_speed"`    // velocity magnitude cap, units/s
	LethalSpeed float64 `yaml:"lethal_speed"` // touchdown above this is a crash
	LandingDot  float64 `yaml:"landing_dot"`  // min surface·gravity normal dot for a landing

	// Gravity.
	GravityMin      float64 `yaml:"gravity_min"`      // per-planet strength range
	GravityMax      float64 `yaml:"gravity_max"`      //
	InfluenceFactor float64 `yaml:"influence_factor"` // influence radius = factor · planet radius
	MinGravityDist  float64 `yaml:"min_gravity_dist"` // distance floor in the gravity falloff

	// Train.
	CrateRestDist  float64 `yaml:"crate_rest_dist"` // link rest distance
	MaxStretch     float64 `yaml:"max_stretch"`     // excess beyond rest before severing
	PickupRadius   float64 `yaml:"pickup_radius"`   // ship-to-loose-crate attach distance
	DeliveryMargin float64 `yaml:"delivery_margin"` // delivery radius = surface + margin
	MaxTrain       int     `yaml:"max_train"`       // towed crate cap

	// Epidemic and research.
	AttritionRate        float64 `yaml:"attrition_rate"`         // pop loss ∝ pop·infection·rate, per second
	ResearchRate         float64 `yaml:"research_rate"`          // progress ∝ total pop·rate, per second
	PopPerDelivery       float64 `yaml:"pop_per_delivery"`       //
	InfectionPerDelivery float64 `yaml:"infection_per_delivery"` //
	MaxPopulation        float64 `yaml:"max_population"`         // per-planet cap
	DayLength            float64 `yaml:"day_length"`             // seconds of sim time per day
	MutationDays         []int   `yaml:"mutation_days"`          // days on which the pathogen mutates
	MutationFactor       float64 `yaml:"mutation_factor"`        // infection multiplier per mutation

	// Session.
	MaxTickDelta float64 `yaml:"max_tick_delta"` // dt clamp, seconds
	ScorePerDrop int     `yaml:"score_per_drop"` // base score per delivered crate
	CrashPenalty int     `yaml:"crash_penalty"`  //
}

// Default returns the stock balance.
func Default() *Tuning {
	return &Tuning{
		ThrustAccel: 96,
		TurnRate:    2,
		MaxSpeed:    120,
		LethalSpeed: 25,
		LandingDot:  0.9,

		GravityMin:      16,
		GravityMax:      32,
		InfluenceFactor: 4,
		MinGravityDist:  1,

		CrateRestDist:  24,
		MaxStretch:     12,
		PickupRadius:   14,
		DeliveryMargin: 10,
		MaxTrain:       24,

		AttritionRate:        0.02,
		ResearchRate:         0.0004,
		PopPerDelivery:       1,
		InfectionPerDelivery: 0.25,
		MaxPopulation:        9,
		DayLength:            20,
		MutationDays:         []int{150, 200},
		MutationFactor:       1.5,

		MaxTickDelta: 0.1,
		ScorePerDrop: 100,
		CrashPenalty: 1000,
	}
}

// Load reads a YAML tuning file layered over the defaults.
func Load(path string) (*Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.ThrustAccel <= 0:
		return fmt.Errorf("tuning: thrust_accel must be positive")
	case t.TurnRate <= 0:
		return fmt.Errorf("tuning: turn_rate must be positive")
	case t.MaxSpeed <= 0:
		return fmt.Errorf("tuning: max_speed must be positive")
	case t.CrateRestDist <= 0:
		return fmt.Errorf("tuning: crate_rest_dist must be positive")
	case t.MaxStretch <= 0:
		return fmt.Errorf("tuning: max_stretch must be positive")
	case t.MinGravityDist <= 0:
		return fmt.Errorf("tuning: min_gravity_dist must be positive")
	case t.GravityMin <= 0 || t.GravityMax < t.GravityMin:
		return fmt.Errorf("tuning: gravity range [%v, %v] is invalid", t.GravityMin, t.GravityMax)
	case t.LandingDot <= 0 || t.LandingDot > 1:
		return fmt.Errorf("tuning: landing_dot must be in (0, 1]")
	case t.AttritionRate < 0 || t.ResearchRate <= 0:
		return fmt.Errorf("tuning: epidemic rates are invalid")
	case t.InfectionPerDelivery <= 0 || t.InfectionPerDelivery > 1:
		return fmt.Errorf("tuning: infection_per_delivery must be in (0, 1]")
	case t.MaxPopulation <= 0:
		return fmt.Errorf("tuning: max_population must be positive")
	case t.DayLength <= 0:
		return fmt.Errorf("tuning: day_length must be positive")
	case t.MaxTickDelta <= 0:
		return fmt.Errorf("tuning: max_tick_delta must be positive")
	case t.MaxTrain < 1:
		return fmt.Errorf("tuning: max_train must be at least 1")
	}
	return nil
}
