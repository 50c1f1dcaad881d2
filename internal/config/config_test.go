package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_thrust", func(c *Tuning) { c.ThrustAccel = 0 }},
		{"negative_turn_rate", func(c *Tuning) { c.TurnRate = -1 }},
		{"zero_max_speed", func(c *Tuning) { c.MaxSpeed = 0 }},
		{"zero_rest_dist", func(c *Tuning) { c.CrateRestDist = 0 }},
		{"zero_max_stretch", func(c *Tuning) { c.MaxStretch = 0 }},
		{"zero_gravity_floor", func(c *Tuning) { c.MinGravityDist = 0 }},
		{"inverted_gravity_range", func(c *Tuning) { c.GravityMax = c.GravityMin - 1 }},
		{"landing_dot_above_one", func(c *Tuning) { c.LandingDot = 1.5 }},
		{"negative_attrition", func(c *Tuning) { c.AttritionRate = -0.1 }},
		{"zero_research", func(c *Tuning) { c.ResearchRate = 0 }},
		{"oversized_delivery", func(c *Tuning) { c.InfectionPerDelivery = 2 }},
		{"zero_day_length", func(c *Tuning) { c.DayLength = 0 }},
		{"zero_tick_clamp", func(c *Tuning) { c.MaxTickDelta = 0 }},
		{"zero_train_cap", func(c *Tuning) { c.MaxTrain = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "thrust_accel: 120\nlethal_speed: 40\nmutation_days: [100]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ThrustAccel != 120 {
		t.Errorf("ThrustAccel = %v, want 120", c.ThrustAccel)
	}
	if c.LethalSpeed != 40 {
		t.Errorf("LethalSpeed = %v, want 40", c.LethalSpeed)
	}
	if len(c.MutationDays) != 1 || c.MutationDays[0] != 100 {
		t.Errorf("MutationDays = %v, want [100]", c.MutationDays)
	}
	// Untouched keys keep their defaults.
	if want := Default().TurnRate; c.TurnRate != want {
		t.Errorf("TurnRate = %v, want default %v", c.TurnRate, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("thrust_accel: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml: expected an error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("max_speed: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("invalid value: expected an error")
	}
}
