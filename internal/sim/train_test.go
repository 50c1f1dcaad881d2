package sim

import (
	"math"
	"testing"

	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/geom"
)

const dt = 1.0 / 60.0

func chainGaps(head geom.Vec2, tr *Train) []float64 {
	gaps := make([]float64, 0, len(tr.Links))
	prev := head
	for _, link := range tr.Links {
		gaps = append(gaps, link.Pos.Dist(prev))
		prev = link.Pos
	}
	return gaps
}

func TestTrain_SolveNeverStretches(t *testing.T) {
	cfg := config.Default()
	tr := &Train{}
	head := geom.Vec2{X: 100, Y: 100}
	for i := 0; i < 5; i++ {
		tr.Attach(geom.Vec2{X: 100 - float64(i+1)*cfg.CrateRestDist, Y: 100}, 0, cfg)
	}

	// Drag the head along a curving path and check the invariant each tick.
	for step := 0; step < 400; step++ {
		angle := float64(step) * 0.02
		head = head.Add(geom.FromAngle(angle, 80*dt))
		if severed := tr.Solve(head, dt, cfg); severed != nil {
			t.Fatalf("step %d: chain severed under gentle towing", step)
		}
		for i, gap := range chainGaps(head, tr) {
			if gap > cfg.CrateRestDist+1e-6 {
				t.Fatalf("step %d: link %d gap %v exceeds rest %v", step, i, gap, cfg.CrateRestDist)
			}
		}
	}
}

func TestTrain_TrailingConvergence(t *testing.T) {
	cfg := config.Default()
	tr := &Train{}
	head := geom.Vec2{}
	tr.Attach(geom.Vec2{X: -5}, 0, cfg)
	tr.Attach(geom.Vec2{X: -10}, 0, cfg)
	tr.Attach(geom.Vec2{X: -15}, 0, cfg)

	// Head moves at constant velocity; links must settle into a trailing
	// line at rest distance.
	vel := geom.Vec2{X: 60}
	for step := 0; step < 1200; step++ {
		head = head.Add(vel.Scale(dt))
		if severed := tr.Solve(head, dt, cfg); severed != nil {
			t.Fatalf("step %d: chain severed while trailing", step)
		}
	}

	for i, gap := range chainGaps(head, tr) {
		if math.Abs(gap-cfg.CrateRestDist) > 1 {
			t.Errorf("link %d gap %v, want about %v", i, gap, cfg.CrateRestDist)
		}
	}
	for i, link := range tr.Links {
		if !link.Pos.IsFinite() {
			t.Fatalf("link %d position not finite", i)
		}
		if math.Abs(link.Vel.Len()-vel.Len()) > 2 {
			t.Errorf("link %d speed %v, want about %v", i, link.Vel.Len(), vel.Len())
		}
	}
}

func TestTrain_SeverDropsTail(t *testing.T) {
	cfg := config.Default()
	tr := &Train{}
	head := geom.Vec2{}
	tr.Attach(geom.Vec2{X: -cfg.CrateRestDist}, 0, cfg)
	tr.Attach(geom.Vec2{X: -2 * cfg.CrateRestDist}, 0, cfg)
	tr.Attach(geom.Vec2{X: -3 * cfg.CrateRestDist}, 0, cfg)

	// Teleport the second link far past the sever threshold.
	tr.Links[1].Pos = geom.Vec2{X: -cfg.CrateRestDist - 2*(cfg.CrateRestDist+cfg.MaxStretch)}

	severed := tr.Solve(head, dt, cfg)
	if len(severed) != 2 {
		t.Fatalf("severed %d links, want 2", len(severed))
	}
	if tr.Len() != 1 {
		t.Fatalf("train kept %d links, want 1", tr.Len())
	}
	for i, link := range severed {
		if !link.Occupied {
			t.Errorf("severed link %d lost its cargo flag", i)
		}
	}
}

func TestTrain_AttachRespectsCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxTrain = 3
	tr := &Train{}
	for i := 0; i < 3; i++ {
		if !tr.Attach(geom.Vec2{X: float64(i)}, 0, cfg) {
			t.Fatalf("attach %d rejected below cap", i)
		}
	}
	if tr.Attach(geom.Vec2{X: 99}, 0, cfg) {
		t.Error("attach above cap accepted")
	}
	if tr.Len() != 3 {
		t.Errorf("train length %d, want 3", tr.Len())
	}
}

func TestTrain_CompactKeepsOrder(t *testing.T) {
	cfg := config.Default()
	tr := &Train{}
	for i := 0; i < 4; i++ {
		tr.Attach(geom.Vec2{X: float64(i)}, 0, cfg)
	}
	tr.Links[1].Occupied = false
	tr.Links[3].Occupied = false

	tr.Compact()

	if tr.Len() != 2 {
		t.Fatalf("compacted length %d, want 2", tr.Len())
	}
	if tr.Links[0].Pos.X != 0 || tr.Links[1].Pos.X != 2 {
		t.Errorf("compacted order wrong: %v, %v", tr.Links[0].Pos, tr.Links[1].Pos)
	}
}

func TestTrain_DropAll(t *testing.T) {
	cfg := config.Default()
	tr := &Train{}
	tr.Attach(geom.Vec2{X: 1}, 0, cfg)
	tr.Attach(geom.Vec2{X: 2}, 0, cfg)

	dropped := tr.DropAll()
	if len(dropped) != 2 || tr.Len() != 0 {
		t.Fatalf("DropAll returned %d links, train kept %d", len(dropped), tr.Len())
	}
	if tr.DropAll() != nil {
		t.Error("second DropAll should return nil")
	}
}
