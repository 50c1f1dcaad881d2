package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lifeline-game/lifeline/internal/config"
	"github.com/lifeline-game/lifeline/internal/render"
	"github.com/lifeline-game/lifeline/internal/sim"
)

const title = "Lifeline"

const tickDelta = 1.0 / 60.0

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in the sector simulation.
type Game struct {
	renderer *render.Renderer
	sector   *sim.Sector
	snap     sim.Snapshot

	showMap bool
	paused  bool
}

func NewGame(seed int64, planetCount int, cfg *config.Tuning) (*Game, error) {
	sector, err := sim.New(seed, planetCount, cfg)
	if err != nil {
		return nil, err
	}
	return &Game{
		renderer: render.New(),
		sector:   sector,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMap = !g.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.sector.Over() {
		if err := g.sector.Reset(); err != nil {
			return err
		}
		g.showMap = false
	}

	in := sim.Input{
		Thrust:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		ShowMap:     g.showMap,
		OpenMenu:    g.paused,
	}

	// A zero delta still hands the UI flags to the simulation so they
	// land in the snapshot, it just freezes the world.
	step := tickDelta
	if g.paused {
		step = 0
	}
	g.sector.Tick(step, in)
	g.sector.Snapshot(&g.snap)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snap)
	if g.snap.OpenMenu {
		g.renderer.DrawPause(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenW, render.ScreenH
}

func main() {
	seed := flag.Int64("seed", 0, "sector seed, 0 picks one from the clock")
	planets := flag.Int("planets", 0, "planet count, 0 lets the seed decide")
	cfgPath := flag.String("config", "", "path to a tuning file, defaults built in")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load tuning: %v", err)
		}
		cfg = loaded
	}

	game, err := NewGame(*seed, *planets, cfg)
	if err != nil {
		log.Fatalf("generate sector: %v", err)
	}

	ebiten.SetWindowSize(render.ScreenW, render.ScreenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
