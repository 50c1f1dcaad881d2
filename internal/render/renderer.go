package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lifeline-game/lifeline/internal/sim"
)

const (
	ScreenW = 1280
	ScreenH = 720

	terrainSamples = 96
	flashLife      = 0.6
	explosionLife  = 0.9
)

// Renderer draws one Snapshot per frame. It keeps no simulation state,
// only the camera and prebuilt images.
type Renderer struct {
	atlas *Sprites
	text  *TextAtlas
	camX  float64
	camY  float64
}

func New() *Renderer {
	return &Renderer{atlas: NewSprites(), text: NewTextAtlas()}
}

// Draw renders the frame: world pass under the camera, then the HUD, then
// the sector map or end screen overlays.
func (r *Renderer) Draw(screen *ebiten.Image, snap *sim.Snapshot) {
	r.follow(snap)
	screen.Fill(Space)

	r.drawEffects(screen, snap, true)
	for i := range snap.Planets {
		r.drawPlanet(screen, &snap.Planets[i])
	}
	r.drawCrates(screen, snap)
	r.drawShip(screen, &snap.Ship)
	r.drawEffects(screen, snap, false)

	r.drawHUD(screen, snap)

	switch {
	case snap.Won || snap.Lost:
		r.drawEndScreen(screen, snap)
	case snap.ShowMap:
		r.drawMap(screen, snap)
	}
}

// follow centers the camera on the ship, clamped to the world rectangle.
func (r *Renderer) follow(snap *sim.Snapshot) {
	r.camX = clamp(snap.Ship.Pos.X-ScreenW/2, 0, snap.WorldSize-ScreenW)
	r.camY = clamp(snap.Ship.Pos.Y-ScreenH/2, 0, snap.WorldSize-ScreenH)
}

func (r *Renderer) toScreen(x, y float64) (float32, float32) {
	return float32(x - r.camX), float32(y - r.camY)
}

func (r *Renderer) onScreen(x, y, margin float64) bool {
	return x >= r.camX-margin && x <= r.camX+ScreenW+margin &&
		y >= r.camY-margin && y <= r.camY+ScreenH+margin
}

func (r *Renderer) drawPlanet(screen *ebiten.Image, p *sim.PlanetView) {
	if !r.onScreen(p.Center.X, p.Center.Y, p.Radius*2+60) {
		return
	}
	cx, cy := r.toScreen(p.Center.X, p.Center.Y)

	glow := PlanetGlow(p.Population, p.Infection, p.Cured)
	vector.StrokeCircle(screen, cx, cy, float32(p.Radius)+26, 3, glow, true)

	// Ground silhouette as a closed fan around the center.
	var path vector.Path
	for i := 0; i <= terrainSamples; i++ {
		angle := float64(i) / terrainSamples * 2 * math.Pi
		rad := p.Radius + p.Ground.HeightAtAngle(angle)
		px := cx + float32(math.Cos(angle)*rad)
		py := cy + float32(math.Sin(angle)*rad)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	fillPath(screen, &path, Rock)
	vector.DrawFilledCircle(screen, cx, cy, float32(p.Radius)*0.55, RockDark, true)

	r.drawLandingStrip(screen, p, cx, cy)

	label := p.Name
	if p.Population > 0 {
		label = fmt.Sprintf("%s  pop %.0f", p.Name, p.Population)
	}
	r.text.Draw(screen, label,
		float64(cx)-r.text.Width(label, 1)/2, float64(cy)-p.Radius-48, 1, HUDDim)
}

func (r *Renderer) drawLandingStrip(screen *ebiten.Image, p *sim.PlanetView, cx, cy float32) {
	x0, x1 := p.Ground.LandingRange()
	circ := p.Ground.Circumference()
	a0 := x0 / circ * 2 * math.Pi
	a1 := x1 / circ * 2 * math.Pi
	const steps = 8
	var px, py float32
	for i := 0; i <= steps; i++ {
		angle := a0 + (a1-a0)*float64(i)/steps
		rad := p.Radius + p.Ground.HeightAtAngle(angle) + 2
		nx := cx + float32(math.Cos(angle)*rad)
		ny := cy + float32(math.Sin(angle)*rad)
		if i > 0 {
			vector.StrokeLine(screen, px, py, nx, ny, 3, Strip, true)
		}
		px, py = nx, ny
	}
}

func (r *Renderer) drawCrates(screen *ebiten.Image, snap *sim.Snapshot) {
	// Tether from the ship through the chain.
	prevX, prevY := r.toScreen(snap.Ship.Pos.X, snap.Ship.Pos.Y)
	for _, c := range snap.Train {
		x, y := r.toScreen(c.Pos.X, c.Pos.Y)
		vector.StrokeLine(screen, prevX, prevY, x, y, 1.5, Tether, true)
		prevX, prevY = x, y
	}

	for _, c := range snap.Train {
		r.drawCrate(screen, c, 1)
	}
	for _, c := range snap.Loose {
		r.drawCrate(screen, c, 0.8)
	}
}

func (r *Renderer) drawCrate(screen *ebiten.Image, c sim.CrateView, brightness float32) {
	if !r.onScreen(c.Pos.X, c.Pos.Y, 20) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-6, -6)
	op.GeoM.Rotate(c.Spin)
	x, y := r.toScreen(c.Pos.X, c.Pos.Y)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(brightness, brightness, brightness, 1)
	screen.DrawImage(r.atlas.Crate, op)
}

func (r *Renderer) drawShip(screen *ebiten.Image, ship *sim.ShipView) {
	x, y := r.toScreen(ship.Pos.X, ship.Pos.Y)

	if ship.Thrust {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-24, -4)
		op.GeoM.Rotate(ship.Heading)
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(r.atlas.Flame, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-12, -8)
	op.GeoM.Rotate(ship.Heading)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(r.atlas.Ship, op)
}

// drawEffects renders decorative entities. Stars go under the world pass,
// everything else on top.
func (r *Renderer) drawEffects(screen *ebiten.Image, snap *sim.Snapshot, starsOnly bool) {
	for _, fx := range snap.Effects {
		if (fx.Kind == sim.FxStar) != starsOnly {
			continue
		}
		if !r.onScreen(fx.Pos.X, fx.Pos.Y, 24) {
			continue
		}
		x, y := r.toScreen(fx.Pos.X, fx.Pos.Y)

		switch fx.Kind {
		case sim.FxStar:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleWithColor(StarDim)
			screen.DrawImage(r.atlas.Star, op)

		case sim.FxFlash:
			frac := float32(fx.Life / flashLife)
			scale := 1 + 2*(1-float64(frac))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-8, -8)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleWithColor(FlashGold)
			op.ColorScale.ScaleAlpha(frac)
			screen.DrawImage(r.atlas.Spark, op)

		case sim.FxExplosion:
			frac := float32(fx.Life / explosionLife)
			scale := 1.5 + 3*(1-float64(frac))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-8, -8)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleWithColor(Blast)
			op.ColorScale.ScaleAlpha(frac)
			screen.DrawImage(r.atlas.Spark, op)

		case sim.FxDebris:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-6, -6)
			op.GeoM.Rotate(fx.Spin)
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.Scale(0.5, 0.5, 0.5, 1)
			screen.DrawImage(r.atlas.Crate, op)
		}
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap *sim.Snapshot) {
	r.text.Draw(screen, fmt.Sprintf("DAY %d", snap.Day), 16, 14, 2, HUDText)
	r.text.Draw(screen, fmt.Sprintf("SCORE %d", snap.Score), 16, 44, 2, HUDText)
	if snap.Multiplier > 1 {
		r.text.Draw(screen, fmt.Sprintf("x%.1f", snap.Multiplier), 16, 74, 2, FlashGold)
	}

	// Cure research bar.
	const barW, barH = 360, 14
	bx := float32(ScreenW-barW) / 2
	vector.DrawFilledRect(screen, bx, 16, barW, barH, BarBack, false)
	vector.DrawFilledRect(screen, bx, 16, float32(snap.Research)*barW, barH, BarFill, false)
	label := fmt.Sprintf("cure %2.0f%%", snap.Research*100)
	r.text.Draw(screen, label, float64(ScreenW)/2-r.text.Width(label, 1)/2, 34, 1, HUDText)

	pop := fmt.Sprintf("pop %.1f", snap.TotalPop)
	r.text.Draw(screen, pop, ScreenW-16-r.text.Width(pop, 2), 14, 2, HUDText)
	train := fmt.Sprintf("crates %d", len(snap.Train))
	r.text.Draw(screen, train, ScreenW-16-r.text.Width(train, 1), 46, 1, HUDDim)

	y := float64(ScreenH) - 20 - float64(len(snap.Messages))*16
	for _, m := range snap.Messages {
		clr := HUDText
		switch m.Kind {
		case sim.MsgGood:
			clr = Good
		case sim.MsgBad:
			clr = Bad
		case sim.MsgStory:
			clr = Story
		}
		r.text.Draw(screen, fmt.Sprintf("d%d  %s", m.Day, m.Text), 16, y, 1, clr)
		y += 16
	}
}

// drawMap overlays a scaled-down view of the whole sector.
func (r *Renderer) drawMap(screen *ebiten.Image, snap *sim.Snapshot) {
	const size = 520.0
	ox := float32(ScreenW-size) / 2
	oy := float32(ScreenH-size) / 2
	vector.DrawFilledRect(screen, ox-12, oy-12, size+24, size+24, Space, false)
	vector.StrokeRect(screen, ox-12, oy-12, size+24, size+24, 2, HUDDim, false)

	k := size / snap.WorldSize
	for i := range snap.Planets {
		p := &snap.Planets[i]
		glow := PlanetGlow(p.Population, p.Infection, p.Cured)
		px := ox + float32(p.Center.X*k)
		py := oy + float32(p.Center.Y*k)
		vector.DrawFilledCircle(screen, px, py, float32(p.Radius*k)+3, glow, true)
		r.text.Draw(screen, p.Name, float64(px)-r.text.Width(p.Name, 1)/2, float64(py)+10, 1, HUDDim)
	}
	for _, c := range snap.Loose {
		vector.DrawFilledCircle(screen, ox+float32(c.Pos.X*k), oy+float32(c.Pos.Y*k), 2, CrateTan, false)
	}
	sx := ox + float32(snap.Ship.Pos.X*k)
	sy := oy + float32(snap.Ship.Pos.Y*k)
	vector.DrawFilledCircle(screen, sx, sy, 4, Hull, true)

	title := "SECTOR MAP"
	r.text.Draw(screen, title, ScreenW/2-r.text.Width(title, 2)/2, float64(oy)-36, 2, HUDText)
}

func (r *Renderer) drawEndScreen(screen *ebiten.Image, snap *sim.Snapshot) {
	vector.DrawFilledRect(screen, 0, ScreenH/2-130, ScreenW, 260, Space, false)

	title, clr := "SECTOR LOST", Bad
	sub := "the last colony went silent"
	if snap.Won {
		title, clr = "CURE SYNTHESIZED", Good
		sub = "the survivors will remember the ship that kept them alive"
	}
	r.text.Draw(screen, title, ScreenW/2-r.text.Width(title, 4)/2, ScreenH/2-110, 4, clr)
	r.text.Draw(screen, sub, ScreenW/2-r.text.Width(sub, 1)/2, ScreenH/2-50, 1, HUDDim)

	lines := []string{
		fmt.Sprintf("score %d", snap.Score),
		fmt.Sprintf("crates delivered %d, lost %d", snap.Stats.Delivered, snap.Stats.Lost),
		fmt.Sprintf("crashes %d, longest train %d, best bonus x%.1f",
			snap.Stats.Crashes, snap.Stats.MaxTrain, snap.Stats.BestBonus),
		"press R to fly again",
	}
	y := float64(ScreenH)/2 - 10
	for _, line := range lines {
		r.text.Draw(screen, line, ScreenW/2-r.text.Width(line, 1)/2, y, 1, HUDText)
		y += 22
	}
}

func (r *Renderer) DrawPause(screen *ebiten.Image) {
	msg := "PAUSED"
	r.text.Draw(screen, msg, ScreenW/2-r.text.Width(msg, 3)/2, ScreenH/2-21, 3, HUDText)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
