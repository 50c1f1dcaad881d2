package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites holds the procedurally built game images. All are drawn in white
// or their base color and tinted per instance with a ColorScale.
type Sprites struct {
	Ship  *ebiten.Image // nose pointing +X
	Flame *ebiten.Image
	Crate *ebiten.Image
	Star  *ebiten.Image
	Spark *ebiten.Image // single soft dot, scaled for flashes and blasts
}

// NewSprites builds the sprite set once at startup.
func NewSprites() *Sprites {
	return &Sprites{
		Ship:  buildShip(),
		Flame: buildFlame(),
		Crate: buildCrate(),
		Star:  buildStar(),
		Spark: buildSpark(),
	}
}

func buildShip() *ebiten.Image {
	img := ebiten.NewImage(24, 16)
	var p vector.Path
	p.MoveTo(23, 8)
	p.LineTo(2, 1)
	p.LineTo(6, 8)
	p.LineTo(2, 15)
	p.Close()
	fillPath(img, &p, Hull)
	return img
}

func buildFlame() *ebiten.Image {
	img := ebiten.NewImage(12, 8)
	var p vector.Path
	p.MoveTo(11, 1)
	p.LineTo(0, 4)
	p.LineTo(11, 7)
	p.Close()
	fillPath(img, &p, Flame)
	return img
}

func buildCrate() *ebiten.Image {
	img := ebiten.NewImage(12, 12)
	img.Fill(CrateTan)
	for i := 0; i < 12; i++ {
		img.Set(i, 5, RockDark)
		img.Set(i, 6, RockDark)
	}
	return img
}

func buildStar() *ebiten.Image {
	img := ebiten.NewImage(2, 2)
	img.Fill(color.White)
	return img
}

func buildSpark() *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	vector.DrawFilledCircle(img, 8, 8, 7, color.White, true)
	return img
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(3, 3)
		white.Fill(color.White)
	}
	return white
}
