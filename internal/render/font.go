package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphW    = 8
	glyphH    = 14
	asciiLo   = 32
	asciiHi   = 126
	numGlyphs = asciiHi - asciiLo + 1
	atlasCols = 16
)

// TextAtlas caches the printable ASCII glyphs of basicfont.Face7x13 as
// white sub-images, tinted per draw call with a ColorScale.
type TextAtlas struct {
	glyphs [numGlyphs]*ebiten.Image
}

// NewTextAtlas renders the glyph atlas once at startup.
func NewTextAtlas() *TextAtlas {
	rows := (numGlyphs + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*glyphW, rows*glyphH))
	face := basicfont.Face7x13

	for code := asciiLo; code <= asciiHi; code++ {
		i := code - asciiLo
		cx := (i % atlasCols) * glyphW
		cy := (i / atlasCols) * glyphH
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(cx, cy+11),
		}
		d.DrawString(string(rune(code)))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &TextAtlas{}
	for i := range a.glyphs {
		cx := (i % atlasCols) * glyphW
		cy := (i / atlasCols) * glyphH
		a.glyphs[i] = eimg.SubImage(image.Rect(cx, cy, cx+glyphW, cy+glyphH)).(*ebiten.Image)
	}
	return a
}

// Draw writes s at (x, y) in the given color. Runes outside printable
// ASCII render as '?'.
func (a *TextAtlas) Draw(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	pen := x
	for _, r := range s {
		if r < asciiLo || r > asciiHi {
			r = '?'
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(pen, y)
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(a.glyphs[r-asciiLo], op)
		pen += glyphW * scale
	}
}

// Width returns the pixel width of s at the given scale.
func (a *TextAtlas) Width(s string, scale float64) float64 {
	return float64(len(s)) * glyphW * scale
}
