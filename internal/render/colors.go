package render

import "image/color"

// Game palette.
var (
	Space     = color.RGBA{8, 8, 20, 255}
	StarDim   = color.RGBA{120, 120, 150, 255}
	StarLit   = color.RGBA{220, 220, 240, 255}
	Hull      = color.RGBA{210, 215, 230, 255}
	Flame     = color.RGBA{255, 170, 60, 255}
	CrateTan  = color.RGBA{200, 160, 90, 255}
	Tether    = color.RGBA{90, 100, 130, 255}
	Rock      = color.RGBA{110, 95, 120, 255}
	RockDark  = color.RGBA{60, 50, 70, 255}
	Strip     = color.RGBA{90, 220, 140, 255}
	FlashGold = color.RGBA{255, 230, 120, 255}
	Blast     = color.RGBA{255, 120, 70, 255}
	HUDText   = color.RGBA{200, 210, 230, 255}
	HUDDim    = color.RGBA{110, 120, 140, 255}
	Good      = color.RGBA{120, 230, 150, 255}
	Bad       = color.RGBA{240, 110, 100, 255}
	Story     = color.RGBA{170, 160, 240, 255}
	BarBack   = color.RGBA{40, 45, 60, 255}
	BarFill   = color.RGBA{120, 200, 250, 255}
)

// Healthy and dying planet glow endpoints.
var (
	healthyGlow = color.RGBA{100, 210, 160, 255}
	sickGlow    = color.RGBA{230, 80, 70, 255}
	curedGlow   = color.RGBA{130, 190, 250, 255}
	barrenGlow  = color.RGBA{90, 90, 100, 255}
)

// PlanetGlow maps a planet's state to its atmosphere color: a lerp from
// green to red as infection rises, blue once cured, gray when no one is
// left.
func PlanetGlow(population, infection float64, cured bool) color.RGBA {
	if cured {
		return curedGlow
	}
	if population <= 0 {
		return barrenGlow
	}
	return lerpRGBA(healthyGlow, sickGlow, infection)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
