//go:build !js
// +build !js

package desktop

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/simukka/feed-the-freddies/game"
)

// Theme holds all visual styling constants for the desktop renderer.
var Theme = struct {
	SkyTop, SkyBottom color.RGBA
	Cloud             color.RGBA
	DangerFill        color.RGBA
	DangerStroke      color.RGBA

	DonutDough    color.RGBA
	DonutFrosting color.RGBA
	DonutHole     color.RGBA

	FreddieBelly     color.RGBA
	FreddieEye       color.RGBA
	FreddieHungry    color.RGBA
	FreddieSatisfied color.RGBA
	BarBackground    color.RGBA

	Boxes map[game.PowerupKind]color.RGBA

	TexasGlow color.RGBA
	TexasRing color.RGBA
	Launcher  color.RGBA

	TextPrimary   color.RGBA
	TextSecondary color.RGBA
	HUDBackground color.RGBA

	Tints map[game.Tint]color.RGBA
}{
	SkyTop:       color.RGBA{0x87, 0xce, 0xeb, 0xff},
	SkyBottom:    color.RGBA{0xe0, 0xf6, 0xff, 0xff},
	Cloud:        color.RGBA{0xff, 0xff, 0xff, 0xcc},
	DangerFill:   color.RGBA{0x26, 0x00, 0x00, 0x26},
	DangerStroke: color.RGBA{0x80, 0x00, 0x00, 0x80},

	DonutDough:    color.RGBA{0xd2, 0x69, 0x1e, 0xff},
	DonutFrosting: color.RGBA{0xff, 0x69, 0xb4, 0xff},
	DonutHole:     color.RGBA{0x87, 0xce, 0xeb, 0xff},

	FreddieBelly:     color.RGBA{0xde, 0xb8, 0x87, 0xff},
	FreddieEye:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	FreddieHungry:    color.RGBA{0xff, 0x44, 0x44, 0xff},
	FreddieSatisfied: color.RGBA{0x44, 0xdd, 0x44, 0xff},
	BarBackground:    color.RGBA{0x33, 0x33, 0x33, 0xcc},

	Boxes: map[game.PowerupKind]color.RGBA{
		game.DonutBoxKind: {0xff, 0xb3, 0x47, 0xff},
		game.TexasBoxKind: {0xff, 0x8c, 0x00, 0xff},
		game.LifeBoxKind:  {0xff, 0x6b, 0x6b, 0xff},
	},

	TexasGlow: color.RGBA{0xff, 0xc8, 0x00, 0xff},
	TexasRing: color.RGBA{0xff, 0xd7, 0x00, 0xff},
	Launcher:  color.RGBA{0xff, 0x69, 0xb4, 0x99},

	TextPrimary:   color.RGBA{0xff, 0x14, 0x93, 0xff},
	TextSecondary: color.RGBA{0xff, 0xff, 0xff, 0xff},
	HUDBackground: color.RGBA{0x00, 0x00, 0x00, 0x88},

	Tints: map[game.Tint]color.RGBA{
		game.TintGold:   {0xff, 0xd7, 0x00, 0xff},
		game.TintPink:   {0xff, 0x69, 0xb4, 0xff},
		game.TintRed:    {0xff, 0x00, 0x00, 0xff},
		game.TintBrown:  {0x8b, 0x45, 0x13, 0xff},
		game.TintOrange: {0xff, 0x8c, 0x00, 0xff},
		game.TintWhite:  {0xff, 0xff, 0xff, 0xff},
	},
}

// freddieBaseHue is the body hue before each Freddie's cosmetic offset.
const freddieBaseHue = 30.0

// FreddieBody returns the body color rotated by a Freddie's hue offset.
func FreddieBody(hueOffset float64) color.RGBA {
	h := math.Mod(freddieBaseHue+hueOffset+360, 360)
	r, g, b := colorful.Hsv(h, 0.69, 0.55).RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// fade scales a color's alpha, premultiplied as ebiten expects.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
