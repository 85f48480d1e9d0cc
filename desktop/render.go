//go:build !js
// +build !js

package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/feed-the-freddies/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws snapshots onto an ebiten image.
type Renderer struct {
	sky        *ebiten.Image
	bannerFace font.Face
	labelFace  font.Face
	ShowStats  bool
}

// NewRenderer prepares the static background for a field.
func NewRenderer(field game.Field, bannerFace font.Face) *Renderer {
	r := &Renderer{
		bannerFace: bannerFace,
		labelFace:  basicfont.Face7x13,
	}
	if r.bannerFace == nil {
		r.bannerFace = basicfont.Face7x13
	}

	w, h := int(field.Width), int(field.Height)
	r.sky = ebiten.NewImage(w, h)
	// Vertical gradient in 1px bands
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		vector.DrawFilledRect(r.sky, 0, float32(y), float32(w), 1, lerpColor(Theme.SkyTop, Theme.SkyBottom, t), false)
	}
	return r
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, snap *game.Snapshot, fps float64, seed uint32) {
	screen.DrawImage(r.sky, nil)
	r.drawClouds(screen, snap.Field)
	r.drawDangerZone(screen, snap.Field)

	vector.DrawFilledCircle(screen, float32(snap.Launch.X), float32(snap.Launch.Y), 20, Theme.Launcher, true)

	for i := range snap.Powerups {
		r.drawPowerup(screen, &snap.Powerups[i])
	}
	for i := range snap.Freddies {
		r.drawFreddie(screen, &snap.Freddies[i])
	}
	for i := range snap.Donuts {
		d := &snap.Donuts[i]
		drawDonut(screen, d.X, d.Y, d.Radius)
	}
	r.drawEffects(screen, snap.Effects)
	r.drawTexas(screen, &snap.HUD, snap.Field)

	r.drawHUD(screen, &snap.HUD, snap.Field)
	r.drawOverlay(screen, &snap.HUD, snap.Field)

	if r.ShowStats {
		stats := fmt.Sprintf("FPS %.0f  TPS %.0f  seed %d\nfreddies %d donuts %d boxes %d effects %d",
			fps, ebiten.ActualTPS(), seed,
			len(snap.Freddies), len(snap.Donuts), len(snap.Powerups), len(snap.Effects))
		text.Draw(screen, stats, r.labelFace, 10, 50, Theme.TextSecondary)
	}
}

func (r *Renderer) drawClouds(screen *ebiten.Image, field game.Field) {
	for _, c := range [][3]float64{
		{field.Width * 0.12, 60, 1},
		{field.Width * 0.55, 110, 1.3},
		{field.Width * 0.85, 40, 0.8},
	} {
		x, y, s := float32(c[0]), float32(c[1]), float32(c[2])
		vector.DrawFilledCircle(screen, x, y, 20*s, Theme.Cloud, true)
		vector.DrawFilledCircle(screen, x+25*s, y-8*s, 25*s, Theme.Cloud, true)
		vector.DrawFilledCircle(screen, x+50*s, y, 20*s, Theme.Cloud, true)
	}
}

func (r *Renderer) drawDangerZone(screen *ebiten.Image, field game.Field) {
	top := float32(field.Height - game.DangerZoneHeight)
	vector.DrawFilledRect(screen, 0, top, float32(field.Width), game.DangerZoneHeight, Theme.DangerFill, false)
	vector.StrokeLine(screen, 0, top, float32(field.Width), top, 2, Theme.DangerStroke, false)
}

func drawDonut(screen *ebiten.Image, x, y, radius float64) {
	cx, cy, rr := float32(x), float32(y), float32(radius)
	vector.DrawFilledCircle(screen, cx, cy, rr, Theme.DonutDough, true)
	vector.DrawFilledCircle(screen, cx, cy, rr*0.8, Theme.DonutFrosting, true)
	vector.DrawFilledCircle(screen, cx, cy, rr*0.35, Theme.DonutHole, true)
}

func (r *Renderer) drawPowerup(screen *ebiten.Image, p *game.Powerup) {
	half := float32(p.Width / 2)
	x, y := float32(p.X)-half, float32(p.Y)-half
	vector.DrawFilledRect(screen, x, y, half*2, half*2, Theme.Boxes[p.Kind], true)
	vector.StrokeRect(screen, x, y, half*2, half*2, 2, Theme.TextSecondary, true)

	label := map[game.PowerupKind]string{
		game.DonutBoxKind: fmt.Sprintf("+%d", p.DonutReward),
		game.TexasBoxKind: "TX",
		game.LifeBoxKind:  "<3",
	}[p.Kind]
	b := text.BoundString(r.labelFace, label)
	text.Draw(screen, label, r.labelFace, int(p.X)-b.Dx()/2, int(p.Y)+b.Dy()/2, Theme.TextSecondary)
}

func (r *Renderer) drawFreddie(screen *ebiten.Image, f *game.Freddie) {
	x, y := float32(f.X), float32(f.Y)
	w, h := float32(f.Width), float32(f.Height)

	vector.DrawFilledCircle(screen, x, y, w/2, FreddieBody(f.Hue), true)
	vector.DrawFilledCircle(screen, x, y+h*0.12, w*0.3, Theme.FreddieBelly, true)

	// Eyes rotate with the spin of a satisfied Freddie
	ex, ey := float32(math.Cos(f.Angle))*w*0.18, float32(math.Sin(f.Angle))*w*0.18
	vector.DrawFilledCircle(screen, x-ex, y-h*0.15-ey, w*0.07, Theme.FreddieEye, true)
	vector.DrawFilledCircle(screen, x+ex, y-h*0.15+ey, w*0.07, Theme.FreddieEye, true)

	if f.Satisfied {
		vector.StrokeCircle(screen, x, y, w/2+4, 3, Theme.FreddieSatisfied, true)
		return
	}
	if f.Health < f.MaxHealth {
		barY := y - h/2 - 10
		vector.DrawFilledRect(screen, x-w/2, barY, w, 5, Theme.BarBackground, false)
		vector.DrawFilledRect(screen, x-w/2, barY, w*float32(f.Hunger()), 5, Theme.FreddieHungry, false)
	}
}

func (r *Renderer) drawEffects(screen *ebiten.Image, effects []game.Effect) {
	for i := range effects {
		e := &effects[i]
		c := fade(Theme.Tints[e.Tint], e.Alpha())
		switch e.Kind {
		case game.ParticleEffect:
			vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Size), c, true)
		case game.ShockwaveEffect:
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Size), 6, c, true)
		}
	}
}

func (r *Renderer) drawTexas(screen *ebiten.Image, h *game.HUD, field game.Field) {
	if !h.TexasActive {
		return
	}
	cx, cy := float32(field.Width/2), float32(field.Height/2)
	k := h.TexasPhaseAt

	switch h.TexasPhase {
	case game.TexasCharge:
		vector.DrawFilledCircle(screen, cx, cy, float32(40+k*80), fade(Theme.TexasGlow, k*0.8), true)
	case game.TexasBurst:
		vector.DrawFilledCircle(screen, cx, cy, 120, fade(Theme.TexasGlow, 0.8), true)
		vector.StrokeCircle(screen, cx, cy, float32(120+k*float64(field.Width)), 8, Theme.TexasRing, true)
	case game.TexasFade:
		vector.DrawFilledCircle(screen, cx, cy, 120, fade(Theme.TexasGlow, 0.8*(1-k)), true)
	}
	drawDonut(screen, float64(cx), float64(cy), 60)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, h *game.HUD, field game.Field) {
	vector.DrawFilledRect(screen, 0, 0, float32(field.Width), 30, Theme.HUDBackground, false)
	line := fmt.Sprintf("Lives %d   Donuts %d   Wave %d   Score %d", h.Lives, h.Donuts, h.Wave, h.Score)
	text.Draw(screen, line, r.labelFace, 10, 20, Theme.TextSecondary)

	// Texas meter
	meterW := float32(120)
	mx := float32(field.Width) - meterW - 10
	frac := float32(0)
	if h.TexasRequired > 0 {
		frac = float32(h.TexasProgress) / float32(h.TexasRequired)
	}
	vector.DrawFilledRect(screen, mx, 10, meterW, 10, Theme.BarBackground, false)
	vector.DrawFilledRect(screen, mx, 10, meterW*frac, 10, Theme.TexasRing, false)
	if h.TexasStock > 0 {
		label := fmt.Sprintf("TEXAS x%d [SPACE]", h.TexasStock)
		b := text.BoundString(r.labelFace, label)
		text.Draw(screen, label, r.labelFace, int(mx)-b.Dx()-8, 20, Theme.TexasRing)
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, h *game.HUD, field game.Field) {
	midY := int(field.Height / 2)

	switch h.State {
	case game.StateStart:
		r.drawCentered(screen, r.bannerFace, "Feed the Freddies", field, midY-40, Theme.TextPrimary)
		r.drawCentered(screen, r.labelFace, "Click to throw donuts. Space for the Texas Donut.", field, midY, Theme.TextSecondary)
		r.drawCentered(screen, r.labelFace, "Press Enter to start", field, midY+24, Theme.TextSecondary)
	case game.StateGameOver:
		r.drawCentered(screen, r.bannerFace, "Game Over", field, midY-40, Theme.TextPrimary)
		r.drawCentered(screen, r.labelFace, fmt.Sprintf("Score %d   Wave %d", h.Score, h.Wave), field, midY, Theme.TextSecondary)
		r.drawCentered(screen, r.labelFace, game.GameOverMessage(h.Wave), field, midY+24, Theme.TextSecondary)
		r.drawCentered(screen, r.labelFace, "Press R to play again", field, midY+56, Theme.TextSecondary)
	case game.StatePlaying:
		if h.WaveComplete {
			r.drawCentered(screen, r.bannerFace, fmt.Sprintf("Wave %d Complete!", h.Wave), field, midY, Theme.TextPrimary)
		}
	}
}

func (r *Renderer) drawCentered(screen *ebiten.Image, face font.Face, s string, field game.Field, y int, c color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (int(field.Width)-b.Dx())/2, y, c)
}
