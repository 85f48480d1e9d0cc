//go:build js
// +build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/game"
)

// RenderToCanvas creates an off-screen canvas and renders to it.
func RenderToCanvas(width, height int, renderFn func(canvas, ctx *js.Object)) *js.Object {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	renderFn(canvas, ctx)
	return canvas
}

// Renderer draws snapshots onto a 2D canvas.
type Renderer struct {
	Canvas *js.Object
	Ctx    *js.Object

	Sky        *js.Object
	DonutImage *js.Object
	BoxImages  map[game.PowerupKind]*js.Object

	clouds [][3]float64 // x, y, scale
}

// NewRenderer prepares the static sprites for a field of the given size.
func NewRenderer(canvas *js.Object, field game.Field) *Renderer {
	r := &Renderer{
		Canvas:    canvas,
		Ctx:       canvas.Call("getContext", "2d"),
		BoxImages: make(map[game.PowerupKind]*js.Object, 3),
		clouds: [][3]float64{
			{field.Width * 0.12, 60, 1},
			{field.Width * 0.55, 110, 1.3},
			{field.Width * 0.85, 40, 0.8},
		},
	}
	r.InitializeGraphics(field)
	return r
}

// InitializeGraphics renders all static game graphics.
func (r *Renderer) InitializeGraphics(field game.Field) {
	w, h := int(field.Width), int(field.Height)

	r.Sky = RenderToCanvas(w, h, func(canvas, ctx *js.Object) {
		grad := ctx.Call("createLinearGradient", 0, 0, 0, h)
		grad.Call("addColorStop", 0, Theme.SkyTop)
		grad.Call("addColorStop", 1, Theme.SkyBottom)
		ctx.Set("fillStyle", grad)
		ctx.Call("fillRect", 0, 0, w, h)
	})

	size := int(game.DonutRadius * 2)
	r.DonutImage = RenderToCanvas(size, size, func(canvas, ctx *js.Object) {
		c := float64(size) / 2
		drawDonut(ctx, c, c, game.DonutRadius)
	})

	labels := map[game.PowerupKind]struct{ color, label string }{
		game.DonutBoxKind: {Theme.DonutBoxColor, "DONUTS"},
		game.TexasBoxKind: {Theme.TexasBoxColor, "TEXAS"},
		game.LifeBoxKind:  {Theme.LifeBoxColor, "♥"},
	}
	for kind, l := range labels {
		r.BoxImages[kind] = RenderToCanvas(int(game.BoxSize), int(game.BoxSize), func(canvas, ctx *js.Object) {
			s := game.BoxSize
			ctx.Set("fillStyle", l.color)
			ctx.Call("fillRect", 2, 2, s-4, s-4)
			ctx.Set("strokeStyle", "rgba(0,0,0,0.3)")
			ctx.Set("lineWidth", 3)
			ctx.Call("strokeRect", 2, 2, s-4, s-4)
			ctx.Set("fillStyle", Theme.BoxLabel)
			ctx.Set("font", "bold 10px sans-serif")
			if kind == game.LifeBoxKind {
				ctx.Set("font", "bold 28px sans-serif")
			}
			ctx.Set("textAlign", "center")
			ctx.Set("textBaseline", "middle")
			ctx.Call("fillText", l.label, s/2, s/2)
		})
	}
}

func drawDonut(ctx *js.Object, x, y, radius float64) {
	ctx.Set("fillStyle", Theme.DonutDough)
	ctx.Call("beginPath")
	ctx.Call("arc", x, y, radius, 0, math.Pi*2)
	ctx.Call("fill")

	ctx.Set("fillStyle", Theme.DonutFrosting)
	ctx.Call("beginPath")
	ctx.Call("arc", x, y, radius*0.8, 0, math.Pi*2)
	ctx.Call("fill")

	for i, c := range Theme.Sprinkles {
		a := float64(i) / float64(len(Theme.Sprinkles)) * math.Pi * 2
		ctx.Set("fillStyle", c)
		ctx.Call("fillRect", x+math.Cos(a)*radius*0.55-1, y+math.Sin(a)*radius*0.55-2, 2, 4)
	}

	ctx.Set("fillStyle", Theme.DonutHole)
	ctx.Call("beginPath")
	ctx.Call("arc", x, y, radius*0.3, 0, math.Pi*2)
	ctx.Call("fill")
}

// Render draws one frame.
func (r *Renderer) Render(snap *game.Snapshot) {
	ctx := r.Ctx
	field := snap.Field

	ctx.Call("drawImage", r.Sky, 0, 0)
	r.renderClouds()
	r.renderDangerZone(field)
	r.renderLauncher(snap.Launch)

	for i := range snap.Powerups {
		r.renderPowerup(&snap.Powerups[i])
	}
	for i := range snap.Freddies {
		r.renderFreddie(&snap.Freddies[i])
	}
	for i := range snap.Donuts {
		d := &snap.Donuts[i]
		ctx.Call("save")
		ctx.Call("translate", d.X, d.Y)
		ctx.Call("rotate", d.Rotation)
		ctx.Call("drawImage", r.DonutImage, -d.Radius, -d.Radius)
		ctx.Call("restore")
	}

	r.renderEffects(snap.Effects)
	r.renderTexas(&snap.HUD, field)

	if snap.HUD.WaveComplete && snap.HUD.State == game.StatePlaying {
		r.renderBanner(field, "Wave "+strconv.Itoa(snap.HUD.Wave)+" Complete!")
	}
}

func (r *Renderer) renderClouds() {
	ctx := r.Ctx
	ctx.Set("fillStyle", Theme.Cloud)
	for _, c := range r.clouds {
		x, y, s := c[0], c[1], c[2]
		ctx.Call("beginPath")
		ctx.Call("arc", x, y, 30*s, 0, math.Pi*2)
		ctx.Call("arc", x+25*s, y-10*s, 35*s, 0, math.Pi*2)
		ctx.Call("arc", x+55*s, y, 28*s, 0, math.Pi*2)
		ctx.Call("fill")
	}
}

func (r *Renderer) renderDangerZone(field game.Field) {
	ctx := r.Ctx
	top := field.Height - game.DangerZoneHeight
	ctx.Set("fillStyle", Theme.DangerFill)
	ctx.Call("fillRect", 0, top, field.Width, game.DangerZoneHeight)

	ctx.Set("strokeStyle", Theme.DangerStroke)
	ctx.Set("lineWidth", 3)
	ctx.Call("setLineDash", []int{10, 10})
	ctx.Call("beginPath")
	ctx.Call("moveTo", 0, top)
	ctx.Call("lineTo", field.Width, top)
	ctx.Call("stroke")
	ctx.Call("setLineDash", []int{})
}

func (r *Renderer) renderLauncher(p game.Point) {
	ctx := r.Ctx
	ctx.Set("fillStyle", Theme.LauncherColor)
	ctx.Call("beginPath")
	ctx.Call("arc", p.X, p.Y, game.DonutRadius+6, 0, math.Pi*2)
	ctx.Call("fill")
}

func (r *Renderer) renderPowerup(p *game.Powerup) {
	ctx := r.Ctx
	ctx.Call("save")
	ctx.Call("translate", p.X, p.Y)
	ctx.Call("rotate", p.Rotation)
	ctx.Call("drawImage", r.BoxImages[p.Kind], -p.Width/2, -p.Height/2, p.Width, p.Height)
	ctx.Call("restore")
}

// renderFreddie draws a bear-ish face with a hunger bar above it.
func (r *Renderer) renderFreddie(f *game.Freddie) {
	ctx := r.Ctx
	ctx.Call("save")
	ctx.Call("translate", f.X, f.Y)
	ctx.Call("rotate", f.Angle)
	ctx.Set("filter", "hue-rotate("+strconv.FormatFloat(f.Hue, 'f', 0, 64)+"deg)")

	w, h := f.Width, f.Height
	ctx.Set("fillStyle", Theme.FreddieBody)
	for _, ear := range []float64{-1, 1} {
		ctx.Call("beginPath")
		ctx.Call("arc", ear*w*0.35, -h*0.38, w*0.16, 0, math.Pi*2)
		ctx.Call("fill")
	}
	ctx.Call("beginPath")
	ctx.Call("ellipse", 0, 0, w/2, h/2, 0, 0, math.Pi*2)
	ctx.Call("fill")

	ctx.Set("fillStyle", Theme.FreddieBelly)
	ctx.Call("beginPath")
	ctx.Call("ellipse", 0, h*0.12, w*0.3, h*0.25, 0, 0, math.Pi*2)
	ctx.Call("fill")

	ctx.Set("fillStyle", "#000")
	for _, eye := range []float64{-1, 1} {
		ctx.Call("beginPath")
		ctx.Call("arc", eye*w*0.16, -h*0.15, w*0.06, 0, math.Pi*2)
		ctx.Call("fill")
	}
	ctx.Call("beginPath")
	if f.Satisfied {
		ctx.Call("arc", 0, h*0.05, w*0.14, 0, math.Pi)
		ctx.Set("strokeStyle", "#000")
		ctx.Set("lineWidth", 2)
		ctx.Call("stroke")
	} else {
		ctx.Call("arc", 0, h*0.1, w*0.1, 0, math.Pi*2)
		ctx.Call("fill")
	}
	ctx.Set("filter", "none")
	ctx.Call("restore")

	if f.Satisfied {
		return
	}

	barW := f.Width
	ctx.Set("fillStyle", "rgba(0,0,0,0.4)")
	ctx.Call("fillRect", f.X-barW/2, f.Y-f.Height/2-12, barW, 6)
	ctx.Set("fillStyle", Theme.FreddieHungry)
	ctx.Call("fillRect", f.X-barW/2, f.Y-f.Height/2-12, barW*f.Hunger(), 6)
}

func (r *Renderer) renderEffects(effects []game.Effect) {
	ctx := r.Ctx
	for i := range effects {
		e := &effects[i]
		ctx.Set("globalAlpha", e.Alpha())
		color := Theme.Tints[e.Tint]
		switch e.Kind {
		case game.ParticleEffect:
			ctx.Set("fillStyle", color)
			ctx.Call("beginPath")
			ctx.Call("arc", e.X, e.Y, e.Size/2, 0, math.Pi*2)
			ctx.Call("fill")
		case game.ShockwaveEffect:
			ctx.Set("strokeStyle", color)
			ctx.Set("lineWidth", 8)
			ctx.Call("beginPath")
			ctx.Call("arc", e.X, e.Y, e.Size, 0, math.Pi*2)
			ctx.Call("stroke")
		}
	}
	ctx.Set("globalAlpha", 1)
}

// renderTexas draws the three-phase Texas Donut animation.
func (r *Renderer) renderTexas(hud *game.HUD, field game.Field) {
	if !hud.TexasActive {
		return
	}
	ctx := r.Ctx
	cx, cy := field.Width/2, field.Height/2
	t := float64(hud.TexasClock)

	switch hud.TexasPhase {
	case game.TexasCharge:
		k := hud.TexasPhaseAt
		ctx.Set("fillStyle", Theme.TexasGlow+strconv.FormatFloat(0.3*k, 'f', 2, 64)+")")
		ctx.Call("fillRect", 0, 0, field.Width, field.Height)
		ctx.Call("save")
		ctx.Call("translate", cx, cy)
		ctx.Call("rotate", t*0.3)
		ctx.Call("scale", 1+k*3, 1+k*3)
		drawDonut(ctx, 0, 0, game.DonutRadius*2)
		ctx.Call("restore")
	case game.TexasBurst:
		k := hud.TexasPhaseAt
		ctx.Set("fillStyle", Theme.TexasGlow+strconv.FormatFloat(0.5*(1-k), 'f', 2, 64)+")")
		ctx.Call("fillRect", 0, 0, field.Width, field.Height)
		ctx.Set("strokeStyle", Theme.TexasRing)
		ctx.Set("lineWidth", 12)
		ctx.Call("beginPath")
		ctx.Call("arc", cx, cy, k*math.Max(field.Width, field.Height), 0, math.Pi*2)
		ctx.Call("stroke")
	case game.TexasFade:
		k := hud.TexasPhaseAt
		ctx.Set("globalAlpha", math.Max(0, 1-k))
		r.renderBanner(field, "TEXAS DONUT!")
		ctx.Set("globalAlpha", 1)
	}
}

func (r *Renderer) renderBanner(field game.Field, text string) {
	ctx := r.Ctx
	ctx.Set("font", Theme.BannerFont)
	ctx.Set("textAlign", "center")
	ctx.Set("textBaseline", "middle")
	ctx.Set("lineWidth", 6)
	ctx.Set("strokeStyle", Theme.TextSecondaryColor)
	ctx.Call("strokeText", text, field.Width/2, field.Height/2)
	ctx.Set("fillStyle", Theme.TextPrimaryColor)
	ctx.Call("fillText", text, field.Width/2, field.Height/2)
}
