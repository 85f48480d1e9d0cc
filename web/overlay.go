//go:build js
// +build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/game"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay(field game.Field) *StatsOverlay {
	return &StatsOverlay{
		PanelX:      int(field.Width) - 250,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  234,
		PanelHeight: 250,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(ctx *js.Object, sess *game.Session, snap *game.Snapshot) {
	if !s.Visible {
		return
	}

	s.RenderHitboxes(ctx, snap)

	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)
	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 14px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "GAME STATS [F10]", s.PanelX+10, s.PanelY+20)

	ctx.Set("font", "12px monospace")
	y := s.PanelY + 44

	s.drawStatLine(ctx, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#00ff00", y)
	y += s.LineHeight

	y += 5
	ctx.Set("fillStyle", "#666666")
	ctx.Call("fillText", "── Session ──", s.PanelX+10, y)
	y += s.LineHeight

	s.drawStatLine(ctx, "State", sess.State.String(), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Wave", strconv.Itoa(sess.Wave), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Seed", strconv.FormatUint(uint64(sess.Seed()), 10), "#aaaaaa", y)
	y += s.LineHeight
	spawned := strconv.Itoa(sess.Waves.Spawned) + "/" + strconv.Itoa(sess.Waves.Total)
	s.drawStatLine(ctx, "Spawned", spawned, "#ff0066", y)
	y += s.LineHeight
	capText := strconv.Itoa(sess.Donuts) + "/" + strconv.Itoa(sess.Config.DonutCap(sess.Wave))
	s.drawStatLine(ctx, "Donuts/Cap", capText, "#ffff00", y)
	y += s.LineHeight

	y += 5
	ctx.Set("fillStyle", "#666666")
	ctx.Call("fillText", "── Live Sets ──", s.PanelX+10, y)
	y += s.LineHeight

	s.drawStatLine(ctx, "Freddies", strconv.Itoa(len(snap.Freddies)), "#ff8800", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Donuts", strconv.Itoa(len(snap.Donuts)), "#ff69b4", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Powerups", strconv.Itoa(len(snap.Powerups)), "#44ff44", y)
	y += s.LineHeight
	effects := strconv.Itoa(sess.Effects.ActiveCount) + "/" + strconv.Itoa(sess.Effects.MaxSize)
	s.drawStatLine(ctx, "Effects", effects, "#ff4400", y)
}

// RenderHitboxes outlines every collision circle.
func (s *StatsOverlay) RenderHitboxes(ctx *js.Object, snap *game.Snapshot) {
	ctx.Set("lineWidth", 1)

	ctx.Set("strokeStyle", "#ff0066")
	for i := range snap.Freddies {
		f := &snap.Freddies[i]
		ctx.Call("beginPath")
		ctx.Call("arc", f.X, f.Y, f.GetRadius(), 0, math.Pi*2)
		ctx.Call("stroke")
	}

	ctx.Set("strokeStyle", "#00ff00")
	for i := range snap.Powerups {
		p := &snap.Powerups[i]
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.GetRadius(), 0, math.Pi*2)
		ctx.Call("stroke")
	}

	ctx.Set("strokeStyle", "#ffff00")
	for i := range snap.Donuts {
		d := &snap.Donuts[i]
		ctx.Call("beginPath")
		ctx.Call("arc", d.X, d.Y, d.Radius, 0, math.Pi*2)
		ctx.Call("stroke")
	}
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, valueColor string, y int) {
	ctx.Set("fillStyle", "#cccccc")
	ctx.Call("fillText", label+":", s.PanelX+15, y)

	ctx.Set("fillStyle", valueColor)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", value, s.PanelX+s.PanelWidth-15, y)
	ctx.Set("textAlign", "left")
}
