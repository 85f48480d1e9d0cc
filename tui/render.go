//go:build !js
// +build !js

package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/feed-the-freddies/game"
)

// Styles for every drawable, in 256-color palette terms.
var (
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.Color(24))
	styleDanger    = tcell.StyleDefault.Background(tcell.Color(52))
	styleLauncher  = tcell.StyleDefault.Foreground(tcell.Color(205)).Bold(true)
	styleDonut     = tcell.StyleDefault.Foreground(tcell.Color(205)).Bold(true)
	styleFreddie   = tcell.StyleDefault.Foreground(tcell.Color(130))
	styleHungry    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSatisfied = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBanner    = tcell.StyleDefault.Foreground(tcell.Color(198)).Bold(true)
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTexas     = tcell.StyleDefault.Foreground(tcell.Color(214)).Bold(true)

	boxStyles = map[game.PowerupKind]tcell.Style{
		game.DonutBoxKind: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.Color(215)),
		game.TexasBoxKind: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.Color(208)),
		game.LifeBoxKind:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.Color(203)),
	}
	boxLabels = map[game.PowerupKind]string{
		game.DonutBoxKind: "[D]",
		game.TexasBoxKind: "[T]",
		game.LifeBoxKind:  "[+]",
	}

	tintColors = map[game.Tint]tcell.Color{
		game.TintGold:   tcell.Color(220),
		game.TintPink:   tcell.Color(205),
		game.TintRed:    tcell.ColorRed,
		game.TintBrown:  tcell.Color(94),
		game.TintOrange: tcell.Color(208),
		game.TintWhite:  tcell.ColorWhite,
	}
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen    tcell.Screen
	viewport  Viewport
	ShowStats bool
	FPS       float64
	Seed      uint32
}

// NewRenderer creates a renderer sized to the current screen.
func NewRenderer(screen tcell.Screen, field game.Field) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize(field)
	return r
}

// Resize refreshes the viewport after the terminal changes size.
func (r *Renderer) Resize(field game.Field) {
	cols, rows := r.screen.Size()
	r.viewport = Viewport{Cols: cols, Rows: rows, Field: field}
}

// Viewport returns the current cell mapping.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Draw renders one frame.
func (r *Renderer) Draw(snap *game.Snapshot) {
	r.screen.Clear()

	r.drawDangerZone(snap.Field)
	r.drawLauncher(snap.Launch)

	for i := range snap.Powerups {
		r.drawPowerup(&snap.Powerups[i])
	}
	for i := range snap.Freddies {
		r.drawFreddie(&snap.Freddies[i])
	}
	for i := range snap.Donuts {
		r.drawAt(snap.Donuts[i].X, snap.Donuts[i].Y, "o", styleDonut)
	}
	r.drawEffects(snap.Effects)

	r.drawHUD(&snap.HUD)
	r.drawOverlay(&snap.HUD)

	r.screen.Show()
}

func (r *Renderer) drawDangerZone(field game.Field) {
	v := r.viewport
	_, top, ok := v.ToCell(0, field.Height-game.DangerZoneHeight)
	if !ok {
		return
	}
	for row := top; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			r.screen.SetContent(col, row, ' ', nil, styleDanger)
		}
	}
}

func (r *Renderer) drawLauncher(p game.Point) {
	r.drawAt(p.X, p.Y, "^", styleLauncher.Background(tcell.Color(52)))
}

func (r *Renderer) drawPowerup(p *game.Powerup) {
	r.drawAt(p.X, p.Y, boxLabels[p.Kind], boxStyles[p.Kind])
	if p.Kind == game.DonutBoxKind {
		r.drawAt(p.X, p.Y+r.viewport.CellHeight(), fmt.Sprintf("+%d", p.DonutReward), styleText)
	}
}

func (r *Renderer) drawFreddie(f *game.Freddie) {
	style := styleFreddie
	face := "(o.o)"
	switch {
	case f.Satisfied:
		style = styleSatisfied
		face = "(^.^)"
	case f.Health > 1:
		face = "(O_O)"
	}
	r.drawAt(f.X, f.Y, face, style)

	// Hunger bar under damaged Freddies
	if !f.Satisfied && f.Health < f.MaxHealth {
		width := 5
		filled := int(math.Ceil(f.Hunger() * float64(width)))
		bar := make([]rune, width)
		for i := range bar {
			if i < filled {
				bar[i] = '='
			} else {
				bar[i] = '.'
			}
		}
		r.drawAt(f.X, f.Y+r.viewport.CellHeight(), string(bar), styleHungry)
	}
}

func (r *Renderer) drawEffects(effects []game.Effect) {
	for i := range effects {
		e := &effects[i]
		style := tcell.StyleDefault.Foreground(tintColors[e.Tint])
		switch e.Kind {
		case game.ParticleEffect:
			glyph := "*"
			if e.Alpha() < 0.5 {
				glyph = "."
			}
			r.drawAt(e.X, e.Y, glyph, style)
		case game.ShockwaveEffect:
			// Ring sampled every 15 degrees
			for a := 0.0; a < 2*math.Pi; a += math.Pi / 12 {
				r.drawAt(e.X+math.Cos(a)*e.Size, e.Y+math.Sin(a)*e.Size, "o", style)
			}
		}
	}
}

func (r *Renderer) drawHUD(h *game.HUD) {
	v := r.viewport
	for col := 0; col < v.Cols; col++ {
		r.screen.SetContent(col, 0, ' ', nil, styleHUD)
	}
	texas := fmt.Sprintf("Texas %d/%d", h.TexasProgress, h.TexasRequired)
	if h.TexasStock > 0 {
		texas += fmt.Sprintf(" x%d READY [space]", h.TexasStock)
	}
	line := fmt.Sprintf(" Lives %d  Donuts %d  Wave %d  Score %d  %s", h.Lives, h.Donuts, h.Wave, h.Score, texas)
	if r.ShowStats {
		line += fmt.Sprintf("  | %.0f fps seed %d", r.FPS, r.Seed)
	}
	r.drawText(0, 0, line, styleHUD)
}

func (r *Renderer) drawOverlay(h *game.HUD) {
	v := r.viewport
	mid := HUDRows + v.PlayRows()/2

	switch h.State {
	case game.StateStart:
		r.drawCentered(mid-2, "FEED THE FREDDIES", styleBanner)
		r.drawCentered(mid, "Click to throw donuts. Space unleashes the Texas Donut.", styleText)
		r.drawCentered(mid+1, "Press Enter to start, q to quit", styleText)
	case game.StateGameOver:
		r.drawCentered(mid-2, "GAME OVER", styleBanner)
		r.drawCentered(mid, fmt.Sprintf("Score %d  Wave %d", h.Score, h.Wave), styleText)
		r.drawCentered(mid+1, game.GameOverMessage(h.Wave), styleText)
		r.drawCentered(mid+3, "Press r to play again", styleText)
	case game.StatePlaying:
		if h.WaveComplete {
			r.drawCentered(mid, fmt.Sprintf("Wave %d complete!", h.Wave), styleBanner)
		}
		if h.TexasActive {
			r.drawCentered(mid-2, "TEXAS DONUT!", styleTexas)
		}
	}
}

// drawAt writes text centered on a field point.
func (r *Renderer) drawAt(x, y float64, text string, style tcell.Style) {
	col, row, ok := r.viewport.ToCell(x, y)
	if !ok {
		return
	}
	r.drawText(col-len([]rune(text))/2, row, text, style)
}

func (r *Renderer) drawCentered(row int, text string, style tcell.Style) {
	r.drawText((r.viewport.Cols-len([]rune(text)))/2, row, text, style)
}

func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		if col >= 0 && col < r.viewport.Cols {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}
