//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/game"
)

// App ties a session to the browser: frame clock, canvas, DOM and audio.
type App struct {
	Canvas   *js.Object
	Session  *game.Session
	Driver   *game.Driver
	Renderer *Renderer
	HUD      *HUDBinding
	Stats    *StatsOverlay
	Audio    *AudioManager

	AnimationFrameID int

	snap game.Snapshot
}

// NewApp creates the browser app for a session drawing onto canvas.
func NewApp(canvas *js.Object, s *game.Session) *App {
	field := s.Field()
	canvas.Set("width", field.Width)
	canvas.Set("height", field.Height)

	a := &App{
		Canvas:   canvas,
		Session:  s,
		Driver:   game.NewDriver(s),
		Renderer: NewRenderer(canvas, field),
		HUD:      NewHUDBinding(),
		Stats:    NewStatsOverlay(field),
		Audio:    NewAudioManager(field.Width),
	}
	s.Events.SubscribeAll(a.Audio)
	s.Events.Subscribe(game.WaveStarted, game.ListenerFunc(func(e game.Event) {
		game.Debug("session", s.ID.String(), "wave", e.Value, "started")
	}))
	s.Events.Subscribe(game.GameOver, game.ListenerFunc(func(e game.Event) {
		game.Debug("session", s.ID.String(), "over with score", e.Value)
	}))

	a.SetupInputHandlers()
	return a
}

// Run starts the requestAnimationFrame loop.
func (a *App) Run() {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.Frame).Int()
}

// Frame is the requestAnimationFrame callback.
func (a *App) Frame(currentTime float64) {
	// Schedule next frame
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.Frame).Int()

	a.Stats.UpdateFPS(currentTime)

	if !a.Driver.Frame(currentTime) {
		return
	}

	a.Session.Snapshot(&a.snap)
	a.Renderer.Render(&a.snap)
	a.Stats.Render(a.Renderer.Ctx, a.Session, &a.snap)
	a.HUD.Update(a.snap.HUD)
}
