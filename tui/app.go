//go:build !js
// +build !js

package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/feed-the-freddies/game"
)

const pollInterval = 4 * time.Millisecond

// App runs a session inside a terminal.
type App struct {
	screen   tcell.Screen
	Session  *game.Session
	Driver   *game.Driver
	Renderer *Renderer
	Sound    *Sound // nil when muted

	mouseDown bool
	frames    int
	fpsSince  time.Time
	snap      game.Snapshot
}

// NewApp binds a session to an initialized screen.
func NewApp(screen tcell.Screen, s *game.Session, sound *Sound) *App {
	a := &App{
		screen:   screen,
		Session:  s,
		Driver:   game.NewDriver(s),
		Renderer: NewRenderer(screen, s.Field()),
		Sound:    sound,
	}
	a.Renderer.Seed = s.Seed()
	if sound != nil {
		s.Events.SubscribeAll(sound)
	}
	s.Events.Subscribe(game.WaveCleared, game.ListenerFunc(func(e game.Event) {
		game.Debugf("session %s cleared wave %d", s.ID, e.Value)
	}))
	s.Events.Subscribe(game.GameOver, game.ListenerFunc(func(e game.Event) {
		game.Debugf("session %s over: score %d wave %d", s.ID, e.Value, s.Wave)
	}))
	screen.EnableMouse()
	return a
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.mouseDown {
			col, row := ev.Position()
			if x, y, ok := a.Renderer.Viewport().ToField(col, row); ok {
				a.Session.Launch(x, y)
			}
		}
		a.mouseDown = pressed

	case *tcell.EventResize:
		a.screen.Sync()
		a.Renderer.Resize(a.Session.Field())
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	var action game.Action
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyF10:
		action = game.ActionStats
	case tcell.KeyEnter:
		action = game.ActionStart
	case tcell.KeyRune:
		action = game.TranslateRune(ev.Rune())
	}

	switch action {
	case game.ActionQuit:
		return false
	case game.ActionStats:
		a.Renderer.ShowStats = !a.Renderer.ShowStats
	case game.ActionStart:
		if a.Session.Apply(action) {
			a.Renderer.Seed = a.Session.Seed()
		}
	default:
		a.Session.Apply(action)
	}
	return true
}

// Frame advances the driver and redraws when a tick ran.
func (a *App) Frame(now time.Time, start time.Time) {
	ms := float64(now.Sub(start)) / float64(time.Millisecond)
	if !a.Driver.Frame(ms) {
		return
	}

	a.frames++
	if elapsed := now.Sub(a.fpsSince); elapsed >= time.Second {
		a.Renderer.FPS = float64(a.frames) / elapsed.Seconds()
		a.frames = 0
		a.fpsSince = now
	}

	a.Session.Snapshot(&a.snap)
	a.Renderer.Draw(&a.snap)
}

// Run polls input on a goroutine and ticks until the user quits.
func (a *App) Run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	// Poll faster than the tick rate; the driver drops early frames
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	start := time.Now()
	a.fpsSince = start
	a.Session.Snapshot(&a.snap)
	a.Renderer.Draw(&a.snap)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Frame(now, start)
		}
	}
}
