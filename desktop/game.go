//go:build !js
// +build !js

package desktop

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/simukka/feed-the-freddies/game"
	"golang.org/x/image/font"
)

// ErrQuit is returned from Update to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// PollTPS is how often ebiten calls Update. The driver still ticks the
// simulation at game.TicksPerSecond and drops early frames.
const PollTPS = game.TicksPerSecond * 4

// keyActions maps ebiten keys onto shared actions.
var keyActions = map[ebiten.Key]game.Action{
	ebiten.KeyEnter:  game.ActionStart,
	ebiten.KeyR:      game.ActionStart,
	ebiten.KeySpace:  game.ActionTexas,
	ebiten.KeyT:      game.ActionTexas,
	ebiten.KeyX:      game.ActionTexas,
	ebiten.KeyQ:      game.ActionQuit,
	ebiten.KeyEscape: game.ActionQuit,
	ebiten.KeyF10:    game.ActionStats,
}

// Game adapts a session to ebiten.Game.
type Game struct {
	Session  *game.Session
	Driver   *game.Driver
	Renderer *Renderer

	start    time.Time
	frames   int
	fps      float64
	fpsSince time.Time
	snap     game.Snapshot
}

var _ ebiten.Game = (*Game)(nil)

// NewGame binds a session. sound may be nil.
func NewGame(s *game.Session, sound *Sound, bannerFace font.Face) *Game {
	now := time.Now()
	g := &Game{
		Session:  s,
		Driver:   game.NewDriver(s),
		Renderer: NewRenderer(s.Field(), bannerFace),
		start:    now,
		fpsSince: now,
	}
	if sound != nil {
		s.Events.SubscribeAll(sound)
	}
	s.Events.Subscribe(game.WaveStarted, game.ListenerFunc(func(e game.Event) {
		game.Debugf("session %s wave %d started", s.ID, e.Value)
	}))
	s.Events.Subscribe(game.GameOver, game.ListenerFunc(func(e game.Event) {
		game.Debugf("session %s over: score %d", s.ID, e.Value)
	}))
	g.Session.Snapshot(&g.snap)
	return g
}

// Apply runs an action, handling the ones that belong to the frontend.
func (g *Game) Apply(a game.Action) error {
	switch a {
	case game.ActionQuit:
		return ErrQuit
	case game.ActionStats:
		g.Renderer.ShowStats = !g.Renderer.ShowStats
	default:
		g.Session.Apply(a)
	}
	return nil
}

// Update polls input and advances the driver.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.Apply(action); err != nil {
				return err
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.Session.Launch(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.Session.Launch(float64(x), float64(y))
	}

	g.Frame(time.Now())
	return nil
}

// Frame advances the driver with a wall-clock time.
func (g *Game) Frame(now time.Time) bool {
	ms := float64(now.Sub(g.start)) / float64(time.Millisecond)
	if !g.Driver.Frame(ms) {
		return false
	}
	g.frames++
	if elapsed := now.Sub(g.fpsSince); elapsed >= time.Second {
		g.fps = float64(g.frames) / elapsed.Seconds()
		g.frames = 0
		g.fpsSince = now
	}
	g.Session.Snapshot(&g.snap)
	return true
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, &g.snap, g.fps, g.Session.Seed())
}

// Layout keeps the logical screen equal to the field; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.Session.Field()
	return int(f.Width), int(f.Height)
}
