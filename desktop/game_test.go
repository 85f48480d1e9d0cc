//go:build !js
// +build !js

package desktop

import (
	"errors"
	"testing"
	"time"

	"github.com/simukka/feed-the-freddies/common"
	"github.com/simukka/feed-the-freddies/game"
)

// newHeadlessGame builds a Game without GPU resources.
func newHeadlessGame() *Game {
	s := game.NewSession(game.DefaultConfig(), common.NewSeededRNG(12345))
	now := time.Now()
	return &Game{
		Session:  s,
		Driver:   game.NewDriver(s),
		Renderer: &Renderer{},
		start:    now,
		fpsSince: now,
	}
}

func TestGame_Apply(t *testing.T) {
	g := newHeadlessGame()

	if err := g.Apply(game.ActionStart); err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.Session.State != game.StatePlaying {
		t.Errorf("State = %v, want playing", g.Session.State)
	}

	if err := g.Apply(game.ActionStats); err != nil || !g.Renderer.ShowStats {
		t.Errorf("stats toggle = (%v, %v), want (nil, true)", err, g.Renderer.ShowStats)
	}

	if err := g.Apply(game.ActionQuit); !errors.Is(err, ErrQuit) {
		t.Errorf("quit = %v, want ErrQuit", err)
	}
}

func TestGame_FrameTicksAtFixedRate(t *testing.T) {
	g := newHeadlessGame()
	g.Session.Start()

	if !g.Frame(g.start) {
		t.Fatal("first frame should tick")
	}
	if g.Frame(g.start.Add(10 * time.Millisecond)) {
		t.Error("frame 10ms later should be skipped")
	}
	if !g.Frame(g.start.Add(17 * time.Millisecond)) {
		t.Error("frame 17ms later should tick")
	}
	if g.Driver.Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", g.Driver.Ticks)
	}
	if g.snap.HUD.State != game.StatePlaying {
		t.Errorf("snapshot state = %v, want playing", g.snap.HUD.State)
	}
}

func TestKeyActions_MatchSharedKeyMap(t *testing.T) {
	// Every shared action must be reachable from the keyboard.
	want := map[game.Action]bool{
		game.ActionStart: false,
		game.ActionTexas: false,
		game.ActionQuit:  false,
		game.ActionStats: false,
	}
	for _, a := range keyActions {
		want[a] = true
	}
	for a, ok := range want {
		if !ok {
			t.Errorf("action %d has no key", a)
		}
	}
}
