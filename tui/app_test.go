//go:build !js
// +build !js

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/feed-the-freddies/common"
	"github.com/simukka/feed-the-freddies/game"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 31)

	s := game.NewSession(game.DefaultConfig(), common.NewSeededRNG(12345))
	return NewApp(screen, s, nil), screen
}

func rowText(screen tcell.Screen, row int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for col := 0; col < w; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestApp_EnterStarts(t *testing.T) {
	a, _ := newTestApp(t)

	if !a.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("Enter should not quit")
	}
	if a.Session.State != game.StatePlaying {
		t.Errorf("State = %v, want playing", a.Session.State)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			if a.HandleEvent(tt.ev) {
				t.Error("expected quit")
			}
		})
	}
}

func TestApp_ClickLaunchesOncePerPress(t *testing.T) {
	a, _ := newTestApp(t)
	a.Session.Start()
	before := a.Session.Donuts

	a.HandleEvent(tcell.NewEventMouse(40, 5, tcell.Button1, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(41, 5, tcell.Button1, tcell.ModNone)) // drag
	if got := len(a.Session.Thrown); got != 1 {
		t.Fatalf("thrown = %d after one press, want 1", got)
	}

	a.HandleEvent(tcell.NewEventMouse(41, 5, tcell.ButtonNone, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(20, 8, tcell.Button1, tcell.ModNone))
	if got := len(a.Session.Thrown); got != 2 {
		t.Errorf("thrown = %d after two presses, want 2", got)
	}
	if a.Session.Donuts != before-2 {
		t.Errorf("donuts = %d, want %d", a.Session.Donuts, before-2)
	}
}

func TestApp_ClickOnHUDIgnored(t *testing.T) {
	a, _ := newTestApp(t)
	a.Session.Start()

	a.HandleEvent(tcell.NewEventMouse(10, 0, tcell.Button1, tcell.ModNone))
	if len(a.Session.Thrown) != 0 {
		t.Error("click on the HUD row should not throw")
	}
}

func TestApp_StatsToggle(t *testing.T) {
	a, _ := newTestApp(t)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone))
	if !a.Renderer.ShowStats {
		t.Error("F10 should show stats")
	}
	a.HandleEvent(tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone))
	if a.Renderer.ShowStats {
		t.Error("second F10 should hide stats")
	}
}

func TestApp_FrameDrawsHUD(t *testing.T) {
	a, screen := newTestApp(t)
	a.Session.Start()

	start := time.Now()
	a.Frame(start, start)

	hud := rowText(screen, 0)
	for _, want := range []string{"Lives 3", "Wave 1", "Score 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestApp_FrameSkipsEarlyTicks(t *testing.T) {
	a, _ := newTestApp(t)
	a.Session.Start()

	start := time.Now()
	a.Frame(start, start)
	a.Frame(start.Add(5*time.Millisecond), start)
	if a.Driver.Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", a.Driver.Ticks)
	}
	a.Frame(start.Add(20*time.Millisecond), start)
	if a.Driver.Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", a.Driver.Ticks)
	}
}

func TestRenderer_StartScreen(t *testing.T) {
	a, screen := newTestApp(t)

	a.Session.Snapshot(&a.snap)
	a.Renderer.Draw(&a.snap)

	found := false
	_, rows := screen.Size()
	for row := 0; row < rows; row++ {
		if strings.Contains(rowText(screen, row), "FEED THE FREDDIES") {
			found = true
			break
		}
	}
	if !found {
		t.Error("start screen title not drawn")
	}
}
