package game

import (
	"testing"

	"github.com/simukka/feed-the-freddies/common"
)

func TestDriver_FirstFrameTicks(t *testing.T) {
	s := newTestSession(t)
	d := NewDriver(s)

	if !d.Frame(1000) {
		t.Error("Expected the first frame to tick")
	}
	if d.Ticks != 1 {
		t.Errorf("Expected 1 tick, got %d", d.Ticks)
	}
}

func TestDriver_SkipsEarlyFrames(t *testing.T) {
	s := newTestSession(t)
	d := NewDriver(s)
	d.Frame(0)

	if d.Frame(10) {
		t.Error("Expected a frame 10ms later to be skipped")
	}
	if !d.Frame(FrameDuration) {
		t.Error("Expected a frame one duration later to tick")
	}
	if d.Ticks != 2 {
		t.Errorf("Expected 2 ticks, got %d", d.Ticks)
	}
}

func TestDriver_NoCatchUp(t *testing.T) {
	s := newTestSession(t)
	d := NewDriver(s)
	d.Frame(0)

	// A one second stall still yields a single tick.
	d.Frame(1000)
	if d.Ticks != 2 {
		t.Errorf("Expected 2 ticks after a stall, got %d", d.Ticks)
	}
	if d.Frame(1005) {
		t.Error("Expected the clock to restart from the late frame")
	}
}

func TestDriver_TicksAdvanceSession(t *testing.T) {
	s := newTestSession(t)
	d := NewDriver(s)

	now := 0.0
	for i := 0; i < 10; i++ {
		d.Frame(now)
		now += FrameDuration
	}
	if s.Waves.Spawned != 1 {
		t.Errorf("Expected one spawn after 10 ticks, got %d", s.Waves.Spawned)
	}
}

func TestTick_OrderSpawnsBeforeMovement(t *testing.T) {
	s := NewSession(DefaultConfig(), common.NewSeededRNG(9))
	s.Start()
	s.Tick()

	f := s.Freddies[0]
	if !almostEqual(f.Y, FreddieSpawnY+f.Speed, floatTolerance) {
		t.Errorf("Expected new Freddie to move in its spawn tick, y=%f", f.Y)
	}
}

func TestTick_GameOverKeepsEffectsAnimating(t *testing.T) {
	s := newTestSession(t)
	s.burst(100, 100, TintRed, 5)
	s.gameOver()

	for i := 0; i < ParticleLife; i++ {
		s.Tick()
	}
	if s.Effects.ActiveCount != 0 {
		t.Errorf("Expected effects to play out after game over, %d left", s.Effects.ActiveCount)
	}
}
