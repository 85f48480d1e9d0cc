package game

import (
	"testing"

	"github.com/simukka/feed-the-freddies/common"
)

func TestNewFreddie_SpawnBounds(t *testing.T) {
	cfg := DefaultConfig()
	rng := common.NewSeededRNG(11)
	fx := common.NewSeededRNG(12)

	for i := 0; i < 500; i++ {
		f := NewFreddie(cfg, 4, rng, fx)
		if f.X < FreddieSpawnInset || f.X >= cfg.Width-FreddieSpawnInset {
			t.Fatalf("spawn x %f out of range", f.X)
		}
		if f.Y != FreddieSpawnY {
			t.Fatalf("spawn y %f, want %f", f.Y, FreddieSpawnY)
		}
		if f.Hue < -30 || f.Hue >= 30 {
			t.Fatalf("hue %f out of range", f.Hue)
		}
		if f.Health != 2 || f.MaxHealth != 2 {
			t.Fatalf("wave 4 health %d/%d, want 2", f.Health, f.MaxHealth)
		}
	}
}

func TestFreddie_AdvanceHungry(t *testing.T) {
	f := &Freddie{X: 100, Y: 0, Width: FreddieWidth, Height: FreddieHeight, Speed: 2,
		WobbleSpeed: FreddieWobbleSpeed, WobbleAmplitude: FreddieWobbleAmplitude, Health: 1, MaxHealth: 1}
	field := Field{Width: WIDTH, Height: HEIGHT}

	f.Advance(field)

	if f.Y != 2 {
		t.Errorf("Expected y 2, got %f", f.Y)
	}
	if d := f.X - 100; d < -FreddieWobbleAmplitude || d > FreddieWobbleAmplitude {
		t.Errorf("Expected sway within amplitude, moved %f", d)
	}
	if f.Angle != 0 {
		t.Errorf("Expected no rotation while hungry, got %f", f.Angle)
	}
}

func TestFreddie_StaysInsideField(t *testing.T) {
	field := Field{Width: WIDTH, Height: HEIGHT}

	tests := []struct {
		name   string
		x      float64
		wobble float64
	}{
		{"left edge swaying left", FreddieWidth / 2, 3.2},
		{"right edge swaying right", WIDTH - FreddieWidth/2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Freddie{X: tt.x, Width: FreddieWidth, Height: FreddieHeight, Speed: 1, Wobble: tt.wobble,
				WobbleSpeed: FreddieWobbleSpeed, WobbleAmplitude: FreddieWobbleAmplitude, Health: 1, MaxHealth: 1}
			for i := 0; i < 30; i++ {
				f.Advance(field)
				if f.X < f.Width/2 || f.X > field.Width-f.Width/2 {
					t.Fatalf("tick %d: x %f outside [%f, %f]", i, f.X, f.Width/2, field.Width-f.Width/2)
				}
			}
		})
	}
}

func TestFreddie_SatisfiedAnimation(t *testing.T) {
	f := &Freddie{X: 100, Y: 100, Width: 50, Height: 60, Speed: 3, Health: 1, MaxHealth: 1}
	f.Feed()
	field := Field{Width: WIDTH, Height: HEIGHT}

	f.Advance(field)

	if f.Y != 100+SatisfiedFallSpeed {
		t.Errorf("Expected fixed fall speed, y=%f", f.Y)
	}
	if !almostEqual(f.Width, 50*SatisfiedShrink, floatTolerance) {
		t.Errorf("Expected width shrink, got %f", f.Width)
	}
	if !almostEqual(f.Angle, SatisfiedSpin, floatTolerance) {
		t.Errorf("Expected spin, got %f", f.Angle)
	}

	for i := 1; i < SatisfiedTicks; i++ {
		f.Advance(field)
	}
	if f.Done() {
		t.Fatal("Expected Freddie alive at the satisfied timeout")
	}
	f.Advance(field)
	if !f.Done() {
		t.Error("Expected Freddie done once the satisfied timer passes its limit")
	}
}

func TestFreddie_CrossesDangerLine(t *testing.T) {
	field := Field{Width: WIDTH, Height: HEIGHT}
	f := &Freddie{X: 100, Y: HEIGHT + DangerMargin - 1, Speed: 1, Health: 1, MaxHealth: 1}

	f.Advance(field)
	if f.Crossed() {
		t.Fatal("Expected no crossing exactly at the line")
	}
	f.Advance(field)
	if !f.Crossed() || !f.Done() {
		t.Error("Expected crossing beyond the line")
	}
}

func TestFreddie_Hit(t *testing.T) {
	f := &Freddie{Health: 2, MaxHealth: 2}

	if f.Hit() {
		t.Fatal("Expected first hit not to satisfy")
	}
	if !almostEqual(f.Hunger(), 0.5, floatTolerance) {
		t.Errorf("Expected hunger 0.5, got %f", f.Hunger())
	}
	if !f.Hit() {
		t.Fatal("Expected second hit to satisfy")
	}
	if f.Hit() {
		t.Error("Expected hits on a satisfied Freddie to do nothing")
	}
	if f.Health != 0 {
		t.Errorf("Expected health 0, got %d", f.Health)
	}
}

func TestDonut_LeavesField(t *testing.T) {
	field := Field{Width: WIDTH, Height: HEIGHT}
	d := NewDonut(400, 550, 400, 0)

	ticks := 0
	for !d.Done() && ticks < 1000 {
		d.Advance(field)
		ticks++
	}
	if !d.Done() {
		t.Fatal("Expected donut to leave the field")
	}
	if d.Y >= -DonutExitMargin {
		t.Errorf("Expected exit past the top margin, y=%f", d.Y)
	}
}

func TestDonut_SameTargetAsOrigin(t *testing.T) {
	d := NewDonut(100, 100, 100, 100)
	if d.VX != DonutSpeed || d.VY != 0 {
		t.Errorf("Expected rightward default, got (%f,%f)", d.VX, d.VY)
	}
}

func TestPowerup_Kinds(t *testing.T) {
	cfg := DefaultConfig()
	rng := common.NewSeededRNG(21)

	life := NewPowerup(cfg, LifeBoxKind, 1, rng)
	if life.Speed != LifeFallSpeed {
		t.Errorf("Expected life box speed %f, got %f", LifeFallSpeed, life.Speed)
	}
	box := NewPowerup(cfg, DonutBoxKind, 6, rng)
	if box.DonutReward != 9 {
		t.Errorf("Expected reward 9, got %d", box.DonutReward)
	}
	if box.Health != 1 {
		t.Errorf("Expected one-hit box, got %d", box.Health)
	}
	if !box.Hit() || !box.Done() {
		t.Error("Expected one hit to break the box")
	}
	if box.Hit() {
		t.Error("Expected a broken box to ignore hits")
	}
}

func TestPowerup_FallsOutOfField(t *testing.T) {
	field := Field{Width: WIDTH, Height: HEIGHT}
	p := &Powerup{Kind: TexasBoxKind, X: 100, Y: HEIGHT + BoxExitMargin, Speed: BoxFallSpeed, Width: BoxSize, Height: BoxSize, Health: 1}

	p.Advance(field)
	if !p.Done() {
		t.Error("Expected powerup below the field to be done")
	}
}

func TestPowerup_StaysInsideField(t *testing.T) {
	field := Field{Width: WIDTH, Height: HEIGHT}
	p := &Powerup{Kind: DonutBoxKind, X: BoxSize / 2, Speed: BoxFallSpeed, Wobble: 3.2, Width: BoxSize, Height: BoxSize, Health: 1}

	for i := 0; i < 40; i++ {
		p.Advance(field)
		if p.X < p.Width/2 || p.X > field.Width-p.Width/2 {
			t.Fatalf("tick %d: x %f outside [%f, %f]", i, p.X, p.Width/2, field.Width-p.Width/2)
		}
	}
}

func TestPowerupKind_String(t *testing.T) {
	if DonutBoxKind.String() != "donut-box" || TexasBoxKind.String() != "texas-box" || LifeBoxKind.String() != "life-box" {
		t.Error("Unexpected powerup names")
	}
}
