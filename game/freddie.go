package game

import (
	"math"

	"github.com/simukka/feed-the-freddies/common"
)

// Freddie is a hungry enemy descending toward the danger zone.
type Freddie struct {
	X, Y          float64 // Center position
	Width, Height float64
	Speed         float64 // Vertical pixels per tick

	Wobble          float64 // Phase of the horizontal sway
	WobbleSpeed     float64
	WobbleAmplitude float64
	Angle           float64 // Rotation, only changes once satisfied

	Health    int // Donuts still needed
	MaxHealth int

	Satisfied      bool
	SatisfiedTimer int

	Hue float64 // Cosmetic tint in degrees

	crossed bool
}

// NewFreddie spawns a Freddie for wave w just above the top edge at a random
// horizontal position. Gameplay values are drawn from rng, the tint from fx.
func NewFreddie(cfg *Config, w int, rng, fx common.Source) *Freddie {
	health := cfg.FreddieHealth(w)
	return &Freddie{
		X:               common.RandomFloat(rng, FreddieSpawnInset, cfg.Width-FreddieSpawnInset),
		Y:               FreddieSpawnY,
		Width:           FreddieWidth,
		Height:          FreddieHeight,
		Speed:           cfg.FreddieSpeed(w),
		Wobble:          rng.Random() * math.Pi * 2,
		WobbleSpeed:     FreddieWobbleSpeed,
		WobbleAmplitude: FreddieWobbleAmplitude,
		Health:          health,
		MaxHealth:       health,
		Hue:             common.RandomFloat(fx, -30, 30),
	}
}

// GetPosition implements Collidable interface.
func (f *Freddie) GetPosition() (x, y float64) {
	return f.X, f.Y
}

// GetRadius implements Collidable interface.
func (f *Freddie) GetRadius() float64 {
	return f.Width / 2
}

// Advance moves the Freddie one tick.
//
// Hungry Freddies descend at Speed with a sinusoidal sway. Once satisfied they
// fall at a fixed rate while spinning and shrinking, and are finished after
// SatisfiedTicks. A hungry Freddie that sinks DangerMargin below the field has
// crossed the danger line; the session charges the life.
func (f *Freddie) Advance(field Field) {
	if f.Satisfied {
		f.SatisfiedTimer++
		f.Y += SatisfiedFallSpeed
		f.Angle += SatisfiedSpin
		f.Width *= SatisfiedShrink
		f.Height *= SatisfiedShrink
		return
	}

	f.Y += f.Speed
	f.Wobble += f.WobbleSpeed
	f.X += math.Sin(f.Wobble) * f.WobbleAmplitude
	f.X = clamp(f.X, f.Width/2, field.Width-f.Width/2)

	if f.Y > field.Height+DangerMargin {
		f.crossed = true
	}
}

// Done implements Entity.
func (f *Freddie) Done() bool {
	return f.crossed || (f.Satisfied && f.SatisfiedTimer > SatisfiedTicks)
}

// Crossed reports whether the Freddie reached the danger line hungry.
func (f *Freddie) Crossed() bool {
	return f.crossed
}

// Hit feeds the Freddie one donut. It returns true on the hit that satisfies it.
func (f *Freddie) Hit() bool {
	if f.Satisfied {
		return false
	}
	f.Health--
	if f.Health <= 0 {
		f.Health = 0
		f.satisfy()
		return true
	}
	return false
}

// Feed satisfies the Freddie outright, regardless of remaining health.
func (f *Freddie) Feed() {
	if f.Satisfied {
		return
	}
	f.Health = 0
	f.satisfy()
}

func (f *Freddie) satisfy() {
	f.Satisfied = true
	f.SatisfiedTimer = 0
}

// Hunger returns remaining health as a fraction of the starting health.
func (f *Freddie) Hunger() float64 {
	if f.MaxHealth == 0 {
		return 0
	}
	return float64(f.Health) / float64(f.MaxHealth)
}
