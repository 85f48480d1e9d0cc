package game

import (
	"math"

	"github.com/simukka/feed-the-freddies/common"
)

type PowerupKind int

const (
	DonutBoxKind PowerupKind = iota
	TexasBoxKind
	LifeBoxKind
)

func (k PowerupKind) String() string {
	switch k {
	case DonutBoxKind:
		return "donut-box"
	case TexasBoxKind:
		return "texas-box"
	case LifeBoxKind:
		return "life-box"
	}
	return "unknown"
}

// Powerup is a falling box the player can shoot open.
type Powerup struct {
	Kind          PowerupKind
	X, Y          float64
	Width, Height float64
	Speed         float64
	Wobble        float64
	Rotation      float64

	Health    int
	MaxHealth int

	// DonutReward is the ammo a donut box pays out. Fixed at spawn.
	DonutReward int

	destroyed bool
	out       bool
}

// NewPowerup drops a powerup of the given kind for wave w.
func NewPowerup(cfg *Config, kind PowerupKind, w int, rng common.Source) *Powerup {
	p := &Powerup{
		Kind:      kind,
		X:         common.RandomFloat(rng, BoxSpawnInset, cfg.Width-BoxSpawnInset),
		Y:         BoxSpawnY,
		Width:     BoxSize,
		Height:    BoxSize,
		Speed:     BoxFallSpeed,
		Wobble:    rng.Random() * math.Pi * 2,
		Health:    1,
		MaxHealth: 1,
	}
	switch kind {
	case DonutBoxKind:
		p.DonutReward = cfg.DonutReward(w)
	case LifeBoxKind:
		p.Speed = LifeFallSpeed
	}
	return p
}

// GetPosition implements Collidable interface.
func (p *Powerup) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// GetRadius implements Collidable interface.
func (p *Powerup) GetRadius() float64 {
	return p.Width / 2
}

// Advance implements Entity.
func (p *Powerup) Advance(field Field) {
	p.Y += p.Speed
	p.Wobble += BoxWobbleSpeed
	p.X += math.Sin(p.Wobble) * BoxWobbleAmp
	p.X = clamp(p.X, p.Width/2, field.Width-p.Width/2)
	p.Rotation = math.Sin(p.Wobble) * BoxSpin

	if p.Y > field.Height+BoxExitMargin {
		p.out = true
	}
}

// Done implements Entity.
func (p *Powerup) Done() bool {
	return p.destroyed || p.out
}

// Hit takes one point of health. It returns true when the box breaks.
func (p *Powerup) Hit() bool {
	if p.destroyed {
		return false
	}
	p.Health--
	if p.Health <= 0 {
		p.Health = 0
		p.destroyed = true
		return true
	}
	return false
}
