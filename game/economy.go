package game

import (
	"math"

	"github.com/simukka/feed-the-freddies/common"
)

// FreddiesInWave is the number of Freddies scheduled for wave w (3 + 2w by default).
func (c *Config) FreddiesInWave(w int) int {
	return c.BaseFreddies + c.FreddiesPerWave*w
}

// SpawnDelay is the tick gap between Freddie spawns in wave w.
// It decays toward SpawnDelayMin and never drops below it.
func (c *Config) SpawnDelay(w int) int {
	d := c.SpawnDelayMin + (c.SpawnDelayMax-c.SpawnDelayMin)*math.Exp(-c.SpawnDelayDecay*float64(w))
	return int(math.Floor(d))
}

// FreddieHealth is the donuts a single Freddie needs in wave w, capped at HealthCap.
func (c *Config) FreddieHealth(w int) int {
	h := w/c.HealthWaveStep + 1
	if h > c.HealthCap {
		h = c.HealthCap
	}
	return h
}

// FreddieSpeed saturates toward SpeedMax as waves rise. Tougher Freddies are
// slowed by ToughSlowdown per health point above one.
func (c *Config) FreddieSpeed(w int) float64 {
	base := c.SpeedMax - (c.SpeedMax-c.SpeedMin)*math.Exp(-c.SpeedGrowth*float64(w))
	return base * math.Pow(c.ToughSlowdown, float64(c.FreddieHealth(w)-1))
}

// DonutsNeeded is the minimum number of hits that clears wave w.
func (c *Config) DonutsNeeded(w int) int {
	return c.FreddiesInWave(w) * c.FreddieHealth(w)
}

// WaveGrant is the ammo handed out at the start of wave w. It replaces
// whatever the player was holding.
func (c *Config) WaveGrant(w int) int {
	return ceilPercent(c.DonutsNeeded(w), c.GrantPercent)
}

// DonutCap is the level passive regeneration stops at in wave w.
func (c *Config) DonutCap(w int) int {
	return ceilPercent(c.DonutsNeeded(w), c.CapPercent)
}

// ceilPercent is ceil(n*pct/100) in integer arithmetic.
func ceilPercent(n, pct int) int {
	return (n*pct + 99) / 100
}

// DonutReward is what a broken donut box pays out in wave w.
func (c *Config) DonutReward(w int) int {
	r := 3 + (w/2)*2
	if r < 5 {
		r = 5
	}
	return r
}

// DonutBoxInterval draws the next donut box timer.
func (c *Config) DonutBoxInterval(src common.Source, w int) int {
	return common.RandomInt(src, c.DonutBox.MinTicks, c.DonutBox.MaxTicks)
}

// TexasBoxInterval draws the next Texas box timer; it widens lightly with w.
func (c *Config) TexasBoxInterval(src common.Source, w int) int {
	widen := c.TexasBoxWidenPerWave * (w - 1)
	if widen > c.TexasBoxWidenMax {
		widen = c.TexasBoxWidenMax
	}
	if widen < 0 {
		widen = 0
	}
	return common.RandomInt(src, c.TexasBox.MinTicks, c.TexasBox.MaxTicks) + widen
}

// LifeBoxInterval draws the next life box timer; it narrows as w grows.
func (c *Config) LifeBoxInterval(src common.Source, w int) int {
	scale := 1 - c.LifeBoxNarrowPerWave*float64(w-1)
	if scale < c.LifeBoxNarrowFloor {
		scale = c.LifeBoxNarrowFloor
	}
	if scale > 1 {
		scale = 1
	}
	return int(float64(common.RandomInt(src, c.LifeBox.MinTicks, c.LifeBox.MaxTicks)) * scale)
}

// regenerate grants one donut every RegenTicks while below the wave cap.
func (s *Session) regenerate() {
	s.regenTimer++
	if s.regenTimer < s.Config.RegenTicks {
		return
	}
	s.regenTimer = 0
	if s.Donuts < s.Config.DonutCap(s.Wave) {
		s.Donuts++
	}
}
