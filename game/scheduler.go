package game

import "github.com/simukka/feed-the-freddies/common"

// WavePhase is the scheduler's sub-state.
type WavePhase int

const (
	PhaseSpawning WavePhase = iota
	PhaseComplete
)

// WaveScheduler holds per-wave spawn bookkeeping.
type WaveScheduler struct {
	Phase   WavePhase
	Total   int // Freddies scheduled for this wave
	Spawned int

	SpawnTimer int
	Countdown  int // Ticks until the next wave once complete

	DonutBoxTimer int
	TexasBoxTimer int
	LifeBoxTimer  int
}

// Complete reports whether every scheduled Freddie has spawned and left.
func (w *WaveScheduler) Complete() bool {
	return w.Phase == PhaseComplete
}

// startWave resets the scheduler for s.Wave and hands out the wave's ammo.
// Existing entities are left alone.
func (s *Session) startWave() {
	if sd, ok := s.rng.(common.Seedable); ok {
		sd.SetSeed(common.WaveSeed(s.seed, s.Wave))
	}

	cfg := s.Config
	s.Waves = WaveScheduler{
		Phase:         PhaseSpawning,
		Total:         cfg.FreddiesInWave(s.Wave),
		DonutBoxTimer: cfg.DonutBoxInterval(s.rng, s.Wave),
		TexasBoxTimer: cfg.TexasBoxInterval(s.rng, s.Wave),
		LifeBoxTimer:  cfg.LifeBoxInterval(s.rng, s.Wave),
	}
	s.Donuts = cfg.WaveGrant(s.Wave)

	Debugf("Wave %d: %d Freddies, health %d, speed %.2f, %d donuts",
		s.Wave, s.Waves.Total, cfg.FreddieHealth(s.Wave), cfg.FreddieSpeed(s.Wave), s.Donuts)
	s.Events.Dispatch(Event{Type: WaveStarted, Value: s.Wave})
}

// updateScheduler runs first in every tick.
//
// While spawning it releases Freddies one SpawnDelay apart, with the first
// one immediately, and ticks the three powerup timers. When the last Freddie
// has spawned and the live set is empty the wave is complete; after
// WaveDelayTicks the next wave starts.
func (s *Session) updateScheduler() {
	w := &s.Waves
	cfg := s.Config

	if w.Phase == PhaseComplete {
		w.Countdown--
		if w.Countdown <= 0 {
			s.Wave++
			s.startWave()
		}
		return
	}

	w.SpawnTimer--
	if w.SpawnTimer <= 0 && w.Spawned < w.Total {
		s.Freddies = append(s.Freddies, NewFreddie(cfg, s.Wave, s.rng, s.fx))
		w.Spawned++
		w.SpawnTimer = cfg.SpawnDelay(s.Wave)
	}

	w.DonutBoxTimer--
	if w.DonutBoxTimer <= 0 {
		if len(s.DonutBoxes) < cfg.DonutBox.Cap {
			s.DonutBoxes = append(s.DonutBoxes, NewPowerup(cfg, DonutBoxKind, s.Wave, s.rng))
		}
		w.DonutBoxTimer = cfg.DonutBoxInterval(s.rng, s.Wave)
	}

	w.TexasBoxTimer--
	if w.TexasBoxTimer <= 0 {
		if len(s.TexasBoxes) < cfg.TexasBox.Cap {
			s.TexasBoxes = append(s.TexasBoxes, NewPowerup(cfg, TexasBoxKind, s.Wave, s.rng))
		}
		w.TexasBoxTimer = cfg.TexasBoxInterval(s.rng, s.Wave)
	}

	w.LifeBoxTimer--
	if w.LifeBoxTimer <= 0 {
		if len(s.LifeBoxes) < cfg.LifeBox.Cap {
			s.LifeBoxes = append(s.LifeBoxes, NewPowerup(cfg, LifeBoxKind, s.Wave, s.rng))
		}
		w.LifeBoxTimer = cfg.LifeBoxInterval(s.rng, s.Wave)
	}

	if w.Spawned >= w.Total && len(s.Freddies) == 0 {
		w.Phase = PhaseComplete
		w.Countdown = cfg.WaveDelayTicks
		Debug("Wave", s.Wave, "cleared")
		s.Events.Dispatch(Event{Type: WaveCleared, Value: s.Wave})
	}
}
