package game

import (
	"github.com/google/uuid"
	"github.com/simukka/feed-the-freddies/common"
)

// State is the top-level session state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "start"
}

// Session holds the complete simulation state. It is owned by a single
// goroutine; frontends feed it input between ticks.
type Session struct {
	ID     uuid.UUID
	State  State
	Config *Config
	Events *Dispatcher

	// Core state
	Wave   int
	Score  int
	Lives  int
	Donuts int // Ammo

	// Live sets, one per category, in spawn order
	Freddies   []*Freddie
	Thrown     []*Donut
	DonutBoxes []*Powerup
	TexasBoxes []*Powerup
	LifeBoxes  []*Powerup

	Effects *EffectPool
	Texas   TexasDonut
	Waves   WaveScheduler

	regenTimer int

	seed uint32
	rng  common.Source // gameplay
	fx   common.Source // cosmetic only
}

// NewSession creates a session in the start state. Gameplay randomness is
// drawn from rng; a Seedable source is reseeded at every wave so runs with
// the same seed replay identically.
func NewSession(cfg *Config, rng common.Source) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rng == nil {
		rng = common.NewSeededRNG(common.EntropySeed())
	}

	s := &Session{
		State:   StateStart,
		Config:  cfg,
		Events:  NewDispatcher(),
		Lives:   cfg.StartingLives,
		Effects: NewEffectPool(MaxEffects),
		Texas:   NewTexasDonut(cfg.TexasRequired, cfg.TexasTicks),
		rng:     rng,
	}
	if sd, ok := rng.(common.Seedable); ok {
		s.seed = sd.Seed()
	}
	s.fx = common.NewSeededRNG(s.seed ^ 0xA5A5A5A5)
	return s
}

// Seed returns the base seed the session replays from.
func (s *Session) Seed() uint32 {
	return s.seed
}

// Field returns the play area.
func (s *Session) Field() Field {
	return s.Config.Field()
}

// Start begins a new game from any state, discarding the previous run.
func (s *Session) Start() {
	s.reset()
	s.ID = uuid.New()
	s.State = StatePlaying
	Debug("Start! session", s.ID.String(), "seed", s.seed)
	s.startWave()
}

// reset clears all run state but keeps config, listeners and seed.
func (s *Session) reset() {
	s.Wave = 1
	s.Score = 0
	s.Lives = s.Config.StartingLives
	s.Donuts = 0

	s.Freddies = s.Freddies[:0]
	s.Thrown = s.Thrown[:0]
	s.DonutBoxes = s.DonutBoxes[:0]
	s.TexasBoxes = s.TexasBoxes[:0]
	s.LifeBoxes = s.LifeBoxes[:0]

	s.Effects.Clear()
	s.Texas = NewTexasDonut(s.Config.TexasRequired, s.Config.TexasTicks)
	s.Waves = WaveScheduler{}
	s.regenTimer = 0
}

// gameOver ends the run. Only a new Start leaves this state.
func (s *Session) gameOver() {
	s.State = StateGameOver
	Debug("Game over at wave", s.Wave, "score", s.Score)
	s.Events.Dispatch(Event{Type: GameOver, Value: s.Score})
}

// advanceFreddies moves every Freddie and settles the ones that finished.
// A satisfied Freddie leaving pays out; a hungry one crossing the danger
// line costs a life, and the last life ends the game on the spot.
func (s *Session) advanceFreddies() {
	field := s.Field()
	for _, f := range s.Freddies {
		f.Advance(field)
		if !f.Done() {
			continue
		}

		if f.Satisfied {
			s.Score += s.Config.Score.FreddieFedPerWave * s.Wave
			s.burst(f.X, f.Y, TintGold, 15)
			s.Events.Dispatch(Event{Type: FreddieSatisfied, X: f.X, Y: f.Y, Value: s.Wave})
			continue
		}

		s.Lives--
		s.burst(f.X, field.Height-20, TintRed, 20)
		Debug("Life lost, lives left", s.Lives)
		s.Events.Dispatch(Event{Type: LifeLost, X: f.X, Y: field.Height, Value: s.Lives})
		if s.Lives <= 0 {
			s.Lives = 0
			s.gameOver()
			break
		}
	}
	s.Freddies = compact(s.Freddies)
}

func (s *Session) advancePowerups() {
	field := s.Field()
	for _, set := range [][]*Powerup{s.DonutBoxes, s.TexasBoxes, s.LifeBoxes} {
		for _, p := range set {
			p.Advance(field)
		}
	}
	s.DonutBoxes = compact(s.DonutBoxes)
	s.TexasBoxes = compact(s.TexasBoxes)
	s.LifeBoxes = compact(s.LifeBoxes)
}

func (s *Session) advanceDonuts() {
	field := s.Field()
	for _, d := range s.Thrown {
		d.Advance(field)
	}
	s.Thrown = compact(s.Thrown)
}

// burst sprays count particles from (x, y).
func (s *Session) burst(x, y float64, tint Tint, count int) {
	for i := 0; i < count; i++ {
		e := s.Effects.Acquire()
		if e == nil {
			return
		}
		e.Kind = ParticleEffect
		e.Tint = tint
		e.X = x
		e.Y = y
		e.VX = (s.fx.Random() - 0.5) * 8
		e.VY = (s.fx.Random()-0.5)*8 - 3
		e.Size = s.fx.Random()*8 + 4
		e.Life = ParticleLife
		e.MaxLife = ParticleLife
	}
}

// shockwave starts an expanding ring at (x, y).
func (s *Session) shockwave(x, y float64, tint Tint) {
	e := s.Effects.Acquire()
	if e == nil {
		return
	}
	e.Kind = ShockwaveEffect
	e.Tint = tint
	e.X = x
	e.Y = y
	e.VX, e.VY = 0, 0
	e.Size = 0
	e.Life = ShockwaveLife
	e.MaxLife = ShockwaveLife
}

// GameOverMessage picks the closing line for the wave the run ended on.
func GameOverMessage(wave int) string {
	switch {
	case wave < 3:
		return "The Freddies are still hungry! Try again!"
	case wave < 5:
		return "Not bad! You fed quite a few Freddies!"
	case wave < 8:
		return "Great job! The Freddies are impressed!"
	}
	return "Legendary! You're a master donut tosser!"
}
