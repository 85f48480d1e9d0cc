package game

// HUD is the read-only status a frontend displays.
type HUD struct {
	SessionID string
	State     State
	Wave      int
	Score     int
	Lives     int
	Donuts    int

	TexasProgress int
	TexasRequired int
	TexasStock    int
	TexasReady    bool
	TexasActive   bool
	TexasPhase    TexasPhase
	TexasClock    int
	TexasPhaseAt  float64 // Progress through the current phase, 0 to 1

	WaveComplete  bool
	WaveCountdown int
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	HUD      HUD
	Field    Field
	Launch   Point
	Freddies []Freddie
	Donuts   []Donut
	Powerups []Powerup
	Effects  []Effect
}

// HUD returns the current status values.
func (s *Session) HUD() HUD {
	h := HUD{
		State:         s.State,
		Wave:          s.Wave,
		Score:         s.Score,
		Lives:         s.Lives,
		Donuts:        s.Donuts,
		TexasProgress: s.Texas.Progress,
		TexasRequired: s.Texas.Required,
		TexasStock:    s.Texas.Stock,
		TexasReady:    s.State == StatePlaying && s.Texas.Ready(),
		TexasActive:   s.Texas.Active,
		TexasPhase:    s.Texas.Phase(),
		TexasClock:    s.Texas.Clock,
		TexasPhaseAt:  s.Texas.PhaseProgress(),
		WaveComplete:  s.Waves.Complete(),
		WaveCountdown: s.Waves.Countdown,
	}
	if s.State != StateStart {
		h.SessionID = s.ID.String()
	}
	return h
}

// Snapshot fills dst with the current frame, reusing its slices.
func (s *Session) Snapshot(dst *Snapshot) {
	dst.HUD = s.HUD()
	dst.Field = s.Field()
	dst.Launch.X, dst.Launch.Y = s.LaunchPoint()

	dst.Freddies = dst.Freddies[:0]
	for _, f := range s.Freddies {
		dst.Freddies = append(dst.Freddies, *f)
	}

	dst.Donuts = dst.Donuts[:0]
	for _, d := range s.Thrown {
		dst.Donuts = append(dst.Donuts, *d)
	}

	dst.Powerups = dst.Powerups[:0]
	for _, set := range [][]*Powerup{s.DonutBoxes, s.TexasBoxes, s.LifeBoxes} {
		for _, p := range set {
			dst.Powerups = append(dst.Powerups, *p)
		}
	}

	dst.Effects = dst.Effects[:0]
	for i := 0; i < s.Effects.ActiveCount; i++ {
		dst.Effects = append(dst.Effects, *s.Effects.Pool[i])
	}
}
