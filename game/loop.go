package game

// Tick advances the simulation by exactly one fixed step.
//
// Order within a tick:
//   - wave scheduler (spawns, powerup timers, wave transitions)
//   - Freddie kinematics, scoring and life loss
//   - powerup and donut kinematics
//   - collision resolution
//   - Texas Donut clock, ammo regeneration, cosmetic effects
//
// Losing the last life ends the game within the tick; the remaining steps
// are skipped. Once over, only cosmetic effects keep animating.
func (s *Session) Tick() {
	switch s.State {
	case StateStart:
		return
	case StateGameOver:
		s.Effects.Advance(s.Field())
		return
	}

	s.updateScheduler()

	s.advanceFreddies()
	if s.State != StatePlaying {
		return
	}
	s.advancePowerups()
	s.advanceDonuts()

	s.resolveCollisions()

	s.Texas.Advance()
	s.regenerate()
	s.Effects.Advance(s.Field())
}

// Driver paces a session from a frame clock. Each frame runs at most one
// tick; a frame that arrives early is skipped and missed time is never
// caught up, so slow displays see slow motion rather than jumps.
type Driver struct {
	Session       *Session
	FrameDuration float64 // ms between ticks
	LastFrameTime float64
	Ticks         uint64

	started bool
}

// NewDriver creates a driver at the default tick rate.
func NewDriver(s *Session) *Driver {
	return &Driver{
		Session:       s,
		FrameDuration: FrameDuration,
	}
}

// Frame is called with a monotonic timestamp in milliseconds. It reports
// whether a tick ran.
func (d *Driver) Frame(now float64) bool {
	if d.started && now-d.LastFrameTime < d.FrameDuration {
		return false
	}
	d.started = true
	d.LastFrameTime = now
	d.Session.Tick()
	d.Ticks++
	return true
}
