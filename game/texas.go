package game

// TexasPhase is the stage of the Texas Donut animation.
type TexasPhase int

const (
	TexasIdle TexasPhase = iota
	TexasCharge
	TexasBurst
	TexasFade
)

// Phase boundaries in ticks since activation.
const (
	TexasChargeEnd = 20
	TexasBurstEnd  = 50
)

func (p TexasPhase) String() string {
	switch p {
	case TexasCharge:
		return "charge"
	case TexasBurst:
		return "burst"
	case TexasFade:
		return "fade"
	}
	return "idle"
}

// TexasDonut tracks special attack progress, stockpiled charges and the
// active animation clock.
type TexasDonut struct {
	Progress int // Freddies satisfied toward the next charge
	Required int
	Stock    int // Charges ready to unleash

	Active   bool
	Clock    int
	Duration int
}

// NewTexasDonut creates an empty meter.
func NewTexasDonut(required, duration int) TexasDonut {
	return TexasDonut{Required: required, Duration: duration}
}

// AddProgress counts one satisfied Freddie. It returns true when the meter
// fills and converts into a charge.
func (t *TexasDonut) AddProgress() bool {
	t.Progress++
	if t.Progress >= t.Required {
		t.Progress = 0
		t.Stock++
		return true
	}
	return false
}

// Ready reports whether a charge can be unleashed now.
func (t *TexasDonut) Ready() bool {
	return t.Stock > 0 && !t.Active
}

func (t *TexasDonut) activate() bool {
	if !t.Ready() {
		return false
	}
	t.Stock--
	t.Active = true
	t.Clock = 0
	return true
}

// Advance ticks the animation clock and ends it after Duration ticks.
func (t *TexasDonut) Advance() {
	if !t.Active {
		return
	}
	t.Clock++
	if t.Clock >= t.Duration {
		t.Active = false
		t.Clock = 0
	}
}

// Phase returns the current animation stage.
func (t *TexasDonut) Phase() TexasPhase {
	switch {
	case !t.Active:
		return TexasIdle
	case t.Clock < TexasChargeEnd:
		return TexasCharge
	case t.Clock < TexasBurstEnd:
		return TexasBurst
	}
	return TexasFade
}

// PhaseProgress is how far the animation is through its current stage,
// in [0, 1].
func (t *TexasDonut) PhaseProgress() float64 {
	var start, end int
	switch t.Phase() {
	case TexasCharge:
		start, end = 0, TexasChargeEnd
	case TexasBurst:
		start, end = TexasChargeEnd, TexasBurstEnd
	case TexasFade:
		start, end = TexasBurstEnd, t.Duration
	default:
		return 0
	}
	if end <= start {
		return 1
	}
	return clamp(float64(t.Clock-start)/float64(end-start), 0, 1)
}

// Fraction is the fill level of the progress meter in [0, 1].
func (t *TexasDonut) Fraction() float64 {
	if t.Required <= 0 {
		return 0
	}
	return clamp(float64(t.Progress)/float64(t.Required), 0, 1)
}

// UnleashTexasDonut spends one charge and satisfies every hungry Freddie on
// the field. Fed Freddies do not count toward the next charge.
func (s *Session) UnleashTexasDonut() bool {
	if s.State != StatePlaying {
		return false
	}
	if !s.Texas.activate() {
		Debug("Texas Donut not ready")
		return false
	}

	fed := 0
	for _, f := range s.Freddies {
		if f.Satisfied || f.Done() {
			continue
		}
		f.Feed()
		s.Score += s.Config.Score.TexasFedPerWave * s.Wave
		s.burst(f.X, f.Y, TintGold, 12)
		fed++
	}

	cx, cy := s.Config.Width/2, s.Config.Height/2
	s.shockwave(cx, cy, TintOrange)
	s.burst(cx, cy, TintOrange, 40)

	Debug("Texas Donut unleashed, fed", fed)
	s.Events.Dispatch(Event{Type: TexasUnleashed, X: cx, Y: cy, Value: fed})
	return true
}
