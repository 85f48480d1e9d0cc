package game

// resolveCollisions tests each live donut against the targets in a fixed
// priority order: donut boxes, Texas boxes, life boxes, then Freddies. A
// donut is consumed by the first target it touches.
func (s *Session) resolveCollisions() {
	for _, d := range s.Thrown {
		if d.Done() {
			continue
		}
		if s.hitPowerup(d, s.DonutBoxes) ||
			s.hitPowerup(d, s.TexasBoxes) ||
			s.hitPowerup(d, s.LifeBoxes) {
			continue
		}
		s.hitFreddie(d)
	}

	s.Thrown = compact(s.Thrown)
	s.DonutBoxes = compact(s.DonutBoxes)
	s.TexasBoxes = compact(s.TexasBoxes)
	s.LifeBoxes = compact(s.LifeBoxes)
}

func (s *Session) hitPowerup(d *Donut, boxes []*Powerup) bool {
	for _, p := range boxes {
		if p.Done() || !d.Overlaps(p) {
			continue
		}
		d.spent = true
		s.Score += s.Config.Score.BoxHit
		s.burst(d.X, d.Y, TintPink, 8)
		s.Events.Dispatch(Event{Type: BoxCracked, X: p.X, Y: p.Y, Value: int(p.Kind)})
		if p.Hit() {
			s.collect(p)
		}
		return true
	}
	return false
}

// collect pays out a broken powerup.
func (s *Session) collect(p *Powerup) {
	score := s.Config.Score
	switch p.Kind {
	case DonutBoxKind:
		s.Donuts += p.DonutReward
		s.Score += score.DonutBoxBroken
		s.burst(p.X, p.Y, TintGold, 20)
		s.burst(p.X, p.Y, TintBrown, 15)
	case TexasBoxKind:
		s.Texas.Stock++
		s.Score += score.TexasBox
		s.burst(p.X, p.Y, TintOrange, 30)
	case LifeBoxKind:
		s.Lives++
		s.Score += score.LifeBox
		s.burst(p.X, p.Y, TintRed, 30)
	}
	Debug("Collected", p.Kind.String())
	s.Events.Dispatch(Event{Type: PowerupCollected, X: p.X, Y: p.Y, Value: int(p.Kind)})
}

func (s *Session) hitFreddie(d *Donut) bool {
	for _, f := range s.Freddies {
		if f.Satisfied || f.Done() || !d.Overlaps(f) {
			continue
		}
		d.spent = true
		s.Score += s.Config.Score.FreddieHit
		s.burst(d.X, d.Y, TintPink, 8)
		s.Events.Dispatch(Event{Type: FreddieFed, X: f.X, Y: f.Y, Value: f.Health - 1})

		if f.Hit() && s.Texas.AddProgress() {
			Debug("Texas Donut charged, stock", s.Texas.Stock)
			s.burst(s.Config.Width/2, 100, TintGold, 30)
			s.Events.Dispatch(Event{Type: TexasCharged, X: s.Config.Width / 2, Y: 100, Value: s.Texas.Stock})
		}
		return true
	}
	return false
}
