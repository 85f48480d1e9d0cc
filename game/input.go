package game

// Action is a discrete command from any input device.
type Action int

const (
	ActionNone Action = iota
	ActionTexas
	ActionStart
	ActionQuit
	ActionStats
)

// KeyMap maps browser key codes to actions. Letter codes match their
// upper-case ASCII runes, so terminal frontends can share it.
var KeyMap = map[int]Action{
	13:  ActionStart, // Enter
	32:  ActionTexas, // Space
	81:  ActionQuit,  // Q
	82:  ActionStart, // R
	84:  ActionTexas, // T
	88:  ActionTexas, // X
	121: ActionStats, // F10
}

// TranslateKeyCode converts a key code to an action.
func TranslateKeyCode(keyCode int) Action {
	if a, ok := KeyMap[keyCode]; ok {
		return a
	}
	return ActionNone
}

// TranslateRune converts a typed character to an action, ignoring case.
func TranslateRune(r rune) Action {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return TranslateKeyCode(int(r))
}

// LaunchPoint is where every donut starts: bottom center of the field.
func (s *Session) LaunchPoint() (x, y float64) {
	return s.Config.Width / 2, s.Config.Height - LaunchOffsetY
}

// Launch throws a donut toward (x, y) in field coordinates. It does nothing
// unless a game is in progress and ammo remains.
func (s *Session) Launch(x, y float64) bool {
	if s.State != StatePlaying {
		return false
	}
	if s.Donuts <= 0 {
		Debug("Launch ignored: out of donuts")
		return false
	}

	lx, ly := s.LaunchPoint()
	s.Thrown = append(s.Thrown, NewDonut(lx, ly, x, y))
	s.Donuts--
	s.Events.Dispatch(Event{Type: DonutThrown, X: lx, Y: ly, Value: s.Donuts})
	return true
}

// Apply runs an action against the session. Quit and Stats belong to the
// frontend and are ignored here.
func (s *Session) Apply(a Action) bool {
	switch a {
	case ActionTexas:
		return s.UnleashTexasDonut()
	case ActionStart:
		if s.State == StatePlaying {
			return false
		}
		s.Start()
		return true
	}
	return false
}
