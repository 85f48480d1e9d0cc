package game

import "testing"

func TestDispatcher_TypedAndCatchAll(t *testing.T) {
	d := NewDispatcher()
	var typed, all []EventType

	d.Subscribe(LifeLost, ListenerFunc(func(e Event) { typed = append(typed, e.Type) }))
	d.SubscribeAll(ListenerFunc(func(e Event) { all = append(all, e.Type) }))

	d.Dispatch(Event{Type: LifeLost})
	d.Dispatch(Event{Type: DonutThrown})

	if len(typed) != 1 || typed[0] != LifeLost {
		t.Errorf("Expected typed listener to see only LifeLost, got %v", typed)
	}
	if len(all) != 2 {
		t.Errorf("Expected catch-all to see 2 events, got %v", all)
	}
}

func TestDispatcher_NilIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameOver})
}

func TestSession_EmitsEvents(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	s.Lives = 1

	seen := make(map[EventType]int)
	s.Events.SubscribeAll(ListenerFunc(func(e Event) { seen[e.Type]++ }))

	s.Launch(100, 100)
	placeFreddie(s, 200, s.Config.Height+DangerMargin, 1)
	s.Tick()

	for _, want := range []EventType{DonutThrown, LifeLost, GameOver} {
		if seen[want] != 1 {
			t.Errorf("Expected one %s event, got %d", want, seen[want])
		}
	}
}

func TestSession_StartEmitsWaveStarted(t *testing.T) {
	s := NewSession(nil, nil)
	var waves []int
	s.Events.Subscribe(WaveStarted, ListenerFunc(func(e Event) { waves = append(waves, e.Value) }))

	s.Start()

	if len(waves) != 1 || waves[0] != 1 {
		t.Errorf("Expected WaveStarted for wave 1, got %v", waves)
	}
}
