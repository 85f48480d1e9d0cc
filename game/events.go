package game

// EventType names something that happened during a tick.
type EventType string

const (
	DonutThrown      EventType = "donut_thrown"
	FreddieFed       EventType = "freddie_fed"
	FreddieSatisfied EventType = "freddie_satisfied"
	LifeLost         EventType = "life_lost"
	BoxCracked       EventType = "box_cracked"
	PowerupCollected EventType = "powerup_collected"
	TexasCharged     EventType = "texas_charged"
	TexasUnleashed   EventType = "texas_unleashed"
	WaveCleared      EventType = "wave_cleared"
	WaveStarted      EventType = "wave_started"
	GameOver         EventType = "game_over"
)

// Event carries the position and an optional value (score, wave, kind).
type Event struct {
	Type  EventType
	X, Y  float64
	Value int
}

// Listener receives events synchronously from the simulation goroutine.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribed listeners.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers l for one event type.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll registers l for every event type.
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.all = append(d.all, l)
}

// Dispatch delivers e to type listeners first, then catch-all listeners.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.all {
		l.OnEvent(e)
	}
}
