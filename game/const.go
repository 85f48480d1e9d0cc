package game

// Timing
const (
	TicksPerSecond = 60
	FrameDuration  = 1000.0 / TicksPerSecond // ms, ~60 FPS
)

// Default play area
const (
	WIDTH  = 800
	HEIGHT = 600

	CompactWidth  = 480
	CompactHeight = 720

	// CompactBreakpoint is the viewport width below which the compact profile is used.
	CompactBreakpoint = 600
)

// Freddie constants
const (
	FreddieWidth      = 50.0
	FreddieHeight     = 60.0
	FreddieSpawnY     = -50.0
	FreddieSpawnInset = 30.0

	FreddieWobbleSpeed     = 0.1
	FreddieWobbleAmplitude = 0.5

	// Satisfied Freddies drift down, spin and shrink until they leave.
	SatisfiedFallSpeed = 2.0
	SatisfiedSpin      = 0.2
	SatisfiedShrink    = 0.98
	SatisfiedTicks     = 30

	// DangerMargin is how far below the field an unsatisfied Freddie may
	// travel before it costs a life.
	DangerMargin = 50.0

	// DangerZoneHeight is the tinted band at the bottom of the field.
	DangerZoneHeight = 100.0
)

// Donut (projectile) constants
const (
	DonutSpeed      = 12.0
	DonutRadius     = 15.0
	DonutSpin       = 0.3
	DonutExitMargin = 50.0

	// LaunchOffsetY is the launch point's distance from the bottom edge.
	LaunchOffsetY = 50.0
)

// Powerup constants
const (
	BoxSize        = 50.0
	BoxSpawnY      = -60.0
	BoxSpawnInset  = 40.0
	BoxFallSpeed   = 1.5
	LifeFallSpeed  = 1.2
	BoxWobbleSpeed = 0.08
	BoxWobbleAmp   = 0.8
	BoxSpin        = 0.05
	BoxExitMargin  = 60.0
)

// Field is the play area in simulation coordinates. Input coordinates must be
// mapped into this space before they reach the session.
type Field struct {
	Width, Height float64
}

// Point is a position in simulation coordinates.
type Point struct {
	X, Y float64
}

// --- Entity Interface ---

// Entity is the capability set shared by every simulated actor.
// Rendering is not part of it; renderers read a Snapshot instead.
type Entity interface {
	// Advance moves the entity forward by one tick.
	Advance(f Field)

	// Done reports whether the entity must leave its live set.
	Done() bool
}

// Collidable is anything a donut can hit.
type Collidable interface {
	GetPosition() (x, y float64)
	GetRadius() float64
}

// Compile-time interface checks
var (
	_ Entity     = (*Freddie)(nil)
	_ Entity     = (*Donut)(nil)
	_ Entity     = (*Powerup)(nil)
	_ Entity     = (*Effect)(nil)
	_ Collidable = (*Freddie)(nil)
	_ Collidable = (*Powerup)(nil)
)

// compact drops finished entities in place, preserving the order of the rest.
func compact[T Entity](items []T) []T {
	live := items[:0]
	for _, it := range items {
		if !it.Done() {
			live = append(live, it)
		}
	}
	var zero T
	for i := len(live); i < len(items); i++ {
		items[i] = zero
	}
	return live
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
