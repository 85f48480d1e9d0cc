package game

// --- Cosmetic Effects and Pool ---

type EffectKind int

const (
	ParticleEffect EffectKind = iota
	ShockwaveEffect
)

// Tint is a palette slot. Renderers map it to their own colors.
type Tint int

const (
	TintGold Tint = iota
	TintPink
	TintRed
	TintBrown
	TintOrange
	TintWhite
)

const (
	ParticleLife    = 30
	ParticleGravity = 0.3
	ShockwaveLife   = 40
	ShockwaveGrowth = 18.0

	MaxEffects = 512
)

// Effect is a short-lived cosmetic particle or ring. Effects never influence
// gameplay.
type Effect struct {
	Kind      EffectKind
	Tint      Tint
	X, Y      float64
	VX, VY    float64
	Size      float64 // Particle size or ring radius
	Life      int     // Ticks remaining
	MaxLife   int
	PoolIndex int // Index in pool for swap-and-pop
}

// Advance implements Entity.
func (e *Effect) Advance(field Field) {
	switch e.Kind {
	case ParticleEffect:
		e.X += e.VX
		e.Y += e.VY
		e.VY += ParticleGravity
	case ShockwaveEffect:
		e.Size += ShockwaveGrowth
	}
	e.Life--
}

// Done implements Entity.
func (e *Effect) Done() bool {
	return e.Life <= 0
}

// Alpha is the remaining life as a fraction, for fading.
func (e *Effect) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return clamp(float64(e.Life)/float64(e.MaxLife), 0, 1)
}

// EffectPool manages reusable effect objects.
type EffectPool struct {
	Pool        []*Effect
	ActiveCount int
	MaxSize     int
}

// NewEffectPool creates a new effect pool with pre-allocated objects.
func NewEffectPool(maxSize int) *EffectPool {
	pool := &EffectPool{
		Pool:    make([]*Effect, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Effect{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available effect from the pool, or nil when it is full.
func (p *EffectPool) Acquire() *Effect {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	e := p.Pool[p.ActiveCount]
	e.PoolIndex = p.ActiveCount
	p.ActiveCount++
	return e
}

// Release returns an effect to the pool using swap-and-pop.
func (p *EffectPool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.ActiveCount--
}

// Clear resets the pool.
func (p *EffectPool) Clear() {
	p.ActiveCount = 0
}

// ForEachReverse iterates over active effects in reverse order, so the
// callback may release the current index.
func (p *EffectPool) ForEachReverse(fn func(*Effect, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// Advance steps every active effect and releases the finished ones.
func (p *EffectPool) Advance(field Field) {
	p.ForEachReverse(func(e *Effect, i int) {
		e.Advance(field)
		if e.Done() {
			p.Release(i)
		}
	})
}
