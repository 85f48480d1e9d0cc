package game

// PowerupTiming controls one independent powerup spawn timer.
type PowerupTiming struct {
	MinTicks int // inclusive lower bound of the random interval
	MaxTicks int // exclusive upper bound
	Cap      int // maximum live at once
}

// ScoreTable holds every score award.
type ScoreTable struct {
	FreddieHit        int // per donut that lands on a Freddie
	FreddieFedPerWave int // Freddie leaves satisfied, multiplied by wave
	TexasFedPerWave   int // Freddie fed by the Texas Donut, multiplied by wave
	BoxHit            int // per donut that lands on any powerup
	DonutBoxBroken    int
	TexasBox          int
	LifeBox           int
}

// Config holds all balancing constants for a session.
type Config struct {
	Width  float64
	Height float64

	StartingLives  int
	WaveDelayTicks int

	// Wave size: BaseFreddies + FreddiesPerWave*w
	BaseFreddies    int
	FreddiesPerWave int

	// Spawn delay: floor(min + (max-min)*e^(-decay*w))
	SpawnDelayMax   float64
	SpawnDelayMin   float64
	SpawnDelayDecay float64

	// Health: min(HealthCap, floor(w/HealthWaveStep)+1)
	HealthCap      int
	HealthWaveStep int

	// Speed: (max - (max-min)*e^(-growth*w)) * ToughSlowdown^(health-1)
	SpeedMin      float64
	SpeedMax      float64
	SpeedGrowth   float64
	ToughSlowdown float64

	// Ammo economy
	GrantPercent int // wave-start grant as a percentage of donutsNeeded
	CapPercent   int // regeneration cap as a percentage of donutsNeeded
	RegenTicks   int

	DonutBox PowerupTiming
	TexasBox PowerupTiming
	LifeBox  PowerupTiming

	// TexasBoxWidenPerWave is added to the Texas box interval per wave, up to TexasBoxWidenMax.
	TexasBoxWidenPerWave int
	TexasBoxWidenMax     int

	// LifeBoxNarrowPerWave shrinks the life box interval per wave, floored at LifeBoxNarrowFloor.
	LifeBoxNarrowPerWave float64
	LifeBoxNarrowFloor   float64

	TexasRequired int
	TexasTicks    int

	Score ScoreTable
}

// DefaultConfig returns the standard balancing profile.
func DefaultConfig() *Config {
	return &Config{
		Width:  WIDTH,
		Height: HEIGHT,

		StartingLives:  3,
		WaveDelayTicks: 120, // 2 seconds

		BaseFreddies:    3,
		FreddiesPerWave: 2,

		SpawnDelayMax:   60,
		SpawnDelayMin:   20,
		SpawnDelayDecay: 0.15,

		HealthCap:      4,
		HealthWaveStep: 3,

		SpeedMin:      1.0,
		SpeedMax:      3.5,
		SpeedGrowth:   0.12,
		ToughSlowdown: 0.8,

		GrantPercent: 125,
		CapPercent:   140,
		RegenTicks:   180, // 3 seconds

		DonutBox: PowerupTiming{MinTicks: 300, MaxTicks: 600, Cap: 1},
		TexasBox: PowerupTiming{MinTicks: 1200, MaxTicks: 1800, Cap: 1},
		LifeBox:  PowerupTiming{MinTicks: 2400, MaxTicks: 3600, Cap: 1},

		TexasBoxWidenPerWave: 20,
		TexasBoxWidenMax:     600,

		LifeBoxNarrowPerWave: 0.05,
		LifeBoxNarrowFloor:   0.5,

		TexasRequired: 15,
		TexasTicks:    90,

		Score: ScoreTable{
			FreddieHit:        10,
			FreddieFedPerWave: 100,
			TexasFedPerWave:   100,
			BoxHit:            25,
			DonutBoxBroken:    100,
			TexasBox:          500,
			LifeBox:           500,
		},
	}
}

// CompactConfig returns the profile for constrained displays: a tall narrow
// field and faster donut regeneration.
func CompactConfig() *Config {
	c := DefaultConfig()
	c.Width = CompactWidth
	c.Height = CompactHeight
	c.RegenTicks = 120
	return c
}

// ConfigForViewport picks the profile for a viewport of the given size.
func ConfigForViewport(width, height int) *Config {
	if width < CompactBreakpoint {
		return CompactConfig()
	}
	return DefaultConfig()
}

// Field returns the play area described by the config.
func (c *Config) Field() Field {
	return Field{Width: c.Width, Height: c.Height}
}
