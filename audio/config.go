package audio

type Config struct {
	// Master settings
	MasterVolume float64 // 0.0 - 1.0
	Muted        bool

	// Cue shaping
	AttackSeconds  float64 // Fade-in to avoid clicks
	ReleaseSeconds float64 // Tail after the last note
	PanStrength    float64 // 0 = mono, 1 = full stereo spread

	// SampleRate is used by native backends.
	SampleRate int
}

// AudioConfig holds the active audio settings.
var AudioConfig = Config{
	MasterVolume:   0.7,
	AttackSeconds:  0.005,
	ReleaseSeconds: 0.05,
	PanStrength:    0.6,
	SampleRate:     44100,
}

// Gain returns the effective gain for a cue, honoring mute.
func (c Config) Gain(sfx *SoundEffect) float64 {
	if c.Muted || sfx == nil {
		return 0
	}
	return c.MasterVolume * sfx.Volume
}
