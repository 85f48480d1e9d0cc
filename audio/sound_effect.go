package audio

import (
	"time"

	"github.com/simukka/feed-the-freddies/game"
)

// WaveType represents the oscillator waveform of a cue.
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSawtooth
	WaveSine
	WaveTriangle
)

func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// SoundEffect is a single synthesized cue: one oscillator sliding from
// StartHz to EndHz under a linear fade.
type SoundEffect struct {
	Name     string
	Category string // Player, Freddie, Pickup, UI

	WaveType WaveType
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Volume   float64 // 0.0 - 1.0

	// Notes, when set, are played back to back instead of a slide.
	Notes []float64
}

// SoundEffectLibrary maps simulation events to their cues.
var SoundEffectLibrary = map[game.EventType]*SoundEffect{
	game.DonutThrown: {
		Name: "Throw", Category: "Player",
		WaveType: WaveSine, StartHz: 520, EndHz: 780,
		Duration: 80 * time.Millisecond, Volume: 0.35,
	},
	game.FreddieFed: {
		Name: "Chomp", Category: "Freddie",
		WaveType: WaveSquare, StartHz: 220, EndHz: 160,
		Duration: 70 * time.Millisecond, Volume: 0.3,
	},
	game.FreddieSatisfied: {
		Name: "Yum", Category: "Freddie",
		WaveType: WaveTriangle, Notes: []float64{523.25, 659.25, 783.99},
		Duration: 60 * time.Millisecond, Volume: 0.4,
	},
	game.LifeLost: {
		Name: "Ouch", Category: "Freddie",
		WaveType: WaveSawtooth, StartHz: 300, EndHz: 90,
		Duration: 350 * time.Millisecond, Volume: 0.5,
	},
	game.BoxCracked: {
		Name: "Crack", Category: "Pickup",
		WaveType: WaveSquare, StartHz: 880, EndHz: 660,
		Duration: 50 * time.Millisecond, Volume: 0.3,
	},
	game.PowerupCollected: {
		Name: "Collect", Category: "Pickup",
		WaveType: WaveSine, Notes: []float64{659.25, 783.99, 1046.5},
		Duration: 70 * time.Millisecond, Volume: 0.45,
	},
	game.TexasCharged: {
		Name: "Charged", Category: "UI",
		WaveType: WaveTriangle, Notes: []float64{392, 523.25, 659.25, 783.99},
		Duration: 80 * time.Millisecond, Volume: 0.5,
	},
	game.TexasUnleashed: {
		Name: "Texas", Category: "Player",
		WaveType: WaveSawtooth, StartHz: 110, EndHz: 880,
		Duration: 600 * time.Millisecond, Volume: 0.6,
	},
	game.WaveCleared: {
		Name: "Cleared", Category: "UI",
		WaveType: WaveTriangle, Notes: []float64{523.25, 783.99},
		Duration: 120 * time.Millisecond, Volume: 0.4,
	},
	game.WaveStarted: {
		Name: "Wave", Category: "UI",
		WaveType: WaveSine, StartHz: 440, EndHz: 440,
		Duration: 150 * time.Millisecond, Volume: 0.3,
	},
	game.GameOver: {
		Name: "Game Over", Category: "UI",
		WaveType: WaveSawtooth, Notes: []float64{392, 329.63, 261.63, 196},
		Duration: 200 * time.Millisecond, Volume: 0.5,
	},
}

// GetSoundEffect returns the cue for an event, or nil if it is silent.
func GetSoundEffect(t game.EventType) *SoundEffect {
	return SoundEffectLibrary[t]
}

// GetSoundEffectsByCategory returns all cues in a category.
func GetSoundEffectsByCategory(category string) []*SoundEffect {
	var result []*SoundEffect
	for _, sfx := range SoundEffectLibrary {
		if sfx.Category == category {
			result = append(result, sfx)
		}
	}
	return result
}

// TotalDuration is how long the cue plays.
func (s *SoundEffect) TotalDuration() time.Duration {
	if len(s.Notes) > 0 {
		return s.Duration * time.Duration(len(s.Notes))
	}
	return s.Duration
}

// Pan returns a stereo pan value (-1.0 to 1.0) for a horizontal position.
// Left edge = -1.0, center = 0.0, right edge = 1.0
func Pan(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	p := (x/width)*2 - 1
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}
