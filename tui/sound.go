//go:build !js
// +build !js

package tui

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/simukka/feed-the-freddies/audio"
	"github.com/simukka/feed-the-freddies/game"
)

// Sound plays event cues through the system speaker.
type Sound struct {
	rate        beep.SampleRate
	mixer       *beep.Mixer
	width       float64
	initialized bool
}

var _ game.Listener = (*Sound)(nil)

// NewSound creates a sound player panning across a field width.
func NewSound(width float64) *Sound {
	return &Sound{
		rate:  beep.SampleRate(audio.AudioConfig.SampleRate),
		mixer: &beep.Mixer{},
		width: width,
	}
}

// Init opens the speaker. Playback is skipped until it succeeds.
func (s *Sound) Init() error {
	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close stops playback.
func (s *Sound) Close() {
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// OnEvent implements game.Listener.
func (s *Sound) OnEvent(e game.Event) {
	if !s.initialized {
		return
	}
	sfx := audio.GetSoundEffect(e.Type)
	if sfx == nil {
		return
	}
	pan := 0.0
	if e.X != 0 {
		pan = audio.Pan(e.X, s.width) * audio.AudioConfig.PanStrength
	}
	st, err := audio.Streamer(sfx, pan, s.rate, audio.AudioConfig)
	if err != nil {
		game.DebugWarn("cue", sfx.Name, err)
		return
	}
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}
