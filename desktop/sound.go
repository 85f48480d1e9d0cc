//go:build !js
// +build !js

package desktop

import (
	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/simukka/feed-the-freddies/audio"
	"github.com/simukka/feed-the-freddies/game"
)

// Sound renders cues to PCM and plays them through ebiten's audio context.
type Sound struct {
	ctx     *ebaudio.Context
	rate    beep.SampleRate
	width   float64
	playing []*ebaudio.Player // Held until finished
}

var _ game.Listener = (*Sound)(nil)

// NewSound creates the audio context. Only one may exist per process.
func NewSound(width float64) *Sound {
	rate := audio.AudioConfig.SampleRate
	return &Sound{
		ctx:   ebaudio.NewContext(rate),
		rate:  beep.SampleRate(rate),
		width: width,
	}
}

// OnEvent implements game.Listener.
func (s *Sound) OnEvent(e game.Event) {
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

	live := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	p := s.ctx.NewPlayerFromBytes(audio.PCM16(st))
	p.Play()
	s.playing = append(live, p)
}
