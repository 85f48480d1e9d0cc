//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/audio"
	"github.com/simukka/feed-the-freddies/game"
)

// AudioManager plays event cues with Web Audio oscillators.
type AudioManager struct {
	ctx        *js.Object
	masterGain *js.Object
	ready      bool
	width      float64

	AudioCtx *js.Object // Exposed for state checking
}

var _ game.Listener = (*AudioManager)(nil)

// NewAudioManager creates an audio manager panning across a field width.
func NewAudioManager(width float64) *AudioManager {
	return &AudioManager{width: width}
}

// Init initializes the Web Audio context. Browsers only allow this after a
// user gesture, so it is called from input handlers.
func (am *AudioManager) Init() {
	if am.ctx != nil {
		am.resume()
		return
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		game.DebugWarn("Web Audio unavailable")
		return
	}

	am.ctx = audioCtx.New()
	am.AudioCtx = am.ctx
	am.masterGain = am.ctx.Call("createGain")
	am.masterGain.Call("connect", am.ctx.Get("destination"))
	// Cue gains already include the master volume
	am.masterGain.Get("gain").Set("value", 1)
	am.ready = true
}

func (am *AudioManager) resume() {
	if am.ctx.Get("state").String() == "suspended" {
		am.ctx.Call("resume")
	}
}

// SetMuted toggles all cues.
func (am *AudioManager) SetMuted(muted bool) {
	audio.AudioConfig.Muted = muted
}

// OnEvent implements game.Listener.
func (am *AudioManager) OnEvent(e game.Event) {
	sfx := audio.GetSoundEffect(e.Type)
	if sfx == nil {
		return
	}
	pan := 0.0
	if e.X != 0 {
		pan = audio.Pan(e.X, am.width) * audio.AudioConfig.PanStrength
	}
	am.Play(sfx, pan)
}

// Play synthesizes a cue through gain and stereo panner nodes.
func (am *AudioManager) Play(sfx *audio.SoundEffect, pan float64) {
	if !am.ready {
		return
	}
	gainValue := audio.AudioConfig.Gain(sfx)
	if gainValue <= 0 {
		return
	}
	am.resume()

	now := am.ctx.Get("currentTime").Float()
	total := sfx.TotalDuration().Seconds()
	attack := audio.AudioConfig.AttackSeconds
	release := audio.AudioConfig.ReleaseSeconds

	osc := am.ctx.Call("createOscillator")
	osc.Set("type", sfx.WaveType.String())

	freq := osc.Get("frequency")
	if len(sfx.Notes) > 0 {
		step := sfx.Duration.Seconds()
		for i, note := range sfx.Notes {
			freq.Call("setValueAtTime", note, now+float64(i)*step)
		}
	} else {
		freq.Call("setValueAtTime", sfx.StartHz, now)
		freq.Call("linearRampToValueAtTime", sfx.EndHz, now+total)
	}

	gain := am.ctx.Call("createGain")
	g := gain.Get("gain")
	g.Call("setValueAtTime", 0, now)
	g.Call("linearRampToValueAtTime", gainValue, now+attack)
	g.Call("linearRampToValueAtTime", 0, now+total+release)

	osc.Call("connect", gain)
	out := gain
	if panner := am.ctx.Get("createStereoPanner"); panner != nil && panner != js.Undefined {
		p := am.ctx.Call("createStereoPanner")
		p.Get("pan").Set("value", pan)
		gain.Call("connect", p)
		out = p
	}
	out.Call("connect", am.masterGain)

	osc.Call("start", now)
	osc.Call("stop", now+total+release)
}
