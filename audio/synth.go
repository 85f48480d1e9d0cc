//go:build !js
// +build !js

package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Streamer synthesizes one cue. It returns nil when the cue is silent.
func Streamer(sfx *SoundEffect, pan float64, rate beep.SampleRate, cfg Config) (beep.Streamer, error) {
	gain := cfg.Gain(sfx)
	if gain <= 0 {
		return nil, nil
	}

	var src beep.Streamer
	if len(sfx.Notes) > 0 {
		notes := make([]beep.Streamer, 0, len(sfx.Notes))
		for _, hz := range sfx.Notes {
			osc, err := tone(sfx.WaveType, rate, hz)
			if err != nil {
				return nil, fmt.Errorf("note %.0fHz: %w", hz, err)
			}
			notes = append(notes, beep.Take(rate.N(sfx.Duration), osc))
		}
		src = beep.Seq(notes...)
	} else {
		src = newSweep(sfx.WaveType, sfx.StartHz, sfx.EndHz, sfx.Duration, rate)
	}

	attack := time.Duration(cfg.AttackSeconds * float64(time.Second))
	release := time.Duration(cfg.ReleaseSeconds * float64(time.Second))
	shaped := newEnvelope(src, sfx.TotalDuration(), attack, release, rate)

	return &effects.Pan{
		Streamer: &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(gain)},
		Pan:      pan,
	}, nil
}

func tone(w WaveType, rate beep.SampleRate, hz float64) (beep.Streamer, error) {
	switch w {
	case WaveSquare:
		return generators.SquareTone(rate, hz)
	case WaveSawtooth:
		return generators.SawtoothTone(rate, hz)
	case WaveTriangle:
		return generators.TriangleTone(rate, hz)
	}
	return generators.SineTone(rate, hz)
}

// sweep is an oscillator gliding linearly between two frequencies.
type sweep struct {
	wave     WaveType
	from, to float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newSweep(w WaveType, from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{wave: w, from: from, to: to, duration: rate.N(d), rate: rate}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSawtooth:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies a linear attack and release and cuts the stream at
// the cue length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// PCM16 drains s into interleaved signed 16-bit little-endian stereo.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
