//go:build !js
// +build !js

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/simukka/feed-the-freddies/game"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return 0
}

func TestSweep_Length(t *testing.T) {
	waves := []WaveType{WaveSquare, WaveSawtooth, WaveSine, WaveTriangle}

	for _, w := range waves {
		t.Run(w.String(), func(t *testing.T) {
			s := newSweep(w, 200, 800, 50*time.Millisecond, testRate)
			if got, want := drain(t, s), testRate.N(50*time.Millisecond); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestEnvelope_FadesEdges(t *testing.T) {
	src := newSweep(WaveSquare, 440, 440, 100*time.Millisecond, testRate)
	env := newEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silence at attack start", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1 && mid != -1 {
		t.Errorf("sustain sample = %f, want full scale", mid)
	}
	if last := buf[n-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestStreamer_EveryCue(t *testing.T) {
	cfg := AudioConfig
	cfg.Muted = false

	for evt, sfx := range SoundEffectLibrary {
		t.Run(string(evt), func(t *testing.T) {
			s, err := Streamer(sfx, 0.5, testRate, cfg)
			if err != nil {
				t.Fatalf("Streamer: %v", err)
			}
			if s == nil {
				t.Fatal("audible cue produced no streamer")
			}
			want := testRate.N(sfx.TotalDuration())
			if len(sfx.Notes) > 0 {
				if seq := len(sfx.Notes) * testRate.N(sfx.Duration); seq < want {
					want = seq
				}
			}
			if got := drain(t, s); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestStreamer_Muted(t *testing.T) {
	cfg := AudioConfig
	cfg.Muted = true

	s, err := Streamer(GetSoundEffect(game.DonutThrown), 0, testRate, cfg)
	if err != nil || s != nil {
		t.Errorf("muted cue = (%v, %v), want (nil, nil)", s, err)
	}
}

func TestPCM16(t *testing.T) {
	s := newSweep(WaveSquare, 100, 100, 10*time.Millisecond, testRate)
	pcm := PCM16(s)

	frames := testRate.N(10 * time.Millisecond)
	if len(pcm) != frames*4 {
		t.Fatalf("len = %d, want %d", len(pcm), frames*4)
	}
	// First square sample is full scale on both channels
	if pcm[0] != 0xff || pcm[1] != 0x7f || pcm[2] != 0xff || pcm[3] != 0x7f {
		t.Errorf("first frame = % x, want ff 7f ff 7f", pcm[:4])
	}
}
