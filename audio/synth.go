package audio

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects a beep tone generator
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// NewTone returns a fixed-length tone of the given wave
// Errors when freq is at or above half the sample rate
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		gen beep.Streamer
		err error
	)
	switch wave {
	case WaveSquare:
		gen, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		gen, err = generators.SawtoothTone(rate, freq)
	default:
		gen, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz at %d: %w", freq, rate, err)
	}
	return beep.Take(rate.N(duration), gen), nil
}

// tone is NewTone falling back to silence of the same length, so an effect never loses its timing
func tone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	s, err := NewTone(freq, duration, wave, rate)
	if err != nil {
		log.Printf("audio: %v", err)
		return beep.Silence(rate.N(duration))
	}
	return s
}

// envelope applies a linear attack and a linear release over a fixed length
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s with attack and release; output ends after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remain := e.total - e.position; len(samples) > remain {
		samples = samples[:remain]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.release > 0:
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; 0 or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed prefixes s with silence
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}
