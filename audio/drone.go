package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/status"
	"github.com/lixenwraith/neon-runner/vmath"
)

// Drone is an endless saw tone through a one-pole low-pass
// The tick goroutine moves the target cutoff; the speaker goroutine glides toward it
type Drone struct {
	rate beep.SampleRate
	saw  beep.Streamer

	target status.AtomicFloat // Written by SetActive, read per buffer
	active status.AtomicFloat // 1 while playing, 0 idle

	cutoff float64
	prev   float64

	retarget int // Samples until next jitter while active
	jitter   float64
	rng      *vmath.FastRand
}

// NewDrone creates an idle drone
func NewDrone(rate beep.SampleRate) *Drone {
	saw, err := generators.SawtoothTone(rate, parameter.DroneFreq)
	if err != nil {
		saw = beep.Silence(-1)
	}
	d := &Drone{
		rate:   rate,
		saw:    saw,
		cutoff: parameter.DroneCutoffIdle,
		rng:    vmath.NewFastRand(uint64(rate)),
	}
	d.target.Set(parameter.DroneCutoffIdle)
	return d
}

// SetActive raises the filter for a run or lowers it for menus and death
func (d *Drone) SetActive(active bool) {
	if active {
		d.active.Set(1)
		d.target.Set(parameter.DroneCutoffActive)
		return
	}
	d.active.Set(0)
	d.target.Set(parameter.DroneCutoffIdle)
}

// Cutoff returns the current filter cutoff in Hz
func (d *Drone) Cutoff() float64 {
	return d.cutoff
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	target := d.target.Get()
	active := d.active.Get() > 0
	glide := 1 - math.Exp(-1/(parameter.DroneGlide.Seconds()*float64(d.rate)))
	interval := d.rate.N(parameter.DroneRetargetInterval)

	n, _ = d.saw.Stream(samples)
	for i := 0; i < n; i++ {
		if active {
			d.retarget--
			if d.retarget <= 0 {
				d.jitter = d.rng.Range(parameter.DroneCutoffJitter)
				d.retarget = interval
			}
		} else {
			d.jitter = 0
		}

		d.cutoff += (target + d.jitter - d.cutoff) * glide

		// One-pole low-pass: y += a * (x - y)
		a := 1 - math.Exp(-2*math.Pi*d.cutoff/float64(d.rate))
		d.prev += a * (samples[i][0] - d.prev)

		samples[i][0] = d.prev
		samples[i][1] = d.prev
	}
	return n, true
}

func (d *Drone) Err() error { return nil }
