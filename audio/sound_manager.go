package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/status"
)

// ErrNotInitialized is returned when playback is requested before Initialize
var ErrNotInitialized = errors.New("audio not initialized")

// SoundManager is the audio effect sink
// Every method is safe without a device; sounds are dropped until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cache       *soundCache
	drone       *Drone
	droneCtrl   *beep.Ctrl
	initialized bool
	opened      bool

	muted atomic.Bool

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
	statMuted   *atomic.Bool
}

// NewSoundManager creates an uninitialized manager; reg may be nil
func NewSoundManager(cfg config.AudioConfig, reg *status.Registry) *SoundManager {
	if reg == nil {
		reg = status.NewRegistry()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(parameter.AudioSampleRate)
	}
	return &SoundManager{
		cfg:         cfg,
		rate:        rate,
		mixer:       &beep.Mixer{},
		cache:       newSoundCache(rate, cfg.MasterVolume),
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
		statMuted:   reg.Bools.Get("audio.muted"),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return fmt.Errorf("audio disabled by config: %w", ErrNotInitialized)
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferLength)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	if sm.cfg.Music {
		sm.drone = NewDrone(sm.rate)
		sm.droneCtrl = &beep.Ctrl{Streamer: newVolume(sm.drone, parameter.DroneVolume*sm.cfg.MasterVolume)}
		sm.mixer.Add(sm.droneCtrl)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.opened = true
	log.Printf("audio: initialized at %d Hz", sm.rate)
	return nil
}

// Cleanup stops all sounds; the speaker stays open for a later Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.drone = nil
	sm.droneCtrl = nil
	sm.initialized = false
}

// Close stops all sounds and releases the device
func (sm *SoundManager) Close() {
	sm.Cleanup()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.opened {
		speaker.Close()
		sm.opened = false
	}
}

// Emit plays the sound for e and steers the drone; it never blocks on the device
func (sm *SoundManager) Emit(e engine.Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.steerDrone(e)

	if !sm.initialized || sm.muted.Load() {
		sm.statDropped.Add(1)
		return
	}
	s := sm.cache.get(e)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.statPlayed.Add(1)
}

// steerDrone follows the run: bright while playing, dull otherwise, silent while paused
func (sm *SoundManager) steerDrone(e engine.Effect) {
	if sm.drone == nil {
		return
	}
	switch e {
	case engine.EffectRunStart, engine.EffectResume:
		sm.drone.SetActive(true)
		sm.setDronePaused(sm.muted.Load())
	case engine.EffectCrash:
		sm.drone.SetActive(false)
	case engine.EffectPause:
		sm.setDronePaused(true)
	}
}

func (sm *SoundManager) setDronePaused(paused bool) {
	if sm.droneCtrl == nil {
		return
	}
	speaker.Lock()
	sm.droneCtrl.Paused = paused
	speaker.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// SetMuted mutes effects and the drone
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.statMuted.Store(muted)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		sm.setDronePaused(muted)
	}
}

// IsMuted reports mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether a device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
