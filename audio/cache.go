package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/neon-runner/engine"
)

// soundCache stores pre-rendered effect buffers at one sample rate and master volume
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	master float64
	store  map[engine.Effect]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate, master float64) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		master: master,
		store:  make(map[engine.Effect]*beep.Buffer),
	}
}

// get returns a fresh streamer over the cached buffer, rendering on first use
// Returns nil for silent effects
func (c *soundCache) get(e engine.Effect) beep.Streamer {
	c.mu.RLock()
	buf, ok := c.store[e]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		// Double-check after acquiring write lock
		if buf, ok = c.store[e]; !ok {
			buf = c.render(e)
			c.store[e] = buf
		}
		c.mu.Unlock()
	}

	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

func (c *soundCache) render(e engine.Effect) *beep.Buffer {
	s := SoundFor(e, c.format.SampleRate, c.master)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(c.format)
	buf.Append(s)
	return buf
}

// preload renders every audible effect so the first jump doesn't pay for synthesis
func (c *soundCache) preload() {
	for _, e := range []engine.Effect{engine.EffectJump, engine.EffectDoubleJump, engine.EffectLand, engine.EffectCollect, engine.EffectCrash} {
		c.get(e)
	}
}
