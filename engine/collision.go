package engine

import (
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/vmath"
)

// Outcome is the result of one collision and cull pass
type Outcome struct {
	Crashed        bool
	Collected      int
	CurrencyGained int
	Culled         int
}

// Collider runs the per-tick collision and cull pass
type Collider struct {
	cullMargin float64
	coinValue  int
	sink       EffectSink
}

// NewCollider binds the trailing cull margin and the per-collect currency amount
func NewCollider(cullMargin float64, coinValue int, sink EffectSink) *Collider {
	if sink == nil {
		sink = NopSink
	}
	return &Collider{cullMargin: cullMargin, coinValue: coinValue, sink: sink}
}

// SetCoinValue changes the amount credited per collect, used when the premium tier changes
func (c *Collider) SetCoinValue(v int) {
	c.coinValue = v
}

// Resolve culls stale entities and tests the rest against the player's path this tick
// path holds the sub-step boxes from PlayerPhysics.Sweep; any of them touching an entity counts
// Collections are scanned in reverse so in-place removal never skips an entry
func (c *Collider) Resolve(w *World, playerZ float64, path ...vmath.Box) Outcome {
	var out Outcome
	threshold := playerZ - c.cullMargin

	for i := len(w.Obstacles) - 1; i >= 0; i-- {
		o := w.Obstacles[i]
		if o.TrailingEdge() < threshold {
			w.Obstacles = removeAt(w.Obstacles, i)
			out.Culled++
			continue
		}
		if !out.Crashed && anyIntersects(path, o.Box()) {
			out.Crashed = true
		}
	}

	for i := len(w.Collectibles) - 1; i >= 0; i-- {
		col := w.Collectibles[i]
		if col.TrailingEdge() < threshold {
			w.Collectibles = removeAt(w.Collectibles, i)
			out.Culled++
			continue
		}
		if anyIntersects(path, col.Box()) {
			w.Collectibles = removeAt(w.Collectibles, i)
			out.Collected++
			out.CurrencyGained += c.coinValue
			c.sink.Emit(EffectCollect)
		}
	}

	propThreshold := playerZ - parameter.PropCullMargin
	for i := len(w.Props) - 1; i >= 0; i-- {
		if w.Props[i].TrailingEdge() < propThreshold {
			w.Props = removeAt(w.Props, i)
			out.Culled++
		}
	}

	return out
}

func anyIntersects(path []vmath.Box, b vmath.Box) bool {
	for _, p := range path {
		if p.Intersects(b) {
			return true
		}
	}
	return false
}
