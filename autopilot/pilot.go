// Package autopilot plays the game without a terminal, for headless runs and long-run tests
package autopilot

import (
	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/parameter"
)

// Pilot picks one intent per tick from a snapshot
// It keeps no state between ticks, so the same snapshot always yields the same intent
type Pilot struct {
	LeadTicks  float64 // Trigger distance per unit of speed
	LeadMargin float64 // Trigger distance added regardless of speed
	Clearance  float64 // Height above an obstacle top that makes a double jump unnecessary

	// HalfSize is half the player's hitbox extent along Z and Y
	HalfSize float64

	// Restart retries from the death panel; otherwise the pilot idles once dead
	Restart bool
}

// New returns a pilot sized for the player hitbox
func New(playerSize, hitboxMargin float64) *Pilot {
	return &Pilot{
		LeadTicks:  parameter.AutopilotLeadTicks,
		LeadMargin: parameter.AutopilotLeadMargin,
		Clearance:  parameter.AutopilotClearance,
		HalfSize:   playerSize/2 - hitboxMargin,
		Restart:    true,
	}
}

// Decide returns the intent for the current frame
func (p *Pilot) Decide(s *engine.Snapshot) engine.Intent {
	switch s.Phase {
	case engine.PhaseStart:
		return engine.IntentStart
	case engine.PhaseDead:
		if p.Restart && s.DeathVisible {
			return engine.IntentJump
		}
		return engine.IntentNone
	}
	if s.Paused {
		return engine.IntentNone
	}

	pl := s.Player
	back := pl.Position.Z - p.HalfSize
	o, ok := s.NearestObstacleAhead(back)
	if !ok {
		return engine.IntentNone
	}

	// Flying obstacles pass overhead while the player stays low
	if o.Variant == engine.VariantFlying {
		return engine.IntentNone
	}

	box := o.Box()
	dist := box.Min.Z - (pl.Position.Z + p.HalfSize)
	if dist > pl.Speed*p.LeadTicks+p.LeadMargin {
		return engine.IntentNone
	}

	if pl.Grounded {
		return engine.IntentJump
	}

	// Falling toward an obstacle too low to clear it
	feet := pl.Position.Y - p.HalfSize
	if pl.VelocityY <= 0 && pl.DoubleJumpAvailable && feet < box.Max.Y+p.Clearance {
		return engine.IntentJump
	}
	return engine.IntentNone
}
