package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/vmath"
)

// PlayerState is the runner's physical state, mutated once per tick
type PlayerState struct {
	Position  vmath.Vec3 // X unused (single lane), Y height, Z forward distance
	VelocityY float64
	Speed     float64

	Grounded            bool
	DoubleJumpAvailable bool

	// LastGrounded is the last time the player stood on the ground; zero after a jump consumes it
	LastGrounded time.Time
	// LastJumpRequest is an unhonored jump request awaiting landing; zero when none
	LastJumpRequest time.Time

	// Cosmetic
	Spinning bool
	Roll     float64
}

// JumpResult tells the caller which branch a jump request took
type JumpResult uint8

const (
	JumpBuffered JumpResult = iota // Neither grounded nor double jump available, request recorded
	JumpGround
	JumpDouble
)

func (r JumpResult) String() string {
	switch r {
	case JumpGround:
		return "ground"
	case JumpDouble:
		return "double"
	}
	return "buffered"
}

// PlayerPhysics integrates PlayerState under one physics tuning
type PlayerPhysics struct {
	cfg  config.PhysicsConfig
	sink EffectSink
}

// NewPlayerPhysics binds a tuning and an effect sink
func NewPlayerPhysics(cfg config.PhysicsConfig, sink EffectSink) *PlayerPhysics {
	if sink == nil {
		sink = NopSink
	}
	return &PlayerPhysics{cfg: cfg, sink: sink}
}

// Reset places the player at the origin, grounded, at base speed
func (pp *PlayerPhysics) Reset(p *PlayerState, now time.Time) {
	*p = PlayerState{
		Position:            vmath.V3(0, pp.cfg.GroundLevel, 0),
		Speed:               pp.cfg.BaseSpeed,
		Grounded:            true,
		DoubleJumpAvailable: true,
		LastGrounded:        now,
	}
}

// RequestJump applies a jump input at now
//
// Grounded (or inside the coyote window) launches at JumpForce and consumes the coyote window.
// Airborne with double jump available launches at JumpForce*DoubleJumpFactor and consumes it.
// Otherwise the request is recorded for the jump buffer and nothing else changes.
func (pp *PlayerPhysics) RequestJump(p *PlayerState, now time.Time) JumpResult {
	if p.Grounded || Within(pp.cfg.CoyoteTime(), p.LastGrounded, now) {
		pp.groundJump(p)
		return JumpGround
	}

	if p.DoubleJumpAvailable {
		p.VelocityY = pp.cfg.JumpForce * pp.cfg.DoubleJumpFactor
		p.DoubleJumpAvailable = false
		pp.sink.Emit(EffectDoubleJump)
		return JumpDouble
	}

	p.LastJumpRequest = now
	return JumpBuffered
}

func (pp *PlayerPhysics) groundJump(p *PlayerState) {
	p.VelocityY = pp.cfg.JumpForce
	p.Grounded = false
	p.DoubleJumpAvailable = true
	p.LastGrounded = time.Time{}
	p.LastJumpRequest = time.Time{}
	pp.sink.Emit(EffectJump)
}

// Integrate advances one tick; returns true when the player landed this tick
func (pp *PlayerPhysics) Integrate(p *PlayerState, now time.Time) (landed bool) {
	ground := pp.cfg.GroundLevel

	if p.Grounded {
		p.LastGrounded = now
	} else {
		p.VelocityY -= pp.cfg.Gravity * pp.cfg.IntegrationStep
		p.Position.Y += p.VelocityY

		if p.Position.Y <= ground && p.VelocityY <= 0 {
			p.Position.Y = ground
			p.VelocityY = 0
			p.Grounded = true
			p.DoubleJumpAvailable = true
			p.LastGrounded = now
			p.Roll = 0
			landed = true
			pp.sink.Emit(EffectLand)

			if Within(pp.cfg.JumpBuffer(), p.LastJumpRequest, now) {
				pp.groundJump(p)
			}
			p.LastJumpRequest = time.Time{}
		} else {
			p.Roll -= parameter.RollPerSpeed * p.Speed
		}
	}

	// Clamp guards against a configured ground above the launch height
	if p.Position.Y < ground {
		p.Position.Y = ground
	}

	p.Speed = math.Min(pp.cfg.MaxSpeed, p.Speed+pp.cfg.Acceleration)
	p.Position.Z += p.Speed
	return landed
}

// Box returns the player's collision box at its current position, shrunk by the hitbox margin
func (pp *PlayerPhysics) Box(p *PlayerState) vmath.Box {
	return pp.boxAt(p.Position)
}

func (pp *PlayerPhysics) boxAt(pos vmath.Vec3) vmath.Box {
	size := pp.cfg.PlayerSize
	return vmath.BoxAt(pos, vmath.V3(size, size, size)).Shrink(pp.cfg.HitboxMargin)
}

// Sweep returns the shrunk boxes along the straight path from prev to the current position
// Sub-steps are no longer than the shrunk box depth, so consecutive boxes touch along Z
// The last box is the current Box; prev itself is excluded, it was tested on the previous tick
func (pp *PlayerPhysics) Sweep(prev vmath.Vec3, p *PlayerState) []vmath.Box {
	cur := p.Position
	depth := pp.boxAt(cur).Size().Z
	travel := math.Abs(cur.Z - prev.Z)

	steps := 1
	if depth > 0 && travel > depth {
		steps = int(math.Ceil(travel / depth))
	}
	if steps > parameter.MaxSweepSteps {
		steps = parameter.MaxSweepSteps
	}

	boxes := make([]vmath.Box, steps)
	for i := 1; i < steps; i++ {
		boxes[i-1] = pp.boxAt(prev.Lerp(cur, float64(i)/float64(steps)))
	}
	boxes[steps-1] = pp.boxAt(cur)
	return boxes
}
