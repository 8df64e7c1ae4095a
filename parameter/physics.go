package parameter

import "time"

// Player physics, tuned per frame at ~60 FPS
const (
	// Gravity is scaled by IntegrationStep before being subtracted from vertical velocity each tick
	Gravity         = 0.65
	IntegrationStep = 0.05

	JumpForce        = 0.9
	DoubleJumpFactor = 0.9

	// GroundLevel is the player's resting vertical offset (box center)
	GroundLevel = 0.0
)

// Forward motion
const (
	BaseSpeed    = 0.9
	MaxSpeed     = 3.5
	Acceleration = 0.0003
)

// Input forgiveness windows
const (
	CoyoteTime = 150 * time.Millisecond
	JumpBuffer = 150 * time.Millisecond
)

// Player hitbox
const (
	// PlayerSize is the edge of the player cube
	PlayerSize = 1.0

	// HitboxMargin shrinks the player box on all sides before collision tests
	HitboxMargin = 0.2

	// MaxSweepSteps caps the sub-steps tested along one tick's travel
	MaxSweepSteps = 64
)

// Cosmetic motion
const (
	// SpinDuration is the double-jump flip length
	SpinDuration = 260 * time.Millisecond

	// RollPerSpeed is airborne roll in radians per tick per unit of speed
	RollPerSpeed = 0.05

	// IdleSpinRate is the menu idle rotation in radians per tick
	IdleSpinRate = 0.01
)
