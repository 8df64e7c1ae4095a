package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	MasterVolume      = 0.3
)

// Jump: two square blips, second delayed
const (
	JumpNote1Freq     = 400.0
	JumpNote1Duration = 100 * time.Millisecond
	JumpNote2Freq     = 600.0
	JumpNote2Duration = 200 * time.Millisecond
	JumpNote2Delay    = 50 * time.Millisecond
	JumpVolume        = 0.5
)

// Double jump: same shape pitched up a fifth
const (
	DoubleJumpNote1Freq = 600.0
	DoubleJumpNote2Freq = 900.0
)

// Collect: two sine chimes
const (
	CollectNote1Freq     = 1200.0
	CollectNote1Duration = 100 * time.Millisecond
	CollectNote2Freq     = 1800.0
	CollectNote2Duration = 300 * time.Millisecond
	CollectNote2Delay    = 80 * time.Millisecond
	CollectVolume        = 0.3
)

// Crash: saw and square rumble layered
const (
	CrashSawFreq        = 100.0
	CrashSawDuration    = 500 * time.Millisecond
	CrashSquareFreq     = 50.0
	CrashSquareDuration = 800 * time.Millisecond
	CrashVolume         = 0.8
)

// Land: short low thump
const (
	LandFreq     = 90.0
	LandDuration = 60 * time.Millisecond
	LandVolume   = 0.25
)

// Envelope shaping shared by effects
const (
	EffectAttack = 5 * time.Millisecond
)

// Ambient drone
const (
	DroneFreq         = 50.0
	DroneVolume       = 0.05
	DroneCutoffIdle   = 200.0
	DroneCutoffActive = 800.0
	DroneCutoffJitter = 500.0

	// DroneRetargetInterval is how often the active cutoff picks a new target
	DroneRetargetInterval = 2 * time.Second

	// DroneGlide is the time constant for cutoff glides
	DroneGlide = time.Second
)
