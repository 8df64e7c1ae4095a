package parameter

import "time"

// Game loop timing
const (
	// FrameUpdateInterval drives both simulation tick and render (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputQueueSize buffers terminal events between poller and main loop
	InputQueueSize = 256
)

// Headless mode
const (
	DefaultHeadlessTicks = 60 * 60 * 5
	DefaultSeed          = 0x6e656f6e

	// RunSeedStride spreads consecutive run IDs across the generator's seed space
	RunSeedStride = 0x9e3779b97f4a7c15
)

// Persistence
const (
	ProgressFileName = "progress.toml"
	AppDirName       = "neon-runner"

	// Default store keys, overridable through configuration
	KeyBestScore = "neon_highscore"
	KeyCurrency  = "neon_coins"
	KeyPremium   = "neon_premium"
	KeySkins     = "neon_skins"
	KeyEquipped  = "neon_equipped"

	DefaultSkin = "cyan"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "neon-runner.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Autopilot
const (
	// AutopilotLeadTicks scales the jump trigger distance with speed
	AutopilotLeadTicks  = 10.0
	AutopilotLeadMargin = 1.5

	// AutopilotClearance is the height kept above an obstacle top before a double jump is spent
	AutopilotClearance = 1.0

	// AutopilotCancelCheck is the tick interval between context checks
	AutopilotCancelCheck = 1024
)
