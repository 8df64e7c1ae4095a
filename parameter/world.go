package parameter

import "time"

// Obstacle admission
const (
	ObstacleCap       = 6
	ObstacleLookahead = 60.0
	ObstacleJitter    = 40.0

	// Variant weighting: tall first, then flying among the remaining, else short
	TallChance   = 0.3
	FlyingChance = 0.3

	// GapFloor is the smallest forward spacing between two obstacles
	// GapFactor scales the spacing with current speed; playtest values, not derived
	GapFloor  = 12.0
	GapFactor = 8.0
)

// Collectible admission
const (
	CollectibleCap       = 3
	CollectibleLookahead = 60.0
	CollectibleJitter    = 20.0
	CollectibleChance    = 0.05
	CollectibleBaseY     = 1.0
	CollectibleBob       = 0.5
	CollectibleSize      = 0.8
)

// Decorative props (skyline)
const (
	PropCap           = 50
	InitialProps      = 40
	InitialPropStart  = -50.0
	InitialPropSpan   = 200.0
	PropLookahead     = 200.0
	PropGap           = 20.0
	PropGapJitter     = 20.0
	PropLateralMin    = 15.0
	PropLateralJitter = 40.0
	PropMinHeight     = 10.0
	PropHeightJitter  = 40.0
	PropMinWidth      = 5.0
	PropWidthJitter   = 10.0

	// PropBaseY offsets the skyline below ground so it reads as distant
	PropBaseY = -5.0
)

// Culling
const (
	// CullMargin is the trailing distance behind the player past which entities are removed
	CullMargin = 10.0

	// PropCullMargin keeps the skyline behind the player visible longer than gameplay entities
	PropCullMargin = 60.0
)

// Economy
const (
	CoinValue        = 1
	PremiumCoinValue = 10
)

// Deferred effects
const (
	// DeathRevealDelay holds the death panel back so the crash reads first
	DeathRevealDelay = 600 * time.Millisecond
)
