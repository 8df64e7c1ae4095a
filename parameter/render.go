package parameter

// Side view layout
const (
	// PlayerColumn anchors the player horizontally; the world scrolls past it
	PlayerColumn = 10

	// GroundMarginRows leaves room below the ground line for the HUD
	GroundMarginRows = 3

	// MinRowsPerUnit keeps low obstacles at least one row tall
	MinRowsPerUnit = 1.0

	// ColumnsPerUnit maps forward distance to terminal columns
	ColumnsPerUnit = 1.0

	// GridSpacing is the forward distance between floor markers
	GridSpacing = 20.0
)

// Camera shake
const (
	ShakeOnCrash = 1.5
	ShakeOnJump  = 0.2
	ShakeDecay   = 0.9
	ShakeCutoff  = 0.05
)

// Glyphs
const (
	GlyphPlayer     = '█'
	GlyphPlayerSpin = '▓'
	GlyphObstacle   = '▒'
	GlyphFlying     = '▀'
	GlyphCoin       = '◆'
	GlyphGround     = '─'
	GlyphGridMarker = '┼'
	GlyphSkyline    = '░'
	GlyphSkylineLit = '▪'
)

// Skyline
const (
	// SkylineScale compresses prop heights into rows
	SkylineScale = 0.3

	// SkylineFade is the blend toward background for the most distant props
	SkylineFade = 0.6
)

// Overlays
const (
	PanelPaddingX = 3
	DebugMarginX  = 1
)
