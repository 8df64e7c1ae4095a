package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping (glow accumulation)
func (dst RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette
var (
	RgbBackground = RGB{12, 6, 24}     // Night violet
	RgbGround     = RGB{255, 0, 170}   // Magenta floor line
	RgbGridMarker = RGB{0, 255, 255}   // Cyan floor markers
	RgbSkyline    = RGB{40, 20, 80}    // Distant buildings
	RgbWindow     = RGB{255, 220, 120} // Lit windows
	RgbCoin       = RGB{255, 215, 0}
	RgbHud        = RGB{220, 220, 255}
	RgbHudDim     = RGB{120, 110, 160}
	RgbPanel      = RGB{30, 10, 50}
	RgbPanelEdge  = RGB{255, 0, 170}
	RgbAlert      = RGB{255, 60, 90}
	RgbNewBest    = RGB{80, 255, 120}
	RgbDebug      = RGB{160, 160, 160}
)

// obstacleColors indexes by engine.Variant
var obstacleColors = [...]RGB{
	{200, 200, 200}, // none
	{255, 60, 90},   // short
	{255, 0, 170},   // tall
	{255, 140, 0},   // flying
}

// skinColors maps cosmetic skin names to player colors
var skinColors = map[string]RGB{
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"lime":    {120, 255, 0},
	"gold":    {255, 215, 0},
	"white":   {255, 255, 255},
}

// SkinColor resolves a skin name, falling back to cyan for unknown names
func SkinColor(name string) RGB {
	if c, ok := skinColors[name]; ok {
		return c
	}
	return skinColors["cyan"]
}
