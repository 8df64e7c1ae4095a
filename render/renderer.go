package render

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/status"
	"github.com/lixenwraith/neon-runner/vmath"
)

// spinFrames cycle with the idle roll on the start screen
var spinFrames = [4]rune{'◐', '◓', '◑', '◒'}

// Renderer draws a side view of the simulation onto a tcell screen
// It also consumes effect signals for camera shake; Emit and Render must run on the same goroutine
type Renderer struct {
	screen tcell.Screen
	cfg    config.RenderConfig
	snap   engine.Snapshot
	rng    *vmath.FastRand

	width, height int

	shake float64
	debug bool
	muted bool

	statusReg   *status.Registry
	statFrames  *atomic.Int64
	statEffects *atomic.Int64
}

// NewRenderer binds a screen; reg may be nil when the debug overlay is unused
func NewRenderer(screen tcell.Screen, cfg config.RenderConfig, reg *status.Registry) *Renderer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Renderer{
		screen:      screen,
		cfg:         cfg,
		rng:         vmath.NewFastRand(parameter.DefaultSeed),
		statusReg:   reg,
		statFrames:  reg.Ints.Get("render.frames"),
		statEffects: reg.Ints.Get("render.effects"),
	}
}

// Emit reacts to simulation effects with camera shake
func (r *Renderer) Emit(e engine.Effect) {
	r.statEffects.Add(1)
	switch e {
	case engine.EffectCrash:
		r.shake = parameter.ShakeOnCrash
	case engine.EffectJump, engine.EffectDoubleJump:
		r.shake = math.Max(r.shake, parameter.ShakeOnJump)
	case engine.EffectRunStart:
		r.shake = 0
	}
}

// Shake returns the current camera shake amplitude
func (r *Renderer) Shake() float64 { return r.shake }

// ToggleDebug flips the metrics overlay
func (r *Renderer) ToggleDebug() { r.debug = !r.debug }

// SetDebug sets the metrics overlay
func (r *Renderer) SetDebug(on bool) { r.debug = on }

// SetMuted controls the HUD mute marker
func (r *Renderer) SetMuted(muted bool) { r.muted = muted }

// Render snapshots the game and draws one frame
func (r *Renderer) Render(g *engine.Game) {
	g.Snapshot(&r.snap)
	r.Draw(&r.snap)
}

// layout maps world coordinates to screen cells for one frame
type layout struct {
	width, height int
	ground        int
	playerCol     int
	colsPerUnit   float64
	rowsPerUnit   float64
	originZ       float64
	offX, offY    int
}

func (l layout) col(z float64) int {
	return l.playerCol + int(math.Floor((z-l.originZ)*l.colsPerUnit)) + l.offX
}

func (l layout) row(y float64) int {
	return l.ground - 1 - int(math.Floor(y*l.rowsPerUnit)) + l.offY
}

// worldZ is the forward distance shown at column c, ignoring shake
func (l layout) worldZ(c int) float64 {
	return l.originZ + float64(c-l.playerCol)/l.colsPerUnit
}

// Draw renders a snapshot and presents it
func (r *Renderer) Draw(s *engine.Snapshot) {
	r.statFrames.Add(1)
	r.screen.Fill(' ', style(RgbHud))

	r.width, r.height = r.screen.Size()
	l := r.layout(s, r.width, r.height)

	r.drawSkyline(s, l)
	r.drawGround(l)
	r.drawObstacles(s, l)
	r.drawCollectibles(s, l)
	r.drawPlayer(s, l)
	r.drawHud(s, l)

	switch {
	case s.Phase == engine.PhaseStart:
		r.drawStartPanel(s, l)
	case s.Phase == engine.PhaseDead && s.DeathVisible:
		r.drawDeathPanel(s, l)
	case s.Paused:
		r.drawPanel(l, RgbPanelEdge, "PAUSED", "", "P  resume")
	}

	if r.debug {
		r.drawDebug(l)
	}

	r.decayShake()
	r.screen.Show()
}

func (r *Renderer) layout(s *engine.Snapshot, w, h int) layout {
	colsPerUnit := r.cfg.ColumnsPerUnit
	if colsPerUnit <= 0 {
		colsPerUnit = parameter.ColumnsPerUnit
	}
	playerCol := r.cfg.PlayerColumn
	if playerCol <= 0 || playerCol >= w {
		playerCol = min(parameter.PlayerColumn, max(w-1, 0))
	}

	l := layout{
		width:       w,
		height:      h,
		ground:      max(h-parameter.GroundMarginRows, 1),
		playerCol:   playerCol,
		colsPerUnit: colsPerUnit,
		rowsPerUnit: parameter.MinRowsPerUnit,
		originZ:     s.Player.Position.Z,
	}
	if r.shake > parameter.ShakeCutoff {
		l.offX = int(math.Round(r.rng.Sign() * r.rng.Float64() * r.shake))
		l.offY = int(math.Round(r.rng.Sign() * r.rng.Float64() * r.shake * 0.5))
	}
	return l
}

func (r *Renderer) decayShake() {
	r.shake *= parameter.ShakeDecay
	if r.shake < parameter.ShakeCutoff {
		r.shake = 0
	}
}

func (r *Renderer) drawSkyline(s *engine.Snapshot, l layout) {
	for _, p := range s.Props {
		box := p.Box()
		c0, c1 := l.col(box.Min.Z), l.col(box.Max.Z)
		if c1 < 0 || c0 >= l.width {
			continue
		}
		depth := (math.Abs(p.Center.X) - parameter.PropLateralMin) / parameter.PropLateralJitter
		tint := RgbSkyline.Blend(RgbBackground, math.Max(0, math.Min(1, depth))*parameter.SkylineFade)
		body := style(tint)
		lit := tcell.StyleDefault.Foreground(RgbWindow.Blend(tint, 0.4).Color()).Background(RgbBackground.Color())

		rows := min(int(p.Size.Y*parameter.SkylineScale), l.ground-1)
		top := l.ground - rows
		for y := top; y < l.ground; y++ {
			for x := c0; x <= c1; x++ {
				if p.Lit && (x-c0)%2 == 1 && (y-top)%2 == 1 && x < c1 {
					r.set(x, y, parameter.GlyphSkylineLit, lit)
				} else {
					r.set(x, y, parameter.GlyphSkyline, body)
				}
			}
		}
	}
}

func (r *Renderer) drawGround(l layout) {
	line := style(RgbGround)
	marker := style(RgbGridMarker)
	spacing := parameter.GridSpacing
	y := l.ground + l.offY
	for x := 0; x < l.width; x++ {
		// A marker sits where the column crosses a grid boundary
		if math.Floor(l.worldZ(x)/spacing) != math.Floor(l.worldZ(x-1)/spacing) {
			r.set(x+l.offX, y, parameter.GlyphGridMarker, marker)
		} else {
			r.set(x+l.offX, y, parameter.GlyphGround, line)
		}
	}
}

// span returns the inclusive cell range covered by box, clipped at the ground
func (l layout) span(box vmath.Box) (c0, c1, r0, r1 int) {
	const eps = 1e-6
	c0 = l.col(box.Min.Z)
	c1 = max(c0, l.col(box.Max.Z-eps))
	r0 = l.row(box.Max.Y - eps)
	r1 = l.row(math.Max(box.Min.Y, 0))
	r1 = max(r0, r1)
	return
}

func (r *Renderer) drawObstacles(s *engine.Snapshot, l layout) {
	for _, o := range s.Obstacles {
		c0, c1, r0, r1 := l.span(o.Box())
		if c1 < 0 || c0 >= l.width {
			continue
		}
		glyph := parameter.GlyphObstacle
		if o.Variant == engine.VariantFlying {
			glyph = parameter.GlyphFlying
		}
		st := style(obstacleColors[min(int(o.Variant), len(obstacleColors)-1)])
		r.fill(c0, c1, r0, r1, glyph, st)
	}
}

func (r *Renderer) drawCollectibles(s *engine.Snapshot, l layout) {
	st := style(RgbCoin)
	for _, c := range s.Collectibles {
		r.set(l.col(c.Center.Z), l.row(c.Center.Y), parameter.GlyphCoin, st)
	}
}

func (r *Renderer) drawPlayer(s *engine.Snapshot, l layout) {
	p := s.Player
	color := SkinColor(s.Progress.Equipped)
	glyph := parameter.GlyphPlayer

	switch {
	case s.Phase == engine.PhaseDead:
		color = RgbAlert
	case s.Phase == engine.PhaseStart:
		glyph = spinFrames[spinIndex(p.Roll)]
	case p.Spinning:
		glyph = parameter.GlyphPlayerSpin
	}

	// Feet rest on the ground line; a high jump pins to the first row
	y := max(l.row(p.Position.Y-parameter.GroundLevel), 1)
	r.set(l.playerCol+l.offX, y, glyph, style(color))
}

// spinIndex maps a roll angle onto a quarter-turn frame
func spinIndex(roll float64) int {
	q := int(math.Floor(math.Abs(roll) / (math.Pi / 2)))
	return q % len(spinFrames)
}

func (r *Renderer) drawHud(s *engine.Snapshot, l layout) {
	y := l.ground + 1
	if y >= l.height {
		return
	}
	hud := style(RgbHud)
	dim := style(RgbHudDim)

	text := fmt.Sprintf("SCORE %d   COINS %d   BEST %d   SPEED %.2f",
		s.RunState.Score, s.RunState.Currency, s.Progress.BestScore, s.Player.Speed)
	r.text(1, y, text, hud)

	if y+1 >= l.height {
		return
	}
	info := fmt.Sprintf("%s   BANK %d", s.Preset, s.Progress.Currency)
	if s.Progress.Premium {
		info += "   PREMIUM"
	}
	if r.muted {
		info += "   MUTED"
	}
	r.text(1, y+1, info, dim)
}

func (r *Renderer) drawStartPanel(s *engine.Snapshot, l layout) {
	r.drawPanel(l, RgbPanelEdge,
		"N E O N   R U N N E R",
		"",
		"SPACE / ENTER  run",
		"P pause   M mute   Q quit",
		"",
		fmt.Sprintf("BEST %d   BANK %d", s.Progress.BestScore, s.Progress.Currency),
	)
}

func (r *Renderer) drawDeathPanel(s *engine.Snapshot, l layout) {
	best := fmt.Sprintf("BEST %d", s.Last.BestScore)
	edge := RgbAlert
	if s.Last.NewBest {
		best = "NEW BEST"
		edge = RgbNewBest
	}
	r.drawPanel(l, edge,
		"CRASHED",
		"",
		fmt.Sprintf("SCORE %d", s.Last.Score),
		best,
		fmt.Sprintf("+%d COINS", s.Last.Currency),
		"",
		"SPACE retry   B menu",
	)
}

// drawPanel draws a bordered box of centered lines in the middle of the play area
func (r *Renderer) drawPanel(l layout, edge RGB, lines ...string) {
	inner := 0
	for _, line := range lines {
		inner = max(inner, len([]rune(line)))
	}
	inner += 2 * parameter.PanelPaddingX

	pw, ph := inner+2, len(lines)+2
	x0 := (l.width - pw) / 2
	y0 := max((l.ground-ph)/2, 0)

	body := tcell.StyleDefault.Foreground(RgbHud.Color()).Background(RgbPanel.Color())
	border := tcell.StyleDefault.Foreground(edge.Color()).Background(RgbPanel.Color())

	for y := y0; y < y0+ph; y++ {
		for x := x0; x < x0+pw; x++ {
			ch, st := ' ', body
			switch {
			case (y == y0 || y == y0+ph-1) && (x == x0 || x == x0+pw-1):
				ch, st = '+', border
			case y == y0 || y == y0+ph-1:
				ch, st = '─', border
			case x == x0 || x == x0+pw-1:
				ch, st = '│', border
			}
			r.set(x, y, ch, st)
		}
	}

	for i, line := range lines {
		n := len([]rune(line))
		r.text(x0+1+(inner-n)/2, y0+1+i, line, body)
	}
}

func (r *Renderer) drawDebug(l layout) {
	lines := r.statusReg.Lines()
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	x := max(l.width-width-parameter.DebugMarginX, 0)
	st := style(RgbDebug)
	for i, line := range lines {
		if i+1 >= l.ground {
			break
		}
		r.text(x, i+1, line, st)
	}
}

func (r *Renderer) fill(c0, c1, r0, r1 int, ch rune, st tcell.Style) {
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.set(x, y, ch, st)
		}
	}
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.set(x, y, ch, st)
		x++
	}
}

// set writes one cell, clipping anything outside the screen
func (r *Renderer) set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

func style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color()).Background(RgbBackground.Color())
}
