package engine

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/status"
)

// RunState is the bookkeeping for the current run
type RunState struct {
	Score    int // floor of forward distance
	Currency int // earned this run, committed at death
	Ticks    int64
}

// RunResult is recorded when a run ends
type RunResult struct {
	Run       RunID
	Score     int
	Currency  int
	BestScore int
	NewBest   bool
}

// Game is the simulation context: every piece of mutable state lives here and is touched only by the tick goroutine
type Game struct {
	cfg   *config.Config
	clock *PausableClock
	store KeyValueStore
	sink  EffectSink

	physics  *PlayerPhysics
	spawner  *Spawner
	collider *Collider
	sched    *Scheduler

	phase        Phase
	run          RunID
	player       PlayerState
	world        World
	runState     RunState
	progress     Progress
	last         RunResult
	deathVisible bool
	spinTask     TaskID

	// Cached metric pointers
	statusReg       *status.Registry
	statTicks       *atomic.Int64
	statRuns        *atomic.Int64
	statCrashes     *atomic.Int64
	statJumps       *atomic.Int64
	statCollects    *atomic.Int64
	statSpawnObs    *atomic.Int64
	statSpawnCol    *atomic.Int64
	statSpawnProp   *atomic.Int64
	statCulled      *atomic.Int64
	statDropped     *atomic.Int64
	statStoreErrors *atomic.Int64
	statObstacles   *atomic.Int64
	statSpeed       *status.AtomicFloat
	statTopSpeed    *status.AtomicFloat
	statPhase       *status.AtomicString
}

// NewGame builds a game in the START phase
// sink receives effect signals; reg may be nil when nobody reads metrics
func NewGame(cfg *config.Config, clock *PausableClock, store KeyValueStore, sink EffectSink, reg *status.Registry) *Game {
	if sink == nil {
		sink = NopSink
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		cfg:             cfg,
		clock:           clock,
		store:           store,
		sink:            sink,
		spawner:         NewSpawner(cfg.World, cfg.Seed),
		sched:           NewScheduler(),
		statusReg:       reg,
		statTicks:       reg.Ints.Get("engine.ticks"),
		statRuns:        reg.Ints.Get("engine.runs"),
		statCrashes:     reg.Ints.Get("engine.crashes"),
		statJumps:       reg.Ints.Get("player.jumps"),
		statCollects:    reg.Ints.Get("collect.count"),
		statSpawnObs:    reg.Ints.Get("spawn.obstacles"),
		statSpawnCol:    reg.Ints.Get("spawn.collectibles"),
		statSpawnProp:   reg.Ints.Get("spawn.props"),
		statCulled:      reg.Ints.Get("cull.entities"),
		statDropped:     reg.Ints.Get("sched.dropped"),
		statStoreErrors: reg.Ints.Get("store.errors"),
		statObstacles:   reg.Ints.Get("world.obstacles"),
		statSpeed:       reg.Floats.Get("player.speed"),
		statTopSpeed:    reg.Floats.Get("player.top_speed"),
		statPhase:       reg.Strings.Get("engine.phase"),
	}
	g.physics = NewPlayerPhysics(cfg.Physics, EffectFunc(g.onEffect))
	g.collider = NewCollider(cfg.World.CullMargin, cfg.Economy.CoinValue, EffectFunc(g.onEffect))

	g.refreshProgress()
	g.resetWorld()
	g.setPhase(PhaseStart)
	return g
}

// Start begins a new run from START or DEAD; returns false while PLAYING
func (g *Game) Start() bool {
	if g.phase == PhasePlaying {
		return false
	}

	g.sched.CancelRun(g.run)
	g.run++
	g.refreshProgress()
	g.spawner.Reseed(RunSeed(g.cfg.Seed, g.run))
	g.resetWorld()
	g.runState = RunState{}
	g.deathVisible = false
	g.spinTask = 0

	g.statRuns.Add(1)
	g.setPhase(PhasePlaying)
	g.sink.Emit(EffectRunStart)
	log.Printf("game: run %d started (preset %s, best %d)", g.run, g.cfg.Preset, g.progress.BestScore)
	return true
}

// ReturnToMenu leaves the death screen for START; returns false from any other phase
func (g *Game) ReturnToMenu() bool {
	if g.phase != PhaseDead {
		return false
	}
	g.sched.CancelRun(g.run)
	g.run++
	g.resetWorld()
	g.runState = RunState{}
	g.deathVisible = false
	g.setPhase(PhaseStart)
	return true
}

// TogglePause pauses or resumes a run; returns false outside PLAYING
func (g *Game) TogglePause() bool {
	if g.phase != PhasePlaying {
		return false
	}
	if g.clock.IsPaused() {
		g.clock.Resume()
		g.sink.Emit(EffectResume)
	} else {
		g.clock.Pause()
		g.sink.Emit(EffectPause)
	}
	return true
}

// HandleIntent applies one input intent; returns true if it changed anything
func (g *Game) HandleIntent(intent Intent) bool {
	switch intent {
	case IntentJump:
		switch g.phase {
		case PhaseStart:
			return g.Start()
		case PhasePlaying:
			return g.RequestJump() != JumpBuffered
		case PhaseDead:
			// Holding jump through the crash must not restart before the panel shows
			if g.deathVisible {
				return g.Start()
			}
		}
	case IntentStart:
		return g.Start()
	case IntentPause:
		return g.TogglePause()
	case IntentMenu:
		return g.ReturnToMenu()
	}
	return false
}

// RequestJump forwards a jump to the player while an unpaused run is in progress
func (g *Game) RequestJump() JumpResult {
	if g.phase != PhasePlaying || g.clock.IsPaused() {
		return JumpBuffered
	}
	res := g.physics.RequestJump(&g.player, g.clock.Now())
	if res != JumpBuffered {
		g.statJumps.Add(1)
	}
	return res
}

// Tick advances the simulation by one frame; it never blocks
func (g *Game) Tick() {
	now := g.clock.Now()
	_, dropped := g.sched.Poll(now, g.run)
	g.statDropped.Add(int64(dropped))

	switch g.phase {
	case PhaseStart:
		g.player.Roll += parameter.IdleSpinRate
	case PhasePlaying:
		if g.clock.IsPaused() {
			return
		}
		g.step()
	}
}

// step is one PLAYING tick: physics, spawn, collide, react
func (g *Game) step() {
	now := g.clock.Now()

	prev := g.player.Position
	g.physics.Integrate(&g.player, now)

	spawned := g.spawner.Admit(&g.world, &g.player)
	g.statSpawnObs.Add(int64(spawned.Obstacles))
	g.statSpawnCol.Add(int64(spawned.Collectibles))
	g.statSpawnProp.Add(int64(spawned.Props))

	out := g.collider.Resolve(&g.world, g.player.Position.Z, g.physics.Sweep(prev, &g.player)...)
	g.statCulled.Add(int64(out.Culled))
	g.statCollects.Add(int64(out.Collected))

	g.runState.Ticks++
	g.runState.Score = int(math.Floor(g.player.Position.Z))
	g.runState.Currency += out.CurrencyGained

	g.statTicks.Add(1)
	g.statObstacles.Store(int64(len(g.world.Obstacles)))
	g.statSpeed.Set(g.player.Speed)
	g.statTopSpeed.SetMax(g.player.Speed)

	if out.Crashed {
		g.crash()
	}
}

// crash ends the run: PLAYING to DEAD happens here and nowhere else
func (g *Game) crash() {
	now := g.clock.Now()
	g.setPhase(PhaseDead)
	g.statCrashes.Add(1)

	if g.spinTask != 0 {
		g.sched.Cancel(g.spinTask)
		g.spinTask = 0
	}
	g.player.Spinning = false

	g.sink.Emit(EffectCrash)

	prog, improved, err := SaveRunResult(g.store, g.cfg.Store, g.progress, g.runState.Score, g.runState.Currency)
	if err != nil {
		g.statStoreErrors.Add(1)
		log.Printf("game: saving run %d: %v", g.run, err)
	}
	g.progress = prog
	g.last = RunResult{
		Run:       g.run,
		Score:     g.runState.Score,
		Currency:  g.runState.Currency,
		BestScore: prog.BestScore,
		NewBest:   improved,
	}
	log.Printf("game: run %d ended score=%d coins=%d best=%d new_best=%t",
		g.run, g.last.Score, g.last.Currency, g.last.BestScore, g.last.NewBest)

	g.sched.Schedule(g.run, now.Add(g.cfg.Effects.DeathReveal()), func() {
		g.deathVisible = true
	})
}

// onEffect intercepts signals from physics and collision before forwarding them
func (g *Game) onEffect(e Effect) {
	if e == EffectDoubleJump {
		g.startSpin()
	}
	g.sink.Emit(e)
}

// startSpin flips the player for the spin duration; a newer spin replaces the pending end
func (g *Game) startSpin() {
	if g.spinTask != 0 {
		g.sched.Cancel(g.spinTask)
	}
	g.player.Spinning = true
	g.spinTask = g.sched.Schedule(g.run, g.clock.Now().Add(g.cfg.Effects.Spin()), func() {
		g.player.Spinning = false
		g.spinTask = 0
	})
}

func (g *Game) resetWorld() {
	g.physics.Reset(&g.player, g.clock.Now())
	g.world.Clear()
	g.statSpawnProp.Add(int64(g.spawner.SeedProps(&g.world, g.player.Position.Z)))
}

func (g *Game) refreshProgress() {
	g.progress = LoadProgress(g.store, g.cfg.Store)
	if g.progress.Premium {
		g.collider.SetCoinValue(g.cfg.Economy.PremiumCoinValue)
	} else {
		g.collider.SetCoinValue(g.cfg.Economy.CoinValue)
	}
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.statPhase.Store(p.String())
}

// Phase returns the current state machine phase
func (g *Game) Phase() Phase { return g.phase }

// Run returns the current run identity
func (g *Game) Run() RunID { return g.run }

// Player returns a copy of the player state
func (g *Game) Player() PlayerState { return g.player }

// RunState returns a copy of the current run bookkeeping
func (g *Game) RunState() RunState { return g.runState }

// Progress returns the last loaded or saved progress
func (g *Game) Progress() Progress { return g.progress }

// LastResult returns the most recent finished run
func (g *Game) LastResult() RunResult { return g.last }

// DeathVisible reports whether the death panel delay has elapsed
func (g *Game) DeathVisible() bool { return g.deathVisible }

// Paused reports whether the run is paused
func (g *Game) Paused() bool { return g.clock.IsPaused() }

// Config returns the active configuration
func (g *Game) Config() *config.Config { return g.cfg }

// Metrics returns the registry the game writes to
func (g *Game) Metrics() *status.Registry { return g.statusReg }

// PendingTasks returns the number of scheduled cosmetic tasks
func (g *Game) PendingTasks() int { return g.sched.Pending() }
