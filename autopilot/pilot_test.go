package autopilot

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/store"
	"github.com/lixenwraith/neon-runner/vmath"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newHeadless(t *testing.T, preset string, seed uint64) (*engine.Game, *engine.SteppedTimeProvider, *Pilot) {
	t.Helper()
	cfg, err := config.Preset(preset)
	if err != nil {
		t.Fatalf("Preset(%q): %v", preset, err)
	}
	cfg.Seed = seed
	tp := engine.NewSteppedTimeProvider(testEpoch, cfg.Render.FrameInterval())
	g := engine.NewGame(cfg, engine.NewPausableClock(tp), store.NewMemoryStore(), nil, nil)
	return g, tp, New(cfg.Physics.PlayerSize, cfg.Physics.HitboxMargin)
}

func snapshotWith(mutate func(s *engine.Snapshot)) *engine.Snapshot {
	s := &engine.Snapshot{
		Phase: engine.PhasePlaying,
		Player: engine.PlayerState{
			Position:            vmath.V3(0, 0, 100),
			Speed:               1,
			Grounded:            true,
			DoubleJumpAvailable: true,
		},
	}
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestDecide(t *testing.T) {
	near := func(v engine.Variant) []engine.Entity {
		return []engine.Entity{engine.NewObstacle(1, v, 105)}
	}
	airborne := func(y, vy float64, double bool) func(s *engine.Snapshot) {
		return func(s *engine.Snapshot) {
			s.Obstacles = near(engine.VariantTall)
			s.Player.Grounded = false
			s.Player.Position.Y = y
			s.Player.VelocityY = vy
			s.Player.DoubleJumpAvailable = double
		}
	}

	tests := []struct {
		name    string
		restart bool
		mutate  func(s *engine.Snapshot)
		want    engine.Intent
	}{
		{"start screen", true, func(s *engine.Snapshot) { s.Phase = engine.PhaseStart }, engine.IntentStart},
		{"dead before panel", true, func(s *engine.Snapshot) { s.Phase = engine.PhaseDead }, engine.IntentNone},
		{"dead with panel", true, func(s *engine.Snapshot) { s.Phase = engine.PhaseDead; s.DeathVisible = true }, engine.IntentJump},
		{"dead without restart", false, func(s *engine.Snapshot) { s.Phase = engine.PhaseDead; s.DeathVisible = true }, engine.IntentNone},
		{"paused", true, func(s *engine.Snapshot) { s.Paused = true; s.Obstacles = near(engine.VariantShort) }, engine.IntentNone},
		{"empty road", true, nil, engine.IntentNone},
		{"far obstacle", true, func(s *engine.Snapshot) {
			s.Obstacles = []engine.Entity{engine.NewObstacle(1, engine.VariantShort, 150)}
		}, engine.IntentNone},
		{"near short", true, func(s *engine.Snapshot) { s.Obstacles = near(engine.VariantShort) }, engine.IntentJump},
		{"near tall", true, func(s *engine.Snapshot) { s.Obstacles = near(engine.VariantTall) }, engine.IntentJump},
		{"near flying", true, func(s *engine.Snapshot) { s.Obstacles = near(engine.VariantFlying) }, engine.IntentNone},
		{"obstacle behind", true, func(s *engine.Snapshot) {
			s.Obstacles = []engine.Entity{engine.NewObstacle(1, engine.VariantShort, 90)}
		}, engine.IntentNone},
		{"rising", true, airborne(1, 0.5, true), engine.IntentNone},
		{"falling low", true, airborne(2, -0.2, true), engine.IntentJump},
		{"falling low, double spent", true, airborne(2, -0.2, false), engine.IntentNone},
		{"falling high", true, airborne(10, -0.2, true), engine.IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(parameter.PlayerSize, parameter.HitboxMargin)
			p.Restart = tt.restart
			if got := p.Decide(snapshotWith(tt.mutate)); got != tt.want {
				t.Errorf("Expected intent %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRunClearsFirstObstacles(t *testing.T) {
	g, tp, p := newHeadless(t, config.PresetNeon, parameter.DefaultSeed)
	p.Restart = false

	res, err := Run(context.Background(), g, tp, p, Options{Ticks: 600})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Runs != 1 {
		t.Errorf("Expected 1 run, got %d", res.Runs)
	}
	if res.BestScore <= int(parameter.ObstacleLookahead) {
		t.Errorf("Expected to pass the first obstacle at %v, best %d", parameter.ObstacleLookahead, res.BestScore)
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() Result {
		g, tp, p := newHeadless(t, config.PresetGrid, 42)
		res, err := Run(context.Background(), g, tp, p, Options{Ticks: 5000})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Expected identical results for one seed, got %+v and %+v", a, b)
	}
}

func TestRunCancelled(t *testing.T) {
	g, tp, p := newHeadless(t, config.PresetNeon, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, g, tp, p, Options{Ticks: 100})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if res.Ticks != 0 {
		t.Errorf("Expected no ticks after cancel, got %d", res.Ticks)
	}
}

// TestLongRunInvariants checks every preset's world over many runs and restarts
func TestLongRunInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("long run")
	}

	for _, preset := range config.PresetNames() {
		t.Run(preset, func(t *testing.T) {
			g, tp, p := newHeadless(t, preset, 7)
			cfg := g.Config()
			bestSeen := 0

			observe := func(s *engine.Snapshot) {
				if len(s.Obstacles) > cfg.World.ObstacleCap {
					t.Fatalf("Obstacle cap exceeded: %d", len(s.Obstacles))
				}
				if len(s.Collectibles) > cfg.World.CollectibleCap {
					t.Fatalf("Collectible cap exceeded: %d", len(s.Collectibles))
				}
				if len(s.Props) > cfg.World.PropCap {
					t.Fatalf("Prop cap exceeded: %d", len(s.Props))
				}
				if s.Player.Position.Y < cfg.Physics.GroundLevel {
					t.Fatalf("Player below ground: %v", s.Player.Position.Y)
				}
				if s.Player.Speed > cfg.Physics.MaxSpeed {
					t.Fatalf("Speed above max: %v", s.Player.Speed)
				}
				if s.Phase == engine.PhasePlaying && s.RunState.Score != int(math.Floor(s.Player.Position.Z)) {
					t.Fatalf("Score %d does not track distance %v", s.RunState.Score, s.Player.Position.Z)
				}
				for i := 1; i < len(s.Obstacles); i++ {
					gap := s.Obstacles[i].Center.Z - s.Obstacles[i-1].Center.Z
					if gap < cfg.World.GapFloor-1e-9 {
						t.Fatalf("Obstacle gap %v below floor %v", gap, cfg.World.GapFloor)
					}
				}
				if s.Progress.BestScore < bestSeen {
					t.Fatalf("Best score went down: %d after %d", s.Progress.BestScore, bestSeen)
				}
				bestSeen = s.Progress.BestScore
			}

			res, err := Run(context.Background(), g, tp, p, Options{Ticks: 20000, Observe: observe})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Ticks != 20000 {
				t.Errorf("Expected 20000 ticks, got %d", res.Ticks)
			}
			if res.Runs < 1 {
				t.Errorf("Expected at least one run, got %d", res.Runs)
			}
			if res.Crashes > res.Runs {
				t.Errorf("Expected crashes %d <= runs %d", res.Crashes, res.Runs)
			}
			if res.TopSpeed > cfg.Physics.MaxSpeed {
				t.Errorf("Top speed %v above max %v", res.TopSpeed, cfg.Physics.MaxSpeed)
			}
		})
	}
}
