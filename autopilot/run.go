package autopilot

import (
	"context"
	"log"

	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/parameter"
)

// Options bound a headless session
type Options struct {
	Ticks int64

	// Observe, when set, sees the snapshot after every tick
	Observe func(s *engine.Snapshot)
}

// Result summarises a headless session
type Result struct {
	Ticks     int64
	Runs      int
	Crashes   int
	LastScore int
	BestScore int
	Coins     int
	TopSpeed  float64
	Intents   int
}

// Run drives g with the pilot for opts.Ticks frames, stepping clock one frame before each tick
// It returns early with the context error when ctx is cancelled
func Run(ctx context.Context, g *engine.Game, clock *engine.SteppedTimeProvider, p *Pilot, opts Options) (Result, error) {
	var (
		res  Result
		snap engine.Snapshot
	)
	statIntents := g.Metrics().Ints.Get("autopilot.intents")

	for res.Ticks < opts.Ticks {
		if res.Ticks%parameter.AutopilotCancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		clock.Step()

		g.Snapshot(&snap)
		before := snap.Phase
		if intent := p.Decide(&snap); intent != engine.IntentNone {
			res.Intents++
			statIntents.Add(1)
			if g.HandleIntent(intent) && before != engine.PhasePlaying && g.Phase() == engine.PhasePlaying {
				res.Runs++
			}
		}

		playing := g.Phase() == engine.PhasePlaying
		g.Tick()
		res.Ticks++

		g.Snapshot(&snap)
		if playing && snap.Phase == engine.PhaseDead {
			res.Crashes++
			res.LastScore = snap.Last.Score
			res.Coins += snap.Last.Currency
		}
		if snap.Phase == engine.PhasePlaying && snap.Player.Speed > res.TopSpeed {
			res.TopSpeed = snap.Player.Speed
		}
		res.BestScore = snap.Progress.BestScore

		if opts.Observe != nil {
			opts.Observe(&snap)
		}
	}

	// A run still in progress counts toward the summary without being saved
	if g.Phase() == engine.PhasePlaying {
		rs := g.RunState()
		res.LastScore = rs.Score
		res.BestScore = max(res.BestScore, rs.Score)
	}

	log.Printf("autopilot: %d ticks, %d runs, %d crashes, best %d, top speed %.2f",
		res.Ticks, res.Runs, res.Crashes, res.BestScore, res.TopSpeed)
	return res, nil
}
