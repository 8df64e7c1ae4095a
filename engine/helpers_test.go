package engine

import (
	"time"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/parameter"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// recordSink collects emitted effects
type recordSink struct {
	got []Effect
}

func (r *recordSink) Emit(e Effect) { r.got = append(r.got, e) }

func (r *recordSink) count(e Effect) int {
	n := 0
	for _, g := range r.got {
		if g == e {
			n++
		}
	}
	return n
}

// mapStore is an in-memory KeyValueStore with optional write failure
type mapStore struct {
	data    map[string]string
	failSet error
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (m *mapStore) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mapStore) Set(key, value string) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	return nil
}

type testGame struct {
	*Game
	time  *SteppedTimeProvider
	sink  *recordSink
	store *mapStore
}

func newTestGame() *testGame {
	cfg := config.Default()
	tp := NewSteppedTimeProvider(testEpoch, parameter.FrameUpdateInterval)
	sink := &recordSink{}
	kv := newMapStore()
	g := NewGame(cfg, NewPausableClock(tp), kv, sink, nil)
	return &testGame{Game: g, time: tp, sink: sink, store: kv}
}

// tick steps the clock one frame and ticks the game
func (tg *testGame) tick() {
	tg.time.Step()
	tg.Tick()
}

// obstacleAtPlayer places an obstacle the player reaches on the next tick
func (tg *testGame) obstacleAtPlayer() {
	z := tg.player.Position.Z + tg.player.Speed
	tg.world.Obstacles = append(tg.world.Obstacles, NewObstacle(9000+uint64(len(tg.world.Obstacles)), VariantShort, z))
}
