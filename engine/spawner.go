package engine

import (
	"math"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/vmath"
)

// SpawnStats counts admissions made by one Admit call
type SpawnStats struct {
	Obstacles    int
	Collectibles int
	Props        int
}

// Spawner keeps a forward population of entities ahead of the player
type Spawner struct {
	cfg    config.WorldConfig
	rng    *vmath.FastRand
	nextID uint64
}

// NewSpawner creates a spawner with its own seeded generator
func NewSpawner(cfg config.WorldConfig, seed uint64) *Spawner {
	return &Spawner{
		cfg: cfg,
		rng: vmath.NewFastRand(seed),
	}
}

// Reseed restarts the generator, making the next run reproducible
func (s *Spawner) Reseed(seed uint64) {
	s.rng = vmath.NewFastRand(seed)
}

// RunSeed derives the spawner seed for one run, so every run replays from the base seed and its ID
func RunSeed(base uint64, run RunID) uint64 {
	return base + uint64(run)*parameter.RunSeedStride
}

func (s *Spawner) id() uint64 {
	s.nextID++
	return s.nextID
}

// MinGap returns the minimum forward spacing between obstacles at speed
func (s *Spawner) MinGap(speed float64) float64 {
	return math.Max(s.cfg.GapFloor, speed*s.cfg.GapFactor)
}

// SeedProps fills the skyline around playerZ for a fresh world
func (s *Spawner) SeedProps(w *World, playerZ float64) int {
	n := s.cfg.InitialProps
	if n > s.cfg.PropCap {
		n = s.cfg.PropCap
	}
	for i := 0; i < n; i++ {
		z := playerZ + parameter.InitialPropStart + s.rng.Range(parameter.InitialPropSpan)
		w.Props = append(w.Props, s.newProp(z))
	}
	return n
}

// Admit tops up obstacles, rolls for a collectible and extends the skyline
func (s *Spawner) Admit(w *World, p *PlayerState) SpawnStats {
	var stats SpawnStats

	for len(w.Obstacles) < s.cfg.ObstacleCap {
		w.Obstacles = append(w.Obstacles, s.spawnObstacle(w, p))
		stats.Obstacles++
	}

	if len(w.Collectibles) < s.cfg.CollectibleCap && s.rng.Chance(s.cfg.CollectibleChance) {
		z := p.Position.Z + s.cfg.CollectibleLookahead + s.rng.Range(s.cfg.CollectibleJitter)
		w.Collectibles = append(w.Collectibles, NewCollectible(s.id(), z, s.cfg.CollectibleBaseY, s.cfg.CollectibleBob))
		stats.Collectibles++
	}

	stats.Props = s.admitProps(w, p.Position.Z)
	return stats
}

func (s *Spawner) spawnObstacle(w *World, p *PlayerState) Entity {
	z := p.Position.Z + s.cfg.ObstacleLookahead + s.rng.Range(s.cfg.ObstacleJitter)
	if far, ok := w.FurthestObstacle(); ok {
		z = math.Max(z, far+s.MinGap(p.Speed))
	}
	return NewObstacle(s.id(), s.pickVariant(), z)
}

// pickVariant rolls tall first, then flying among the rest, else short
func (s *Spawner) pickVariant() Variant {
	if s.rng.Chance(s.cfg.TallChance) {
		return VariantTall
	}
	if s.rng.Chance(s.cfg.FlyingChance) {
		return VariantFlying
	}
	return VariantShort
}

// admitProps spawns one prop beyond the furthest once it enters the lookahead, dropping the oldest over cap
func (s *Spawner) admitProps(w *World, playerZ float64) int {
	far, ok := w.FurthestProp()
	if !ok {
		far = playerZ
	}
	if far >= playerZ+s.cfg.PropLookahead {
		return 0
	}

	z := far + s.cfg.PropGap + s.rng.Range(s.cfg.PropGapJitter)
	w.Props = append(w.Props, s.newProp(z))
	for len(w.Props) > s.cfg.PropCap {
		w.Props = removeAt(w.Props, 0)
	}
	return 1
}

func (s *Spawner) newProp(z float64) Entity {
	height := parameter.PropMinHeight + s.rng.Range(parameter.PropHeightJitter)
	width := parameter.PropMinWidth + s.rng.Range(parameter.PropWidthJitter)
	depth := parameter.PropMinWidth + s.rng.Range(parameter.PropWidthJitter)
	x := s.rng.Sign() * (parameter.PropLateralMin + s.rng.Range(parameter.PropLateralJitter))
	return NewProp(s.id(), x, z, width, height, depth, s.rng.Chance(0.2))
}
