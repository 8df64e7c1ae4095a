package engine

// Snapshot is a render-side copy of the simulation
// Slices are reused across calls so a renderer can snapshot every frame without allocating
type Snapshot struct {
	Phase        Phase
	Run          RunID
	Paused       bool
	DeathVisible bool
	Preset       string

	Player   PlayerState
	RunState RunState
	Progress Progress
	Last     RunResult

	Obstacles    []Entity
	Collectibles []Entity
	Props        []Entity
}

// Snapshot copies the current state into dst
func (g *Game) Snapshot(dst *Snapshot) {
	dst.Phase = g.phase
	dst.Run = g.run
	dst.Paused = g.clock.IsPaused()
	dst.DeathVisible = g.deathVisible
	dst.Preset = g.cfg.Preset

	dst.Player = g.player
	dst.RunState = g.runState
	skins := dst.Progress.Skins[:0]
	dst.Progress = g.progress
	dst.Progress.Skins = append(skins, g.progress.Skins...)
	dst.Last = g.last

	dst.Obstacles = append(dst.Obstacles[:0], g.world.Obstacles...)
	dst.Collectibles = append(dst.Collectibles[:0], g.world.Collectibles...)
	dst.Props = append(dst.Props[:0], g.world.Props...)
}

// NearestObstacleAhead finds the closest obstacle in the snapshot not yet behind z
func (s *Snapshot) NearestObstacleAhead(z float64) (Entity, bool) {
	w := World{Obstacles: s.Obstacles}
	return w.NearestObstacleAhead(z)
}
