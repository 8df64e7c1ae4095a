package engine

// World holds the active entity collections, owned by the tick
type World struct {
	Obstacles    []Entity
	Collectibles []Entity
	Props        []Entity
}

// Clear empties every collection, keeping capacity
func (w *World) Clear() {
	w.Obstacles = w.Obstacles[:0]
	w.Collectibles = w.Collectibles[:0]
	w.Props = w.Props[:0]
}

// FurthestObstacle returns the largest obstacle forward coordinate
func (w *World) FurthestObstacle() (float64, bool) {
	return furthest(w.Obstacles)
}

// FurthestProp returns the largest prop forward coordinate
func (w *World) FurthestProp() (float64, bool) {
	return furthest(w.Props)
}

// NearestObstacleAhead returns the closest obstacle not yet entirely behind z
func (w *World) NearestObstacleAhead(z float64) (Entity, bool) {
	var best Entity
	found := false
	for _, o := range w.Obstacles {
		if o.Center.Z+o.Size.Z/2 < z {
			continue
		}
		if !found || o.Center.Z < best.Center.Z {
			best = o
			found = true
		}
	}
	return best, found
}

func furthest(list []Entity) (float64, bool) {
	if len(list) == 0 {
		return 0, false
	}
	far := list[0].Center.Z
	for _, e := range list[1:] {
		if e.Center.Z > far {
			far = e.Center.Z
		}
	}
	return far, true
}

// removeAt deletes index i preserving order
func removeAt(list []Entity, i int) []Entity {
	copy(list[i:], list[i+1:])
	return list[:len(list)-1]
}
