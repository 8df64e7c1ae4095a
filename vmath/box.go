package vmath

// Box is an axis-aligned bounding box
// Min is inclusive lower corner, Max upper corner; a valid box has Min <= Max on every axis
type Box struct {
	Min, Max Vec3
}

// BoxAt builds a box from center and full size
func BoxAt(center, size Vec3) Box {
	h := size.Half()
	return Box{Min: center.Sub(h), Max: center.Add(h)}
}

// Center returns the midpoint of the box
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Half()
}

// Size returns the full extents of the box
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Shrink moves every face inward by margin
// An axis narrower than 2*margin collapses to its midpoint instead of inverting
func (b Box) Shrink(margin float64) Box {
	out := Box{
		Min: Vec3{b.Min.X + margin, b.Min.Y + margin, b.Min.Z + margin},
		Max: Vec3{b.Max.X - margin, b.Max.Y - margin, b.Max.Z - margin},
	}
	c := b.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	if out.Min.Z > out.Max.Z {
		out.Min.Z, out.Max.Z = c.Z, c.Z
	}
	return out
}

// Intersects reports strict overlap on all three axes
// Boxes sharing only a face, edge or corner do not intersect
func (b Box) Intersects(o Box) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}
