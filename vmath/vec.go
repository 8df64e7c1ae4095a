package vmath

// Vec3 is a float64 world-space vector
// X is lateral offset from the lane, Y is height above ground, Z is forward distance
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Half returns the vector scaled by 0.5, used to derive half-extents from sizes
func (v Vec3) Half() Vec3 {
	return v.Scale(0.5)
}

// Lerp interpolates linearly from v to o; t=0 is v, t=1 is o
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}
