package engine

import (
	"math"

	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/vmath"
)

// Kind tags the entity variant
type Kind uint8

const (
	KindObstacle Kind = iota
	KindCollectible
	KindProp
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindProp:
		return "prop"
	}
	return "unknown"
}

// Variant selects obstacle geometry; non-obstacles use VariantNone
type Variant uint8

const (
	VariantNone Variant = iota
	VariantShort
	VariantTall
	VariantFlying
	variantCount
)

func (v Variant) String() string {
	switch v {
	case VariantShort:
		return "short"
	case VariantTall:
		return "tall"
	case VariantFlying:
		return "flying"
	}
	return "none"
}

// Shape is the fixed footprint of an obstacle variant
type Shape struct {
	Size    vmath.Vec3
	CenterY float64
}

// obstacleShapes is resolved once at spawn; update code never re-derives geometry
var obstacleShapes = [variantCount]Shape{
	VariantShort:  {Size: vmath.V3(1, 1.2, 1), CenterY: 0.6},
	VariantTall:   {Size: vmath.V3(1, 3, 1), CenterY: 1.5},
	VariantFlying: {Size: vmath.V3(1, 1.2, 1), CenterY: 2.5},
}

// ShapeOf returns the footprint for an obstacle variant
func ShapeOf(v Variant) Shape {
	if v >= variantCount {
		return Shape{}
	}
	return obstacleShapes[v]
}

// Entity is a single spawned object
type Entity struct {
	ID      uint64
	Kind    Kind
	Variant Variant
	Center  vmath.Vec3
	Size    vmath.Vec3

	// Lit marks skyline props drawn with lit windows
	Lit bool
}

// NewObstacle places an obstacle of variant v at forward distance z
func NewObstacle(id uint64, v Variant, z float64) Entity {
	shape := ShapeOf(v)
	return Entity{
		ID:      id,
		Kind:    KindObstacle,
		Variant: v,
		Center:  vmath.V3(0, shape.CenterY, z),
		Size:    shape.Size,
	}
}

// NewCollectible places a collectible at z; height bobs with the spawn coordinate, not time
func NewCollectible(id uint64, z, baseY, bob float64) Entity {
	return Entity{
		ID:     id,
		Kind:   KindCollectible,
		Center: vmath.V3(0, baseY+math.Sin(z)*bob, z),
		Size:   vmath.V3(parameter.CollectibleSize, parameter.CollectibleSize, parameter.CollectibleSize),
	}
}

// NewProp places a skyline block off the lane
func NewProp(id uint64, x, z, width, height, depth float64, lit bool) Entity {
	return Entity{
		ID:     id,
		Kind:   KindProp,
		Center: vmath.V3(x, height/2+parameter.PropBaseY, z),
		Size:   vmath.V3(width, height, depth),
		Lit:    lit,
	}
}

// Box returns the entity's bounding box
func (e Entity) Box() vmath.Box {
	return vmath.BoxAt(e.Center, e.Size)
}

// TrailingEdge is the rearmost forward coordinate of the entity
func (e Entity) TrailingEdge() float64 {
	return e.Center.Z - e.Size.Z/2
}

// Collides reports whether the entity takes part in collision tests
func (e Entity) Collides() bool {
	return e.Kind != KindProp
}
