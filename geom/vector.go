package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is a single-precision 3D vector or point.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// NewVector3 creates a Vector3 from its components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromVec converts a mathgl vector.
func FromVec(v mgl32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec returns v as a mathgl vector.
func (v Vector3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Equal reports whether both vectors hold the same bit patterns.
// Unlike ==, a NaN component equals an identical NaN.
func (v Vector3) Equal(o Vector3) bool {
	return math.Float32bits(v.X) == math.Float32bits(o.X) &&
		math.Float32bits(v.Y) == math.Float32bits(o.Y) &&
		math.Float32bits(v.Z) == math.Float32bits(o.Z)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
