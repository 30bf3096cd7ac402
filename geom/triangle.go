package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is an ordered triple of vertices.
type Triangle struct {
	P Vector3
	Q Vector3
	R Vector3
}

// NewTriangle creates a Triangle keeping p, q, r in the given order.
func NewTriangle(p, q, r Vector3) Triangle {
	return Triangle{P: p, Q: q, R: r}
}

// Vertices returns P, Q, R in order.
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.P, t.Q, t.R}
}

// Normal returns the unit normal implied by the winding P, Q, R
// (counter-clockwise seen from the front). Degenerate triangles yield
// the zero vector.
func (t Triangle) Normal() Vector3 {
	n := t.cross()
	l := n.Len()
	if l == 0 {
		return Vector3{}
	}
	return FromVec(n.Mul(1 / l))
}

// Area returns the surface area of the triangle.
func (t Triangle) Area() float32 {
	return t.cross().Len() / 2
}

func (t Triangle) cross() mgl32.Vec3 {
	p := t.P.Vec()
	return t.Q.Vec().Sub(p).Cross(t.R.Vec().Sub(p))
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.P, t.Q, t.R)
}
