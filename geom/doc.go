// Package geom holds the small set of 3D value types produced by meshio
// decoders: Vector3, Triangle and Bounds.
//
// Values are immutable once constructed. Vertex order in a Triangle is the
// order found in the source file and defines its winding; Normal derives the
// face normal from that winding.
//
// Vector math is delegated to github.com/go-gl/mathgl/mgl32:
//
//	n := tri.Normal().Vec()   // mgl32.Vec3
//	d := n.Dot(mgl32.Vec3{0, 0, 1})
package geom
