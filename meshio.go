package meshio

import (
	"io"

	"github.com/wippyai/meshio/geom"
)

// Decoder turns a mesh byte stream into triangles in file order.
type Decoder interface {
	Decode(r io.Reader) ([]geom.Triangle, error)
}
