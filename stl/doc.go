// Package stl decodes binary STL files into triangles.
//
// A binary STL payload is little-endian throughout:
//
//	offset     size  field
//	0          80    header (opaque)
//	80         4     triangle count (uint32)
//	84 + 50k   12    normal (3 x float32)
//	96 + 50k   12    vertex P
//	108 + 50k  12    vertex Q
//	120 + 50k  12    vertex R
//	132 + 50k  2     attribute byte count (uint16)
//
// The normal and attribute fields are parsed to keep records aligned but
// never reach the returned triangles. Consumers that need a normal derive
// it from the vertex winding with geom.Triangle.Normal.
//
// # Decoding
//
// Decode reads until the stream ends and returns the triangles in file order:
//
//	f, _ := os.Open("teapot.stl")
//	defer f.Close()
//	tris, err := stl.Decode(f)
//
// DecodeFile owns the file handle and returns the full Model, including the
// raw header and the declared triangle count:
//
//	m, err := stl.DecodeFile("teapot.stl", stl.DefaultOptions())
//
// # Count policy
//
// The header's triangle count is informational by default: records are read
// until end of stream and a mismatch is only logged. With CountStrict the
// stream must hold exactly the declared number of records.
//
// # Errors
//
// Failures are *errors.Error values from github.com/wippyai/meshio/errors
// and can be matched with errors.Is against ErrTruncatedHeader,
// ErrTruncatedCount, ErrTruncatedRecord, ErrIOFailure and friends.
// No partial result is returned on failure.
package stl
