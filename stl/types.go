package stl

import (
	"bytes"

	"github.com/wippyai/meshio/geom"
	"github.com/wippyai/meshio/stl/internal/binary"
)

// Record is one 50-byte triangle record as stored on disk.
// Normal and Attribute are decoded for alignment only; Triangle drops them.
type Record struct {
	Normal    geom.Vector3
	P, Q, R   geom.Vector3
	Attribute uint16
}

// Triangle returns the record's vertices in file order.
func (rec Record) Triangle() geom.Triangle {
	return geom.NewTriangle(rec.P, rec.Q, rec.R)
}

// parseRecord decodes a full record buffer.
func parseRecord(b *[RecordSize]byte) Record {
	return Record{
		Normal:    vectorAt(b[:], offNormal),
		P:         vectorAt(b[:], offP),
		Q:         vectorAt(b[:], offQ),
		R:         vectorAt(b[:], offR),
		Attribute: binary.U16(b[:], offAttribute),
	}
}

func vectorAt(b []byte, off int) geom.Vector3 {
	return geom.NewVector3(
		binary.F32(b, off),
		binary.F32(b, off+4),
		binary.F32(b, off+8),
	)
}

// Model is the full result of decoding a binary STL payload.
type Model struct {
	Triangles     []geom.Triangle
	DeclaredCount uint32
	Header        [HeaderSize]byte
}

// HeaderText returns the header with trailing NUL and space padding removed.
// The decoder never interprets the header; this is for display.
func (m *Model) HeaderText() string {
	return string(bytes.TrimRight(m.Header[:], "\x00 "))
}

// Bounds returns the box enclosing all vertices; ok is false for an empty model.
func (m *Model) Bounds() (geom.Bounds, bool) {
	return geom.BoundsOf(m.Triangles)
}
