// Package stltest builds binary STL payloads for tests.
package stltest

import (
	"github.com/wippyai/meshio/geom"
	"github.com/wippyai/meshio/stl"
	"github.com/wippyai/meshio/stl/internal/binary"
)

// Record encodes rec as one 50-byte record.
func Record(rec stl.Record) []byte {
	w := binary.NewWriter()
	writeRecord(w, rec)
	return w.Bytes()
}

// Payload returns header (NUL padded or cut to 80 bytes), the declared
// count and recs. count need not match len(recs).
func Payload(header string, count uint32, recs ...stl.Record) []byte {
	w := binary.NewWriter()
	var h [stl.HeaderSize]byte
	copy(h[:], header)
	w.WriteBytes(h[:])
	w.WriteU32LE(count)
	for _, rec := range recs {
		writeRecord(w, rec)
	}
	return w.Bytes()
}

// Triangles wraps vertex triples in records with a zero normal and attribute.
func Triangles(ts ...geom.Triangle) []stl.Record {
	recs := make([]stl.Record, len(ts))
	for i, t := range ts {
		recs[i] = stl.Record{P: t.P, Q: t.Q, R: t.R}
	}
	return recs
}

func writeRecord(w *binary.Writer, rec stl.Record) {
	for _, v := range []geom.Vector3{rec.Normal, rec.P, rec.Q, rec.R} {
		w.WriteF32LE(v.X)
		w.WriteF32LE(v.Y)
		w.WriteF32LE(v.Z)
	}
	w.WriteU16LE(rec.Attribute)
}
