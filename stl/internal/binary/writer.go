package binary

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer provides buffered little-endian writing for building STL payloads.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16LE writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16LE(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteF32LE writes the raw bit pattern of v little-endian (fixed 4 bytes).
func (w *Writer) WriteF32LE(v float32) {
	w.WriteU32LE(math.Float32bits(v))
}
