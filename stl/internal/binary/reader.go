package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"strings"
)

// ErrShort is returned when fewer bytes than requested were available
// before end of stream. The bytes that were read are still consumed.
var ErrShort = errors.New("short read")

// Reader wraps an io.Reader with position tracking and little-endian read methods.
// It only ever reads forward.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader creates a new Reader wrapping the given io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Position returns the current byte position.
func (r *Reader) Position() int64 {
	return r.pos
}

// ReadFull fills buf. It returns the number of bytes read and
//   - nil when buf was filled,
//   - io.EOF when no byte was available,
//   - ErrShort when the stream ended part way,
//   - the source's error otherwise.
func (r *Reader) ReadFull(buf []byte) (int, error) {
	n, err := io.ReadFull(r.r, buf)
	r.pos += int64(n)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF) && n == 0:
		return 0, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return n, ErrShort
	default:
		return n, err
	}
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, int, error) {
	var buf [4]byte
	n, err := r.ReadFull(buf[:])
	if err != nil {
		return 0, n, err
	}
	return binary.LittleEndian.Uint32(buf[:]), n, nil
}

// Remaining reports how many unread bytes the source holds, when the
// source can tell without being consumed.
func (r *Reader) Remaining() (int64, bool) {
	switch src := r.r.(type) {
	case *bytes.Reader:
		return int64(src.Len()), true
	case *bytes.Buffer:
		return int64(src.Len()), true
	case *strings.Reader:
		return int64(src.Len()), true
	case *os.File:
		fi, err := src.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return 0, false
		}
		off, err := src.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, false
		}
		return max(fi.Size()-off, 0), true
	}
	return 0, false
}

// U16 decodes a little-endian uint16 at off.
func U16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off:])
}

// F32 decodes a little-endian IEEE-754 float32 at off, keeping the bit pattern.
func F32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}
