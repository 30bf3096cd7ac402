package stl

import (
	stderrors "errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/meshio"
	"github.com/wippyai/meshio/errors"
	"github.com/wippyai/meshio/geom"
	"github.com/wippyai/meshio/stl/internal/binary"
)

var _ meshio.Decoder = (*Decoder)(nil)

// Decoder decodes binary STL payloads with a fixed configuration.
// A Decoder holds no per-stream state and may be shared.
type Decoder struct {
	opts Options
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

// Options returns the configuration.
func (d *Decoder) Options() Options {
	return d.opts
}

// Decode reads a binary STL payload from r and returns its triangles in file order.
func Decode(r io.Reader) ([]geom.Triangle, error) {
	return NewDecoder(DefaultOptions()).Decode(r)
}

// DecodeWithOptions reads a binary STL payload from r into a Model.
func DecodeWithOptions(r io.Reader, opts Options) (*Model, error) {
	return NewDecoder(opts).DecodeModel(r)
}

// DecodeFile opens path, decodes it and closes it again on every path.
func DecodeFile(path string, opts Options) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Load("open "+path, err)
	}
	defer f.Close()

	Logger().Debug("reading stl file", zap.String("path", path))
	return NewDecoder(opts).DecodeModel(f)
}

// Decode returns the triangles of the payload read from r.
func (d *Decoder) Decode(r io.Reader) ([]geom.Triangle, error) {
	m, err := d.DecodeModel(r)
	if err != nil {
		return nil, err
	}
	return m.Triangles, nil
}

// DecodeModel reads the header, the declared count and every triangle
// record from r. On failure no partial model is returned; the error
// reports how many triangles were complete.
func (d *Decoder) DecodeModel(src io.Reader) (*Model, error) {
	if src == nil {
		return nil, errors.InvalidInput(errors.PhaseDecode, "nil reader")
	}

	r := binary.NewReader(src)
	m := &Model{}

	if n, err := r.ReadFull(m.Header[:]); err != nil {
		if isShort(err) {
			return nil, errors.TruncatedHeader(HeaderSize, n)
		}
		return nil, errors.IOFailure(0, 0, err)
	}

	count, n, err := r.ReadU32LE()
	if err != nil {
		if isShort(err) {
			return nil, errors.TruncatedCount(HeaderSize, CountSize, n)
		}
		return nil, errors.IOFailure(HeaderSize, 0, err)
	}
	m.DeclaredCount = count

	log := Logger()
	log.Debug("reading triangles",
		zap.Uint32("declared", count),
		zap.Stringer("policy", d.opts.Count))

	m.Triangles = make([]geom.Triangle, 0, d.capacity(r, count))
	if err := d.readRecords(r, m); err != nil {
		return nil, err
	}

	if int64(len(m.Triangles)) != int64(count) {
		log.Warn("declared triangle count differs from records read",
			zap.Uint32("declared", count),
			zap.Int("read", len(m.Triangles)))
	}
	log.Debug("decoded stl payload",
		zap.Int("triangles", len(m.Triangles)),
		zap.Int64("bytes", r.Position()))

	return m, nil
}

func (d *Decoder) readRecords(r *binary.Reader, m *Model) error {
	strict := d.opts.Count == CountStrict
	declared := int64(m.DeclaredCount)
	limit := d.opts.MaxTriangles

	var buf [RecordSize]byte
	for {
		decoded := len(m.Triangles)
		offset := r.Position()

		if strict && int64(decoded) == declared {
			return checkTrailing(r, m.DeclaredCount)
		}

		n, err := r.ReadFull(buf[:])
		switch {
		case err == nil:
		case stderrors.Is(err, io.EOF):
			if strict {
				return errors.CountMismatch(offset, m.DeclaredCount, decoded)
			}
			return nil
		case stderrors.Is(err, binary.ErrShort):
			return errors.TruncatedRecord(offset, decoded, RecordSize, n)
		default:
			return errors.IOFailure(offset, decoded, err)
		}

		if limit > 0 && decoded == limit {
			return errors.LimitExceeded(offset, limit)
		}

		rec := parseRecord(&buf)
		m.Triangles = append(m.Triangles, rec.Triangle())
	}
}

// checkTrailing fails when anything follows the last declared record.
func checkTrailing(r *binary.Reader, declared uint32) error {
	offset := r.Position()
	var probe [1]byte
	_, err := r.ReadFull(probe[:])
	switch {
	case err == nil:
		return errors.TrailingData(offset, declared)
	case stderrors.Is(err, io.EOF):
		return nil
	default:
		return errors.IOFailure(offset, int(declared), err)
	}
}

// capacity bounds the up-front allocation by what the stream can hold.
func (d *Decoder) capacity(r *binary.Reader, declared uint32) int {
	c := int64(declared)
	if rem, ok := r.Remaining(); ok {
		if d.opts.Count == CountStrict {
			c = min(c, rem/RecordSize)
		} else {
			c = rem / RecordSize
		}
	} else {
		c = min(c, preallocCap)
	}
	if d.opts.MaxTriangles > 0 {
		c = min(c, int64(d.opts.MaxTriangles))
	}
	return int(c)
}

// ReadRecord decodes the next 50-byte record from r. It returns io.EOF when
// r is exhausted exactly at a record boundary; offsets in errors are
// relative to the start of the record.
func ReadRecord(r io.Reader) (Record, error) {
	var buf [RecordSize]byte
	n, err := binary.NewReader(r).ReadFull(buf[:])
	switch {
	case err == nil:
		return parseRecord(&buf), nil
	case stderrors.Is(err, io.EOF):
		return Record{}, io.EOF
	case stderrors.Is(err, binary.ErrShort):
		return Record{}, errors.TruncatedRecord(0, 0, RecordSize, n)
	default:
		return Record{}, errors.IOFailure(0, 0, err)
	}
}

func isShort(err error) bool {
	return stderrors.Is(err, binary.ErrShort) || stderrors.Is(err, io.EOF)
}
