package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // byte stream to triangles
	PhaseLoad   Phase = "load"   // opening the byte source
)

// Kind categorizes the error
type Kind string

const (
	KindTruncatedHeader Kind = "truncated_header"
	KindTruncatedCount  Kind = "truncated_count"
	KindTruncatedRecord Kind = "truncated_record"
	KindIOFailure       Kind = "io_failure"
	KindCountMismatch   Kind = "count_mismatch"
	KindTrailingData    Kind = "trailing_data"
	KindLimitExceeded   Kind = "limit_exceeded"
	KindInvalidInput    Kind = "invalid_input"
)

// Sentinel targets for errors.Is. Only Phase and Kind are compared.
var (
	ErrTruncatedHeader = &Error{Phase: PhaseDecode, Kind: KindTruncatedHeader}
	ErrTruncatedCount  = &Error{Phase: PhaseDecode, Kind: KindTruncatedCount}
	ErrTruncatedRecord = &Error{Phase: PhaseDecode, Kind: KindTruncatedRecord}
	ErrIOFailure       = &Error{Phase: PhaseDecode, Kind: KindIOFailure}
	ErrCountMismatch   = &Error{Phase: PhaseDecode, Kind: KindCountMismatch}
	ErrTrailingData    = &Error{Phase: PhaseDecode, Kind: KindTrailingData}
	ErrLimitExceeded   = &Error{Phase: PhaseDecode, Kind: KindLimitExceeded}
)

// Error is the structured error type returned by the decoder.
//
// Offset is the absolute byte offset where the failing read started.
// Expected and Available are byte counts for truncation errors.
// Record is the zero-based record index, or -1 outside the record section.
// Decoded is how many complete triangles preceded the failure.
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Detail    string
	Offset    int64
	Expected  int
	Available int
	Record    int
	Decoded   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Phase == PhaseDecode {
		b.WriteString(" at offset ")
		b.WriteString(strconv.FormatInt(e.Offset, 10))
	}
	if e.Record >= 0 && e.Kind == KindTruncatedRecord {
		b.WriteString(" (record ")
		b.WriteString(strconv.Itoa(e.Record))
		b.WriteByte(')')
	}

	if e.Expected > 0 {
		fmt.Fprintf(&b, ": expected %d bytes, %d available", e.Expected, e.Available)
	}

	if e.Detail != "" {
		if e.Expected > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Record: -1,
		},
	}
}

// Offset sets the byte offset of the failing read
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Short records a truncated read of expected bytes with only available present
func (b *Builder) Short(expected, available int) *Builder {
	b.err.Expected = expected
	b.err.Available = available
	return b
}

// Record sets the record index
func (b *Builder) Record(index int) *Builder {
	b.err.Record = index
	return b
}

// Decoded sets the number of complete triangles read before the failure
func (b *Builder) Decoded(n int) *Builder {
	b.err.Decoded = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TruncatedHeader creates an error for a header shorter than expected bytes
func TruncatedHeader(expected, available int) *Error {
	return New(PhaseDecode, KindTruncatedHeader).
		Offset(0).
		Short(expected, available).
		Build()
}

// TruncatedCount creates an error for a missing or partial triangle count
func TruncatedCount(offset int64, expected, available int) *Error {
	return New(PhaseDecode, KindTruncatedCount).
		Offset(offset).
		Short(expected, available).
		Build()
}

// TruncatedRecord creates an error for a partially present triangle record
func TruncatedRecord(offset int64, index, expected, available int) *Error {
	return New(PhaseDecode, KindTruncatedRecord).
		Offset(offset).
		Record(index).
		Short(expected, available).
		Decoded(index).
		Build()
}

// IOFailure wraps a read error that is not end-of-stream
func IOFailure(offset int64, decoded int, cause error) *Error {
	return New(PhaseDecode, KindIOFailure).
		Offset(offset).
		Decoded(decoded).
		Cause(cause).
		Build()
}

// CountMismatch creates an error for a stream holding fewer records than declared
func CountMismatch(offset int64, declared uint32, decoded int) *Error {
	return New(PhaseDecode, KindCountMismatch).
		Offset(offset).
		Decoded(decoded).
		Detail("header declares %d triangles, stream holds %d", declared, decoded).
		Build()
}

// TrailingData creates an error for bytes following the declared records
func TrailingData(offset int64, declared uint32) *Error {
	return New(PhaseDecode, KindTrailingData).
		Offset(offset).
		Decoded(int(declared)).
		Detail("data after %d declared triangles", declared).
		Build()
}

// LimitExceeded creates an error for a stream holding more records than allowed
func LimitExceeded(offset int64, limit int) *Error {
	return New(PhaseDecode, KindLimitExceeded).
		Offset(offset).
		Decoded(limit).
		Detail("more than %d triangles", limit).
		Build()
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	err := New(phase, KindInvalidInput).Build()
	err.Detail = detail
	return err
}

// Load creates an error for a byte source that could not be opened
func Load(detail string, cause error) *Error {
	err := New(PhaseLoad, KindIOFailure).Cause(cause).Build()
	err.Detail = detail
	return err
}
