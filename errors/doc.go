// Package errors provides structured error types for meshio decoders.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// Decode errors carry the byte offset of the failing read, the expected and
// available byte counts for truncated input, and how many triangles had been
// decoded before the failure.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncatedRecord).
//		Offset(134).
//		Record(1).
//		Short(50, 30).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TruncatedHeader(80, 79)
//	err := errors.IOFailure(84, 0, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match any error with the same Phase and Kind:
//
//	if errors.Is(err, meshioerrors.ErrTruncatedRecord) { ... }
package errors
