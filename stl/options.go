package stl

// CountPolicy selects how the header's triangle count is treated.
type CountPolicy int

const (
	// CountInformational reads records until end of stream; a mismatch
	// with the declared count is logged, not reported.
	CountInformational CountPolicy = iota
	// CountStrict requires exactly the declared number of records.
	CountStrict
)

func (p CountPolicy) String() string {
	switch p {
	case CountInformational:
		return "informational"
	case CountStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Options configures decoding.
type Options struct {
	// MaxTriangles rejects payloads holding more records. Zero means no limit.
	MaxTriangles int
	Count        CountPolicy
}

// DefaultOptions returns the default decoder configuration.
func DefaultOptions() Options {
	return Options{
		Count: CountInformational,
	}
}
