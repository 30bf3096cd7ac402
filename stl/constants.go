package stl

// Binary STL layout sizes in bytes.
const (
	HeaderSize    = 80
	CountSize     = 4
	VectorSize    = 12
	AttributeSize = 2
	RecordSize    = 4*VectorSize + AttributeSize // 50

	// PayloadOffset is where the first triangle record starts.
	PayloadOffset = HeaderSize + CountSize
)

// Field offsets within a triangle record.
const (
	offNormal    = 0
	offP         = offNormal + VectorSize
	offQ         = offP + VectorSize
	offR         = offQ + VectorSize
	offAttribute = offR + VectorSize
)

// preallocCap bounds how many triangles are reserved up front when the
// remaining stream length is unknown.
const preallocCap = 1 << 16
