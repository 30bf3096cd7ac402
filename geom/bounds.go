package geom

import "math"

// Bounds is an axis-aligned box from Min to Max.
type Bounds struct {
	Min Vector3
	Max Vector3
}

// BoundsOf returns the box enclosing every vertex of ts.
// NaN components are skipped; an axis on which every vertex is NaN stays NaN.
// ok is false when ts is empty.
func BoundsOf(ts []Triangle) (b Bounds, ok bool) {
	if len(ts) == 0 {
		return Bounds{}, false
	}
	b = Bounds{Min: ts[0].P, Max: ts[0].P}
	for _, t := range ts {
		for _, v := range t.Vertices() {
			b = b.Extend(v)
		}
	}
	return b, true
}

// Extend returns the smallest box holding b and v, ignoring NaN components.
func (b Bounds) Extend(v Vector3) Bounds {
	return Bounds{
		Min: Vector3{lower(b.Min.X, v.X), lower(b.Min.Y, v.Y), lower(b.Min.Z, v.Z)},
		Max: Vector3{upper(b.Max.X, v.X), upper(b.Max.Y, v.Y), upper(b.Max.Z, v.Z)},
	}
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() Vector3 {
	return FromVec(b.Max.Vec().Sub(b.Min.Vec()))
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

func lower(a, v float32) float32 {
	switch {
	case isNaN(v):
		return a
	case isNaN(a):
		return v
	}
	return min(a, v)
}

func upper(a, v float32) float32 {
	switch {
	case isNaN(v):
		return a
	case isNaN(a):
		return v
	}
	return max(a, v)
}
