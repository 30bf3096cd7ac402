package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVector3Equal(t *testing.T) {
	nan := float32(math.NaN())

	tests := []struct {
		name string
		a, b Vector3
		want bool
	}{
		{"same", NewVector3(1, 2, 3), NewVector3(1, 2, 3), true},
		{"different", NewVector3(1, 2, 3), NewVector3(1, 2, 4), false},
		{"nan", NewVector3(nan, 0, 0), NewVector3(nan, 0, 0), true},
		{"signed zero", NewVector3(0, 0, 0), NewVector3(float32(math.Copysign(0, -1)), 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector3Vec(t *testing.T) {
	v := NewVector3(1, -2, 3.5)
	if got := FromVec(v.Vec()); got != v {
		t.Errorf("FromVec(Vec()) = %v, want %v", got, v)
	}
	if v.Vec() != (mgl32.Vec3{1, -2, 3.5}) {
		t.Errorf("Vec() = %v", v.Vec())
	}
}

func TestTriangleKeepsOrder(t *testing.T) {
	p, q, r := NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0)
	tri := NewTriangle(p, q, r)

	got := tri.Vertices()
	if got[0] != p || got[1] != q || got[2] != r {
		t.Errorf("Vertices() = %v, want [%v %v %v]", got, p, q, r)
	}
}

func TestTriangleNormal(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want Vector3
	}{
		{
			name: "counter-clockwise in xy",
			tri:  NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0)),
			want: NewVector3(0, 0, 1),
		},
		{
			name: "reversed winding",
			tri:  NewTriangle(NewVector3(0, 0, 0), NewVector3(0, 1, 0), NewVector3(1, 0, 0)),
			want: NewVector3(0, 0, -1),
		},
		{
			name: "scaled",
			tri:  NewTriangle(NewVector3(0, 0, 0), NewVector3(0, 5, 0), NewVector3(0, 0, 5)),
			want: NewVector3(1, 0, 0),
		},
		{
			name: "degenerate",
			tri:  NewTriangle(NewVector3(1, 1, 1), NewVector3(2, 2, 2), NewVector3(3, 3, 3)),
			want: Vector3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tri.Normal()
			if !got.Vec().ApproxEqual(tt.want.Vec()) {
				t.Errorf("Normal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangleArea(t *testing.T) {
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(2, 0, 0), NewVector3(0, 2, 0))
	if got := tri.Area(); got != 2 {
		t.Errorf("Area() = %v, want 2", got)
	}
}

func TestBoundsOf(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Error("BoundsOf(nil) should report !ok")
	}

	ts := []Triangle{
		NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 2, 3), NewVector3(3, 2, -1)),
		NewTriangle(NewVector3(-4, 0, 0), NewVector3(0, 0, 0), NewVector3(0, 7, 0)),
	}
	b, ok := BoundsOf(ts)
	if !ok {
		t.Fatal("BoundsOf should report ok")
	}
	if b.Min != NewVector3(-4, 0, -1) {
		t.Errorf("Min = %v, want (-4, 0, -1)", b.Min)
	}
	if b.Max != NewVector3(3, 7, 3) {
		t.Errorf("Max = %v, want (3, 7, 3)", b.Max)
	}
	if b.Size() != NewVector3(7, 7, 4) {
		t.Errorf("Size = %v, want (7, 7, 4)", b.Size())
	}
}

func TestBoundsOfSkipsNaN(t *testing.T) {
	nan := float32(math.NaN())

	tests := []struct {
		name    string
		ts      []Triangle
		min     Vector3
		max     Vector3
		nanAxis bool
	}{
		{
			name: "nan in first vertex",
			ts: []Triangle{
				NewTriangle(NewVector3(nan, 0, 0), NewVector3(1, 2, 3), NewVector3(-1, 0, 0)),
			},
			min: NewVector3(-1, 0, 0),
			max: NewVector3(1, 2, 3),
		},
		{
			name: "nan in later vertex",
			ts: []Triangle{
				NewTriangle(NewVector3(0, 0, 0), NewVector3(5, nan, 1), NewVector3(2, 4, nan)),
			},
			min: NewVector3(0, 0, 0),
			max: NewVector3(5, 4, 1),
		},
		{
			name: "axis all nan",
			ts: []Triangle{
				NewTriangle(NewVector3(nan, 0, 0), NewVector3(nan, 1, 0), NewVector3(nan, 0, 1)),
			},
			nanAxis: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := BoundsOf(tt.ts)
			if !ok {
				t.Fatal("BoundsOf should report ok")
			}
			if tt.nanAxis {
				if !isNaN(b.Min.X) || !isNaN(b.Max.X) {
					t.Errorf("X bounds = %v..%v, want NaN", b.Min.X, b.Max.X)
				}
				if b.Min.Y != 0 || b.Max.Y != 1 || b.Min.Z != 0 || b.Max.Z != 1 {
					t.Errorf("bounds = %v..%v", b.Min, b.Max)
				}
				return
			}
			if b.Min != tt.min {
				t.Errorf("Min = %v, want %v", b.Min, tt.min)
			}
			if b.Max != tt.max {
				t.Errorf("Max = %v, want %v", b.Max, tt.max)
			}
		})
	}
}
