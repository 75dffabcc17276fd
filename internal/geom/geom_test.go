package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestBoxIntersect(t *testing.T) {
	unit := Box{Center: V3(0, 0, -5), Size: V3(1, 1, 1)}
	quad := Box{Center: V3(0, 0, -2), Size: V3(1, 0.5, 0)}

	tests := []struct {
		name  string
		box   Box
		ray   Ray
		want  float32
		found bool
	}{
		{"straight hit", unit, NewRay(V3(0, 0, 0), V3(0, 0, -1)), 4.5, true},
		{"miss to the side", unit, NewRay(V3(2, 0, 0), V3(0, 0, -1)), 0, false},
		{"pointing away", unit, NewRay(V3(0, 0, 0), V3(0, 0, 1)), 0, false},
		{"origin inside", unit, NewRay(V3(0, 0, -5), V3(0, 0, -1)), 0, true},
		{"thin quad", quad, NewRay(V3(0.2, 0.1, 0), V3(0, 0, -1)), 2, true},
		{"thin quad edge miss", quad, NewRay(V3(0, 0.3, 0), V3(0, 0, -1)), 0, false},
		{"parallel outside slab", unit, NewRay(V3(0, 3, 0), V3(0, 0, -1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.box.Intersect(tt.ray)
			if ok != tt.found {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.found)
			}
			if ok && math32.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEulerRoundTrip(t *testing.T) {
	e := V3(-0.55, 0.3, 1.1)
	v := V3(0.4, -1.2, 2.5)
	got := v.RotateEuler(e).UnrotateEuler(e)
	if !got.ApproxEqual(v, 1e-5) {
		t.Errorf("UnrotateEuler(RotateEuler(v)) = %+v, want %+v", got, v)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	got := V3(0, 1, 0).RotateX(math32.Pi / 2)
	if !got.ApproxEqual(V3(0, 0, 1), 1e-6) {
		t.Errorf("RotateX(pi/2) of +Y = %+v, want +Z", got)
	}
}

func TestRayValid(t *testing.T) {
	if (Ray{}).Valid() {
		t.Error("zero ray reported valid")
	}
	if !NewRay(V3(0, 0, 0), V3(3, 0, 4)).Valid() {
		t.Error("normalized ray reported invalid")
	}
}
