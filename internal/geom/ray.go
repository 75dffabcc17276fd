package geom

import "github.com/chewxy/math32"

// Ray is an origin and a unit direction. Rays are rebuilt every frame and never stored.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Valid reports whether the ray has a usable (non-zero, finite) direction.
func (r Ray) Valid() bool {
	l := r.Direction.Len()
	return l > 0 && !math32.IsNaN(l) && !math32.IsInf(l, 0)
}

// Box is an axis-aligned box in some local frame, given by its center and full size.
type Box struct {
	Center Vec3
	Size   Vec3
}

// Empty reports whether the box has no volume on every axis, i.e. it is a pure group.
func (b Box) Empty() bool {
	return b.Size.X == 0 && b.Size.Y == 0 && b.Size.Z == 0
}

// Intersect returns the distance along r to the first point of b, using the slab method.
// Thin boxes (zero depth on one axis, e.g. UI quads) are hit on their plane.
// A ray starting inside the box reports distance 0.
func (b Box) Intersect(r Ray) (float32, bool) {
	half := b.Size.Scale(0.5)
	lo := b.Center.Sub(half)
	hi := b.Center.Add(half)

	tmin := float32(0)
	tmax := math32.Inf(1)
	o := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	mn := [3]float32{lo.X, lo.Y, lo.Z}
	mx := [3]float32{hi.X, hi.Y, hi.Z}
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < mn[i] || o[i] > mx[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (mn[i] - o[i]) * inv
		t2 := (mx[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
