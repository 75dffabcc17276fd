package geom

import "github.com/chewxy/math32"

// Vec3 is a point or direction in world or local space.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Len() float32 {
	return math32.Sqrt(a.Dot(a))
}

// Normalize returns a unit vector in the direction of a. The zero vector is returned unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// RotateX rotates a around the X axis by angle radians (right-handed).
func (a Vec3) RotateX(angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{a.X, a.Y*c - a.Z*s, a.Y*s + a.Z*c}
}

// RotateY rotates a around the Y axis by angle radians (right-handed).
func (a Vec3) RotateY(angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{a.X*c + a.Z*s, a.Y, -a.X*s + a.Z*c}
}

// RotateZ rotates a around the Z axis by angle radians (right-handed).
func (a Vec3) RotateZ(angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{a.X*c - a.Y*s, a.X*s + a.Y*c, a.Z}
}

// RotateEuler applies an XYZ Euler rotation: Z first, then Y, then X.
// This is the same order the renderer composes its rotation matrices in.
func (a Vec3) RotateEuler(e Vec3) Vec3 {
	return a.RotateZ(e.Z).RotateY(e.Y).RotateX(e.X)
}

// UnrotateEuler is the inverse of RotateEuler.
func (a Vec3) UnrotateEuler(e Vec3) Vec3 {
	return a.RotateX(-e.X).RotateY(-e.Y).RotateZ(-e.Z)
}

// ApproxEqual reports whether a and b differ by at most eps on every axis.
func (a Vec3) ApproxEqual(b Vec3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps && math32.Abs(a.Z-b.Z) <= eps
}
