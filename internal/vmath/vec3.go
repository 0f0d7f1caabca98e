package vmath

import (
	"github.com/chewxy/math32"
)

// Vec3 is a three component float32 vector used for positions, axes,
// scale factors and directions.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to s.
func Splat(s float32) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// Dot returns the sum of the componentwise products of a and b.
func Dot(a, b Vec3) float32 {
	return (a.X * b.X) + (a.Y * b.Y) + (a.Z * b.Z)
}

// Cross returns the right-handed cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns v divided by its length.
// The zero vector has no direction and is returned unchanged.
// v is first divided by its largest component so the squared length
// cannot overflow or underflow float32.
func Normalize(v Vec3) Vec3 {
	m := maxAbs(v)
	if m == 0 {
		return Vec3{}
	}
	v = Vec3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
	l := math32.Sqrt(Dot(v, v))
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

func maxAbs(v Vec3) float32 {
	return max(math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z))
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

// Mul scales v by s.
func (v Vec3) Mul(s float32) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

func (v Vec3) Neg() Vec3 { return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z} }

func (v Vec3) Dot(o Vec3) float32 { return Dot(v, o) }

func (v Vec3) Cross(o Vec3) Vec3 { return Cross(v, o) }

func (v Vec3) Normalize() Vec3 { return Normalize(v) }

// Len returns the Euclidean length of v, scaled like Normalize.
func (v Vec3) Len() float32 {
	m := maxAbs(v)
	if m == 0 {
		return 0
	}
	s := v.Mul(1 / m)
	return m * math32.Sqrt(Dot(s, s))
}

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Vec4 extends v with a w component, e.g. 1 for points and 0 for directions.
func (v Vec3) Vec4(w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps &&
		math32.Abs(v.Y-o.Y) <= eps &&
		math32.Abs(v.Z-o.Z) <= eps
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return (degrees * math32.Pi) / 180.0
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return (radians * 180.0) / math32.Pi
}
