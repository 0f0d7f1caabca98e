package vmath

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrDegenerateInput is wrapped by every error returned from a builder whose
// arguments cannot produce a usable matrix.
var ErrDegenerateInput = errors.New("degenerate input")

// Perspective returns a right-handed projection matching OpenGL's clip space:
// the near plane maps to depth -1, the far plane to +1 and w' = -z.
//
// fovy is the full vertical field of view in radians.
func Perspective(fovy, aspect, near, far float32) (Mat4, error) {
	switch {
	case !finite(fovy) || fovy <= 0 || fovy >= math32.Pi:
		return Mat4{}, fmt.Errorf("perspective: field of view %v: %w", fovy, ErrDegenerateInput)
	case !finite(aspect) || aspect == 0:
		return Mat4{}, fmt.Errorf("perspective: aspect ratio %v: %w", aspect, ErrDegenerateInput)
	case !finite(near) || !finite(far) || near == far:
		return Mat4{}, fmt.Errorf("perspective: depth range [%v, %v]: %w", near, far, ErrDegenerateInput)
	}

	var out Mat4
	cot := 1 / math32.Tan(fovy/2)
	out[0][0] = cot / aspect
	out[1][1] = cot
	out[2][2] = (near + far) / (near - far)
	out[2][3] = -1
	out[3][2] = (2 * near * far) / (near - far)
	out[3][3] = 0
	return out, nil
}

// LookAt returns a right-handed view matrix for a camera at eye looking at
// the point target.
//
// When eye and target coincide, or the view direction is parallel to up,
// there is no usable orientation and only the translation by -eye is applied.
func LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(target.Sub(eye))
	s := Normalize(Cross(f, up))
	if f.IsZero() || s.IsZero() {
		return Translate(eye.Neg())
	}
	u := Cross(s, f)

	var out Mat4
	out[0] = Vec4{s.X, u.X, -f.X, 0}
	out[1] = Vec4{s.Y, u.Y, -f.Y, 0}
	out[2] = Vec4{s.Z, u.Z, -f.Z, 0}
	out[3] = Vec4{-Dot(s, eye), -Dot(u, eye), Dot(f, eye), 1}
	return out
}

// LookDir is LookAt for a view direction rather than a target point.
func LookDir(eye, dir, up Vec3) Mat4 {
	return LookAt(eye, eye.Add(dir), up)
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
