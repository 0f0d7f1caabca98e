package vmath

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Vec4 is one matrix column, or a homogeneous point/direction.
type Vec4 [4]float32

// Mat4 is a 4x4 float32 matrix stored as four columns.
//
// m[col][row] addresses a single cell and m[col] a whole column; both index
// the same 16 contiguous floats, so &m[0][0] can be handed to
// glUniformMatrix4fv with transpose set to false.
type Mat4 [4]Vec4

// Diagonal returns a matrix with x on the diagonal and zero elsewhere.
func Diagonal(x float32) Mat4 {
	var out Mat4
	out[0][0] = x
	out[1][1] = x
	out[2][2] = x
	out[3][3] = x
	return out
}

// Identity returns Diagonal(1).
func Identity() Mat4 {
	return Diagonal(1)
}

// linearCombine returns l[0]*w[0] + l[1]*w[1] + l[2]*w[2] + l[3]*w[3],
// i.e. the product of l with the column vector w.
func linearCombine(w Vec4, l *Mat4) Vec4 {
	var out Vec4
	for row := 0; row < 4; row++ {
		out[row] = l[0][row]*w[0] + l[1][row]*w[1] + l[2][row]*w[2] + l[3][row]*w[3]
	}
	return out
}

// Mul returns the matrix product l*r. Each column of the result is the
// corresponding column of r expressed as a combination of l's columns, so a
// column vector multiplied on the right is transformed by r first, then l.
func Mul(l, r Mat4) Mat4 {
	var out Mat4
	out[0] = linearCombine(r[0], &l)
	out[1] = linearCombine(r[1], &l)
	out[2] = linearCombine(r[2], &l)
	out[3] = linearCombine(r[3], &l)
	return out
}

// Mul returns m*o.
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mul(m, o)
}

// MulVec4 returns m*v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return linearCombine(v, &m)
}

// MulPoint transforms p as a homogeneous point with w=1 and drops w.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	out := m.MulVec4(p.Vec4(1))
	return Vec3{X: out[0], Y: out[1], Z: out[2]}
}

// MulDir transforms d as a direction with w=0.
func (m Mat4) MulDir(d Vec3) Vec3 {
	out := m.MulVec4(d.Vec4(0))
	return Vec3{X: out[0], Y: out[1], Z: out[2]}
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Col returns column c.
func (m Mat4) Col(c int) Vec4 {
	return m[c]
}

// Row returns row r.
func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[0][r], m[1][r], m[2][r], m[3][r]}
}

// At returns the cell in the given row and column.
func (m Mat4) At(row, col int) float32 {
	return m[col][row]
}

// Ptr returns a pointer to the first float, for uniform and buffer uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0][0]
}

// Array returns the 16 floats in column-major order.
func (m Mat4) Array() [16]float32 {
	var out [16]float32
	for c := 0; c < 4; c++ {
		copy(out[c*4:c*4+4], m[c][:])
	}
	return out
}

// FromArray builds a matrix from 16 column-major floats.
func FromArray(a [16]float32) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		copy(out[c][:], a[c*4:c*4+4])
	}
	return out
}

// ApproxEqual reports whether every cell of m is within eps of o.
func (m Mat4) ApproxEqual(o Mat4, eps float32) bool {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if math32.Abs(m[c][r]-o[c][r]) > eps {
				return false
			}
		}
	}
	return true
}

// String prints the matrix one row per line.
func (m Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			fmt.Fprintf(&b, " %5.2f", m[c][r])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Translate returns the identity with t in column 3, rows 0..2.
func Translate(t Vec3) Mat4 {
	out := Identity()
	out[3][0] = t.X
	out[3][1] = t.Y
	out[3][2] = t.Z
	return out
}

// Scale returns a matrix with s.X, s.Y, s.Z, 1 on the diagonal.
func Scale(s Vec3) Mat4 {
	out := Identity()
	out[0][0] = s.X
	out[1][1] = s.Y
	out[2][2] = s.Z
	return out
}

// Rotate returns a rotation of radians around axis (Rodrigues' formula).
// The axis need not be unit length; a zero axis yields the identity.
func Rotate(radians float32, axis Vec3) Mat4 {
	out := Identity()
	n := Normalize(axis)
	if n.IsZero() {
		return out
	}
	sin := math32.Sin(radians)
	cos := math32.Cos(radians)
	k := 1 - cos

	xs, ys, zs := n.X*sin, n.Y*sin, n.Z*sin
	xy, yz, xz := n.X*n.Y*k, n.Y*n.Z*k, n.X*n.Z*k

	out[0][0] = n.X*n.X*k + cos
	out[0][1] = xy + zs
	out[0][2] = xz - ys

	out[1][0] = xy - zs
	out[1][1] = n.Y*n.Y*k + cos
	out[1][2] = yz + xs

	out[2][0] = xz + ys
	out[2][1] = yz - xs
	out[2][2] = n.Z*n.Z*k + cos
	return out
}
