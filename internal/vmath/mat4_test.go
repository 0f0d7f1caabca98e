package vmath_test

import (
	"math/rand"
	"testing"

	"freelook/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

func randomMat4(rng *rand.Rand) vmath.Mat4 {
	var m vmath.Mat4
	for c := range m {
		for r := range m[c] {
			m[c][r] = rng.Float32()*4 - 2
		}
	}
	return m
}

func toMgl(m vmath.Mat4) mgl32.Mat4 {
	return mgl32.Mat4(m.Array())
}

func assertMatNear(t *testing.T, want, got vmath.Mat4, eps float32) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, eps), "want\n%v\ngot\n%v", want, got)
}

func TestDiagonal(t *testing.T) {
	d := vmath.Diagonal(2.5)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if c == r {
				assert.Equal(t, float32(2.5), d[c][r])
			} else {
				assert.Zero(t, d[c][r])
			}
		}
	}
	assert.Equal(t, vmath.Diagonal(1), vmath.Identity())
	assert.Equal(t, toMgl(vmath.Identity()), mgl32.Ident4())
}

func TestColumnMajorLayout(t *testing.T) {
	var m vmath.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] = float32(c*10 + r)
		}
	}
	arr := m.Array()
	for c := 0; c < 4; c++ {
		assert.Equal(t, m.Col(c), m[c])
		for r := 0; r < 4; r++ {
			assert.Equal(t, m[c][r], arr[c*4+r])
			assert.Equal(t, m[c][r], m.At(r, c))
			assert.Equal(t, m[c][r], m.Row(r)[c])
		}
	}
	assert.Equal(t, m, vmath.FromArray(arr))
	assert.Equal(t, &m[0][0], m.Ptr())
}

func TestMulIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	id := vmath.Identity()
	for i := 0; i < 32; i++ {
		m := randomMat4(rng)
		assertMatNear(t, m, vmath.Mul(id, m), 0)
		assertMatNear(t, m, vmath.Mul(m, id), 0)
	}
}

func TestMulAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 32; i++ {
		a, b, c := randomMat4(rng), randomMat4(rng), randomMat4(rng)
		assertMatNear(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), 1e-4)
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 32; i++ {
		l, r := randomMat4(rng), randomMat4(rng)
		want := vmath.FromArray(toMgl(l).Mul4(toMgl(r)))
		assertMatNear(t, want, vmath.Mul(l, r), tol)
	}
}

func TestMulComposesRightToLeft(t *testing.T) {
	// Scale (2, 1, 1) first, then rotate 90 degrees about z: x -> 2x -> 2y.
	m := vmath.Mul(vmath.Rotate(vmath.Radians(90), vmath.V3(0, 0, 1)), vmath.Scale(vmath.V3(2, 1, 1)))
	got := m.MulPoint(vmath.V3(1, 0, 0))
	assert.True(t, got.ApproxEqual(vmath.V3(0, 2, 0), tol), "got %v", got)

	// Translate after scale: the translation itself is not scaled.
	m = vmath.Mul(vmath.Translate(vmath.V3(1, 2, 3)), vmath.Scale(vmath.Splat(0.5)))
	got = m.MulPoint(vmath.V3(2, 2, 2))
	assert.True(t, got.ApproxEqual(vmath.V3(2, 3, 4), tol), "got %v", got)
}

func TestTranslate(t *testing.T) {
	tr := vmath.V3(-10.5, 7.5, 3)
	m := vmath.Translate(tr)
	assert.Equal(t, vmath.Vec4{-10.5, 7.5, 3, 1}, m[3])
	assert.Equal(t, tr, m.MulPoint(vmath.Vec3{}))
	assert.Equal(t, vmath.V3(1, 0, 0), m.MulDir(vmath.V3(1, 0, 0)), "directions ignore translation")
	assert.Equal(t, mgl32.Translate3D(tr.X, tr.Y, tr.Z), toMgl(m))
}

func TestScale(t *testing.T) {
	m := vmath.Scale(vmath.V3(1.25, 2, 3))
	assert.Equal(t, vmath.Vec4{1.25, 2, 3, 1}, vmath.Vec4{m[0][0], m[1][1], m[2][2], m[3][3]})
	assert.Equal(t, mgl32.Scale3D(1.25, 2, 3), toMgl(m))
}

var rotationAxes = []vmath.Vec3{
	vmath.V3(1, 0, 0),
	vmath.V3(0, 1, 0),
	vmath.V3(0, 0, 1),
	vmath.V3(1, 1, 1),
	vmath.V3(-3, 0.5, 2),
	vmath.V3(0, 0, 12), // not unit length
}

var rotationAngles = []float32{-3, -1.2, -0.01, 0.3, 1, 2.5, 6}

func TestRotateOrthogonal(t *testing.T) {
	id := vmath.Identity()
	for _, axis := range rotationAxes {
		for _, angle := range rotationAngles {
			r := vmath.Rotate(angle, axis)
			assertMatNear(t, id, r.Mul(r.Transpose()), tol)
			assertMatNear(t, id, r.Transpose().Mul(r), tol)
		}
	}
}

func TestRotateZeroAngle(t *testing.T) {
	for _, axis := range rotationAxes {
		assertMatNear(t, vmath.Identity(), vmath.Rotate(0, axis), tol)
	}
}

func TestRotateZeroAxis(t *testing.T) {
	assert.Equal(t, vmath.Identity(), vmath.Rotate(1.3, vmath.Vec3{}))
}

func TestRotateLargeAxis(t *testing.T) {
	for _, axis := range []vmath.Vec3{vmath.V3(0, 0, 1e20), vmath.V3(0, 0, 3e-23)} {
		r := vmath.Rotate(vmath.Radians(90), axis)
		got := r.MulDir(vmath.V3(1, 0, 0))
		assert.True(t, got.ApproxEqual(vmath.V3(0, 1, 0), tol), "axis %v: x maps to %v", axis, got)
	}
}

func TestRotateAdditive(t *testing.T) {
	for _, axis := range rotationAxes {
		for _, a := range rotationAngles {
			for _, b := range []float32{0.2, -0.7, 1.5} {
				got := vmath.Mul(vmath.Rotate(a, axis), vmath.Rotate(b, axis))
				assertMatNear(t, vmath.Rotate(a+b, axis), got, tol)
			}
		}
	}
}

func TestRotateMatchesMathgl(t *testing.T) {
	for _, axis := range rotationAxes {
		n := axis.Normalize()
		for _, angle := range rotationAngles {
			want := vmath.FromArray(mgl32.HomogRotate3D(angle, mgl32.Vec3{n.X, n.Y, n.Z}))
			assertMatNear(t, want, vmath.Rotate(angle, axis), tol)
		}
	}
}

func TestRotateDiagonalUsesAxisSquares(t *testing.T) {
	// Rotating about (1, 0, 1) must leave that axis fixed; an xz term in the
	// last diagonal cell would not.
	axis := vmath.V3(1, 0, 1)
	r := vmath.Rotate(vmath.Radians(70), axis)
	got := r.MulDir(axis)
	assert.True(t, got.ApproxEqual(axis, tol), "axis moved to %v", got)
}

func TestMat4String(t *testing.T) {
	s := vmath.Translate(vmath.V3(1, 2, 3)).String()
	require.Equal(t, "  1.00  0.00  0.00  1.00\n  0.00  1.00  0.00  2.00\n  0.00  0.00  1.00  3.00\n  0.00  0.00  0.00  1.00\n", s)
}

func BenchmarkMul(b *testing.B) {
	l := vmath.Rotate(0.5, vmath.V3(0, 1, 0))
	r := vmath.Mul(vmath.Translate(vmath.V3(1, 2, 3)), vmath.Scale(vmath.Splat(2)))
	var out vmath.Mat4
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = vmath.Mul(l, r)
	}
	_ = out
}

func BenchmarkRotate(b *testing.B) {
	axis := vmath.V3(0, 1, 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = vmath.Rotate(float32(i)*0.001, axis)
	}
}
