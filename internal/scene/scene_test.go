package scene

import (
	"testing"

	"freelook/internal/vmath"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestCubeData(t *testing.T) {
	assert.Equal(t, 36, Cube().VertexCount())
	assert.Equal(t, 8, IndexedCube().VertexCount())
	assert.Len(t, CubeIndices, 36)
	for _, idx := range CubeIndices {
		assert.Less(t, idx, uint32(8))
	}
}

func TestSmallGrid(t *testing.T) {
	inst := SmallGrid.Instances()
	require.Len(t, inst, 16)

	// first instance sits at (-4.5, 0, -4.5) at full size
	assert.True(t, inst[0].ApproxEqual(vmath.Mul(vmath.Translate(vmath.V3(-4.5, 0, -4.5)), vmath.Identity()), tol))

	// (i=1, j=2) is k=6
	k6 := inst[6]
	origin := k6.MulPoint(vmath.V3(0, 0, 0))
	assert.True(t, origin.ApproxEqual(vmath.V3(-1.5, 0, 1.5), tol), origin)
	size := 1 / math32.Sqrt(7)
	assert.InDelta(t, size, k6.At(0, 0), tol)
	assert.InDelta(t, size, k6.At(1, 1), tol)
	assert.InDelta(t, size, k6.At(2, 2), tol)
}

func TestLargeGrid(t *testing.T) {
	inst := LargeGrid.Instances()
	require.Len(t, inst, 64)

	last := inst[63]
	origin := last.MulPoint(vmath.V3(0, 0, 0))
	assert.True(t, origin.ApproxEqual(vmath.V3(10.5, -10.5, 0), tol), origin)
	assert.InDelta(t, 2.0/8.0, last.At(0, 0), tol)

	// sizes strictly shrink along the build order
	for k := 1; k < len(inst); k++ {
		assert.Less(t, inst[k].At(0, 0), inst[k-1].At(0, 0))
	}
}

func TestModelAndSpin(t *testing.T) {
	m := Model(1.25)
	// scaled, then tilted about z: z axis is only scaled
	assert.True(t, m.MulDir(vmath.V3(0, 0, 1)).ApproxEqual(vmath.V3(0, 0, 1.25), tol))
	x := m.MulDir(vmath.V3(1, 0, 0))
	assert.InDelta(t, 1.25*math32.Cos(vmath.Radians(15)), x.X, tol)
	assert.InDelta(t, 1.25*math32.Sin(vmath.Radians(15)), x.Y, tol)

	assert.True(t, Spin(0).ApproxEqual(vmath.Identity(), tol))
	// 3.6s at 25 deg/s is a quarter turn: +z swings to +x
	assert.True(t, Spin(3.6).MulDir(vmath.V3(0, 0, 1)).ApproxEqual(vmath.V3(1, 0, 0), 1e-4))
}
