package scene

import (
	"freelook/internal/vmath"

	"github.com/chewxy/math32"
)

// Plane selects which two axes a grid spans.
type Plane int

const (
	// PlaneXZ lays rows along x and columns along z at y=0.
	PlaneXZ Plane = iota
	// PlaneXY lays rows along x and columns down negative y at z=0.
	PlaneXY
)

// Grid describes a square arrangement of instances that shrink as they are
// laid out: instance k is scaled by Size/sqrt(k+1).
type Grid struct {
	Coords []float32
	Plane  Plane
	Size   float32
}

// SmallGrid is the 4x4 floor of cubes.
var SmallGrid = Grid{
	Coords: []float32{-4.5, -1.5, 1.5, 4.5},
	Plane:  PlaneXZ,
	Size:   1,
}

// LargeGrid is the 8x8 wall of cubes.
var LargeGrid = Grid{
	Coords: []float32{-10.5, -7.5, -4.5, -1.5, 1.5, 4.5, 7.5, 10.5},
	Plane:  PlaneXY,
	Size:   2,
}

// Len is the number of instances the grid produces.
func (g Grid) Len() int {
	return len(g.Coords) * len(g.Coords)
}

// Position returns the centre of instance (i, j).
func (g Grid) Position(i, j int) vmath.Vec3 {
	if g.Plane == PlaneXY {
		return vmath.V3(g.Coords[i], -g.Coords[j], 0)
	}
	return vmath.V3(g.Coords[i], 0, g.Coords[j])
}

// Instances builds one model matrix per cell in row-major order:
// Translate(position) * Scale(size).
func (g Grid) Instances() []vmath.Mat4 {
	out := make([]vmath.Mat4, 0, g.Len())
	k := 0
	for i := range g.Coords {
		for j := range g.Coords {
			size := g.Size / math32.Sqrt(float32(k)+1)
			out = append(out, vmath.Mul(vmath.Translate(g.Position(i, j)), vmath.Scale(vmath.Splat(size))))
			k++
		}
	}
	return out
}

// Model tilts the whole scene 15 degrees about z and scales it uniformly.
func Model(scale float32) vmath.Mat4 {
	return vmath.Mul(
		vmath.Rotate(vmath.Radians(15), vmath.V3(0, 0, 1)),
		vmath.Scale(vmath.Splat(scale)),
	)
}

// Spin turns 25 degrees per second about the y axis.
func Spin(seconds float32) vmath.Mat4 {
	return vmath.Rotate(vmath.Radians(seconds*25), vmath.V3(0, 1, 0))
}
