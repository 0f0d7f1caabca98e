package scene

import "freelook/internal/graphics"

// Unit cube centred on the origin, colored by corner position.

// CubeVertices is the non-indexed cube: 36 vertices, xyz rgb.
var CubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 0.0,

	-0.5, 0.5, 0.5, 0.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 1.0,

	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,

	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,

	-0.5, 0.5, -0.5, 0.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 1.0,
}

// CubeCorners are the eight shared corners of the indexed cube.
var CubeCorners = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0, // 0
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, // 1
	0.5, 0.5, -0.5, 1.0, 1.0, 1.0, // 2
	-0.5, 0.5, -0.5, 0.0, 1.0, 1.0, // 3
	-0.5, -0.5, 0.5, 0.0, 0.0, 0.0, // 4
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, // 5
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0, // 6
	-0.5, 0.5, 0.5, 0.0, 1.0, 1.0, // 7
}

// CubeIndices triangulates CubeCorners, two triangles per face.
var CubeIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
	4, 5, 6,
	6, 7, 4,
	7, 3, 0,
	0, 4, 7,
	6, 2, 1,
	1, 5, 6,
	0, 1, 5,
	5, 4, 0,
	3, 2, 6,
	6, 7, 3,
}

// Cube returns mesh data for the non-indexed cube.
func Cube() graphics.MeshData {
	return graphics.MeshData{Vertices: CubeVertices}
}

// IndexedCube returns mesh data for the eight-corner indexed cube.
func IndexedCube() graphics.MeshData {
	return graphics.MeshData{Vertices: CubeCorners, Indices: CubeIndices}
}
