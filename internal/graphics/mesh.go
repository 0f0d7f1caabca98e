package graphics

import (
	"errors"
	"fmt"
	"unsafe"

	"freelook/internal/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared by all demo shaders.
const (
	PositionLocation = 0
	ColorLocation    = 1
	// InstanceLocation is the first of four consecutive vec4 columns.
	InstanceLocation = 2
)

const (
	floatsPerVertex = 6 // xyz rgb
	floatSize       = 4
	vertexStride    = floatsPerVertex * floatSize
	mat4Size        = int(unsafe.Sizeof(vmath.Mat4{}))
)

// MeshData is the CPU side of a Mesh: interleaved position+color vertices,
// optional triangle indices, optional per-instance model matrices.
type MeshData struct {
	Vertices  []float32
	Indices   []uint32
	Instances []vmath.Mat4
}

func (d MeshData) VertexCount() int {
	return len(d.Vertices) / floatsPerVertex
}

func (d MeshData) validate() error {
	if len(d.Vertices) == 0 {
		return errors.New("mesh has no vertices")
	}
	if len(d.Vertices)%floatsPerVertex != 0 {
		return fmt.Errorf("mesh vertex data length %d is not a multiple of %d", len(d.Vertices), floatsPerVertex)
	}
	n := uint32(d.VertexCount())
	for i, idx := range d.Indices {
		if idx >= n {
			return fmt.Errorf("mesh index %d at %d out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}

// Mesh owns a vertex array and its buffers.
type Mesh struct {
	vao uint32
	vbo uint32
	ebo uint32
	ibo uint32

	count     int32
	indexed   bool
	instanced bool
	instances int32
}

// NewMesh uploads d. Instance matrices are uploaded once, like the
// vertices.
func NewMesh(d MeshData) (*Mesh, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	m := &Mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*floatSize, gl.Ptr(d.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointer(PositionLocation, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(ColorLocation)
	gl.VertexAttribPointer(ColorLocation, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*floatSize))

	m.count = int32(d.VertexCount())
	if len(d.Indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STATIC_DRAW)
		m.count = int32(len(d.Indices))
		m.indexed = true
	}

	if len(d.Instances) > 0 {
		gl.GenBuffers(1, &m.ibo)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.ibo)
		// one vec4 attribute per matrix column
		for col := uint32(0); col < 4; col++ {
			loc := InstanceLocation + col
			gl.EnableVertexAttribArray(loc)
			gl.VertexAttribPointer(loc, 4, gl.FLOAT, false, int32(mat4Size), gl.PtrOffset(int(col)*4*floatSize))
			gl.VertexAttribDivisor(loc, 1)
		}
		m.instanced = true
		m.upload(d.Instances)
	}

	// the element buffer binding is VAO state and must stay bound
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := CheckError("new mesh"); err != nil {
		m.Delete()
		return nil, err
	}
	return m, nil
}

func (m *Mesh) upload(instances []vmath.Mat4) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.ibo)
	m.instances = int32(len(instances))
	gl.BufferData(gl.ARRAY_BUFFER, len(instances)*mat4Size, gl.Ptr(&instances[0][0][0]), gl.STATIC_DRAW)
}

// Draw issues the draw call matching how the mesh was built.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	switch {
	case m.indexed && m.instanced:
		gl.DrawElementsInstanced(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil, m.instances)
	case m.indexed:
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	case m.instanced:
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, m.count, m.instances)
	default:
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	for _, b := range []*uint32{&m.vbo, &m.ebo, &m.ibo} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
			*b = 0
		}
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
