package graphics

import (
	"fmt"
	"os"
	"strings"

	"freelook/internal/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uniform names every demo shader may declare. A shader that leaves one out
// gets location -1, which GL ignores on upload.
const (
	UniformModel      = "U_MODEL"
	UniformView       = "U_VIEW"
	UniformProjection = "U_PROJECTION"
	UniformTransform  = "U_TRANSFORM"
	UniformTime       = "U_TIME"
)

// Uniforms caches the locations of the well-known uniforms of a Program.
type Uniforms struct {
	Model      int32
	View       int32
	Projection int32
	Transform  int32
	Time       int32
}

// Program is a linked vertex+fragment shader program.
type Program struct {
	ID       uint32
	Uniforms Uniforms
}

// NewProgramFromFiles reads and compiles a vertex and fragment shader pair.
func NewProgramFromFiles(vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	p, err := NewProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("%s, %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// NewProgram compiles and links shader sources. The sources do not need a
// trailing NUL.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(cString(vertexSrc), cString(fragmentSrc))
	if err != nil {
		return nil, err
	}
	p := &Program{ID: id}
	p.Uniforms = Uniforms{
		Model:      p.location(UniformModel),
		View:       p.location(UniformView),
		Projection: p.location(UniformProjection),
		Transform:  p.location(UniformTransform),
		Time:       p.location(UniformTime),
	}
	return p, nil
}

// Use activates the shader program
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) location(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(cString(name)))
}

// SetMat4 uploads m as stored: column-major, no transpose.
func (p *Program) SetMat4(loc int32, m vmath.Mat4) {
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}

func (p *Program) SetFloat(loc int32, v float32) {
	if loc < 0 {
		return
	}
	gl.Uniform1f(loc, v)
}

func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %s", trimLog(log))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %s", trimLog(log))
	}
	return shader, nil
}

// trimLog drops the NUL padding and trailing newlines drivers leave in info logs.
func trimLog(log string) string {
	return strings.TrimRight(log, "\x00\n ")
}
