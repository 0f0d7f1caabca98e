package camera

import (
	"fmt"

	"freelook/internal/vmath"
)

// Lens holds the projection parameters
type Lens struct {
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
}

func NewLens(width, height int) *Lens {
	l := &Lens{
		FOV:       45.0,
		NearPlane: 0.1,
		FarPlane:  100.0,
	}
	l.SetViewport(width, height)
	return l
}

// SetViewport updates the aspect ratio from a framebuffer size.
// A zero height (minimized window) leaves an infinite ratio that Projection rejects.
func (l *Lens) SetViewport(width, height int) {
	l.AspectRatio = float32(width) / float32(height)
}

func (l *Lens) Projection() (vmath.Mat4, error) {
	p, err := vmath.Perspective(vmath.Radians(l.FOV), l.AspectRatio, l.NearPlane, l.FarPlane)
	if err != nil {
		return vmath.Mat4{}, fmt.Errorf("lens: %w", err)
	}
	return p, nil
}
