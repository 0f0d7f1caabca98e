package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Offscreen is a low-resolution render target that is blown up to the
// window with nearest filtering, giving the chunky pixel look.
type Offscreen struct {
	fbo   uint32
	color uint32
	depth uint32

	scale  int
	Width  int32
	Height int32
}

// NewOffscreen creates a target of (width/scale)x(height/scale).
func NewOffscreen(width, height, scale int) (*Offscreen, error) {
	o := &Offscreen{scale: scale}
	gl.GenFramebuffers(1, &o.fbo)
	gl.GenRenderbuffers(1, &o.color)
	gl.GenRenderbuffers(1, &o.depth)
	if err := o.Resize(width, height); err != nil {
		o.Delete()
		return nil, err
	}
	return o, nil
}

func scaledSize(width, height, scale int) (int32, int32) {
	if scale < 1 {
		scale = 1
	}
	w, h := width/scale, height/scale
	return int32(max(w, 1)), int32(max(h, 1))
}

// Resize reallocates the attachments for a new window size.
func (o *Offscreen) Resize(width, height int) error {
	o.Width, o.Height = scaledSize(width, height, o.scale)

	gl.BindRenderbuffer(gl.RENDERBUFFER, o.color)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, o.Width, o.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, o.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, o.Width, o.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, o.color)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, o.depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("offscreen %dx%d: %w (status 0x%04x)", o.Width, o.Height, ErrIncompleteFramebuffer, status)
	}
	return CheckError("offscreen resize")
}

// Bind directs drawing into the target and sets the viewport to its size.
func (o *Offscreen) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.Viewport(0, 0, o.Width, o.Height)
}

// Blit copies the target onto the default framebuffer of the given size.
func (o *Offscreen) Blit(dstWidth, dstHeight int) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, o.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, o.Width, o.Height, 0, 0, int32(dstWidth), int32(dstHeight), gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (o *Offscreen) Delete() {
	if o.fbo != 0 {
		gl.DeleteFramebuffers(1, &o.fbo)
		o.fbo = 0
	}
	for _, rb := range []*uint32{&o.color, &o.depth} {
		if *rb != 0 {
			gl.DeleteRenderbuffers(1, rb)
			*rb = 0
		}
	}
}
