package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrIncompleteFramebuffer is returned when an offscreen target cannot be used.
var ErrIncompleteFramebuffer = errors.New("incomplete framebuffer")

// CheckError drains the GL error queue and reports every pending code.
func CheckError(op string) error {
	var errs []error
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = append(errs, fmt.Errorf("%s: gl error 0x%04x (%s)", op, code, errorName(code)))
	}
	return errors.Join(errs...)
}

func errorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown"
	}
}
