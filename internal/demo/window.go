package demo

import (
	"fmt"

	"freelook/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow creates the window and makes its GL 4.1 core context current.
// glfw.Init must already have been called on the main thread.
func SetupWindow(w config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	window.SetAspectRatio(w.Width, w.Height)
	if w.VSync {
		glfw.SwapInterval(1)
	} else {
		// our own limiter paces frames
		glfw.SwapInterval(0)
	}

	return window, nil
}

// captureCursor hides the pointer and keeps it in the window so mouse look
// gets unbounded deltas.
func captureCursor(window *glfw.Window, on bool) {
	if !on {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
}
