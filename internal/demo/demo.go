package demo

import (
	"fmt"
	"log"
	"os"
	"time"

	"freelook/internal/camera"
	"freelook/internal/config"
	"freelook/internal/frame"
	"freelook/internal/graphics"
	"freelook/internal/input"
	"freelook/internal/report"
	"freelook/internal/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// Context is the state shared between the loop and a Scene.
type Context struct {
	Window   *glfw.Window
	Settings config.Settings
	Program  *graphics.Program
	Input    *input.Manager
	Lens     *camera.Lens

	// Viewer produces the view matrix. It starts as a *camera.FreeLook built
	// from Settings.Camera; a scene may replace it in Init. Only a FreeLook
	// viewer gets mouse look and movement.
	Viewer camera.Viewer

	// Model and Transform are uploaded every frame, so they survive a
	// shader reload. Both start as identity.
	Model     vmath.Mat4
	Transform vmath.Mat4

	Time   float32 // seconds since the loop started
	Width  int     // framebuffer size
	Height int
}

// FreeLook returns the viewer when it is a free-look camera.
func (c *Context) FreeLook() (*camera.FreeLook, bool) {
	fl, ok := c.Viewer.(*camera.FreeLook)
	return fl, ok
}

// Scene is one demo's content.
type Scene interface {
	// Init builds GPU resources once the program is current.
	Init(ctx *Context) error
	// Update runs every frame after input, before uniforms are uploaded.
	Update(ctx *Context)
	// Render draws with all uniforms set.
	Render(ctx *Context)
	Dispose()
}

// NewFreeLook builds the free-look camera described by settings.
func NewFreeLook(c config.Camera) *camera.FreeLook {
	return camera.NewFreeLook(
		vmath.V3(c.Eye[0], c.Eye[1], c.Eye[2]),
		camera.WithSensitivity(c.CursorSensitivityX, c.CursorSensitivityY),
		camera.WithMoveStep(c.MoveStep),
		camera.WithPitchLimit(c.PitchLimit),
	)
}

// Run opens the window, compiles the shader pair and drives sc until the
// window closes. It must be called from the main thread.
func Run(s config.Settings, vertPath, fragPath string, sc Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := SetupWindow(s.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := graphics.NewProgramFromFiles(vertPath, fragPath)
	if err != nil {
		return err
	}
	program.Use()

	width, height := window.GetFramebufferSize()
	lens := camera.NewLens(width, height)
	lens.FOV = s.Camera.FOVDegrees
	lens.NearPlane = s.Camera.Near
	lens.FarPlane = s.Camera.Far

	ctx := &Context{
		Window:    window,
		Settings:  s,
		Program:   program,
		Input:     input.NewManager(),
		Lens:      lens,
		Viewer:    NewFreeLook(s.Camera),
		Model:     vmath.Identity(),
		Transform: vmath.Identity(),
		Width:     width,
		Height:    height,
	}
	defer func() { ctx.Program.Delete() }()

	if err := sc.Init(ctx); err != nil {
		return fmt.Errorf("init scene: %w", err)
	}
	defer sc.Dispose()

	l := &loop{
		ctx:      ctx,
		scene:    sc,
		vertPath: vertPath,
		fragPath: fragPath,
		clock:    frame.NewClock(s.Frame.UpdateHz, s.Frame.Substeps),
		counter:  frame.NewCounter(s.Frame.ReportEvery),
		limiter:  frame.NewLimiter(),
		panel:    report.New(os.Stdout),
		slow:     time.Duration(s.Frame.SlowFrameMs) * time.Millisecond,
	}
	closer.Bind(l.panel.Restore)
	defer l.panel.Restore()

	// log lines are printed above the panel instead of scrolling it
	prev := log.Writer()
	log.SetOutput(l.panel)
	defer log.SetOutput(prev)

	if s.Window.FBOScale > 1 {
		l.offscreen, err = graphics.NewOffscreen(width, height, s.Window.FBOScale)
		if err != nil {
			return err
		}
		defer l.offscreen.Delete()
	}

	if s.Shaders.Watch {
		w, err := graphics.NewWatcher(vertPath, fragPath)
		if err != nil {
			log.Printf("shader hot reload disabled: %v", err)
		} else {
			l.watcher = w
			defer w.Close()
		}
	}

	config.SetFPSLimit(s.Frame.FPSLimit)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.15, 0.15, 0.15, 1.0)
	if err := graphics.CheckError("setup"); err != nil {
		return err
	}

	l.install()
	l.run()
	return nil
}
