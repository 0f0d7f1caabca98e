package demo

import (
	"log"
	"time"

	"freelook/internal/camera"
	"freelook/internal/frame"
	"freelook/internal/graphics"
	"freelook/internal/input"
	"freelook/internal/profiling"
	"freelook/internal/report"
	"freelook/internal/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type loop struct {
	ctx   *Context
	scene Scene

	vertPath string
	fragPath string
	watcher  *graphics.Watcher

	offscreen *graphics.Offscreen

	clock   *frame.Clock
	counter *frame.Counter
	limiter *frame.Limiter
	panel   *report.Panel
	slow    time.Duration

	projection       vmath.Mat4
	projectionFailed bool
	captured         bool
	moves            []camera.Movement
}

// install hooks the GLFW callbacks. They fire inside PollEvents on the main
// thread.
func (l *loop) install() {
	w := l.ctx.Window
	l.ctx.Input.SetKeyCallback(w)

	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		l.resize(width, height)
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if fl, ok := l.ctx.FreeLook(); ok && l.captured {
			fl.HandleCursor(x, y)
		}
	})

	if _, ok := l.ctx.FreeLook(); ok {
		l.setCapture(true)
	}
	if p, err := l.ctx.Lens.Projection(); err == nil {
		l.projection = p
	}
	glfw.SetTime(0)
}

func (l *loop) run() {
	for !l.ctx.Window.ShouldClose() {
		l.tick()
	}
}

func (l *loop) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time

	stop := profiling.Track("demo.input")
	glfw.PollEvents()
	now := frame.Seconds(glfw.GetTime())
	l.ctx.Time = float32(now.Seconds())
	l.handleActions()

	ticks := l.clock.Advance(now)
	if fl, ok := l.ctx.FreeLook(); ok && l.captured {
		l.moves = heldMovements(l.ctx.Input, l.moves[:0])
		stepCamera(fl, l.moves, ticks)
	}
	stop()

	l.scene.Update(l.ctx)
	l.render()

	stop = profiling.Track("demo.swap")
	l.ctx.Window.SwapBuffers()
	stop()

	if l.counter.Frame(now) {
		v := l.ctx.Viewer
		l.panel.Update(report.Status{
			FPS:    l.counter.FPS(),
			Eye:    v.Eye(),
			Target: v.Target(),
			Up:     v.Up(),
		})
	}

	// Check if frame took too long
	if d := time.Since(startTick); l.slow > 0 && d > l.slow {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	l.ctx.Input.PostUpdate() // Clear "JustPressed" flags
	l.limiter.Wait()
}

func (l *loop) handleActions() {
	im := l.ctx.Input
	if im.JustPressed(input.ActionQuit) {
		l.ctx.Window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleCapture) {
		if _, ok := l.ctx.FreeLook(); ok {
			l.setCapture(!l.captured)
		}
	}

	reload := im.JustPressed(input.ActionReloadShaders)
	if l.watcher != nil && l.watcher.Changed() {
		reload = true
	}
	if reload {
		l.reload()
	}
}

func (l *loop) setCapture(on bool) {
	captureCursor(l.ctx.Window, on)
	l.captured = on
	if fl, ok := l.ctx.FreeLook(); ok {
		// the pointer moved freely while released
		fl.Reset()
	}
}

// reload rebuilds the program from disk and keeps the old one on failure so
// a half-saved shader does not kill the demo.
func (l *loop) reload() {
	p, err := graphics.NewProgramFromFiles(l.vertPath, l.fragPath)
	if err != nil {
		log.Printf("shader reload failed, keeping previous program: %v", err)
		return
	}
	l.ctx.Program.Delete()
	l.ctx.Program = p
	p.Use()
	log.Printf("reloaded %s, %s", l.vertPath, l.fragPath)
}

func (l *loop) resize(width, height int) {
	if width == 0 || height == 0 {
		// minimized
		return
	}
	l.ctx.Width, l.ctx.Height = width, height
	l.ctx.Lens.SetViewport(width, height)
	if l.offscreen != nil {
		if err := l.offscreen.Resize(width, height); err != nil {
			log.Printf("resize offscreen target: %v", err)
		}
	}
}

func (l *loop) render() {
	defer profiling.Track("demo.render")()

	if l.offscreen != nil {
		l.offscreen.Bind()
	} else {
		gl.Viewport(0, 0, int32(l.ctx.Width), int32(l.ctx.Height))
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	l.uploadUniforms()
	l.scene.Render(l.ctx)

	if l.offscreen != nil {
		l.offscreen.Blit(l.ctx.Width, l.ctx.Height)
	}
}

func (l *loop) uploadUniforms() {
	p, err := l.ctx.Lens.Projection()
	switch {
	case err == nil:
		l.projection = p
		l.projectionFailed = false
	case !l.projectionFailed:
		log.Printf("keeping previous projection: %v", err)
		l.projectionFailed = true
	}

	prog := l.ctx.Program
	u := prog.Uniforms
	prog.Use()
	prog.SetMat4(u.Projection, l.projection)
	prog.SetMat4(u.View, l.ctx.Viewer.View())
	prog.SetMat4(u.Model, l.ctx.Model)
	prog.SetMat4(u.Transform, l.ctx.Transform)
	prog.SetFloat(u.Time, l.ctx.Time)
}
