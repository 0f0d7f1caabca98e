package report

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"freelook/internal/vmath"

	"github.com/muesli/termenv"
)

// Status is one snapshot of what the demo prints to the terminal.
type Status struct {
	FPS    float64
	Eye    vmath.Vec3
	Target vmath.Vec3
	Up     vmath.Vec3
}

const panelLines = 4

// Panel redraws a fixed block of lines in place, so the terminal shows a
// live readout instead of a scrolling log.
type Panel struct {
	mu     sync.Mutex
	out    *termenv.Output
	label  termenv.Color
	drawn  bool
	hidden bool
}

// New writes to w using the color profile termenv detects for it.
func New(w io.Writer, opts ...termenv.OutputOption) *Panel {
	out := termenv.NewOutput(w, opts...)
	return &Panel{
		out:   out,
		label: out.Color("6"),
	}
}

// Update replaces the previously drawn block with s.
func (p *Panel) Update(s Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hidden {
		p.out.HideCursor()
		p.hidden = true
	}
	if p.drawn {
		p.out.CursorPrevLine(panelLines)
	}
	p.line("fps", fmt.Sprintf("%8.2f", s.FPS))
	p.line("eye", vec(s.Eye))
	p.line("target", vec(s.Target))
	p.line("up", vec(s.Up))
	p.drawn = true
}

// Write prints b above the panel so other output, such as the standard
// logger, does not scroll the block. The panel is drawn again, below b, on
// the next Update.
func (p *Panel) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.drawn {
		p.out.CursorPrevLine(panelLines)
		p.drawn = false
	}
	for _, line := range bytes.SplitAfter(b, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		p.out.ClearLine()
		if _, err := p.out.Write(line); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

// Restore shows the cursor again. It is safe to call from a signal handler
// goroutine and more than once.
func (p *Panel) Restore() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.hidden {
		p.out.ShowCursor()
		p.hidden = false
	}
}

func (p *Panel) line(name, value string) {
	p.out.ClearLine()
	label := p.out.String(fmt.Sprintf("%-7s:", name)).Foreground(p.label)
	fmt.Fprintf(p.out, "%s%s\n", label, value)
}

func vec(v vmath.Vec3) string {
	return fmt.Sprintf("%8.2f%8.2f%8.2f", v.X, v.Y, v.Z)
}
