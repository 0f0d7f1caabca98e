package camera

import (
	"math"

	"freelook/internal/vmath"

	"github.com/chewxy/math32"
)

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultPitchLimit  = 89.0
	DefaultSensitivity = 0.1
	DefaultMoveStep    = 0.01
)

// WorldUp is the y-up convention every demo uses.
var WorldUp = vmath.V3(0, 1, 0)

// State tells whether the controller has seen a cursor sample yet.
type State int

const (
	Uninitialized State = iota
	Tracking
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Tracking:
		return "tracking"
	}
	return "unknown"
}

// Movement is a single key-hold step along one of the camera axes.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// FreeLook is a mouse-look camera. Yaw and pitch are in degrees; pitch is
// kept inside [-PitchLimit, PitchLimit] so the direction never flips over
// the poles. Yaw is unbounded.
type FreeLook struct {
	eye       vmath.Vec3
	up        vmath.Vec3
	direction vmath.Vec3
	yaw       float32
	pitch     float32

	state        State
	lastX, lastY float64

	sensitivityX float32
	sensitivityY float32
	moveStep     float32
	pitchLimit   float32
}

// Option configures a FreeLook.
type Option func(*FreeLook)

// WithSensitivity sets the degrees of rotation per pixel of cursor travel.
func WithSensitivity(x, y float32) Option {
	return func(c *FreeLook) {
		c.sensitivityX = x
		c.sensitivityY = y
	}
}

// WithMoveStep sets the distance covered by one Move call.
func WithMoveStep(step float32) Option {
	return func(c *FreeLook) { c.moveStep = step }
}

// WithPitchLimit sets the pitch clamp in degrees. Values outside (0, 90) are ignored.
func WithPitchLimit(limit float32) Option {
	return func(c *FreeLook) {
		if limit > 0 && limit < 90 {
			c.pitchLimit = limit
		}
	}
}

// WithOrientation overrides the initial yaw and pitch.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *FreeLook) {
		c.yaw = yaw
		c.pitch = pitch
	}
}

// NewFreeLook returns a camera at eye facing -z.
func NewFreeLook(eye vmath.Vec3, opts ...Option) *FreeLook {
	c := &FreeLook{
		eye:          eye,
		up:           WorldUp,
		yaw:          DefaultYaw,
		pitch:        DefaultPitch,
		sensitivityX: DefaultSensitivity,
		sensitivityY: DefaultSensitivity,
		moveStep:     DefaultMoveStep,
		pitchLimit:   DefaultPitchLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.clampPitch()
	c.updateDirection()
	return c
}

// HandleCursor feeds one cursor position sample into the controller.
//
// The first sample after construction or Reset only records the reference
// position, so the camera does not jump to wherever the cursor happened to be.
// Samples with a NaN or infinite coordinate, or whose delta does not fit a
// float32, are dropped without changing any state.
func (c *FreeLook) HandleCursor(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	var dx, dy float32
	if c.state == Tracking {
		dx = float32(x-c.lastX) * c.sensitivityX
		// Screen y grows downwards; moving the pointer up raises the pitch.
		dy = float32(c.lastY-y) * c.sensitivityY
		if !finite(float64(dx)) || !finite(float64(dy)) {
			return
		}
	}
	c.lastX = x
	c.lastY = y
	c.state = Tracking

	c.yaw += dx
	c.pitch += dy
	c.clampPitch()
	c.updateDirection()
}

// Reset returns to the uninitialized state; orientation and eye are kept.
func (c *FreeLook) Reset() {
	c.state = Uninitialized
}

// Move translates the eye by one step. Forward and backward travel along the
// view direction projected onto the ground plane, so looking down does not
// move the camera into the floor.
func (c *FreeLook) Move(m Movement) {
	right := c.Right()
	var delta vmath.Vec3
	switch m {
	case Forward:
		delta = c.level(right)
	case Backward:
		delta = c.level(right).Neg()
	case Left:
		delta = right.Neg()
	case Right:
		delta = right
	default:
		return
	}
	c.eye = c.eye.Add(delta.Mul(c.moveStep))
}

// Right is the unit vector pointing to the camera's right.
func (c *FreeLook) Right() vmath.Vec3 {
	return vmath.Normalize(vmath.Cross(c.direction, c.up))
}

func (c *FreeLook) level(right vmath.Vec3) vmath.Vec3 {
	return vmath.Normalize(vmath.Cross(c.up, right))
}

// View returns the view matrix for the current eye and direction.
func (c *FreeLook) View() vmath.Mat4 {
	return vmath.LookDir(c.eye, c.direction, c.up)
}

func (c *FreeLook) Eye() vmath.Vec3       { return c.eye }
func (c *FreeLook) Up() vmath.Vec3        { return c.up }
func (c *FreeLook) Direction() vmath.Vec3 { return c.direction }
func (c *FreeLook) Target() vmath.Vec3    { return c.eye.Add(c.direction) }
func (c *FreeLook) Yaw() float32          { return c.yaw }
func (c *FreeLook) Pitch() float32        { return c.pitch }
func (c *FreeLook) State() State          { return c.state }

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (c *FreeLook) clampPitch() {
	if c.pitch > c.pitchLimit {
		c.pitch = c.pitchLimit
	} else if c.pitch < -c.pitchLimit {
		c.pitch = -c.pitchLimit
	}
}

func (c *FreeLook) updateDirection() {
	yaw := vmath.Radians(c.yaw)
	pitch := vmath.Radians(c.pitch)
	c.direction = vmath.Normalize(vmath.V3(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	))
}
