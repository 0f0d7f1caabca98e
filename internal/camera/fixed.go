package camera

import "freelook/internal/vmath"

// Viewer is anything that can produce a view matrix for the render loop.
type Viewer interface {
	View() vmath.Mat4
	Eye() vmath.Vec3
	Target() vmath.Vec3
	Up() vmath.Vec3
}

var (
	_ Viewer = (*FreeLook)(nil)
	_ Viewer = Fixed{}
)

// Fixed is a camera that never moves and looks at a point.
type Fixed struct {
	Position vmath.Vec3
	LookAt   vmath.Vec3
	UpVector vmath.Vec3
}

// NewFixed returns a y-up camera at eye looking at target.
func NewFixed(eye, target vmath.Vec3) Fixed {
	return Fixed{Position: eye, LookAt: target, UpVector: WorldUp}
}

func (f Fixed) View() vmath.Mat4   { return vmath.LookAt(f.Position, f.LookAt, f.UpVector) }
func (f Fixed) Eye() vmath.Vec3    { return f.Position }
func (f Fixed) Target() vmath.Vec3 { return f.LookAt }
func (f Fixed) Up() vmath.Vec3     { return f.UpVector }
