package neoforge

import "github.com/go-gl/mathgl/mgl32"

// PoseStack is a stack of model transforms. It always holds at least one
// pose; the bottom pose is the identity.
type PoseStack struct {
	poses []mgl32.Mat4
}

// NewPoseStack creates a pose stack holding a single identity pose.
func NewPoseStack() *PoseStack {
	return &PoseStack{poses: []mgl32.Mat4{mgl32.Ident4()}}
}

// Last returns the current pose.
func (p *PoseStack) Last() mgl32.Mat4 {
	return p.poses[len(p.poses)-1]
}

// Push duplicates the current pose. Every Push must be balanced by a Pop
// before the stack is handed back to the host.
func (p *PoseStack) Push() {
	p.poses = append(p.poses, p.Last())
}

// Pop discards the current pose, restoring the one below it.
// Popping the bottom pose is a programmer error and panics.
func (p *PoseStack) Pop() {
	if len(p.poses) == 1 {
		panic("neoforge: pose stack underflow")
	}
	p.poses = p.poses[:len(p.poses)-1]
}

// Translate composes a translation onto the current pose.
func (p *PoseStack) Translate(x, y, z float32) {
	p.MulPose(mgl32.Translate3D(x, y, z))
}

// Scale composes a scale onto the current pose.
func (p *PoseStack) Scale(x, y, z float32) {
	p.MulPose(mgl32.Scale3D(x, y, z))
}

// Rotate composes a rotation onto the current pose.
func (p *PoseStack) Rotate(q mgl32.Quat) {
	p.MulPose(q.Mat4())
}

// MulPose composes an arbitrary transform onto the current pose.
func (p *PoseStack) MulPose(m mgl32.Mat4) {
	top := len(p.poses) - 1
	p.poses[top] = p.poses[top].Mul4(m)
}
