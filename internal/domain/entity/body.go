package entity

import "github.com/go-gl/mathgl/mgl64"

// Pose is the player's position and orientation in world space. It is owned
// exclusively by the active locomotion controller; everything else reads it.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewPose returns a pose at the given position with identity orientation
// (up = +Y, forward = +Z).
func NewPose(position mgl64.Vec3) Pose {
	return Pose{Position: position, Orientation: mgl64.QuatIdent()}
}

// Up returns the pose's local up axis in world space.
func (p Pose) Up() mgl64.Vec3 {
	return p.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
}

// Forward returns the pose's local forward axis in world space.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

// Right returns the pose's local right axis in world space.
func (p Pose) Right() mgl64.Vec3 {
	return p.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
}

// Lerp interpolates position linearly and orientation spherically toward
// target. t outside [0,1] is clamped; rendering passes the fixed-step
// interpolation alpha here.
func (p Pose) Lerp(target Pose, t float64) Pose {
	if t <= 0 {
		return p
	}
	if t >= 1 {
		return target
	}
	return Pose{
		Position:    LerpVec3(p.Position, target.Position, t),
		Orientation: mgl64.QuatSlerp(p.Orientation, target.Orientation, t),
	}
}

// LerpVec3 returns a + (b-a)*t without clamping t.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Body is a pose plus integration state. Kinematic marks the body as driven
// directly by the controller; while it is set the gravity force path is
// bypassed entirely.
type Body struct {
	Pose
	Velocity  mgl64.Vec3
	Kinematic bool
}
