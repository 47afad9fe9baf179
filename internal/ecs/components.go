package ecs

import "github.com/go-gl/mathgl/mgl64"

// Transform holds an entity's world position. Every placed entity has one.
type Transform struct {
	Position mgl64.Vec3
}

// GravityWell marks an entity as an attractor with a solid spherical surface.
// Radius is the surface sphere; the pull range itself is a simulation-level
// setting, not a per-well property.
type GravityWell struct {
	Radius float64
}

// TriggerVolume is an axis-aligned box around the entity's transform. Extent
// holds half-sizes per axis.
type TriggerVolume struct {
	Extent mgl64.Vec3
}

// Orbit moves an entity's transform along a circle in the XY plane, the
// plane the game is played and drawn in. Phase is the current angle in
// radians and is advanced by the orbit system.
type Orbit struct {
	Center       mgl64.Vec3
	Radius       float64
	AngularSpeed float64
	Phase        float64
}

// PositionAt returns the orbit position for the given phase angle.
func (o Orbit) PositionAt(phase float64) mgl64.Vec3 {
	return orbitOffset(o.Center, o.Radius, phase)
}
