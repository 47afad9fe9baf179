package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// LocomotionState is the player's ground contact state. Both locomotion
// models share the same two-state machine; what causes transitions differs.
type LocomotionState int

const (
	StateGrounded LocomotionState = iota
	StateAirborne
)

// String returns the state name
func (s LocomotionState) String() string {
	switch s {
	case StateGrounded:
		return "Grounded"
	case StateAirborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// Source is a candidate gravity attachment as exposed by the world registry.
// Radius is the solid surface sphere around Position.
type Source struct {
	ID       uuid.UUID
	Position mgl64.Vec3
	Radius   float64
}

// AttachmentTarget is the attachment the resolver picked for the current
// tick: the nearest source plus its center distance from the player.
type AttachmentTarget struct {
	Source
	Distance float64
}

// Trigger is an axis-aligned trigger box snapshot from the world registry.
// Entering one fires a one-shot reaction keyed by Tag.
type Trigger struct {
	ID     uuid.UUID
	Tag    string
	Center mgl64.Vec3
	Extent mgl64.Vec3
}

// Contains reports whether p lies inside the box (boundary inclusive).
func (t Trigger) Contains(p mgl64.Vec3) bool {
	d := p.Sub(t.Center)
	for i := 0; i < 3; i++ {
		if d[i] < -t.Extent[i] || d[i] > t.Extent[i] {
			return false
		}
	}
	return true
}
