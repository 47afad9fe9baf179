package entity

import "github.com/go-gl/mathgl/mgl64"

// TouchPhase describes where a pointer sample sits in a touch's lifecycle.
type TouchPhase int

const (
	TouchNone TouchPhase = iota
	TouchBegan
	TouchMoved
	TouchEnded
)

// String returns the phase name for logging and traces.
func (p TouchPhase) String() string {
	switch p {
	case TouchNone:
		return "None"
	case TouchBegan:
		return "Began"
	case TouchMoved:
		return "Moved"
	case TouchEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// PointerSample is one frame's pointer state as delivered by the driver.
// Position is in screen units with y pointing up; the driver flips the
// window's y-down coordinates before handing samples to the simulation.
type PointerSample struct {
	Position mgl64.Vec2
	Phase    TouchPhase
}
