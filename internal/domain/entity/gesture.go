package entity

// Gesture is a classified swipe. Exactly one concrete type is produced per
// recognized swipe; a nil Gesture means no gesture.
type Gesture interface {
	isGesture()
}

// LaneChange moves the runner one lane sideways.
// Direction is -1 for left, +1 for right.
type LaneChange struct {
	Direction int
}

func (LaneChange) isGesture() {}

// Jump launches the runner off the ground. Lateral carries the horizontal
// component of a diagonal swipe (-1, 0 or +1) and is only meaningful to the
// planetary locomotion model; the lane model ignores it.
type Jump struct {
	Lateral int
}

func (Jump) isGesture() {}
