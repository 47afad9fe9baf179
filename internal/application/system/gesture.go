package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// SwipeClassifier turns a finished swipe delta into a gesture. Each
// locomotion model supplies its own policy; a nil result means the delta
// crossed the distance threshold but matched no gesture.
type SwipeClassifier interface {
	Classify(delta mgl64.Vec2) entity.Gesture
}

// GestureDetector tracks one touch session at a time and emits at most one
// gesture per session. It is fed every pointer sample the driver produces and
// is deterministic: identical sample sequences yield identical gestures.
type GestureDetector struct {
	threshold  float64
	classifier SwipeClassifier

	start  mgl64.Vec2
	active bool
}

// NewGestureDetector creates a detector with the given minimum swipe distance.
func NewGestureDetector(threshold float64, classifier SwipeClassifier) *GestureDetector {
	return &GestureDetector{threshold: threshold, classifier: classifier}
}

// Feed advances the detector with one sample and returns the recognized
// gesture, or nil. A session arms on a began sample and classifies on moved
// or ended samples once the pointer has traveled at least the threshold
// distance from the press point. Producing a gesture closes the session, so a
// single continuous drag cannot fire twice; an ended sample closes it
// unconditionally.
func (d *GestureDetector) Feed(sample entity.PointerSample) entity.Gesture {
	switch sample.Phase {
	case entity.TouchBegan:
		if !d.active {
			d.start = sample.Position
			d.active = true
		}
		return nil

	case entity.TouchMoved, entity.TouchEnded:
		if !d.active {
			return nil
		}
		gesture := d.classify(sample.Position)
		if sample.Phase == entity.TouchEnded {
			d.active = false
		}
		return gesture

	default:
		return nil
	}
}

// Reset drops any armed session, e.g. when the scene regains focus.
func (d *GestureDetector) Reset() {
	d.active = false
}

func (d *GestureDetector) classify(pos mgl64.Vec2) entity.Gesture {
	delta := pos.Sub(d.start)
	if delta.Len() < d.threshold {
		return nil
	}
	gesture := d.classifier.Classify(delta)
	if gesture != nil {
		d.active = false
	}
	return gesture
}

// LaneClassifier implements the lane model's dominant-axis policy: a mostly
// horizontal swipe changes lanes, a mostly upward swipe jumps, a mostly
// downward swipe is nothing.
type LaneClassifier struct{}

func (LaneClassifier) Classify(delta mgl64.Vec2) entity.Gesture {
	if math.Abs(delta.X()) > math.Abs(delta.Y()) {
		return entity.LaneChange{Direction: horizontalSign(delta.X())}
	}
	if delta.Y() > 0 {
		return entity.Jump{}
	}
	return nil
}

// Swipe-angle windows for the planetary policy, measured from straight up.
const (
	jumpConeDeg    = 45.0
	lateralConeDeg = 135.0
)

// GravityClassifier implements the planetary model's angle policy. Within 45
// degrees of straight up the swipe is a pure jump; between 45 and 135 degrees
// an upward diagonal is a jump that keeps its horizontal sign as a lateral
// impulse. Everything flatter or downward degrades to a lane change, which
// the planetary controller ignores.
type GravityClassifier struct{}

func (GravityClassifier) Classify(delta mgl64.Vec2) entity.Gesture {
	angle := math.Abs(mgl64.RadToDeg(math.Atan2(delta.X(), delta.Y())))
	switch {
	case angle <= jumpConeDeg:
		return entity.Jump{}
	case angle < lateralConeDeg && delta.Y() > 0:
		return entity.Jump{Lateral: horizontalSign(delta.X())}
	case delta.X() != 0:
		return entity.LaneChange{Direction: horizontalSign(delta.X())}
	default:
		return nil
	}
}

func horizontalSign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
