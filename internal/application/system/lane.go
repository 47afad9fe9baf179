package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// jumpDoneEpsilon absorbs accumulation error in the jump progress sum so a
// jump of N equal ticks completes on the Nth tick, not one late.
const jumpDoneEpsilon = 1e-9

// LaneController runs the lane locomotion model: constant forward travel on
// a fixed set of lanes, sideways steering between lane centers and timed
// sine-arc jumps. It is fully kinematic; the pose it owns is the player.
type LaneController struct {
	cfg config.LaneConfig

	pose  entity.Pose
	state entity.LocomotionState
	lane  int

	jumpStart    mgl64.Vec3
	jumpEnd      mgl64.Vec3
	jumpProgress float64
}

// NewLaneController creates a grounded controller on the middle lane at the
// track origin.
func NewLaneController(cfg config.LaneConfig) *LaneController {
	lane := cfg.LaneCount / 2
	return &LaneController{
		cfg:   cfg,
		pose:  entity.NewPose(mgl64.Vec3{laneWorldX(lane, cfg.LaneCount, cfg.LaneOffset), 0, 0}),
		state: entity.StateGrounded,
		lane:  lane,
	}
}

// Pose returns the player pose after the latest tick.
func (c *LaneController) Pose() entity.Pose {
	return c.pose
}

// State returns the current locomotion state.
func (c *LaneController) State() entity.LocomotionState {
	return c.state
}

// Lane returns the current lane index.
func (c *LaneController) Lane() int {
	return c.lane
}

// LaneX returns the world X of a lane's center line.
func (c *LaneController) LaneX(lane int) float64 {
	return laneWorldX(lane, c.cfg.LaneCount, c.cfg.LaneOffset)
}

// Step integrates one fixed tick. gesture may be nil.
func (c *LaneController) Step(gesture entity.Gesture, dt float64) {
	c.apply(gesture)
	switch c.state {
	case entity.StateGrounded:
		c.stepGrounded(dt)
	case entity.StateAirborne:
		c.stepAirborne(dt)
	}
}

// apply consumes a gesture. Gestures that are invalid in the current state
// (a jump while already airborne) are dropped without a trace; lane changes
// are always accepted and clamped to the outer lanes.
func (c *LaneController) apply(gesture entity.Gesture) {
	switch g := gesture.(type) {
	case entity.LaneChange:
		c.lane = clampLane(c.lane+g.Direction, c.cfg.LaneCount)
	case entity.Jump:
		if c.state != entity.StateGrounded {
			return
		}
		c.beginJump()
	}
}

func (c *LaneController) beginJump() {
	start := c.pose.Position
	c.jumpStart = start
	c.jumpEnd = mgl64.Vec3{c.LaneX(c.lane), start.Y(), start.Z() + c.cfg.JumpDistance}
	c.jumpProgress = 0
	c.state = entity.StateAirborne
}

// stepGrounded steers toward the current lane center while advancing down
// the track. The lerp factor is deliberately unclamped; laneChangeSpeed*dt
// above 1 overshoots the target at low tick rates.
func (c *LaneController) stepGrounded(dt float64) {
	pos := c.pose.Position
	target := mgl64.Vec3{c.LaneX(c.lane), pos.Y(), pos.Z() + c.cfg.ForwardSpeed*dt}
	c.pose.Position = entity.LerpVec3(pos, target, c.cfg.LaneChangeSpeed*dt)
}

// stepAirborne advances the jump arc: base travel interpolates launch point
// to landing point while a half-sine lifts the Y axis. Progress accumulates
// unclamped; the completing tick lands exactly on the landing point no matter
// how far past 1 it overshot.
func (c *LaneController) stepAirborne(dt float64) {
	c.jumpProgress += dt / c.cfg.JumpDuration
	if c.jumpProgress >= 1-jumpDoneEpsilon {
		c.pose.Position = c.jumpEnd
		c.state = entity.StateGrounded
		return
	}

	pos := entity.LerpVec3(c.jumpStart, c.jumpEnd, c.jumpProgress)
	pos[1] += c.cfg.JumpHeight * math.Sin(math.Pi*c.jumpProgress)
	c.pose.Position = pos
}

func clampLane(lane, count int) int {
	if lane < 0 {
		return 0
	}
	if lane > count-1 {
		return count - 1
	}
	return lane
}

// laneWorldX maps a lane index to its center line: lanes sit laneOffset
// apart, centered about X = 0 for the middle lane of an odd count.
func laneWorldX(lane, count int, offset float64) float64 {
	return (float64(lane) - float64(count-1)/2) * offset
}
