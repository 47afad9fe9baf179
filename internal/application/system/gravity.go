package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// GravityController runs the planetary locomotion model. Airborne it is a
// dynamic body pulled toward the nearest attachment source; grounded it runs
// kinematically along the surface it stuck to. Grounding is never decided
// here: the contact reactor calls Ground and Unground when the sensor sees
// surface contact change.
type GravityController struct {
	cfg      config.GravityConfig
	resolver *Resolver

	body  entity.Body
	state entity.LocomotionState

	attachment   entity.AttachmentTarget
	attachmentOK bool
}

// NewGravityController creates a controller free-falling at spawn with
// identity orientation.
func NewGravityController(cfg config.GravityConfig, resolver *Resolver, spawn mgl64.Vec3) *GravityController {
	return &GravityController{
		cfg:      cfg,
		resolver: resolver,
		body:     entity.Body{Pose: entity.NewPose(spawn)},
		state:    entity.StateAirborne,
	}
}

// Pose returns the player pose after the latest tick.
func (c *GravityController) Pose() entity.Pose {
	return c.body.Pose
}

// State returns the current locomotion state.
func (c *GravityController) State() entity.LocomotionState {
	return c.state
}

// Body returns the full body, velocity and kinematic flag included.
func (c *GravityController) Body() entity.Body {
	return c.body
}

// Attachment returns the attachment resolved at the top of the latest tick.
func (c *GravityController) Attachment() (entity.AttachmentTarget, bool) {
	return c.attachment, c.attachmentOK
}

// Step integrates one fixed tick. gesture may be nil. The resolver is
// consulted exactly once, at the top, and the result is cached for the rest
// of the tick including reactor callbacks.
func (c *GravityController) Step(gesture entity.Gesture, dt float64) {
	c.attachment, c.attachmentOK = c.resolver.Resolve(c.body.Position)
	c.apply(gesture)
	switch c.state {
	case entity.StateGrounded:
		c.stepGrounded(dt)
	case entity.StateAirborne:
		c.stepAirborne(dt)
	}
}

// apply consumes a gesture. Lane changes mean nothing to this model and a
// jump while airborne is dropped; both disappear without a trace.
func (c *GravityController) apply(gesture entity.Gesture) {
	g, ok := gesture.(entity.Jump)
	if !ok || c.state != entity.StateGrounded {
		return
	}
	c.jump(g.Lateral)
}

// jump re-enables dynamic integration and kicks the body along local up,
// plus local right at half strength for diagonal swipes.
func (c *GravityController) jump(lateral int) {
	c.state = entity.StateAirborne
	c.body.Kinematic = false

	impulse := c.body.Up().Mul(c.cfg.JumpForce)
	if lateral != 0 {
		impulse = impulse.Add(c.body.Right().Mul(float64(lateral) * c.cfg.JumpForce / 2))
	}
	c.body.Velocity = c.body.Velocity.Add(impulse)
}

// stepGrounded runs along the surface. The sustained-contact snap in Ground
// keeps the heading tangent, so plain forward translation follows the
// curvature closely enough for the contact tolerance to absorb the drift.
// With no attachment in range there is no surface to run on; the body only
// keeps whatever velocity it had.
func (c *GravityController) stepGrounded(dt float64) {
	if !c.inRange() {
		c.drift(dt)
		return
	}
	c.body.Position = c.body.Position.Add(c.body.Forward().Mul(c.cfg.RunSpeed * dt))
}

// stepAirborne pulls the body toward the attachment and re-aligns local up
// away from it, both scaled by dt; the rotation lags on purpose. Out of
// range the body drifts on its prior velocity alone.
func (c *GravityController) stepAirborne(dt float64) {
	if c.inRange() {
		pull := c.attachment.Position.Sub(c.body.Position)
		if d := pull.Len(); d > 0 {
			dir := pull.Mul(1 / d)
			c.body.Velocity = c.body.Velocity.Add(dir.Mul(c.cfg.GravityForce * dt))
			c.slerpUpToward(dir.Mul(-1), dt)
		}
	}
	c.drift(dt)
}

// Ground is the reactor's surface-capture callback: snap orientation to the
// exact radial, kill all velocity and go kinematic. A separating contact is
// refused while airborne, otherwise the tick after a jump impulse would
// re-capture the body before it ever left the surface.
func (c *GravityController) Ground() {
	if c.state == entity.StateAirborne && c.separating() {
		return
	}
	if c.attachmentOK {
		out := c.body.Position.Sub(c.attachment.Position)
		if out.Len() > 0 {
			c.snapUpToward(out.Normalize())
		}
	}
	c.body.Velocity = mgl64.Vec3{}
	c.body.Kinematic = true
	c.state = entity.StateGrounded
}

// Unground is the reactor's contact-lost callback: back to dynamic flight.
func (c *GravityController) Unground() {
	c.body.Kinematic = false
	c.state = entity.StateAirborne
}

func (c *GravityController) inRange() bool {
	return c.attachmentOK && c.attachment.Distance <= c.cfg.ActivationDistance
}

func (c *GravityController) drift(dt float64) {
	c.body.Position = c.body.Position.Add(c.body.Velocity.Mul(dt))
}

func (c *GravityController) separating() bool {
	if !c.attachmentOK {
		return false
	}
	out := c.body.Position.Sub(c.attachment.Position)
	if out.Len() == 0 {
		return false
	}
	return c.body.Velocity.Dot(out.Normalize()) > 0
}

// slerpUpToward rotates orientation a fraction of the way toward aligning
// local up with the given world direction. The fraction follows the Lerp
// convention of clamping at 1.
func (c *GravityController) slerpUpToward(up mgl64.Vec3, dt float64) {
	target := mgl64.QuatBetweenVectors(c.body.Up(), up).Mul(c.body.Orientation)
	t := math.Min(c.cfg.RotationSpeed*dt, 1)
	c.body.Orientation = mgl64.QuatSlerp(c.body.Orientation, target, t).Normalize()
}

// snapUpToward aligns local up with the given world direction in one step,
// preserving as much of the current heading as the rotation allows.
func (c *GravityController) snapUpToward(up mgl64.Vec3) {
	c.body.Orientation = mgl64.QuatBetweenVectors(c.body.Up(), up).Mul(c.body.Orientation).Normalize()
}
