package system

import (
	"go.uber.org/zap"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// TickSystem is a hook the loop runs once per fixed step.
type TickSystem interface {
	Update(dt float64)
}

// TickFunc adapts a plain function to TickSystem.
type TickFunc func(dt float64)

// Update implements TickSystem.
func (f TickFunc) Update(dt float64) { f(dt) }

// MotionController is the locomotion state machine the loop advances. Both
// LaneController and GravityController satisfy it.
type MotionController interface {
	Step(gesture entity.Gesture, dt float64)
	Pose() entity.Pose
	State() entity.LocomotionState
}

// StartPrompt is shown while the simulation waits for the starting tap.
type StartPrompt interface {
	SetVisible(visible bool)
}

// AnimationFlags receives locomotion flag changes for the render side.
type AnimationFlags interface {
	SetRunning(running bool)
	SetJumping(jumping bool)
}

// LoopConfig wires a Loop. Detector, Controller and FixedDT are required;
// Prompt, Anim, the hook slices and Logger are optional.
type LoopConfig struct {
	Detector   *GestureDetector
	Controller MotionController
	FixedDT    float64
	Prompt     StartPrompt
	Anim       AnimationFlags
	Before     []TickSystem
	After      []TickSystem
	Logger     *zap.Logger
}

// Frame hitches longer than this are truncated before accumulation.
const maxFrameTime = 0.25

// Loop advances the simulation at a fixed timestep, decoupled from the
// render framerate. Pointer samples arrive through OnFrame at frame rate;
// recognized gestures wait in a one-slot buffer where the newest replaces an
// unconsumed older one, and each fixed step consumes at most one. The loop
// keeps the previous and current pose so the renderer can interpolate
// between them with Alpha.
//
// The loop starts idle: time does not accumulate and samples are not fed to
// the detector until the first touch begins the run. That starting tap is
// swallowed, it never becomes a gesture.
type Loop struct {
	detector   *GestureDetector
	controller MotionController
	fixedDT    float64
	prompt     StartPrompt
	anim       AnimationFlags
	before     []TickSystem
	after      []TickSystem
	log        *zap.Logger

	running     bool
	pending     entity.Gesture
	accumulator float64
	prevPose    entity.Pose
	currPose    entity.Pose
	lastState   entity.LocomotionState
}

// NewLoop creates a loop in the idle state.
func NewLoop(cfg LoopConfig) *Loop {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	pose := cfg.Controller.Pose()
	return &Loop{
		detector:   cfg.Detector,
		controller: cfg.Controller,
		fixedDT:    cfg.FixedDT,
		prompt:     cfg.Prompt,
		anim:       cfg.Anim,
		before:     cfg.Before,
		after:      cfg.After,
		log:        log,
		prevPose:   pose,
		currPose:   pose,
		lastState:  cfg.Controller.State(),
	}
}

// Running reports whether the starting tap has happened.
func (l *Loop) Running() bool { return l.running }

// OnFrame feeds one pointer sample. While idle a began sample starts the run
// and is consumed; afterwards samples flow to the gesture detector and any
// recognized gesture replaces the pending one.
func (l *Loop) OnFrame(sample entity.PointerSample) {
	if !l.running {
		if sample.Phase == entity.TouchBegan {
			l.start()
		}
		return
	}

	gesture := l.detector.Feed(sample)
	if gesture == nil {
		return
	}
	if l.pending != nil {
		l.log.Debug("pending gesture replaced")
	}
	l.pending = gesture
}

func (l *Loop) start() {
	l.running = true
	if l.prompt != nil {
		l.prompt.SetVisible(false)
	}
	if l.anim != nil {
		l.anim.SetRunning(true)
	}
	l.log.Info("run started")
}

// Advance accumulates frame time and runs as many fixed steps as fit,
// returning how many ran. Idle loops do not accumulate.
func (l *Loop) Advance(frameDT float64) int {
	if !l.running {
		return 0
	}
	if frameDT > maxFrameTime {
		frameDT = maxFrameTime
	}
	l.accumulator += frameDT

	ticks := 0
	for l.accumulator >= l.fixedDT {
		l.step()
		l.accumulator -= l.fixedDT
		ticks++
	}
	return ticks
}

func (l *Loop) step() {
	for _, s := range l.before {
		s.Update(l.fixedDT)
	}

	gesture := l.pending
	l.pending = nil

	l.prevPose = l.currPose
	l.controller.Step(gesture, l.fixedDT)

	for _, s := range l.after {
		s.Update(l.fixedDT)
	}

	// After hooks may ground or launch the body, so the pose and state are
	// read once they have all run.
	l.currPose = l.controller.Pose()

	state := l.controller.State()
	if state != l.lastState {
		if l.anim != nil {
			l.anim.SetJumping(state == entity.StateAirborne)
		}
		l.log.Debug("state transition",
			zap.Stringer("from", l.lastState),
			zap.Stringer("to", state))
		l.lastState = state
	}
}

// Alpha is the fraction of a fixed step left in the accumulator, in [0, 1).
// It is the interpolation factor between PrevPose and CurrentPose.
func (l *Loop) Alpha() float64 {
	return l.accumulator / l.fixedDT
}

// PrevPose returns the pose before the most recent fixed step.
func (l *Loop) PrevPose() entity.Pose { return l.prevPose }

// CurrentPose returns the pose after the most recent fixed step.
func (l *Loop) CurrentPose() entity.Pose { return l.currPose }

// RenderPose interpolates between the previous and current pose by Alpha.
func (l *Loop) RenderPose() entity.Pose {
	return l.prevPose.Lerp(l.currPose, l.Alpha())
}
