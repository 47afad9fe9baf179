package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Locomotion modes selectable in a config file.
const (
	ModeLane    = "lane"
	ModeGravity = "gravity"
)

// Trigger kinds placeable in a level.
const (
	TriggerKindWin      = "win"
	TriggerKindGameOver = "gameOver"
)

// Config is the root of a game config file. One file fully describes a run:
// display, simulation timing, swipe handling, the active locomotion model and
// the level layout. A loaded Config is validated once and never mutated.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Mode       string           `yaml:"mode"`
	Swipe      SwipeConfig      `yaml:"swipe"`
	Lane       LaneConfig       `yaml:"lane"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Tags       TagConfig        `yaml:"tags"`
	Level      LevelConfig      `yaml:"level"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// FrameDT returns the wall-clock duration of one display frame in seconds.
func (d DisplayConfig) FrameDT() float64 {
	return 1 / float64(d.Framerate)
}

type SimulationConfig struct {
	TickRate     int     `yaml:"tickRate"`
	PlayerRadius float64 `yaml:"playerRadius"`
}

// FixedDT returns the fixed physics timestep in seconds.
func (s SimulationConfig) FixedDT() float64 {
	return 1 / float64(s.TickRate)
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SwipeConfig tunes gesture detection. Threshold is the minimum pointer
// travel in screen units before a drag is classified as a swipe.
type SwipeConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// LaneConfig tunes the lane locomotion model.
type LaneConfig struct {
	LaneCount       int     `yaml:"laneCount"`
	LaneOffset      float64 `yaml:"laneOffset"`
	ForwardSpeed    float64 `yaml:"forwardSpeed"`
	LaneChangeSpeed float64 `yaml:"laneChangeSpeed"`
	JumpDistance    float64 `yaml:"jumpDistance"`
	JumpHeight      float64 `yaml:"jumpHeight"`
	JumpDuration    float64 `yaml:"jumpDuration"`
}

// GravityConfig tunes the planetary locomotion model.
type GravityConfig struct {
	RunSpeed           float64 `yaml:"runSpeed"`
	JumpForce          float64 `yaml:"jumpForce"`
	GravityForce       float64 `yaml:"gravityForce"`
	RotationSpeed      float64 `yaml:"rotationSpeed"`
	ActivationDistance float64 `yaml:"activationDistance"`
}

// TagConfig names the world tags the simulation reacts to.
type TagConfig struct {
	GravitySource string `yaml:"gravitySource"`
	GameOver      string `yaml:"gameOver"`
	Win           string `yaml:"win"`
}

type LevelConfig struct {
	Lane    LaneLevelConfig    `yaml:"lane"`
	Gravity GravityLevelConfig `yaml:"gravity"`
}

// LaneLevelConfig lays out a lane run: a straight track ending in a win
// wall, with obstacle boxes to dodge or jump over.
type LaneLevelConfig struct {
	TrackLength    float64          `yaml:"trackLength"`
	ObstacleExtent VecConfig        `yaml:"obstacleExtent"`
	Obstacles      []ObstacleConfig `yaml:"obstacles"`
}

type ObstacleConfig struct {
	Lane int     `yaml:"lane"`
	Z    float64 `yaml:"z"`
}

// GravityLevelConfig lays out a planetary run: a spawn point, planets
// (optionally orbiting) and win/game-over trigger boxes.
type GravityLevelConfig struct {
	Spawn    VecConfig            `yaml:"spawn"`
	Planets  []PlanetConfig       `yaml:"planets"`
	Triggers []LevelTriggerConfig `yaml:"triggers"`
}

type PlanetConfig struct {
	Position VecConfig    `yaml:"position"`
	Radius   float64      `yaml:"radius"`
	Orbit    *OrbitConfig `yaml:"orbit,omitempty"`
}

// OrbitConfig describes a circular orbit around the planet's configured
// position. Speed and Phase are in degrees for readable config files.
type OrbitConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Phase  float64 `yaml:"phase"`
}

type LevelTriggerConfig struct {
	Kind     string    `yaml:"kind"`
	Position VecConfig `yaml:"position"`
	Extent   VecConfig `yaml:"extent"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts the config vector to a math vector.
func (v VecConfig) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v VecConfig) positive() bool {
	return v.X > 0 && v.Y > 0 && v.Z > 0
}

// Validate checks the config for values the simulation cannot run with.
// Bad values are a startup failure, never a runtime one: everything past the
// loader assumes a valid, immutable config. Only the sections the active
// mode uses are checked.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display.screenWidth and display.screenHeight must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate < 1 {
		return fmt.Errorf("display.framerate must be at least 1, got %d", c.Display.Framerate)
	}
	if c.Simulation.TickRate < 1 {
		return fmt.Errorf("simulation.tickRate must be at least 1, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.PlayerRadius <= 0 {
		return fmt.Errorf("simulation.playerRadius must be positive, got %v", c.Simulation.PlayerRadius)
	}
	if c.Swipe.Threshold <= 0 {
		return fmt.Errorf("swipe.threshold must be positive, got %v", c.Swipe.Threshold)
	}
	if c.Tags.GameOver == "" || c.Tags.Win == "" {
		return fmt.Errorf("tags.gameOver and tags.win must not be empty")
	}

	switch c.Mode {
	case ModeLane:
		return c.validateLane()
	case ModeGravity:
		return c.validateGravity()
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeLane, ModeGravity, c.Mode)
	}
}

func (c *Config) validateLane() error {
	l := c.Lane
	if l.LaneCount < 1 {
		return fmt.Errorf("lane.laneCount must be at least 1, got %d", l.LaneCount)
	}
	if l.LaneOffset <= 0 {
		return fmt.Errorf("lane.laneOffset must be positive, got %v", l.LaneOffset)
	}
	if l.ForwardSpeed <= 0 {
		return fmt.Errorf("lane.forwardSpeed must be positive, got %v", l.ForwardSpeed)
	}
	if l.LaneChangeSpeed <= 0 {
		return fmt.Errorf("lane.laneChangeSpeed must be positive, got %v", l.LaneChangeSpeed)
	}
	if l.JumpDistance <= 0 {
		return fmt.Errorf("lane.jumpDistance must be positive, got %v", l.JumpDistance)
	}
	if l.JumpHeight <= 0 {
		return fmt.Errorf("lane.jumpHeight must be positive, got %v", l.JumpHeight)
	}
	if l.JumpDuration <= 0 {
		return fmt.Errorf("lane.jumpDuration must be positive, got %v", l.JumpDuration)
	}

	lvl := c.Level.Lane
	if lvl.TrackLength <= 0 {
		return fmt.Errorf("level.lane.trackLength must be positive, got %v", lvl.TrackLength)
	}
	if len(lvl.Obstacles) > 0 && !lvl.ObstacleExtent.positive() {
		return fmt.Errorf("level.lane.obstacleExtent must be positive on every axis")
	}
	for i, o := range lvl.Obstacles {
		if o.Lane < 0 || o.Lane >= l.LaneCount {
			return fmt.Errorf("level.lane.obstacles[%d].lane must be in [0,%d), got %d", i, l.LaneCount, o.Lane)
		}
		if o.Z <= 0 || o.Z >= lvl.TrackLength {
			return fmt.Errorf("level.lane.obstacles[%d].z must be inside the track (0,%v), got %v", i, lvl.TrackLength, o.Z)
		}
	}
	return nil
}

func (c *Config) validateGravity() error {
	g := c.Gravity
	if g.RunSpeed <= 0 {
		return fmt.Errorf("gravity.runSpeed must be positive, got %v", g.RunSpeed)
	}
	if g.JumpForce <= 0 {
		return fmt.Errorf("gravity.jumpForce must be positive, got %v", g.JumpForce)
	}
	if g.GravityForce <= 0 {
		return fmt.Errorf("gravity.gravityForce must be positive, got %v", g.GravityForce)
	}
	if g.RotationSpeed <= 0 {
		return fmt.Errorf("gravity.rotationSpeed must be positive, got %v", g.RotationSpeed)
	}
	if g.ActivationDistance <= 0 {
		return fmt.Errorf("gravity.activationDistance must be positive, got %v", g.ActivationDistance)
	}
	if c.Tags.GravitySource == "" {
		return fmt.Errorf("tags.gravitySource must not be empty in gravity mode")
	}

	for i, p := range c.Level.Gravity.Planets {
		if p.Radius <= 0 {
			return fmt.Errorf("level.gravity.planets[%d].radius must be positive, got %v", i, p.Radius)
		}
		if p.Orbit != nil && p.Orbit.Radius <= 0 {
			return fmt.Errorf("level.gravity.planets[%d].orbit.radius must be positive, got %v", i, p.Orbit.Radius)
		}
	}
	for i, tr := range c.Level.Gravity.Triggers {
		if tr.Kind != TriggerKindWin && tr.Kind != TriggerKindGameOver {
			return fmt.Errorf("level.gravity.triggers[%d].kind must be %q or %q, got %q",
				i, TriggerKindWin, TriggerKindGameOver, tr.Kind)
		}
		if !tr.Extent.positive() {
			return fmt.Errorf("level.gravity.triggers[%d].extent must be positive on every axis", i)
		}
	}
	return nil
}
