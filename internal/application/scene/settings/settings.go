// Package settings shows the active config summary.
package settings

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Sammyverse0/Space-Hopper/internal/application/scene"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

var colorBG = color.RGBA{24, 30, 44, 255}

// Scene renders the loaded, validated config so tuning runs can be checked
// at a glance. Tapping starts the run.
type Scene struct {
	config   *config.Config
	loader   scene.Loader
	lines    []string
	touchIDs []ebiten.TouchID // scratch
}

// New creates the settings screen for the given config.
func New(cfg *config.Config, loader scene.Loader) *Scene {
	return &Scene{
		config: cfg,
		loader: loader,
		lines:  summarize(cfg),
	}
}

func summarize(cfg *config.Config) []string {
	lines := []string{
		"SETTINGS",
		"",
		fmt.Sprintf("mode          %s", cfg.Mode),
		fmt.Sprintf("display       %dx%d @ %d fps",
			cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate),
		fmt.Sprintf("tick rate     %d", cfg.Simulation.TickRate),
		fmt.Sprintf("swipe         %.0f units", cfg.Swipe.Threshold),
	}

	switch cfg.Mode {
	case config.ModeGravity:
		g := cfg.Gravity
		lines = append(lines,
			fmt.Sprintf("run speed     %.1f", g.RunSpeed),
			fmt.Sprintf("jump force    %.1f", g.JumpForce),
			fmt.Sprintf("gravity       %.1f", g.GravityForce),
			fmt.Sprintf("realign       %.1f rad/s", g.RotationSpeed),
			fmt.Sprintf("activation    %.1f", g.ActivationDistance),
			fmt.Sprintf("planets       %d", len(cfg.Level.Gravity.Planets)),
		)
	default:
		l := cfg.Lane
		lines = append(lines,
			fmt.Sprintf("lanes         %d x %.1f", l.LaneCount, l.LaneOffset),
			fmt.Sprintf("forward       %.1f", l.ForwardSpeed),
			fmt.Sprintf("lane change   %.1f", l.LaneChangeSpeed),
			fmt.Sprintf("jump          %.1f over %.1f in %.2fs", l.JumpHeight, l.JumpDistance, l.JumpDuration),
			fmt.Sprintf("track         %.0f, %d obstacles", cfg.Level.Lane.TrackLength, len(cfg.Level.Lane.Obstacles)),
		)
	}

	lines = append(lines, "", "Tap to play")
	return lines
}

// Update starts the run on any tap (implements scene.Scene).
func (s *Scene) Update(_ float64) (scene.Scene, error) {
	if s.tapped() && s.loader != nil {
		if next := s.loader("Level1"); next != nil {
			return next, nil
		}
	}
	return nil, nil
}

func (s *Scene) tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	return len(s.touchIDs) > 0
}

// Draw renders the settings summary.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	for i, line := range s.lines {
		ebitenutil.DebugPrintAt(screen, line, 20, 20+i*16)
	}
}

// OnEnter is called when entering this scene
func (s *Scene) OnEnter() {}

// OnExit is called when leaving this scene
func (s *Scene) OnExit() {}
