// Package gameover shows the run-lost screen.
package gameover

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Sammyverse0/Space-Hopper/internal/application/scene"
)

var colorBG = color.RGBA{46, 16, 22, 255}

// Scene waits for a tap and then restarts the run.
type Scene struct {
	loader   scene.Loader
	screenW  int
	screenH  int
	touchIDs []ebiten.TouchID // scratch
}

// New creates the game-over screen.
func New(loader scene.Loader, screenW, screenH int) *Scene {
	return &Scene{loader: loader, screenW: screenW, screenH: screenH}
}

// Update restarts the run on any tap (implements scene.Scene).
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

// Draw renders the game-over screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", s.screenW/2-30, s.screenH/2-20)
	ebitenutil.DebugPrintAt(screen, "Tap to retry", s.screenW/2-36, s.screenH/2+4)
}

// OnEnter is called when entering this scene
func (s *Scene) OnEnter() {}

// OnExit is called when leaving this scene
func (s *Scene) OnExit() {}
