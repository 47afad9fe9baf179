// Package scene defines the Scene interface for game screens.
//
// Each screen (playing, game over, win, settings) implements the Scene
// interface to handle its own update logic and rendering. Scenes refer to
// each other by name through a Loader so the packages stay decoupled.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen (playing, game over, win, settings).
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Loader resolves a scene name ("Level1", "GameOver", "WinScene", "Settings")
// to a freshly constructed Scene. Returns nil for unknown names.
type Loader func(name string) Scene
