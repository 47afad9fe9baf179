package state

// GameState represents the current state of a run
type GameState int

const (
	StateIdle GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}
