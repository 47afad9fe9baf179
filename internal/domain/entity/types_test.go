package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLocomotionStateString(t *testing.T) {
	tests := []struct {
		state    LocomotionState
		expected string
	}{
		{StateGrounded, "Grounded"},
		{StateAirborne, "Airborne"},
		{LocomotionState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestTouchPhaseString(t *testing.T) {
	tests := []struct {
		phase    TouchPhase
		expected string
	}{
		{TouchNone, "None"},
		{TouchBegan, "Began"},
		{TouchMoved, "Moved"},
		{TouchEnded, "Ended"},
		{TouchPhase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestTriggerContains(t *testing.T) {
	trigger := Trigger{
		Tag:    "WinTrigger",
		Center: mgl64.Vec3{10, 0, 0},
		Extent: mgl64.Vec3{2, 1, 3},
	}

	t.Run("contains points inside the box", func(t *testing.T) {
		assert.True(t, trigger.Contains(mgl64.Vec3{10, 0, 0}))
		assert.True(t, trigger.Contains(mgl64.Vec3{11, 0.5, -2}))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		assert.True(t, trigger.Contains(mgl64.Vec3{12, 1, 3}))
		assert.True(t, trigger.Contains(mgl64.Vec3{8, -1, -3}))
	})

	t.Run("rejects points outside any axis", func(t *testing.T) {
		assert.False(t, trigger.Contains(mgl64.Vec3{12.1, 0, 0}))
		assert.False(t, trigger.Contains(mgl64.Vec3{10, 1.1, 0}))
		assert.False(t, trigger.Contains(mgl64.Vec3{10, 0, -3.1}))
	})
}
