package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

func sampleAt(phase entity.TouchPhase, x, y float64) entity.PointerSample {
	return entity.PointerSample{Position: mgl64.Vec2{x, y}, Phase: phase}
}

func TestNewGestureDetector(t *testing.T) {
	d := NewGestureDetector(80, LaneClassifier{})

	require.NotNil(t, d)
	assert.Equal(t, 80.0, d.threshold)
	assert.False(t, d.active)
}

func TestGestureDetector_Feed(t *testing.T) {
	t.Run("right swipe changes lane", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		assert.Nil(t, d.Feed(sampleAt(entity.TouchBegan, 0, 0)))
		g := d.Feed(sampleAt(entity.TouchMoved, 150, 0))
		assert.Equal(t, entity.LaneChange{Direction: 1}, g)
	})

	t.Run("swipe below threshold is nothing", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchMoved, 60, 0)))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchEnded, 99, 0)))
	})

	t.Run("threshold is measured from the press point", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 500, 300))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchMoved, 560, 300)))
		g := d.Feed(sampleAt(entity.TouchMoved, 620, 300))
		assert.Equal(t, entity.LaneChange{Direction: 1}, g)
	})

	t.Run("one gesture per drag", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		g := d.Feed(sampleAt(entity.TouchMoved, 150, 0))
		require.Equal(t, entity.LaneChange{Direction: 1}, g)

		// The same drag keeps moving; the session is already closed.
		assert.Nil(t, d.Feed(sampleAt(entity.TouchMoved, 400, 0)))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchEnded, 500, 0)))
	})

	t.Run("session re-arms on the next press", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		d.Feed(sampleAt(entity.TouchMoved, 150, 0))
		d.Feed(sampleAt(entity.TouchEnded, 150, 0))

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		g := d.Feed(sampleAt(entity.TouchMoved, 0, 150))
		assert.Equal(t, entity.Jump{}, g)
	})

	t.Run("unmatched long swipe keeps the session armed", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		// A long downward drag matches nothing in the lane policy, but the
		// finger is still down; dragging back up must still fire.
		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchMoved, 0, -150)))
		g := d.Feed(sampleAt(entity.TouchMoved, 0, 120))
		assert.Equal(t, entity.Jump{}, g)
	})

	t.Run("ended closes the session even without a gesture", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchEnded, 0, -150)))
		assert.False(t, d.active)
	})

	t.Run("moved without a press does nothing", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		assert.Nil(t, d.Feed(sampleAt(entity.TouchMoved, 300, 0)))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchEnded, 300, 0)))
	})

	t.Run("none phase does nothing", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		assert.Nil(t, d.Feed(sampleAt(entity.TouchNone, 300, 0)))
		assert.True(t, d.active)
	})

	t.Run("classification on the ended sample", func(t *testing.T) {
		d := NewGestureDetector(100, LaneClassifier{})

		d.Feed(sampleAt(entity.TouchBegan, 0, 0))
		d.Feed(sampleAt(entity.TouchMoved, 40, 0))
		g := d.Feed(sampleAt(entity.TouchEnded, 150, 0))
		assert.Equal(t, entity.LaneChange{Direction: 1}, g)
	})
}

func TestGestureDetector_Reset(t *testing.T) {
	d := NewGestureDetector(100, LaneClassifier{})

	d.Feed(sampleAt(entity.TouchBegan, 0, 0))
	d.Reset()
	assert.Nil(t, d.Feed(sampleAt(entity.TouchMoved, 300, 0)))
}

func TestLaneClassifier(t *testing.T) {
	tests := []struct {
		name  string
		delta mgl64.Vec2
		want  entity.Gesture
	}{
		{
			name:  "horizontal right",
			delta: mgl64.Vec2{150, 0},
			want:  entity.LaneChange{Direction: 1},
		},
		{
			name:  "horizontal left with drift",
			delta: mgl64.Vec2{-150, 20},
			want:  entity.LaneChange{Direction: -1},
		},
		{
			name:  "mostly up",
			delta: mgl64.Vec2{10, 150},
			want:  entity.Jump{},
		},
		{
			name:  "straight down",
			delta: mgl64.Vec2{0, -150},
			want:  nil,
		},
		{
			name:  "perfect diagonal down",
			delta: mgl64.Vec2{150, -150},
			want:  nil,
		},
		{
			name:  "perfect diagonal up favors jump",
			delta: mgl64.Vec2{150, 150},
			want:  entity.Jump{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LaneClassifier{}.Classify(tt.delta))
		})
	}
}

func TestGravityClassifier(t *testing.T) {
	tests := []struct {
		name  string
		delta mgl64.Vec2
		want  entity.Gesture
	}{
		{
			name:  "straight up",
			delta: mgl64.Vec2{0, 100},
			want:  entity.Jump{},
		},
		{
			name:  "inside the jump cone",
			delta: mgl64.Vec2{70, 100},
			want:  entity.Jump{},
		},
		{
			name:  "just inside the jump cone",
			delta: mgl64.Vec2{99, 100},
			want:  entity.Jump{},
		},
		{
			name:  "just outside the jump cone",
			delta: mgl64.Vec2{105, 100},
			want:  entity.Jump{Lateral: 1},
		},
		{
			name:  "upper right diagonal",
			delta: mgl64.Vec2{100, 30},
			want:  entity.Jump{Lateral: 1},
		},
		{
			name:  "upper left diagonal",
			delta: mgl64.Vec2{-100, 30},
			want:  entity.Jump{Lateral: -1},
		},
		{
			name:  "flat right flick degrades to lane change",
			delta: mgl64.Vec2{100, 0},
			want:  entity.LaneChange{Direction: 1},
		},
		{
			name:  "downward right flick degrades to lane change",
			delta: mgl64.Vec2{100, -30},
			want:  entity.LaneChange{Direction: 1},
		},
		{
			name:  "downward diagonal is never a jump",
			delta: mgl64.Vec2{100, -100},
			want:  entity.LaneChange{Direction: 1},
		},
		{
			name:  "straight down",
			delta: mgl64.Vec2{0, -100},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GravityClassifier{}.Classify(tt.delta))
		})
	}
}
