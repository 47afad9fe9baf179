package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/application/system"
	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
	"github.com/Sammyverse0/Space-Hopper/internal/ecs"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// Per-tick cost of the two locomotion models and the fixed-step loop.
// The gravity step is the interesting one: it re-resolves the nearest
// well every tick, so its cost scales with the well count.

const benchDT = 1.0 / 120.0

func benchLaneConfig() config.LaneConfig {
	return config.LaneConfig{
		LaneCount:       3,
		LaneOffset:      2.5,
		ForwardSpeed:    10,
		LaneChangeSpeed: 14,
		JumpDistance:    6,
		JumpHeight:      2.2,
		JumpDuration:    0.55,
	}
}

func benchGravityConfig() config.GravityConfig {
	return config.GravityConfig{
		RunSpeed:           8,
		JumpForce:          14,
		GravityForce:       28,
		RotationSpeed:      6,
		ActivationDistance: 50,
	}
}

func benchGravityController(wells int) *system.GravityController {
	w := ecs.NewWorld()
	for i := 0; i < wells; i++ {
		angle := 2 * math.Pi * float64(i) / float64(wells)
		w.CreateGravityWell(mgl64.Vec3{30 * math.Cos(angle), 30 * math.Sin(angle), 0}, 5, "GravitySource")
	}
	resolver := system.NewResolver(w, "GravitySource")
	return system.NewGravityController(benchGravityConfig(), resolver, mgl64.Vec3{0, 10, 0})
}

func BenchmarkLaneStep(b *testing.B) {
	ctrl := system.NewLaneController(benchLaneConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctrl.Step(nil, benchDT)
	}
}

func BenchmarkLaneStepJumping(b *testing.B) {
	ctrl := system.NewLaneController(benchLaneConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ctrl.State() == entity.StateGrounded {
			ctrl.Step(entity.Jump{}, benchDT)
			continue
		}
		ctrl.Step(nil, benchDT)
	}
}

func BenchmarkGravityStep(b *testing.B) {
	cases := []struct {
		name  string
		wells int
	}{
		{"1well", 1},
		{"8wells", 8},
		{"64wells", 64},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			ctrl := benchGravityController(tc.wells)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ctrl.Step(nil, benchDT)
			}
		})
	}
}

func BenchmarkLoopAdvance(b *testing.B) {
	ctrl := system.NewLaneController(benchLaneConfig())
	loop := system.NewLoop(system.LoopConfig{
		Detector:   system.NewGestureDetector(80, system.LaneClassifier{}),
		Controller: ctrl,
		FixedDT:    1.0 / 60.0,
	})
	// Start the run so Advance actually accumulates time.
	loop.OnFrame(entity.PointerSample{Position: mgl64.Vec2{100, 100}, Phase: entity.TouchBegan})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loop.Advance(1.0 / 60.0)
	}
}
