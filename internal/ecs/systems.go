package ecs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpdateOrbits advances every orbit's phase and moves the owning entity's
// transform onto the new circle position. Entities without both an Orbit and
// a Transform are left alone.
func UpdateOrbits(w *World, dt float64) {
	for _, id := range w.order {
		orbit, ok := w.Orbit[id]
		if !ok {
			continue
		}
		if _, ok := w.Transform[id]; !ok {
			continue
		}
		orbit.Phase += orbit.AngularSpeed * dt
		w.Orbit[id] = orbit
		w.Transform[id] = Transform{Position: orbitOffset(orbit.Center, orbit.Radius, orbit.Phase)}
	}
}

func orbitOffset(center mgl64.Vec3, radius, phase float64) mgl64.Vec3 {
	return center.Add(mgl64.Vec3{
		math.Cos(phase) * radius,
		math.Sin(phase) * radius,
		0,
	})
}
