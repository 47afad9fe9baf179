package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/ecs"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// Half-sizes of the win wall closing a lane track.
const (
	winWallHalfHeight = 10.0
	winWallHalfDepth  = 1.0
)

// BuildWorld converts the level section of a validated config into a world.
// Lane levels become game-over boxes on the track plus a win wall across its
// end; gravity levels become tagged gravity wells, their orbits, and the
// configured trigger boxes.
func BuildWorld(cfg *config.Config) *ecs.World {
	w := ecs.NewWorld()
	switch cfg.Mode {
	case config.ModeLane:
		buildLaneLevel(w, cfg)
	case config.ModeGravity:
		buildGravityLevel(w, cfg)
	}
	return w
}

func buildLaneLevel(w *ecs.World, cfg *config.Config) {
	lvl := cfg.Level.Lane
	lane := cfg.Lane

	for _, o := range lvl.Obstacles {
		center := mgl64.Vec3{laneWorldX(o.Lane, lane.LaneCount, lane.LaneOffset), 0, o.Z}
		w.CreateTrigger(center, lvl.ObstacleExtent.Vec3(), cfg.Tags.GameOver)
	}

	// Wide enough to catch the player in any lane, tall enough mid-jump.
	halfWidth := float64(lane.LaneCount) * lane.LaneOffset
	w.CreateTrigger(
		mgl64.Vec3{0, 0, lvl.TrackLength},
		mgl64.Vec3{halfWidth, winWallHalfHeight, winWallHalfDepth},
		cfg.Tags.Win,
	)
}

func buildGravityLevel(w *ecs.World, cfg *config.Config) {
	lvl := cfg.Level.Gravity

	for _, p := range lvl.Planets {
		id := w.CreateGravityWell(p.Position.Vec3(), p.Radius, cfg.Tags.GravitySource)
		if p.Orbit == nil {
			continue
		}
		orbit := ecs.Orbit{
			Center:       p.Position.Vec3(),
			Radius:       p.Orbit.Radius,
			AngularSpeed: mgl64.DegToRad(p.Orbit.Speed),
			Phase:        mgl64.DegToRad(p.Orbit.Phase),
		}
		w.Orbit[id] = orbit
		w.Transform[id] = ecs.Transform{Position: orbit.PositionAt(orbit.Phase)}
	}

	for _, tr := range lvl.Triggers {
		tag := cfg.Tags.GameOver
		if tr.Kind == config.TriggerKindWin {
			tag = cfg.Tags.Win
		}
		w.CreateTrigger(tr.Position.Vec3(), tr.Extent.Vec3(), tag)
	}
}
