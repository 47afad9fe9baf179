package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// World holds the level's environment entities: gravity wells, trigger boxes
// and their orbits. The player is not an entity here; its pose belongs to the
// locomotion controller. IDs are random but iteration always follows creation
// order, which keeps simulation results independent of map ordering.
type World struct {
	order []uuid.UUID

	// Components
	Transform     map[uuid.UUID]Transform
	GravityWell   map[uuid.UUID]GravityWell
	TriggerVolume map[uuid.UUID]TriggerVolume
	Orbit         map[uuid.UUID]Orbit

	// Tags
	Tag map[uuid.UUID]string
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		Transform:     make(map[uuid.UUID]Transform),
		GravityWell:   make(map[uuid.UUID]GravityWell),
		TriggerVolume: make(map[uuid.UUID]TriggerVolume),
		Orbit:         make(map[uuid.UUID]Orbit),
		Tag:           make(map[uuid.UUID]string),
	}
}

// NewEntity registers a new unique entity ID at the end of iteration order.
func (w *World) NewEntity() uuid.UUID {
	id := uuid.New()
	w.order = append(w.order, id)
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id uuid.UUID) {
	delete(w.Transform, id)
	delete(w.GravityWell, id)
	delete(w.TriggerVolume, id)
	delete(w.Orbit, id)
	delete(w.Tag, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id uuid.UUID) bool {
	_, ok := w.Transform[id]
	return ok
}

// Entities returns all entity IDs in creation order.
func (w *World) Entities() []uuid.UUID {
	out := make([]uuid.UUID, len(w.order))
	copy(out, w.order)
	return out
}

// CreateGravityWell creates a tagged attractor with a solid surface sphere.
func (w *World) CreateGravityWell(position mgl64.Vec3, radius float64, tag string) uuid.UUID {
	id := w.NewEntity()
	w.Transform[id] = Transform{Position: position}
	w.GravityWell[id] = GravityWell{Radius: radius}
	w.Tag[id] = tag
	return id
}

// CreateTrigger creates a tagged axis-aligned trigger box.
func (w *World) CreateTrigger(center, extent mgl64.Vec3, tag string) uuid.UUID {
	id := w.NewEntity()
	w.Transform[id] = Transform{Position: center}
	w.TriggerVolume[id] = TriggerVolume{Extent: extent}
	w.Tag[id] = tag
	return id
}

// Candidates returns snapshots of the gravity wells carrying the given tag,
// in creation order. The slice is freshly allocated; callers may keep it.
func (w *World) Candidates(tag string) []entity.Source {
	var out []entity.Source
	for _, id := range w.order {
		well, ok := w.GravityWell[id]
		if !ok || w.Tag[id] != tag {
			continue
		}
		out = append(out, entity.Source{
			ID:       id,
			Position: w.Transform[id].Position,
			Radius:   well.Radius,
		})
	}
	return out
}

// Triggers returns snapshots of all trigger boxes in creation order.
func (w *World) Triggers() []entity.Trigger {
	var out []entity.Trigger
	for _, id := range w.order {
		vol, ok := w.TriggerVolume[id]
		if !ok {
			continue
		}
		out = append(out, entity.Trigger{
			ID:     id,
			Tag:    w.Tag[id],
			Center: w.Transform[id].Position,
			Extent: vol.Extent,
		})
	}
	return out
}
