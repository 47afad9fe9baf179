package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// WorldGeometry is the world-side lookup the sensor scans every tick.
type WorldGeometry interface {
	Candidates(tag string) []entity.Source
	Triggers() []entity.Trigger
}

// PoseSource hands the sensor the player position to test. Both locomotion
// controllers satisfy it.
type PoseSource interface {
	Pose() entity.Pose
}

// ContactSensor compares the player against surface spheres and trigger
// boxes once per tick and turns the differences into reactor events: contact
// begin/sustained/end at tag granularity and trigger enters exactly once per
// entry. It runs after the controller integrates, so the tested position is
// the tick's final one.
type ContactSensor struct {
	geometry WorldGeometry
	reactor  *ContactReactor
	source   PoseSource

	surfaceTag   string
	playerRadius float64

	touching bool
	inside   map[uuid.UUID]bool
}

// NewContactSensor creates a sensor. surfaceTag selects which wells count as
// walkable surfaces; playerRadius pads every contact test.
func NewContactSensor(geometry WorldGeometry, reactor *ContactReactor, source PoseSource, surfaceTag string, playerRadius float64) *ContactSensor {
	return &ContactSensor{
		geometry:     geometry,
		reactor:      reactor,
		source:       source,
		surfaceTag:   surfaceTag,
		playerRadius: playerRadius,
		inside:       make(map[uuid.UUID]bool),
	}
}

// Update runs one sensing pass. The dt parameter only satisfies the tick
// hook signature; sensing is positional.
func (s *ContactSensor) Update(_ float64) {
	pos := s.source.Pose().Position
	s.senseSurfaces(pos)
	s.senseTriggers(pos)
}

func (s *ContactSensor) senseSurfaces(pos mgl64.Vec3) {
	touching := false
	for _, src := range s.geometry.Candidates(s.surfaceTag) {
		if pos.Sub(src.Position).Len() <= src.Radius+s.playerRadius {
			touching = true
			break
		}
	}

	switch {
	case touching && !s.touching:
		s.reactor.OnContactBegin(s.surfaceTag)
	case touching && s.touching:
		s.reactor.OnContactSustained(s.surfaceTag)
	case !touching && s.touching:
		s.reactor.OnContactEnd(s.surfaceTag)
	}
	s.touching = touching
}

func (s *ContactSensor) senseTriggers(pos mgl64.Vec3) {
	for _, tr := range s.geometry.Triggers() {
		in := tr.Contains(pos)
		if in && !s.inside[tr.ID] {
			s.reactor.OnTriggerEnter(tr.Tag)
		}
		s.inside[tr.ID] = in
	}
}
