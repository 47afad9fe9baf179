package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

type fakeGeometry struct {
	sources  []entity.Source
	triggers []entity.Trigger
}

func (f *fakeGeometry) Candidates(tag string) []entity.Source { return f.sources }
func (f *fakeGeometry) Triggers() []entity.Trigger            { return f.triggers }

type fakePoseSource struct {
	pose entity.Pose
}

func (f *fakePoseSource) Pose() entity.Pose { return f.pose }

func triggerAt(tag string, center, extent mgl64.Vec3) entity.Trigger {
	return entity.Trigger{ID: uuid.New(), Tag: tag, Center: center, Extent: extent}
}

func TestNewContactSensor(t *testing.T) {
	geo := &fakeGeometry{}
	reactor := NewContactReactor(&fakeReceiver{}, &fakeLoader{}, createTestReactorConfig(), nil)
	s := NewContactSensor(geo, reactor, &fakePoseSource{}, "GravitySource", 0.5)

	require.NotNil(t, s)
	assert.False(t, s.touching)
}

func TestContactSensor_Surfaces(t *testing.T) {
	newSurfaceSensor := func() (*ContactSensor, *fakePoseSource, *fakeReceiver) {
		geo := &fakeGeometry{sources: []entity.Source{sourceAt(0, 0, 0, 5)}}
		recv := &fakeReceiver{}
		reactor := NewContactReactor(recv, &fakeLoader{}, createTestReactorConfig(), nil)
		pose := &fakePoseSource{pose: entity.NewPose(mgl64.Vec3{0, 10, 0})}
		return NewContactSensor(geo, reactor, pose, "GravitySource", 0.5), pose, recv
	}

	t.Run("contact lifecycle begin sustained end", func(t *testing.T) {
		s, pose, recv := newSurfaceSensor()

		s.Update(0.1)
		assert.Zero(t, recv.grounds)

		pose.pose = entity.NewPose(mgl64.Vec3{0, 5.3, 0})
		s.Update(0.1)
		assert.Equal(t, 1, recv.grounds)

		s.Update(0.1)
		assert.Equal(t, 2, recv.grounds)

		pose.pose = entity.NewPose(mgl64.Vec3{0, 6, 0})
		s.Update(0.1)
		assert.Equal(t, 1, recv.ungrounds)

		s.Update(0.1)
		assert.Equal(t, 2, recv.grounds)
		assert.Equal(t, 1, recv.ungrounds)
	})

	t.Run("touch distance includes the player radius", func(t *testing.T) {
		s, pose, recv := newSurfaceSensor()

		pose.pose = entity.NewPose(mgl64.Vec3{0, 5.5, 0})
		s.Update(0.1)
		assert.Equal(t, 1, recv.grounds)
	})

	t.Run("any source in the set counts", func(t *testing.T) {
		geo := &fakeGeometry{sources: []entity.Source{
			sourceAt(100, 0, 0, 5),
			sourceAt(0, 0, 0, 5),
		}}
		recv := &fakeReceiver{}
		reactor := NewContactReactor(recv, &fakeLoader{}, createTestReactorConfig(), nil)
		pose := &fakePoseSource{pose: entity.NewPose(mgl64.Vec3{0, 5, 0})}
		s := NewContactSensor(geo, reactor, pose, "GravitySource", 0.5)

		s.Update(0.1)
		assert.Equal(t, 1, recv.grounds)
	})
}

func TestContactSensor_Triggers(t *testing.T) {
	newTriggerSensor := func(triggers ...entity.Trigger) (*ContactSensor, *fakePoseSource, *fakeLoader) {
		geo := &fakeGeometry{triggers: triggers}
		loader := &fakeLoader{}
		reactor := NewContactReactor(nil, loader, createTestReactorConfig(), nil)
		pose := &fakePoseSource{pose: entity.NewPose(mgl64.Vec3{0, 0, 0})}
		return NewContactSensor(geo, reactor, pose, "GravitySource", 0.5), pose, loader
	}

	t.Run("enter fires exactly once per entry", func(t *testing.T) {
		s, pose, loader := newTriggerSensor(
			triggerAt("GameOver", mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1}))

		s.Update(0.1)
		assert.Empty(t, loader.scenes)

		pose.pose = entity.NewPose(mgl64.Vec3{0, 0, 10})
		s.Update(0.1)
		assert.Equal(t, []string{"GameOver"}, loader.scenes)

		// Staying inside does not refire.
		s.Update(0.1)
		s.Update(0.1)
		assert.Equal(t, []string{"GameOver"}, loader.scenes)
	})

	t.Run("leaving and re-entering fires again", func(t *testing.T) {
		s, pose, loader := newTriggerSensor(
			triggerAt("GameOver", mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1}))

		pose.pose = entity.NewPose(mgl64.Vec3{0, 0, 10})
		s.Update(0.1)
		pose.pose = entity.NewPose(mgl64.Vec3{0, 0, 20})
		s.Update(0.1)
		pose.pose = entity.NewPose(mgl64.Vec3{0, 0, 10})
		s.Update(0.1)
		assert.Equal(t, []string{"GameOver", "GameOver"}, loader.scenes)
	})

	t.Run("win trigger routes to the win scene", func(t *testing.T) {
		s, pose, loader := newTriggerSensor(
			triggerAt("WinTrigger", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}))

		pose.pose = entity.NewPose(mgl64.Vec3{1, 1, 1})
		s.Update(0.1)
		assert.Equal(t, []string{"WinScene"}, loader.scenes)
	})

	t.Run("overlapping triggers fire independently", func(t *testing.T) {
		s, pose, loader := newTriggerSensor(
			triggerAt("GameOver", mgl64.Vec3{0, 0, 10}, mgl64.Vec3{3, 3, 3}),
			triggerAt("WinTrigger", mgl64.Vec3{0, 0, 12}, mgl64.Vec3{3, 3, 3}))

		pose.pose = entity.NewPose(mgl64.Vec3{0, 0, 11})
		s.Update(0.1)
		assert.Equal(t, []string{"GameOver", "WinScene"}, loader.scenes)
	})
}
