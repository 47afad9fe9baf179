package playing

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// PointerDriver turns ebiten mouse and touch input into one pointer sample
// per frame. Touches win over the mouse when both are present; only the
// first touch of a drag is tracked until it releases. Window coordinates are
// y-down, samples are y-up, so y is flipped against the screen height here
// and nowhere else.
type PointerDriver struct {
	screenH     int
	touchActive bool
	activeID    ebiten.TouchID
	touchIDs    []ebiten.TouchID // scratch
}

// NewPointerDriver creates a driver for a window of the given height.
func NewPointerDriver(screenH int) *PointerDriver {
	return &PointerDriver{screenH: screenH}
}

// Sample reads the pointer state for the current frame.
func (d *PointerDriver) Sample() entity.PointerSample {
	if sample, ok := d.sampleTouch(); ok {
		return sample
	}
	return d.sampleMouse()
}

func (d *PointerDriver) sampleTouch() (entity.PointerSample, bool) {
	if !d.touchActive {
		d.touchIDs = inpututil.AppendJustPressedTouchIDs(d.touchIDs[:0])
		if len(d.touchIDs) == 0 {
			return entity.PointerSample{}, false
		}
		d.activeID = d.touchIDs[0]
		d.touchActive = true
		x, y := ebiten.TouchPosition(d.activeID)
		return entity.PointerSample{Position: d.flip(x, y), Phase: entity.TouchBegan}, true
	}

	if inpututil.IsTouchJustReleased(d.activeID) {
		d.touchActive = false
		// The release position is only available from the previous tick.
		x, y := inpututil.TouchPositionInPreviousTick(d.activeID)
		return entity.PointerSample{Position: d.flip(x, y), Phase: entity.TouchEnded}, true
	}

	x, y := ebiten.TouchPosition(d.activeID)
	return entity.PointerSample{Position: d.flip(x, y), Phase: entity.TouchMoved}, true
}

func (d *PointerDriver) sampleMouse() entity.PointerSample {
	x, y := ebiten.CursorPosition()
	pos := d.flip(x, y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return entity.PointerSample{Position: pos, Phase: entity.TouchBegan}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		return entity.PointerSample{Position: pos, Phase: entity.TouchEnded}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return entity.PointerSample{Position: pos, Phase: entity.TouchMoved}
	default:
		return entity.PointerSample{Position: pos, Phase: entity.TouchNone}
	}
}

func (d *PointerDriver) flip(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{float64(x), float64(d.screenH - y)}
}
