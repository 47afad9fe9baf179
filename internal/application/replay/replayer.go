package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// Replayer handles pointer playback from recorded trace data
type Replayer struct {
	data  TraceData
	frame int
}

// NewReplayer creates a new replayer from trace data
func NewReplayer(data TraceData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadTrace loads trace data from a file
func LoadTrace(filename string) (*TraceData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data TraceData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}

	return &data, nil
}

// GetSample returns the pointer sample for the current frame and advances
func (r *Replayer) GetSample() (entity.PointerSample, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.PointerSample{}, false
	}

	fs := r.data.Frames[r.frame]
	r.frame++

	return entity.PointerSample{
		Position: mgl64.Vec2{fs.X, fs.Y},
		Phase:    entity.TouchPhase(fs.Ph),
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Mode returns the locomotion mode the trace was recorded under
func (r *Replayer) Mode() string {
	return r.data.Mode
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestTrace creates trace data for testing (pointer held still)
func CreateTestTrace(frames int, x, y float64) TraceData {
	data := TraceData{
		Version:    "1.0",
		Mode:       "lane",
		SampleRate: 60,
		StartTime:  time.Now().Format(time.RFC3339),
		Frames:     make([]FrameSample, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameSample{
			F: i,
			X: x,
			Y: y,
		}
	}

	return data
}
