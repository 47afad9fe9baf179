package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Sammyverse0/Space-Hopper/internal/application/replay"
	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// Recorder captures the pointer stream for later playback. One sample is
// recorded per display frame, starting with the idle frames before the
// starting tap so a trace replays the whole run from the prompt.
type Recorder struct {
	data      replay.TraceData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for the given mode and sample rate.
func NewRecorder(mode string, sampleRate int) *Recorder {
	return &Recorder{
		data: replay.TraceData{
			Version:    "1.0",
			Mode:       mode,
			SampleRate: sampleRate,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]replay.FrameSample, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's pointer sample
func (r *Recorder) RecordFrame(sample entity.PointerSample) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameSample{
		F:  r.frame,
		X:  sample.Position.X(),
		Y:  sample.Position.Y(),
		Ph: int(sample.Phase),
	})
	r.frame++
}

// Save writes the trace data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the trace data (for testing)
func (r *Recorder) GetData() replay.TraceData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("trace_%s.json", time.Now().Format("20060102_150405"))
}
