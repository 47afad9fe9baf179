package replay

// FrameSample records the pointer state for a single display frame
type FrameSample struct {
	F  int     `json:"f"`            // Frame number
	X  float64 `json:"x"`            // Pointer x, screen units y-up
	Y  float64 `json:"y"`            // Pointer y
	Ph int     `json:"ph,omitempty"` // Touch phase (entity.TouchPhase)
}

// TraceData contains all data needed to replay a run. SampleRate is the
// cadence the frames were captured at, one per display frame.
type TraceData struct {
	Version    string        `json:"version"`
	Mode       string        `json:"mode"`
	SampleRate int           `json:"sampleRate"`
	StartTime  string        `json:"startTime"`
	Frames     []FrameSample `json:"frames"`
}
