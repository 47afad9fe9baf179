package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Sammyverse0/Space-Hopper/internal/application/replay"
)

// openTrace loads a recorded pointer trace and checks it was captured in
// the mode the active config runs. A cross-mode trace would desync on the
// first swipe, so it is rejected up front.
func openTrace(path, mode string, logger *zap.Logger) (*replay.Replayer, error) {
	data, err := replay.LoadTrace(path)
	if err != nil {
		return nil, err
	}
	if data.Mode != "" && data.Mode != mode {
		return nil, fmt.Errorf("trace was recorded in %s mode, config runs %s", data.Mode, mode)
	}

	logger.Info("trace loaded",
		zap.String("file", path),
		zap.String("mode", data.Mode),
		zap.Int("frames", len(data.Frames)),
		zap.Int("sampleRate", data.SampleRate))
	return replay.NewReplayer(*data), nil
}
