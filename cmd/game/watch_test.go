package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// waitPending polls the watcher until a reload lands or the timeout runs out.
func waitPending(t *testing.T, cw *ConfigWatcher, timeout time.Duration) (*config.Config, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cfg, ok := cw.Pending(); ok {
			return cfg, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func writeLaneConfig(t *testing.T) (string, []byte) {
	t.Helper()
	data, err := configFS.ReadFile("configs/lane.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lane.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}

func TestConfigWatcher_DeliversReload(t *testing.T) {
	path, data := writeLaneConfig(t)

	cw, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = cw.Close() }()

	patched := strings.Replace(string(data), "forwardSpeed: 10", "forwardSpeed: 12", 1)
	require.NotEqual(t, string(data), patched)
	require.NoError(t, os.WriteFile(path, []byte(patched), 0644))

	cfg, ok := waitPending(t, cw, 3*time.Second)
	require.True(t, ok, "edit should surface a reload")
	assert.Equal(t, 12.0, cfg.Lane.ForwardSpeed)

	_, ok = cw.Pending()
	assert.False(t, ok, "a reload is delivered once")
}

func TestConfigWatcher_RejectsInvalidEdit(t *testing.T) {
	path, data := writeLaneConfig(t)

	cw, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = cw.Close() }()

	require.NoError(t, os.WriteFile(path, []byte("mode: [unclosed"), 0644))
	time.Sleep(3 * watchDebounce)
	_, ok := cw.Pending()
	assert.False(t, ok, "invalid config never surfaces")

	// The watcher survives the bad edit, a later good one still lands.
	require.NoError(t, os.WriteFile(path, data, 0644))
	cfg, ok := waitPending(t, cw, 3*time.Second)
	require.True(t, ok)
	assert.Equal(t, config.ModeLane, cfg.Mode)
}

func TestConfigWatcher_CloseTwice(t *testing.T) {
	path, _ := writeLaneConfig(t)

	cw, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, cw.Close())
	assert.NoError(t, cw.Close())
}

func TestConfigWatcher_IgnoresSiblingFiles(t *testing.T) {
	path, _ := writeLaneConfig(t)

	cw, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = cw.Close() }()

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("mode: lane"), 0644))

	time.Sleep(3 * watchDebounce)
	_, ok := cw.Pending()
	assert.False(t, ok, "edits to other files in the directory are ignored")
}
