package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Sammyverse0/Space-Hopper/internal/application/game"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene/playing"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// watchDebounce is the quiet window after the last file event before the
// config is re-read. Editors fire several events per save.
const watchDebounce = 200 * time.Millisecond

// ConfigWatcher watches one config file and re-loads it when it changes.
// Invalid edits are logged and dropped, the last good config stays active.
// Reloads are handed over through Pending, which the game loop polls, so
// the simulation never sees a config change mid-tick.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *zap.Logger
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	pending *config.Config
}

// NewConfigWatcher starts watching the given config file. The parent
// directory is watched rather than the file itself because most editors
// replace the file on save.
func NewConfigWatcher(path string, logger *zap.Logger) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    path,
		logger:  logger,
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher. Safe to call more than once.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}

// Pending returns the most recent successfully reloaded config, once.
// Subsequent calls return false until the file changes again.
func (cw *ConfigWatcher) Pending() (*config.Config, bool) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cfg := cw.pending
	cw.pending = nil
	return cfg, cfg != nil
}

func (cw *ConfigWatcher) run() {
	var reload <-chan time.Time
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(cw.path) {
				continue
			}
			// Restart the quiet window on every event for the file.
			reload = time.After(watchDebounce)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Warn("config watch error", zap.Error(err))
		case <-reload:
			reload = nil
			cw.reload()
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := config.NewLoader(filepath.Dir(cw.path)).Load(filepath.Base(cw.path))
	if err != nil {
		cw.logger.Warn("config reload rejected", zap.Error(err))
		return
	}

	cw.mu.Lock()
	cw.pending = cfg
	cw.mu.Unlock()
	cw.logger.Info("config reloaded", zap.String("file", cw.path))
}

// devReload wraps the game and swaps in a freshly built run whenever the
// watched config file changes. Display geometry is fixed at startup; only
// the tick rates, tuning and level layout take effect on reload.
type devReload struct {
	*game.Game
	watcher *ConfigWatcher
	logger  *zap.Logger
	opts    playing.Options
}

func (d *devReload) Update() error {
	if cfg, ok := d.watcher.Pending(); ok {
		d.logger.Info("restarting run with new config", zap.String("mode", cfg.Mode))
		loader := newSceneLoader(cfg, d.logger, d.opts)
		ebiten.SetTPS(cfg.Display.Framerate)
		d.Game.SetDT(cfg.Display.FrameDT())
		d.Game.SetScene(loader("Level1"))
	}
	return d.Game.Update()
}
