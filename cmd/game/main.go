package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Sammyverse0/Space-Hopper/internal/application/game"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene/gameover"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene/playing"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene/settings"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene/win"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/logging"
)

func main() {
	// Parse command line flags
	modeFlag := flag.String("mode", config.ModeLane, "Locomotion mode for the embedded levels (lane or gravity)")
	configFlag := flag.String("config", "", "Load a config file from disk instead of the embedded ones")
	recordFlag := flag.String("record", "", "Record the pointer trace to file (e.g., -record trace.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded pointer trace")
	watchFlag := flag.Bool("watch", false, "Restart the run when the -config file changes")
	settingsFlag := flag.Bool("settings", false, "Open the settings screen first")
	flag.Parse()

	cfg, cfgPath, err := loadConfig(*configFlag, *modeFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := playing.Options{RecordPath: *recordFlag}
	if *replayFlag != "" {
		replayer, err := openTrace(*replayFlag, cfg.Mode, logger)
		if err != nil {
			logger.Fatal("failed to open trace", zap.Error(err))
		}
		opts.Replayer = replayer
	}

	loader := newSceneLoader(cfg, logger, opts)

	first := "Level1"
	if *settingsFlag {
		first = "Settings"
	}

	g := game.New(loader(first), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(cfg.Display.FrameDT())

	var runnable ebiten.Game = g
	if *watchFlag {
		if cfgPath == "" {
			logger.Warn("-watch needs -config, embedded configs never change on disk")
		} else {
			watcher, err := NewConfigWatcher(cfgPath, logger)
			if err != nil {
				logger.Fatal("failed to watch config", zap.Error(err))
			}
			defer func() { _ = watcher.Close() }()
			runnable = &devReload{Game: g, watcher: watcher, logger: logger, opts: opts}
			logger.Info("watching config", zap.String("file", cfgPath))
		}
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Space Hopper")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(runnable); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the run config. An explicit -config path wins;
// otherwise the embedded file for the chosen mode is used. The returned
// path is empty for embedded configs, which have no file to watch.
func loadConfig(path, mode string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
		return cfg, path, err
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys).Load(mode + ".yaml")
	return cfg, "", err
}

// newSceneLoader builds the scene factory every scene shares. Scenes hand
// control back through it by name; unknown names resolve to nil and leave
// the current scene in place.
func newSceneLoader(cfg *config.Config, logger *zap.Logger, opts playing.Options) scene.Loader {
	var loader scene.Loader
	loader = func(name string) scene.Scene {
		switch name {
		case "Level1":
			if opts.Replayer != nil {
				// Every fresh run replays the trace from the start.
				opts.Replayer.Reset()
			}
			return playing.New(cfg, logger, loader, opts)
		case "GameOver":
			return gameover.New(loader, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
		case "WinScene":
			return win.New(loader, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
		case "Settings":
			return settings.New(cfg, loader)
		default:
			logger.Warn("unknown scene requested", zap.String("scene", name))
			return nil
		}
	}
	return loader
}
