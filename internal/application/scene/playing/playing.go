// Package playing provides the main gameplay scene.
//
// It owns the fixed-timestep loop and wires the pointer driver, gesture
// detector, the active locomotion controller and the contact pipeline
// together for one run. Terminal triggers hand control to the next scene
// through the injected loader.
package playing

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Sammyverse0/Space-Hopper/internal/application/replay"
	"github.com/Sammyverse0/Space-Hopper/internal/application/scene"
	"github.com/Sammyverse0/Space-Hopper/internal/application/state"
	"github.com/Sammyverse0/Space-Hopper/internal/application/system"
	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
	"github.com/Sammyverse0/Space-Hopper/internal/ecs"
	"github.com/Sammyverse0/Space-Hopper/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorPlayerAir   = color.RGBA{140, 220, 240, 255}
	colorShadow      = color.RGBA{18, 18, 32, 255}
	colorLane        = color.RGBA{60, 60, 80, 255}
	colorObstacle    = color.RGBA{200, 50, 50, 255}
	colorWinWall     = color.RGBA{255, 215, 0, 255}
	colorPlanet      = color.RGBA{80, 80, 100, 255}
	colorUpAxis      = color.RGBA{100, 100, 200, 255}
	colorAttachment  = color.RGBA{200, 200, 100, 128}
	colorLoseOverlay = color.RGBA{100, 0, 0, 180}
	colorWinOverlay  = color.RGBA{90, 70, 0, 180}
)

// Pixels per world unit for each mode's camera.
const (
	laneScale    = 36.0
	gravityScale = 10.0
)

const (
	// playerBoxSize is the runner's drawn size in world units (lane mode).
	playerBoxSize = 0.8
	// upAxisLength is the drawn up-axis length in world units (gravity mode).
	upAxisLength = 2.5
	// playerAnchorY places the runner at this fraction of the screen height.
	playerAnchorY = 0.72
)

// Options carries the optional trace hookups for a run.
type Options struct {
	// RecordPath enables pointer recording; the trace is saved there on exit.
	RecordPath string
	// Replayer, when set, replaces live pointer input with a recorded trace.
	Replayer *replay.Replayer
}

// Playing is the main gameplay scene
type Playing struct {
	config      *config.Config
	log         *zap.Logger
	loader      scene.Loader
	world       *ecs.World
	loop        *system.Loop
	laneCtrl    *system.LaneController
	gravityCtrl *system.GravityController
	pointer     *PointerDriver
	prompt      *startPrompt
	anim        *animationState
	state       state.GameState
	screenW     int
	screenH     int

	// Scene requested by the contact reactor, consumed at end of Update
	pendingScene string

	// Trace recording / playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
}

// New creates a new Playing scene from a validated config. The loader
// resolves the scenes terminal triggers ask for; a nil loader keeps the
// outcome on screen instead, which tests rely on.
func New(cfg *config.Config, log *zap.Logger, loader scene.Loader, opts Options) *Playing {
	if log == nil {
		log = zap.NewNop()
	}

	p := &Playing{
		config:         cfg,
		log:            log,
		loader:         loader,
		world:          system.BuildWorld(cfg),
		pointer:        NewPointerDriver(cfg.Display.ScreenHeight),
		prompt:         &startPrompt{visible: true},
		anim:           &animationState{},
		state:          state.StateIdle,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
		replayer:       opts.Replayer,
	}

	var (
		controller system.MotionController
		receiver   system.SurfaceReceiver
		classifier system.SwipeClassifier
		surfaceTag string
		before     []system.TickSystem
	)
	switch cfg.Mode {
	case config.ModeGravity:
		resolver := system.NewResolver(p.world, cfg.Tags.GravitySource)
		ctrl := system.NewGravityController(cfg.Gravity, resolver, cfg.Level.Gravity.Spawn.Vec3())
		p.gravityCtrl = ctrl
		controller = ctrl
		receiver = ctrl
		classifier = system.GravityClassifier{}
		surfaceTag = cfg.Tags.GravitySource
		before = append(before, system.TickFunc(func(dt float64) {
			ecs.UpdateOrbits(p.world, dt)
		}))
	default:
		ctrl := system.NewLaneController(cfg.Lane)
		p.laneCtrl = ctrl
		controller = ctrl
		classifier = system.LaneClassifier{}
	}

	reactor := system.NewContactReactor(receiver, p, system.ReactorConfig{
		SurfaceTag:  surfaceTag,
		GameOverTag: cfg.Tags.GameOver,
		WinTag:      cfg.Tags.Win,
	}, log)
	sensor := system.NewContactSensor(p.world, reactor, controller, surfaceTag, cfg.Simulation.PlayerRadius)

	p.loop = system.NewLoop(system.LoopConfig{
		Detector:   system.NewGestureDetector(cfg.Swipe.Threshold, classifier),
		Controller: controller,
		FixedDT:    cfg.Simulation.FixedDT(),
		Prompt:     p.prompt,
		Anim:       p.anim,
		Before:     before,
		After:      []system.TickSystem{sensor},
		Logger:     log,
	})

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(cfg.Mode, cfg.Display.Framerate)
		log.Info("recording enabled", zap.String("file", opts.RecordPath))
	}

	return p
}

// Update proceeds the run (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StateIdle, state.StatePlaying:
		p.updateRunning(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}

	// Terminal triggers requested a scene by name during Advance; hand over
	// once a loader is present, otherwise keep the outcome on screen.
	if p.pendingScene != "" && p.loader != nil {
		name := p.pendingScene
		p.pendingScene = ""
		if next := p.loader(name); next != nil {
			return next, nil
		}
	}

	return nil, nil
}

func (p *Playing) updateRunning(dt float64) {
	if p.loop.Running() && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save the trace so far without leaving the scene
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveTrace()
	}

	sample := p.nextSample()
	if p.recorder != nil {
		p.recorder.RecordFrame(sample)
	}

	p.loop.OnFrame(sample)
	if p.loop.Running() {
		p.state = state.StatePlaying
	}
	p.loop.Advance(dt)
}

// nextSample pulls one pointer sample from the trace when replaying,
// otherwise from the live driver.
func (p *Playing) nextSample() entity.PointerSample {
	if p.replayer != nil {
		sample, ok := p.replayer.GetSample()
		if !ok {
			// Trace exhausted, the pointer goes quiet
			return entity.PointerSample{}
		}
		return sample
	}
	return p.pointer.Sample()
}

// LoadScene receives the scene requests terminal triggers fire through the
// contact reactor. The request is latched and honored at the end of the
// current Update; the simulation itself never observes the transition.
func (p *Playing) LoadScene(name string) {
	p.pendingScene = name
	switch name {
	case "GameOver":
		p.state = state.StateGameOver
	case "WinScene":
		p.state = state.StateWin
	}
}

// saveTrace saves the recorded pointer trace to file
func (p *Playing) saveTrace() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save trace", zap.Error(err))
	} else {
		p.log.Info("trace saved",
			zap.String("file", filename),
			zap.Int("frames", p.recorder.FrameCount()))
	}
}

// Draw renders the run
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	switch p.config.Mode {
	case config.ModeGravity:
		p.drawGravityWorld(screen)
	default:
		p.drawLaneWorld(screen)
	}

	p.drawHUD(screen)

	if p.prompt.visible {
		ebitenutil.DebugPrintAt(screen, "TAP TO START", p.screenW/2-36, p.screenH/2-4)
	}

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawEndOverlay(screen, "GAME OVER", colorLoseOverlay)
	case state.StateWin:
		p.drawEndOverlay(screen, "YOU WIN", colorWinOverlay)
	}
}

// drawLaneWorld renders the lane run top-down: x across the screen, the
// track scrolling down past the anchored runner.
func (p *Playing) drawLaneWorld(screen *ebiten.Image) {
	pose := p.loop.RenderPose()
	px, py, pz := pose.Position.X(), pose.Position.Y(), pose.Position.Z()

	// Lane guide lines
	for lane := 0; lane < p.config.Lane.LaneCount; lane++ {
		x := p.laneScreenX(p.laneCtrl.LaneX(lane))
		ebitenutil.DrawLine(screen, x, 0, x, float64(p.screenH), colorLane)
	}

	// Obstacles and the win wall
	for _, tr := range p.world.Triggers() {
		w := tr.Extent.X() * 2 * laneScale
		h := tr.Extent.Z() * 2 * laneScale
		x := p.laneScreenX(tr.Center.X()) - w/2
		y := p.laneScreenY(pz, tr.Center.Z()) - h/2

		c := colorObstacle
		if tr.Tag == p.config.Tags.Win {
			c = colorWinWall
		}
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}

	// Shadow stays on the track, the runner lifts off it while jumping
	size := playerBoxSize * laneScale
	x := p.laneScreenX(px) - size/2
	y := p.laneScreenY(pz, pz) - size/2
	ebitenutil.DrawRect(screen, x, y, size, size, colorShadow)
	ebitenutil.DrawRect(screen, x, y-py*laneScale*0.6, size, size, p.playerColor())
}

// drawGravityWorld renders the planetary run side-on with the camera locked
// to the player. The up-axis line makes the post-jump re-alignment visible.
func (p *Playing) drawGravityWorld(screen *ebiten.Image) {
	pose := p.loop.RenderPose()
	cam := pose.Position

	for _, src := range p.world.Candidates(p.config.Tags.GravitySource) {
		c := p.gravityScreen(cam, src.Position)
		ebitenutil.DrawCircle(screen, c.X(), c.Y(), src.Radius*gravityScale, colorPlanet)
	}

	for _, tr := range p.world.Triggers() {
		c := colorObstacle
		if tr.Tag == p.config.Tags.Win {
			c = colorWinWall
		}
		p.drawBoxOutline(screen, cam, tr, c)
	}

	center := p.gravityScreen(cam, pose.Position)
	size := p.config.Simulation.PlayerRadius * 2 * gravityScale
	ebitenutil.DrawRect(screen, center.X()-size/2, center.Y()-size/2, size, size, p.playerColor())

	tip := p.gravityScreen(cam, pose.Position.Add(pose.Up().Mul(upAxisLength)))
	ebitenutil.DrawLine(screen, center.X(), center.Y(), tip.X(), tip.Y(), colorUpAxis)

	// Draw attachment debug (hold Tab)
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		if target, ok := p.gravityCtrl.Attachment(); ok {
			at := p.gravityScreen(cam, target.Position)
			ebitenutil.DrawLine(screen, center.X(), center.Y(), at.X(), at.Y(), colorAttachment)
		}
	}
}

func (p *Playing) drawBoxOutline(screen *ebiten.Image, cam mgl64.Vec3, tr entity.Trigger, c color.Color) {
	lo := p.gravityScreen(cam, tr.Center.Sub(tr.Extent))
	hi := p.gravityScreen(cam, tr.Center.Add(tr.Extent))

	ebitenutil.DrawLine(screen, lo.X(), lo.Y(), hi.X(), lo.Y(), c)
	ebitenutil.DrawLine(screen, hi.X(), lo.Y(), hi.X(), hi.Y(), c)
	ebitenutil.DrawLine(screen, hi.X(), hi.Y(), lo.X(), hi.Y(), c)
	ebitenutil.DrawLine(screen, lo.X(), hi.Y(), lo.X(), lo.Y(), c)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "Drag: Swipe | ESC: Pause | F5: Save Trace | Tab: Debug")

	pos := p.loop.CurrentPose().Position
	status := fmt.Sprintf("%s | %s | x %.1f y %.1f z %.1f",
		p.config.Mode, p.state, pos.X(), pos.Y(), pos.Z())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	if p.replayer != nil {
		progress := fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
		ebitenutil.DebugPrintAt(screen, progress, 10, p.screenH-35)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawEndOverlay(screen *ebiten.Image, text string, overlay color.RGBA) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-30, p.screenH/2-10)
}

func (p *Playing) playerColor() color.RGBA {
	if p.anim.jumping {
		return colorPlayerAir
	}
	return colorPlayer
}

func (p *Playing) laneScreenX(wx float64) float64 {
	return float64(p.screenW)/2 + wx*laneScale
}

// laneScreenY maps a track z to screen y relative to the anchored runner.
func (p *Playing) laneScreenY(playerZ, wz float64) float64 {
	anchor := float64(p.screenH) * playerAnchorY
	return anchor - (wz-playerZ)*laneScale
}

func (p *Playing) gravityScreen(cam, w mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{
		float64(p.screenW)/2 + (w.X()-cam.X())*gravityScale,
		float64(p.screenH)/2 - (w.Y()-cam.Y())*gravityScale,
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Info("run ready",
		zap.String("mode", p.config.Mode),
		zap.Int("tickRate", p.config.Simulation.TickRate))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveTrace()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// startPrompt tracks visibility of the tap-to-start banner.
type startPrompt struct {
	visible bool
}

func (s *startPrompt) SetVisible(visible bool) { s.visible = visible }

// animationState mirrors the locomotion flags the render side keys off.
type animationState struct {
	running bool
	jumping bool
}

func (a *animationState) SetRunning(running bool) { a.running = running }

func (a *animationState) SetJumping(jumping bool) { a.jumping = jumping }
