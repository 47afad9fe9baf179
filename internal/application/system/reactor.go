package system

import "go.uber.org/zap"

// Scene names requested on terminal triggers.
const (
	sceneGameOver = "GameOver"
	sceneWin      = "WinScene"
)

// SceneLoader is the outward face of a terminal outcome: the reactor only
// ever requests a scene by name and never observes the result.
type SceneLoader interface {
	LoadScene(name string)
}

// SurfaceReceiver is the controller-side contract for surface capture. Only
// the planetary model implements it; the lane model has no surfaces and
// passes nil.
type SurfaceReceiver interface {
	Ground()
	Unground()
}

// ReactorConfig names the world tags the reactor matches exactly. An empty
// tag matches nothing.
type ReactorConfig struct {
	SurfaceTag  string
	GameOverTag string
	WinTag      string
}

// ContactReactor translates contact and trigger events into state-machine
// side effects. Tags filter by exact string match; anything else is a no-op,
// never an error.
type ContactReactor struct {
	receiver SurfaceReceiver
	loader   SceneLoader
	cfg      ReactorConfig
	log      *zap.Logger
}

// NewContactReactor creates a reactor. receiver may be nil when the model
// has no attachable surfaces; logger may be nil.
func NewContactReactor(receiver SurfaceReceiver, loader SceneLoader, cfg ReactorConfig, log *zap.Logger) *ContactReactor {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactReactor{receiver: receiver, loader: loader, cfg: cfg, log: log}
}

// OnContactBegin fires when the sensor first sees surface contact.
func (r *ContactReactor) OnContactBegin(tag string) {
	r.capture(tag)
}

// OnContactSustained fires every tick contact persists. Grounding on
// sustained contact as well as begin means a body that was already touching
// when the run started is still captured.
func (r *ContactReactor) OnContactSustained(tag string) {
	r.capture(tag)
}

// OnContactEnd fires when surface contact is lost.
func (r *ContactReactor) OnContactEnd(tag string) {
	if r.receiver == nil || tag == "" || tag != r.cfg.SurfaceTag {
		return
	}
	r.receiver.Unground()
}

// OnTriggerEnter fires once per entry into a trigger box. Terminal tags
// request their scene; unknown tags fall through silently.
func (r *ContactReactor) OnTriggerEnter(tag string) {
	if tag == "" {
		return
	}
	switch tag {
	case r.cfg.GameOverTag:
		r.log.Info("run lost", zap.String("tag", tag))
		r.loader.LoadScene(sceneGameOver)
	case r.cfg.WinTag:
		r.log.Info("run won", zap.String("tag", tag))
		r.loader.LoadScene(sceneWin)
	}
}

func (r *ContactReactor) capture(tag string) {
	if r.receiver == nil || tag == "" || tag != r.cfg.SurfaceTag {
		return
	}
	r.receiver.Ground()
}
