package world

import (
	"errors"
	"fmt"
	"time"

	"scene-engine/internal/anim"
	"scene-engine/internal/camera"
	"scene-engine/internal/clock"
	"scene-engine/internal/frame"
	"scene-engine/internal/input"
	"scene-engine/internal/logger"
	"scene-engine/internal/orbit"
	"scene-engine/internal/overlay"
	"scene-engine/internal/sceneconfig"
	"scene-engine/internal/selection"
)

// ErrFreeMove is returned by operations that need the orbit controls while the keyboard
// owns the camera.
var ErrFreeMove = errors.New("camera is in free-move mode")

// Options configures New.
type Options struct {
	Now      func() time.Time   // time.Now when nil
	Consumer selection.Consumer // receives selection events; may be nil
	Log      *logger.Logger     // memory-only logger when nil
}

// World is the engine state of one scene, wired in tick order. Everything runs on the
// render loop goroutine.
type World struct {
	Config    *sceneconfig.Config
	Scene     *sceneconfig.Scene
	Clock     *clock.Clock
	Entities  *anim.Set
	Gate      *overlay.Gate
	Selection *selection.Registry
	Router    *input.Router
	Keys      input.KeyMap
	Camera    *camera.State
	Orbit     *orbit.Controls
	Rig       *camera.Rig
	Frames    *frame.Scheduler

	log  *logger.Logger
	home camera.State
}

// New builds the world described by cfg. Renderer hooks can be added with
// w.Frames.AfterTick; the orbit controls update is already registered.
func New(cfg *sceneconfig.Config, opts Options) (*World, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logger.NewAt("")
	}
	sc, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	keys, err := cfg.KeyMap()
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	set, err := anim.NewSet(sc.Entities...)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	w := &World{Config: cfg, Scene: sc, Entities: set, Keys: keys, log: opts.Log}
	w.Clock = clock.New(opts.Now, cfg.MaxStep())
	w.Gate = overlay.New()

	consumer := opts.Consumer
	w.Selection = selection.NewRegistry(set.Selectable(), set, selection.ConsumerFunc(func(ev selection.Event) {
		w.log.Logf("selected %s", ev.ID)
		if consumer != nil {
			consumer.Select(ev)
		}
	}), w.Gate)
	w.Router = input.NewRouter(keys, w.Selection)

	w.home = cfg.CameraState()
	state := w.home
	w.Camera = &state
	w.Orbit = orbit.New(w.Camera, cfg.OrbitSettings())
	rigOpts := cfg.RigOptions()
	rigOpts.OnModeChange = func(from, to camera.Mode) {
		w.log.Logf("camera %s -> %s", from, to)
	}
	w.Rig = camera.NewRig(w.Camera, w.Orbit, rigOpts)

	w.Frames = frame.New(w.Clock, w.Entities, w.Router, w.Rig)
	w.Frames.AfterTick(func(frame.Frame) { w.Orbit.Update() })
	return w, nil
}

// Tick runs one frame of the engine.
func (w *World) Tick() frame.Frame {
	return w.Frames.Tick()
}

// ResetCamera restores the configured camera pose. It is refused in free-move mode so the
// orbit controls never write the camera while the keyboard owns it.
func (w *World) ResetCamera() error {
	if w.Rig.Mode() != camera.Orbit {
		return ErrFreeMove
	}
	w.Orbit.Stop()
	*w.Camera = w.home
	return nil
}

// Section returns the overlay title and body for id.
func (w *World) Section(id anim.ID) (title, content string, ok bool) {
	s, ok := w.Config.Section(id)
	return s.Title, s.Content, ok
}

// Close releases every device subscription. Call on scene teardown.
func (w *World) Close() {
	w.Router.Close()
}
