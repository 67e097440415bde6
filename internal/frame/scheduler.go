package frame

import "scene-engine/internal/input"

// Clock advances and reports animation time.
type Clock interface {
	Advance() float64
}

// Animator recomputes entity transforms for elapsed time t.
type Animator interface {
	Update(t float64)
}

// Router applies the intents queued since the previous tick and reports held directions.
type Router interface {
	Drain() input.DirectionSet
}

// Camera resolves the camera mode and movement for the tick.
type Camera interface {
	Update(held input.DirectionSet)
}

// Frame describes a completed tick.
type Frame struct {
	Index   uint64
	Elapsed float64
	Held    input.DirectionSet
}

// Scheduler runs one logical tick per rendered frame in a fixed order: clock, entities,
// input, camera, then the after-tick hooks in registration order. It is single-threaded;
// every call happens on the render loop.
type Scheduler struct {
	clock    Clock
	entities Animator
	router   Router
	camera   Camera
	hooks    []func(Frame)
	next     uint64
}

// New returns a scheduler over the given stages. Nil stages are skipped.
func New(clock Clock, entities Animator, router Router, camera Camera) *Scheduler {
	return &Scheduler{clock: clock, entities: entities, router: router, camera: camera}
}

// AfterTick registers fn to run at the end of every tick.
func (s *Scheduler) AfterTick(fn func(Frame)) {
	s.hooks = append(s.hooks, fn)
}

// Tick runs one tick and returns its frame.
func (s *Scheduler) Tick() Frame {
	f := Frame{Index: s.next}
	s.next++

	if s.clock != nil {
		f.Elapsed = s.clock.Advance()
	}
	if s.entities != nil {
		s.entities.Update(f.Elapsed)
	}
	if s.router != nil {
		f.Held = s.router.Drain()
	}
	if s.camera != nil {
		s.camera.Update(f.Held)
	}
	for _, fn := range s.hooks {
		fn(f)
	}
	return f
}

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() uint64 {
	return s.next
}
