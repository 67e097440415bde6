package input

import (
	"fmt"

	"scene-engine/internal/anim"
)

// Kind is the type of an Intent.
type Kind uint8

const (
	PointerEnter Kind = iota
	PointerLeave
	Click
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case PointerEnter:
		return "pointer-enter"
	case PointerLeave:
		return "pointer-leave"
	case Click:
		return "click"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Intent is one device event waiting for the next drain. Intents live for at most one tick.
type Intent struct {
	Kind   Kind
	Entity anim.ID // pointer kinds
	Key    Key     // key kinds
}

// Pointer receives relayed pointer intents (the selection registry).
type Pointer interface {
	OnPointerEnter(id anim.ID)
	OnPointerLeave(id anim.ID)
	OnClick(id anim.ID)
}

// Listener is what a device source calls with raw events. Pointer events carry the id the
// renderer's hit test resolved.
type Listener interface {
	HandleKeyDown(k Key)
	HandleKeyUp(k Key)
	HandlePointerEnter(id anim.ID)
	HandlePointerLeave(id anim.ID)
	HandlePointerClick(id anim.ID)
}

// Source is a device event source. Subscribe registers l and returns the function that
// deregisters it.
type Source interface {
	Subscribe(l Listener) (unsubscribe func())
}

// Subscription is a registered source listener. Release deregisters it; calling Release
// again does nothing.
type Subscription struct {
	unsubscribe func()
}

// Release deregisters the listener.
func (s *Subscription) Release() {
	if s == nil || s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
}

// Router turns device events into intents and, once per tick, applies them: key intents
// update the held-key state, pointer intents are relayed to the Pointer.
type Router struct {
	keys    KeyMap
	pointer Pointer
	queue   []Intent
	held    map[Key]struct{}
	subs    []*Subscription
}

// NewRouter returns a router using keys (DefaultKeyMap when nil) and relaying pointer
// intents to pointer (may be nil).
func NewRouter(keys KeyMap, pointer Pointer) *Router {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Router{
		keys:    keys,
		pointer: pointer,
		held:    make(map[Key]struct{}),
	}
}

// Attach subscribes the router to src. The returned subscription is also released by Close.
func (r *Router) Attach(src Source) *Subscription {
	sub := &Subscription{unsubscribe: src.Subscribe(r)}
	r.subs = append(r.subs, sub)
	return sub
}

// Close releases every source subscription and forgets pending intents and held keys.
func (r *Router) Close() {
	for _, sub := range r.subs {
		sub.Release()
	}
	r.subs = nil
	r.queue = r.queue[:0]
	clear(r.held)
}

// HandleKeyDown queues a key press. The Handle methods only enqueue; nothing changes
// until the next Drain.
func (r *Router) HandleKeyDown(k Key) { r.enqueue(Intent{Kind: KeyDown, Key: k}) }

func (r *Router) HandleKeyUp(k Key) { r.enqueue(Intent{Kind: KeyUp, Key: k}) }

func (r *Router) HandlePointerEnter(id anim.ID) { r.enqueue(Intent{Kind: PointerEnter, Entity: id}) }

func (r *Router) HandlePointerLeave(id anim.ID) { r.enqueue(Intent{Kind: PointerLeave, Entity: id}) }

func (r *Router) HandlePointerClick(id anim.ID) { r.enqueue(Intent{Kind: Click, Entity: id}) }

func (r *Router) enqueue(in Intent) {
	r.queue = append(r.queue, in)
}

// Pending returns the number of intents waiting for the next Drain.
func (r *Router) Pending() int {
	return len(r.queue)
}

// Drain applies every queued intent in arrival order, empties the queue, and returns the
// set of directions held afterwards. Intents queued by pointer callbacks during Drain
// wait for the next Drain.
func (r *Router) Drain() DirectionSet {
	pending := r.queue
	r.queue = nil
	for _, in := range pending {
		r.apply(in)
	}
	if r.queue == nil {
		r.queue = pending[:0]
	}
	return r.Held()
}

func (r *Router) apply(in Intent) {
	switch in.Kind {
	case KeyDown:
		if _, ok := r.keys[in.Key]; ok {
			r.held[in.Key] = struct{}{}
		}
	case KeyUp:
		delete(r.held, in.Key)
	case PointerEnter:
		if r.pointer != nil {
			r.pointer.OnPointerEnter(in.Entity)
		}
	case PointerLeave:
		if r.pointer != nil {
			r.pointer.OnPointerLeave(in.Entity)
		}
	case Click:
		if r.pointer != nil {
			r.pointer.OnClick(in.Entity)
		}
	}
}

// Held returns the directions whose keys are currently down.
func (r *Router) Held() DirectionSet {
	var s DirectionSet
	for k := range r.held {
		s = s.With(r.keys[k])
	}
	return s
}
