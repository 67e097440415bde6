package selection

import "scene-engine/internal/anim"

// Event is emitted to the consumer every time a selectable entity is clicked.
type Event struct {
	ID anim.ID
}

// Consumer receives selection events (the modal overlay in the app).
type Consumer interface {
	Select(Event)
}

// ConsumerFunc adapts a plain function to Consumer.
type ConsumerFunc func(Event)

// Select calls f(ev).
func (f ConsumerFunc) Select(ev Event) { f(ev) }

// Gate is opened on every dispatched click.
type Gate interface {
	Open(id anim.ID)
}

// HoverVisual is told when an entity starts or stops being hovered.
type HoverVisual interface {
	SetHovered(id anim.ID, hovered bool)
}

// Registry tracks which selectable entity is hovered and routes clicks. At most one
// entity is hovered at any time.
type Registry struct {
	known    map[anim.ID]struct{}
	hovered  anim.ID
	hasHover bool

	visual   HoverVisual
	consumer Consumer
	gate     Gate
}

// NewRegistry returns a registry that accepts only the given ids. visual, consumer and
// gate may be nil.
func NewRegistry(ids []anim.ID, visual HoverVisual, consumer Consumer, gate Gate) *Registry {
	known := make(map[anim.ID]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return &Registry{known: known, visual: visual, consumer: consumer, gate: gate}
}

// Known reports whether id is selectable.
func (r *Registry) Known(id anim.ID) bool {
	_, ok := r.known[id]
	return ok
}

// Hovered returns the hovered id, if any.
func (r *Registry) Hovered() (anim.ID, bool) {
	return r.hovered, r.hasHover
}

// OnPointerEnter makes id the hovered entity, replacing any previous one.
func (r *Registry) OnPointerEnter(id anim.ID) {
	if !r.Known(id) {
		return
	}
	if r.hasHover && r.hovered == id {
		return
	}
	if r.hasHover {
		r.notify(r.hovered, false)
	}
	r.hovered, r.hasHover = id, true
	r.notify(id, true)
}

// OnPointerLeave clears the hover only when id is the hovered entity; a stale leave for
// an older entity changes nothing.
func (r *Registry) OnPointerLeave(id anim.ID) {
	if !r.hasHover || r.hovered != id {
		return
	}
	r.hovered, r.hasHover = "", false
	r.notify(id, false)
}

// OnClick dispatches a selection for id whether or not it is hovered.
func (r *Registry) OnClick(id anim.ID) {
	if !r.Known(id) {
		return
	}
	if r.gate != nil {
		r.gate.Open(id)
	}
	if r.consumer != nil {
		r.consumer.Select(Event{ID: id})
	}
}

func (r *Registry) notify(id anim.ID, hovered bool) {
	if r.visual != nil {
		r.visual.SetHovered(id, hovered)
	}
}
