package input

import (
	"math"

	"scene-engine/internal/anim"
)

// KeyPoller turns per-frame key states into down/up edges. A key pressed and released
// between two polls produces no events.
type KeyPoller struct {
	out  Listener
	keys []Key
	down map[Key]bool
}

// NewKeyPoller returns a poller watching keys and reporting edges to out.
func NewKeyPoller(out Listener, keys []Key) *KeyPoller {
	return &KeyPoller{out: out, keys: keys, down: make(map[Key]bool)}
}

// Poll samples every watched key with isDown and reports the keys that changed.
func (p *KeyPoller) Poll(isDown func(Key) bool) {
	for _, k := range p.keys {
		now := isDown(k)
		switch {
		case now && !p.down[k]:
			p.down[k] = true
			p.out.HandleKeyDown(k)
		case !now && p.down[k]:
			delete(p.down, k)
			p.out.HandleKeyUp(k)
		}
	}
}

// ReleaseAll reports every key still down as released. Used when something else takes
// the keyboard, so no key stays held behind its back.
func (p *KeyPoller) ReleaseAll() {
	for _, k := range p.keys {
		if p.down[k] {
			delete(p.down, k)
			p.out.HandleKeyUp(k)
		}
	}
}

// DragThreshold is how far in pixels the pointer may travel between press and release
// for the release to still count as a click.
const DragThreshold = 4.0

// PointerSample is one frame of pointer state.
type PointerSample struct {
	Hit      anim.ID // entity under the pointer
	HasHit   bool
	DX, DY   float64 // motion since the previous frame, in pixels
	Pressed  bool    // primary button went down this frame
	Released bool    // primary button went up this frame
}

// PointerTracker turns per-frame hit tests and button edges into enter, leave and click
// events. Enter and leave always alternate; a click needs press and release over the
// same entity without a drag in between.
type PointerTracker struct {
	out      Listener
	hovered  anim.ID
	hovering bool
	pressed  bool
	pressID  anim.ID
	pressHit bool
	travel   float64
}

// NewPointerTracker returns a tracker reporting to out.
func NewPointerTracker(out Listener) *PointerTracker {
	return &PointerTracker{out: out}
}

// Update feeds one frame.
func (p *PointerTracker) Update(s PointerSample) {
	switch {
	case s.HasHit && (!p.hovering || s.Hit != p.hovered):
		if p.hovering {
			p.out.HandlePointerLeave(p.hovered)
		}
		p.hovered, p.hovering = s.Hit, true
		p.out.HandlePointerEnter(s.Hit)
	case !s.HasHit && p.hovering:
		p.out.HandlePointerLeave(p.hovered)
		p.hovered, p.hovering = "", false
	}

	if s.Pressed {
		p.pressed, p.pressID, p.pressHit, p.travel = true, s.Hit, s.HasHit, 0
	} else if p.pressed {
		p.travel += math.Hypot(s.DX, s.DY)
	}
	if s.Released && p.pressed {
		p.pressed = false
		if p.pressHit && s.HasHit && s.Hit == p.pressID && p.travel <= DragThreshold {
			p.out.HandlePointerClick(s.Hit)
		}
	}
}

// Dragging reports whether the button is down and the pointer has moved past DragThreshold.
func (p *PointerTracker) Dragging() bool {
	return p.pressed && p.travel > DragThreshold
}

// Clear leaves the hovered entity, if any, and cancels a pending press.
func (p *PointerTracker) Clear() {
	if p.hovering {
		p.out.HandlePointerLeave(p.hovered)
	}
	p.hovered, p.hovering = "", false
	p.pressed = false
}
