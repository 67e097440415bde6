package overlay

import "scene-engine/internal/anim"

// Gate tracks whether the modal overlay is open and which entity it was opened for.
// While open, floating entity labels are hidden; entities keep animating.
type Gate struct {
	open     bool
	selected anim.ID
}

// New returns a closed gate.
func New() *Gate {
	return &Gate{}
}

// Open marks the overlay open for id. Opening again while open switches the selection.
func (g *Gate) Open(id anim.ID) {
	g.open = true
	g.selected = id
}

// Close hides the overlay and forgets the selection so the next Open never shows stale
// content. Closing a closed gate does nothing.
func (g *Gate) Close() {
	g.open = false
	g.selected = ""
}

// CloseFunc returns Close as a callback for the overlay consumer.
func (g *Gate) CloseFunc() func() {
	return g.Close
}

// IsOpen reports whether the overlay is open.
func (g *Gate) IsOpen() bool {
	return g.open
}

// Selected returns the entity the overlay is showing; ok is false when closed.
func (g *Gate) Selected() (id anim.ID, ok bool) {
	return g.selected, g.open
}

// LabelsVisible reports whether per-entity labels may be drawn.
func (g *Gate) LabelsVisible() bool {
	return !g.open
}
