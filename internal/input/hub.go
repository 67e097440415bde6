package input

import "scene-engine/internal/anim"

// Hub is a Source that fans device events out to its subscribers in subscription order.
// Device pollers write to a Hub; routers Attach to it.
type Hub struct {
	next      int
	listeners []hubEntry
}

type hubEntry struct {
	id int
	l  Listener
}

// Subscribe registers l. The returned function removes it and may be called more than once.
func (h *Hub) Subscribe(l Listener) func() {
	h.next++
	id := h.next
	h.listeners = append(h.listeners, hubEntry{id: id, l: l})
	return func() {
		for i, e := range h.listeners {
			if e.id == id {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribers.
func (h *Hub) Len() int {
	return len(h.listeners)
}

func (h *Hub) each(fn func(Listener)) {
	for _, e := range h.listeners {
		fn(e.l)
	}
}

func (h *Hub) HandleKeyDown(k Key) { h.each(func(l Listener) { l.HandleKeyDown(k) }) }

func (h *Hub) HandleKeyUp(k Key) { h.each(func(l Listener) { l.HandleKeyUp(k) }) }

func (h *Hub) HandlePointerEnter(id anim.ID) { h.each(func(l Listener) { l.HandlePointerEnter(id) }) }

func (h *Hub) HandlePointerLeave(id anim.ID) { h.each(func(l Listener) { l.HandlePointerLeave(id) }) }

func (h *Hub) HandlePointerClick(id anim.ID) { h.each(func(l Listener) { l.HandlePointerClick(id) }) }
