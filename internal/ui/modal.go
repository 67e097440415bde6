package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-engine/internal/anim"
	"scene-engine/internal/selection"
	"scene-engine/internal/style"
)

// Gate is the overlay state the modal shows and closes.
type Gate interface {
	IsOpen() bool
	Close()
}

// SectionFunc returns the panel title and body for a selected entity.
type SectionFunc func(id anim.ID) (title, content string, ok bool)

const (
	closeLabel = "Close"
	lineGap    = 6
)

// Modal is the centered panel shown while the overlay is open. It consumes selection
// events to pick its content and closes the overlay on the close button or a click on
// the backdrop outside the panel.
type Modal struct {
	engine  *Engine
	gate    Gate
	section SectionFunc

	backdrop *Node
	panel    *Node
	title    *Node
	close    *Node

	selected anim.ID
	content  string
	lines    []string
	wrapW    int32
	scroll   int
}

// NewModal returns a modal drawn with e over gate, reading content from section.
func NewModal(e *Engine, gate Gate, section SectionFunc) *Modal {
	return &Modal{
		engine:   e,
		gate:     gate,
		section:  section,
		backdrop: NewNode("backdrop", "", ""),
		panel:    NewNode("", "modal", ""),
		title:    NewNode("modal-title", "", ""),
		close:    NewNode("modal-close", "", closeLabel),
	}
}

// Select switches the panel to the selected entity's section.
func (m *Modal) Select(ev selection.Event) {
	title, content, ok := m.section(ev.ID)
	if !ok {
		title, content = string(ev.ID), ""
	}
	m.selected = ev.ID
	m.title.Text = title
	m.content = content
	m.lines = nil
	m.scroll = 0
}

// Selected returns the id whose section is loaded.
func (m *Modal) Selected() anim.ID {
	return m.selected
}

// Update handles closing and scrolling. Call once per frame after the scheduler tick.
func (m *Modal) Update() {
	if !m.gate.IsOpen() {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p := rl.GetMousePosition()
		if m.close.Contains(p) || !m.panel.Contains(p) {
			m.gate.Close()
			return
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		m.scroll = max(0, m.scroll-int(wheel))
	}
}

// Draw draws the backdrop and panel while the overlay is open.
func (m *Modal) Draw() {
	if !m.gate.IsOpen() {
		return
	}
	m.backdrop.Bounds = rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	m.engine.DrawBox(m.backdrop, m.engine.Style(m.backdrop.Class, ""))

	ps := m.engine.Layout(m.panel)
	m.engine.DrawBox(m.panel, ps)

	x := int32(m.panel.Bounds.X) + ps.Padding
	y := int32(m.panel.Bounds.Y) + ps.Padding
	inner := int32(m.panel.Bounds.Width) - 2*ps.Padding

	ts := m.engine.Style(m.title.Class, "")
	m.engine.DrawText(m.title.Text, x, y, ts.FontSize, ts.Color)
	y += ts.FontSize + 2*lineGap

	cs := m.engine.Style(m.close.Class, "")
	m.close.Bounds = rl.NewRectangle(
		m.panel.Bounds.X+m.panel.Bounds.Width-float32(cs.Width)-float32(ps.Padding),
		m.panel.Bounds.Y+m.panel.Bounds.Height-float32(cs.Height)-float32(ps.Padding),
		float32(cs.Width), float32(cs.Height),
	)
	bottom := int32(m.close.Bounds.Y) - lineGap

	m.wrap(inner, ps.FontSize)
	step := ps.FontSize + lineGap
	visible := max(int((bottom-y)/step), 1)
	m.scroll = min(m.scroll, max(len(m.lines)-visible, 0))
	for _, line := range m.lines[m.scroll:min(len(m.lines), m.scroll+visible)] {
		m.engine.DrawText(line, x, y, ps.FontSize, ps.Color)
		y += step
	}

	m.engine.DrawBox(m.close, cs)
}

// wrap re-wraps the content when the panel width changed.
func (m *Modal) wrap(width, size int32) {
	if m.lines != nil && m.wrapW == width {
		return
	}
	m.wrapW = width
	m.lines = style.Wrap(m.content, width, func(s string) int32 { return m.engine.MeasureText(s, size) })
}
