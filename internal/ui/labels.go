package ui

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-engine/internal/anim"
)

// AnchorFunc returns where on screen the label for id belongs, or false to skip it.
type AnchorFunc func(id anim.ID) (rl.Vector2, bool)

// Label is floating text above an entity.
type Label struct {
	ID   anim.ID
	Text string
}

// labelBob is the pixel amplitude of the idle label bob.
const labelBob = 3

// Labels draws floating labels above selectable entities. The hovered label uses the
// "label-hover" style.
type Labels struct {
	engine *Engine
	items  []Label
	node   Node
}

// NewLabels returns labels for items.
func NewLabels(e *Engine, items []Label) *Labels {
	return &Labels{engine: e, items: items}
}

// Draw draws every label whose anchor is on screen. t is the elapsed animation time;
// hovered names the highlighted entity ("" for none).
func (l *Labels) Draw(anchor AnchorFunc, t float64, hovered anim.ID) {
	for i, it := range l.items {
		p, ok := anchor(it.ID)
		if !ok {
			continue
		}
		class := "label"
		if it.ID == hovered {
			class = "label-hover"
		}
		st := l.engine.Style(class, "")
		w := float32(l.engine.MeasureText(it.Text, st.FontSize) + 2*st.Padding)
		h := float32(st.FontSize + 2*st.Padding)
		bob := labelBob * math32.Sin(float32(t)*2+float32(i))
		l.node.Text = it.Text
		l.node.Bounds = rl.NewRectangle(p.X-w/2, p.Y-h/2+bob, w, h)
		l.engine.DrawBox(&l.node, st)
	}
}
