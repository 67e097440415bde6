package ui

// HelpLines describe the controls.
var HelpLines = []string{
	"Controls",
	"Drag: orbit camera",
	"Right drag: pan",
	"Wheel: zoom",
	"W/A/S/D: move camera",
	"Click a building: open its panel",
	"Esc: terminal",
}

// Help is the controls panel in the top-left corner.
type Help struct {
	engine *Engine
	node   *Node
	lines  []string
}

// NewHelp returns a help panel showing lines.
func NewHelp(e *Engine, lines []string) *Help {
	return &Help{engine: e, node: NewNode("", "help", ""), lines: lines}
}

// Draw draws the panel.
func (h *Help) Draw() {
	st := h.engine.Style("", h.node.ID)
	step := st.FontSize + lineGap
	h.node.Bounds.Height = float32(int32(len(h.lines))*step + 2*st.Padding)
	h.engine.Layout(h.node)
	h.engine.DrawBox(h.node, st)

	x := int32(h.node.Bounds.X) + st.Padding
	y := int32(h.node.Bounds.Y) + st.Padding
	for _, line := range h.lines {
		h.engine.DrawText(line, x, y, st.FontSize, st.Color)
		y += step
	}
}
