package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Status is the engine state the overlay reports each frame.
type Status struct {
	Mode    string // camera mode
	Hovered string // hovered entity id, "" for none
	Overlay bool
}

// Debug draws the top-right status overlay: FPS and the camera mode indicator. Both are
// toggled from the terminal and persisted in engine prefs.
type Debug struct {
	ShowFPS  bool
	ShowMode bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font

	frameCount  uint32
	lastFpsText string
	lastStatus  Status
	statusText  string
}

// New returns a Debug overlay with everything hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMode sets whether the camera mode indicator is drawn.
func (d *Debug) SetShowMode(show bool) {
	d.ShowMode = show
}

// SetFont sets the font used for the overlay. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the enabled lines right-aligned at the top of the screen.
func (d *Debug) Draw(st Status) {
	d.frameCount++
	if d.ShowFPS && (d.lastFpsText == "" || d.frameCount%updateInterval == 0) {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if st != d.lastStatus || d.statusText == "" {
		d.lastStatus = st
		d.statusText = formatStatus(st)
	}

	y := int32(padding)
	if d.ShowFPS {
		d.drawRight(d.lastFpsText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMode {
		d.drawRight(d.statusText, y, rl.SkyBlue)
	}
}

func formatStatus(st Status) string {
	s := "Camera: " + st.Mode
	if st.Hovered != "" {
		s += " | Hover: " + st.Hovered
	}
	if st.Overlay {
		s += " | Panel open"
	}
	return s
}

func (d *Debug) drawRight(text string, y int32, c rl.Color) {
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(screenW-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, c)
		return
	}
	x := int32(screenW) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, c)
}
