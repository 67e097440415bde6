package terminal

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-engine/internal/commands"
	"scene-engine/internal/logger"
)

const (
	BarHeight = 40
	// BarLift raises the bar in windowed mode so the window frame does not cover it.
	BarLift = 56

	prompt      = "> "
	textSize    = 20
	inset       = 8
	historyRows = 14
	rowHeight   = textSize + 4
	maxRowLen   = 200
)

var (
	barFill  = rl.NewColor(40, 40, 40, 255)
	barEdge  = rl.NewColor(80, 80, 80, 255)
	logPanel = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the screen, toggled with ESC. While open it
// owns the keyboard. Lines starting with "cmd " run through the command registry; Up and
// Down recall earlier lines.
type Terminal struct {
	log  *logger.Logger
	reg  *commands.Registry
	line Line
	open bool
	font rl.Font
}

// New returns a closed terminal.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the terminal is shown and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font for the bar and log. A zero font means raylib's default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update reads the keyboard. Call it before the device poll so keys are released in the
// frame the terminal opens.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		// Discard characters queued while closed.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}

	if rl.IsKeyPressed(rl.KeyV) && modifierDown() {
		t.line.Paste(rl.GetClipboardText())
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.line.Insert(rune(c))
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
		t.line.Backspace()
	case rl.IsKeyPressed(rl.KeyUp):
		t.line.Prev()
	case rl.IsKeyPressed(rl.KeyDown):
		t.line.Next()
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		if line, ok := t.line.Submit(); ok {
			t.Submit(line)
		}
	}
}

// Ctrl on Windows and Linux, Cmd on macOS.
func modifierDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

// Submit logs line and runs it if it is a command.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd "; try "cmd help"`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the bar and the most recent log lines above it while open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	w := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= BarLift
	}

	panelY := max(barY-historyRows*rowHeight, 0)
	if panelH := barY - panelY; panelH > 0 {
		rl.DrawRectangle(0, panelY, w, panelH, logPanel)
	}
	lines := t.log.Lines()
	if len(lines) > historyRows {
		lines = lines[len(lines)-historyRows:]
	}
	for i, line := range lines {
		if len(line) > maxRowLen {
			line = line[:maxRowLen-3] + "..."
		}
		t.text(line, inset, panelY+int32(i)*rowHeight+inset, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, w, BarHeight, barFill)
	rl.DrawRectangle(0, barY, w, 1, barEdge)
	t.text(prompt+t.line.Text()+"|", inset, barY+inset, rl.White)
}

func (t *Terminal) text(s string, x, y int32, c rl.Color) {
	if t.font.Texture.ID == 0 {
		rl.DrawText(s, x, y, textSize, c)
		return
	}
	rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), textSize, 1, c)
}
