package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Title      string
	Width      int32 // ignored when Fullscreen
	Height     int32
	Fullscreen bool
	TargetFPS  int32
}

// Hooks are the callbacks of the main loop. Nil hooks are skipped.
type Hooks struct {
	Setup    func() // once, after the window and GL context exist
	Update   func() // every frame: input, then the engine tick
	Draw     func() // every frame, between BeginDrawing and EndDrawing
	Teardown func() // once, before the window closes
}

// Run opens the window and runs the main loop until the window is closed.
// ESC toggles the terminal; close via window button.
func Run(opts Options, h Hooks) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(opts.Width, opts.Height, opts.Title)
	}
	defer rl.CloseWindow()
	if h.Teardown != nil {
		defer h.Teardown()
	}

	rl.SetExitKey(rl.KeyNull) // ESC is used to toggle terminal, not to quit
	rl.SetTargetFPS(opts.TargetFPS)
	if h.Setup != nil {
		h.Setup()
	}

	for !rl.WindowShouldClose() {
		if h.Update != nil {
			h.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(background)
		if h.Draw != nil {
			h.Draw()
		}
		rl.EndDrawing()
	}
}

var background = rl.NewColor(10, 10, 22, 255)
