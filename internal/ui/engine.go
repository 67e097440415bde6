package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-engine/internal/style"
)

//go:embed theme.css
var defaultTheme string

// Engine resolves node styles from a stylesheet and draws styled boxes and text with raylib.
// Resolved styles are cached per (class, id) and only recomputed when the sheet changes to
// avoid per-frame allocations. If a font is loaded (LoadFont), text is drawn with it;
// otherwise raylib's default font is used.
type Engine struct {
	sheet *style.Stylesheet
	cache map[string]style.Computed
	font  rl.Font
}

// New returns an engine using the embedded theme.
func New() *Engine {
	sheet, err := style.Parse(defaultTheme)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded theme: %v", err))
	}
	return &Engine{sheet: sheet, cache: make(map[string]style.Computed)}
}

// LoadCSS replaces the theme with the stylesheet at path.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read theme: %w", err)
	}
	sheet, err := style.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.sheet = sheet
	clear(e.cache)
	return nil
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return fmt.Errorf("load font %s: %w", path, os.ErrNotExist)
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is zero when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Style returns the computed style for a node with the given class and id.
func (e *Engine) Style(class, id string) style.Computed {
	key := class + "#" + id
	if c, ok := e.cache[key]; ok {
		return c
	}
	c := style.Resolve(e.sheet.Match(class, id))
	e.cache[key] = c
	return c
}

// Layout sets n.Bounds from its style on the current screen. A zero-size style keeps the
// node's own size.
func (e *Engine) Layout(n *Node) style.Computed {
	st := e.Style(n.Class, n.ID)
	if st.Width > 0 {
		n.Bounds.Width = float32(st.Width)
	}
	if st.Height > 0 {
		n.Bounds.Height = float32(st.Height)
	}
	x, y := st.Place(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), int32(n.Bounds.Width), int32(n.Bounds.Height))
	n.Bounds.X, n.Bounds.Y = float32(x), float32(y)
	return st
}

// DrawBox draws n's background, 1px border and text at its current bounds.
func (e *Engine) DrawBox(n *Node, st style.Computed) {
	x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
	w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
	if st.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, st.Background)
	}
	if st.HasBorder && w > 0 && h > 0 {
		rl.DrawRectangleLines(x, y, w, h, st.Border)
	}
	if n.Text != "" {
		e.DrawText(n.Text, x+st.Padding, y+st.Padding, st.FontSize, st.Color)
	}
}

// DrawText draws one line of text.
func (e *Engine) DrawText(text string, x, y, size int32, c rl.Color) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(text, x, y, size, c)
}

// MeasureText returns the width of text in pixels.
func (e *Engine) MeasureText(text string, size int32) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}

// Unload frees the loaded font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}
