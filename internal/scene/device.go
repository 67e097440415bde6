package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-engine/internal/input"
)

// OrbitInput receives the raw drag and wheel motion meant for the orbit controls.
type OrbitInput interface {
	Rotate(dx, dy float64)
	Pan(dx, dy float64)
	Zoom(wheel float64)
}

// Device polls raylib once per frame and publishes key and pointer events to its
// subscribers. Pointer events name the entity the renderer's hit test found.
// Poll must run before the frame scheduler's tick so the events land in that tick.
type Device struct {
	input.Hub

	renderer *Renderer
	orbit    OrbitInput
	keys     *input.KeyPoller
	pointer  *input.PointerTracker

	// KeyboardBlocked, when set and true, withholds key events (e.g. the terminal is open).
	KeyboardBlocked func() bool
	// PointerBlocked, when set and true, withholds pointer events (e.g. a modal is open).
	PointerBlocked func() bool

	keyboardOff bool
	pointerOff  bool
}

// NewDevice returns a device watching keys. orbit may be nil.
func NewDevice(keys []input.Key, renderer *Renderer, orbit OrbitInput) *Device {
	d := &Device{renderer: renderer, orbit: orbit}
	d.keys = input.NewKeyPoller(&d.Hub, keys)
	d.pointer = input.NewPointerTracker(&d.Hub)
	return d
}

// Poll samples the keyboard and mouse.
func (d *Device) Poll() {
	d.pollKeys()
	d.pollPointer()
}

func (d *Device) pollKeys() {
	if d.KeyboardBlocked != nil && d.KeyboardBlocked() {
		if !d.keyboardOff {
			d.keys.ReleaseAll()
			d.keyboardOff = true
		}
		return
	}
	d.keyboardOff = false
	d.keys.Poll(func(k input.Key) bool { return rl.IsKeyDown(int32(k)) })
}

func (d *Device) pollPointer() {
	if d.PointerBlocked != nil && d.PointerBlocked() {
		if !d.pointerOff {
			d.pointer.Clear()
			d.pointerOff = true
		}
		return
	}
	d.pointerOff = false

	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	id, hit := d.renderer.Pick(mouse)
	d.pointer.Update(input.PointerSample{
		Hit:      id,
		HasHit:   hit,
		DX:       float64(delta.X),
		DY:       float64(delta.Y),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	})

	if d.orbit == nil {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && (delta.X != 0 || delta.Y != 0) {
		d.orbit.Rotate(float64(delta.X), float64(delta.Y))
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) && (delta.X != 0 || delta.Y != 0) {
		d.orbit.Pan(float64(delta.X), float64(delta.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		d.orbit.Zoom(float64(wheel))
	}
}
