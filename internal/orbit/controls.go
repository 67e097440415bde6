package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scene-engine/internal/camera"
)

// Settings are the orbit-control tunables. Zero fields take the Default value.
type Settings struct {
	MinDistance float64
	MaxDistance float64
	MinPolar    float64 // radians from +up
	MaxPolar    float64
	RotateSpeed float64 // radians per pixel of drag
	ZoomSpeed   float64
	PanSpeed    float64 // world units per pixel at distance 1
	Damping     float64 // 0 disables damping; otherwise the fraction of velocity applied per update
}

// DefaultSettings mirrors the scene's drag/zoom feel: distance 10..50, full polar range,
// rotate speed 0.5.
func DefaultSettings() Settings {
	return Settings{
		MinDistance: 10,
		MaxDistance: 50,
		MinPolar:    0,
		MaxPolar:    math.Pi,
		RotateSpeed: 0.5,
		ZoomSpeed:   1,
		PanSpeed:    1,
		Damping:     0.05,
	}
}

// polarEps keeps the camera from sitting exactly on the up axis.
const polarEps = 1e-4

// dragScale converts pixels of drag into radians before RotateSpeed.
const dragScale = 2 * math.Pi / 1000

// settle is the velocity below which damping stops.
const settle = 1e-6

// Controls rotates, zooms and pans the shared camera state around its target. Input
// accumulates between updates; Update applies it only while enabled.
type Controls struct {
	state    *camera.State
	settings Settings
	enabled  bool

	dTheta, dPhi float64
	zoom         float64
	pan          mgl64.Vec3
}

// New returns enabled controls driving state.
func New(state *camera.State, s Settings) *Controls {
	d := DefaultSettings()
	if s.MinDistance == 0 {
		s.MinDistance = d.MinDistance
	}
	if s.MaxDistance == 0 {
		s.MaxDistance = d.MaxDistance
	}
	if s.MaxPolar == 0 {
		s.MaxPolar = d.MaxPolar
	}
	if s.RotateSpeed == 0 {
		s.RotateSpeed = d.RotateSpeed
	}
	if s.ZoomSpeed == 0 {
		s.ZoomSpeed = d.ZoomSpeed
	}
	if s.PanSpeed == 0 {
		s.PanSpeed = d.PanSpeed
	}
	return &Controls{state: state, settings: s, enabled: true}
}

// SetEnabled turns the controls on or off. Turning them off drops any pending motion so
// nothing drifts in when they come back.
func (c *Controls) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.reset()
	}
}

// Enabled reports whether the controls may move the camera.
func (c *Controls) Enabled() bool {
	return c.enabled
}

// Settings returns the effective settings.
func (c *Controls) Settings() Settings {
	return c.settings
}

// Rotate queues an orbit by a pointer drag of (dx, dy) pixels.
func (c *Controls) Rotate(dx, dy float64) {
	if !c.enabled {
		return
	}
	c.dTheta -= dx * dragScale * c.settings.RotateSpeed
	c.dPhi -= dy * dragScale * c.settings.RotateSpeed
}

// Zoom queues a dolly step. Positive wheel moves toward the target.
func (c *Controls) Zoom(wheel float64) {
	if !c.enabled {
		return
	}
	c.zoom += wheel * c.settings.ZoomSpeed
}

// Pan queues a screen-space pan of (dx, dy) pixels, moving both position and target.
func (c *Controls) Pan(dx, dy float64) {
	if !c.enabled {
		return
	}
	look := c.state.Look()
	dist := look.Len()
	if dist == 0 {
		return
	}
	up := c.state.Up.Normalize()
	right := look.Cross(up)
	if right.Len() < polarEps {
		return
	}
	right = right.Normalize()
	screenUp := right.Cross(look).Normalize()
	scale := c.settings.PanSpeed * dist / 1000
	c.pan = c.pan.Add(right.Mul(-dx * scale)).Add(screenUp.Mul(dy * scale))
}

// Update applies queued motion to the camera state. With damping the motion is spread
// over several updates; without it everything lands at once.
func (c *Controls) Update() {
	if !c.enabled || c.idle() {
		return
	}
	f := c.settings.Damping
	if f <= 0 || f > 1 {
		f = 1
	}

	offset := c.state.Position.Sub(c.state.Target)
	radius, theta, phi := toSpherical(offset)

	theta += c.dTheta * f
	phi = clamp(phi+c.dPhi*f, math.Max(c.settings.MinPolar, polarEps), math.Min(c.settings.MaxPolar, math.Pi-polarEps))
	radius = clamp(radius*math.Pow(0.95, c.zoom*f), c.settings.MinDistance, c.settings.MaxDistance)

	target := c.state.Target.Add(c.pan.Mul(f))
	c.state.Target = target
	c.state.Position = target.Add(fromSpherical(radius, theta, phi))

	if f == 1 {
		c.reset()
		return
	}
	c.dTheta *= 1 - f
	c.dPhi *= 1 - f
	c.zoom *= 1 - f
	c.pan = c.pan.Mul(1 - f)
	if math.Abs(c.dTheta) < settle && math.Abs(c.dPhi) < settle && math.Abs(c.zoom) < settle && c.pan.Len() < settle {
		c.reset()
	}
}

// Stop drops pending motion without changing the camera.
func (c *Controls) Stop() {
	c.reset()
}

func (c *Controls) idle() bool {
	return c.dTheta == 0 && c.dPhi == 0 && c.zoom == 0 && c.pan == mgl64.Vec3{}
}

func (c *Controls) reset() {
	c.dTheta, c.dPhi, c.zoom = 0, 0, 0
	c.pan = mgl64.Vec3{}
}

// toSpherical uses +Y as the polar axis; theta is measured around Y from +Z.
func toSpherical(v mgl64.Vec3) (radius, theta, phi float64) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math.Atan2(v.X(), v.Z())
	phi = math.Acos(clamp(v.Y()/radius, -1, 1))
	return radius, theta, phi
}

func fromSpherical(radius, theta, phi float64) mgl64.Vec3 {
	s := math.Sin(phi) * radius
	return mgl64.Vec3{s * math.Sin(theta), math.Cos(phi) * radius, s * math.Cos(theta)}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
