package anim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ID identifies a scene entity. Selectable entities use the section name (e.g. "projects").
type ID string

// Profile selects the procedural animation applied to an entity.
type Profile int

const (
	Float Profile = iota // bobs vertically and spins around Y
	Pulse                // fixed position, oscillating emissive intensity
	Orbit                // fixed angular slot around a center, slowly rotating
	Beam                 // fixed position, oscillating visual intensity
)

var profileNames = [...]string{
	Float: "float",
	Pulse: "pulse",
	Orbit: "orbit",
	Beam:  "beam",
}

func (p Profile) String() string {
	if p < 0 || int(p) >= len(profileNames) {
		return fmt.Sprintf("Profile(%d)", int(p))
	}
	return profileNames[p]
}

// ParseProfile maps a lower-case profile name to its Profile.
func ParseProfile(name string) (Profile, bool) {
	for i, n := range profileNames {
		if n == name {
			return Profile(i), true
		}
	}
	return 0, false
}

const (
	// HoverScale and HoverLift are applied to a hovered entity's transform.
	HoverScale = 1.05
	HoverLift  = 0.1
)

// Params holds the per-profile constants. Fields a profile does not use are ignored.
type Params struct {
	// Float
	Amplitude float64 // vertical bob height
	Omega     float64 // bob angular speed (rad/s)
	SpinRate  float64 // rotation.y speed (rad/s)
	TiltAmp   float64 // rotation.z wobble amplitude
	TiltRate  float64

	// Intensity, used by Pulse and Beam and optionally by Float/Orbit glow.
	BaseIntensity float64
	PulseRate     float64
	PulseDelta    float64

	// Orbit
	Slots      int     // number of angular slots around the center; step = 2π/Slots
	Radius     float64 // base orbit radius
	Height     float64 // y offset above Base
	OrbitRate  float64 // angular speed of the whole ring (rad/s)
	RadiusAmp  float64 // radius breathing amplitude
	RadiusRate float64

	Scale float64 // uniform scale, 0 means 1
}

// Transform is the derived per-tick state of an entity. It is recomputed from elapsed
// time every tick and never fed back into the next one.
type Transform struct {
	Position  mgl64.Vec3
	Rotation  mgl64.Vec3 // Euler angles, radians
	Scale     float64
	Intensity float64
}

// Entity is an animated scene node. Base, Seed, Slot and Params are fixed for the
// entity's lifetime; the only mutable input is the hover flag set by the selection
// registry.
type Entity struct {
	ID             ID
	Base           mgl64.Vec3
	Seed           float64 // phase offset added inside every oscillator
	Profile        Profile
	ColliderRadius float64
	Slot           int
	BaseYaw        float64
	Selectable     bool
	Params         Params

	hovered bool
}

// SetHovered switches the hover visual on or off.
func (e *Entity) SetHovered(hovered bool) {
	e.hovered = hovered
}

// Hovered reports whether the hover visual is on.
func (e *Entity) Hovered() bool {
	return e.hovered
}

// Update evaluates the entity's transform at elapsed time t. The result depends only on t,
// the entity's fixed parameters and its hover flag, so calling it twice with the same t
// returns the same transform.
func (e *Entity) Update(t float64) Transform {
	p := e.Params
	tr := Transform{
		Position:  e.Base,
		Rotation:  mgl64.Vec3{0, e.BaseYaw, 0},
		Scale:     p.Scale,
		Intensity: p.BaseIntensity + math.Sin(t*p.PulseRate+e.Seed)*p.PulseDelta,
	}
	if tr.Scale == 0 {
		tr.Scale = 1
	}

	switch e.Profile {
	case Float:
		tr.Position[1] += math.Sin(t*p.Omega+e.Seed) * p.Amplitude
		tr.Rotation[1] += t * p.SpinRate
		tr.Rotation[2] = math.Sin(t*p.TiltRate) * p.TiltAmp
	case Orbit:
		angle := float64(e.Slot)*slotStep(p.Slots) + t*p.OrbitRate + e.Seed
		r := p.Radius + math.Sin(t*p.RadiusRate)*p.RadiusAmp
		tr.Position = e.Base.Add(mgl64.Vec3{math.Cos(angle) * r, p.Height, math.Sin(angle) * r})
		tr.Rotation[1] += angle
	case Pulse, Beam:
	}

	if e.hovered {
		tr.Scale *= HoverScale
		tr.Position[1] += HoverLift
	}
	return tr
}

func slotStep(slots int) float64 {
	if slots <= 0 {
		return 0
	}
	return 2 * math.Pi / float64(slots)
}
