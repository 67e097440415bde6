package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scene-engine/internal/input"
)

// DefaultSpeed is the free-move displacement per tick for one held direction.
const DefaultSpeed = 0.5

// degenerateEps is the smallest basis-vector length (relative to the look distance) that
// still gives a usable movement direction.
const degenerateEps = 1e-6

// Mode says who moves the camera.
type Mode uint8

const (
	Orbit    Mode = iota // the orbit controls own position and target
	FreeMove             // the rig translates the camera from held direction keys
)

func (m Mode) String() string {
	switch m {
	case Orbit:
		return "orbit"
	case FreeMove:
		return "free-move"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// State is the camera transform shared between the rig and the orbit controls.
type State struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// Look returns the vector from position to target.
func (s *State) Look() mgl64.Vec3 {
	return s.Target.Sub(s.Position)
}

// OrbitControls is the orbit collaborator. The rig only toggles it.
type OrbitControls interface {
	SetEnabled(enabled bool)
}

// Options configures a Rig.
type Options struct {
	Speed             float64 // DefaultSpeed when 0
	NormalizeDiagonal bool    // clamp combined directions to Speed
	OnModeChange      func(from, to Mode)
}

// Rig arbitrates camera authority between the orbit controls and free-move keys. Exactly
// one of them may write the camera state in a tick: the rig only writes in FreeMove, and
// the orbit controls are disabled for as long as the rig is in FreeMove.
type Rig struct {
	state    *State
	controls OrbitControls
	mode     Mode
	opts     Options
}

// NewRig returns a rig in Orbit mode and enables controls (may be nil).
func NewRig(state *State, controls OrbitControls, opts Options) *Rig {
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	if state.Up.Len() == 0 {
		state.Up = mgl64.Vec3{0, 1, 0}
	}
	r := &Rig{state: state, controls: controls, mode: Orbit, opts: opts}
	if controls != nil {
		controls.SetEnabled(true)
	}
	return r
}

// Mode returns the active mode.
func (r *Rig) Mode() Mode {
	return r.mode
}

// State returns the camera state the rig moves in FreeMove.
func (r *Rig) State() *State {
	return r.state
}

// Update resolves the mode for this tick from the held directions and, in FreeMove,
// applies one step of movement.
func (r *Rig) Update(held input.DirectionSet) {
	switch {
	case r.mode == Orbit && !held.Empty():
		r.setMode(FreeMove)
	case r.mode == FreeMove && held.Empty():
		r.setMode(Orbit)
	}
	if r.mode != FreeMove {
		return
	}
	move, ok := r.Displacement(held)
	if !ok {
		return
	}
	r.state.Position = r.state.Position.Add(move)
	r.state.Target = r.state.Target.Add(move)
}

func (r *Rig) setMode(m Mode) {
	from := r.mode
	r.mode = m
	if r.controls != nil {
		r.controls.SetEnabled(m == Orbit)
	}
	if r.opts.OnModeChange != nil {
		r.opts.OnModeChange(from, m)
	}
}

// Displacement returns the movement one tick of held would apply from the current state.
// Forward and back follow the look direction flattened onto the plane perpendicular to up;
// left and right follow cross(up, look). A basis vector that degenerates (looking straight
// along up) drops its contribution. ok is false when nothing can move.
func (r *Rig) Displacement(held input.DirectionSet) (mgl64.Vec3, bool) {
	look := r.state.Look()
	dist := look.Len()
	if dist < degenerateEps {
		return mgl64.Vec3{}, false
	}
	up := r.state.Up.Normalize()

	var move mgl64.Vec3
	moved := false
	if held.Has(input.Forward) != held.Has(input.Back) {
		flat := look.Sub(up.Mul(look.Dot(up)))
		if flat.Len() > degenerateEps*dist {
			fwd := flat.Normalize()
			if held.Has(input.Back) {
				fwd = fwd.Mul(-1)
			}
			move = move.Add(fwd)
			moved = true
		}
	}
	if held.Has(input.Left) != held.Has(input.Right) {
		// cross(up, look) points to the viewer's left.
		lat := up.Cross(look)
		if lat.Len() > degenerateEps*dist {
			left := lat.Normalize()
			if held.Has(input.Right) {
				left = left.Mul(-1)
			}
			move = move.Add(left)
			moved = true
		}
	}
	if !moved {
		return mgl64.Vec3{}, false
	}
	if r.opts.NormalizeDiagonal {
		move = move.Normalize()
	}
	move = move.Mul(r.opts.Speed)
	if !finite(move) {
		return mgl64.Vec3{}, false
	}
	return move, true
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
