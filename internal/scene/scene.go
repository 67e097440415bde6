package scene

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"scene-engine/internal/anim"
	"scene-engine/internal/camera"
	"scene-engine/internal/primitives"
	"scene-engine/internal/sceneconfig"
	"scene-engine/internal/style"
)

const (
	floorY         = -1.5
	floorExtent    = 25
	gridStep       = 2
	gridMajorEvery = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	edgeHueRate    = 50 // degrees per second
	labelLift      = 2.5
)

var (
	floorColor   = rl.NewColor(20, 20, 36, 255)
	defaultColor = rl.NewColor(128, 128, 128, 255)
)

// Renderer draws the animated entities from the shared transform set and mirrors the
// shared camera state into a raylib camera. It only reads engine state; the frame
// scheduler owns every write.
type Renderer struct {
	Camera      rl.Camera3D
	GridVisible bool

	set     *anim.Set
	visuals map[anim.ID]sceneconfig.Visual
	colors  map[anim.ID]rl.Color
	prims   *primitives.Registry
	elapsed float32
}

// New returns a renderer over set. fovy is the vertical field of view in degrees.
func New(set *anim.Set, visuals map[anim.ID]sceneconfig.Visual, fovy float64) *Renderer {
	r := &Renderer{
		GridVisible: true,
		set:         set,
		visuals:     visuals,
		colors:      make(map[anim.ID]rl.Color, len(visuals)),
		prims:       primitives.NewRegistry(),
	}
	for id, v := range visuals {
		c, ok := style.ParseHexColor(v.Color)
		if !ok {
			c = defaultColor
		}
		r.colors[id] = c
	}
	if fovy <= 0 {
		fovy = 60
	}
	r.Camera.Fovy = float32(fovy)
	r.Camera.Projection = rl.CameraPerspective
	r.Camera.Up = rl.NewVector3(0, 1, 0)
	return r
}

// Sync copies the camera state and elapsed time for the next Draw. Run it after the
// camera stage of every tick.
func (r *Renderer) Sync(elapsed float64, s camera.State) {
	r.elapsed = float32(elapsed)
	r.Camera.Position = vec3(s.Position)
	r.Camera.Target = vec3(s.Target)
	r.Camera.Up = vec3(s.Up)
}

// SetGridVisible sets whether the floor grid is drawn.
func (r *Renderer) SetGridVisible(visible bool) {
	r.GridVisible = visible
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays.
func (r *Renderer) Draw() {
	pos := r.Camera.Position
	r.prims.SetView([3]float32{pos.X, pos.Y, pos.Z}, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(r.Camera)
	r.drawFloor()
	for i := 0; i < r.set.Len(); i++ {
		e, tr := r.set.At(i)
		v := r.visuals[e.ID]
		size := v.Size
		if size == (mgl64.Vec3{}) {
			size = mgl64.Vec3{1, 1, 1}
		}
		p := primitives.Placement{
			Position: vec3arr(tr.Position),
			Rotation: vec3arr(tr.Rotation),
			Scale:    vec3arr(size.Mul(tr.Scale)),
		}
		r.prims.Draw(v.Shape, p, r.colors[e.ID], glow(tr.Intensity))
	}
	rl.EndMode3D()
}

// glow maps an entity intensity onto the shader's emissive term.
func glow(intensity float64) float32 {
	return math32.Max(0, float32(intensity)*0.5)
}

// drawFloor draws the floor plane, its hue-cycling edge and, when enabled, the grid.
func (r *Renderer) drawFloor() {
	rl.DrawPlane(rl.NewVector3(0, floorY, 0), rl.NewVector2(2*floorExtent, 2*floorExtent), floorColor)

	hue := math32.Mod(r.elapsed*edgeHueRate, 360)
	edge := rl.ColorFromHSV(hue, 0.7, 0.9)
	const e = floorExtent
	y := float32(floorY + 0.02)
	corners := [4]rl.Vector3{
		rl.NewVector3(-e, y, -e), rl.NewVector3(e, y, -e),
		rl.NewVector3(e, y, e), rl.NewVector3(-e, y, e),
	}
	for i := range corners {
		rl.DrawLine3D(corners[i], corners[(i+1)%len(corners)], edge)
	}

	if r.GridVisible {
		drawGrid(y)
	}
}

// drawGrid draws grid lines on the floor with a brighter line every gridMajorEvery steps.
func drawGrid(y float32) {
	minor := rl.NewColor(128, 128, 160, gridMinorAlpha)
	major := rl.NewColor(160, 160, 200, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -floorExtent; i <= floorExtent; i += gridStep {
		c := minor
		if (i/gridStep)%gridMajorEvery == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(i), y, -floorExtent
		end.X, end.Y, end.Z = float32(i), y, floorExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -floorExtent, float32(i)
		end.X, end.Z = floorExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}

// Pick returns the nearest selectable entity whose collider the screen point's ray hits.
func (r *Renderer) Pick(screen rl.Vector2) (anim.ID, bool) {
	ray := rl.GetScreenToWorldRay(screen, r.Camera)
	var (
		best    anim.ID
		bestD   = float32(math.MaxFloat32)
		hasBest bool
	)
	for i := 0; i < r.set.Len(); i++ {
		e, tr := r.set.At(i)
		if !e.Selectable || e.ColliderRadius <= 0 {
			continue
		}
		hit := rl.GetRayCollisionSphere(ray, vec3(tr.Position), float32(e.ColliderRadius*tr.Scale))
		if hit.Hit && hit.Distance < bestD {
			best, bestD, hasBest = e.ID, hit.Distance, true
		}
	}
	return best, hasBest
}

// Anchor returns the screen position a floating label for id should be drawn at, and
// false when the entity is unknown or behind the camera.
func (r *Renderer) Anchor(id anim.ID) (rl.Vector2, bool) {
	tr, ok := r.set.Transform(id)
	if !ok {
		return rl.Vector2{}, false
	}
	world := vec3(tr.Position.Add(mgl64.Vec3{0, labelLift + r.visuals[id].Size.Y()/2, 0}))
	toPoint := rl.Vector3Subtract(world, r.Camera.Position)
	forward := rl.Vector3Subtract(r.Camera.Target, r.Camera.Position)
	if rl.Vector3DotProduct(toPoint, forward) <= 0 {
		return rl.Vector2{}, false
	}
	return rl.GetWorldToScreen(world, r.Camera), true
}

// Unload frees GPU resources. Call before the window closes.
func (r *Renderer) Unload() {
	r.prims.Unload()
}

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func vec3arr(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
