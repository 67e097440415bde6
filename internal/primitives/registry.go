package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the mesh for a base shape. Created lazily on first Draw.
type cached struct {
	mesh   rl.Mesh
	offset [3]float32 // model-space shift that centers the mesh on its position
}

// Registry maps shape names to meshes sharing one lit material. Meshes are created on
// first use so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	mtl      rl.Material
	mtlReady bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no meshes.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
	lampPostRadius = 0.15
	lampBulbScale  = 0.9
	beamAlpha      = 110
	maxGlow        = 2.0
)

// mesh returns the cached mesh for a base shape, creating it on first use.
func (r *Registry) mesh(shape string) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	var c cached
	switch shape {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		// Radius 0.5 so diameter = 1, matching the cube side.
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case Cylinder:
		// Raylib cylinders sit on Y=0; shift down half the height to center them.
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.offset = [3]float32{0, -0.5, 0}
	case Plane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	r.cache[shape] = c
	return c, true
}

func (r *Registry) material() rl.Material {
	if !r.mtlReady {
		r.mtl = rl.LoadMaterialDefault()
		if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
			r.mtl.Shader = shader
		}
		r.mtlReady = true
	}
	return r.mtl
}

// Draw draws one instance of shape with the given tint. glow adds emissive light on top
// of the lit color (0 for none). Must be called between BeginMode3D and EndMode3D.
// Unknown shapes are skipped.
func (r *Registry) Draw(shape string, p Placement, tint rl.Color, glow float32) {
	switch shape {
	case Lamp:
		post := p
		post.Scale = [3]float32{lampPostRadius * 2, scaleOr1(p.Scale[1]), lampPostRadius * 2}
		r.drawBase(Cylinder, post, rl.Gray, 0)
		bulb := p
		bulb.Position[1] += scaleOr1(p.Scale[1]) / 2
		bulb.Scale = [3]float32{lampBulbScale, lampBulbScale, lampBulbScale}
		r.drawBase(Sphere, bulb, tint, glow)
	case Beam:
		tint.A = beamAlpha
		rl.BeginBlendMode(rl.BlendAdditive)
		r.drawBase(Cylinder, p, tint, glow)
		rl.EndBlendMode()
	default:
		r.drawBase(shape, p, tint, glow)
	}
}

func (r *Registry) drawBase(shape string, p Placement, tint rl.Color, glow float32) {
	c, ok := r.mesh(shape)
	if !ok {
		return
	}
	mtl := r.material()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(mtl.Shader, min(max(glow, 0), maxGlow))

	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(
			rl.MatrixTranslate(c.offset[0], c.offset[1], c.offset[2]),
			rl.MatrixScale(scaleOr1(p.Scale[0]), scaleOr1(p.Scale[1]), scaleOr1(p.Scale[2])),
		),
		rl.MatrixMultiply(
			rl.MatrixRotateXYZ(rl.NewVector3(p.Rotation[0], p.Rotation[1], p.Rotation[2])),
			rl.MatrixTranslate(p.Position[0], p.Position[1], p.Position[2]),
		),
	)
	rl.DrawMesh(c.mesh, mtl, transform)
}

func scaleOr1(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// Unload frees every GPU resource the registry created.
func (r *Registry) Unload() {
	for key, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, key)
	}
	if r.mtlReady {
		rl.UnloadMaterial(r.mtl)
		r.mtlReady = false
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float glow;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  float specular = pow(max(dot(N, normalize(L + V)), 0.0), 48.0) * 0.35;
  vec3 lit = ambient.rgb * colDiffuse.rgb + colDiffuse.rgb * NdotL * 0.75 + vec3(specular);
  finalColor = vec4(lit + colDiffuse.rgb * glow, colDiffuse.a);
}
`
)

// ambient is dim so shadowed faces are not pure black.
var ambient = [4]float32{0.2, 0.22, 0.26, 1.0}

func (r *Registry) setUniforms(shader rl.Shader, glow float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := r.viewPos
	lightDir := r.lightDir
	amb := ambient
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "glow"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{glow}, rl.ShaderUniformFloat)
	}
}
