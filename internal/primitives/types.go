package primitives

// Shape names accepted by Registry.Draw. Scene files refer to shapes by these names.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Plane    = "plane"
	Lamp     = "lamp" // post with a glowing bulb on top
	Beam     = "beam" // translucent vertical column
)

// Placement positions one primitive instance. Rotation is Euler XYZ in radians; a zero
// scale component counts as 1.
type Placement struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}
