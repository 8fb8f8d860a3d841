package component

// Vec3 is a plain 3-component vector. Enough math lives on it for the
// built-in systems; anything heavier belongs in the system that needs it.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Transform places an entity in world space. Pure data, zero methods beyond
// what Vec3 provides — all mutation happens in systems.
type Transform struct {
	Position Vec3 `yaml:"position"`
	Rotation Vec3 `yaml:"rotation"` // euler, radians
	Scale    Vec3 `yaml:"scale"`
}
