package component

// Orbit makes an entity circle a fixed center at a fixed radius. Clockwise
// entities sweep with a negative angular step, counterclockwise positive.
type Orbit struct {
	Center    Vec3    `yaml:"center"`
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"` // radians per second
	Clockwise bool    `yaml:"clockwise"`
	Angle     float64 `yaml:"angle"` // current phase, radians
}
