package component

// Motion drives transform integration: velocity accumulates acceleration,
// position accumulates velocity, per tick.
type Motion struct {
	Velocity     Vec3 `yaml:"velocity"`
	Acceleration Vec3 `yaml:"acceleration"`
}
