package component

// Lifetime expires an entity after a fixed duration. The lifetime system
// counts Seconds down each tick and marks the entity for destruction when it
// crosses zero.
type Lifetime struct {
	Seconds float64 `yaml:"seconds"`
}
