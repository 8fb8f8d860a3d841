package component

// Tag is a human-readable label attached to an entity, used by stats
// reporting and scripts to find entities by name.
type Tag struct {
	Name string `yaml:"name"`
}
