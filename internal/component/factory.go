package component

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
	"github.com/maksprotsyk/rendering-api-comparer/internal/data"
)

// Builder decodes a component description payload and attaches the result to
// an entity.
type Builder func(reg *ecs.Registry, id ecs.EntityID, node *yaml.Node) error

// Factory is the closed dispatch table from description type tags to
// component builders. Every known component type is registered at
// construction; a tag outside the table is reported and skipped, never
// fatal, so one malformed entity cannot abort world initialization.
type Factory struct {
	builders map[string]Builder
	log      *zap.Logger
}

func NewFactory(log *zap.Logger) *Factory {
	f := &Factory{
		builders: make(map[string]Builder, 8),
		log:      log,
	}
	f.Register("transform", buildInto[Transform])
	f.Register("motion", buildInto[Motion])
	f.Register("orbit", buildInto[Orbit])
	f.Register("lifetime", buildInto[Lifetime])
	f.Register("tag", buildInto[Tag])
	return f
}

// Register adds a builder for a type tag, replacing any previous one.
func (f *Factory) Register(tag string, b Builder) {
	f.builders[tag] = b
}

// Build attaches a single described component to the entity. Unknown type
// tags return an error without touching the registry.
func (f *Factory) Build(reg *ecs.Registry, id ecs.EntityID, desc data.ComponentDesc) error {
	b, ok := f.builders[desc.Type]
	if !ok {
		return fmt.Errorf("unknown component type %q", desc.Type)
	}
	if err := b(reg, id, &desc.Node); err != nil {
		return fmt.Errorf("build %s: %w", desc.Type, err)
	}
	return nil
}

// BuildAll attaches every described component to the entity, skipping and
// logging entries that fail. Returns the number attached.
func (f *Factory) BuildAll(reg *ecs.Registry, id ecs.EntityID, descs []data.ComponentDesc) int {
	built := 0
	for _, desc := range descs {
		if err := f.Build(reg, id, desc); err != nil {
			f.log.Warn("skipping component",
				zap.String("type", desc.Type),
				zap.Uint32("entity", id.Index()),
				zap.Error(err))
			continue
		}
		built++
	}
	return built
}

// buildInto decodes the payload into a fresh T and attaches it.
func buildInto[T any](reg *ecs.Registry, id ecs.EntityID, node *yaml.Node) error {
	var c T
	if err := node.Decode(&c); err != nil {
		return err
	}
	if !ecs.Add(reg, id, c) {
		return fmt.Errorf("entity already has this component")
	}
	return nil
}
