package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/event"
)

// StatsSystem reports tick timing and population figures on a fixed cadence.
// Spawn/destroy counts arrive over the bus, so the system never touches
// component storage beyond reading the entity count.
type StatsSystem struct {
	world    *ecs.World
	bus      *event.Bus
	log      *zap.Logger
	interval time.Duration

	elapsed   time.Duration
	ticks     int
	minDt     time.Duration
	maxDt     time.Duration
	spawned   int
	destroyed int
}

func NewStatsSystem(world *ecs.World, bus *event.Bus, interval time.Duration, log *zap.Logger) *StatsSystem {
	return &StatsSystem{
		world:    world,
		bus:      bus,
		log:      log,
		interval: interval,
	}
}

func (s *StatsSystem) Priority() int { return PriorityStats }

func (s *StatsSystem) OnStart() {
	event.Subscribe(s.bus, func(event.EntitySpawned) { s.spawned++ })
	event.Subscribe(s.bus, func(event.EntityDestroyed) { s.destroyed++ })
}

func (s *StatsSystem) OnUpdate(dt time.Duration) {
	s.elapsed += dt
	s.ticks++
	if s.minDt == 0 || dt < s.minDt {
		s.minDt = dt
	}
	if dt > s.maxDt {
		s.maxDt = dt
	}
	if s.elapsed < s.interval {
		return
	}

	avg := s.elapsed / time.Duration(s.ticks)
	s.log.Info("tick stats",
		zap.Int("ticks", s.ticks),
		zap.Duration("avg_dt", avg),
		zap.Duration("min_dt", s.minDt),
		zap.Duration("max_dt", s.maxDt),
		zap.Int("entities", s.world.Pool().Len()),
		zap.Int("spawned", s.spawned),
		zap.Int("destroyed", s.destroyed))

	s.elapsed = 0
	s.ticks = 0
	s.minDt = 0
	s.maxDt = 0
	s.spawned = 0
	s.destroyed = 0
}

func (s *StatsSystem) OnStop() {
	s.log.Info("stats system stopped",
		zap.Int("entities", s.world.Pool().Len()))
}
