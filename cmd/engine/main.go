package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/maksprotsyk/rendering-api-comparer/internal/component"
	"github.com/maksprotsyk/rendering-api-comparer/internal/config"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/event"
	coresys "github.com/maksprotsyk/rendering-api-comparer/internal/core/system"
	"github.com/maksprotsyk/rendering-api-comparer/internal/data"
	"github.com/maksprotsyk/rendering-api-comparer/internal/scripting"
	"github.com/maksprotsyk/rendering-api-comparer/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/engine.toml"
	if p := os.Getenv("ENGINE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Create the world and populate it from the scenario
	world := ecs.NewWorld()
	bus := event.NewBus()

	scenario, err := data.LoadScenario(cfg.Engine.Scenario)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	factory := component.NewFactory(log)
	spawned := spawnEntities(world, bus, factory, scenario)
	log.Info("scenario loaded",
		zap.String("path", cfg.Engine.Scenario),
		zap.Int("entities", spawned))

	// 4. Register systems
	sched := coresys.NewScheduler(log)
	sched.Add(system.NewEventDispatchSystem(bus))
	sched.Add(system.NewMovementSystem(world))
	sched.Add(system.NewOrbitSystem(world))
	sched.Add(system.NewLifetimeSystem(world))
	sched.Add(system.NewStatsSystem(world, bus, cfg.Stats.ReportInterval, log))
	sched.Add(system.NewCleanupSystem(world, bus))

	var scripts *scripting.Engine
	if cfg.Scripting.Enabled {
		scripts, err = scripting.NewEngine(cfg.Scripting.Dir, world, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer scripts.Close()
		for _, sys := range system.ScriptSystems(scripts, log) {
			sched.Add(sys)
		}
		log.Info("scripts loaded", zap.Strings("systems", scripts.SystemNames()))
	}

	// 5. Run the simulation loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Engine.TickRate)
	defer ticker.Stop()

	log.Info("simulation loop started",
		zap.Duration("tick_rate", cfg.Engine.TickRate),
		zap.Int("max_ticks", cfg.Engine.MaxTicks))

	lastTick := time.Now()
	ticks := 0
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick)
			lastTick = now

			sched.ProcessAdded()
			sched.ProcessRemoved()
			sched.Update(dt)

			ticks++
			if cfg.Engine.MaxTicks > 0 && ticks >= cfg.Engine.MaxTicks {
				log.Info("tick budget reached", zap.Int("ticks", ticks))
				shutdown(sched, world, log)
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
			shutdown(sched, world, log)
			return nil
		}
	}
}

// spawnEntities creates every scenario entity and attaches its described
// components. Malformed components are skipped inside the factory; a spawn
// event goes out for each created entity.
func spawnEntities(world *ecs.World, bus *event.Bus, factory *component.Factory, scenario *data.Scenario) int {
	for _, desc := range scenario.Entities {
		id := world.CreateEntity()
		if desc.Tag != "" {
			ecs.Add(world.Registry(), id, component.Tag{Name: desc.Tag})
		}
		factory.BuildAll(world.Registry(), id, desc.Components)
		event.Emit(bus, event.EntitySpawned{EntityID: id, Tag: desc.Tag})
	}
	return scenario.Count()
}

func shutdown(sched *coresys.Scheduler, world *ecs.World, log *zap.Logger) {
	sched.Stop()
	sched.Clear()
	world.Clear()
	log.Info("engine stopped")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
