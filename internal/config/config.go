package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine    EngineConfig    `toml:"engine"`
	Logging   LoggingConfig   `toml:"logging"`
	Scripting ScriptingConfig `toml:"scripting"`
	Stats     StatsConfig     `toml:"stats"`
}

type EngineConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	Scenario string        `toml:"scenario"`
	MaxTicks int           `toml:"max_ticks"` // 0 = run until a shutdown signal
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type StatsConfig struct {
	ReportInterval time.Duration `toml:"report_interval"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			TickRate: 16 * time.Millisecond,
			Scenario: "config/scenario.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Scripting: ScriptingConfig{
			Dir: "config/scripts",
		},
		Stats: StatsConfig{
			ReportInterval: 5 * time.Second,
		},
	}
}

func (c *Config) validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tick_rate must be positive, got %s", c.Engine.TickRate)
	}
	if c.Engine.Scenario == "" {
		return fmt.Errorf("engine.scenario must not be empty")
	}
	if c.Engine.MaxTicks < 0 {
		return fmt.Errorf("engine.max_ticks must not be negative, got %d", c.Engine.MaxTicks)
	}
	return nil
}
