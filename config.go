package flatecs

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config holds the tunables of a World. Fields can be loaded from the
// environment with LoadConfig:
//
//	ECS_INITIAL_CAPACITY=1024
//	ECS_MAX_CAPACITY=65536
//	ECS_LOG_LEVEL=debug
type Config struct {
	// InitialCapacity is the number of entity slots allocated on commit.
	InitialCapacity int `config:"ecs_initial_capacity"`
	// MaxCapacity bounds storage growth. Zero means unbounded.
	MaxCapacity int `config:"ecs_max_capacity"`
	// LogLevel is a zerolog level name used by NewLogger.
	LogLevel string `config:"ecs_log_level"`
}

// DefaultConfig returns the configuration used when NewWorld gets no options.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		MaxCapacity:     0,
		LogLevel:        "info",
	}
}

// LoadConfig reads the ECS_* environment variables over DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load ecs config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that capacities are usable.
func (c Config) Validate() error {
	if c.InitialCapacity < 1 {
		return eris.Errorf("invalid initial capacity %d: must be at least 1", c.InitialCapacity)
	}
	if c.MaxCapacity < 0 {
		return eris.Errorf("invalid max capacity %d: must not be negative", c.MaxCapacity)
	}
	if c.MaxCapacity != 0 && c.MaxCapacity < c.InitialCapacity {
		return eris.Errorf("max capacity %d is below initial capacity %d", c.MaxCapacity, c.InitialCapacity)
	}
	if int64(c.InitialCapacity) >= int64(InvalidEntity) {
		return eris.Errorf("initial capacity %d exceeds the entity ID space", c.InitialCapacity)
	}
	return nil
}
