package flatecs

import "github.com/rs/zerolog"

// Option configures a World in NewWorld.
type Option func(w *World)

// WithConfig replaces the World's configuration. It is validated by NewWorld.
func WithConfig(cfg Config) Option {
	return func(w *World) {
		w.cfg = cfg
	}
}

// WithInitialCapacity sets the number of entity slots allocated on commit.
func WithInitialCapacity(n int) Option {
	return func(w *World) {
		w.cfg.InitialCapacity = n
	}
}

// WithMaxCapacity bounds storage growth. Entity creation past the bound
// returns InvalidEntity.
func WithMaxCapacity(n int) Option {
	return func(w *World) {
		w.cfg.MaxCapacity = n
	}
}

// WithLogger injects the logger used for layout and growth events.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}
