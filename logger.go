package flatecs

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// NewLogger builds a console logger writing to out at cfg.LogLevel. A nil out
// writes to stderr.
func NewLogger(cfg Config, out io.Writer) (zerolog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger(), nil
}

// WorldLogger writes structured descriptions of a World.
type WorldLogger struct {
	world  *World
	logger *zerolog.Logger
}

// NewWorldLogger returns a WorldLogger for world writing to logger.
func NewWorldLogger(logger *zerolog.Logger, world *World) WorldLogger {
	return WorldLogger{
		logger: logger,
		world:  world,
	}
}

func (wl *WorldLogger) loadLayoutIntoEvent(event *zerolog.Event) *zerolog.Event {
	r := &wl.world.components
	arr := zerolog.Arr()
	for i := range r.count {
		id := ComponentID(i)
		arr = arr.Dict(zerolog.Dict().
			Int("component_id", int(id)).
			Str("component_name", r.names[id]).
			Uint64("size", uint64(r.sizes[id])).
			Uint64("offset", uint64(r.offsets[id])))
	}
	return event.
		Int("total_components", r.count).
		Array("components", arr).
		Int("total_flags", wl.world.flagCount).
		Uint64("record_size", uint64(r.recordSize))
}

// LogLayout logs the component layout table.
func (wl *WorldLogger) LogLayout(level zerolog.Level) {
	wl.loadLayoutIntoEvent(wl.logger.WithLevel(level)).Msg("layout")
}

// LogEntity logs the components and flags of entity id.
func (wl *WorldLogger) LogEntity(level zerolog.Level, id EntityID) error {
	if err := wl.world.checkEntity("LogEntity", id); err != nil {
		return err
	}
	event := wl.logger.WithLevel(level)
	comps := zerolog.Arr()
	wl.world.Mask(id).ForEach(func(c uint8) {
		comps = comps.Dict(zerolog.Dict().
			Int("component_id", int(c)).
			Str("component_name", wl.world.components.names[c]))
	})
	flags := zerolog.Arr()
	wl.world.Flags(id).ForEach(func(f uint8) {
		flags = flags.Int(int(f))
	})
	event.
		Uint32("entity_id", uint32(id)).
		Bool("alive", wl.world.IsAlive(id)).
		Array("components", comps).
		Array("flags", flags)
	if name := wl.world.Name(id); name != "" {
		event.Str("name", name)
	}
	event.Msg("entity")
	return nil
}

// LogWorld logs the layout together with entity counts.
func (wl *WorldLogger) LogWorld(level zerolog.Level) {
	event := wl.loadLayoutIntoEvent(wl.logger.WithLevel(level))
	event.
		Int("entity_count", wl.world.Count()).
		Int("alive_count", wl.world.AliveCount()).
		Int("capacity", wl.world.Capacity()).
		Msg("world")
}
