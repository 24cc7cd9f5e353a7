package flatecs

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// ComponentLayout describes where one component lives inside a record.
type ComponentLayout struct {
	ID     ComponentID `json:"id"`
	Name   string      `json:"name,omitempty"`
	Size   uintptr     `json:"size"`
	Offset uintptr     `json:"offset"`
}

// Layout is a snapshot of the World's record layout.
type Layout struct {
	Components []ComponentLayout `json:"components"`
	RecordSize uintptr           `json:"record_size"`
	FlagCount  int               `json:"flag_count"`
	Capacity   int               `json:"capacity"`
	Committed  bool              `json:"committed"`
}

// CommitLayout freezes the registries and allocates entity storage for the
// configured initial capacity. It must be called exactly once, after every
// component and flag is registered and before any entity operation.
func (w *World) CommitLayout() error {
	if w.state != stateRegistering {
		return precondition("CommitLayout called twice")
	}
	w.allocate(w.cfg.InitialCapacity)
	w.state = stateCommitted
	w.logger.Debug().
		Int("components", w.components.count).
		Int("flags", w.flagCount).
		Uint64("record_size", uint64(w.components.recordSize)).
		Int("capacity", w.entities.capacity).
		Msg("layout committed")
	return nil
}

// Committed reports whether CommitLayout has been called.
func (w *World) Committed() bool {
	return w.state == stateCommitted
}

// Layout returns a snapshot of the current layout table.
func (w *World) Layout() Layout {
	l := Layout{
		Components: make([]ComponentLayout, w.components.count),
		RecordSize: w.components.recordSize,
		FlagCount:  w.flagCount,
		Capacity:   w.entities.capacity,
		Committed:  w.state == stateCommitted,
	}
	for i := range l.Components {
		id := ComponentID(i)
		l.Components[i] = ComponentLayout{
			ID:     id,
			Name:   w.components.names[id],
			Size:   w.components.sizes[id],
			Offset: w.components.offsets[id],
		}
	}
	return l
}

// WriteJSON writes the layout table as indented JSON.
func (l Layout) WriteJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return eris.Wrap(err, "failed to encode layout")
	}
	return nil
}
