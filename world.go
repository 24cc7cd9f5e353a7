package flatecs

import (
	"math"
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type worldState uint8

const (
	stateRegistering worldState = iota
	stateCommitted
	stateFreed
)

// componentRegistry holds the layout table. Offsets are the running sum of
// the sizes registered before each component.
type componentRegistry struct {
	sizes      [MaxComponents]uintptr
	offsets    [MaxComponents]uintptr
	types      [MaxComponents]reflect.Type // nil for untyped registrations
	names      [MaxComponents]string
	count      int
	recordSize uintptr
}

// entityStore holds the per-entity arrays. data, masks, flags and the query
// buffer always share the same capacity so an index means the same slot in
// each of them.
type entityStore struct {
	data     []byte     // capacity * recordSize bytes
	masks    []Mask     // component presence, len = capacity
	flags    []Mask     // flag bits, len = capacity
	freeIDs  []EntityID // stack of recycled entity IDs
	count    int        // number of slots handed out so far
	capacity int
}

// World owns the registries and the entity storage. A World is not safe for
// concurrent use.
type World struct {
	logger     zerolog.Logger
	query      QueryResult
	entities   entityStore
	components componentRegistry
	cfg        Config
	flagCount  int
	infoID     ComponentID
	hasInfo    bool
	state      worldState
}

// NewWorld creates a World accepting registrations. The alive flag is
// registered as flag 0.
//
// Parameters:
//   - opts: Options overriding DefaultConfig and the no-op logger.
//
// Returns:
//   - The newly created World, or an error if the configuration is invalid.
func NewWorld(opts ...Option) (*World, error) {
	w := &World{
		logger: zerolog.Nop(),
		cfg:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.cfg.Validate(); err != nil {
		return nil, err
	}
	// reserve the alive flag
	w.flagCount = 1
	return w, nil
}

// Config returns the configuration the World was created with.
func (w *World) Config() Config {
	return w.cfg
}

// Logger returns the World's logger.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// InjectLogger replaces the World's logger.
func (w *World) InjectLogger(logger *zerolog.Logger) {
	w.logger = *logger
}

// Free releases all storage. The World cannot be used afterwards.
func (w *World) Free() {
	w.entities = entityStore{}
	w.query = QueryResult{}
	w.state = stateFreed
	w.logger.Debug().Msg("world freed")
}

// Count returns the number of entity slots handed out so far, dead or alive.
func (w *World) Count() int {
	return w.entities.count
}

// Capacity returns the number of entity slots currently allocated.
func (w *World) Capacity() int {
	return w.entities.capacity
}

// AliveCount returns the number of live entities.
func (w *World) AliveCount() int {
	return w.entities.count - len(w.entities.freeIDs)
}

func (w *World) checkCommitted(op string) error {
	switch w.state {
	case stateRegistering:
		return precondition("%s before CommitLayout", op)
	case stateFreed:
		return precondition("%s on a freed world", op)
	}
	return nil
}

func (w *World) checkEntity(op string, id EntityID) error {
	if err := w.checkCommitted(op); err != nil {
		return err
	}
	if int64(id) >= int64(w.entities.count) {
		return precondition("%s: entity %d out of range (count %d)", op, id, w.entities.count)
	}
	return nil
}

func (w *World) checkComponent(op string, c ComponentID) error {
	if int(c) >= w.components.count {
		return precondition("%s: component %d not registered", op, c)
	}
	return nil
}

// allocate sets up storage for capacity slots. Used by CommitLayout.
func (w *World) allocate(capacity int) {
	w.entities = entityStore{
		data:     make([]byte, uintptr(capacity)*w.components.recordSize),
		masks:    make([]Mask, capacity),
		flags:    make([]Mask, capacity),
		freeIDs:  make([]EntityID, 0, capacity),
		capacity: capacity,
	}
	w.query = QueryResult{Entities: make([]EntityID, 0, capacity)}
}

// nextCapacity doubles the current capacity until it holds need slots,
// clamping to the configured maximum and the entity ID space.
func (w *World) nextCapacity(need int) (int, error) {
	limit := int64(InvalidEntity)
	if w.cfg.MaxCapacity > 0 {
		limit = int64(w.cfg.MaxCapacity)
	}
	if rs := w.components.recordSize; rs > 0 {
		if byBytes := int64(math.MaxInt / rs); byBytes < limit {
			limit = byBytes
		}
	}
	if int64(need) > limit {
		return 0, eris.Wrapf(ErrCapacityExhausted, "need %d slots, limit is %d", need, limit)
	}
	newCap := int64(max(w.entities.capacity, 1))
	for newCap < int64(need) {
		newCap *= 2
	}
	return int(min(newCap, limit)), nil
}

// grow makes room for at least need slots. All arrays are allocated before
// any of them is swapped in, so a failure leaves the World untouched.
func (w *World) grow(need int) error {
	if need <= w.entities.capacity {
		return nil
	}
	oldCap := w.entities.capacity
	newCap, err := w.nextCapacity(need)
	if err != nil {
		w.logger.Warn().
			Int("capacity", oldCap).
			Int("requested", need).
			Int("max_capacity", w.cfg.MaxCapacity).
			Msg("entity storage cannot grow")
		return err
	}
	delta := newCap - oldCap
	data := extendByteSlice(w.entities.data, uintptr(delta)*w.components.recordSize)
	masks := extendSlice(w.entities.masks, delta)
	flags := extendSlice(w.entities.flags, delta)
	freeIDs := make([]EntityID, len(w.entities.freeIDs), newCap)
	copy(freeIDs, w.entities.freeIDs)
	query := make([]EntityID, len(w.query.Entities), newCap)
	copy(query, w.query.Entities)

	w.entities.data = data
	w.entities.masks = masks
	w.entities.flags = flags
	w.entities.freeIDs = freeIDs
	w.entities.capacity = newCap
	w.query.Entities = query

	w.logger.Debug().
		Int("old_capacity", oldCap).
		Int("new_capacity", newCap).
		Int("record_size", int(w.components.recordSize)).
		Msg("entity storage grown")
	return nil
}

// record returns the bytes of entity id's record.
func (w *World) record(id EntityID) []byte {
	rs := w.components.recordSize
	start := uintptr(id) * rs
	return w.entities.data[start : start+rs : start+rs]
}
