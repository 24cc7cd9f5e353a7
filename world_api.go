package flatecs

import "github.com/rotisserie/eris"

// Get returns the bytes of component c inside entity id's record. The slice
// aliases World storage and stays valid until storage grows. The presence
// mask is not checked: reading a component that was never added yields
// whatever bytes the slot holds. Call Has first.
func (w *World) Get(id EntityID, c ComponentID) ([]byte, error) {
	if err := w.checkEntity("Get", id); err != nil {
		return nil, err
	}
	if err := w.checkComponent("Get", c); err != nil {
		return nil, err
	}
	return w.componentBytes(id, c), nil
}

// Has reports whether entity id has component c. Out-of-range IDs have no
// components.
func (w *World) Has(id EntityID, c ComponentID) bool {
	if w.state != stateCommitted || int64(id) >= int64(w.entities.count) {
		return false
	}
	return w.entities.masks[id].Has(c)
}

// Add marks component c present on entity id and copies src into its slot,
// overwriting previous contents. len(src) must equal the registered size.
func (w *World) Add(id EntityID, c ComponentID, src []byte) error {
	if err := w.checkEntity("Add", id); err != nil {
		return err
	}
	if err := w.checkComponent("Add", c); err != nil {
		return err
	}
	if size := w.components.sizes[c]; uintptr(len(src)) != size {
		return eris.Wrapf(ErrSizeMismatch, "component %d is %d bytes, got %d", c, size, len(src))
	}
	copy(w.componentBytes(id, c), src)
	w.entities.masks[id] = w.entities.masks[id].With(c)
	return nil
}

// Remove clears component c from entity id. The bytes are left in place until
// the next Add overwrites them.
func (w *World) Remove(id EntityID, c ComponentID) error {
	if err := w.checkEntity("Remove", id); err != nil {
		return err
	}
	if err := w.checkComponent("Remove", c); err != nil {
		return err
	}
	w.entities.masks[id] = w.entities.masks[id].Without(c)
	return nil
}

// Mask returns the component presence mask of entity id.
func (w *World) Mask(id EntityID) Mask {
	if w.state != stateCommitted || int64(id) >= int64(w.entities.count) {
		return 0
	}
	return w.entities.masks[id]
}

// HasFlag reports whether flag f is set on entity id.
func (w *World) HasFlag(id EntityID, f FlagID) bool {
	if w.state != stateCommitted || int64(id) >= int64(w.entities.count) {
		return false
	}
	return w.entities.flags[id].Has(f)
}

// SetFlag sets flag f on entity id. The alive flag is managed by
// CreateEntity and DeleteEntity and cannot be set here.
func (w *World) SetFlag(id EntityID, f FlagID) error {
	if err := w.checkFlag("SetFlag", id, f); err != nil {
		return err
	}
	w.entities.flags[id] = w.entities.flags[id].With(f)
	return nil
}

// UnsetFlag clears flag f on entity id. The alive flag cannot be cleared here,
// use DeleteEntity.
func (w *World) UnsetFlag(id EntityID, f FlagID) error {
	if err := w.checkFlag("UnsetFlag", id, f); err != nil {
		return err
	}
	w.entities.flags[id] = w.entities.flags[id].Without(f)
	return nil
}

// Flags returns the flag mask of entity id.
func (w *World) Flags(id EntityID) Mask {
	if w.state != stateCommitted || int64(id) >= int64(w.entities.count) {
		return 0
	}
	return w.entities.flags[id]
}

func (w *World) checkFlag(op string, id EntityID, f FlagID) error {
	if err := w.checkEntity(op, id); err != nil {
		return err
	}
	if f == AliveFlag {
		return precondition("%s: the alive flag is managed by CreateEntity and DeleteEntity", op)
	}
	if int(f) >= w.flagCount {
		return precondition("%s: flag %d not registered", op, f)
	}
	return nil
}

// componentBytes returns the slot of component c in entity id's record.
func (w *World) componentBytes(id EntityID, c ComponentID) []byte {
	start := uintptr(id)*w.components.recordSize + w.components.offsets[c]
	end := start + w.components.sizes[c]
	return w.entities.data[start:end:end]
}
