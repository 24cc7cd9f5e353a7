package flatecs

// CreateEntity creates or recycles an entity. A recycled ID is popped from the
// free stack; otherwise the next dense index is used, growing storage when it
// is full. The new entity has no components and only the alive flag set.
//
// Returns:
//   - The new EntityID, or InvalidEntity and ErrCapacityExhausted if storage
//     could not grow. ErrPreconditionViolated before CommitLayout.
func (w *World) CreateEntity() (EntityID, error) {
	if err := w.checkCommitted("CreateEntity"); err != nil {
		return InvalidEntity, err
	}
	return w.createEntity()
}

// CreateNamedEntity creates an entity and stores name in its info component.
// The name is ignored if EnableInfo was not called.
func (w *World) CreateNamedEntity(name string) (EntityID, error) {
	id, err := w.CreateEntity()
	if err != nil {
		return id, err
	}
	if w.hasInfo {
		w.writeName(id, name)
		w.entities.masks[id] = w.entities.masks[id].With(w.infoID)
	}
	return id, nil
}

func (w *World) createEntity() (EntityID, error) {
	es := &w.entities
	var id EntityID
	if last := len(es.freeIDs) - 1; last >= 0 {
		// pop an ID
		id = es.freeIDs[last]
		es.freeIDs = es.freeIDs[:last]
	} else {
		if err := w.grow(es.count + 1); err != nil {
			return InvalidEntity, err
		}
		id = EntityID(es.count)
		es.count++
	}
	es.masks[id] = 0
	es.flags[id] = DefaultFlags
	return id, nil
}

// CreateEntities creates a batch of entities with no components. Storage for
// the whole batch is reserved up front, so either every entity is created or
// none is.
func (w *World) CreateEntities(n int) ([]EntityID, error) {
	if err := w.checkCommitted("CreateEntities"); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	if fresh := n - len(w.entities.freeIDs); fresh > 0 {
		if err := w.grow(w.entities.count + fresh); err != nil {
			return nil, err
		}
	}
	ids := make([]EntityID, n)
	for i := range ids {
		// cannot fail, capacity is reserved
		ids[i], _ = w.createEntity()
	}
	return ids, nil
}

// DeleteEntity clears the entity's component and flag masks and pushes its ID
// onto the free stack. Deleting a dead or out-of-range entity does nothing.
// Component bytes are left in place and storage never shrinks.
func (w *World) DeleteEntity(id EntityID) {
	if !w.IsAlive(id) {
		return
	}
	w.entities.masks[id] = 0
	w.entities.flags[id] = 0
	w.entities.freeIDs = append(w.entities.freeIDs, id)
}

// DeleteEntities deletes a batch of entities.
func (w *World) DeleteEntities(ids ...EntityID) {
	for _, id := range ids {
		w.DeleteEntity(id)
	}
}

// DuplicateEntity creates a new entity whose record bytes and masks are copied
// from id. The copy is independent of the source.
func (w *World) DuplicateEntity(id EntityID) (EntityID, error) {
	if err := w.checkEntity("DuplicateEntity", id); err != nil {
		return InvalidEntity, err
	}
	if !w.IsAlive(id) {
		return InvalidEntity, precondition("DuplicateEntity: entity %d is not alive", id)
	}
	dup, err := w.createEntity()
	if err != nil {
		return InvalidEntity, err
	}
	// createEntity may have grown storage, so records are taken afterwards
	copy(w.record(dup), w.record(id))
	w.entities.masks[dup] = w.entities.masks[id]
	w.entities.flags[dup] = w.entities.flags[id]
	return dup, nil
}

// IsAlive reports whether id refers to a live entity.
func (w *World) IsAlive(id EntityID) bool {
	if w.state != stateCommitted || int64(id) >= int64(w.entities.count) {
		return false
	}
	return w.entities.flags[id].Has(AliveFlag)
}
