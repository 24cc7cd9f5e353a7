package flatecs

import "bytes"

// InfoNameSize is the byte size of the info component. Names are stored
// NUL-terminated, so at most InfoNameSize-1 bytes are kept.
const InfoNameSize = 32

// Info is the reserved component holding an entity's name.
type Info struct {
	Name [InfoNameSize]byte
}

// EnableInfo registers the reserved Info component. Entities created with
// CreateNamedEntity get it automatically. It must be called before
// CommitLayout and at most once.
func (w *World) EnableInfo() (ComponentID, error) {
	if w.hasInfo {
		return 0, precondition("EnableInfo called twice")
	}
	id, err := Register[Info](w)
	if err != nil {
		return 0, err
	}
	w.components.names[id] = "info"
	w.infoID = id
	w.hasInfo = true
	return id, nil
}

// InfoComponent returns the ID of the Info component and whether it is
// enabled.
func (w *World) InfoComponent() (ComponentID, bool) {
	return w.infoID, w.hasInfo
}

// Name returns the name stored for entity id, or "" if the entity has no Info
// component.
func (w *World) Name(id EntityID) string {
	if !w.hasInfo || !w.Has(id, w.infoID) {
		return ""
	}
	b := w.componentBytes(id, w.infoID)
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b)
}

// SetName stores name in the Info component of entity id, adding the
// component if needed.
func (w *World) SetName(id EntityID, name string) error {
	if !w.hasInfo {
		return precondition("SetName: info component not enabled")
	}
	if err := w.checkEntity("SetName", id); err != nil {
		return err
	}
	w.writeName(id, name)
	w.entities.masks[id] = w.entities.masks[id].With(w.infoID)
	return nil
}

func (w *World) writeName(id EntityID, name string) {
	b := w.componentBytes(id, w.infoID)
	n := copy(b[:InfoNameSize-1], name)
	clear(b[n:])
}
