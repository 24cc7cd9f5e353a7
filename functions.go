package flatecs

import (
	"reflect"
	"unsafe"

	"github.com/rotisserie/eris"
)

// GetAs returns a typed pointer to component c of entity id. It checks that T
// matches the registered size, and the registered type when c came from
// Register. Like Get, it does not check presence.
//
// The pointer aliases World storage and is only valid until storage grows.
// Because records are packed without padding, the slot may not be aligned
// for T; GetAs returns ErrMisaligned in that case and Load should be used.
//
// Parameters:
//   - w: The World containing the entity.
//   - id: The entity to read from.
//   - c: The component to read.
//
// Returns:
//   - A pointer to the component data (*T), or an error.
func GetAs[T any](w *World, id EntityID, c ComponentID) (*T, error) {
	b, err := w.Get(id, c)
	if err != nil {
		return nil, err
	}
	if err := checkType[T](w, c); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return new(T), nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(*new(T)) != 0 {
		return nil, eris.Wrapf(ErrMisaligned, "component %d of entity %d is not aligned for %s", c, id, reflect.TypeFor[T]())
	}
	return (*T)(p), nil
}

// Load copies component c of entity id into a value of type T. It works for
// any slot alignment.
func Load[T any](w *World, id EntityID, c ComponentID) (T, error) {
	var v T
	b, err := w.Get(id, c)
	if err != nil {
		return v, err
	}
	if err := checkType[T](w, c); err != nil {
		return v, err
	}
	if len(b) > 0 {
		memCopy(unsafe.Pointer(&v), unsafe.Pointer(unsafe.SliceData(b)), uintptr(len(b)))
	}
	return v, nil
}

// AddAs adds component c to entity id with value v.
func AddAs[T any](w *World, id EntityID, c ComponentID, v T) error {
	if err := w.checkEntity("AddAs", id); err != nil {
		return err
	}
	if err := w.checkComponent("AddAs", c); err != nil {
		return err
	}
	if err := checkType[T](w, c); err != nil {
		return err
	}
	size := unsafe.Sizeof(v)
	if size > 0 {
		memCopy(unsafe.Pointer(unsafe.SliceData(w.componentBytes(id, c))), unsafe.Pointer(&v), size)
	}
	w.entities.masks[id] = w.entities.masks[id].With(c)
	return nil
}

// checkType validates T against component c's registration.
func checkType[T any](w *World, c ComponentID) error {
	t := reflect.TypeFor[T]()
	if rt := w.components.types[c]; rt != nil && rt != t {
		return eris.Wrapf(ErrTypeMismatch, "component %d is registered as %s, not %s", c, rt, t)
	}
	if size := w.components.sizes[c]; size != t.Size() {
		return eris.Wrapf(ErrSizeMismatch, "component %d is %d bytes, %s is %d", c, size, t, t.Size())
	}
	return nil
}
