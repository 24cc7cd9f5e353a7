package flatecs

import (
	"reflect"
	"unsafe"

	"github.com/rotisserie/eris"
)

// RegisterComponent registers an untyped component of size bytes and returns
// its ID. IDs are handed out in registration order and the component's bytes
// are placed right after those of the previously registered component.
//
// Parameters:
//   - size: The number of bytes the component occupies in each record.
//
// Returns:
//   - The new ComponentID, or ErrPreconditionViolated if MaxComponents are
//     already registered or the layout has been committed.
func (w *World) RegisterComponent(size uintptr) (ComponentID, error) {
	return w.registerComponent(size, nil, "")
}

// RegisterNamedComponent is RegisterComponent with a name used in logs and
// layout dumps.
func (w *World) RegisterNamedComponent(name string, size uintptr) (ComponentID, error) {
	return w.registerComponent(size, nil, name)
}

// Register registers T as a component. T must be plain data: types holding
// pointers, slices, maps, strings, interfaces or channels are rejected
// because their bytes would be hidden from the garbage collector.
//
// The returned ID also enables type checking in GetAs, Load and AddAs.
func Register[T any](w *World) (ComponentID, error) {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		return 0, eris.Wrapf(ErrPointerComponent, "cannot register %s", t)
	}
	var zero T
	return w.registerComponent(unsafe.Sizeof(zero), t, t.Name())
}

func (w *World) registerComponent(size uintptr, t reflect.Type, name string) (ComponentID, error) {
	if w.state != stateRegistering {
		return 0, precondition("register component %q after CommitLayout", name)
	}
	r := &w.components
	if r.count >= MaxComponents {
		return 0, precondition("register component %q: maximum number of component types (%d) reached", name, MaxComponents)
	}
	id := ComponentID(r.count)
	r.sizes[id] = size
	r.offsets[id] = r.recordSize
	r.types[id] = t
	r.names[id] = name
	r.recordSize += size
	r.count++
	w.logger.Trace().
		Uint8("component_id", id).
		Str("component_name", name).
		Uint64("size", uint64(size)).
		Uint64("offset", uint64(r.offsets[id])).
		Msg("component registered")
	return id, nil
}

// RegisterFlag registers a new flag and returns its ID. Flag 0 is always the
// alive flag, so the first user flag is 1.
func (w *World) RegisterFlag() (FlagID, error) {
	if w.state != stateRegistering {
		return 0, precondition("register flag after CommitLayout")
	}
	if w.flagCount >= MaxFlags {
		return 0, precondition("register flag: maximum number of flags (%d) reached", MaxFlags)
	}
	id := FlagID(w.flagCount)
	w.flagCount++
	return id, nil
}

// ComponentCount returns the number of registered components.
func (w *World) ComponentCount() int {
	return w.components.count
}

// FlagCount returns the number of registered flags, the alive flag included.
func (w *World) FlagCount() int {
	return w.flagCount
}

// ComponentSize returns the byte size of component c, or 0 if c is not
// registered.
func (w *World) ComponentSize(c ComponentID) uintptr {
	if int(c) >= w.components.count {
		return 0
	}
	return w.components.sizes[c]
}

// ComponentOffset returns the byte offset of component c within a record, or
// 0 if c is not registered.
func (w *World) ComponentOffset(c ComponentID) uintptr {
	if int(c) >= w.components.count {
		return 0
	}
	return w.components.offsets[c]
}

// RecordSize returns the stride of one entity record in bytes.
func (w *World) RecordSize() uintptr {
	return w.components.recordSize
}

// hasPointers reports whether values of t hold anything the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
