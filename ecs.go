// Package flatecs implements a small, flat Entity Component System for Go.
//
// Features:
// - One fixed-stride record per entity, laid out in component registration order.
// - Component presence and boolean flags packed into one 32-bit word each.
// - Entity IDs are dense and recycled through a free-list stack.
// - Linear-scan queries over required component and flag masks.
// - No archetypes, no chunks, no allocations on Get/Has/Add/Remove.
//
// A World is used in three phases: register components and flags, commit the
// layout once, then create, mutate, delete and query entities.
package flatecs

import "math"

const (
	// MaxComponents is the number of component types a World can hold. It
	// matches the width of Mask.
	MaxComponents = 32
	// MaxFlags is the number of flags a World can hold, AliveFlag included.
	MaxFlags = 32

	// DefaultInitialCapacity is the number of entity slots allocated by
	// CommitLayout when no capacity is configured.
	DefaultInitialCapacity = 32
)

// EntityID is a recyclable handle identifying one entity in a World.
type EntityID uint32

// InvalidEntity is returned by entity creation when storage could not grow.
// It is never a valid handle.
const InvalidEntity EntityID = math.MaxUint32

// ComponentID identifies a registered component type.
type ComponentID = uint8

// FlagID identifies a registered flag.
type FlagID = uint8

// AliveFlag is reserved by every World. It is set by CreateEntity and cleared
// by DeleteEntity.
const AliveFlag FlagID = 0

const (
	// Unfiltered is the empty component mask. Every entity satisfies it.
	Unfiltered Mask = 0
	// DefaultFlags only requires the entity to be alive.
	DefaultFlags Mask = 1 << AliveFlag
)
