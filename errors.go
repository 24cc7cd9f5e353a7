package flatecs

import "github.com/rotisserie/eris"

var (
	// ErrPreconditionViolated is returned when a caller breaks the World's
	// contract: registering past the cap or after commit, committing twice,
	// operating on entities before commit, or passing an out-of-range ID.
	ErrPreconditionViolated = eris.New("ecs: precondition violated")

	// ErrCapacityExhausted is returned alongside InvalidEntity when entity
	// storage could not grow.
	ErrCapacityExhausted = eris.New("ecs: entity capacity exhausted")

	// ErrSizeMismatch is returned when component bytes do not match the
	// registered component size.
	ErrSizeMismatch = eris.New("ecs: component size mismatch")

	// ErrTypeMismatch is returned by the typed accessors when T does not match
	// the type a component was registered with.
	ErrTypeMismatch = eris.New("ecs: component type mismatch")

	// ErrMisaligned is returned by GetAs when a packed component slot is not
	// aligned for the requested type.
	ErrMisaligned = eris.New("ecs: component slot misaligned")

	// ErrPointerComponent is returned by Register when T holds pointers, which
	// cannot live inside the World's byte records.
	ErrPointerComponent = eris.New("ecs: component type contains pointers")
)

func precondition(format string, args ...any) error {
	return eris.Wrapf(ErrPreconditionViolated, format, args...)
}
