package sim

import "errors"

// Error taxonomy surfaced to callers. OK is represented by a nil error.
//
// ErrBusy is reserved for parity with the original error taxonomy; the core
// never actually returns it today (see patika_types.h's PATIKA_ERR_BUSY,
// annotated "reserved" there too).
var (
	ErrQueueFull          = errors.New("patika: command queue full")
	ErrInvalidID          = errors.New("patika: invalid or stale id")
	ErrOutOfBounds        = errors.New("patika: coordinate out of bounds")
	ErrCapacity           = errors.New("patika: pool at capacity")
	ErrBusy               = errors.New("patika: resource busy")
	ErrInvalidCommandType = errors.New("patika: unknown command type")
)
