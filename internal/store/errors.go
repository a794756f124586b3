package store

import "errors"

var (
	// ErrNotFound is returned when a referenced artifact or record does not
	// exist. This usually means the caller holds a stale reference.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a guarded review update lost the race to
	// a concurrent writer. Callers retry with fresh state; it is never
	// surfaced outside the scheduler.
	ErrConflict = errors.New("concurrent update conflict")
)
