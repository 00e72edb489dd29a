package repositories

import "errors"

// ErrNotFound is returned when no document matches the given identifier.
// Handlers map it to a 404; every other repository error is treated as a
// storage failure.
var ErrNotFound = errors.New("document not found")
