package intervaldict

import "errors"

// ErrKeyNotFound is returned when a point lookup hits an uncovered
// part of the key space.
var ErrKeyNotFound = errors.New("key not found")
