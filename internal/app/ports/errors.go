package ports

import "errors"

// ErrNotFound is returned by repositories when an agent has no stored
// records yet.
var ErrNotFound = errors.New("not found")
