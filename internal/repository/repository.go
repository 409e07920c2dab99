// internal/repository/repository.go
package repository

import "errors"

// ErrNotFound is returned when a record does not exist within the caller's
// business scope. Handlers map it to 404.
var ErrNotFound = errors.New("record not found")
