package repository

import "errors"

// ErrNotFound is returned when a lookup or delete by id matches no row.
var ErrNotFound = errors.New("record not found")
