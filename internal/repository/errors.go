package repository

import "errors"

// ErrNotConfigured is returned by every operation of a store that has no database behind it.
var ErrNotConfigured = errors.New("database not configured")
