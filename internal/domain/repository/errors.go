package repository

import "errors"

// Storage-level sentinels. Implementations translate driver errors into
// these so the application layer never imports a driver package.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)
