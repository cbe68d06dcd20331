package store

import "errors"

// Sentinel errors so handlers can map failures to statuses without sniffing
// message text.
var (
	ErrNotFound       = errors.New("not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrNoAvailability = errors.New("no available table found for the requested number of guests")
)
