package domain

import "errors"

// Sentinel errors for the domain layer. ErrNotFound signals an absent
// entity and is mapped to a 404 at the API boundary, never a fault.
var (
	ErrNotFound = errors.New("domain: not found")
	ErrConflict = errors.New("domain: conflict")
)
