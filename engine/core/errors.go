package core

import (
	"errors"
)

var (
	ErrNilRoot       = errors.New("root node is nil")
	ErrNilMaterial   = errors.New("null material elements are not allowed")
	ErrEmptyMapping  = errors.New("find and replace lists must not be empty")
	ErrMappingLength = errors.New("find and replace element counts must match")
	ErrAssetExists   = errors.New("asset already exists")
	ErrAssetNotFound = errors.New("asset not found")
)

// IsValidationError reports whether err is a precondition failure that
// aborted an operation before any mutation happened.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNilRoot) ||
		errors.Is(err, ErrNilMaterial) ||
		errors.Is(err, ErrEmptyMapping) ||
		errors.Is(err, ErrMappingLength)
}
