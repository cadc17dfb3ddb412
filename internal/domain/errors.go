package domain

import "errors"

var (
	// ErrPlantNotFound is returned when a plant cannot be found in the upstream catalog
	ErrPlantNotFound = errors.New("plant not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogAPIFailure is returned when an upstream catalog request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrStaleSelection is returned when a plants fetch resolves after the
	// user has already switched to a different category
	ErrStaleSelection = errors.New("selection changed while fetch was in flight")
)
