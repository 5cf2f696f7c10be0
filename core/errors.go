package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrUnknownGroup indicates a region record whose group label matches
	// none of the six known groups.
	ErrUnknownGroup = errors.New("core: unknown region group")

	// ErrBadCost indicates a region record whose cost field is not a
	// non-negative integer.
	ErrBadCost = errors.New("core: region cost must be a non-negative integer")

	// ErrRegionNotFound indicates a lookup of a region name that is not
	// present in the graph index.
	ErrRegionNotFound = errors.New("core: region not found")
)
