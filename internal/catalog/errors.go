package catalog

import "errors"

// ErrRegionNotFound is returned for a slug outside the region table.
var ErrRegionNotFound = errors.New("region not found")

// ErrDishNotFound is returned when a region document has no dish with the
// requested id.
var ErrDishNotFound = errors.New("dish not found")
