package chart

import "errors"

// Sentinel errors for chart construction and table lookups.
var (
	// ErrInvalidHouse indicates a house number outside 1-12.
	ErrInvalidHouse = errors.New("house number outside 1-12")
	// ErrInvalidDivisionalChart indicates an unknown varga key.
	ErrInvalidDivisionalChart = errors.New("unknown divisional chart")
)
