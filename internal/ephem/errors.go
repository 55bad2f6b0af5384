package ephem

import "errors"

// Sentinel errors for orbital-element handling and position solving.
var (
	// ErrData indicates malformed or degenerate upstream element data
	// (NaN, non-positive semi-major axis, hyperbolic eccentricity).
	ErrData = errors.New("malformed ephemeris element data")
	// ErrCalculation indicates a numeric solve failed, e.g. the Kepler
	// iteration did not converge within its iteration budget.
	ErrCalculation = errors.New("calculation failed")
	// ErrNoElements indicates the provider has no elements for a body.
	ErrNoElements = errors.New("no orbital elements for body")
)
