package kundali

import "errors"

var (
	// ErrInvalidLongitude rejects a birth longitude outside [-180, 180].
	ErrInvalidLongitude = errors.New("longitude out of range [-180, 180]")
	// ErrInvalidLatitude rejects a birth latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("latitude out of range [-90, 90]")
	// ErrCalculation indicates an expected body was absent from the
	// working set mid-pipeline.
	ErrCalculation = errors.New("calculation failed")
)
