// Package kundali composes the full birth-chart pipeline: time
// conversion, planetary positions, ascendant and houses, the twenty
// divisional charts, and the analysis layer, assembled into one
// serializable result graph.
package kundali

import (
	"fmt"
	"time"

	"github.com/navagraha/jyotish/internal/astrotime"
)

// BirthData is the validated input to a chart computation.
type BirthData struct {
	Instant   time.Time `json:"instant"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NewBirthData validates the birth place at construction. Out-of-range
// coordinates are rejected immediately, never clamped.
func NewBirthData(instant time.Time, latitude, longitude float64) (BirthData, error) {
	if latitude < -90 || latitude > 90 {
		return BirthData{}, fmt.Errorf("%w: %g", ErrInvalidLatitude, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return BirthData{}, fmt.Errorf("%w: %g", ErrInvalidLongitude, longitude)
	}
	return BirthData{Instant: instant, Latitude: latitude, Longitude: longitude}, nil
}

// JulianDay converts the birth instant to a Julian Day number.
func (b BirthData) JulianDay() float64 {
	return astrotime.FromTime(b.Instant)
}
