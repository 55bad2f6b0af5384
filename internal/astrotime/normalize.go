package astrotime

import "math"

// NormalizeDegrees maps any angle onto [0,360). Total over all finite
// inputs, idempotent on already-normalized values.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		// Rounding after the += 360 above can land exactly on 360.
		d -= 360
	}
	return d
}

// NormalizeRadians maps any angle onto [0,2pi).
func NormalizeRadians(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r -= 2 * math.Pi
	}
	return r
}
