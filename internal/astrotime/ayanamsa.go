package astrotime

import "math"

// Linear Lahiri approximation anchored at J2000.0. This is deliberately
// not the full nutation-aware Lahiri definition: precession is modeled as
// a constant secular rate, which drifts from published ephemeris values by
// a few arcseconds per decade. Known precision limitation.
const (
	// AyanamsaBaseDeg is the ayanamsa at J2000.0, degrees.
	AyanamsaBaseDeg = 23.8625750

	// precessionRateArcsec is the secular precession rate, arcseconds per
	// Julian century.
	precessionRateArcsec = 50.2388475
)

// AyanamsaDeg returns the tropical-to-sidereal offset in degrees at jd.
// Strictly increasing in jd.
func AyanamsaDeg(jd float64) float64 {
	return AyanamsaBaseDeg + precessionRateArcsec*CenturiesSinceJ2000(jd)/3600
}

// Ayanamsa returns the tropical-to-sidereal offset in radians at jd.
func Ayanamsa(jd float64) float64 {
	return AyanamsaDeg(jd) * math.Pi / 180
}
