// Package chart derives the angular skeleton of a sidereal chart from
// solved planetary longitudes: ascendant, whole-sign houses, sign and
// nakshatra placements, and the twenty divisional (varga) charts.
package chart

import (
	"math"

	"github.com/navagraha/jyotish/internal/astrotime"
)

// ObliquityDeg returns the mean obliquity of the ecliptic in degrees from
// the standard cubic polynomial in Julian centuries since J2000.
func ObliquityDeg(jd float64) float64 {
	t := astrotime.CenturiesSinceJ2000(jd)
	return 23.4392911111 - 0.0130041667*t - 1.6389e-7*t*t + 5.0361e-7*t*t*t
}

// Ascendant computes the sidereal ascendant degree for an instant and a
// geographic location (degrees, north/east positive). Local sidereal time
// and the obliquity feed the closed-form rising-sign formula; the tropical
// result is shifted to the sidereal frame by the ayanamsa.
func Ascendant(jd, geoLatDeg, geoLonDeg float64) float64 {
	lst := astrotime.LocalSiderealTime(jd, geoLonDeg) * math.Pi / 180
	lat := geoLatDeg * math.Pi / 180
	eps := ObliquityDeg(jd) * math.Pi / 180

	y := -math.Cos(lst) * math.Sin(eps)
	x := -math.Sin(lat)*math.Sin(lst) + math.Cos(lat)*math.Cos(eps)
	tropical := astrotime.NormalizeDegrees(math.Atan2(y, x) * 180 / math.Pi)

	return astrotime.NormalizeDegrees(tropical - astrotime.AyanamsaDeg(jd))
}
