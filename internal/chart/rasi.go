package chart

import (
	"math"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/graha"
)

// RasiDetails decomposes a sidereal longitude into its sign and a
// sexagesimal in-sign position. Total over all finite inputs; a longitude
// arbitrarily close to 360 stays in Meena rather than wrapping to a
// thirteenth sign.
func RasiDetails(lonDeg float64) (sign graha.Rasi, deg, min int, sec float64) {
	lon := astrotime.NormalizeDegrees(lonDeg)
	idx := int(lon/30) % 12
	sign = graha.Rasi(idx)

	inSign := lon - float64(idx)*30
	deg = int(inSign)
	rem := (inSign - float64(deg)) * 60
	min = int(rem)
	sec = (rem - float64(min)) * 60
	return sign, deg, min, sec
}

// SignOf returns the sign containing a sidereal longitude.
func SignOf(lonDeg float64) graha.Rasi {
	return graha.Rasi(int(astrotime.NormalizeDegrees(lonDeg)/30) % 12)
}

// DegreeInSign returns the offset of a longitude within its sign.
func DegreeInSign(lonDeg float64) float64 {
	return math.Mod(astrotime.NormalizeDegrees(lonDeg), 30)
}
