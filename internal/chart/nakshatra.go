package chart

import (
	"fmt"

	"github.com/navagraha/jyotish/internal/astrotime"
)

// NakshatraSpanDeg is the arc of one lunar mansion, 13 degrees 20 minutes.
const NakshatraSpanDeg = 360.0 / 27

// PadaSpanDeg is the arc of one quarter of a nakshatra, 3 degrees 20 minutes.
const PadaSpanDeg = NakshatraSpanDeg / 4

// NakshatraCount is the number of lunar mansions.
const NakshatraCount = 27

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Nakshatra identifies one of the 27 lunar mansions, zero-indexed from
// Ashwini.
type Nakshatra int

func (n Nakshatra) String() string {
	if n < 0 || n >= NakshatraCount {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

// MarshalText implements encoding.TextMarshaler.
func (n Nakshatra) MarshalText() ([]byte, error) {
	if n < 0 || n >= NakshatraCount {
		return nil, fmt.Errorf("invalid nakshatra index %d", int(n))
	}
	return []byte(nakshatraNames[n]), nil
}

// NakshatraOf returns the lunar mansion containing a sidereal longitude.
func NakshatraOf(lonDeg float64) Nakshatra {
	idx := int(astrotime.NormalizeDegrees(lonDeg)/NakshatraSpanDeg) % NakshatraCount
	return Nakshatra(idx)
}

// PadaOf returns the 1-indexed quarter (1-4) of the nakshatra containing
// a sidereal longitude.
func PadaOf(lonDeg float64) int {
	lon := astrotime.NormalizeDegrees(lonDeg)
	inNak := lon - float64(int(lon/NakshatraSpanDeg))*NakshatraSpanDeg
	pada := int(inNak/PadaSpanDeg) + 1
	if pada > 4 {
		pada = 4
	}
	return pada
}
