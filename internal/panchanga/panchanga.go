// Package panchanga derives the five limbs of the Vedic calendar day:
// tithi, vara, nakshatra, yoga, and karana. Everything here is a pure
// function of the Julian Day and the sidereal solar and lunar longitudes.
package panchanga

import (
	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/chart"
)

// Arcs of the lunar-day subdivisions, in degrees of Sun-Moon elongation.
const (
	tithiSpanDeg  = 12.0
	karanaSpanDeg = 6.0
	yogaSpanDeg   = 360.0 / 27
)

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarman", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva", "Vyaghata",
	"Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha",
	"Shiva", "Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra",
	"Vaidhriti",
}

// movableKaranas repeat eight times through the lunar month; the four
// fixed karanas occupy the first half-tithi and the last three.
var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// Paksha is the waxing or waning fortnight.
type Paksha string

const (
	Shukla  Paksha = "Shukla"
	Krishna Paksha = "Krishna"
)

// Panchanga is the five-limb summary for one instant.
type Panchanga struct {
	Tithi          int             `json:"tithi"`
	Paksha         Paksha          `json:"paksha"`
	Vara           string          `json:"vara"`
	Nakshatra      chart.Nakshatra `json:"nakshatra"`
	NakshatraIndex int             `json:"nakshatra_index"`
	Yoga           string          `json:"yoga"`
	YogaIndex      int             `json:"yoga_index"`
	Karana         string          `json:"karana"`
	KaranaIndex    int             `json:"karana_index"`
}

// Compute derives the five limbs from the Julian Day and the sidereal
// longitudes of the Sun and Moon. The tithi is 1-indexed within the
// whole month (1-30); nakshatra, yoga, and karana indexes are
// zero-indexed into their cycles.
func Compute(jd, sunLonDeg, moonLonDeg float64) Panchanga {
	elong := astrotime.NormalizeDegrees(moonLonDeg - sunLonDeg)

	tithi := int(elong/tithiSpanDeg) + 1
	if tithi > 30 {
		tithi = 30
	}
	paksha := Shukla
	if tithi > 15 {
		paksha = Krishna
	}

	yogaIdx := int(astrotime.NormalizeDegrees(moonLonDeg+sunLonDeg)/yogaSpanDeg) % len(yogaNames)
	karanaIdx := karanaIndex(elong)

	return Panchanga{
		Tithi:          tithi,
		Paksha:         paksha,
		Vara:           astrotime.Weekday(jd),
		Nakshatra:      chart.NakshatraOf(moonLonDeg),
		NakshatraIndex: int(chart.NakshatraOf(moonLonDeg)),
		Yoga:           yogaNames[yogaIdx],
		YogaIndex:      yogaIdx,
		Karana:         karanaName(karanaIdx),
		KaranaIndex:    karanaIdx,
	}
}

func karanaIndex(elongDeg float64) int {
	k := int(elongDeg / karanaSpanDeg)
	if k > 59 {
		k = 59
	}
	return k
}

// karanaName resolves the half-tithi ruler. Kimstughna opens the month,
// Shakuni, Chatushpada, and Naga close it, and the seven movable karanas
// cycle through everything between.
func karanaName(k int) string {
	switch {
	case k == 0:
		return "Kimstughna"
	case k == 57:
		return "Shakuni"
	case k == 58:
		return "Chatushpada"
	case k == 59:
		return "Naga"
	default:
		return movableKaranas[(k-1)%len(movableKaranas)]
	}
}
