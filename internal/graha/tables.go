package graha

import "fmt"

// DayNature classifies when a graha gains kala bala.
type DayNature int

const (
	DayStrong DayNature = iota
	NightStrong
	AlwaysStrong
)

// Properties is the canonical per-graha constant record. All dignity,
// strength, aspect, and dasha lookups in the engine read from this single
// table.
type Properties struct {
	OwnSigns     []Rasi
	Moolatrikona Rasi
	Exaltation   Rasi
	Debilitation Rasi
	Friends      []Graha
	Enemies      []Graha

	// NaturalBala is the naisargika strength, descending Sun through
	// Saturn on a 7-step scale. The nodes carry none.
	NaturalBala float64

	// DigBalaHouse is the 1-indexed house (from the ascendant) in which
	// the graha is directionally strong, or 0 for the nodes.
	DigBalaHouse int

	Nature DayNature

	// Aspects maps a 1-indexed house offset (counted from the graha's own
	// house) to the strength of the aspect cast on that offset. Every
	// graha casts the full 7th aspect; Mars, Jupiter, and Saturn add
	// their special aspects at three-quarter strength.
	Aspects map[int]float64

	// DashaYears is the graha's weight in the 120-year Vimshottari cycle.
	DashaYears float64
}

var properties = [Count]Properties{
	Sun: {
		OwnSigns:     []Rasi{Simha},
		Moolatrikona: Simha,
		Exaltation:   Mesha,
		Debilitation: Tula,
		Friends:      []Graha{Moon, Mars, Jupiter},
		Enemies:      []Graha{Venus, Saturn},
		NaturalBala:  1.0,
		DigBalaHouse: 10,
		Nature:       DayStrong,
		Aspects:      map[int]float64{7: 1.0},
		DashaYears:   6,
	},
	Moon: {
		OwnSigns:     []Rasi{Karka},
		Moolatrikona: Vrishabha,
		Exaltation:   Vrishabha,
		Debilitation: Vrischika,
		Friends:      []Graha{Sun, Mercury},
		Enemies:      []Graha{},
		NaturalBala:  6.0 / 7,
		DigBalaHouse: 4,
		Nature:       NightStrong,
		Aspects:      map[int]float64{7: 1.0},
		DashaYears:   10,
	},
	Mars: {
		OwnSigns:     []Rasi{Mesha, Vrischika},
		Moolatrikona: Mesha,
		Exaltation:   Makara,
		Debilitation: Karka,
		Friends:      []Graha{Sun, Moon, Jupiter},
		Enemies:      []Graha{Mercury},
		NaturalBala:  2.0 / 7,
		DigBalaHouse: 10,
		Nature:       NightStrong,
		Aspects:      map[int]float64{4: 0.75, 7: 1.0, 8: 0.75},
		DashaYears:   7,
	},
	Mercury: {
		OwnSigns:     []Rasi{Mithuna, Kanya},
		Moolatrikona: Kanya,
		Exaltation:   Kanya,
		Debilitation: Meena,
		Friends:      []Graha{Sun, Venus},
		Enemies:      []Graha{Moon},
		NaturalBala:  3.0 / 7,
		DigBalaHouse: 1,
		Nature:       AlwaysStrong,
		Aspects:      map[int]float64{7: 1.0},
		DashaYears:   17,
	},
	Jupiter: {
		OwnSigns:     []Rasi{Dhanu, Meena},
		Moolatrikona: Dhanu,
		Exaltation:   Karka,
		Debilitation: Makara,
		Friends:      []Graha{Sun, Moon, Mars},
		Enemies:      []Graha{Mercury, Venus},
		NaturalBala:  4.0 / 7,
		DigBalaHouse: 1,
		Nature:       DayStrong,
		Aspects:      map[int]float64{5: 0.75, 7: 1.0, 9: 0.75},
		DashaYears:   16,
	},
	Venus: {
		OwnSigns:     []Rasi{Vrishabha, Tula},
		Moolatrikona: Tula,
		Exaltation:   Meena,
		Debilitation: Kanya,
		Friends:      []Graha{Mercury, Saturn},
		Enemies:      []Graha{Sun, Moon},
		NaturalBala:  5.0 / 7,
		DigBalaHouse: 4,
		Nature:       DayStrong,
		Aspects:      map[int]float64{7: 1.0},
		DashaYears:   20,
	},
	Saturn: {
		OwnSigns:     []Rasi{Makara, Kumbha},
		Moolatrikona: Kumbha,
		Exaltation:   Tula,
		Debilitation: Mesha,
		Friends:      []Graha{Mercury, Venus},
		Enemies:      []Graha{Sun, Moon, Mars},
		NaturalBala:  1.0 / 7,
		DigBalaHouse: 7,
		Nature:       NightStrong,
		Aspects:      map[int]float64{3: 0.75, 7: 1.0, 10: 0.75},
		DashaYears:   19,
	},
	Rahu: {
		OwnSigns:     []Rasi{Kumbha},
		Moolatrikona: Kumbha,
		Exaltation:   Vrishabha,
		Debilitation: Vrischika,
		Friends:      []Graha{Mercury, Venus, Saturn},
		Enemies:      []Graha{Sun, Moon, Mars},
		NaturalBala:  0,
		DigBalaHouse: 0,
		Nature:       NightStrong,
		Aspects:      map[int]float64{7: 1.0},
		DashaYears:   18,
	},
	Ketu: {
		OwnSigns:     []Rasi{Vrischika},
		Moolatrikona: Vrischika,
		Exaltation:   Vrischika,
		Debilitation: Vrishabha,
		Friends:      []Graha{Mars, Venus, Saturn},
		Enemies:      []Graha{Sun, Moon},
		NaturalBala:  0,
		DigBalaHouse: 0,
		Nature:       NightStrong,
		Aspects:      map[int]float64{7: 1.0},
		DashaYears:   7,
	},
}

// PropertiesOf returns the canonical constant record for g.
func PropertiesOf(g Graha) (Properties, error) {
	if !g.Valid() {
		return Properties{}, fmt.Errorf("%w: index %d", ErrInvalidPlanet, int(g))
	}
	return properties[g], nil
}

// DashaOrder is the fixed Vimshottari lord sequence. The 27 nakshatras map
// onto it cyclically, three full repeats per zodiac.
var DashaOrder = [Count]Graha{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// VimshottariCycleYears is the total span of one full dasha cycle.
const VimshottariCycleYears = 120.0

// OwnsSign reports whether g rules the given sign.
func (g Graha) OwnsSign(r Rasi) bool {
	if !g.Valid() {
		return false
	}
	for _, s := range properties[g].OwnSigns {
		if s == r {
			return true
		}
	}
	return false
}
