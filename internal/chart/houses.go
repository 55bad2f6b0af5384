package chart

import (
	"fmt"
	"math"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/graha"
)

// WholeSignHouses returns the twelve house cusps for a sidereal ascendant
// degree. Canonical policy: the first cusp is truncated to the start of
// the ascendant's sign, and every later cusp is a successive 30-degree
// sign boundary, so the twelve cusps partition the zodiac exactly. The
// ascendant's in-sign offset is never carried onto the cusps.
func WholeSignHouses(ascSidDeg float64) [12]float64 {
	base := math.Floor(astrotime.NormalizeDegrees(ascSidDeg)/30) * 30
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = astrotime.NormalizeDegrees(base + float64(i)*30)
	}
	return cusps
}

// HouseOf returns the 1-indexed whole-sign house occupied by a sidereal
// longitude, counted from the ascendant's sign.
func HouseOf(lonDeg, ascSidDeg float64) int {
	lonSign := int(astrotime.NormalizeDegrees(lonDeg) / 30)
	ascSign := int(astrotime.NormalizeDegrees(ascSidDeg) / 30)
	return ((lonSign-ascSign)%12+12)%12 + 1
}

// HouseLord returns the graha ruling the given 1-indexed house for an
// ascendant degree.
func HouseLord(house int, ascSidDeg float64) (graha.Graha, error) {
	if house < 1 || house > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHouse, house)
	}
	cusps := WholeSignHouses(ascSidDeg)
	return graha.Rasi(int(cusps[house-1] / 30)).Lord(), nil
}

// HouseClass is the angular/succedent/cadent classification of a house.
type HouseClass int

const (
	Angular HouseClass = iota // kendra: 1, 4, 7, 10
	Succedent                 // panapara: 2, 5, 8, 11
	Cadent                    // apoklima: 3, 6, 9, 12
)

// ClassOf classifies a 1-indexed house.
func ClassOf(house int) (HouseClass, error) {
	if house < 1 || house > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHouse, house)
	}
	switch (house - 1) % 3 {
	case 0:
		return Angular, nil
	case 1:
		return Succedent, nil
	default:
		return Cadent, nil
	}
}
