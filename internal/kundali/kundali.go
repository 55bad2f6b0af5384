package kundali

import (
	"github.com/navagraha/jyotish/internal/analysis"
	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/graha"
	"github.com/navagraha/jyotish/internal/panchanga"
)

// PlanetDetail is one planet's full entry in the result graph: the raw
// solved position plus everything the analysis layer derives from it.
type PlanetDetail struct {
	Graha     graha.Graha       `json:"graha"`
	Longitude float64           `json:"longitude"`
	Latitude  float64           `json:"latitude"`
	Distance  float64           `json:"distance"`
	Sign      graha.Rasi        `json:"sign"`
	Degree    int               `json:"degree"`
	Minute    int               `json:"minute"`
	Second    float64           `json:"second"`
	House     int               `json:"house"`
	Nakshatra chart.Nakshatra   `json:"nakshatra"`
	Pada      int               `json:"pada"`
	Dignity   analysis.Dignity  `json:"dignity"`
	Strength  analysis.Shadbala `json:"strength"`
}

// Ascendant is the computed lagna with its whole-sign house frame.
type Ascendant struct {
	Longitude float64     `json:"longitude"`
	Sign      graha.Rasi  `json:"sign"`
	Degree    float64     `json:"degree"`
	Cusps     [12]float64 `json:"cusps"`
}

// Kundali is the complete result graph for one birth. Every field is a
// plain value; the whole struct serializes to JSON for any presentation
// layer to consume read-only.
type Kundali struct {
	Birth          BirthData              `json:"birth"`
	JulianDay      float64                `json:"julian_day"`
	Ayanamsa       float64                `json:"ayanamsa"`
	Ascendant      Ascendant              `json:"ascendant"`
	Planets        []PlanetDetail         `json:"planets"`
	Charts         []chart.Divisional     `json:"charts"`
	MahaDashas     []analysis.DashaPeriod `json:"maha_dashas"`
	DashaChain     analysis.DashaChain    `json:"dasha_chain"`
	Yogas          []analysis.Yoga        `json:"yogas"`
	Ashtakavarga   analysis.Ashtakavarga  `json:"ashtakavarga"`
	HouseStrengths []analysis.BhavaBala   `json:"house_strengths"`
	Panchanga      panchanga.Panchanga    `json:"panchanga"`
}

// Planet returns the detail record for g, if present.
func (k *Kundali) Planet(g graha.Graha) (PlanetDetail, bool) {
	for _, p := range k.Planets {
		if p.Graha == g {
			return p, true
		}
	}
	return PlanetDetail{}, false
}
