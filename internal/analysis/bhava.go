package analysis

import (
	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/graha"
)

// BhavaBala is the strength decomposition for one house.
type BhavaBala struct {
	House        int     `json:"house"`
	Occupancy    float64 `json:"occupancy"`
	LordStrength float64 `json:"lord_strength"`
	Drishti      float64 `json:"drishti"`
	Total        float64 `json:"total"`
}

// houseClassWeight is the base weight an occupant contributes, keyed by
// the house's angular/succedent/cadent class.
func houseClassWeight(class chart.HouseClass) float64 {
	switch class {
	case chart.Angular:
		return 1.0
	case chart.Succedent:
		return 0.75
	default:
		return 0.5
	}
}

// ComputeHouseStrengths aggregates bhava bala for all twelve houses:
// class-weighted occupancy, the house lord's total shadbala, and the
// drishti sum of aspect strengths cast onto the house from every planet.
func ComputeHouseStrengths(positions []graha.Position, strengths map[graha.Graha]Shadbala, ascSidDeg float64) []BhavaBala {
	out := make([]BhavaBala, 12)
	for h := 1; h <= 12; h++ {
		bb := BhavaBala{House: h}

		class, err := chart.ClassOf(h)
		if err == nil {
			weight := houseClassWeight(class)
			for _, p := range positions {
				if chart.HouseOf(p.Longitude, ascSidDeg) == h {
					bb.Occupancy += weight
				}
			}
		}

		if lord, err := chart.HouseLord(h, ascSidDeg); err == nil {
			bb.LordStrength = strengths[lord].Total
		}

		for _, p := range positions {
			props, err := graha.PropertiesOf(p.Graha)
			if err != nil {
				continue
			}
			from := chart.HouseOf(p.Longitude, ascSidDeg)
			if from == h {
				continue
			}
			bb.Drishti += props.Aspects[houseOffset(from, h)]
		}

		bb.Total = bb.Occupancy + bb.LordStrength + bb.Drishti
		out[h-1] = bb
	}
	return out
}
