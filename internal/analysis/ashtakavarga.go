package analysis

import (
	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/graha"
)

// contributors are the seven classical bodies scored in ashtakavarga.
// The nodes neither contribute nor receive bindus.
var contributors = [7]graha.Graha{
	graha.Sun, graha.Moon, graha.Mars, graha.Mercury,
	graha.Jupiter, graha.Venus, graha.Saturn,
}

// beneficOffsets lists, per contributor, the 1-indexed house offsets
// (counted from a reference planet's house) at which the contributor
// grants a bindu.
var beneficOffsets = map[graha.Graha][]int{
	graha.Sun:     {1, 2, 4, 7, 8, 9, 10, 11},
	graha.Moon:    {3, 6, 7, 8, 10, 11},
	graha.Mars:    {1, 2, 4, 7, 8, 10, 11},
	graha.Mercury: {1, 2, 4, 6, 8, 10, 11},
	graha.Jupiter: {1, 2, 3, 4, 7, 8, 10, 11},
	graha.Venus:   {1, 2, 3, 4, 5, 8, 9, 11},
	graha.Saturn:  {3, 5, 6, 11},
}

// Ashtakavarga holds the per-contributor bindu arrays and their per-house
// sum. House h is index h-1.
type Ashtakavarga struct {
	Bindus map[graha.Graha][12]int `json:"bindus"`
	Sarva  [12]int                 `json:"sarva"`
}

// ComputeAshtakavarga scores every house for every contributor: a house
// collects one bindu from a reference planet when its offset from that
// planet's house appears in the contributor's benefic table. Sarva is the
// per-house sum across all seven contributor arrays.
func ComputeAshtakavarga(positions []graha.Position, ascSidDeg float64) Ashtakavarga {
	houses := make(map[graha.Graha]int, len(contributors))
	for _, c := range contributors {
		if p, ok := graha.Find(positions, c); ok {
			houses[c] = chart.HouseOf(p.Longitude, ascSidDeg)
		}
	}

	av := Ashtakavarga{Bindus: make(map[graha.Graha][12]int, len(contributors))}
	for _, c := range contributors {
		benefic := make(map[int]bool, len(beneficOffsets[c]))
		for _, off := range beneficOffsets[c] {
			benefic[off] = true
		}
		var row [12]int
		for h := 1; h <= 12; h++ {
			for _, ref := range contributors {
				refHouse, ok := houses[ref]
				if !ok {
					continue
				}
				if benefic[houseOffset(refHouse, h)] {
					row[h-1]++
				}
			}
		}
		av.Bindus[c] = row
	}

	for _, row := range av.Bindus {
		for i, b := range row {
			av.Sarva[i] += b
		}
	}
	return av
}
