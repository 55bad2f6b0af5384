package analysis

import (
	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/graha"
)

// Shadbala is the six-fold strength decomposition for one planet. The
// numeric scale is internally consistent only; no classical rupa/virupa
// normalization is applied.
type Shadbala struct {
	Graha      graha.Graha `json:"graha"`
	Sthana     float64     `json:"sthana"`
	Dig        float64     `json:"dig"`
	Kala       float64     `json:"kala"`
	Drik       float64     `json:"drik"`
	Naisargika float64     `json:"naisargika"`
	Total      float64     `json:"total"`
}

// Sthana bala terms. The terms are additive: Mercury exalted in Kanya
// collects the exaltation, moolatrikona, and own-sign terms together.
const (
	sthanaExalted      = 1.0
	sthanaMoolatrikona = 0.75
	sthanaOwn          = 0.5
	sthanaFriendly     = 0.25
	sthanaEnemy        = -0.25
	sthanaDebilitated  = -0.5
)

// ComputeShadbala evaluates the six-fold strength of one planet against
// the full working set. The sibling positions feed only the drik term;
// everything else reads the planet's own placement.
func ComputeShadbala(p graha.Position, all []graha.Position, jd, ascSidDeg float64) (Shadbala, error) {
	props, err := graha.PropertiesOf(p.Graha)
	if err != nil {
		return Shadbala{}, err
	}

	sb := Shadbala{Graha: p.Graha}
	sign := chart.SignOf(p.Longitude)
	house := chart.HouseOf(p.Longitude, ascSidDeg)

	sb.Sthana = sthanaBala(props, p.Graha, sign)
	if props.DigBalaHouse != 0 && house == props.DigBalaHouse {
		sb.Dig = 1.0
	}
	sb.Kala = kalaBala(props.Nature, jd)
	sb.Drik = drikBala(p, all, ascSidDeg)
	sb.Naisargika = props.NaturalBala

	sb.Total = sb.Sthana + sb.Dig + sb.Kala + sb.Drik + sb.Naisargika
	return sb, nil
}

func sthanaBala(props graha.Properties, g graha.Graha, sign graha.Rasi) float64 {
	var bala float64
	if sign == props.Exaltation {
		bala += sthanaExalted
	}
	if sign == props.Moolatrikona {
		bala += sthanaMoolatrikona
	}
	if g.OwnsSign(sign) {
		bala += sthanaOwn
	}
	if sign != props.Exaltation && !g.OwnsSign(sign) && sign != props.Moolatrikona {
		switch {
		case sign == props.Debilitation:
			bala += sthanaDebilitated
		case relationStatus(props, sign.Lord()) == Friendly:
			bala += sthanaFriendly
		case relationStatus(props, sign.Lord()) == Enemy:
			bala += sthanaEnemy
		}
	}
	return bala
}

// kalaBala grants the temporal bonus using sidereal time at the reference
// meridian as the day/night proxy: LST at longitude zero of at least 180
// degrees counts as day.
func kalaBala(nature graha.DayNature, jd float64) float64 {
	day := astrotime.GreenwichSiderealTime(jd) >= 180
	switch nature {
	case graha.AlwaysStrong:
		return 1.0
	case graha.DayStrong:
		if day {
			return 1.0
		}
	case graha.NightStrong:
		if !day {
			return 1.0
		}
	}
	return 0
}

// drikBala sums the aspect strengths landing on a planet's house from
// every sibling, read off each sibling's fixed aspect table.
func drikBala(p graha.Position, all []graha.Position, ascSidDeg float64) float64 {
	target := chart.HouseOf(p.Longitude, ascSidDeg)
	var bala float64
	for _, other := range all {
		if other.Graha == p.Graha {
			continue
		}
		props, err := graha.PropertiesOf(other.Graha)
		if err != nil {
			continue
		}
		from := chart.HouseOf(other.Longitude, ascSidDeg)
		bala += props.Aspects[houseOffset(from, target)]
	}
	return bala
}

// houseOffset counts 1-indexed house positions from one house to another,
// cyclically: a planet aspects its own house at offset 1 and the opposite
// house at offset 7.
func houseOffset(from, to int) int {
	return ((to-from)%12+12)%12 + 1
}

// ComputeAllShadbala evaluates every planet in the working set.
func ComputeAllShadbala(positions []graha.Position, jd, ascSidDeg float64) (map[graha.Graha]Shadbala, error) {
	out := make(map[graha.Graha]Shadbala, len(positions))
	for _, p := range positions {
		sb, err := ComputeShadbala(p, positions, jd, ascSidDeg)
		if err != nil {
			return nil, err
		}
		out[p.Graha] = sb
	}
	return out, nil
}
