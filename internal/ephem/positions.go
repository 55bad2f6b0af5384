package ephem

import (
	"fmt"
	"math"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/graha"
)

// ComputePositions solves all nine grahas at jd using elements from p and
// returns their sidereal positions in canonical graha order.
func ComputePositions(jd float64, p Provider) ([]graha.Position, error) {
	out := make([]graha.Position, 0, graha.Count)
	for _, g := range graha.All() {
		pos, err := ComputeBody(jd, g, p)
		if err != nil {
			return nil, fmt.Errorf("solving %s: %w", g, err)
		}
		out = append(out, pos)
	}
	return out, nil
}

// ComputeBody solves a single graha at jd.
//
// For the seven orbiting bodies the pipeline is: derive the classical
// elements from the equinoctial vectors, solve Kepler's equation for the
// eccentric anomaly, form the true anomaly and radius, then project to
// ecliptic longitude/latitude and shift tropical to sidereal by the
// ayanamsa. Rahu is the Moon's mean ascending node and Ketu its opposite
// point; both are taken straight from the node vector.
func ComputeBody(jd float64, g graha.Graha, p Provider) (graha.Position, error) {
	el, err := p.ElementsAt(jd, g)
	if err != nil {
		return graha.Position{}, err
	}
	if err := el.Validate(); err != nil {
		return graha.Position{}, err
	}

	if g == graha.Rahu || g == graha.Ketu {
		return nodePosition(jd, g, el), nil
	}

	e := math.Hypot(el.H, el.K)
	peri := math.Atan2(el.H, el.K)
	inc := 2 * math.Asin(math.Sqrt(el.P*el.P+el.Q*el.Q))
	node := math.Atan2(el.P, el.Q)

	m := astrotime.NormalizeRadians(el.L - peri)
	ecc, err := solveKepler(m, e)
	if err != nil {
		return graha.Position{}, err
	}

	trueAnom := 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(ecc/2),
		math.Sqrt(1-e)*math.Cos(ecc/2),
	)
	radius := el.A * (1 - e*math.Cos(ecc))

	lon := trueAnom + peri
	lat := math.Asin(math.Sin(inc) * math.Sin(lon-node))

	return graha.Position{
		Graha:     g,
		Longitude: toSidereal(jd, rad2deg(lon)),
		Latitude:  rad2deg(lat),
		Distance:  radius,
	}, nil
}

// nodePosition places Rahu at the Moon's mean ascending node and Ketu
// exactly opposite. The nodes ride the ecliptic, so latitude is zero.
func nodePosition(jd float64, g graha.Graha, moonEl Elements) graha.Position {
	nodeDeg := rad2deg(math.Atan2(moonEl.P, moonEl.Q))
	if g == graha.Ketu {
		nodeDeg += 180
	}
	return graha.Position{
		Graha:     g,
		Longitude: toSidereal(jd, nodeDeg),
		Latitude:  0,
		Distance:  moonEl.A,
	}
}

// toSidereal converts a tropical ecliptic longitude in degrees to the
// sidereal frame.
func toSidereal(jd, tropicalDeg float64) float64 {
	return astrotime.NormalizeDegrees(tropicalDeg - astrotime.AyanamsaDeg(jd))
}
