// Package ephem turns per-body osculating orbital elements into sidereal
// ecliptic positions via Kepler's equation. Element sources implement
// Provider; a built-in mean-element table covers the nine grahas, and a
// TOML file can override individual bodies.
package ephem

import (
	"fmt"
	"math"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/graha"
)

// Elements holds the six equinoctial osculating elements of a body at a
// given instant. Ordering contract with providers: [a, l, h, k, p, q].
//
//	a — semi-major axis, AU
//	l — mean longitude, radians
//	h, k — eccentricity vector: h = e*sin(peri), k = e*cos(peri)
//	p, q — inclination/node vector: p = sin(i/2)*sin(node), q = sin(i/2)*cos(node)
type Elements struct {
	A float64 `json:"a"`
	L float64 `json:"l"`
	H float64 `json:"h"`
	K float64 `json:"k"`
	P float64 `json:"p"`
	Q float64 `json:"q"`
}

// Validate rejects NaN/Inf components and physically degenerate values so
// bad upstream data surfaces as an error instead of propagating NaN.
func (el Elements) Validate() error {
	for _, v := range [...]float64{el.A, el.L, el.H, el.K, el.P, el.Q} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite component", ErrData)
		}
	}
	if el.A <= 0 {
		return fmt.Errorf("%w: semi-major axis %g", ErrData, el.A)
	}
	if e := math.Hypot(el.H, el.K); e >= 1 {
		return fmt.Errorf("%w: eccentricity %g not elliptical", ErrData, e)
	}
	return nil
}

// Provider supplies osculating elements for a body at a Julian Day. It is
// the replaceable ephemeris collaborator of the engine; the solver only
// consumes elements, it never computes them.
type Provider interface {
	ElementsAt(jd float64, g graha.Graha) (Elements, error)
}

// meanRow holds classical mean elements at J2000.0 plus secular rates per
// Julian century: semi-major axis (AU), eccentricity, inclination,
// mean longitude, longitude of perihelion, longitude of ascending node
// (all angles in degrees).
type meanRow struct {
	a, aDot       float64
	e, eDot       float64
	i, iDot       float64
	l, lDot       float64
	peri, periDot float64
	node, nodeDot float64
}

// Mean elements for the five true planets after Standish's approximate
// series (valid roughly 1800-2050). The Sun row is the Earth-Sun orbit
// seen geocentrically (Earth's elements with longitudes shifted 180
// degrees); the Moon row uses the classical geocentric lunar mean
// elements. Rahu and Ketu are derived from the Moon's node vector and
// carry no row of their own.
var meanElements = map[graha.Graha]meanRow{
	graha.Sun: {
		a: 1.00000261, aDot: 0.00000562,
		e: 0.01671123, eDot: -0.00004392,
		i: 0, iDot: 0,
		l: 280.46457166, lDot: 35999.37244981,
		peri: 282.93768193, periDot: 0.32327364,
		node: 0, nodeDot: 0,
	},
	graha.Moon: {
		a: 0.00256955529, aDot: 0,
		e: 0.0549006, eDot: 0,
		i: 5.145396, iDot: 0,
		l: 218.3164477, lDot: 481267.88123421,
		peri: 83.3532465, periDot: 4069.0137287,
		node: 125.0445479, nodeDot: -1934.1362891,
	},
	graha.Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		l: 252.25032350, lDot: 149472.67411175,
		peri: 77.45779628, periDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	graha.Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		l: 181.97909950, lDot: 58517.81538729,
		peri: 131.60246718, periDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	graha.Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		l: -4.55343205, lDot: 19140.30268499,
		peri: -23.94362959, periDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	graha.Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		l: 34.39644051, lDot: 3034.74612775,
		peri: 14.72847983, periDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	graha.Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		l: 49.95424423, lDot: 1222.49362201,
		peri: 92.59887831, periDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
}

// at evaluates the row at jd and converts to equinoctial form.
func (r meanRow) at(jd float64) Elements {
	t := astrotime.CenturiesSinceJ2000(jd)
	e := r.e + r.eDot*t
	inc := deg2rad(r.i + r.iDot*t)
	l := deg2rad(astrotime.NormalizeDegrees(r.l + r.lDot*t))
	peri := deg2rad(r.peri + r.periDot*t)
	node := deg2rad(r.node + r.nodeDot*t)
	return Elements{
		A: r.a + r.aDot*t,
		L: l,
		H: e * math.Sin(peri),
		K: e * math.Cos(peri),
		P: math.Sin(inc/2) * math.Sin(node),
		Q: math.Sin(inc/2) * math.Cos(node),
	}
}

// MeanProvider serves the built-in mean-element tables. The zero value is
// ready to use.
type MeanProvider struct{}

// ElementsAt returns the mean osculating elements of g at jd. The lunar
// nodes answer with the Moon's elements, from which the solver extracts
// the node longitude.
func (MeanProvider) ElementsAt(jd float64, g graha.Graha) (Elements, error) {
	body := g
	if g == graha.Rahu || g == graha.Ketu {
		body = graha.Moon
	}
	row, ok := meanElements[body]
	if !ok {
		return Elements{}, fmt.Errorf("%w: %s", ErrNoElements, g)
	}
	return row.at(jd), nil
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
