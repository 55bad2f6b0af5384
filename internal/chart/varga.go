package chart

import (
	"fmt"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/graha"
)

// Scheme describes one divisional (varga) chart: its key, classical name,
// division count, and the pure sign-mapping function. All twenty charts
// are built by the same generic builder walking this table; only the map
// functions differ.
type Scheme struct {
	Key       string
	Name      string
	Divisions int
	mapSign   func(lonDeg float64) graha.Rasi
}

// SignOf maps a sidereal longitude into the scheme's divisional sign.
// Total over [0,360); always returns a valid sign index.
func (s Scheme) SignOf(lonDeg float64) graha.Rasi {
	return s.mapSign(lonDeg)
}

// splitSign returns the natal sign index and the offset within it.
func splitSign(lonDeg float64) (rasi int, pos float64) {
	lon := astrotime.NormalizeDegrees(lonDeg)
	rasi = int(lon/30) % 12
	pos = lon - float64(rasi)*30
	return rasi, pos
}

// part returns the zero-indexed division of a 30-degree sign cut into n
// equal arcs, clamped against float rounding at the upper sign edge.
func part(pos float64, n int) int {
	p := int(pos / (30 / float64(n)))
	if p >= n {
		p = n - 1
	}
	return p
}

// generic implements the uniform varga rule: division d of sign r maps to
// sign (r*n + d) mod 12. D9 (Navamsa) and D27 (Bhamsa) reduce to their
// classical element-keyed counting under this formula.
func generic(n int) func(float64) graha.Rasi {
	return func(lonDeg float64) graha.Rasi {
		rasi, pos := splitSign(lonDeg)
		return graha.Rasi((rasi*n + part(pos, n)) % 12)
	}
}

// fromStart maps division d to sign (start(r) + d) mod 12, for schemes
// whose counting begins at a sign chosen by the natal sign's class.
func fromStart(n int, start func(r graha.Rasi) int) func(float64) graha.Rasi {
	return func(lonDeg float64) graha.Rasi {
		rasi, pos := splitSign(lonDeg)
		return graha.Rasi((start(graha.Rasi(rasi)) + part(pos, n)) % 12)
	}
}

// hora: the two 15-degree halves of a sign belong to the Sun (Simha) and
// the Moon (Karka). Odd signs lead with the Sun's hora, even signs with
// the Moon's.
func hora(lonDeg float64) graha.Rasi {
	rasi, pos := splitSign(lonDeg)
	first := pos < 15
	if graha.Rasi(rasi).Odd() == first {
		return graha.Simha
	}
	return graha.Karka
}

// trimsamsa: five unequal arcs per sign ruled by Mars, Saturn, Jupiter,
// Mercury, and Venus; odd and even signs use mirrored arc tables.
func trimsamsa(lonDeg float64) graha.Rasi {
	rasi, pos := splitSign(lonDeg)
	bounds := [5]float64{5, 10, 18, 25, 30}
	signs := [5]graha.Rasi{graha.Mesha, graha.Kumbha, graha.Dhanu, graha.Mithuna, graha.Tula}
	if !graha.Rasi(rasi).Odd() {
		bounds = [5]float64{5, 12, 20, 25, 30}
		signs = [5]graha.Rasi{graha.Vrishabha, graha.Kanya, graha.Meena, graha.Makara, graha.Vrischika}
	}
	for i, b := range bounds {
		if pos < b {
			return signs[i]
		}
	}
	return signs[4]
}

// oddEven picks the counting start by sign parity.
func oddEven(odd, even int) func(r graha.Rasi) int {
	return func(r graha.Rasi) int {
		if r.Odd() {
			return int(r) + odd
		}
		return int(r) + even
	}
}

// byClass picks the counting start by the movable/fixed/dual class.
func byClass(movable, fixed, dual graha.Rasi) func(r graha.Rasi) int {
	return func(r graha.Rasi) int {
		switch {
		case r.Movable():
			return int(movable)
		case r.Fixed():
			return int(fixed)
		default:
			return int(dual)
		}
	}
}

// Schemes is the catalog of the twenty divisional charts, in ascending
// division order. Counting conventions follow Parashara: uniform counting
// where the classics use it, and the documented odd/even or class-keyed
// starts for the rest.
var Schemes = []Scheme{
	{"D1", "Rasi", 1, generic(1)},
	{"D2", "Hora", 2, hora},
	// Drekkanas fall in the 1st, 5th, and 9th signs from the natal sign.
	{"D3", "Drekkana", 3, drekkana},
	// Quarters fall in the 1st, 4th, 7th, and 10th signs from the natal sign.
	{"D4", "Chaturthamsa", 4, chaturthamsa},
	{"D5", "Panchamsa", 5, generic(5)},
	{"D6", "Shashthamsa", 6, generic(6)},
	// Odd signs count from the sign itself, even signs from its 7th.
	{"D7", "Saptamsa", 7, fromStart(7, oddEven(0, 6))},
	{"D8", "Ashtamsa", 8, generic(8)},
	{"D9", "Navamsa", 9, generic(9)},
	// Odd signs count from the sign itself, even signs from its 9th.
	{"D10", "Dasamsa", 10, fromStart(10, oddEven(0, 8))},
	{"D11", "Rudramsa", 11, generic(11)},
	// Each twelfth counts from the sign itself.
	{"D12", "Dwadasamsa", 12, fromStart(12, func(r graha.Rasi) int { return int(r) })},
	// Movable signs count from Mesha, fixed from Simha, dual from Dhanu.
	{"D16", "Shodasamsa", 16, fromStart(16, byClass(graha.Mesha, graha.Simha, graha.Dhanu))},
	// Movable signs count from Mesha, fixed from Dhanu, dual from Simha.
	{"D20", "Vimsamsa", 20, fromStart(20, byClass(graha.Mesha, graha.Dhanu, graha.Simha))},
	// Odd signs count from Simha, even signs from Karka.
	{"D24", "Chaturvimsamsa", 24, fromStart(24, func(r graha.Rasi) int {
		if r.Odd() {
			return int(graha.Simha)
		}
		return int(graha.Karka)
	})},
	{"D27", "Bhamsa", 27, generic(27)},
	// Five unequal planetary arcs, mirrored between odd and even signs.
	{"D30", "Trimsamsa", 30, trimsamsa},
	// Odd signs count from Mesha, even signs from Tula.
	{"D40", "Khavedamsa", 40, fromStart(40, func(r graha.Rasi) int {
		if r.Odd() {
			return int(graha.Mesha)
		}
		return int(graha.Tula)
	})},
	// Movable signs count from Mesha, fixed from Simha, dual from Dhanu.
	{"D45", "Akshavedamsa", 45, fromStart(45, byClass(graha.Mesha, graha.Simha, graha.Dhanu))},
	// Each sixtieth counts from the sign itself.
	{"D60", "Shashtiamsa", 60, fromStart(60, func(r graha.Rasi) int { return int(r) })},
}

// drekkana counts thirds into the 1st, 5th, and 9th signs from the natal
// sign.
func drekkana(lonDeg float64) graha.Rasi {
	rasi, pos := splitSign(lonDeg)
	return graha.Rasi((rasi + 4*part(pos, 3)) % 12)
}

// chaturthamsa counts quarters into the 1st, 4th, 7th, and 10th signs
// from the natal sign.
func chaturthamsa(lonDeg float64) graha.Rasi {
	rasi, pos := splitSign(lonDeg)
	return graha.Rasi((rasi + 3*part(pos, 4)) % 12)
}

// SchemeByKey resolves a varga key such as "D9".
func SchemeByKey(key string) (Scheme, error) {
	for _, s := range Schemes {
		if s.Key == key {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("%w: %q", ErrInvalidDivisionalChart, key)
}

// RashiPosition is a planet's placement within one divisional chart. The
// nakshatra and pada always derive from the natal longitude; the degree
// is the position within the divisional arc rescaled to a full sign.
type RashiPosition struct {
	Sign      graha.Rasi `json:"sign"`
	Degree    float64    `json:"degree"`
	Nakshatra Nakshatra  `json:"nakshatra"`
	Pada      int        `json:"pada"`
}

// Placement is one planet's entry in a divisional chart.
type Placement struct {
	Graha    graha.Graha   `json:"graha"`
	Position RashiPosition `json:"position"`
	House    int           `json:"house"`
}

// Divisional is one fully built varga chart: a placement per planet plus
// the whole-sign cusps recomputed from the same ascendant.
type Divisional struct {
	Key        string      `json:"key"`
	Name       string      `json:"name"`
	Placements []Placement `json:"placements"`
	Cusps      [12]float64 `json:"cusps"`
}

// BuildDivisional constructs the scheme's chart for a planet list and an
// ascendant. Placements keep planet order; nothing here mutates the
// inputs, so sibling charts may be built concurrently.
func BuildDivisional(s Scheme, positions []graha.Position, ascSidDeg float64) Divisional {
	d := Divisional{
		Key:        s.Key,
		Name:       s.Name,
		Placements: make([]Placement, 0, len(positions)),
		Cusps:      WholeSignHouses(ascSidDeg),
	}
	for _, p := range positions {
		sign := s.SignOf(p.Longitude)
		_, pos := splitSign(p.Longitude)
		span := 30 / float64(s.Divisions)
		inPart := pos - float64(part(pos, s.Divisions))*span
		d.Placements = append(d.Placements, Placement{
			Graha: p.Graha,
			Position: RashiPosition{
				Sign:      sign,
				Degree:    inPart * float64(s.Divisions),
				Nakshatra: NakshatraOf(p.Longitude),
				Pada:      PadaOf(p.Longitude),
			},
			House: HouseOf(float64(sign)*30, ascSidDeg),
		})
	}
	return d
}

// BuildAll constructs every chart in the catalog, in catalog order.
func BuildAll(positions []graha.Position, ascSidDeg float64) []Divisional {
	out := make([]Divisional, len(Schemes))
	for i, s := range Schemes {
		out[i] = BuildDivisional(s, positions, ascSidDeg)
	}
	return out
}
