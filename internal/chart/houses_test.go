package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/graha"
)

func TestWholeSignHouses_SpacingInvariant(t *testing.T) {
	t.Parallel()

	// For any ascendant, consecutive cusps (including the wrap from house
	// 12 back to house 1) are exactly 30 degrees apart.
	for _, asc := range []float64{0, 0.001, 14.7, 29.999, 75.3, 180, 273.5, 359.9} {
		cusps := WholeSignHouses(asc)
		for i := range cusps {
			next := cusps[(i+1)%12]
			gap := astrotime.NormalizeDegrees(next - cusps[i])
			if math.Abs(gap-30) > 1e-9 {
				t.Errorf("asc=%f: gap cusp[%d]->cusp[%d] = %f, want 30", asc, i, (i+1)%12, gap)
			}
		}
	}
}

func TestWholeSignHouses_TruncatesToSignBoundary(t *testing.T) {
	t.Parallel()
	cusps := WholeSignHouses(75.3) // ascendant mid-Mithuna
	if cusps[0] != 60 {
		t.Errorf("first cusp = %f, want sign boundary 60", cusps[0])
	}
	if cusps[11] != 30 {
		t.Errorf("twelfth cusp = %f, want 30", cusps[11])
	}
}

func TestHouseOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lon  float64
		asc  float64
		want int
	}{
		{"same sign", 65, 75.3, 1},
		{"next sign", 95, 75.3, 2},
		{"opposition", 245, 75.3, 7},
		{"wraparound", 15, 345, 2},
		{"twelfth", 35, 75.3, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HouseOf(tc.lon, tc.asc); got != tc.want {
				t.Errorf("HouseOf(%f, %f) = %d, want %d", tc.lon, tc.asc, got, tc.want)
			}
		})
	}
}

func TestHouseLord(t *testing.T) {
	t.Parallel()
	// Ascendant in Mesha: first house belongs to Mars, tenth to Saturn.
	lord, err := HouseLord(1, 12.0)
	if err != nil {
		t.Fatal(err)
	}
	if lord != graha.Mars {
		t.Errorf("lord of house 1 = %s, want Mars", lord)
	}
	lord, err = HouseLord(10, 12.0)
	if err != nil {
		t.Fatal(err)
	}
	if lord != graha.Saturn {
		t.Errorf("lord of house 10 = %s, want Saturn", lord)
	}
}

func TestHouseLord_RejectsBadHouse(t *testing.T) {
	t.Parallel()
	for _, h := range []int{0, 13, -1} {
		if _, err := HouseLord(h, 0); !errors.Is(err, ErrInvalidHouse) {
			t.Errorf("HouseLord(%d) err = %v, want ErrInvalidHouse", h, err)
		}
	}
}

func TestClassOf(t *testing.T) {
	t.Parallel()

	angular := map[int]bool{1: true, 4: true, 7: true, 10: true}
	succedent := map[int]bool{2: true, 5: true, 8: true, 11: true}
	for h := 1; h <= 12; h++ {
		class, err := ClassOf(h)
		if err != nil {
			t.Fatal(err)
		}
		switch {
		case angular[h] && class != Angular:
			t.Errorf("house %d class = %v, want Angular", h, class)
		case succedent[h] && class != Succedent:
			t.Errorf("house %d class = %v, want Succedent", h, class)
		case !angular[h] && !succedent[h] && class != Cadent:
			t.Errorf("house %d class = %v, want Cadent", h, class)
		}
	}
	if _, err := ClassOf(0); !errors.Is(err, ErrInvalidHouse) {
		t.Errorf("ClassOf(0) err = %v, want ErrInvalidHouse", err)
	}
}

func TestAscendant_Range(t *testing.T) {
	t.Parallel()
	jd := astrotime.JulianDay(1991, 6, 18, 1, 40, 0)
	for _, loc := range [][2]float64{{10.8, 76.97}, {51.5, -0.12}, {-33.9, 151.2}, {0, 0}} {
		asc := Ascendant(jd, loc[0], loc[1])
		if asc < 0 || asc >= 360 || math.IsNaN(asc) {
			t.Errorf("Ascendant(lat=%f, lon=%f) = %f outside [0,360)", loc[0], loc[1], asc)
		}
	}
}

func TestAscendant_Deterministic(t *testing.T) {
	t.Parallel()
	jd := astrotime.JulianDay(1991, 6, 18, 1, 40, 0)
	a1 := Ascendant(jd, 10.8, 76.97)
	a2 := Ascendant(jd, 10.8, 76.97)
	if a1 != a2 {
		t.Errorf("ascendant not deterministic: %f vs %f", a1, a2)
	}
}

func TestObliquityDeg_NearJ2000(t *testing.T) {
	t.Parallel()
	if got := ObliquityDeg(astrotime.J2000); math.Abs(got-23.4392911111) > 1e-9 {
		t.Errorf("ObliquityDeg(J2000) = %f, want 23.4392911111", got)
	}
	// The obliquity shrinks slowly over centuries.
	if ObliquityDeg(astrotime.J2000+astrotime.JulianCentury) >= ObliquityDeg(astrotime.J2000) {
		t.Error("obliquity should decrease over the next century")
	}
}
