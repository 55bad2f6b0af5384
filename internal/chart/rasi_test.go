package chart

import (
	"math"
	"testing"

	"github.com/navagraha/jyotish/internal/graha"
)

func TestRasiDetails_ZeroDegrees(t *testing.T) {
	t.Parallel()
	sign, deg, min, sec := RasiDetails(0)
	if sign != graha.Mesha || deg != 0 || min != 0 || sec != 0 {
		t.Errorf("RasiDetails(0) = %s %d°%d'%f\", want Mesha 0°0'0\"", sign, deg, min, sec)
	}
}

func TestRasiDetails_UpperBoundNeverWraps(t *testing.T) {
	t.Parallel()
	sign, deg, min, _ := RasiDetails(359.9999999)
	if sign != graha.Meena {
		t.Errorf("RasiDetails(359.999...) sign = %s, want Meena", sign)
	}
	if deg != 29 || min != 59 {
		t.Errorf("RasiDetails(359.999...) = %d°%d', want 29°59'", deg, min)
	}
}

func TestRasiDetails_Sexagesimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lon     float64
		sign    graha.Rasi
		deg     int
		min     int
		sec     float64
	}{
		{"mid-sign", 45.5, graha.Vrishabha, 15, 30, 0},
		{"quarter degree", 30.25, graha.Vrishabha, 0, 15, 0},
		{"with seconds", 60 + 10.5125, graha.Mithuna, 10, 30, 45},
		{"negative input normalizes", -30, graha.Meena, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sign, deg, min, sec := RasiDetails(tc.lon)
			if sign != tc.sign || deg != tc.deg || min != tc.min || math.Abs(sec-tc.sec) > 1e-6 {
				t.Errorf("RasiDetails(%f) = %s %d°%d'%.3f\", want %s %d°%d'%.3f\"",
					tc.lon, sign, deg, min, sec, tc.sign, tc.deg, tc.min, tc.sec)
			}
		})
	}
}

func TestSignOf_AllBoundaries(t *testing.T) {
	t.Parallel()
	for i := 0; i < 12; i++ {
		lon := float64(i) * 30
		if got := SignOf(lon); got != graha.Rasi(i) {
			t.Errorf("SignOf(%f) = %s, want %s", lon, got, graha.Rasi(i))
		}
	}
}

func TestNakshatraOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lon  float64
		want Nakshatra
	}{
		{"start of zodiac", 0, 0},
		{"end of Ashwini", 13.33, 0},
		{"start of Bharani", 13.34, 1},
		{"last mansion", 359.9, 26},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NakshatraOf(tc.lon); got != tc.want {
				t.Errorf("NakshatraOf(%f) = %d (%s), want %d", tc.lon, got, got, tc.want)
			}
		})
	}
}

func TestPadaOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lon  float64
		want int
	}{
		{"first pada", 0, 1},
		{"second pada", 3.34, 2},
		{"fourth pada", 13.0, 4},
		{"resets next mansion", 13.34, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PadaOf(tc.lon); got != tc.want {
				t.Errorf("PadaOf(%f) = %d, want %d", tc.lon, got, tc.want)
			}
		})
	}
}
