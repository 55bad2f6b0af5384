package astrotime

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already normalized", 123.456, 123.456},
		{"zero", 0, 0},
		{"exact turn", 360, 0},
		{"negative", -30, 330},
		{"negative turn", -360, 0},
		{"large positive", 725.5, 5.5},
		{"large negative", -1085, 355},
		{"huge magnitude", 3.6e8 + 12, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeDegrees(tc.in)
			if math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("NormalizeDegrees(%f) = %f, want %f", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeDegrees_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := []float64{-1e9, -720.25, -359.999999, -0.0000001, 0, 179.5, 359.999999, 1e12}
	for _, x := range inputs {
		once := NormalizeDegrees(x)
		twice := NormalizeDegrees(once)
		if once != twice {
			t.Errorf("not idempotent at %g: first %v, second %v", x, once, twice)
		}
		if once < 0 || once >= 360 {
			t.Errorf("NormalizeDegrees(%g) = %v outside [0,360)", x, once)
		}
	}
}

func TestNormalizeRadians_Range(t *testing.T) {
	t.Parallel()
	inputs := []float64{-100, -2 * math.Pi, -0.5, 0, math.Pi, 7 * math.Pi, 1e7}
	for _, x := range inputs {
		got := NormalizeRadians(x)
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeRadians(%g) = %v outside [0,2pi)", x, got)
		}
		if NormalizeRadians(got) != got {
			t.Errorf("not idempotent at %g", x)
		}
	}
}
