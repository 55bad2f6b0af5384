package astrotime

import (
	"math"
	"testing"
	"time"
)

const floatTol = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestJulianDay_J2000FixedPoint(t *testing.T) {
	t.Parallel()
	jd := JulianDay(2000, 1, 1, 12, 0, 0)
	if jd != J2000 {
		t.Errorf("JulianDay(2000,1,1,12,0,0) = %f, want %f", jd, J2000)
	}
}

func TestJulianDay_KnownDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		y, mo, d, h, mi         int
		sec                     float64
		want                    float64
	}{
		{"J2000 midnight", 2000, 1, 1, 0, 0, 0, 2451544.5},
		{"unix epoch", 1970, 1, 1, 0, 0, 0, 2440587.5},
		{"Meeus example 1957", 1957, 10, 4, 19, 26, 24, 2436116.31},
		{"Jan/Feb year shift", 1987, 1, 27, 0, 0, 0, 2446822.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := JulianDay(tc.y, tc.mo, tc.d, tc.h, tc.mi, tc.sec)
			if math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("JulianDay = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestFromTime_MatchesJulianDay(t *testing.T) {
	t.Parallel()
	instant := time.Date(1991, 6, 18, 1, 40, 0, 0, time.UTC)
	if got, want := FromTime(instant), JulianDay(1991, 6, 18, 1, 40, 0); !approxEqual(got, want) {
		t.Errorf("FromTime = %f, want %f", got, want)
	}
}

func TestFromTime_ConvertsToUTC(t *testing.T) {
	t.Parallel()
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(1991, 6, 18, 7, 10, 0, 0, ist)
	if got, want := FromTime(local), FromTime(local.UTC()); got != want {
		t.Errorf("FromTime(local) = %f, want %f", got, want)
	}
}

func TestToTime_RoundTrip(t *testing.T) {
	t.Parallel()
	instant := time.Date(2024, 3, 15, 6, 30, 45, 0, time.UTC)
	back := ToTime(FromTime(instant))
	if diff := back.Sub(instant); diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("round trip drifted by %v", diff)
	}
}

func TestCenturiesSinceJ2000(t *testing.T) {
	t.Parallel()
	if got := CenturiesSinceJ2000(J2000); got != 0 {
		t.Errorf("CenturiesSinceJ2000(J2000) = %f, want 0", got)
	}
	if got := CenturiesSinceJ2000(J2000 + JulianCentury); !approxEqual(got, 1) {
		t.Errorf("one century = %f, want 1", got)
	}
}
