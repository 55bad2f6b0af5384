// Package astrotime converts civil time into the astronomical time scales
// the chart engine works in: Julian Day, Greenwich/local sidereal time, and
// the sidereal-zodiac ayanamsa offset.
package astrotime

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch, 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// JulianCentury is the number of days in a Julian century.
const JulianCentury = 36525.0

const secondsPerDay = 86400.0

// unixEpochJD is the Julian Day of 1970-01-01 00:00 UTC.
const unixEpochJD = 2440587.5

// JulianDay converts a proleptic Gregorian calendar date and UTC time of
// day to a Julian Day. The fractional part encodes time of day; the JD
// epoch boundary falls at noon UTC.
func JulianDay(year, month, day, hour, minute int, second float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5
	jd += (float64(hour) + float64(minute)/60 + second/3600) / 24
	return jd
}

// FromTime converts an instant to a Julian Day.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	sec := float64(u.Second()) + float64(u.Nanosecond())/1e9
	return JulianDay(u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), sec)
}

// ToTime converts a Julian Day back to a UTC instant, rounded to the
// nearest millisecond.
func ToTime(jd float64) time.Time {
	sec := (jd - unixEpochJD) * secondsPerDay
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC().Round(time.Millisecond)
}

// CenturiesSinceJ2000 returns Julian centuries elapsed since J2000.0.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / JulianCentury
}
