package astrotime

// GreenwichSiderealTime returns the Greenwich mean sidereal time at jd in
// degrees [0,360), from the standard GMST polynomial in Julian centuries
// since J2000.
func GreenwichSiderealTime(jd float64) float64 {
	t := CenturiesSinceJ2000(jd)
	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return NormalizeDegrees(gmst)
}

// LocalSiderealTime returns the local mean sidereal time in degrees
// [0,360) for a geographic longitude in degrees, east positive.
func LocalSiderealTime(jd, geoLonDeg float64) float64 {
	return NormalizeDegrees(GreenwichSiderealTime(jd) + geoLonDeg)
}
