package astrotime

import "math"

// varaNames index 0 is the Monday-equivalent Soma; JD 0.0 fell on a
// Monday at noon.
var varaNames = [7]string{"Soma", "Mangala", "Budha", "Guru", "Shukra", "Shani", "Ravi"}

// Weekday returns the Sanskrit weekday (vara) name for jd. Purely a
// function of the Julian Day; the civil day boundary is midnight UTC.
func Weekday(jd float64) string {
	idx := int(math.Floor(math.Mod(jd+0.5, 7)))
	if idx < 0 {
		idx += 7
	}
	return varaNames[idx]
}
