package graha

// Position is the computed sidereal placement of a graha. It is built once
// per chart computation and read-only afterwards.
type Position struct {
	Graha     Graha   `json:"graha"`
	Longitude float64 `json:"longitude"` // sidereal ecliptic longitude, degrees [0,360)
	Latitude  float64 `json:"latitude"`  // ecliptic latitude, degrees
	Distance  float64 `json:"distance"`  // AU
}

// Find returns the position of g within positions, or false when absent.
func Find(positions []Position, g Graha) (Position, bool) {
	for _, p := range positions {
		if p.Graha == g {
			return p, true
		}
	}
	return Position{}, false
}
