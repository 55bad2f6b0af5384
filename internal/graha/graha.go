// Package graha defines the fixed vocabulary of sidereal astrology: the
// nine grahas (planets), the twelve rasis (zodiac signs), and one canonical
// table of per-planet constants (rulerships, exaltations, friendships,
// natural strengths, aspects, Vimshottari cycle weights). Every table
// lookup in the engine is keyed by these closed enumerations; there is no
// string-keyed planet dispatch anywhere.
package graha

import (
	"errors"
	"fmt"
)

// ErrInvalidPlanet is returned when a body name or index does not identify
// one of the nine grahas.
var ErrInvalidPlanet = errors.New("unknown planet")

// Graha identifies one of the nine bodies of the sidereal chart.
type Graha int

const (
	Sun Graha = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// Count is the number of grahas.
const Count = 9

var grahaNames = [Count]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// All returns the nine grahas in canonical order.
func All() []Graha {
	out := make([]Graha, Count)
	for i := range out {
		out[i] = Graha(i)
	}
	return out
}

// Valid reports whether g is one of the nine grahas.
func (g Graha) Valid() bool {
	return g >= Sun && g <= Ketu
}

func (g Graha) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Graha(%d)", int(g))
	}
	return grahaNames[g]
}

// Parse resolves a body name to its Graha. The match is exact.
func Parse(name string) (Graha, error) {
	for i, n := range grahaNames {
		if n == name {
			return Graha(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlanet, name)
}

// MarshalText implements encoding.TextMarshaler so Graha-keyed maps
// serialize to readable JSON.
func (g Graha) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidPlanet, int(g))
	}
	return []byte(grahaNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Graha) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
