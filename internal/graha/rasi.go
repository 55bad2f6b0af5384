package graha

import "fmt"

// Rasi identifies one of the twelve 30-degree zodiac signs, zero-indexed
// from Mesha (0 degrees sidereal).
type Rasi int

const (
	Mesha Rasi = iota // Aries
	Vrishabha
	Mithuna
	Karka
	Simha
	Kanya
	Tula
	Vrischika
	Dhanu
	Makara
	Kumbha
	Meena
)

// RasiCount is the number of zodiac signs.
const RasiCount = 12

var rasiNames = [RasiCount]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrischika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// rasiLords maps each sign to its ruling graha. Rahu and Ketu rule no sign.
var rasiLords = [RasiCount]Graha{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// Valid reports whether r is one of the twelve signs.
func (r Rasi) Valid() bool {
	return r >= Mesha && r <= Meena
}

func (r Rasi) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rasi(%d)", int(r))
	}
	return rasiNames[r]
}

// Lord returns the graha ruling the sign.
func (r Rasi) Lord() Graha {
	return rasiLords[((r%RasiCount)+RasiCount)%RasiCount]
}

// Movable, fixed, and dual sign classes cycle Mesha onward in that order.
func (r Rasi) Movable() bool { return r%3 == 0 }
func (r Rasi) Fixed() bool   { return r%3 == 1 }
func (r Rasi) Dual() bool    { return r%3 == 2 }

// Odd reports whether the sign is odd in the 1-indexed classical sense
// (Mesha, Mithuna, Simha, ...).
func (r Rasi) Odd() bool { return r%2 == 0 }

// MarshalText implements encoding.TextMarshaler.
func (r Rasi) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rasi index %d", int(r))
	}
	return []byte(rasiNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rasi) UnmarshalText(text []byte) error {
	for i, n := range rasiNames {
		if n == string(text) {
			*r = Rasi(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rasi %q", string(text))
}
