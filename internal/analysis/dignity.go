// Package analysis derives interpretive metrics from a computed chart:
// dignity, six-fold planetary strength, house strength, the Vimshottari
// dasha timeline, yoga detection, and ashtakavarga bindu counts. Every
// computation here is pure over the positions it is handed.
package analysis

import (
	"github.com/navagraha/jyotish/internal/graha"
)

// Status is the display dignity of a planet in a sign. The constants are
// ordered by evaluation precedence.
type Status int

const (
	Exalted Status = iota
	Own
	Debilitated
	Friendly
	Enemy
	Neutral
)

var statusNames = [...]string{"Exalted", "Own Sign", "Debilitated", "Friend", "Enemy", "Neutral"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Unknown"
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Dignity is a planet's evaluated standing in one sign.
type Dignity struct {
	Graha        graha.Graha `json:"graha"`
	Sign         graha.Rasi  `json:"sign"`
	Status       Status      `json:"status"`
	Moolatrikona bool        `json:"moolatrikona"`
}

// DignityOf evaluates a planet's dignity in a sign. The display status is
// mutually exclusive with a fixed precedence: exalted beats own, own beats
// debilitated, and the friend/enemy relationship of the sign's lord decides
// the remainder. Moolatrikona is tracked separately since it overlaps the
// other states.
func DignityOf(g graha.Graha, sign graha.Rasi) (Dignity, error) {
	props, err := graha.PropertiesOf(g)
	if err != nil {
		return Dignity{}, err
	}
	d := Dignity{
		Graha:        g,
		Sign:         sign,
		Moolatrikona: sign == props.Moolatrikona,
	}
	switch {
	case sign == props.Exaltation:
		d.Status = Exalted
	case g.OwnsSign(sign):
		d.Status = Own
	case sign == props.Debilitation:
		d.Status = Debilitated
	default:
		d.Status = relationStatus(props, sign.Lord())
	}
	return d, nil
}

func relationStatus(props graha.Properties, lord graha.Graha) Status {
	for _, f := range props.Friends {
		if f == lord {
			return Friendly
		}
	}
	for _, e := range props.Enemies {
		if e == lord {
			return Enemy
		}
	}
	return Neutral
}
