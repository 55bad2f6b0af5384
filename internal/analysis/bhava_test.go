package analysis

import (
	"testing"

	"github.com/navagraha/jyotish/internal/graha"
)

func TestComputeHouseStrengths_Occupancy(t *testing.T) {
	t.Parallel()

	// Mesha rising: Sun in house 1 (angular), Moon in house 2
	// (succedent), Mars in house 3 (cadent).
	positions := []graha.Position{
		{Graha: graha.Sun, Longitude: 5},
		{Graha: graha.Moon, Longitude: 35},
		{Graha: graha.Mars, Longitude: 65},
	}
	out := ComputeHouseStrengths(positions, nil, 0)
	if len(out) != 12 {
		t.Fatalf("got %d houses, want 12", len(out))
	}
	if !approxEqual(out[0].Occupancy, 1.0) {
		t.Errorf("house 1 occupancy = %f, want 1.0", out[0].Occupancy)
	}
	if !approxEqual(out[1].Occupancy, 0.75) {
		t.Errorf("house 2 occupancy = %f, want 0.75", out[1].Occupancy)
	}
	if !approxEqual(out[2].Occupancy, 0.5) {
		t.Errorf("house 3 occupancy = %f, want 0.5", out[2].Occupancy)
	}
	if !approxEqual(out[3].Occupancy, 0) {
		t.Errorf("empty house 4 occupancy = %f, want 0", out[3].Occupancy)
	}
}

func TestComputeHouseStrengths_LordStrength(t *testing.T) {
	t.Parallel()

	strengths := map[graha.Graha]Shadbala{
		graha.Mars: {Graha: graha.Mars, Total: 2.5},
		graha.Sun:  {Graha: graha.Sun, Total: 1.75},
	}
	out := ComputeHouseStrengths(nil, strengths, 0)
	// Mesha rising: Mars rules houses 1 and 8, the Sun rules house 5.
	if !approxEqual(out[0].LordStrength, 2.5) {
		t.Errorf("house 1 lord strength = %f, want 2.5", out[0].LordStrength)
	}
	if !approxEqual(out[7].LordStrength, 2.5) {
		t.Errorf("house 8 lord strength = %f, want 2.5", out[7].LordStrength)
	}
	if !approxEqual(out[4].LordStrength, 1.75) {
		t.Errorf("house 5 lord strength = %f, want 1.75", out[4].LordStrength)
	}
}

func TestComputeHouseStrengths_Drishti(t *testing.T) {
	t.Parallel()

	// Saturn in house 1 casts aspects onto houses 3, 7, and 10.
	positions := []graha.Position{{Graha: graha.Saturn, Longitude: 5}}
	out := ComputeHouseStrengths(positions, nil, 0)
	if !approxEqual(out[2].Drishti, 0.75) {
		t.Errorf("house 3 drishti = %f, want 0.75", out[2].Drishti)
	}
	if !approxEqual(out[6].Drishti, 1.0) {
		t.Errorf("house 7 drishti = %f, want 1.0", out[6].Drishti)
	}
	if !approxEqual(out[9].Drishti, 0.75) {
		t.Errorf("house 10 drishti = %f, want 0.75", out[9].Drishti)
	}
	// A planet never casts drishti onto its own house.
	if !approxEqual(out[0].Drishti, 0) {
		t.Errorf("house 1 drishti = %f, want 0", out[0].Drishti)
	}
}

func TestComputeHouseStrengths_TotalIsSum(t *testing.T) {
	t.Parallel()

	positions := []graha.Position{
		{Graha: graha.Sun, Longitude: 5},
		{Graha: graha.Jupiter, Longitude: 245},
	}
	strengths := map[graha.Graha]Shadbala{
		graha.Sun:     {Total: 1.5},
		graha.Jupiter: {Total: 2.0},
	}
	for _, bb := range ComputeHouseStrengths(positions, strengths, 0) {
		if !approxEqual(bb.Total, bb.Occupancy+bb.LordStrength+bb.Drishti) {
			t.Errorf("house %d total %f != component sum", bb.House, bb.Total)
		}
	}
}
