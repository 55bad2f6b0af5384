package kundali

import (
	"fmt"
	"sync"
	"time"

	"github.com/navagraha/jyotish/internal/analysis"
	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/ephem"
	"github.com/navagraha/jyotish/internal/graha"
	"github.com/navagraha/jyotish/internal/panchanga"
	"github.com/navagraha/jyotish/internal/telemetry"
)

// Options configures a chart computation. The zero value uses the
// built-in mean-element provider and emits no telemetry.
type Options struct {
	// Provider supplies orbital elements. Defaults to ephem.MeanProvider.
	Provider ephem.Provider
	// Emitter receives pipeline trace events. Nil is a no-op.
	Emitter *telemetry.Emitter
}

// Compute runs the full pipeline for a birth and assembles the result
// graph. The computation is pure over its inputs; the divisional charts
// are built concurrently since they share only read-only state.
func Compute(birth BirthData, opts Options) (*Kundali, error) {
	provider := opts.Provider
	if provider == nil {
		provider = ephem.MeanProvider{}
	}
	em := opts.Emitter

	jd := birth.JulianDay()
	em.Emit(telemetry.Event{
		Timestamp: time.Now(), Kind: telemetry.KindComputeStart,
		Data: map[string]float64{"jd": jd, "lat": birth.Latitude, "lon": birth.Longitude},
	})

	positions, err := ephem.ComputePositions(jd, provider)
	if err != nil {
		return nil, err
	}
	for _, p := range positions {
		em.Emit(telemetry.Event{
			Timestamp: time.Now(), Kind: telemetry.KindPlanetComputed, Body: p.Graha.String(),
			Data: map[string]float64{"longitude": p.Longitude, "latitude": p.Latitude},
		})
	}

	ascDeg := chart.Ascendant(jd, birth.Latitude, birth.Longitude)
	em.Emit(telemetry.Event{
		Timestamp: time.Now(), Kind: telemetry.KindAscendantFound,
		Data: map[string]float64{"longitude": ascDeg},
	})

	moon, ok := graha.Find(positions, graha.Moon)
	if !ok {
		return nil, fmt.Errorf("%w: Moon absent from working set", ErrCalculation)
	}
	sun, ok := graha.Find(positions, graha.Sun)
	if !ok {
		return nil, fmt.Errorf("%w: Sun absent from working set", ErrCalculation)
	}

	k := &Kundali{
		Birth:     birth,
		JulianDay: jd,
		Ayanamsa:  astrotime.AyanamsaDeg(jd),
		Ascendant: Ascendant{
			Longitude: ascDeg,
			Sign:      chart.SignOf(ascDeg),
			Degree:    chart.DegreeInSign(ascDeg),
			Cusps:     chart.WholeSignHouses(ascDeg),
		},
	}

	// Sibling divisional charts share only read-only inputs, so they are
	// built alongside the analysis pass.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		k.Charts = buildCharts(positions, ascDeg)
	}()

	strengths, err := analysis.ComputeAllShadbala(positions, jd, ascDeg)
	if err != nil {
		return nil, err
	}

	k.Planets = make([]PlanetDetail, 0, len(positions))
	for _, p := range positions {
		detail, err := planetDetail(p, strengths[p.Graha], ascDeg)
		if err != nil {
			return nil, err
		}
		k.Planets = append(k.Planets, detail)
	}

	k.MahaDashas = analysis.MahaPeriods(moon.Longitude, birth.Instant)
	k.DashaChain = analysis.VimshottariChain(moon.Longitude, birth.Instant)
	k.Yogas = analysis.DetectYogas(positions, ascDeg)
	k.Ashtakavarga = analysis.ComputeAshtakavarga(positions, ascDeg)
	k.HouseStrengths = analysis.ComputeHouseStrengths(positions, strengths, ascDeg)
	k.Panchanga = panchanga.Compute(jd, sun.Longitude, moon.Longitude)
	em.Emit(telemetry.Event{
		Timestamp: time.Now(), Kind: telemetry.KindAnalysisDone,
		Data: map[string]int{"yogas": len(k.Yogas)},
	})

	wg.Wait()
	em.Emit(telemetry.Event{
		Timestamp: time.Now(), Kind: telemetry.KindChartsBuilt,
		Data: map[string]int{"charts": len(k.Charts)},
	})
	em.Emit(telemetry.Event{Timestamp: time.Now(), Kind: telemetry.KindComputeDone})
	return k, nil
}

// buildCharts fans the twenty divisional builds across goroutines. Each
// scheme writes only its own slot.
func buildCharts(positions []graha.Position, ascDeg float64) []chart.Divisional {
	out := make([]chart.Divisional, len(chart.Schemes))
	var wg sync.WaitGroup
	for i, s := range chart.Schemes {
		wg.Add(1)
		go func(i int, s chart.Scheme) {
			defer wg.Done()
			out[i] = chart.BuildDivisional(s, positions, ascDeg)
		}(i, s)
	}
	wg.Wait()
	return out
}

func planetDetail(p graha.Position, sb analysis.Shadbala, ascDeg float64) (PlanetDetail, error) {
	sign, deg, min, sec := chart.RasiDetails(p.Longitude)
	dignity, err := analysis.DignityOf(p.Graha, sign)
	if err != nil {
		return PlanetDetail{}, err
	}
	return PlanetDetail{
		Graha:     p.Graha,
		Longitude: p.Longitude,
		Latitude:  p.Latitude,
		Distance:  p.Distance,
		Sign:      sign,
		Degree:    deg,
		Minute:    min,
		Second:    sec,
		House:     chart.HouseOf(p.Longitude, ascDeg),
		Nakshatra: chart.NakshatraOf(p.Longitude),
		Pada:      chart.PadaOf(p.Longitude),
		Dignity:   dignity,
		Strength:  sb,
	}, nil
}
