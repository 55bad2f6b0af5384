package analysis

import (
	"math"
	"time"

	"github.com/navagraha/jyotish/internal/astrotime"
	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/graha"
)

// dashaYearDays converts dasha years to wall-clock time. A Julian year is
// close enough for a 120-year cycle keyed to a birth instant.
const dashaYearDays = 365.25

// DashaPeriod is one span of the Vimshottari timeline at any nesting
// level.
type DashaPeriod struct {
	Lord  graha.Graha `json:"lord"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Years float64     `json:"years"`
}

// DashaChain is the set of periods running at the birth instant, one per
// nesting level.
type DashaChain struct {
	Maha        DashaPeriod `json:"maha"`
	Antara      DashaPeriod `json:"antara"`
	Pratyantara DashaPeriod `json:"pratyantara"`
	Sookshma    DashaPeriod `json:"sookshma"`
}

// dashaStart resolves the lord running at birth and the fraction of that
// lord's maha-dasha already elapsed, from the Moon's nakshatra. The 27
// mansions cycle through the 9 lords three times; the elapsed fraction
// within the mansion is the elapsed fraction of the period.
func dashaStart(moonLonDeg float64) (graha.Graha, float64) {
	lon := astrotime.NormalizeDegrees(moonLonDeg)
	nak := int(chart.NakshatraOf(lon))
	lord := graha.DashaOrder[nak%graha.Count]
	elapsed := math.Mod(lon, chart.NakshatraSpanDeg) / chart.NakshatraSpanDeg
	return lord, elapsed
}

func nextLord(g graha.Graha) graha.Graha {
	for i, l := range graha.DashaOrder {
		if l == g {
			return graha.DashaOrder[(i+1)%graha.Count]
		}
	}
	return graha.DashaOrder[0]
}

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * dashaYearDays * 24 * float64(time.Hour))
}

// MahaPeriods lays out the nine maha-dashas from a birth instant. The
// first period is the balance of the lord running at birth; the rest
// carry their full classical spans in cycle order.
func MahaPeriods(moonLonDeg float64, birth time.Time) []DashaPeriod {
	lord, elapsed := dashaStart(moonLonDeg)
	periods := make([]DashaPeriod, 0, graha.Count)
	start := birth
	for i := 0; i < graha.Count; i++ {
		props, err := graha.PropertiesOf(lord)
		if err != nil {
			break
		}
		years := props.DashaYears
		if i == 0 {
			years *= 1 - elapsed
		}
		end := start.Add(yearsToDuration(years))
		periods = append(periods, DashaPeriod{Lord: lord, Start: start, End: end, Years: years})
		start = end
		lord = nextLord(lord)
	}
	return periods
}

// SubPeriods splits a parent period into its nine sub-periods. The first
// sub-lord is the parent's own lord, and each sub-period's span is the
// parent's span weighted by the sub-lord's share of the 120-year cycle,
// so the nine spans sum exactly to the parent's.
func SubPeriods(parent DashaPeriod) []DashaPeriod {
	periods := make([]DashaPeriod, 0, graha.Count)
	lord := parent.Lord
	start := parent.Start
	for i := 0; i < graha.Count; i++ {
		props, err := graha.PropertiesOf(lord)
		if err != nil {
			break
		}
		years := parent.Years * props.DashaYears / graha.VimshottariCycleYears
		end := start.Add(yearsToDuration(years))
		periods = append(periods, DashaPeriod{Lord: lord, Start: start, End: end, Years: years})
		start = end
		lord = nextLord(lord)
	}
	return periods
}

// VimshottariChain resolves the periods running at the birth instant at
// all four nesting levels. Each level anchors at its parent's start, so
// every period in the chain begins at the same instant.
func VimshottariChain(moonLonDeg float64, birth time.Time) DashaChain {
	maha := MahaPeriods(moonLonDeg, birth)[0]
	antara := SubPeriods(maha)[0]
	pratyantara := SubPeriods(antara)[0]
	sookshma := SubPeriods(pratyantara)[0]
	return DashaChain{
		Maha:        maha,
		Antara:      antara,
		Pratyantara: pratyantara,
		Sookshma:    sookshma,
	}
}
