// Package report renders a computed kundali for the terminal. It
// consumes the result graph read-only; nothing here feeds back into the
// computation.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/navagraha/jyotish/internal/analysis"
	"github.com/navagraha/jyotish/internal/graha"
	"github.com/navagraha/jyotish/internal/kundali"
)

// Printer renders report sections to a writer.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Render writes the full report: birth frame, planetary positions,
// panchanga, strengths, dashas, yogas, and ashtakavarga.
func (p *Printer) Render(k *kundali.Kundali) {
	p.header(k)
	p.positions(k)
	p.Panchanga(k)
	p.strengths(k)
	p.houseStrengths(k)
	p.Dashas(k)
	p.yogas(k)
	p.ashtakavarga(k)
}

func (p *Printer) section(title string) {
	fmt.Fprintln(p.out, styleSection.Render(title))
}

func (p *Printer) header(k *kundali.Kundali) {
	fmt.Fprintln(p.out, styleTitle.Render("Jyotish Birth Chart"))
	fmt.Fprintf(p.out, "%s %s\n",
		styleMuted.Render("born"),
		k.Birth.Instant.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(p.out, "%s %.4f°N %.4f°E\n",
		styleMuted.Render("place"), k.Birth.Latitude, k.Birth.Longitude)
	fmt.Fprintf(p.out, "%s %.5f  %s %.6f°\n",
		styleMuted.Render("jd"), k.JulianDay,
		styleMuted.Render("ayanamsa"), k.Ayanamsa)
	fmt.Fprintf(p.out, "%s %s %.2f°\n",
		styleMuted.Render("lagna"), k.Ascendant.Sign, k.Ascendant.Degree)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers(headers...)
}

func (p *Printer) positions(k *kundali.Kundali) {
	p.section("Planetary Positions")
	t := newTable("Graha", "Position", "House", "Nakshatra", "Pada", "Dignity")
	for _, pl := range k.Planets {
		t.Row(
			pl.Graha.String(),
			fmt.Sprintf("%s %d°%d'%.1f\"", pl.Sign, pl.Degree, pl.Minute, pl.Second),
			strconv.Itoa(pl.House),
			pl.Nakshatra.String(),
			strconv.Itoa(pl.Pada),
			dignityLabel(pl.Dignity),
		)
	}
	fmt.Fprintln(p.out, t.Render())
}

func dignityLabel(d analysis.Dignity) string {
	label := d.Status.String()
	switch d.Status {
	case analysis.Exalted, analysis.Own:
		return styleBenefic.Render(label)
	case analysis.Debilitated, analysis.Enemy:
		return styleMalefic.Render(label)
	default:
		return label
	}
}

// Panchanga renders the five-limbs section on its own; the panchanga
// subcommand reuses it without the rest of the report.
func (p *Printer) Panchanga(k *kundali.Kundali) {
	p.section("Panchanga (Five Limbs)")
	pan := k.Panchanga
	t := newTable("Limb", "Value")
	t.Row("Tithi", fmt.Sprintf("%d %s", pan.Tithi, pan.Paksha))
	t.Row("Vara", pan.Vara)
	t.Row("Nakshatra", fmt.Sprintf("%s (%d)", pan.Nakshatra, pan.NakshatraIndex))
	t.Row("Yoga", fmt.Sprintf("%s (%d)", pan.Yoga, pan.YogaIndex))
	t.Row("Karana", fmt.Sprintf("%s (%d)", pan.Karana, pan.KaranaIndex))
	fmt.Fprintln(p.out, t.Render())
}

func (p *Printer) strengths(k *kundali.Kundali) {
	p.section("Shadbala")
	t := newTable("Graha", "Sthana", "Dig", "Kala", "Drik", "Naisargika", "Total")
	for _, pl := range k.Planets {
		s := pl.Strength
		t.Row(
			pl.Graha.String(),
			fmt.Sprintf("%.2f", s.Sthana),
			fmt.Sprintf("%.2f", s.Dig),
			fmt.Sprintf("%.2f", s.Kala),
			fmt.Sprintf("%.2f", s.Drik),
			fmt.Sprintf("%.2f", s.Naisargika),
			fmt.Sprintf("%.2f", s.Total),
		)
	}
	fmt.Fprintln(p.out, t.Render())
}

func (p *Printer) houseStrengths(k *kundali.Kundali) {
	p.section("Bhava Bala")
	t := newTable("House", "Occupancy", "Lord", "Drishti", "Total")
	for _, bb := range k.HouseStrengths {
		t.Row(
			strconv.Itoa(bb.House),
			fmt.Sprintf("%.2f", bb.Occupancy),
			fmt.Sprintf("%.2f", bb.LordStrength),
			fmt.Sprintf("%.2f", bb.Drishti),
			fmt.Sprintf("%.2f", bb.Total),
		)
	}
	fmt.Fprintln(p.out, t.Render())
}

// Dashas renders the Vimshottari timeline section on its own; the dasha
// subcommand reuses it without the rest of the report.
func (p *Printer) Dashas(k *kundali.Kundali) {
	p.section("Vimshottari Dasha")
	t := newTable("Lord", "Start", "End", "Years")
	for _, d := range k.MahaDashas {
		t.Row(
			d.Lord.String(),
			d.Start.Format("2006-01-02"),
			d.End.Format("2006-01-02"),
			fmt.Sprintf("%.2f", d.Years),
		)
	}
	fmt.Fprintln(p.out, t.Render())

	c := k.DashaChain
	fmt.Fprintf(p.out, "%s %s / %s / %s / %s\n",
		styleMuted.Render("running:"),
		styleStrong.Render(c.Maha.Lord.String()),
		c.Antara.Lord, c.Pratyantara.Lord, c.Sookshma.Lord)
}

func (p *Printer) yogas(k *kundali.Kundali) {
	p.section("Yogas")
	if len(k.Yogas) == 0 {
		fmt.Fprintln(p.out, styleMuted.Render("  (none detected)"))
		return
	}
	for _, y := range k.Yogas {
		fmt.Fprintf(p.out, "  %s %s %s\n",
			styleBenefic.Render("◆"),
			styleStrong.Render(y.Name),
			styleMuted.Render(fmt.Sprintf("[%.2f] %s", y.Strength, y.Description)))
	}
}

func (p *Printer) ashtakavarga(k *kundali.Kundali) {
	p.section("Ashtakavarga")
	headers := make([]string, 0, 13)
	headers = append(headers, "Graha")
	for h := 1; h <= 12; h++ {
		headers = append(headers, strconv.Itoa(h))
	}
	t := newTable(headers...)
	for _, g := range []graha.Graha{
		graha.Sun, graha.Moon, graha.Mars, graha.Mercury,
		graha.Jupiter, graha.Venus, graha.Saturn,
	} {
		row := make([]string, 0, 13)
		row = append(row, g.String())
		bindus := k.Ashtakavarga.Bindus[g]
		for _, b := range bindus {
			row = append(row, strconv.Itoa(b))
		}
		t.Row(row...)
	}
	sarva := make([]string, 0, 13)
	sarva = append(sarva, "Sarva")
	for _, s := range k.Ashtakavarga.Sarva {
		sarva = append(sarva, strconv.Itoa(s))
	}
	t.Row(sarva...)
	fmt.Fprintln(p.out, t.Render())
}

// Varga renders one divisional chart by key, or every chart when key is
// empty.
func (p *Printer) Varga(k *kundali.Kundali, key string) {
	for _, c := range k.Charts {
		if key != "" && !strings.EqualFold(c.Key, key) {
			continue
		}
		p.section(fmt.Sprintf("%s (%s)", c.Name, c.Key))
		t := newTable("Graha", "Sign", "Degree", "House")
		for _, pl := range c.Placements {
			t.Row(
				pl.Graha.String(),
				pl.Position.Sign.String(),
				fmt.Sprintf("%.2f", pl.Position.Degree),
				strconv.Itoa(pl.House),
			)
		}
		fmt.Fprintln(p.out, t.Render())
	}
}
