package analysis

import (
	"fmt"

	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/graha"
)

// Yoga is one detected planetary combination. Detection never
// deduplicates: the same pattern reported for two qualifying pairs yields
// two records.
type Yoga struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Strength    float64 `json:"strength"`
}

var kendraHouses = [4]int{1, 4, 7, 10}
var trikonaHouses = [3]int{1, 5, 9}

// mahapurushaNames maps the five non-luminary classical planets to their
// Pancha Mahapurusha yoga.
var mahapurushaNames = map[graha.Graha]string{
	graha.Mars:    "Ruchaka",
	graha.Mercury: "Bhadra",
	graha.Jupiter: "Hamsa",
	graha.Venus:   "Malavya",
	graha.Saturn:  "Sasa",
}

// DetectYogas runs every yoga check over the working set and returns the
// combined findings in check order: Raja, Dhana, Mahapurusha, Nabhasa.
func DetectYogas(positions []graha.Position, ascSidDeg float64) []Yoga {
	var yogas []Yoga
	yogas = append(yogas, rajaYogas(positions, ascSidDeg)...)
	yogas = append(yogas, dhanaYogas(positions, ascSidDeg)...)
	yogas = append(yogas, mahapurushaYogas(positions, ascSidDeg)...)
	yogas = append(yogas, nabhasaYogas(positions, ascSidDeg)...)
	return yogas
}

// rajaYogas pairs every kendra lord with every trikona lord and scores
// the pair when they conjoin, exchange mutual 7th aspects, or sit in
// mutual reception. Strength starts at 1.0, reception adds 0.5, and each
// exalted or own-sign participant adds 0.25, clamped to [0,2].
func rajaYogas(positions []graha.Position, ascSidDeg float64) []Yoga {
	var yogas []Yoga
	for _, kh := range kendraHouses {
		kLord, err := chart.HouseLord(kh, ascSidDeg)
		if err != nil {
			continue
		}
		for _, th := range trikonaHouses {
			tLord, err := chart.HouseLord(th, ascSidDeg)
			if err != nil || kLord == tLord {
				continue
			}
			kp, okK := graha.Find(positions, kLord)
			tp, okT := graha.Find(positions, tLord)
			if !okK || !okT {
				continue
			}
			kHouse := chart.HouseOf(kp.Longitude, ascSidDeg)
			tHouse := chart.HouseOf(tp.Longitude, ascSidDeg)
			reception := kLord.OwnsSign(chart.SignOf(tp.Longitude)) &&
				tLord.OwnsSign(chart.SignOf(kp.Longitude))
			conjunct := kHouse == tHouse
			opposed := houseOffset(kHouse, tHouse) == 7
			if !conjunct && !opposed && !reception {
				continue
			}

			strength := 1.0
			if reception {
				strength += 0.5
			}
			strength += dignityBonus(kLord, chart.SignOf(kp.Longitude))
			strength += dignityBonus(tLord, chart.SignOf(tp.Longitude))
			if strength > 2 {
				strength = 2
			}
			yogas = append(yogas, Yoga{
				Name: "Raja Yoga",
				Description: fmt.Sprintf("%s (lord of house %d) combines with %s (lord of house %d)",
					kLord, kh, tLord, th),
				Strength: strength,
			})
		}
	}
	return yogas
}

func dignityBonus(g graha.Graha, sign graha.Rasi) float64 {
	d, err := DignityOf(g, sign)
	if err != nil {
		return 0
	}
	switch d.Status {
	case Exalted, Own:
		return 0.25
	default:
		return 0
	}
}

// dhanaYogas reports wealth combinations from the lagna lord and the
// tenth lord occupying the same house.
func dhanaYogas(positions []graha.Position, ascSidDeg float64) []Yoga {
	first, err1 := chart.HouseLord(1, ascSidDeg)
	tenth, err2 := chart.HouseLord(10, ascSidDeg)
	if err1 != nil || err2 != nil || first == tenth {
		return nil
	}
	fp, okF := graha.Find(positions, first)
	tp, okT := graha.Find(positions, tenth)
	if !okF || !okT {
		return nil
	}
	if chart.HouseOf(fp.Longitude, ascSidDeg) != chart.HouseOf(tp.Longitude, ascSidDeg) {
		return nil
	}
	return []Yoga{{
		Name:        "Dhana Yoga",
		Description: fmt.Sprintf("lagna lord %s joins tenth lord %s", first, tenth),
		Strength:    1.0,
	}}
}

// mahapurushaYogas checks the five single-planet patterns: the planet in
// its own or exaltation sign while occupying a kendra from the lagna.
func mahapurushaYogas(positions []graha.Position, ascSidDeg float64) []Yoga {
	var yogas []Yoga
	for _, p := range positions {
		name, ok := mahapurushaNames[p.Graha]
		if !ok {
			continue
		}
		sign := chart.SignOf(p.Longitude)
		d, err := DignityOf(p.Graha, sign)
		if err != nil || (d.Status != Own && d.Status != Exalted) {
			continue
		}
		house := chart.HouseOf(p.Longitude, ascSidDeg)
		class, err := chart.ClassOf(house)
		if err != nil || class != chart.Angular {
			continue
		}
		strength := 1.5
		if d.Status == Exalted {
			strength = 2.0
		}
		yogas = append(yogas, Yoga{
			Name:        name + " Yoga",
			Description: fmt.Sprintf("%s %s in kendra house %d", p.Graha, d.Status, house),
			Strength:    strength,
		})
	}
	return yogas
}

// nabhasaYogas covers the two shape patterns: Rajju, three or more
// planets strung through cyclically consecutive houses, and Musala, the
// whole working set confined to kendras.
func nabhasaYogas(positions []graha.Position, ascSidDeg float64) []Yoga {
	if len(positions) == 0 {
		return nil
	}

	var counts [13]int
	for _, p := range positions {
		counts[chart.HouseOf(p.Longitude, ascSidDeg)]++
	}

	var yogas []Yoga
	if run, planets := longestRun(counts); planets >= 3 && run >= 2 {
		yogas = append(yogas, Yoga{
			Name:        "Rajju Yoga",
			Description: fmt.Sprintf("%d planets strung across %d consecutive houses", planets, run),
			Strength:    1.0,
		})
	}

	allAngular := true
	for _, p := range positions {
		class, err := chart.ClassOf(chart.HouseOf(p.Longitude, ascSidDeg))
		if err != nil || class != chart.Angular {
			allAngular = false
			break
		}
	}
	if allAngular {
		yogas = append(yogas, Yoga{
			Name:        "Musala Yoga",
			Description: "all planets occupy angular houses",
			Strength:    1.0,
		})
	}
	return yogas
}

// longestRun finds the longest cyclic stretch of consecutively occupied
// houses and the number of planets it holds.
func longestRun(counts [13]int) (houses, planets int) {
	occupied := func(h int) bool { return counts[(h-1)%12+1] > 0 }

	allOccupied := true
	for h := 1; h <= 12; h++ {
		if !occupied(h) {
			allOccupied = false
			break
		}
	}
	if allOccupied {
		total := 0
		for h := 1; h <= 12; h++ {
			total += counts[h]
		}
		return 12, total
	}

	for h := 1; h <= 12; h++ {
		if occupied(h) {
			continue
		}
		// Walk runs starting after each gap.
		run, sum := 0, 0
		for step := 1; step <= 12; step++ {
			next := (h-1+step)%12 + 1
			if occupied(next) {
				run++
				sum += counts[next]
				if run > houses || (run == houses && sum > planets) {
					houses, planets = run, sum
				}
			} else {
				run, sum = 0, 0
			}
		}
		break
	}
	return houses, planets
}
