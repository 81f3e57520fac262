package planner

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"hungerguard/internal/domain"
)

// Label patterns matching the impact block rendered by Compose.
var (
	peopleServedPattern  = regexp.MustCompile(`People served:.*?(\d+)`)
	foodSavedPattern     = regexp.MustCompile(`Food waste prevented:.*?(\d+)kg`)
	economicValuePattern = regexp.MustCompile(`Economic value:.*?₹([\d,]+)`)
	emissionsPattern     = regexp.MustCompile(`CO2 emissions avoided:.*?([\d.]+)kg`)
)

// impactKeyword carries the fixed per-keyword contribution used by the
// secondary estimation pass.
type impactKeyword struct {
	keyword string
	kg      int
	price   int
	people  int
}

var impactKeywords = []impactKeyword{
	{"tomatoes", 200, 15, 50},
	{"milk", 150, 40, 60},
	{"potatoes", 500, 20, 100},
	{"apples", 50, 80, 25},
	{"fish", 100, 120, 40},
	{"rice", 300, 25, 80},
	{"wheat", 400, 22, 90},
}

// ExtractImpact reconstructs impact metrics from a rendered plan. The label
// scan covers plans produced by Compose; the keyword pass estimates plans
// from other sources (generative output, free text). The keyword pass is
// additive and double-counts repeated mentions across sections; that
// behavior is intentional and pinned by tests. Always returns fully
// populated metrics.
func ExtractImpact(planText string) domain.ImpactMetrics {
	var m domain.ImpactMetrics

	if sm := peopleServedPattern.FindStringSubmatch(planText); sm != nil {
		m.PeopleServed, _ = strconv.Atoi(sm[1])
	}
	if sm := foodSavedPattern.FindStringSubmatch(planText); sm != nil {
		m.FoodSavedKg, _ = strconv.Atoi(sm[1])
	}
	if sm := economicValuePattern.FindStringSubmatch(planText); sm != nil {
		m.EconomicValueRupees, _ = strconv.Atoi(strings.ReplaceAll(sm[1], ",", ""))
	}
	if sm := emissionsPattern.FindStringSubmatch(planText); sm != nil {
		m.EmissionsSavedKg, _ = strconv.ParseFloat(sm[1], 64)
	}

	if m.PeopleServed == 0 || m.FoodSavedKg == 0 {
		lower := strings.ToLower(planText)
		for _, k := range impactKeywords {
			if strings.Contains(lower, k.keyword) {
				m.FoodSavedKg += k.kg
				m.EconomicValueRupees += k.kg * k.price
				m.PeopleServed += k.people
			}
		}

		// The emissions figure is refreshed only when the floor kicks in; a
		// nonzero keyword estimate keeps whatever the label scan found.
		if m.FoodSavedKg == 0 {
			m.FoodSavedKg = 200
			m.EconomicValueRupees = 5000
			m.PeopleServed = 60
			m.EmissionsSavedKg = math.Round(2.5*float64(m.FoodSavedKg)*100) / 100
		}
	}

	m.WaterSavedLiters = m.FoodSavedKg * 1000
	return m
}
