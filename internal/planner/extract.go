package planner

import (
	"regexp"
	"strconv"
	"strings"

	"hungerguard/internal/domain"
)

const (
	defaultUnitPrice      = 25
	placeholderQuantityKg = 200
	mixedItemName         = "Mixed Food Items"
	placeholderItemName   = "Food Surplus (estimated)"
)

// extractionRule pairs a quantity pattern with the canonical item it yields.
type extractionRule struct {
	pattern   *regexp.Regexp
	name      string
	unit      domain.Unit
	unitPrice int
}

// extractionRules is ordered; emitted items follow this order. The gap
// between the quantity and the item keyword is digit-free and stays within a
// line, so each quantity binds to the nearest keyword that follows it.
var extractionRules = []extractionRule{
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:tomato|tomatoes)`), "Tomatoes", domain.UnitKg, 15},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:l|liters?|litres?)[^\d\n]*?(?:milk)`), "Milk", domain.UnitL, 40},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:potato|potatoes)`), "Potatoes", domain.UnitKg, 20},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:apple|apples)`), "Apples", domain.UnitKg, 80},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:rice)`), "Rice", domain.UnitKg, 25},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:wheat)`), "Wheat", domain.UnitKg, 22},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:vegetable|vegetables)`), "Vegetables", domain.UnitKg, 18},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:fish)`), "Fish", domain.UnitKg, 120},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:meat)`), "Meat", domain.UnitKg, 200},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?)[^\d\n]*?(?:bread|bakery)`), "Bakery Items", domain.UnitKg, 30},
}

// genericQuantityPattern catches quantities with no recognized item nearby.
var genericQuantityPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?|tons?)`)

// contextKeywords signal a surplus report worth a placeholder estimate when
// no quantity could be read at all.
var contextKeywords = []string{"surplus", "excess", "available", "warehouse"}

// Extract scans a raw surplus report for known food quantities. Each rule
// sums all of its non-overlapping matches into a single entry. When no rule
// matches, generic quantities collapse into a mixed entry; when even those
// are absent, a context keyword yields a fixed placeholder entry. A zero-item
// result is valid, not an error.
func Extract(raw string) ([]domain.SurplusItem, int) {
	var items []domain.SurplusItem
	total := 0

	for _, rule := range extractionRules {
		sum := 0
		for _, m := range rule.pattern.FindAllStringSubmatch(raw, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			sum += n
		}
		if sum > 0 {
			items = append(items, domain.SurplusItem{
				Name:      rule.name,
				Quantity:  sum,
				Unit:      rule.unit,
				UnitPrice: rule.unitPrice,
			})
			total += sum
		}
	}
	if len(items) > 0 {
		return items, total
	}

	sum := 0
	for _, m := range genericQuantityPattern.FindAllStringSubmatch(raw, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		sum += n
	}
	if sum > 0 {
		return []domain.SurplusItem{{
			Name:      mixedItemName,
			Quantity:  sum,
			Unit:      domain.UnitKg,
			UnitPrice: defaultUnitPrice,
		}}, sum
	}

	lower := strings.ToLower(raw)
	for _, kw := range contextKeywords {
		if strings.Contains(lower, kw) {
			return []domain.SurplusItem{{
				Name:      placeholderItemName,
				Quantity:  placeholderQuantityKg,
				Unit:      domain.UnitKg,
				UnitPrice: defaultUnitPrice,
			}}, placeholderQuantityKg
		}
	}

	return nil, 0
}
