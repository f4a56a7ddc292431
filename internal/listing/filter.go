package listing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"carbazaar-api/internal/model"
)

// Sort orders accepted by Apply. Anything else leaves the input order
// untouched.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Filter is one listing query: a set of accepted values per category plus a
// sort order. Categories combine with AND, values within a category with OR,
// and an empty set leaves that category unconstrained.
type Filter struct {
	Fuels         []string
	Transmissions []string
	Sort          string
}

var nonNumeric = regexp.MustCompile(`[^0-9.]+`)

// Apply returns the variants passing every active category, ordered per
// f.Sort. The sort is stable so equal-priced variants keep catalog order.
func Apply(in []model.VariantDisplay, f Filter) []model.VariantDisplay {
	out := make([]model.VariantDisplay, 0, len(in))
	for _, v := range in {
		if !passes(v.Fuel, f.Fuels) {
			continue
		}
		if !passes(v.Transmission, f.Transmissions) {
			continue
		}
		out = append(out, v)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceValue(out[i]) < priceValue(out[j])
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceValue(out[i]) > priceValue(out[j])
		})
	}
	return out
}

// ApplyModels returns the models passing every active category, in catalog
// order. A model advertises a list of fuel types and transmissions; it
// passes a category when any listed value matches any accepted value, under
// the same lowercased substring rule as variants.
func ApplyModels(in []model.CarModel, f Filter) []model.CarModel {
	out := make([]model.CarModel, 0, len(in))
	for _, m := range in {
		if !passesAny(m.FuelTypes, f.Fuels) {
			continue
		}
		if !passesAny(m.Transmissions, f.Transmissions) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func passesAny(values []string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, v := range values {
		if passes(v, accepted) {
			return true
		}
	}
	return false
}

// passes reports whether the item's field matches any accepted value.
// Matching is a lowercased substring test, so a "Petrol/Diesel" variant
// passes a "diesel" filter.
func passes(field string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	have := strings.ToLower(field)
	for _, want := range accepted {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		if strings.Contains(have, want) {
			return true
		}
	}
	return false
}

// priceValue parses the lakh figure back out of the display price string by
// stripping everything non-numeric. Unpriced variants read as 0.
func priceValue(v model.VariantDisplay) float64 {
	s := nonNumeric.ReplaceAllString(v.PriceText, "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
