package recommend

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"rjgems-backend/internal/models"
)

// MaxPreferenceMatches caps the assistant-driven recommendation output.
const MaxPreferenceMatches = 3

var validate = validator.New()

// Preferences is the constrained preference object the assistant extracts
// from free text. Every field is optional; empty imposes no filter.
type Preferences struct {
	Category  string `json:"category,omitempty" validate:"omitempty,oneof=rings necklaces earrings bracelets"`
	MetalType string `json:"metalType,omitempty" validate:"omitempty,oneof=gold 'white gold' 'rose gold' platinum 'sterling silver'"`
	Style     string `json:"style,omitempty" validate:"omitempty,oneof=classic modern vintage minimalist luxury elegant"`
	Occasion  string `json:"occasion,omitempty" validate:"omitempty,oneof=engagement wedding anniversary daily formal casual gift"`
	Budget    string `json:"budget,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Validate rejects values outside the closed enums.
func (p Preferences) Validate() error {
	return validate.Struct(p)
}

// IsEmpty reports whether no preference field is set.
func (p Preferences) IsEmpty() bool {
	return p.Category == "" && p.MetalType == "" && p.Style == "" && p.Occasion == "" && p.Budget == ""
}

// PriceRange maps the coarse budget tier to its closed price band. The bands
// overlap on purpose; they are independent range filters, not a partition.
func (p Preferences) PriceRange() (min, max float64, ok bool) {
	switch p.Budget {
	case "low":
		return 0, 1000, true
	case "medium":
		return 500, 2000, true
	case "high":
		return 1000, 10000, true
	}
	return 0, 0, false
}

func (p Preferences) matches(product *models.Product) bool {
	if p.Category != "" && !strings.EqualFold(product.Category, p.Category) {
		return false
	}
	if p.MetalType != "" && !strings.EqualFold(product.MetalType, p.MetalType) {
		return false
	}
	if p.Style != "" && !tagMatch(product, p.Style) {
		return false
	}
	if p.Occasion != "" && !strings.EqualFold(product.Collection, p.Occasion) && !tagMatch(product, p.Occasion) {
		return false
	}
	if min, max, ok := p.PriceRange(); ok {
		if product.Price < min || product.Price > max {
			return false
		}
	}
	return true
}

func tagMatch(product *models.Product, value string) bool {
	for _, tag := range product.Tags {
		if strings.EqualFold(tag, value) {
			return true
		}
	}
	return false
}

// MatchPreferences filters the pool down to products satisfying every set
// preference field, sorts featured first then rating descending (price
// ascending breaks ties for a "low" budget, descending for "high") and
// returns at most MaxPreferenceMatches. An empty result is a normal outcome,
// not an error; the assistant falls back to a generic prompt.
func MatchPreferences(prefs Preferences, pool []models.Product) []models.Product {
	matched := []models.Product{}
	for i := range pool {
		if prefs.matches(&pool[i]) {
			matched = append(matched, pool[i])
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Featured != matched[j].Featured {
			return matched[i].Featured
		}
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		switch prefs.Budget {
		case "low":
			return matched[i].Price < matched[j].Price
		case "high":
			return matched[i].Price > matched[j].Price
		}
		return false
	})

	if len(matched) > MaxPreferenceMatches {
		matched = matched[:MaxPreferenceMatches]
	}
	return matched
}
