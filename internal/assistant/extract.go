package assistant

import (
	"strings"

	"rjgems-backend/internal/recommend"
)

// keywordRule maps message keywords to one preference value. A rule fires
// when any word of `any` appears and no word of `none` does. Rules are
// evaluated top to bottom per field; the first hit wins, so table order is
// the priority order.
type keywordRule struct {
	value string
	any   []string
	none  []string
}

func (r keywordRule) matches(lower string) bool {
	for _, word := range r.none {
		if strings.Contains(lower, word) {
			return false
		}
	}
	for _, word := range r.any {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

var categoryRules = []keywordRule{
	{value: "rings", any: []string{"ring", "engagement", "wedding", "proposal"}},
	{value: "necklaces", any: []string{"necklace", "pendant", "chain"}},
	{value: "earrings", any: []string{"earring", "stud", "hoop"}},
	{value: "bracelets", any: []string{"bracelet", "bangle", "cuff"}},
}

// Plain "gold" is suppressed when qualified as white or rose; platinum folds
// into the white-gold bucket.
var metalRules = []keywordRule{
	{value: "gold", any: []string{"gold"}, none: []string{"white", "rose", "pink"}},
	{value: "white gold", any: []string{"white gold", "platinum"}},
	{value: "rose gold", any: []string{"rose gold", "pink gold"}},
	{value: "sterling silver", any: []string{"silver", "sterling"}},
}

var styleRules = []keywordRule{
	{value: "classic", any: []string{"classic", "traditional", "timeless"}},
	{value: "modern", any: []string{"modern", "contemporary", "trendy"}},
	{value: "vintage", any: []string{"vintage", "antique", "retro"}},
	{value: "minimalist", any: []string{"minimalist", "simple", "clean"}},
}

var occasionRules = []keywordRule{
	{value: "engagement", any: []string{"engagement", "propose", "proposal"}},
	{value: "wedding", any: []string{"wedding", "marriage", "ceremony"}},
	{value: "anniversary", any: []string{"anniversary", "celebration", "milestone"}},
	{value: "daily", any: []string{"daily", "everyday", "casual"}},
	{value: "formal", any: []string{"formal", "party", "event"}},
}

var budgetRules = []keywordRule{
	{value: "low", any: []string{"budget", "affordable", "cheap", "inexpensive"}},
	{value: "high", any: []string{"luxury", "premium", "expensive", "high-end"}},
	{value: "medium", any: []string{"mid", "moderate"}},
}

func firstMatch(rules []keywordRule, lower string) string {
	for _, rule := range rules {
		if rule.matches(lower) {
			return rule.value
		}
	}
	return ""
}

// ExtractPreferences reads a constrained preference object out of free text
// using the keyword rule tables. Fields with no matching rule stay empty.
func ExtractPreferences(message string) recommend.Preferences {
	lower := strings.ToLower(message)
	return recommend.Preferences{
		Category:  firstMatch(categoryRules, lower),
		MetalType: firstMatch(metalRules, lower),
		Style:     firstMatch(styleRules, lower),
		Occasion:  firstMatch(occasionRules, lower),
		Budget:    firstMatch(budgetRules, lower),
	}
}
