package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rjgems-backend/internal/recommend"
)

func TestExtractPreferencesCategory(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"looking for a ring", "rings"},
		{"I want to propose", "rings"},
		{"a pendant for my mother", "necklaces"},
		{"some hoops maybe", "earrings"},
		{"a nice cuff", "bracelets"},
		{"something sparkly", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPreferences(tt.message).Category, tt.message)
	}
}

func TestExtractPreferencesMetal(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"a gold chain", "gold"},
		{"white gold please", "white gold"},
		{"something in platinum", "white gold"},
		{"rose gold earrings", "rose gold"},
		{"pink gold earrings", "rose gold"},
		{"sterling silver studs", "sterling silver"},
		{"no metal mentioned", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPreferences(tt.message).MetalType, tt.message)
	}
}

func TestExtractPreferencesStyleOccasionBudget(t *testing.T) {
	prefs := ExtractPreferences("A timeless piece for our anniversary, something affordable")
	assert.Equal(t, "classic", prefs.Style)
	assert.Equal(t, "anniversary", prefs.Occasion)
	assert.Equal(t, "low", prefs.Budget)

	prefs = ExtractPreferences("a trendy luxury bracelet for a formal event")
	assert.Equal(t, "modern", prefs.Style)
	assert.Equal(t, "formal", prefs.Occasion)
	assert.Equal(t, "high", prefs.Budget)

	prefs = ExtractPreferences("moderate price, something simple for everyday wear")
	assert.Equal(t, "minimalist", prefs.Style)
	assert.Equal(t, "daily", prefs.Occasion)
	assert.Equal(t, "medium", prefs.Budget)
}

func TestExtractPreferencesEngagementFillsBothFields(t *testing.T) {
	prefs := ExtractPreferences("engagement shopping")
	assert.Equal(t, "rings", prefs.Category)
	assert.Equal(t, "engagement", prefs.Occasion)
}

func TestExtractPreferencesEmptyMessage(t *testing.T) {
	assert.Equal(t, recommend.Preferences{}, ExtractPreferences(""))
	assert.True(t, ExtractPreferences("hello").IsEmpty())
}
