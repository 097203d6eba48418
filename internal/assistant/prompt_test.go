package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rjgems-backend/internal/models"
)

func TestBuildPromptPlainQuestion(t *testing.T) {
	prompt := BuildPrompt(nil, "do you resize rings?", nil, false)

	assert.True(t, strings.HasPrefix(prompt, SystemPrompt))
	assert.Contains(t, prompt, "User: do you resize rings?")
	assert.True(t, strings.HasSuffix(prompt, "Assistant:"))
	assert.NotContains(t, prompt, "Previous conversation")
	assert.NotContains(t, prompt, "Here are some beautiful pieces")
}

func TestBuildPromptIncludesHistory(t *testing.T) {
	history := []Turn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "Welcome to RJ GEMS!"},
	}
	prompt := BuildPrompt(history, "thanks", nil, false)

	assert.Contains(t, prompt, "Previous conversation:\nuser: hi\nassistant: Welcome to RJ GEMS!")
}

func TestBuildPromptProductQueryWithHits(t *testing.T) {
	products := []models.Product{{
		Name:          "Diamond Solitaire Ring",
		Category:      "rings",
		MetalType:     "White Gold",
		Price:         1899,
		OriginalPrice: 2200,
		Rating:        4.8,
		Stock:         5,
		Description:   "A classic solitaire.",
	}}
	prompt := BuildPrompt(nil, "show me rings", products, true)

	assert.Contains(t, prompt, "1. Diamond Solitaire Ring - rings in White Gold")
	assert.Contains(t, prompt, "Price: $1899 (was $2200)")
	assert.Contains(t, prompt, "Rating: 4.8/5 stars")
	assert.Contains(t, prompt, "Stock: 5 available")
	assert.NotContains(t, prompt, NoMatchContext)
}

func TestBuildPromptProductQueryWithoutHits(t *testing.T) {
	prompt := BuildPrompt(nil, "do you sell tiaras", nil, true)
	assert.Contains(t, prompt, NoMatchContext)
}

func TestBuildPromptRedirectsDriftedConversation(t *testing.T) {
	offTopic := make([]Turn, 12)
	for i := range offTopic {
		offTopic[i] = Turn{Role: "user", Content: "what about the stock market"}
	}
	prompt := BuildPrompt(offTopic, "any thoughts?", nil, false)
	assert.Contains(t, prompt, "drifted off topic")
}

func TestFormatProductsOutOfStockAndTruncation(t *testing.T) {
	long := strings.Repeat("sparkling ", 20)
	out := FormatProducts([]models.Product{{
		Name:        "Gold Bangle",
		Category:    "bracelets",
		MetalType:   "14k Gold",
		Price:       459,
		Stock:       0,
		Description: long,
	}})

	assert.Contains(t, out, "Stock: Out of stock")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, long)
}
