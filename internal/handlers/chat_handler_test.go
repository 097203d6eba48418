package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/models"
	"rjgems-backend/internal/repository"
)

// stubGenerator records the last prompt and returns a canned reply.
type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func newChatRouter(h *ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	bot := router.Group("/api/chatbot")
	bot.POST("/chat", h.Chat)
	bot.GET("/search", h.SearchProducts)
	bot.POST("/recommendations", h.Recommendations)
	return router
}

func TestChatProductQueryIncludesCatalogContext(t *testing.T) {
	hit := sampleProduct()
	products := &MockProductStore{}
	products.On("Search", mock.Anything, repository.SearchQuery{
		Text:  "show me diamond rings",
		Limit: chatSearchLimit,
	}).Return([]models.Product{hit}, nil)

	gen := &stubGenerator{reply: "We have a lovely solitaire."}
	h := NewChatHandler(products, gen, logger.NewNop())

	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/chat",
		`{"message":"show me diamond rings"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success        bool             `json:"success"`
		Response       string           `json:"response"`
		ConversationID string           `json:"conversationId"`
		Products       []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "We have a lovely solitaire.", body.Response)
	assert.NotEmpty(t, body.ConversationID)
	require.Len(t, body.Products, 1)
	assert.Equal(t, hit.Name, body.Products[0].Name)
	assert.Contains(t, gen.prompt, hit.Name)
	products.AssertExpectations(t)
}

func TestChatGeneralQuestionSkipsSearch(t *testing.T) {
	products := &MockProductStore{}
	gen := &stubGenerator{reply: "Hello! How can I help you today?"}
	h := NewChatHandler(products, gen, logger.NewNop())

	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/chat",
		`{"message":"hello there","conversationId":"conv-7"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "conv-7", body["conversationId"])
	assert.NotContains(t, body, "products")
	products.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestChatSurvivesSearchFailure(t *testing.T) {
	products := &MockProductStore{}
	products.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("index offline"))

	gen := &stubGenerator{reply: "Our rings start at $89."}
	h := NewChatHandler(products, gen, logger.NewNop())

	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/chat",
		`{"message":"what rings do you have"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Our rings start at")
}

func TestChatRejectsInvalidMessage(t *testing.T) {
	h := NewChatHandler(&MockProductStore{}, &stubGenerator{}, logger.NewNop())
	router := newChatRouter(h)

	w := performJSON(router, http.MethodPost, "/api/chatbot/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodPost, "/api/chatbot/chat", `{"message":"is this a scam"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "inappropriate")
}

func TestChatGeneratorFailure(t *testing.T) {
	h := NewChatHandler(&MockProductStore{}, &stubGenerator{err: errors.New("upstream 503")}, logger.NewNop())
	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/chat",
		`{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to process chat message")
}

func TestSearchProducts(t *testing.T) {
	hit := sampleProduct()
	products := &MockProductStore{}
	products.On("Search", mock.Anything, repository.SearchQuery{
		Text:      "diamond",
		Category:  "rings",
		MetalType: "white gold",
		MinPrice:  100,
		MaxPrice:  2000,
		Limit:     searchLimit,
	}).Return([]models.Product{hit}, nil)

	h := NewChatHandler(products, &stubGenerator{}, logger.NewNop())
	w := performJSON(newChatRouter(h), http.MethodGet,
		"/api/chatbot/search?q=diamond&category=rings&metalType=white+gold&minPrice=100&maxPrice=2000", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), hit.Name)
	products.AssertExpectations(t)
}

func TestChatRecommendationsMergesExtractedPreferences(t *testing.T) {
	ring := sampleProduct()
	ring.Collection = "engagement"
	products := &MockProductStore{}
	// "engagement ring" extraction fills category rings and occasion
	// engagement; the explicit budget narrows the pool to the high band.
	products.On("FindAll", mock.Anything, repository.CatalogFilter{
		Category: "rings",
		MinPrice: 1000,
		MaxPrice: 10000,
	}).Return([]models.Product{ring}, nil)

	h := NewChatHandler(products, &stubGenerator{}, logger.NewNop())
	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/recommendations",
		`{"message":"looking for an engagement ring","preferences":{"budget":"high"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success         bool             `json:"success"`
		Recommendations []models.Product `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, ring.ID, body.Recommendations[0].ID)
	products.AssertExpectations(t)
}

func TestChatRecommendationsInvalidPreferences(t *testing.T) {
	h := NewChatHandler(&MockProductStore{}, &stubGenerator{}, logger.NewNop())
	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/recommendations",
		`{"preferences":{"category":"watches"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid preferences")
}

func TestChatRecommendationsEmptyMatchIsOK(t *testing.T) {
	products := &MockProductStore{}
	products.On("FindAll", mock.Anything, mock.Anything).Return([]models.Product{}, nil)

	h := NewChatHandler(products, &stubGenerator{}, logger.NewNop())
	w := performJSON(newChatRouter(h), http.MethodPost, "/api/chatbot/recommendations",
		`{"message":"something sparkly"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recommendations":[]`)
}
