package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rjgems-backend/internal/assistant"
	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/models"
	"rjgems-backend/internal/recommend"
	"rjgems-backend/internal/repository"
)

const (
	chatSearchLimit = 10
	searchLimit     = 20
)

type ChatHandler struct {
	products  ProductStore
	generator assistant.TextGenerator
	log       *logger.Logger
}

func NewChatHandler(products ProductStore, generator assistant.TextGenerator, log *logger.Logger) *ChatHandler {
	return &ChatHandler{products: products, generator: generator, log: log}
}

type chatRequest struct {
	Message             string           `json:"message" binding:"required"`
	ConversationID      string           `json:"conversationId"`
	ConversationHistory []assistant.Turn `json:"conversationHistory"`
}

// Chat answers a free-text jewelry question, folding matching catalog items
// into the prompt when the message looks like a product query.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Message is required")
		return
	}
	if err := assistant.ValidateMessage(req.Message); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := assistant.ValidateHistory(req.ConversationHistory); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = uuid.NewString()
	}

	ctx := c.Request.Context()
	productQuery := assistant.ProductIntent(req.Message)

	var products []models.Product
	if productQuery {
		hits, err := h.products.Search(ctx, repository.SearchQuery{
			Text:  req.Message,
			Limit: chatSearchLimit,
		})
		if err != nil {
			// The chat can still answer without catalog context.
			h.log.Warn("chat product search failed", "error", err)
		} else {
			products = hits
		}
	}

	prompt := assistant.BuildPrompt(req.ConversationHistory, req.Message, products, productQuery)

	reply, err := h.generator.GenerateText(ctx, prompt)
	if err != nil {
		h.log.Error("text generation failed", "conversationId", req.ConversationID, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to process chat message")
		return
	}

	response := gin.H{
		"success":        true,
		"response":       reply,
		"conversationId": req.ConversationID,
	}
	if productQuery {
		response["products"] = products
	}
	c.JSON(http.StatusOK, response)
}

// SearchProducts is the assistant's catalog search endpoint.
func (h *ChatHandler) SearchProducts(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("maxPrice"), 64)

	products, err := h.products.Search(c.Request.Context(), repository.SearchQuery{
		Text:      c.Query("q"),
		Category:  c.Query("category"),
		MetalType: c.Query("metalType"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Limit:     searchLimit,
	})
	if err != nil {
		h.log.Error("product search failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to search products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

type chatRecommendationsRequest struct {
	Message     string                `json:"message"`
	Preferences recommend.Preferences `json:"preferences"`
}

// Recommendations extracts a preference object from the message, merges any
// explicit preferences over it, and matches the catalog. An empty match list
// is a normal response; the client falls back to a generic prompt.
func (h *ChatHandler) Recommendations(c *gin.Context) {
	var req chatRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	prefs := req.Preferences
	if req.Message != "" {
		extracted := assistant.ExtractPreferences(req.Message)
		if prefs.Category == "" {
			prefs.Category = extracted.Category
		}
		if prefs.MetalType == "" {
			prefs.MetalType = extracted.MetalType
		}
		if prefs.Style == "" {
			prefs.Style = extracted.Style
		}
		if prefs.Occasion == "" {
			prefs.Occasion = extracted.Occasion
		}
		if prefs.Budget == "" {
			prefs.Budget = extracted.Budget
		}
	}
	if err := prefs.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid preferences")
		return
	}

	// Coarse pool query on the fields the catalog indexes directly; the
	// engine applies the full preference filter in memory.
	filter := repository.CatalogFilter{Category: prefs.Category}
	if min, max, ok := prefs.PriceRange(); ok {
		filter.MinPrice = min
		filter.MaxPrice = max
	}

	pool, err := h.products.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("recommendation pool query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}

	matched := recommend.MatchPreferences(prefs, pool)
	c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": matched})
}
