package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/models"
	"rjgems-backend/internal/repository"
)

var (
	errItemNotFound      = errors.New("item not found in cart")
	errInsufficientStock = errors.New("insufficient stock")
)

type CartHandler struct {
	carts    CartStore
	products ProductStore
	log      *logger.Logger
}

func NewCartHandler(carts CartStore, products ProductStore, log *logger.Logger) *CartHandler {
	return &CartHandler{carts: carts, products: products, log: log}
}

type addItemRequest struct {
	ProductID       string          `json:"productId" binding:"required"`
	Quantity        int             `json:"quantity" binding:"omitempty,min=1"`
	SelectedVariant *models.Variant `json:"selectedVariant,omitempty"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the session's cart, or an empty cart shape when the
// session has never added anything.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	cart, err := h.carts.Find(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			respondOK(c, http.StatusOK, models.NewCart(sessionID))
			return
		}
		h.log.Error("failed to fetch cart", "sessionId", sessionID, "error", err)
		respondError(c, http.StatusInternalServerError, "Error fetching cart")
		return
	}

	h.populate(c.Request.Context(), cart)
	respondOK(c, http.StatusOK, cart)
}

// AddItem validates the product and stock, then merges the line into the
// session cart (same product increments quantity).
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request.Context()
	product, err := h.products.FindByID(ctx, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound), errors.Is(err, repository.ErrInvalidID):
			respondError(c, http.StatusNotFound, "Product not found")
		default:
			h.log.Error("failed to validate product", "productId", req.ProductID, "error", err)
			respondError(c, http.StatusInternalServerError, "Error adding item to cart")
		}
		return
	}

	if product.Stock < req.Quantity {
		respondError(c, http.StatusBadRequest, "Insufficient stock")
		return
	}

	cart, err := h.carts.Mutate(ctx, sessionID, func(cart *models.Cart) error {
		cart.AddItem(product.ID, req.Quantity, req.SelectedVariant, product.Price)
		return nil
	})
	if err != nil {
		h.log.Error("failed to add item to cart", "sessionId", sessionID, "error", err)
		respondError(c, http.StatusInternalServerError, "Error adding item to cart")
		return
	}

	h.populate(ctx, cart)
	respondOK(c, http.StatusOK, cart)
}

// UpdateItem changes a line's quantity after re-checking stock.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.carts.Find(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			respondError(c, http.StatusNotFound, "Cart not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating cart item")
		return
	}

	cart, err := h.carts.Mutate(ctx, sessionID, func(cart *models.Cart) error {
		item := cart.Item(itemID)
		if item == nil {
			return errItemNotFound
		}
		product, err := h.products.FindByID(ctx, item.ProductID.Hex())
		if err != nil {
			return err
		}
		if product.Stock < req.Quantity {
			return errInsufficientStock
		}
		cart.SetQuantity(itemID, req.Quantity)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errItemNotFound):
			respondError(c, http.StatusNotFound, "Item not found in cart")
		case errors.Is(err, errInsufficientStock):
			respondError(c, http.StatusBadRequest, "Insufficient stock")
		default:
			h.log.Error("failed to update cart item", "sessionId", sessionID, "error", err)
			respondError(c, http.StatusInternalServerError, "Error updating cart item")
		}
		return
	}

	h.populate(ctx, cart)
	respondOK(c, http.StatusOK, cart)
}

// RemoveItem drops a line; the cart record survives empty.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.carts.Find(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			respondError(c, http.StatusNotFound, "Cart not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error removing item from cart")
		return
	}

	cart, err := h.carts.Mutate(ctx, sessionID, func(cart *models.Cart) error {
		cart.RemoveItem(itemID)
		return nil
	})
	if err != nil {
		h.log.Error("failed to remove cart item", "sessionId", sessionID, "error", err)
		respondError(c, http.StatusInternalServerError, "Error removing item from cart")
		return
	}

	h.populate(ctx, cart)
	respondOK(c, http.StatusOK, cart)
}

// ClearCart empties the cart without deleting the record.
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	ctx := c.Request.Context()
	if _, err := h.carts.Find(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart already empty"})
			return
		}
		respondError(c, http.StatusInternalServerError, "Error clearing cart")
		return
	}

	cart, err := h.carts.Mutate(ctx, sessionID, func(cart *models.Cart) error {
		cart.Clear()
		return nil
	})
	if err != nil {
		h.log.Error("failed to clear cart", "sessionId", sessionID, "error", err)
		respondError(c, http.StatusInternalServerError, "Error clearing cart")
		return
	}

	respondOK(c, http.StatusOK, cart)
}

// populate attaches live product records to the cart lines for the response.
// A line whose product has been removed keeps its snapshot fields.
func (h *CartHandler) populate(ctx context.Context, cart *models.Cart) {
	for i := range cart.Items {
		product, err := h.products.FindByID(ctx, cart.Items[i].ProductID.Hex())
		if err != nil {
			continue
		}
		cart.Items[i].Product = product
	}
}
