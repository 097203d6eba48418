package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"rjgems-backend/internal/models"
	"rjgems-backend/internal/repository"
)

// ProductStore is the catalog surface the handlers consume. Implemented by
// repository.ProductRepository; mocked in tests.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context, f repository.CatalogFilter) ([]models.Product, error)
	Search(ctx context.Context, q repository.SearchQuery) ([]models.Product, error)
	Distinct(ctx context.Context, field string) ([]string, error)
	Update(ctx context.Context, id string, update bson.M) error
	SoftDelete(ctx context.Context, id string) error
}

// CartStore is the session cart surface.
type CartStore interface {
	Find(ctx context.Context, sessionID string) (*models.Cart, error)
	Mutate(ctx context.Context, sessionID string, fn func(cart *models.Cart) error) (*models.Cart, error)
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
