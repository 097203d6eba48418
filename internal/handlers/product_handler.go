package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"rjgems-backend/internal/cache"
	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/models"
	"rjgems-backend/internal/recommend"
	"rjgems-backend/internal/repository"
)

type ProductHandler struct {
	store       ProductStore
	recommender recommend.Strategy
	cache       *cache.Cache
	log         *logger.Logger
}

func NewProductHandler(store ProductStore, recommender recommend.Strategy, c *cache.Cache, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		store:       store,
		recommender: recommender,
		cache:       c,
		log:         log,
	}
}

// ListProducts lists the catalog with filters and sorting (cached)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("maxPrice"), 64)

	filter := repository.CatalogFilter{
		Category:   c.Query("category"),
		Collection: c.Query("collection"),
		MetalType:  c.Query("metalType"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Featured:   c.Query("featured") == "true",
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
	}

	cacheKey := fmt.Sprintf(
		"products:list:cat:%s_col:%s_metal:%s_p%.0f-%.0f_feat:%v_q:%s_sort:%s",
		filter.Category, filter.Collection, filter.MetalType,
		filter.MinPrice, filter.MaxPrice, filter.Featured, filter.Search, filter.Sort,
	)
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.store.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		respondError(c, http.StatusInternalServerError, "Error fetching products")
		return
	}

	response := gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	}
	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// GetProduct returns a single product (cached)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	if cached, found := h.cache.Get(cacheKey); found {
		respondOK(c, http.StatusOK, cached)
		return
	}

	product, err := h.store.FindByID(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, repository.ErrInvalidID):
			respondError(c, http.StatusBadRequest, "Invalid product ID")
		default:
			h.log.Error("failed to get product", "productId", productID, "error", err)
			respondError(c, http.StatusInternalServerError, "Error fetching product")
		}
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	respondOK(c, http.StatusOK, product)
}

// GetRecommendations runs the configured recommendation strategy for a
// product. A missing anchor is an HTTP error; an empty recommendation set is
// a normal response.
func (h *ProductHandler) GetRecommendations(c *gin.Context) {
	productID := c.Param("id")

	recommendations, err := h.recommender.Recommend(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, repository.ErrInvalidID):
			respondError(c, http.StatusBadRequest, "Invalid product ID")
		default:
			h.log.Error("failed to generate recommendations", "productId", productID, "error", err)
			respondError(c, http.StatusInternalServerError, "Error generating recommendations")
		}
		return
	}

	respondOK(c, http.StatusOK, recommendations)
}

// GetCategoryFacets lists the distinct categories, metal types and
// collections present in the catalog (cached)
func (h *ProductHandler) GetCategoryFacets(c *gin.Context) {
	const cacheKey = "categories:all"
	if cached, found := h.cache.Get(cacheKey); found {
		respondOK(c, http.StatusOK, cached)
		return
	}

	ctx := c.Request.Context()
	categories, err := h.store.Distinct(ctx, "category")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	metalTypes, err := h.store.Distinct(ctx, "metalType")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	collections, err := h.store.Distinct(ctx, "productCollection")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	facets := gin.H{
		"categories":  categories,
		"metalTypes":  metalTypes,
		"collections": collections,
	}
	h.cache.Set(cacheKey, facets, 10*time.Minute)
	respondOK(c, http.StatusOK, facets)
}

// CreateProduct creates a new product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		h.log.Error("failed to create product", "sku", product.SKU, "error", err)
		respondError(c, http.StatusInternalServerError, "Error creating product")
		return
	}

	h.cache.DeleteByPrefix("products:list:")
	h.cache.Delete("categories:all")
	respondOK(c, http.StatusCreated, product)
}

// UpdateProduct partially updates a product
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updateMap := bson.M{}
	if update.Name != nil {
		updateMap["name"] = *update.Name
	}
	if update.Description != nil {
		updateMap["description"] = *update.Description
	}
	if update.Category != nil {
		updateMap["category"] = *update.Category
	}
	if update.Collection != nil {
		updateMap["productCollection"] = *update.Collection
	}
	if update.MetalType != nil {
		updateMap["metalType"] = *update.MetalType
	}
	if update.Price != nil {
		updateMap["price"] = *update.Price
	}
	if update.OriginalPrice != nil {
		updateMap["originalPrice"] = *update.OriginalPrice
	}
	if update.Images != nil {
		updateMap["images"] = update.Images
	}
	if update.Specifications != nil {
		updateMap["specifications"] = *update.Specifications
	}
	if update.Variants != nil {
		updateMap["variants"] = update.Variants
	}
	if update.Stock != nil {
		updateMap["stock"] = *update.Stock
	}
	if update.Rating != nil {
		updateMap["rating"] = *update.Rating
	}
	if update.ReviewCount != nil {
		updateMap["reviewCount"] = *update.ReviewCount
	}
	if update.Featured != nil {
		updateMap["featured"] = *update.Featured
	}
	if update.Tags != nil {
		updateMap["tags"] = update.Tags
	}

	if len(updateMap) == 0 {
		respondError(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.store.Update(c.Request.Context(), productID, updateMap); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, repository.ErrInvalidID):
			respondError(c, http.StatusBadRequest, "Invalid product ID")
		default:
			h.log.Error("failed to update product", "productId", productID, "error", err)
			respondError(c, http.StatusInternalServerError, "Error updating product")
		}
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")
	h.cache.Delete("categories:all")
	respondOK(c, http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct soft-deletes a product
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.store.SoftDelete(c.Request.Context(), productID); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, repository.ErrInvalidID):
			respondError(c, http.StatusBadRequest, "Invalid product ID")
		default:
			h.log.Error("failed to delete product", "productId", productID, "error", err)
			respondError(c, http.StatusInternalServerError, "Error deleting product")
		}
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")
	h.cache.Delete("categories:all")
	respondOK(c, http.StatusOK, gin.H{"message": "product deleted"})
}
