package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rjgems-backend/internal/cache"
	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/models"
	"rjgems-backend/internal/repository"
)

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) FindAll(ctx context.Context, f repository.CatalogFilter) ([]models.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductStore) Search(ctx context.Context, q repository.SearchQuery) ([]models.Product, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductStore) Distinct(ctx context.Context, field string) ([]string, error) {
	args := m.Called(ctx, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductStore) Update(ctx context.Context, id string, update bson.M) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockProductStore) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// stubStrategy returns a fixed recommendation set or error.
type stubStrategy struct {
	products []models.Product
	err      error
}

func (s *stubStrategy) Recommend(ctx context.Context, anchorID string) ([]models.Product, error) {
	return s.products, s.err
}

func sampleProduct() models.Product {
	return models.Product{
		ID:        primitive.NewObjectID(),
		Name:      "Diamond Solitaire Ring",
		Category:  "rings",
		MetalType: "White Gold",
		Price:     1899,
		Stock:     5,
	}
}

func newProductRouter(h *ProductHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/products", h.ListProducts)
	router.GET("/api/products/categories/all", h.GetCategoryFacets)
	router.GET("/api/products/:id", h.GetProduct)
	router.GET("/api/products/:id/recommendations", h.GetRecommendations)
	return router
}

func perform(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	store := &MockProductStore{}
	store.On("FindAll", mock.Anything, repository.CatalogFilter{
		Category: "rings",
		Sort:     "price-low",
	}).Return([]models.Product{sampleProduct()}, nil)

	h := NewProductHandler(store, &stubStrategy{}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products?category=rings&sort=price-low")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool             `json:"success"`
		Count   int              `json:"count"`
		Data    []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Diamond Solitaire Ring", body.Data[0].Name)
	store.AssertExpectations(t)
}

func TestListProductsServesSecondRequestFromCache(t *testing.T) {
	store := &MockProductStore{}
	store.On("FindAll", mock.Anything, mock.Anything).Return([]models.Product{sampleProduct()}, nil).Once()

	h := NewProductHandler(store, &stubStrategy{}, cache.New(time.Minute), logger.NewNop())
	router := newProductRouter(h)

	first := perform(router, http.MethodGet, "/api/products")
	second := perform(router, http.MethodGet, "/api/products")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	store.AssertExpectations(t)
}

func TestGetProduct(t *testing.T) {
	product := sampleProduct()
	store := &MockProductStore{}
	store.On("FindByID", mock.Anything, product.ID.Hex()).Return(&product, nil)

	h := NewProductHandler(store, &stubStrategy{}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/"+product.ID.Hex())

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool           `json:"success"`
		Data    models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, product.ID, body.Data.ID)
}

func TestGetProductNotFound(t *testing.T) {
	store := &MockProductStore{}
	store.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrProductNotFound)

	h := NewProductHandler(store, &stubStrategy{}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestGetProductInvalidID(t *testing.T) {
	store := &MockProductStore{}
	store.On("FindByID", mock.Anything, "not-an-id").Return(nil, repository.ErrInvalidID)

	h := NewProductHandler(store, &stubStrategy{}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/not-an-id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product ID")
}

func TestGetRecommendations(t *testing.T) {
	recommended := sampleProduct()
	h := NewProductHandler(&MockProductStore{}, &stubStrategy{products: []models.Product{recommended}}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex()+"/recommendations")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool             `json:"success"`
		Data    []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, recommended.ID, body.Data[0].ID)
}

func TestGetRecommendationsAnchorMissing(t *testing.T) {
	h := NewProductHandler(&MockProductStore{}, &stubStrategy{err: repository.ErrProductNotFound}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex()+"/recommendations")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecommendationsEmptySetIsOK(t *testing.T) {
	h := NewProductHandler(&MockProductStore{}, &stubStrategy{products: []models.Product{}}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex()+"/recommendations")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetCategoryFacets(t *testing.T) {
	store := &MockProductStore{}
	store.On("Distinct", mock.Anything, "category").Return([]string{"rings", "necklaces"}, nil)
	store.On("Distinct", mock.Anything, "metalType").Return([]string{"White Gold"}, nil)
	store.On("Distinct", mock.Anything, "productCollection").Return([]string{"wedding"}, nil)

	h := NewProductHandler(store, &stubStrategy{}, cache.New(time.Minute), logger.NewNop())
	w := perform(newProductRouter(h), http.MethodGet, "/api/products/categories/all")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"categories":["rings","necklaces"]`)
	assert.Contains(t, w.Body.String(), `"metalTypes":["White Gold"]`)
	assert.Contains(t, w.Body.String(), `"collections":["wedding"]`)
	store.AssertExpectations(t)
}
