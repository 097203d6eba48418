package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rjgems-backend/internal/models"
	"rjgems-backend/internal/recommend"
)

var (
	ErrInvalidID       = errors.New("invalid product ID")
	ErrProductNotFound = errors.New("product not found")
)

// CatalogFilter holds the storefront listing filters.
type CatalogFilter struct {
	Category   string
	Collection string
	MetalType  string
	MinPrice   float64
	MaxPrice   float64
	Featured   bool
	Search     string
	// Sort: price-low, price-high, name, popular, newest (default).
	Sort string
}

// SearchQuery is the assistant's catalog search.
type SearchQuery struct {
	Text      string
	Category  string
	MetalType string
	MinPrice  float64
	MaxPrice  float64
	Limit     int64
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	product.IsDeleted = false

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByID fetches a product by id
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	filter := bson.M{
		"_id":        objID,
		"is_deleted": false,
	}

	err = r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

// FindAll lists products with storefront filters and sorting
func (r *ProductRepository) FindAll(ctx context.Context, f CatalogFilter) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"is_deleted": false}

	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Collection != "" {
		filter["productCollection"] = f.Collection
	}
	if f.MetalType != "" {
		filter["metalType"] = f.MetalType
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		price := bson.M{}
		if f.MinPrice > 0 {
			price["$gte"] = f.MinPrice
		}
		if f.MaxPrice > 0 {
			price["$lte"] = f.MaxPrice
		}
		filter["price"] = price
	}
	if f.Featured {
		filter["featured"] = true
	}
	if f.Search != "" {
		filter["$or"] = searchClauses(f.Search)
	}

	findOptions := options.Find().SetSort(sortFor(f.Sort))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func sortFor(sort string) bson.D {
	switch sort {
	case "price-low":
		return bson.D{{Key: "price", Value: 1}}
	case "price-high":
		return bson.D{{Key: "price", Value: -1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}}
	case "popular":
		return bson.D{{Key: "reviewCount", Value: -1}, {Key: "rating", Value: -1}}
	default: // newest
		return bson.D{{Key: "created_at", Value: -1}, {Key: "featured", Value: -1}}
	}
}

func searchClauses(text string) bson.A {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	return bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
		bson.M{"tags": pattern},
		bson.M{"category": pattern},
		bson.M{"metalType": pattern},
		bson.M{"productCollection": pattern},
	}
}

// Search runs the assistant's catalog search, best rated first
func (r *ProductRepository) Search(ctx context.Context, q SearchQuery) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"is_deleted": false}
	if q.Text != "" {
		filter["$or"] = searchClauses(q.Text)
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.MetalType != "" {
		filter["metalType"] = caseInsensitive(q.MetalType)
	}
	if q.MinPrice > 0 || q.MaxPrice > 0 {
		price := bson.M{}
		if q.MinPrice > 0 {
			price["$gte"] = q.MinPrice
		}
		if q.MaxPrice > 0 {
			price["$lte"] = q.MaxPrice
		}
		filter["price"] = price
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "featured", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func caseInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// FindAllExcept returns the candidate pool for the scorer
func (r *ProductRepository) FindAllExcept(ctx context.Context, id string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	cursor, err := r.collection.Find(ctx, bson.M{
		"_id":        bson.M{"$ne": objID},
		"is_deleted": false,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindFacet runs one constrained lookup for the facet blend strategy
func (r *ProductRepository) FindFacet(ctx context.Context, q recommend.FacetQuery) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"is_deleted": false}

	if q.ExcludeID != "" {
		objID, err := primitive.ObjectIDFromHex(q.ExcludeID)
		if err != nil {
			return nil, ErrInvalidID
		}
		filter["_id"] = bson.M{"$ne": objID}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.NotCategory != "" {
		filter["category"] = bson.M{"$ne": q.NotCategory}
	}
	if q.Collection != "" {
		filter["productCollection"] = q.Collection
	}
	if q.NotCollection != "" {
		filter["productCollection"] = bson.M{"$ne": q.NotCollection}
	}
	if q.MetalType != "" {
		filter["metalType"] = q.MetalType
	}
	if q.MinPrice > 0 || q.MaxPrice > 0 {
		price := bson.M{}
		if q.MinPrice > 0 {
			price["$gte"] = q.MinPrice
		}
		if q.MaxPrice > 0 {
			price["$lte"] = q.MaxPrice
		}
		filter["price"] = price
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if q.Limit > 0 {
		findOptions.SetLimit(q.Limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Distinct lists the unique values of a catalog field
func (r *ProductRepository) Distinct(ctx context.Context, field string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	raw, err := r.collection.Distinct(ctx, field, bson.M{"is_deleted": false})
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values, nil
}

// Update partially updates a product
func (r *ProductRepository) Update(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objID, "is_deleted": false},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SoftDelete marks a product as deleted
func (r *ProductRepository) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objID, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
