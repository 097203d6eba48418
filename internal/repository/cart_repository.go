package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rjgems-backend/internal/models"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists session-keyed carts. Every mutation runs under a
// per-session lock so two concurrent requests against the same session can't
// lose each other's writes in the fetch-then-save cycle.
type CartRepository struct {
	collection *mongo.Collection
	locks      sync.Map // sessionID -> *sync.Mutex
}

func NewCartRepository(collection *mongo.Collection) *CartRepository {
	return &CartRepository{collection: collection}
}

func (r *CartRepository) lock(sessionID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Find fetches a session's cart. ErrCartNotFound when none exists yet.
func (r *CartRepository) Find(ctx context.Context, sessionID string) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Mutate runs fn against the session's cart (created lazily when absent) and
// saves the result, all under the session lock.
func (r *CartRepository) Mutate(ctx context.Context, sessionID string, fn func(cart *models.Cart) error) (*models.Cart, error) {
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := r.Find(ctx, sessionID)
	if err != nil {
		if err != ErrCartNotFound {
			return nil, err
		}
		cart = models.NewCart(sessionID)
		cart.CreatedAt = time.Now()
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := r.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) save(ctx context.Context, cart *models.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cart.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"sessionId": cart.SessionID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}
