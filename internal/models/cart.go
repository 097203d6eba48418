package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a cart. Price is the unit price captured when the
// item was added; it is not re-derived from the live product.
type CartItem struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	ProductID       primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	SelectedVariant *Variant           `json:"selectedVariant,omitempty" bson:"selectedVariant,omitempty"`
	Price           float64            `json:"price" bson:"price"`

	// Populated from the catalog on reads, never stored.
	Product *Product `json:"product,omitempty" bson:"-"`
}

// Cart is the session-keyed shopping cart. The session id is an opaque token
// generated by the client and stored in its local storage.
type Cart struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SessionID string             `json:"sessionId" bson:"sessionId"`
	Items     []CartItem         `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// NewCart returns an empty cart for a session.
func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
	}
}

// AddItem merges a product into the cart: re-adding a product already in the
// cart increments its quantity instead of appending a second line.
func (c *Cart) AddItem(productID primitive.ObjectID, quantity int, variant *Variant, unitPrice float64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.Recalculate()
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ID:              primitive.NewObjectID(),
		ProductID:       productID,
		Quantity:        quantity,
		SelectedVariant: variant,
		Price:           unitPrice,
	})
	c.Recalculate()
}

// Item returns the line with the given id, or nil.
func (c *Cart) Item(itemID primitive.ObjectID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// SetQuantity updates a line's quantity. Returns false when the line is not
// in the cart.
func (c *Cart) SetQuantity(itemID primitive.ObjectID, quantity int) bool {
	item := c.Item(itemID)
	if item == nil {
		return false
	}
	item.Quantity = quantity
	c.Recalculate()
	return true
}

// RemoveItem drops a line from the cart. The cart record itself survives even
// when the last line is removed.
func (c *Cart) RemoveItem(itemID primitive.ObjectID) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.Recalculate()
}

// Clear empties the cart without deleting it.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Total = 0
}

// Recalculate recomputes the total from the captured unit prices.
func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
}
