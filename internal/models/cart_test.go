package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartAddItemMergesExistingLine(t *testing.T) {
	cart := NewCart("session-1")
	productID := primitive.NewObjectID()

	cart.AddItem(productID, 1, nil, 649)
	cart.AddItem(productID, 2, nil, 649)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 1947.0, cart.Total)
}

func TestCartAddItemSeparateLinesPerProduct(t *testing.T) {
	cart := NewCart("session-1")

	cart.AddItem(primitive.NewObjectID(), 1, nil, 89)
	cart.AddItem(primitive.NewObjectID(), 1, &Variant{Size: "7", Stock: 3}, 1899)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1988.0, cart.Total)
	assert.Nil(t, cart.Items[0].SelectedVariant)
	require.NotNil(t, cart.Items[1].SelectedVariant)
	assert.Equal(t, "7", cart.Items[1].SelectedVariant.Size)
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(primitive.NewObjectID(), 1, nil, 100)
	itemID := cart.Items[0].ID

	require.True(t, cart.SetQuantity(itemID, 5))
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 500.0, cart.Total)

	assert.False(t, cart.SetQuantity(primitive.NewObjectID(), 2))
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(primitive.NewObjectID(), 1, nil, 100)
	cart.AddItem(primitive.NewObjectID(), 2, nil, 50)
	firstID := cart.Items[0].ID

	cart.RemoveItem(firstID)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 100.0, cart.Total)

	// Removing the last line leaves an empty cart, not a nil one.
	cart.RemoveItem(cart.Items[0].ID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCartClear(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(primitive.NewObjectID(), 3, nil, 200)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Equal(t, "session-1", cart.SessionID)
}

func TestCartItemLookup(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(primitive.NewObjectID(), 1, nil, 100)

	assert.NotNil(t, cart.Item(cart.Items[0].ID))
	assert.Nil(t, cart.Item(primitive.NewObjectID()))
}
