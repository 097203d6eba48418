package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("product:1", "ring")

	got, found := c.Get("product:1")
	require.True(t, found)
	assert.Equal(t, "ring", got)

	_, found = c.Get("product:2")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)
	c.Set("short", "lived", 10*time.Millisecond)

	_, found := c.Get("short")
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found = c.Get("short")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)
	c.Set("key", 1)
	c.Delete("key")

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)
	c.Set("products:list:a", 1)
	c.Set("products:list:b", 2)
	c.Set("product:1", 3)

	c.DeleteByPrefix("products:list:")

	assert.Equal(t, 1, c.Size())
	_, found := c.Get("product:1")
	assert.True(t, found)
}
