package models

import (
	"encoding/json"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog enums. Variant metal type is intentionally not constrained to
// MetalTypes; a size of the same piece can be offered in a different metal.
var (
	Categories  = []string{"rings", "necklaces", "earrings", "bracelets"}
	Collections = []string{"wedding", "engagement", "anniversary", "birthday", "everyday"}
	MetalTypes  = []string{"14k Gold", "Sterling Silver", "Rose Gold", "White Gold", "Platinum"}
)

// Specifications holds the free-form spec sheet shown on the detail page.
type Specifications struct {
	Weight      string `json:"weight,omitempty" bson:"weight,omitempty"`
	Dimensions  string `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	StoneType   string `json:"stoneType,omitempty" bson:"stoneType,omitempty"`
	StoneWeight string `json:"stoneWeight,omitempty" bson:"stoneWeight,omitempty"`
	Setting     string `json:"setting,omitempty" bson:"setting,omitempty"`
}

// Variant is a purchasable variation of a product (size/metal/price override).
type Variant struct {
	Size      string  `json:"size" bson:"size"`
	MetalType string  `json:"metalType,omitempty" bson:"metalType,omitempty"`
	Price     float64 `json:"price,omitempty" bson:"price,omitempty"`
	Stock     int     `json:"stock" bson:"stock"`
}

// Product is a catalog entry.
type Product struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" binding:"required"`
	Description    string             `json:"description" bson:"description" binding:"required"`
	Category       string             `json:"category" bson:"category" binding:"required,oneof=rings necklaces earrings bracelets"`
	Collection     string             `json:"productCollection,omitempty" bson:"productCollection,omitempty" binding:"omitempty,oneof=wedding engagement anniversary birthday everyday"`
	MetalType      string             `json:"metalType" bson:"metalType" binding:"required,oneof='14k Gold' 'Sterling Silver' 'Rose Gold' 'White Gold' 'Platinum'"`
	Price          float64            `json:"price" bson:"price" binding:"required,gte=0"`
	OriginalPrice  float64            `json:"originalPrice,omitempty" bson:"originalPrice,omitempty" binding:"omitempty,gte=0"`
	Images         []string           `json:"images" bson:"images" binding:"required,min=1"`
	Specifications Specifications     `json:"specifications,omitempty" bson:"specifications,omitempty"`
	Variants       []Variant          `json:"variants,omitempty" bson:"variants,omitempty"`
	Stock          int                `json:"stock" bson:"stock"`
	Rating         float64            `json:"rating" bson:"rating" binding:"omitempty,gte=0,lte=5"`
	ReviewCount    int                `json:"reviewCount" bson:"reviewCount" binding:"omitempty,gte=0"`
	Featured       bool               `json:"featured" bson:"featured"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	SKU            string             `json:"sku" bson:"sku" binding:"required"`
	IsDeleted      bool               `json:"-" bson:"is_deleted"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DiscountPercentage derives the discount from the list price. Never stored;
// 0 when there is no list price or the list price isn't higher.
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice > p.Price && p.OriginalPrice > 0 {
		return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
	}
	return 0
}

// MarshalJSON serializes the derived discountPercentage alongside the stored
// fields so clients never compute it themselves.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		DiscountPercentage int `json:"discountPercentage"`
	}{alias(p), p.DiscountPercentage()})
}

// ProductUpdate carries the patchable subset of a product.
type ProductUpdate struct {
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Category       *string         `json:"category,omitempty" binding:"omitempty,oneof=rings necklaces earrings bracelets"`
	Collection     *string         `json:"productCollection,omitempty" binding:"omitempty,oneof=wedding engagement anniversary birthday everyday"`
	MetalType      *string         `json:"metalType,omitempty" binding:"omitempty,oneof='14k Gold' 'Sterling Silver' 'Rose Gold' 'White Gold' 'Platinum'"`
	Price          *float64        `json:"price,omitempty" binding:"omitempty,gte=0"`
	OriginalPrice  *float64        `json:"originalPrice,omitempty" binding:"omitempty,gte=0"`
	Images         []string        `json:"images,omitempty"`
	Specifications *Specifications `json:"specifications,omitempty"`
	Variants       []Variant       `json:"variants,omitempty"`
	Stock          *int            `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Rating         *float64        `json:"rating,omitempty" binding:"omitempty,gte=0,lte=5"`
	ReviewCount    *int            `json:"reviewCount,omitempty" binding:"omitempty,gte=0"`
	Featured       *bool           `json:"featured,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
}
