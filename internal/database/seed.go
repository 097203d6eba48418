package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rjgems-backend/internal/models"
)

// Seed replaces the products collection with the sample catalog.
func Seed(ctx context.Context, collection *mongo.Collection) (int, error) {
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}

	products := SampleProducts()
	docs := make([]interface{}, 0, len(products))
	now := time.Now()
	for i := range products {
		products[i].ID = primitive.NewObjectID()
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		docs = append(docs, products[i])
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

// SampleProducts returns the demo jewelry catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:          "Diamond Solitaire Ring",
			Description:   "A timeless 14k white gold ring featuring a brilliant-cut diamond in a classic solitaire setting. Perfect for engagements and special occasions.",
			Category:      "rings",
			Collection:    "engagement",
			MetalType:     "White Gold",
			Price:         1899,
			OriginalPrice: 2200,
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800",
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&fit=crop&crop=center",
			},
			Specifications: models.Specifications{
				Weight:      "3.2g",
				Dimensions:  "Size 6-8",
				StoneType:   "Diamond",
				StoneWeight: "0.5 carat",
				Setting:     "Prong",
			},
			Variants: []models.Variant{
				{Size: "6", MetalType: "White Gold", Price: 1899, Stock: 5},
				{Size: "7", MetalType: "White Gold", Price: 1899, Stock: 8},
				{Size: "8", MetalType: "White Gold", Price: 1899, Stock: 3},
			},
			Stock:       16,
			Rating:      4.8,
			ReviewCount: 127,
			Featured:    true,
			Tags:        []string{"engagement", "diamond", "classic", "luxury"},
			SKU:         "DSR-001",
		},
		{
			Name:          "Rose Gold Tennis Bracelet",
			Description:   "Elegant rose gold bracelet with alternating diamonds and sapphires. Perfect for adding sophistication to any outfit.",
			Category:      "bracelets",
			Collection:    "everyday",
			MetalType:     "Rose Gold",
			Price:         899,
			OriginalPrice: 1100,
			Images: []string{
				"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800",
			},
			Specifications: models.Specifications{
				Weight:      "8.5g",
				Dimensions:  "7.5 inches",
				StoneType:   "Diamond & Sapphire",
				StoneWeight: "2.1 carats total",
				Setting:     "Channel",
			},
			Variants: []models.Variant{
				{Size: "7", MetalType: "Rose Gold", Price: 899, Stock: 4},
				{Size: "7.5", MetalType: "Rose Gold", Price: 899, Stock: 6},
			},
			Stock:       10,
			Rating:      4.6,
			ReviewCount: 89,
			Featured:    true,
			Tags:        []string{"tennis", "rose gold", "diamond", "sapphire"},
			SKU:         "RGB-002",
		},
		{
			Name:        "Pearl Drop Earrings",
			Description: "Sophisticated sterling silver earrings featuring freshwater pearls. Perfect for both casual and formal occasions.",
			Category:    "earrings",
			Collection:  "everyday",
			MetalType:   "Sterling Silver",
			Price:       149,
			Images: []string{
				"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800",
			},
			Specifications: models.Specifications{
				Weight:      "4.2g",
				Dimensions:  "1.5 inches",
				StoneType:   "Freshwater Pearl",
				StoneWeight: "8mm",
				Setting:     "Post",
			},
			Variants: []models.Variant{
				{Size: "Standard", MetalType: "Sterling Silver", Price: 149, Stock: 25},
			},
			Stock:       25,
			Rating:      4.4,
			ReviewCount: 203,
			Tags:        []string{"pearl", "silver", "elegant", "versatile"},
			SKU:         "PDE-003",
		},
		{
			Name:          "Emerald Pendant Necklace",
			Description:   "Stunning 14k gold necklace featuring a natural emerald pendant. A statement piece that adds color and elegance.",
			Category:      "necklaces",
			Collection:    "birthday",
			MetalType:     "14k Gold",
			Price:         649,
			OriginalPrice: 799,
			Images: []string{
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800",
			},
			Specifications: models.Specifications{
				Weight:      "6.8g",
				Dimensions:  "18 inches",
				StoneType:   "Natural Emerald",
				StoneWeight: "0.8 carat",
				Setting:     "Bezel",
			},
			Variants: []models.Variant{
				{Size: "18", MetalType: "14k Gold", Price: 649, Stock: 12},
			},
			Stock:       12,
			Rating:      4.7,
			ReviewCount: 156,
			Featured:    true,
			Tags:        []string{"emerald", "gold", "pendant", "statement"},
			SKU:         "EPN-004",
		},
		{
			Name:        "Platinum Wedding Band",
			Description: "Classic platinum wedding band with a subtle brushed finish. Timeless design for the perfect wedding day.",
			Category:    "rings",
			Collection:  "wedding",
			MetalType:   "Platinum",
			Price:       1299,
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&fit=crop&crop=bottom",
			},
			Specifications: models.Specifications{
				Weight:     "4.1g",
				Dimensions: "Size 6-10",
				StoneType:  "None",
				Setting:    "Plain",
			},
			Variants: []models.Variant{
				{Size: "6", MetalType: "Platinum", Price: 1299, Stock: 8},
				{Size: "7", MetalType: "Platinum", Price: 1299, Stock: 10},
				{Size: "8", MetalType: "Platinum", Price: 1299, Stock: 6},
				{Size: "9", MetalType: "Platinum", Price: 1299, Stock: 4},
				{Size: "10", MetalType: "Platinum", Price: 1299, Stock: 3},
			},
			Stock:       31,
			Rating:      4.9,
			ReviewCount: 89,
			Featured:    true,
			Tags:        []string{"wedding", "platinum", "classic", "timeless"},
			SKU:         "PWB-005",
		},
		{
			Name:          "Diamond Stud Earrings",
			Description:   "Timeless diamond stud earrings in 14k white gold. Perfect for everyday elegance and special occasions.",
			Category:      "earrings",
			Collection:    "everyday",
			MetalType:     "White Gold",
			Price:         799,
			OriginalPrice: 950,
			Images: []string{
				"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&fit=crop&crop=center",
			},
			Specifications: models.Specifications{
				Weight:      "2.1g",
				Dimensions:  "5mm",
				StoneType:   "Diamond",
				StoneWeight: "0.5 carat total",
				Setting:     "Prong",
			},
			Variants: []models.Variant{
				{Size: "Standard", MetalType: "White Gold", Price: 799, Stock: 20},
			},
			Stock:       20,
			Rating:      4.8,
			ReviewCount: 234,
			Featured:    true,
			Tags:        []string{"diamond", "stud", "white gold", "classic"},
			SKU:         "DSE-006",
		},
		{
			Name:        "Ruby Anniversary Ring",
			Description: "Romantic rose gold ring set with a vivid ruby surrounded by accent diamonds. A meaningful anniversary gift.",
			Category:    "rings",
			Collection:  "anniversary",
			MetalType:   "Rose Gold",
			Price:       549,
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&fit=crop&crop=left",
			},
			Specifications: models.Specifications{
				Weight:      "3.5g",
				Dimensions:  "Size 6-8",
				StoneType:   "Ruby",
				StoneWeight: "0.6 carat",
				Setting:     "Halo",
			},
			Variants: []models.Variant{
				{Size: "6", MetalType: "Rose Gold", Price: 549, Stock: 7},
				{Size: "7", MetalType: "Rose Gold", Price: 549, Stock: 9},
				{Size: "8", MetalType: "Rose Gold", Price: 549, Stock: 5},
			},
			Stock:       21,
			Rating:      4.6,
			ReviewCount: 78,
			Tags:        []string{"ruby", "anniversary", "rose gold", "romantic"},
			SKU:         "RAR-007",
		},
		{
			Name:        "Sterling Silver Chain Necklace",
			Description: "Versatile sterling silver chain necklace with a polished finish. An everyday staple that pairs with any pendant.",
			Category:    "necklaces",
			Collection:  "everyday",
			MetalType:   "Sterling Silver",
			Price:       89,
			Images: []string{
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&fit=crop&crop=center",
			},
			Specifications: models.Specifications{
				Weight:     "5.2g",
				Dimensions: "16-18 inches",
				StoneType:  "None",
				Setting:    "Plain",
			},
			Variants: []models.Variant{
				{Size: "16", MetalType: "Sterling Silver", Price: 89, Stock: 15},
				{Size: "18", MetalType: "Sterling Silver", Price: 89, Stock: 18},
			},
			Stock:       33,
			Rating:      4.3,
			ReviewCount: 167,
			Tags:        []string{"silver", "chain", "everyday", "versatile"},
			SKU:         "SCN-008",
		},
		{
			Name:          "Sapphire Cocktail Ring",
			Description:   "Bold white gold cocktail ring crowned with a deep blue sapphire. A birthday statement piece.",
			Category:      "rings",
			Collection:    "birthday",
			MetalType:     "White Gold",
			Price:         1299,
			OriginalPrice: 1500,
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&fit=crop&crop=right",
			},
			Specifications: models.Specifications{
				Weight:      "4.8g",
				Dimensions:  "Size 6-8",
				StoneType:   "Sapphire",
				StoneWeight: "1.2 carats",
				Setting:     "Halo",
			},
			Variants: []models.Variant{
				{Size: "6", MetalType: "White Gold", Price: 1299, Stock: 4},
				{Size: "7", MetalType: "White Gold", Price: 1299, Stock: 6},
				{Size: "8", MetalType: "White Gold", Price: 1299, Stock: 3},
			},
			Stock:       13,
			Rating:      4.7,
			ReviewCount: 92,
			Featured:    true,
			Tags:        []string{"sapphire", "cocktail", "white gold", "statement"},
			SKU:         "SCR-009",
		},
		{
			Name:        "Gold Bangle Bracelet",
			Description: "Minimalist 14k gold bangle with a smooth high-polish finish. Wear alone or stacked.",
			Category:    "bracelets",
			Collection:  "everyday",
			MetalType:   "14k Gold",
			Price:       399,
			Images: []string{
				"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&fit=crop&crop=center",
			},
			Specifications: models.Specifications{
				Weight:     "7.3g",
				Dimensions: "2.5 inch diameter",
				StoneType:  "None",
				Setting:    "Plain",
			},
			Variants: []models.Variant{
				{Size: "Standard", MetalType: "14k Gold", Price: 399, Stock: 22},
			},
			Stock:       22,
			Rating:      4.5,
			ReviewCount: 134,
			Tags:        []string{"gold", "bangle", "minimalist", "stackable"},
			SKU:         "GBB-010",
		},
		{
			Name:          "Pearl and Diamond Necklace",
			Description:   "Bridal white gold necklace pairing a lustrous pearl with a diamond accent. Made for the wedding day.",
			Category:      "necklaces",
			Collection:    "wedding",
			MetalType:     "White Gold",
			Price:         899,
			OriginalPrice: 1100,
			Images: []string{
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&fit=crop&crop=top",
			},
			Specifications: models.Specifications{
				Weight:      "6.1g",
				Dimensions:  "18 inches",
				StoneType:   "Pearl & Diamond",
				StoneWeight: "9mm pearl, 0.2 carat",
				Setting:     "Bezel",
			},
			Variants: []models.Variant{
				{Size: "18", MetalType: "White Gold", Price: 899, Stock: 8},
			},
			Stock:       8,
			Rating:      4.8,
			ReviewCount: 67,
			Featured:    true,
			Tags:        []string{"pearl", "diamond", "wedding", "bridal"},
			SKU:         "PDN-011",
		},
		{
			Name:        "Rose Gold Hoop Earrings",
			Description: "Lightweight rose gold hoops with a modern twist profile. Comfortable enough for all-day wear.",
			Category:    "earrings",
			Collection:  "everyday",
			MetalType:   "Rose Gold",
			Price:       249,
			Images: []string{
				"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&fit=crop&crop=top",
			},
			Specifications: models.Specifications{
				Weight:     "3.0g",
				Dimensions: "1 inch",
				StoneType:  "None",
				Setting:    "Plain",
			},
			Variants: []models.Variant{
				{Size: "Standard", MetalType: "Rose Gold", Price: 249, Stock: 30},
			},
			Stock:       30,
			Rating:      4.4,
			ReviewCount: 189,
			Tags:        []string{"rose gold", "hoop", "modern", "everyday"},
			SKU:         "RHE-012",
		},
	}
}
