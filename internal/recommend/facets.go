package recommend

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rjgems-backend/internal/models"
)

// Per-facet caps for the blend. The caps bound each facet's contribution so
// the blended list stays within MaxRecommendations before truncation.
const (
	facetCategoryCap   = 3
	facetCollectionCap = 2
	facetPriceCap      = 2
	facetMetalCap      = 2

	// Price facet window: ±20% of the anchor price.
	facetPriceWindow = 0.20
)

// BlendFacets concatenates the facet result sets in their given order,
// deduplicates by product id keeping the first occurrence, and truncates to
// MaxRecommendations. Earlier facets win ties, which makes the blend
// deterministic for identical inputs.
func BlendFacets(anchorID primitive.ObjectID, facets ...[]models.Product) []models.Product {
	blended := []models.Product{}
	seen := map[primitive.ObjectID]bool{anchorID: true}

	for _, facet := range facets {
		for _, p := range facet {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			blended = append(blended, p)
			if len(blended) == MaxRecommendations {
				return blended
			}
		}
	}
	return blended
}
