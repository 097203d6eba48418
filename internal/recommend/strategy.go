package recommend

import (
	"context"

	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/models"
)

// FacetQuery is one constrained catalog lookup used by the facet strategy.
// Zero values impose no constraint; MaxPrice applies only when positive.
type FacetQuery struct {
	ExcludeID     string
	Category      string
	NotCategory   string
	Collection    string
	NotCollection string
	MetalType     string
	MinPrice      float64
	MaxPrice      float64
	Limit         int64
}

// Catalog is the slice of the product store the engine consumes.
type Catalog interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAllExcept(ctx context.Context, id string) ([]models.Product, error)
	FindFacet(ctx context.Context, q FacetQuery) ([]models.Product, error)
}

// Strategy produces related products for an anchor. The two implementations
// order their output differently, so the deployed strategy is picked once by
// configuration rather than merged.
type Strategy interface {
	Recommend(ctx context.Context, anchorID string) ([]models.Product, error)
}

// NewStrategy selects a strategy by name: "facets" for the diversified
// facet blend, anything else for the default weighted scorer.
func NewStrategy(name string, catalog Catalog, log *logger.Logger) Strategy {
	if name == "facets" {
		return &facetStrategy{catalog: catalog, log: log}
	}
	return &scoredStrategy{catalog: catalog, log: log}
}

// scoredStrategy ranks the whole pool with the additive similarity score.
type scoredStrategy struct {
	catalog Catalog
	log     *logger.Logger
}

func (s *scoredStrategy) Recommend(ctx context.Context, anchorID string) ([]models.Product, error) {
	anchor, err := s.catalog.FindByID(ctx, anchorID)
	if err != nil {
		// Anchor lookup failures are the caller's to surface (404 vs 500);
		// only faults past this point degrade to an empty result.
		return nil, err
	}

	pool, err := s.catalog.FindAllExcept(ctx, anchorID)
	if err != nil {
		s.log.Warn("recommendation pool query failed", "productId", anchorID, "error", err)
		return []models.Product{}, nil
	}

	return RankByProduct(anchor, pool), nil
}

// facetStrategy blends four capped facet queries: same category with a
// different collection, same collection with a different category, similar
// price, and same metal.
type facetStrategy struct {
	catalog Catalog
	log     *logger.Logger
}

func (s *facetStrategy) Recommend(ctx context.Context, anchorID string) ([]models.Product, error) {
	anchor, err := s.catalog.FindByID(ctx, anchorID)
	if err != nil {
		return nil, err
	}

	queries := []FacetQuery{
		{
			ExcludeID:     anchorID,
			Category:      anchor.Category,
			NotCollection: anchor.Collection,
			Limit:         facetCategoryCap,
		},
		{
			ExcludeID:   anchorID,
			Collection:  anchor.Collection,
			NotCategory: anchor.Category,
			Limit:       facetCollectionCap,
		},
		{
			ExcludeID: anchorID,
			MinPrice:  anchor.Price * (1 - facetPriceWindow),
			MaxPrice:  anchor.Price * (1 + facetPriceWindow),
			Limit:     facetPriceCap,
		},
		{
			ExcludeID: anchorID,
			MetalType: anchor.MetalType,
			Limit:     facetMetalCap,
		},
	}

	facets := make([][]models.Product, 0, len(queries))
	for _, q := range queries {
		products, err := s.catalog.FindFacet(ctx, q)
		if err != nil {
			s.log.Warn("facet query failed", "productId", anchorID, "error", err)
			return []models.Product{}, nil
		}
		facets = append(facets, products)
	}

	return BlendFacets(anchor.ID, facets...), nil
}
