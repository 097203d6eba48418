// Package recommend holds the product recommendation engine: an additive
// similarity scorer, a multi-facet blend, and preference-based matching for
// the assistant. Everything here is a pure transformation over products the
// caller has already fetched; recommendations are a best-effort enhancement,
// so faults degrade to empty results instead of surfacing as errors.
package recommend

import (
	"math"
	"sort"

	"rjgems-backend/internal/models"
)

// MaxRecommendations caps the ranked output of both strategies.
const MaxRecommendations = 6

// Score rates a candidate against the anchor product. Same metal pairs well
// visually and carries the heaviest weight; a different category makes the
// piece complementary rather than redundant; price proximity keeps the
// suggestion inside the shopper's apparent budget, with a graduated falloff.
// Featured flag, rating and review volume act as quality tie-breakers.
func Score(anchor, candidate *models.Product) float64 {
	score := 0.0

	if candidate.MetalType == anchor.MetalType {
		score += 50
	}
	if candidate.Category != anchor.Category {
		score += 30
	}

	priceDiff := math.Abs(candidate.Price - anchor.Price)
	switch {
	case priceDiff <= 300:
		score += 20
	case priceDiff <= 600:
		score += 10
	}

	if candidate.Featured {
		score += 15
	}

	score += candidate.Rating * 2
	score += math.Min(float64(candidate.ReviewCount)/10, 10)

	return score
}

// RankByProduct scores every candidate against the anchor and returns the
// top MaxRecommendations, highest score first. The sort is stable, so ties
// keep the pool's iteration order. The anchor itself is never returned even
// if the caller left it in the pool.
func RankByProduct(anchor *models.Product, pool []models.Product) []models.Product {
	ranked := []models.Product{}
	if anchor == nil || len(pool) == 0 {
		return ranked
	}

	type scored struct {
		product models.Product
		score   float64
	}

	candidates := make([]scored, 0, len(pool))
	for i := range pool {
		if pool[i].ID == anchor.ID {
			continue
		}
		candidates = append(candidates, scored{product: pool[i], score: Score(anchor, &pool[i])})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for _, c := range candidates {
		ranked = append(ranked, c.product)
		if len(ranked) == MaxRecommendations {
			break
		}
	}
	return ranked
}
