package discovery

import (
	"sort"

	"RestaurantRoulette/models"
)

// SortKey selects the ordering applied by SortRestaurants.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortRatingDesc SortKey = "rating-desc"
	SortRatingAsc  SortKey = "rating-asc"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortDistance   SortKey = "distance"
)

// ParseSortKey maps a raw value onto a known key. Unknown and empty values fall back to relevance.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(raw); key {
	case SortRatingDesc, SortRatingAsc, SortPriceAsc, SortPriceDesc, SortDistance:
		return key
	default:
		return SortRelevance
	}
}

// SortRestaurants returns a stably sorted copy of results.
// A distance sort without a reference position returns the input order and ErrMissingReferencePosition.
func SortRestaurants(results []models.Restaurant, key SortKey, position *models.LatLng) ([]models.Restaurant, error) {
	sorted := make([]models.Restaurant, len(results))
	copy(sorted, results)

	switch key {
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratingOrZero(sorted[i]) > ratingOrZero(sorted[j])
		})
	case SortRatingAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratingOrZero(sorted[i]) < ratingOrZero(sorted[j])
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceOrZero(sorted[i]) < priceOrZero(sorted[j])
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceOrZero(sorted[i]) > priceOrZero(sorted[j])
		})
	case SortDistance:
		if position == nil {
			return sorted, ErrMissingReferencePosition
		}
		origin := *position
		sort.SliceStable(sorted, func(i, j int) bool {
			return DistanceKm(origin, sorted[i].Location) < DistanceKm(origin, sorted[j].Location)
		})
	}

	return sorted, nil
}

func ratingOrZero(r models.Restaurant) float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

func priceOrZero(r models.Restaurant) int {
	if r.PriceLevel == nil {
		return 0
	}
	return *r.PriceLevel
}
