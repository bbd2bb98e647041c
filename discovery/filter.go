package discovery

import (
	"strconv"
	"strings"

	"RestaurantRoulette/models"
)

// FilterAll selects every value of a filter group.
const FilterAll = "all"

const (
	CategoryFastFood = "fast-food"
	CategorySitDown  = "sit-down"
)

// FilterCriteria is the multi-criteria predicate applied by ApplyFilters.
// Every group is expected to hold either FilterAll or specific values; a group that
// holds both, or nothing at all, behaves as FilterAll.
type FilterCriteria struct {
	Categories []string `json:"categories"`
	Cuisines   []string `json:"cuisines"`
	Prices     []string `json:"prices"`
	MinRating  float64  `json:"min_rating"`
}

// AllCriteria returns criteria that keep every restaurant.
func AllCriteria() FilterCriteria {
	return FilterCriteria{
		Categories: []string{FilterAll},
		Cuisines:   []string{FilterAll},
		Prices:     []string{FilterAll},
	}
}

// NewFilterCriteria normalizes raw filter groups: values are trimmed and lower-cased,
// blanks dropped, and an empty group becomes FilterAll.
func NewFilterCriteria(categories, cuisines, prices []string, minRating float64) FilterCriteria {
	return FilterCriteria{
		Categories: normalizeGroup(categories),
		Cuisines:   normalizeGroup(cuisines),
		Prices:     normalizeGroup(prices),
		MinRating:  minRating,
	}
}

// SplitGroup parses a comma separated query value ("fast-food,sit-down") into a group.
func SplitGroup(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func normalizeGroup(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return []string{FilterAll}
	}
	return out
}

// ApplyFilters returns the restaurants matching every criterion, in input order.
// The input slice is never modified.
func ApplyFilters(results []models.Restaurant, criteria FilterCriteria) []models.Restaurant {
	filtered := make([]models.Restaurant, 0, len(results))
	for _, r := range results {
		if criteria.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Matches reports whether a single restaurant passes all four predicates.
func (c FilterCriteria) Matches(r models.Restaurant) bool {
	return c.categoryMatch(r) && c.cuisineMatch(r) && c.priceMatch(r) && c.ratingMatch(r)
}

func (c FilterCriteria) categoryMatch(r models.Restaurant) bool {
	if selectsAll(c.Categories) {
		return true
	}
	if IsFastFood(r) {
		return contains(c.Categories, CategoryFastFood)
	}
	return contains(c.Categories, CategorySitDown)
}

func (c FilterCriteria) cuisineMatch(r models.Restaurant) bool {
	if selectsAll(c.Cuisines) {
		return true
	}

	cuisine := ClassifyCuisine(r)
	name := strings.ToLower(r.Name)
	vicinity := strings.ToLower(r.Vicinity)
	for _, want := range c.Cuisines {
		want = strings.ToLower(want)
		if cuisine == want || strings.Contains(name, want) || strings.Contains(vicinity, want) {
			return true
		}
	}
	return false
}

// priceMatch treats an unknown price level as the cheapest bracket: it only
// matches when "1" is among the selected prices.
func (c FilterCriteria) priceMatch(r models.Restaurant) bool {
	if selectsAll(c.Prices) {
		return true
	}
	if r.PriceLevel == nil {
		return contains(c.Prices, "1")
	}
	return contains(c.Prices, strconv.Itoa(*r.PriceLevel))
}

func (c FilterCriteria) ratingMatch(r models.Restaurant) bool {
	return r.Rating == nil || *r.Rating >= c.MinRating
}

func selectsAll(group []string) bool {
	return len(group) == 0 || contains(group, FilterAll)
}

func contains(group []string, value string) bool {
	for _, v := range group {
		if v == value {
			return true
		}
	}
	return false
}
