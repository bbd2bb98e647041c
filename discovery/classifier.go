package discovery

import (
	"strings"

	"RestaurantRoulette/models"
)

// GenericCuisine is returned when no known cuisine can be derived.
const GenericCuisine = "restaurant"

// knownCuisines is ordered by priority: the first match wins.
var knownCuisines = []string{
	"italian", "mexican", "chinese", "japanese", "thai",
	"indian", "american", "french", "greek", "spanish",
	"korean", "vietnamese", "mediterranean", "middle_eastern",
}

var fastFoodTypes = []string{"meal_takeaway", "fast_food"}

var fastFoodChains = []string{
	"mcdonald", "burger king", "wendy", "kfc", "taco bell",
	"subway", "domino", "pizza hut", "chipotle", "popeyes",
	"chick-fil-a", "sonic", "dairy queen", "five guys",
	"papa john", "dunkin", "starbucks", "panera", "arby",
}

// KnownCuisines returns a copy of the cuisine identifiers in priority order.
func KnownCuisines() []string {
	out := make([]string, len(knownCuisines))
	copy(out, knownCuisines)
	return out
}

// ClassifyCuisine derives a single best-guess cuisine tag from the place types,
// falling back to the name and finally to GenericCuisine.
func ClassifyCuisine(r models.Restaurant) string {
	for _, cuisine := range knownCuisines {
		if hasType(r, cuisine) {
			return cuisine
		}
	}

	name := strings.ToLower(r.Name)
	for _, cuisine := range knownCuisines {
		if strings.Contains(name, strings.ReplaceAll(cuisine, "_", " ")) {
			return cuisine
		}
	}

	return GenericCuisine
}

// IsFastFood reports whether the restaurant is quick-service, either by type or by a known chain name.
func IsFastFood(r models.Restaurant) bool {
	for _, t := range fastFoodTypes {
		if hasType(r, t) {
			return true
		}
	}

	name := strings.ToLower(r.Name)
	for _, chain := range fastFoodChains {
		if strings.Contains(name, chain) {
			return true
		}
	}
	return false
}

func hasType(r models.Restaurant, want string) bool {
	for _, t := range r.Types {
		if t == want {
			return true
		}
	}
	return false
}
