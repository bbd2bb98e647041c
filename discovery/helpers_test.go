package discovery

import (
	"math/rand/v2"

	"RestaurantRoulette/models"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func seededPicker(seed uint64) *Picker {
	return NewPicker(rand.NewPCG(seed, seed+1))
}

func ids(results []models.Restaurant) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "a", Name: "Luigi's Trattoria", Types: []string{"italian", "restaurant"}, Vicinity: "12 Main St", Rating: floatPtr(4.6), PriceLevel: intPtr(2), Location: models.LatLng{Lat: 40.7130, Lng: -74.0070}},
		{ID: "b", Name: "Burger King", Types: []string{"restaurant"}, Vicinity: "3 Broadway", Rating: floatPtr(3.4), PriceLevel: intPtr(1), Location: models.LatLng{Lat: 40.7200, Lng: -74.0000}},
		{ID: "c", Name: "Golden Dragon", Types: []string{"restaurant", "meal_takeaway"}, Vicinity: "88 Mott St, Chinatown", Location: models.LatLng{Lat: 40.7160, Lng: -73.9970}},
		{ID: "d", Name: "Taqueria Mexican Grill", Types: []string{"restaurant"}, Vicinity: "Canal St", Rating: floatPtr(4.1), Location: models.LatLng{Lat: 40.7190, Lng: -74.0020}},
		{ID: "e", Name: "Le Bistro", Types: []string{"french", "restaurant"}, Vicinity: "Bleecker St", Rating: floatPtr(4.9), PriceLevel: intPtr(4), Location: models.LatLng{Lat: 40.7300, Lng: -74.0010}},
		{ID: "f", Name: "Corner Diner", Types: []string{"restaurant"}, Vicinity: "5th Ave", Rating: floatPtr(2.8), PriceLevel: intPtr(1), Location: models.LatLng{Lat: 40.7400, Lng: -73.9900}},
	}
}
