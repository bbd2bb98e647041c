package models

import "fmt"

// LatLng is a coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the coordinate the way the Places API expects it ("lat,lng").
func (l LatLng) String() string {
	return fmt.Sprintf("%f,%f", l.Lat, l.Lng)
}

// Restaurant is a read-only record of a nearby place.
// Rating and PriceLevel are nil when the data source did not report them.
type Restaurant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Vicinity   string   `json:"vicinity"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	Location   LatLng   `json:"location"`
}

// RestaurantView is a Restaurant enriched with derived facts for the client.
type RestaurantView struct {
	Restaurant
	Cuisine      string   `json:"cuisine"`
	FastFood     bool     `json:"fast_food"`
	DisplayPrice string   `json:"display_price"`
	TypeLabels   []string `json:"type_labels"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
	SearchURL    string   `json:"search_url"`
}
