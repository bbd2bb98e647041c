package models

// Place mirrors a single entry of the Google Places "results" array.
type Place struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Types            []string      `json:"types"`
	Vicinity         string        `json:"vicinity"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal int           `json:"user_ratings_total,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	BusinessStatus   string        `json:"business_status,omitempty"`
	Geometry         PlaceGeometry `json:"geometry"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
}

type PlaceGeometry struct {
	Location LatLng `json:"location"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

// NearbySearchResponse is the envelope returned by the nearby search endpoint.
type NearbySearchResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Results      []Place `json:"results"`
}

// PlaceDetails holds the fields requested from the details endpoint.
type PlaceDetails struct {
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Rating           *float64      `json:"rating,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	Types            []string      `json:"types"`
	Website          string        `json:"website,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
}

type PlaceDetailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Result       PlaceDetails `json:"result"`
}

// ToRestaurant normalizes a Places result into the record the discovery engine works on.
func (p Place) ToRestaurant() Restaurant {
	types := make([]string, len(p.Types))
	copy(types, p.Types)

	return Restaurant{
		ID:         p.PlaceID,
		Name:       p.Name,
		Types:      types,
		Vicinity:   p.Vicinity,
		Rating:     p.Rating,
		PriceLevel: p.PriceLevel,
		Location:   p.Geometry.Location,
	}
}
