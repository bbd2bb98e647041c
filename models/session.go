package models

import "time"

// SessionSummary describes a discovery session without its result set.
type SessionSummary struct {
	ID          string    `json:"id"`
	Position    *LatLng   `json:"position,omitempty"`
	ResultCount int       `json:"result_count"`
	PickCount   int       `json:"pick_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SearchRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
	Radius    int      `json:"radius" binding:"omitempty,min=1,max=50000"`
	Keyword   string   `json:"keyword" binding:"omitempty,max=200"`
	Type      string   `json:"type" binding:"omitempty,max=64"`
}

// Position returns the coordinate carried by the request.
func (r SearchRequest) Position() LatLng {
	return LatLng{Lat: *r.Latitude, Lng: *r.Longitude}
}

type PositionRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// FilterRequest carries filter groups as plain lists, e.g. {"categories": ["fast-food"]}.
type FilterRequest struct {
	Categories []string `json:"categories"`
	Cuisines   []string `json:"cuisines"`
	Prices     []string `json:"prices"`
	MinRating  float64  `json:"min_rating" binding:"min=0,max=5"`
}

type PickRequest struct {
	Count   int            `json:"count" binding:"required,min=1,max=20"`
	Filters *FilterRequest `json:"filters"`
}

type PickResponse struct {
	Picks []RestaurantView `json:"picks"`
}

type ListResponse struct {
	Total       int              `json:"total"`
	Sort        string           `json:"sort"`
	Restaurants []RestaurantView `json:"restaurants"`
	Notice      string           `json:"notice,omitempty"`
}

type ProbeResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResultsCount int    `json:"results_count"`
	KeyLast4     string `json:"key_last_4"`
	TestedAt     string `json:"test_timestamp"`
}

// Position returns the coordinate carried by the request.
func (r PositionRequest) Position() LatLng {
	return LatLng{Lat: *r.Latitude, Lng: *r.Longitude}
}
