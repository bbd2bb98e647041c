package discovery

import (
	"math"

	"RestaurantRoulette/models"
)

const earthRadiusKm = 6371.0 // Radius of Earth in km

// DistanceKm returns the great-circle distance between two points using the Haversine formula.
func DistanceKm(p1, p2 models.LatLng) float64 {
	dLat := toRadians(p2.Lat - p1.Lat)
	dLng := toRadians(p2.Lng - p1.Lng)

	lat1 := toRadians(p1.Lat)
	lat2 := toRadians(p2.Lat)

	// cos(lat1)*cos(lat2) is grouped first so that swapping the points gives the same bits
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
