package discovery

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"RestaurantRoulette/models"
)

// DisplayPrice renders a price level as dollar signs ("$" for level 0, "$$" for 1, ...).
func DisplayPrice(level *int) string {
	if level == nil {
		return "Price N/A"
	}
	return strings.Repeat("$", *level+1)
}

// FormatType turns a place type such as "meal_takeaway" into "Meal Takeaway".
func FormatType(t string) string {
	words := strings.Fields(strings.ReplaceAll(t, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// SearchURL links to a web search for the restaurant name and vicinity.
func SearchURL(r models.Restaurant) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(strings.TrimSpace(r.Name+" "+r.Vicinity))
}

// PriceDistribution counts restaurants per price level; unknown levels are counted as "undefined".
func PriceDistribution(results []models.Restaurant) map[string]int {
	dist := make(map[string]int)
	for _, r := range results {
		key := "undefined"
		if r.PriceLevel != nil {
			key = strconv.Itoa(*r.PriceLevel)
		}
		dist[key]++
	}
	return dist
}

// NewView derives the client-facing view of a restaurant. distance is computed when origin is known.
func NewView(r models.Restaurant, origin *models.LatLng) models.RestaurantView {
	view := models.RestaurantView{
		Restaurant:   r,
		Cuisine:      ClassifyCuisine(r),
		FastFood:     IsFastFood(r),
		DisplayPrice: DisplayPrice(r.PriceLevel),
		SearchURL:    SearchURL(r),
		TypeLabels:   make([]string, 0, len(r.Types)),
	}
	for _, t := range r.Types {
		view.TypeLabels = append(view.TypeLabels, FormatType(t))
	}
	if origin != nil {
		d := DistanceKm(*origin, r.Location)
		view.DistanceKm = &d
	}
	return view
}

// NewViews maps NewView over results.
func NewViews(results []models.Restaurant, origin *models.LatLng) []models.RestaurantView {
	views := make([]models.RestaurantView, 0, len(results))
	for _, r := range results {
		views = append(views, NewView(r, origin))
	}
	return views
}
