package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"RestaurantRoulette/models"

	"github.com/rs/zerolog/log"
)

const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"

	defaultPlaceType = "restaurant"
	detailsFields    = "name,formatted_address,rating,price_level,photos,types,opening_hours,website"
)

// probeLocation is the fixed point used by the API key diagnostic.
var probeLocation = models.LatLng{Lat: 40.7128, Lng: -74.0060}

// PlacesAPIError is a non-OK status reported by the Places API.
type PlacesAPIError struct {
	Status  string
	Message string
}

func (e *PlacesAPIError) Error() string {
	if e.Message == "" {
		return "places api error: " + e.Status
	}
	return fmt.Sprintf("places api error: %s - %s", e.Status, e.Message)
}

// NearbyQuery describes a nearby search around Location.
type NearbyQuery struct {
	Location models.LatLng
	Radius   int
	Type     string
	Keyword  string
}

// PlacesSource is the part of PlacesService the discovery flow depends on.
type PlacesSource interface {
	Nearby(ctx context.Context, q NearbyQuery) ([]models.Restaurant, error)
}

type PlacesConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	DefaultRadius int
	KeywordRadius int
	Cache         PlacesCache
	CacheTTL      time.Duration
}

// PlacesService talks to the Google Places web service.
type PlacesService struct {
	apiKey        string
	baseURL       string
	httpClient    *http.Client
	defaultRadius int
	keywordRadius int
	cache         PlacesCache
	cacheTTL      time.Duration
}

// NewPlacesService creates a Places client. A nil cache disables caching.
func NewPlacesService(config PlacesConfig) *PlacesService {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PlacesService{
		apiKey:        config.APIKey,
		baseURL:       strings.TrimSuffix(config.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		defaultRadius: config.DefaultRadius,
		keywordRadius: config.KeywordRadius,
		cache:         config.Cache,
		cacheTTL:      config.CacheTTL,
	}
}

// Normalize fills in the default radius and place type. Keyword searches use the wider radius.
func (s *PlacesService) Normalize(q NearbyQuery) NearbyQuery {
	q.Keyword = strings.TrimSpace(q.Keyword)
	if q.Radius <= 0 {
		q.Radius = s.defaultRadius
		if q.Keyword != "" {
			q.Radius = s.keywordRadius
		}
	}
	if q.Type == "" {
		q.Type = defaultPlaceType
	}
	return q
}

// NearbyRaw returns the unmodified nearby search response body.
// Successful responses are served from and stored in the cache when one is configured.
func (s *PlacesService) NearbyRaw(ctx context.Context, q NearbyQuery) ([]byte, error) {
	q = s.Normalize(q)
	key := NearbyCacheKey(q)

	if s.cache != nil {
		body, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			placesCacheTotal.WithLabelValues("error").Inc()
			log.Warn().Err(err).Str("key", key).Msg("places cache lookup failed")
		case ok:
			placesCacheTotal.WithLabelValues("hit").Inc()
			return body, nil
		default:
			placesCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	params := url.Values{}
	params.Set("location", q.Location.String())
	params.Set("radius", strconv.Itoa(q.Radius))
	params.Set("type", q.Type)
	params.Set("keyword", q.Keyword)

	body, err := s.get(ctx, "nearbysearch", params)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && cacheable(body) {
		if err := s.cache.Set(ctx, key, body, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("places cache store failed")
		}
	}
	return body, nil
}

// Nearby runs a nearby search and normalizes the results into restaurants.
// ZERO_RESULTS yields an empty slice; any other non-OK status is a *PlacesAPIError.
func (s *PlacesService) Nearby(ctx context.Context, q NearbyQuery) ([]models.Restaurant, error) {
	body, err := s.NearbyRaw(ctx, q)
	if err != nil {
		return nil, err
	}

	var resp models.NearbySearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error parsing nearby search response: %w", err)
	}

	switch resp.Status {
	case StatusOK:
	case StatusZeroResults:
		return []models.Restaurant{}, nil
	default:
		log.Error().Str("status", resp.Status).Str("error_message", resp.ErrorMessage).Msg("Places nearby search failed")
		return nil, &PlacesAPIError{Status: resp.Status, Message: resp.ErrorMessage}
	}

	restaurants := make([]models.Restaurant, 0, len(resp.Results))
	seen := make(map[string]struct{}, len(resp.Results))
	for _, place := range resp.Results {
		if place.PlaceID == "" {
			continue
		}
		// picks rely on unique ids
		if _, dup := seen[place.PlaceID]; dup {
			continue
		}
		seen[place.PlaceID] = struct{}{}
		restaurants = append(restaurants, place.ToRestaurant())
	}
	return restaurants, nil
}

// DetailsRaw returns the unmodified place details response body.
func (s *PlacesService) DetailsRaw(ctx context.Context, placeID string) ([]byte, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	return s.get(ctx, "details", params)
}

// Details fetches and decodes the details of a single place.
func (s *PlacesService) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	body, err := s.DetailsRaw(ctx, placeID)
	if err != nil {
		return nil, err
	}

	var resp models.PlaceDetailsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error parsing place details response: %w", err)
	}
	if resp.Status != StatusOK {
		return nil, &PlacesAPIError{Status: resp.Status, Message: resp.ErrorMessage}
	}
	return &resp.Result, nil
}

// Probe checks that the configured API key can run a nearby search.
func (s *PlacesService) Probe(ctx context.Context) (*models.ProbeResult, error) {
	params := url.Values{}
	params.Set("location", probeLocation.String())
	params.Set("radius", "500")
	params.Set("type", defaultPlaceType)

	body, err := s.get(ctx, "nearbysearch", params)
	if err != nil {
		return nil, err
	}

	var resp models.NearbySearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error parsing probe response: %w", err)
	}

	keyLast4 := "None"
	if s.apiKey != "" {
		keyLast4 = s.apiKey[max(0, len(s.apiKey)-4):]
	}

	return &models.ProbeResult{
		Status:       resp.Status,
		ErrorMessage: resp.ErrorMessage,
		ResultsCount: len(resp.Results),
		KeyLast4:     keyLast4,
		TestedAt:     time.Now().Format(time.RFC3339),
	}, nil
}

func (s *PlacesService) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("key", s.apiKey)
	reqURL := fmt.Sprintf("%s/%s/json?%s", s.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	log.Debug().Str("endpoint", endpoint).Str("location", params.Get("location")).Str("keyword", params.Get("keyword")).Msg("Calling Places API")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		placesRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		placesRequestsTotal.WithLabelValues(endpoint, "read_error").Inc()
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	placesRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// cacheable accepts only responses that describe a real answer, never upstream errors.
func cacheable(body []byte) bool {
	var envelope struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	return envelope.Status == StatusOK || envelope.Status == StatusZeroResults
}
