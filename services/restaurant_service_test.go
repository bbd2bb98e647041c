package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"RestaurantRoulette/discovery"
	"RestaurantRoulette/models"

	"github.com/stretchr/testify/require"
)

type stubPlaces struct {
	mu      sync.Mutex
	results []models.Restaurant
	err     error
	queries []NearbyQuery
	// before runs ahead of returning, keyed by call number starting at 1
	before map[int]func()
}

func (s *stubPlaces) Nearby(_ context.Context, q NearbyQuery) ([]models.Restaurant, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	call := len(s.queries)
	hook := s.before[call]
	results, err := s.results, s.err
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return results, err
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func stubRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "r1", Name: "Pizza Napoli", Types: []string{"restaurant"}, Rating: floatPtr(4.2), PriceLevel: intPtr(2), Location: models.LatLng{Lat: 40.7130, Lng: -74.0061}},
		{ID: "r2", Name: "McDonald's", Types: []string{"restaurant"}, Rating: floatPtr(3.1), PriceLevel: intPtr(1), Location: models.LatLng{Lat: 40.7200, Lng: -74.0100}},
		{ID: "r3", Name: "Sushi Zen", Types: []string{"japanese", "restaurant"}, Rating: floatPtr(4.8), PriceLevel: intPtr(3), Location: models.LatLng{Lat: 40.7500, Lng: -73.9800}},
	}
}

func searchRequest(lat, lng float64) models.SearchRequest {
	return models.SearchRequest{Latitude: &lat, Longitude: &lng}
}

func newTestRestaurantService(places PlacesSource) (*RestaurantService, *SessionService) {
	sessions := NewSessionService(0, seededPickers())
	return NewRestaurantService(places, sessions), sessions
}

func TestRestaurantServiceSearch(t *testing.T) {
	places := &stubPlaces{results: stubRestaurants()}
	svc, sessions := newTestRestaurantService(places)
	session := sessions.Create()

	req := searchRequest(40.7128, -74.0060)
	req.Keyword = "pizza"
	results, applied, err := svc.Search(context.Background(), session.ID, req)
	require.NoError(t, err)
	require.True(t, applied)
	require.Len(t, results, 3)

	require.Equal(t, "pizza", places.queries[0].Keyword)
	require.Equal(t, models.LatLng{Lat: 40.7128, Lng: -74.0060}, places.queries[0].Location)

	summary := session.Summary()
	require.Equal(t, 3, summary.ResultCount)
	require.NotNil(t, summary.Position)
}

func TestRestaurantServiceSearchFailureKeepsResults(t *testing.T) {
	places := &stubPlaces{results: stubRestaurants()}
	svc, sessions := newTestRestaurantService(places)
	session := sessions.Create()
	ctx := context.Background()

	_, _, err := svc.Search(ctx, session.ID, searchRequest(40.7128, -74.0060))
	require.NoError(t, err)

	places.err = &PlacesAPIError{Status: "OVER_QUERY_LIMIT"}
	_, _, err = svc.Search(ctx, session.ID, searchRequest(40.7128, -74.0060))
	var apiErr *PlacesAPIError
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, session.Results(), 3)
}

func TestRestaurantServiceStaleSearchIsDropped(t *testing.T) {
	places := &stubPlaces{results: stubRestaurants()}
	svc, sessions := newTestRestaurantService(places)
	session := sessions.Create()
	ctx := context.Background()

	// the first search only returns after a second one has completed
	places.before = map[int]func(){
		1: func() {
			places.mu.Lock()
			places.results = stubRestaurants()[:1]
			places.mu.Unlock()
			_, applied, err := svc.Search(ctx, session.ID, searchRequest(1, 1))
			require.NoError(t, err)
			require.True(t, applied)
			places.mu.Lock()
			places.results = stubRestaurants()
			places.mu.Unlock()
		},
	}

	results, applied, err := svc.Search(ctx, session.ID, searchRequest(40.7128, -74.0060))
	require.NoError(t, err)
	require.False(t, applied)
	require.Len(t, results, 3)

	require.Len(t, session.Results(), 1)
	require.Equal(t, &models.LatLng{Lat: 1, Lng: 1}, session.Position())
}

func TestRestaurantServiceList(t *testing.T) {
	places := &stubPlaces{results: stubRestaurants()}
	svc, sessions := newTestRestaurantService(places)
	session := sessions.Create()

	_, err := svc.List(session.ID, discovery.AllCriteria(), discovery.SortRelevance)
	require.ErrorIs(t, err, discovery.ErrDataUnavailable)

	_, _, err = svc.Search(context.Background(), session.ID, searchRequest(40.7128, -74.0060))
	require.NoError(t, err)

	views, err := svc.List(session.ID, discovery.NewFilterCriteria([]string{"sit-down"}, nil, nil, 0), discovery.SortRatingDesc)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "r3", views[0].ID)
	require.Equal(t, "r1", views[1].ID)
	require.Equal(t, "japanese", views[0].Cuisine)
	require.NotNil(t, views[0].DistanceKm)

	views, err = svc.List(session.ID, discovery.AllCriteria(), discovery.SortDistance)
	require.NoError(t, err)
	require.Equal(t, "r1", views[0].ID)
	require.Equal(t, "r3", views[2].ID)
}

func TestRestaurantServicePickAndShuffle(t *testing.T) {
	places := &stubPlaces{results: stubRestaurants()}
	svc, sessions := newTestRestaurantService(places)
	session := sessions.Create()

	_, err := svc.Pick(session.ID, 1, nil)
	require.ErrorIs(t, err, discovery.ErrDataUnavailable)

	_, _, err = svc.Search(context.Background(), session.ID, searchRequest(40.7128, -74.0060))
	require.NoError(t, err)

	picks, err := svc.Pick(session.ID, 2, nil)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	require.NotEqual(t, picks[0].ID, picks[1].ID)

	shuffled, err := svc.Shuffle(session.ID, 0)
	require.NoError(t, err)
	require.Len(t, shuffled, 2)
	require.Equal(t, picks[1].ID, shuffled[1].ID)
	require.NotEqual(t, picks[0].ID, shuffled[0].ID)
	require.NotEqual(t, shuffled[0].ID, shuffled[1].ID)

	current, err := svc.Picks(session.ID)
	require.NoError(t, err)
	require.Equal(t, shuffled, current)

	_, err = svc.Shuffle(session.ID, 5)
	require.ErrorIs(t, err, discovery.ErrSlotOutOfRange)
}

func TestRestaurantServicePickWithCriteria(t *testing.T) {
	places := &stubPlaces{results: stubRestaurants()}
	svc, sessions := newTestRestaurantService(places)
	session := sessions.Create()

	_, _, err := svc.Search(context.Background(), session.ID, searchRequest(40.7128, -74.0060))
	require.NoError(t, err)

	fastFood := discovery.NewFilterCriteria([]string{"fast-food"}, nil, nil, 0)
	picks, err := svc.Pick(session.ID, 1, &fastFood)
	require.NoError(t, err)
	require.Equal(t, "r2", picks[0].ID)

	_, err = svc.Shuffle(session.ID, 0)
	require.ErrorIs(t, err, discovery.ErrInsufficientCandidates)
}

func TestRestaurantServiceUnknownSession(t *testing.T) {
	svc, _ := newTestRestaurantService(&stubPlaces{})

	_, _, err := svc.Search(context.Background(), "missing", searchRequest(0, 0))
	requireNotFound(t, err)
	requireNotFound(t, svc.UpdatePosition("missing", models.LatLng{}))
	_, err = svc.List("missing", discovery.AllCriteria(), discovery.SortRelevance)
	requireNotFound(t, err)
	_, err = svc.Pick("missing", 1, nil)
	requireNotFound(t, err)
	_, err = svc.Shuffle("missing", 0)
	requireNotFound(t, err)
	_, err = svc.Picks("missing")
	requireNotFound(t, err)
	require.False(t, errors.Is(err, discovery.ErrDataUnavailable))
}
