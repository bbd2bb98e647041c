package services

import (
	"context"
	"testing"
	"time"

	"RestaurantRoulette/models"

	"github.com/stretchr/testify/require"
)

func TestNearbyCacheKey(t *testing.T) {
	base := NearbyQuery{Location: models.LatLng{Lat: 40.7128, Lng: -74.0060}, Radius: 1500, Type: "restaurant"}

	// a few meters away falls in the same cell
	moved := base
	moved.Location = models.LatLng{Lat: 40.71281, Lng: -74.00601}
	require.Equal(t, NearbyCacheKey(base), NearbyCacheKey(moved))

	far := base
	far.Location = models.LatLng{Lat: 40.7580, Lng: -73.9855}
	require.NotEqual(t, NearbyCacheKey(base), NearbyCacheKey(far))

	keyword := base
	keyword.Keyword = " Sushi "
	require.Contains(t, NearbyCacheKey(keyword), ":restaurant:sushi")
	require.Regexp(t, `^places:nearby:[0-9a-z]{7}:1500:restaurant:$`, NearbyCacheKey(base))
}

func TestMemoryPlacesCacheExpiry(t *testing.T) {
	cache := NewMemoryPlacesCache().(*memoryPlacesCache)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	body := []byte(`{"status":"OK"}`)
	require.NoError(t, cache.Set(ctx, "k", body, time.Minute))
	body[0] = 'X'

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"status":"OK"}`, string(got))

	now = now.Add(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, cache.entries)
}
