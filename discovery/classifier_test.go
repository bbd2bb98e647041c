package discovery

import (
	"testing"

	"RestaurantRoulette/models"
	"github.com/stretchr/testify/require"
)

func TestClassifyCuisine(t *testing.T) {
	testCases := []struct {
		name       string
		restaurant models.Restaurant
		want       string
	}{
		{
			name:       "TypeMatch",
			restaurant: models.Restaurant{Name: "Somewhere", Types: []string{"restaurant", "thai"}},
			want:       "thai",
		},
		{
			name:       "TypePriorityOverName",
			restaurant: models.Restaurant{Name: "Mexican Corner", Types: []string{"korean", "italian"}},
			want:       "italian",
		},
		{
			name:       "NameMatchCaseInsensitive",
			restaurant: models.Restaurant{Name: "Best JAPANESE Ramen", Types: []string{"restaurant"}},
			want:       "japanese",
		},
		{
			name:       "NameMatchUsesPriorityOrder",
			restaurant: models.Restaurant{Name: "Greek and Italian Kitchen", Types: []string{"restaurant"}},
			want:       "italian",
		},
		{
			name:       "UnderscoreBecomesSpace",
			restaurant: models.Restaurant{Name: "Middle Eastern Delights", Types: []string{"restaurant"}},
			want:       "middle_eastern",
		},
		{
			name:       "Generic",
			restaurant: models.Restaurant{Name: "Burger King", Types: []string{"restaurant"}},
			want:       GenericCuisine,
		},
		{
			name:       "NoTypes",
			restaurant: models.Restaurant{Name: ""},
			want:       GenericCuisine,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyCuisine(tc.restaurant))
		})
	}
}

func TestIsFastFood(t *testing.T) {
	testCases := []struct {
		name       string
		restaurant models.Restaurant
		want       bool
	}{
		{name: "TakeawayType", restaurant: models.Restaurant{Name: "Noodle Box", Types: []string{"meal_takeaway"}}, want: true},
		{name: "FastFoodType", restaurant: models.Restaurant{Name: "Quick Bite", Types: []string{"fast_food"}}, want: true},
		{name: "ChainName", restaurant: models.Restaurant{Name: "Burger King", Types: []string{"restaurant"}}, want: true},
		{name: "ChainNameCaseInsensitive", restaurant: models.Restaurant{Name: "STARBUCKS Reserve", Types: []string{"cafe"}}, want: true},
		{name: "ChainSubstring", restaurant: models.Restaurant{Name: "McDonald's", Types: []string{"restaurant"}}, want: true},
		{name: "SitDown", restaurant: models.Restaurant{Name: "Le Bistro", Types: []string{"french", "restaurant"}}, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsFastFood(tc.restaurant))
		})
	}
}

func TestClassifierIsPure(t *testing.T) {
	for _, r := range sampleRestaurants() {
		before := r.Types[0]
		first := ClassifyCuisine(r)
		firstFast := IsFastFood(r)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, ClassifyCuisine(r))
			require.Equal(t, firstFast, IsFastFood(r))
		}
		require.Equal(t, before, r.Types[0])
	}
}

func TestKnownCuisinesIsACopy(t *testing.T) {
	list := KnownCuisines()
	require.Len(t, list, 14)
	list[0] = "changed"
	require.Equal(t, "italian", KnownCuisines()[0])
}
