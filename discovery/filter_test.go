package discovery

import (
	"testing"

	"RestaurantRoulette/models"
	"github.com/stretchr/testify/require"
)

func TestApplyFiltersAllIsIdentity(t *testing.T) {
	results := sampleRestaurants()
	filtered := ApplyFilters(results, AllCriteria())
	require.Equal(t, results, filtered)
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	results := sampleRestaurants()
	snapshot := sampleRestaurants()

	_ = ApplyFilters(results, NewFilterCriteria([]string{"sit-down"}, []string{"italian"}, []string{"2"}, 4))
	require.Equal(t, snapshot, results)
}

func TestApplyFiltersPriceProxy(t *testing.T) {
	results := []models.Restaurant{
		{ID: "1", PriceLevel: intPtr(2)},
		{ID: "2"},
		{ID: "3", PriceLevel: intPtr(1)},
	}

	filtered := ApplyFilters(results, NewFilterCriteria(nil, nil, []string{"1"}, 0))
	require.Equal(t, []string{"2", "3"}, ids(filtered))

	filtered = ApplyFilters(results, NewFilterCriteria(nil, nil, []string{"2"}, 0))
	require.Equal(t, []string{"1"}, ids(filtered))

	filtered = ApplyFilters(results, NewFilterCriteria(nil, nil, []string{"0"}, 0))
	require.Empty(t, filtered)
}

func TestApplyFiltersPriceZeroIsNotAbsent(t *testing.T) {
	results := []models.Restaurant{{ID: "free", PriceLevel: intPtr(0)}}

	require.Empty(t, ApplyFilters(results, NewFilterCriteria(nil, nil, []string{"1"}, 0)))
	require.Len(t, ApplyFilters(results, NewFilterCriteria(nil, nil, []string{"0"}, 0)), 1)
}

func TestApplyFilters(t *testing.T) {
	testCases := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{
			name:     "FastFood",
			criteria: NewFilterCriteria([]string{"fast-food"}, nil, nil, 0),
			want:     []string{"b", "c"},
		},
		{
			name:     "SitDown",
			criteria: NewFilterCriteria([]string{"sit-down"}, nil, nil, 0),
			want:     []string{"a", "d", "e", "f"},
		},
		{
			name:     "BothCategories",
			criteria: NewFilterCriteria([]string{"fast-food", "sit-down"}, nil, nil, 0),
			want:     []string{"a", "b", "c", "d", "e", "f"},
		},
		{
			name:     "CuisineByType",
			criteria: NewFilterCriteria(nil, []string{"french"}, nil, 0),
			want:     []string{"e"},
		},
		{
			name:     "CuisineByName",
			criteria: NewFilterCriteria(nil, []string{"mexican"}, nil, 0),
			want:     []string{"d"},
		},
		{
			name:     "CuisineByVicinity",
			criteria: NewFilterCriteria(nil, []string{"chinese", "chinatown"}, nil, 0),
			want:     []string{"c"},
		},
		{
			name:     "CuisineUpperCaseInput",
			criteria: NewFilterCriteria(nil, []string{"ITALIAN"}, nil, 0),
			want:     []string{"a"},
		},
		{
			name:     "MultiplePrices",
			criteria: NewFilterCriteria(nil, nil, []string{"2", "4"}, 0),
			want:     []string{"a", "e"},
		},
		{
			name:     "MinRatingKeepsUnrated",
			criteria: NewFilterCriteria(nil, nil, nil, 4.5),
			want:     []string{"a", "c", "e"},
		},
		{
			name:     "Combined",
			criteria: NewFilterCriteria([]string{"sit-down"}, nil, []string{"1"}, 4),
			want:     []string{"d"},
		},
		{
			name: "AllMixedWithValuesMeansAll",
			criteria: FilterCriteria{
				Categories: []string{FilterAll, CategoryFastFood},
				Cuisines:   []string{"thai", FilterAll},
				Prices:     []string{FilterAll, "3"},
			},
			want: []string{"a", "b", "c", "d", "e", "f"},
		},
		{
			name:     "EmptyGroupsMeanAll",
			criteria: FilterCriteria{},
			want:     []string{"a", "b", "c", "d", "e", "f"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ids(ApplyFilters(sampleRestaurants(), tc.criteria)))
		})
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	criteria := []FilterCriteria{
		AllCriteria(),
		NewFilterCriteria([]string{"fast-food"}, nil, []string{"1"}, 0),
		NewFilterCriteria([]string{"sit-down"}, []string{"italian", "french"}, []string{"2", "4"}, 4),
		NewFilterCriteria(nil, []string{"mexican"}, []string{"1", "3"}, 3.5),
		NewFilterCriteria(nil, nil, []string{"1"}, 4.5),
	}

	for _, c := range criteria {
		once := ApplyFilters(sampleRestaurants(), c)
		twice := ApplyFilters(once, c)
		require.Equal(t, once, twice)
	}
}

func TestNewFilterCriteria(t *testing.T) {
	c := NewFilterCriteria([]string{" Fast-Food ", "", "fast-food"}, nil, SplitGroup("1,2"), 3)
	require.Equal(t, []string{"fast-food"}, c.Categories)
	require.Equal(t, []string{FilterAll}, c.Cuisines)
	require.Equal(t, []string{"1", "2"}, c.Prices)
	require.Equal(t, 3.0, c.MinRating)

	require.Nil(t, SplitGroup("  "))
}
