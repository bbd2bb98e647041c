package discovery

import (
	"sync"
	"time"

	"RestaurantRoulette/models"
)

// Session owns the state of one discovery flow: the latest result set, the
// reference position and the current picks. All methods are safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
	results   []models.Restaurant
	position  *models.LatLng

	picks        []models.Restaurant
	pickCriteria *FilterCriteria
	picker       *Picker

	issued   uint64
	accepted uint64
}

// NewSession creates an empty session that draws picks with picker.
func NewSession(id string, picker *Picker) *Session {
	if picker == nil {
		picker = NewPicker(nil)
	}
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		updatedAt: now,
		picker:    picker,
	}
}

// BeginSearch reserves a generation number for a search that is about to start.
func (s *Session) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.touch()
	return s.issued
}

// ApplyResults stores the results of the search identified by gen.
// Results of a search older than the last applied one are discarded and false is returned.
func (s *Session) ApplyResults(gen uint64, results []models.Restaurant, position *models.LatLng) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.accepted {
		return false
	}
	s.accepted = gen
	s.results = make([]models.Restaurant, len(results))
	copy(s.results, results)
	if position != nil {
		p := *position
		s.position = &p
	}
	s.touch()
	return true
}

// SetPosition updates the reference position used for distance sorting.
func (s *Session) SetPosition(position models.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = &position
	s.touch()
}

// Position returns a copy of the reference position, or nil when unknown.
func (s *Session) Position() *models.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positionLocked()
}

// Results returns a copy of the full result set.
func (s *Session) Results() []models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Restaurant, len(s.results))
	copy(out, s.results)
	return out
}

// View filters the result set and sorts what remains. A missing reference position on a
// distance sort is reported alongside the unsorted, filtered list.
func (s *Session) View(criteria FilterCriteria, key SortKey) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.results) == 0 {
		return nil, ErrDataUnavailable
	}
	s.touch()
	filtered := ApplyFilters(s.results, criteria)
	return SortRestaurants(filtered, key, s.position)
}

// Pick replaces the current picks with count random restaurants. When criteria is
// non-nil the draw is restricted to matching restaurants, and so are later shuffles.
func (s *Session) Pick(count int, criteria *FilterCriteria) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	picks, err := s.picker.Pick(poolFor(s.results, criteria), count)
	if err != nil {
		return nil, err
	}

	s.pickCriteria = nil
	if criteria != nil {
		c := *criteria
		s.pickCriteria = &c
	}
	s.picks = picks
	s.touch()
	return clonePicks(picks), nil
}

// Shuffle replaces the pick at slot with another restaurant drawn from the current
// results, filtered by the criteria of the last Pick. On failure the picks are left as they were.
func (s *Session) Shuffle(slot int) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.picker.Shuffle(poolFor(s.results, s.pickCriteria), s.picks, slot)
	if err != nil {
		return nil, err
	}
	s.picks = next
	s.touch()
	return clonePicks(next), nil
}

// Picks returns a copy of the current picks.
func (s *Session) Picks() []models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePicks(s.picks)
}

// Summary describes the session without copying its result set.
func (s *Session) Summary() models.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SessionSummary{
		ID:          s.ID,
		Position:    s.positionLocked(),
		ResultCount: len(s.results),
		PickCount:   len(s.picks),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.updatedAt,
	}
}

// IdleSince reports when the session was last used.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *Session) positionLocked() *models.LatLng {
	if s.position == nil {
		return nil
	}
	p := *s.position
	return &p
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func poolFor(results []models.Restaurant, criteria *FilterCriteria) []models.Restaurant {
	if criteria == nil {
		return results
	}
	return ApplyFilters(results, *criteria)
}

func clonePicks(picks []models.Restaurant) []models.Restaurant {
	out := make([]models.Restaurant, len(picks))
	copy(out, picks)
	return out
}
