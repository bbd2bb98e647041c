package services

import (
	"context"

	"RestaurantRoulette/discovery"
	"RestaurantRoulette/models"

	"github.com/rs/zerolog/log"
)

// RestaurantService runs searches against the places source and drives the
// filter, sort and pick operations of a session.
type RestaurantService struct {
	places   PlacesSource
	sessions *SessionService
}

func NewRestaurantService(places PlacesSource, sessions *SessionService) *RestaurantService {
	return &RestaurantService{
		places:   places,
		sessions: sessions,
	}
}

// Search fetches nearby restaurants and stores them in the session.
// applied is false when a newer search finished first and these results were dropped.
func (s *RestaurantService) Search(ctx context.Context, sessionID string, req models.SearchRequest) (results []models.Restaurant, applied bool, err error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, false, err
	}

	position := req.Position()
	gen := session.BeginSearch()

	results, err = s.places.Nearby(ctx, NearbyQuery{
		Location: position,
		Radius:   req.Radius,
		Type:     req.Type,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return nil, false, err
	}

	applied = session.ApplyResults(gen, results, &position)
	log.Info().
		Str("session_id", sessionID).
		Int("results", len(results)).
		Bool("applied", applied).
		Msg("search completed")
	return results, applied, nil
}

// UpdatePosition sets the reference position used for distance sorting.
func (s *RestaurantService) UpdatePosition(sessionID string, position models.LatLng) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	session.SetPosition(position)
	return nil
}

// List filters and sorts the session results. A missing reference position on a
// distance sort is returned as err together with the unsorted views.
func (s *RestaurantService) List(sessionID string, criteria discovery.FilterCriteria, key discovery.SortKey) ([]models.RestaurantView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if e := log.Debug(); e.Enabled() {
		e.Interface("criteria", criteria).
			Interface("price_distribution", discovery.PriceDistribution(session.Results())).
			Msg("applying filters")
	}

	results, viewErr := session.View(criteria, key)
	if results == nil && viewErr != nil {
		return nil, viewErr
	}

	if e := log.Debug(); e.Enabled() {
		e.Interface("price_distribution", discovery.PriceDistribution(results)).
			Int("matches", len(results)).
			Msg("filtered price distribution")
	}
	return discovery.NewViews(results, session.Position()), viewErr
}

// Pick draws count random restaurants, optionally restricted by criteria.
func (s *RestaurantService) Pick(sessionID string, count int, criteria *discovery.FilterCriteria) ([]models.RestaurantView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	picks, err := session.Pick(count, criteria)
	recordPick("pick", err)
	if err != nil {
		return nil, err
	}
	return discovery.NewViews(picks, session.Position()), nil
}

// Shuffle replaces a single pick.
func (s *RestaurantService) Shuffle(sessionID string, slot int) ([]models.RestaurantView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	picks, err := session.Shuffle(slot)
	recordPick("shuffle", err)
	if err != nil {
		return nil, err
	}
	return discovery.NewViews(picks, session.Position()), nil
}

// Picks returns the current picks of the session.
func (s *RestaurantService) Picks(sessionID string) ([]models.RestaurantView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return discovery.NewViews(session.Picks(), session.Position()), nil
}
