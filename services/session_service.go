package services

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"RestaurantRoulette/discovery"
	"RestaurantRoulette/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is wrapped in the 404 returned for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// SessionService keeps discovery sessions in memory and expires idle ones.
type SessionService struct {
	mu        sync.RWMutex
	sessions  map[string]*discovery.Session
	ttl       time.Duration
	newPicker func() *discovery.Picker
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewSessionService creates the registry. With a positive ttl a janitor goroutine
// removes sessions idle for longer than ttl; call Stop to end it.
func NewSessionService(ttl time.Duration, newPicker func() *discovery.Picker) *SessionService {
	if newPicker == nil {
		newPicker = func() *discovery.Picker { return discovery.NewPicker(nil) }
	}
	s := &SessionService{
		sessions:  make(map[string]*discovery.Session),
		ttl:       ttl,
		newPicker: newPicker,
		stopCh:    make(chan struct{}),
	}
	if ttl > 0 {
		go s.cleanupSessions(cleanupInterval(ttl))
	}
	return s
}

func (s *SessionService) Create() *discovery.Session {
	session := discovery.NewSession(uuid.NewString(), s.newPicker())

	s.mu.Lock()
	s.sessions[session.ID] = session
	count := len(s.sessions)
	s.mu.Unlock()

	activeSessions.Set(float64(count))
	log.Debug().Str("session_id", session.ID).Msg("session created")
	return session
}

func (s *SessionService) Get(id string) (*discovery.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, utils.WrapError(http.StatusNotFound, "Session not found", ErrSessionNotFound)
	}
	return session, nil
}

func (s *SessionService) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return utils.WrapError(http.StatusNotFound, "Session not found", ErrSessionNotFound)
	}
	activeSessions.Set(float64(count))
	return nil
}

func (s *SessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ExpireIdle removes sessions idle since before cutoff and returns how many were removed.
func (s *SessionService) ExpireIdle(cutoff time.Time) int {
	s.mu.Lock()
	removed := 0
	for id, session := range s.sessions {
		if session.IdleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	activeSessions.Set(float64(count))
	return removed
}

// Stop ends the janitor goroutine.
func (s *SessionService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *SessionService) cleanupSessions(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.ExpireIdle(time.Now().Add(-s.ttl)); removed > 0 {
				log.Info().Int("removed", removed).Msg("expired idle sessions")
			}
		case <-s.stopCh:
			return
		}
	}
}

func cleanupInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
