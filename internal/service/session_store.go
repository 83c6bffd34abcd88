package service

import (
	"context"
	"time"

	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/metrics"

	"emperror.dev/errors"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const ErrSessionNotFound = errors.Sentinel("session not found")

// SessionStore holds one ViewStateController per dashboard session. Sessions
// expire after ttl without access.
type SessionStore struct {
	fetcher  diseaseapi.Fetcher
	sessions *cache.Cache
}

func NewSessionStore(fetcher diseaseapi.Fetcher, ttl time.Duration) *SessionStore {
	sessions := cache.New(ttl, ttl/2)
	sessions.OnEvicted(func(string, interface{}) {
		metrics.ActiveSessions.Dec()
	})

	return &SessionStore{
		fetcher:  fetcher,
		sessions: sessions,
	}
}

// Create starts a session and runs its initial load. The session is kept even
// if part of the load failed; the error is returned alongside it.
func (s *SessionStore) Create(ctx context.Context) (string, *ViewStateController, error) {
	id := uuid.NewString()

	controller := NewViewStateController(s.fetcher)
	controller.Subscribe(NewLoggingObserver(id))

	s.sessions.SetDefault(id, controller)
	metrics.ActiveSessions.Inc()

	_, err := controller.LoadInitial(ctx)
	return id, controller, err
}

func (s *SessionStore) Get(id string) (*ViewStateController, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, errors.WithDetails(ErrSessionNotFound, "session", id)
	}

	controller := v.(*ViewStateController)
	// refresh expiry
	s.sessions.SetDefault(id, controller)
	return controller, nil
}

func (s *SessionStore) Delete(id string) error {
	if _, ok := s.sessions.Get(id); !ok {
		return errors.WithDetails(ErrSessionNotFound, "session", id)
	}
	s.sessions.Delete(id)
	return nil
}

func (s *SessionStore) Count() int {
	return s.sessions.ItemCount()
}
