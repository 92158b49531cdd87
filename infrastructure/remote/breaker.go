package remote

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"
	pkgerrors "eventdeck/pkg/errors"
)

// BreakerStore decorates a RemoteStore with a circuit breaker so a dead
// upstream fails fast instead of stacking up 30-second timeouts. Only
// transport failures count against the breaker; rejections the store
// itself produced (4xx, not-found) are the caller's problem, not an
// availability signal.
type BreakerStore struct {
	inner   ports.RemoteStore
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerStore wraps a store with circuit breaker protection
func NewBreakerStore(inner ports.RemoteStore, logger *zap.Logger) *BreakerStore {
	settings := gobreaker.Settings{
		Name:    "remote-store",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !pkgerrors.IsNetwork(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &BreakerStore{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (s *BreakerStore) execute(fn func() (any, error)) (any, error) {
	v, err := s.breaker.Execute(fn)
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, pkgerrors.NewNetworkError("store circuit open", err)
	}
	return v, err
}

// ListEvents retrieves the events collection through the breaker
func (s *BreakerStore) ListEvents(ctx context.Context) ([]entities.Event, error) {
	v, err := s.execute(func() (any, error) { return s.inner.ListEvents(ctx) })
	if err != nil {
		return nil, err
	}
	return v.([]entities.Event), nil
}

// GetEvent retrieves a single event through the breaker
func (s *BreakerStore) GetEvent(ctx context.Context, id int) (entities.Event, error) {
	v, err := s.execute(func() (any, error) { return s.inner.GetEvent(ctx, id) })
	if err != nil {
		return entities.Event{}, err
	}
	return v.(entities.Event), nil
}

// CreateEvent submits a new event through the breaker
func (s *BreakerStore) CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	v, err := s.execute(func() (any, error) { return s.inner.CreateEvent(ctx, event) })
	if err != nil {
		return entities.Event{}, err
	}
	return v.(entities.Event), nil
}

// UpdateEvent replaces an event record through the breaker
func (s *BreakerStore) UpdateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	v, err := s.execute(func() (any, error) { return s.inner.UpdateEvent(ctx, event) })
	if err != nil {
		return entities.Event{}, err
	}
	return v.(entities.Event), nil
}

// DeleteEvent removes an event through the breaker
func (s *BreakerStore) DeleteEvent(ctx context.Context, id int) error {
	_, err := s.execute(func() (any, error) { return nil, s.inner.DeleteEvent(ctx, id) })
	return err
}

// ListCategories retrieves the categories collection through the breaker
func (s *BreakerStore) ListCategories(ctx context.Context) ([]entities.Category, error) {
	v, err := s.execute(func() (any, error) { return s.inner.ListCategories(ctx) })
	if err != nil {
		return nil, err
	}
	return v.([]entities.Category), nil
}

// ListUsers retrieves the users collection through the breaker
func (s *BreakerStore) ListUsers(ctx context.Context) ([]entities.User, error) {
	v, err := s.execute(func() (any, error) { return s.inner.ListUsers(ctx) })
	if err != nil {
		return nil, err
	}
	return v.([]entities.User), nil
}

// CreateUser creates a user record through the breaker
func (s *BreakerStore) CreateUser(ctx context.Context, name string) (entities.User, error) {
	v, err := s.execute(func() (any, error) { return s.inner.CreateUser(ctx, name) })
	if err != nil {
		return entities.User{}, err
	}
	return v.(entities.User), nil
}

// DeleteUser removes a user record through the breaker
func (s *BreakerStore) DeleteUser(ctx context.Context, id int) error {
	_, err := s.execute(func() (any, error) { return nil, s.inner.DeleteUser(ctx, id) })
	return err
}
