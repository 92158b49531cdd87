package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eventdeck/domain/core/entities"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/tests/fixtures"
	"eventdeck/tests/mocks"
)

func TestBreakerStore_PassesThroughSuccess(t *testing.T) {
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockStore.On("ListEvents", ctx).Return([]entities.Event{fixtures.NewEventBuilder().Build()}, nil)

	store := NewBreakerStore(mockStore, zap.NewNop())

	events, err := store.ListEvents(ctx)

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestBreakerStore_OpensAfterConsecutiveNetworkFailures(t *testing.T) {
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockStore.On("ListEvents", ctx).Return(nil, pkgerrors.NewNetworkError("store unreachable", nil))

	store := NewBreakerStore(mockStore, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, err := store.ListEvents(ctx)
		require.Error(t, err)
	}

	// The next call fails fast without reaching the inner store.
	_, err := store.ListEvents(ctx)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
	assert.Contains(t, err.Error(), "circuit open")
	mockStore.AssertNumberOfCalls(t, "ListEvents", 5)
}

func TestBreakerStore_StoreRejectionsDoNotTrip(t *testing.T) {
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockStore.On("GetEvent", ctx, 99).Return(entities.Event{}, pkgerrors.NewNotFoundError("events"))

	store := NewBreakerStore(mockStore, zap.NewNop())

	for i := 0; i < 10; i++ {
		_, err := store.GetEvent(ctx, 99)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	}

	// Every call reached the inner store; not-found is not an
	// availability signal.
	mockStore.AssertNumberOfCalls(t, "GetEvent", 10)
}
