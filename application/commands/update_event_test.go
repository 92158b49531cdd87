package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eventdeck/domain/core/entities"
	"eventdeck/domain/core/validators"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/tests/fixtures"
	"eventdeck/tests/mocks"
)

func validUpdateCommand() UpdateEventCommand {
	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	return UpdateEventCommand{
		EventID:     1,
		Title:       "Jazz Night (moved)",
		Description: "An evening of live jazz",
		Location:    "Village Vanguard",
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		CreatedBy:   "Ada",
		CategoryIDs: []int{1},
	}
}

func newUpdateHandler(store *mocks.MockRemoteStore, cache *mocks.MockEntityCache) *UpdateEventHandler {
	logger := zap.NewNop()
	users := NewUserResolver(store, cache, logger)
	return NewUpdateEventHandler(store, cache, users, validators.NewEventValidator(), logger, nil)
}

func TestUpdateEventHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validUpdateCommand()
	updated := fixtures.NewEventBuilder().WithID(1).WithTitle(cmd.Title).WithCreatedBy(7).Build()

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{fixtures.User(7, "Ada")}, nil)
	mockStore.On("UpdateEvent", ctx, mock.MatchedBy(func(e entities.Event) bool {
		return e.ID == 1 && e.Title == cmd.Title && e.CreatedBy == 7
	})).Return(updated, nil)
	mockCache.On("PutEvent", updated).Return()

	handler := newUpdateHandler(mockStore, mockCache)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, cmd.Title, result.Title)
	mockStore.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	// The cached record is rewritten in place, no collection refetch.
	mockCache.AssertNotCalled(t, "InvalidateEvents")
}

func TestUpdateEventHandler_Handle_MissingIDRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validUpdateCommand()
	cmd.EventID = 0

	handler := newUpdateHandler(mockStore, mockCache)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	mockStore.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything)
}

func TestUpdateEventHandler_Handle_EqualTimesRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validUpdateCommand()
	cmd.EndTime = cmd.StartTime

	handler := newUpdateHandler(mockStore, mockCache)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "endTime", appErr.Field())
	assert.Contains(t, appErr.Message, "after startTime")
	mockStore.AssertNotCalled(t, "ListUsers", mock.Anything)
	mockStore.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "PutEvent", mock.Anything)
}

func TestUpdateEventHandler_Handle_StoreNotFoundPropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validUpdateCommand()

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{fixtures.User(7, "Ada")}, nil)
	mockStore.On("UpdateEvent", ctx, mock.Anything).
		Return(entities.Event{}, pkgerrors.NewNotFoundError("event"))

	handler := newUpdateHandler(mockStore, mockCache)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	mockCache.AssertNotCalled(t, "PutEvent", mock.Anything)
}
