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

func validCreateCommand() CreateEventCommand {
	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	return CreateEventCommand{
		Title:       "Jazz Night",
		Description: "An evening of live jazz",
		Location:    "Blue Note",
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		CreatedBy:   "Ada",
		CategoryIDs: []int{1},
	}
}

func newCreateHandler(store *mocks.MockRemoteStore, cache *mocks.MockEntityCache) *CreateEventHandler {
	logger := zap.NewNop()
	users := NewUserResolver(store, cache, logger)
	return NewCreateEventHandler(store, cache, users, validators.NewEventValidator(), logger, nil)
}

func TestCreateEventHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validCreateCommand()
	created := fixtures.NewEventBuilder().WithID(42).WithCreatedBy(7).Build()

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{fixtures.User(7, "Ada")}, nil)
	mockStore.On("CreateEvent", ctx, mock.MatchedBy(func(e entities.Event) bool {
		return e.Title == cmd.Title && e.CreatedBy == 7
	})).Return(created, nil)
	mockCache.On("InvalidateEvents").Return()

	handler := newCreateHandler(mockStore, mockCache)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 42, result.ID)
	mockStore.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCreateEventHandler_Handle_ValidationFailureNeverReachesStore(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validCreateCommand()
	cmd.Title = ""

	handler := newCreateHandler(mockStore, mockCache)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "title", pkgerrors.GetAppError(err).Field())
	mockStore.AssertNotCalled(t, "ListUsers", mock.Anything)
	mockStore.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "InvalidateEvents")
}

func TestCreateEventHandler_Handle_EqualTimesRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validCreateCommand()
	cmd.EndTime = cmd.StartTime

	handler := newCreateHandler(mockStore, mockCache)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "endTime", appErr.Field())
	assert.Contains(t, appErr.Message, "after startTime")
	mockStore.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestCreateEventHandler_Handle_NoCategoriesRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validCreateCommand()
	cmd.CategoryIDs = nil

	handler := newCreateHandler(mockStore, mockCache)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, "categoryIds", pkgerrors.GetAppError(err).Field())
	mockStore.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestCreateEventHandler_Handle_CreatesUnknownCreator(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validCreateCommand()
	cmd.CreatedBy = "Grace"
	created := fixtures.NewEventBuilder().WithID(43).WithCreatedBy(12).Build()

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{fixtures.User(7, "Ada")}, nil)
	mockStore.On("CreateUser", mock.Anything, "Grace").Return(fixtures.User(12, "Grace"), nil)
	mockStore.On("CreateEvent", ctx, mock.MatchedBy(func(e entities.Event) bool {
		return e.CreatedBy == 12
	})).Return(created, nil)
	mockCache.On("InvalidateUsers").Return()
	mockCache.On("InvalidateEvents").Return()

	handler := newCreateHandler(mockStore, mockCache)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 43, result.ID)
	mockStore.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCreateEventHandler_Handle_StoreFailureSkipsInvalidation(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	cmd := validCreateCommand()

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{fixtures.User(7, "Ada")}, nil)
	mockStore.On("CreateEvent", ctx, mock.Anything).
		Return(entities.Event{}, pkgerrors.NewNetworkError("store unreachable", nil))

	handler := newCreateHandler(mockStore, mockCache)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
	mockCache.AssertNotCalled(t, "InvalidateEvents")
}
