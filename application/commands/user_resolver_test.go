package commands

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eventdeck/domain/core/entities"
	"eventdeck/tests/fixtures"
	"eventdeck/tests/mocks"
)

func TestUserResolver_Resolve_ExistingUserReused(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{
		fixtures.User(7, "Ada"),
		fixtures.User(8, "Grace"),
	}, nil)

	resolver := NewUserResolver(mockStore, mockCache, zap.NewNop())

	// Act
	user, err := resolver.Resolve(ctx, "Ada")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	mockStore.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "InvalidateUsers")
}

func TestUserResolver_Resolve_MatchIsExactAndCaseSensitive(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{fixtures.User(7, "ada")}, nil)
	mockStore.On("CreateUser", mock.Anything, "Ada").Return(fixtures.User(9, "Ada"), nil)
	mockCache.On("InvalidateUsers").Return()

	resolver := NewUserResolver(mockStore, mockCache, zap.NewNop())

	// Act
	user, err := resolver.Resolve(ctx, "Ada")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9, user.ID)
	mockStore.AssertExpectations(t)
}

func TestUserResolver_Resolve_CreatesAndInvalidates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	mockStore.On("ListUsers", mock.Anything).Return([]entities.User{}, nil)
	mockStore.On("CreateUser", mock.Anything, "Grace").Return(fixtures.User(12, "Grace"), nil)
	mockCache.On("InvalidateUsers").Return()

	resolver := NewUserResolver(mockStore, mockCache, zap.NewNop())

	// Act
	user, err := resolver.Resolve(ctx, "Grace")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 12, user.ID)
	mockCache.AssertCalled(t, "InvalidateUsers")
}

func TestUserResolver_Resolve_ConcurrentCallsCollapse(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	started := make(chan struct{})
	release := make(chan struct{})
	mockStore.On("ListUsers", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return([]entities.User{}, nil).Once()
	mockStore.On("CreateUser", mock.Anything, "Grace").Return(fixtures.User(12, "Grace"), nil).Once()
	mockCache.On("InvalidateUsers").Return()

	resolver := NewUserResolver(mockStore, mockCache, zap.NewNop())

	// Act: a second resolution arrives while the first holds the list
	// call open; singleflight must issue one upstream sequence.
	var wg sync.WaitGroup
	results := make([]entities.User, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = resolver.Resolve(ctx, "Grace")
	}()
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = resolver.Resolve(ctx, "Grace")
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	// Assert
	for i := 0; i < 2; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 12, results[i].ID)
	}
	mockStore.AssertExpectations(t)
}

func TestUserResolver_Resolve_SharedResolveSurvivesFirstCallerCancel(t *testing.T) {
	// Arrange
	mockStore := new(mocks.MockRemoteStore)
	mockCache := new(mocks.MockEntityCache)

	started := make(chan struct{})
	release := make(chan struct{})
	mockStore.On("ListUsers", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return([]entities.User{}, nil).Once()
	mockStore.On("CreateUser", mock.Anything, "Grace").Return(fixtures.User(12, "Grace"), nil).Once()
	mockCache.On("InvalidateUsers").Return()

	resolver := NewUserResolver(mockStore, mockCache, zap.NewNop())

	// Act: the caller that started the resolution cancels while the list
	// call is held open; a second caller joins the same flight.
	firstCtx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := resolver.Resolve(firstCtx, "Grace")
		firstDone <- err
	}()
	<-started

	secondDone := make(chan struct{})
	var secondUser entities.User
	var secondErr error
	go func() {
		defer close(secondDone)
		secondUser, secondErr = resolver.Resolve(context.Background(), "Grace")
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	close(release)
	<-secondDone

	// Assert: the cancellation did not abort the shared resolution.
	require.NoError(t, secondErr)
	assert.Equal(t, 12, secondUser.ID)
	mockStore.AssertExpectations(t)
}
