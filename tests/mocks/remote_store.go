package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eventdeck/domain/core/entities"
)

// MockRemoteStore is a testify mock of the RemoteStore port
type MockRemoteStore struct {
	mock.Mock
}

func (m *MockRemoteStore) ListEvents(ctx context.Context) ([]entities.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Event), args.Error(1)
}

func (m *MockRemoteStore) GetEvent(ctx context.Context, id int) (entities.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Event), args.Error(1)
}

func (m *MockRemoteStore) CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(entities.Event), args.Error(1)
}

func (m *MockRemoteStore) UpdateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(entities.Event), args.Error(1)
}

func (m *MockRemoteStore) DeleteEvent(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRemoteStore) ListCategories(ctx context.Context) ([]entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Category), args.Error(1)
}

func (m *MockRemoteStore) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *MockRemoteStore) CreateUser(ctx context.Context, name string) (entities.User, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(entities.User), args.Error(1)
}

func (m *MockRemoteStore) DeleteUser(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
