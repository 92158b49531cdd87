package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eventdeck/domain/core/entities"
)

// MockEntityCache is a testify mock of the EntityCache port
type MockEntityCache struct {
	mock.Mock
}

func (m *MockEntityCache) Events(ctx context.Context) ([]entities.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Event), args.Error(1)
}

func (m *MockEntityCache) Categories(ctx context.Context) ([]entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Category), args.Error(1)
}

func (m *MockEntityCache) Users(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *MockEntityCache) InvalidateEvents() {
	m.Called()
}

func (m *MockEntityCache) InvalidateCategories() {
	m.Called()
}

func (m *MockEntityCache) InvalidateUsers() {
	m.Called()
}

func (m *MockEntityCache) PutEvent(event entities.Event) {
	m.Called(event)
}
