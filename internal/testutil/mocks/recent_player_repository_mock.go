package mocks

import (
	"context"

	"github.com/agstats/shionweb/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockRecentPlayerRepository is a mock implementation of repository.RecentPlayerRepository
type MockRecentPlayerRepository struct {
	mock.Mock
}

func (m *MockRecentPlayerRepository) Record(ctx context.Context, player models.RecentPlayer) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockRecentPlayerRepository) List(ctx context.Context, limit int) ([]models.RecentPlayer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecentPlayer), args.Error(1)
}

func (m *MockRecentPlayerRepository) Prune(ctx context.Context, keep int) error {
	args := m.Called(ctx, keep)
	return args.Error(0)
}
