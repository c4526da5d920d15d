package mocks

import (
	"context"

	"github.com/agstats/shionweb/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockStatsAPI is a mock implementation of shion.API
type MockStatsAPI struct {
	mock.Mock
}

func (m *MockStatsAPI) FetchLeaderboard(ctx context.Context, page, limit int) ([]models.LeaderboardPlayer, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardPlayer), args.Error(1)
}

func (m *MockStatsAPI) FetchMatch(ctx context.Context, matchID int64) (*models.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockStatsAPI) FetchPlayer(ctx context.Context, playerID int64) (*models.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockStatsAPI) FetchPlayerMatches(ctx context.Context, playerID int64, page, limit int) ([]models.PlayerMatch, error) {
	args := m.Called(ctx, playerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerMatch), args.Error(1)
}

func (m *MockStatsAPI) FetchPlayerRatingHistory(ctx context.Context, playerID int64) ([]models.PlayerHistoryCapture, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerHistoryCapture), args.Error(1)
}

func (m *MockStatsAPI) SearchPlayers(ctx context.Context, query string) ([]models.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SearchResult), args.Error(1)
}
