package services

import (
	"context"
	"math"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/shion"
)

// Page sizes offered by the leaderboard.
var LeaderboardPageSizes = []int{10, 25, 50, 100}

const DefaultLeaderboardPageSize = 50

// LeaderboardService loads ranked players page by page
type LeaderboardService interface {
	// GetPage loads the 0-based page of the given size.
	GetPage(ctx context.Context, page, size int) ([]models.LeaderboardPlayer, error)
}

type leaderboardService struct {
	api shion.API
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(api shion.API) LeaderboardService {
	return &leaderboardService{api: api}
}

func (s *leaderboardService) GetPage(ctx context.Context, page, size int) ([]models.LeaderboardPlayer, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading leaderboard: page=%d size=%d", page, size)

	if page < 0 {
		return nil, errors.NewValidationError("page", "must not be negative")
	}
	if !ValidPageSize(size) {
		return nil, errors.NewValidationError("size", "must be one of 10, 25, 50, 100")
	}
	if page > MaxPage(size) {
		return nil, errors.NewValidationError("page", "out of range")
	}

	players, err := s.api.FetchLeaderboard(ctx, page+1, size)
	if err != nil {
		log.Error("failed to load leaderboard: %v", err)
		return nil, upstreamError("leaderboard", "leaderboard", page, err)
	}
	return players, nil
}

// MaxPage is the last 0-based page whose row positions still fit in 32 bits.
func MaxPage(size int) int {
	if size <= 0 {
		return 0
	}
	return math.MaxInt32/size - 1
}

// ValidPageSize reports whether size is one of LeaderboardPageSizes.
func ValidPageSize(size int) bool {
	for _, s := range LeaderboardPageSizes {
		if s == size {
			return true
		}
	}
	return false
}
