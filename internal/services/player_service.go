package services

import (
	"context"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/shion"
)

const DefaultPlayerMatchesPageSize = 10

// PlayerService loads the three independent parts of a player profile
type PlayerService interface {
	GetPlayer(ctx context.Context, playerID int64) (*models.Player, error)
	GetRatingHistory(ctx context.Context, playerID int64) ([]models.PlayerHistoryCapture, error)
	// GetMatches loads the 0-based page of the player's recent matches.
	GetMatches(ctx context.Context, playerID int64, page, size int) ([]models.PlayerMatch, error)
}

type playerService struct {
	api shion.API
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(api shion.API) PlayerService {
	return &playerService{api: api}
}

func (s *playerService) GetPlayer(ctx context.Context, playerID int64) (*models.Player, error) {
	log := logger.FromContext(ctx).WithField("player_id", playerID)
	if playerID <= 0 {
		return nil, errors.NewValidationError("playerId", "must be a positive integer")
	}

	player, err := s.api.FetchPlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to load player: %v", err)
		return nil, upstreamError("player", "player", playerID, err)
	}
	return player, nil
}

func (s *playerService) GetRatingHistory(ctx context.Context, playerID int64) ([]models.PlayerHistoryCapture, error) {
	log := logger.FromContext(ctx).WithField("player_id", playerID)
	if playerID <= 0 {
		return nil, errors.NewValidationError("playerId", "must be a positive integer")
	}

	captures, err := s.api.FetchPlayerRatingHistory(ctx, playerID)
	if err != nil {
		log.Error("failed to load rating history: %v", err)
		return nil, upstreamError("rating history", "player", playerID, err)
	}
	return captures, nil
}

func (s *playerService) GetMatches(ctx context.Context, playerID int64, page, size int) ([]models.PlayerMatch, error) {
	log := logger.FromContext(ctx).WithField("player_id", playerID)
	if playerID <= 0 {
		return nil, errors.NewValidationError("playerId", "must be a positive integer")
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPlayerMatchesPageSize
	}
	if page > MaxPage(size) {
		return nil, errors.NewValidationError("page", "out of range")
	}

	matches, err := s.api.FetchPlayerMatches(ctx, playerID, page+1, size)
	if err != nil {
		log.Error("failed to load player matches: %v", err)
		return nil, upstreamError("player matches", "player", playerID, err)
	}
	return matches, nil
}
