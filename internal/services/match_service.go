package services

import (
	"context"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/scoreboard"
	"github.com/agstats/shionweb/internal/shion"
)

// MatchView is a match together with its partitioned scoreboard.
type MatchView struct {
	Match *models.Match
	Board scoreboard.Board
}

// MatchService loads single matches
type MatchService interface {
	GetMatch(ctx context.Context, matchID int64) (*MatchView, error)
}

type matchService struct {
	api shion.API
}

// NewMatchService creates a new MatchService
func NewMatchService(api shion.API) MatchService {
	return &matchService{api: api}
}

func (s *matchService) GetMatch(ctx context.Context, matchID int64) (*MatchView, error) {
	log := logger.FromContext(ctx).WithField("match_id", matchID)
	log.Debug("loading match")

	if matchID <= 0 {
		return nil, errors.NewValidationError("matchId", "must be a positive integer")
	}

	match, err := s.api.FetchMatch(ctx, matchID)
	if err != nil {
		log.Error("failed to load match: %v", err)
		return nil, upstreamError("match", "match", matchID, err)
	}

	board := scoreboard.Build(match.MatchDetails)
	if board.Unassigned > 0 {
		log.Warn("%d match detail lines have an unrecognized model", board.Unassigned)
	}
	return &MatchView{Match: match, Board: board}, nil
}
