package shion

import (
	"context"

	"github.com/agstats/shionweb/internal/models"
)

// API is the set of stats API operations the web pages depend on.
type API interface {
	FetchLeaderboard(ctx context.Context, page, limit int) ([]models.LeaderboardPlayer, error)
	FetchMatch(ctx context.Context, matchID int64) (*models.Match, error)
	FetchPlayer(ctx context.Context, playerID int64) (*models.Player, error)
	FetchPlayerMatches(ctx context.Context, playerID int64, page, limit int) ([]models.PlayerMatch, error)
	FetchPlayerRatingHistory(ctx context.Context, playerID int64) ([]models.PlayerHistoryCapture, error)
	SearchPlayers(ctx context.Context, query string) ([]models.SearchResult, error)
}

var _ API = (*Client)(nil)
