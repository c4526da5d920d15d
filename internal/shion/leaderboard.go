package shion

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
)

// FetchLeaderboard returns one 1-based page of the global leaderboard.
func (c *Client) FetchLeaderboard(ctx context.Context, page, limit int) ([]models.LeaderboardPlayer, error) {
	log := logger.FromContext(ctx).WithPrefix("shion").WithFields(map[string]any{
		"page":  page,
		"limit": limit,
	})
	if page < 1 || limit < 1 {
		err := fmt.Errorf("%w: page and limit must be positive", ErrInvalidArgument)
		log.Error("error fetching leaderboard: %v", err)
		return nil, err
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var raw []playerDTO
	if err := c.getJSON(ctx, "/players/leaderboard", q, &raw); err != nil {
		log.Error("error fetching leaderboard: %v", err)
		return nil, err
	}

	out := make([]models.LeaderboardPlayer, 0, len(raw))
	for _, p := range raw {
		out = append(out, models.LeaderboardPlayer{
			ID:        p.ID,
			SteamID:   p.SteamID,
			SteamName: steamName(p.SteamName),
			AvatarURL: p.SteamAvatarURL,
			Country:   p.Country,
			Stats:     p.Stats.toModel(),
		})
	}

	log.Debug("fetched %d leaderboard rows", len(out))
	return out, nil
}
