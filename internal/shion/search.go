package shion

import (
	"context"
	"net/url"
	"strings"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
)

// SearchPlayers looks players up by partial Steam name.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	log := logger.FromContext(ctx).WithPrefix("shion").WithField("query", query)

	q := url.Values{}
	q.Set("query", query)

	var raw []playerDTO
	if err := c.getJSON(ctx, "/players/search", q, &raw); err != nil {
		log.Error("error searching players: %v", err)
		return nil, err
	}

	out := make([]models.SearchResult, 0, len(raw))
	for _, p := range raw {
		out = append(out, models.SearchResult{
			ID:        p.ID,
			SteamID:   p.SteamID,
			SteamName: steamName(p.SteamName),
			AvatarURL: p.SteamAvatarURL,
		})
	}
	return out, nil
}
