package shion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime accepts the timestamp shapes the stats API has used. Unparseable
// input yields the zero time and an error.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// FetchMatch returns the full scoreboard of one match.
func (c *Client) FetchMatch(ctx context.Context, matchID int64) (*models.Match, error) {
	log := logger.FromContext(ctx).WithPrefix("shion").WithField("match_id", matchID)

	var raw matchDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/matches/%d", matchID), nil, &raw); err != nil {
		log.Error("error fetching match: %v", err)
		return nil, err
	}

	played, err := parseTime(raw.MatchDate)
	if err != nil {
		log.Warn("match date left empty: %v", err)
	}

	details := make([]models.MatchDetails, 0, len(raw.MatchDetails))
	for _, d := range raw.MatchDetails {
		details = append(details, models.MatchDetails{
			PlayerID:    d.PlayerID,
			SteamName:   steamName(d.SteamName),
			SteamID:     d.SteamID,
			AvatarURL:   d.SteamAvatarURL,
			Frags:       d.Frags,
			Deaths:      d.Deaths,
			AveragePing: d.AveragePing,
			DamageDealt: d.DamageDealt,
			DamageTaken: d.DamageTaken,
			Model:       d.Model,
			RatingDelta: optRound(d.RatingDelta),
		})
	}

	log.Debug("fetched match with %d detail lines", len(details))
	return &models.Match{
		ID:           raw.ID,
		ServerIP:     raw.ServerIP,
		MatchDate:    played,
		MapName:      raw.MapName,
		MatchDetails: details,
	}, nil
}
