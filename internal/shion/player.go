package shion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
)

// ErrInvalidArgument rejects a request before it reaches the network.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	defaultMatchesPage  = 1
	defaultMatchesLimit = 10
)

// FetchPlayer returns one player profile.
func (c *Client) FetchPlayer(ctx context.Context, playerID int64) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("shion").WithField("player_id", playerID)

	var raw playerDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/players/%d", playerID), nil, &raw); err != nil {
		log.Error("error fetching player data: %v", err)
		return nil, err
	}

	return &models.Player{
		ID:        raw.ID,
		SteamID:   raw.SteamID,
		SteamName: steamName(raw.SteamName),
		AvatarURL: raw.SteamAvatarURL,
		Country:   raw.Country,
		Stats:     raw.Stats.toModel(),
	}, nil
}

// FetchPlayerMatches returns a page of the player's matches, each reduced to
// the player's own line. Non-positive page or limit fall back to 1 and 10.
// A rating found on the player's detail line wins over the match-level one.
// RatingAfterMatch is floored while RatingDelta is rounded.
func (c *Client) FetchPlayerMatches(ctx context.Context, playerID int64, page, limit int) ([]models.PlayerMatch, error) {
	if page < 1 {
		page = defaultMatchesPage
	}
	if limit < 1 {
		limit = defaultMatchesLimit
	}
	log := logger.FromContext(ctx).WithPrefix("shion").WithFields(map[string]any{
		"player_id": playerID,
		"page":      page,
		"limit":     limit,
	})

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var raw []matchDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/players/%d/matches", playerID), q, &raw); err != nil {
		log.Error("error fetching player matches: %v", err)
		return nil, err
	}

	out := make([]models.PlayerMatch, 0, len(raw))
	for _, m := range raw {
		pm := models.PlayerMatch{
			MatchID:   m.ID,
			ServerIP:  m.ServerIP,
			MatchDate: m.MatchDate,
			MapName:   m.MapName,
		}

		afterMatch, delta := m.RatingAfterMatch, m.RatingDelta
		if d := findDetail(m.MatchDetails, playerID); d != nil {
			pm.Frags = d.Frags
			pm.Deaths = d.Deaths
			if d.RatingAfterMatch != nil {
				afterMatch = d.RatingAfterMatch
			}
			if d.RatingDelta != nil {
				delta = d.RatingDelta
			}
		} else {
			log.Warn("match %d has no detail line for player", m.ID)
		}
		if afterMatch != nil {
			pm.RatingAfterMatch = floor(*afterMatch)
		}
		pm.RatingDelta = optRound(delta)

		out = append(out, pm)
	}

	log.Debug("fetched %d player matches", len(out))
	return out, nil
}

// findDetail returns the first detail line belonging to playerID.
func findDetail(details []matchDetailDTO, playerID int64) *matchDetailDTO {
	for i := range details {
		if details[i].PlayerID == playerID {
			return &details[i]
		}
	}
	return nil
}

// FetchPlayerRatingHistory returns the player's rating captures, oldest first.
// The API answers either {"captures": [...]} or a bare array.
func (c *Client) FetchPlayerRatingHistory(ctx context.Context, playerID int64) ([]models.PlayerHistoryCapture, error) {
	log := logger.FromContext(ctx).WithPrefix("shion").WithField("player_id", playerID)

	var body json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/players/%d/rating_history", playerID), nil, &body); err != nil {
		log.Error("error fetching player rating history: %v", err)
		return nil, err
	}

	raw, err := decodeCaptures(body)
	if err != nil {
		log.Error("error decoding player rating history: %v", err)
		return nil, err
	}

	out := make([]models.PlayerHistoryCapture, 0, len(raw))
	for _, cp := range raw {
		at, err := parseTime(cp.CapturedAt)
		if err != nil {
			log.Warn("skipping capture: %v", err)
			continue
		}
		out = append(out, models.PlayerHistoryCapture{CapturedAt: at, Rating: round(cp.Rating)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.Before(out[j].CapturedAt)
	})

	log.Debug("fetched %d rating captures", len(out))
	return out, nil
}

func decodeCaptures(body json.RawMessage) ([]captureDTO, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var captures []captureDTO
	if trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &captures)
		return captures, err
	}
	var wrapped struct {
		Captures []captureDTO `json:"captures"`
	}
	err := json.Unmarshal(trimmed, &wrapped)
	return wrapped.Captures, err
}
