package shion

import (
	"math"
	"strings"

	"github.com/agstats/shionweb/internal/models"
)

type statsDTO struct {
	Rating      float64 `json:"rating"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	TotalFrags  int     `json:"total_frags"`
	TotalDeaths int     `json:"total_deaths"`
}

type playerDTO struct {
	ID             int64     `json:"id"`
	SteamID        string    `json:"steam_id"`
	SteamName      *string   `json:"steam_name"`
	SteamAvatarURL string    `json:"steam_avatar_url"`
	Country        string    `json:"country"`
	Stats          *statsDTO `json:"stats"`
}

type matchDetailDTO struct {
	PlayerID         int64    `json:"player_id"`
	SteamName        *string  `json:"steam_name"`
	SteamID          string   `json:"steam_id"`
	SteamAvatarURL   string   `json:"steam_avatar_url"`
	Frags            int      `json:"frags"`
	Deaths           int      `json:"deaths"`
	AveragePing      float64  `json:"average_ping"`
	DamageDealt      int      `json:"damage_dealt"`
	DamageTaken      int      `json:"damage_taken"`
	Model            string   `json:"model"`
	RatingDelta      *float64 `json:"rating_delta"`
	RatingAfterMatch *float64 `json:"rating_after_match"`
}

type matchDTO struct {
	ID               int64            `json:"id"`
	ServerIP         string           `json:"server_ip"`
	MatchDate        string           `json:"match_date"`
	MapName          string           `json:"map_name"`
	MatchDetails     []matchDetailDTO `json:"match_details"`
	RatingAfterMatch *float64         `json:"rating_after_match"`
	RatingDelta      *float64         `json:"rating_delta"`
}

type captureDTO struct {
	CapturedAt string  `json:"captured_at"`
	Rating     float64 `json:"rating"`
}

// round matches the rounding the stats UI has always shown: halves go up,
// so -2.5 becomes -2 and 2.5 becomes 3.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func floor(v float64) int {
	return int(math.Floor(v))
}

func optRound(v *float64) int {
	if v == nil {
		return 0
	}
	return round(*v)
}

func steamName(name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return models.UnknownPlayerName
	}
	return *name
}

func (s *statsDTO) toModel() models.PlayerStats {
	if s == nil {
		return models.PlayerStats{}
	}
	return models.PlayerStats{
		Rating:      round(s.Rating),
		Wins:        s.Wins,
		Losses:      s.Losses,
		TotalFrags:  s.TotalFrags,
		TotalDeaths: s.TotalDeaths,
	}
}
