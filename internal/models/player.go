package models

import (
	"fmt"
	"math"
	"time"
)

// UnknownPlayerName is shown when the stats API has no Steam name for a player.
const UnknownPlayerName = "Unknown Player"

// PlayerStats are the aggregate counters the stats API keeps per player.
// Derived values are computed on demand and never stored.
type PlayerStats struct {
	Rating      int `json:"rating"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	TotalFrags  int `json:"totalFrags"`
	TotalDeaths int `json:"totalDeaths"`
}

func (s PlayerStats) MatchesPlayed() int {
	return s.Wins + s.Losses
}

// WinRate formats wins/matches as a percentage with two decimals, or "0%"
// when no matches were played.
func (s PlayerStats) WinRate() string {
	played := s.MatchesPlayed()
	if played <= 0 {
		return "0%"
	}
	return fixed2(float64(s.Wins)/float64(played)*100) + "%"
}

// KDRatio formats frags/deaths with two decimals. With zero deaths the raw
// frag count is shown instead of a division result.
func (s PlayerStats) KDRatio() string {
	if s.TotalDeaths == 0 {
		return fixed2(float64(s.TotalFrags))
	}
	return fixed2(float64(s.TotalFrags) / float64(s.TotalDeaths))
}

// fixed2 rounds half away from zero before formatting, so 3.125 shows as 3.13.
func fixed2(v float64) string {
	return fmt.Sprintf("%.2f", math.Round(v*100)/100)
}

// LeaderboardPlayer is one row of the global leaderboard.
type LeaderboardPlayer struct {
	ID        int64       `json:"id"`
	SteamID   string      `json:"steamID"`
	SteamName string      `json:"steamName"`
	AvatarURL string      `json:"avatarURL"`
	Country   string      `json:"country"`
	Stats     PlayerStats `json:"playerStats"`
}

// Player is a player profile. Its matches are fetched separately.
type Player struct {
	ID        int64       `json:"id"`
	SteamID   string      `json:"steamID"`
	SteamName string      `json:"steamName"`
	AvatarURL string      `json:"avatarURL"`
	Country   string      `json:"country"`
	Stats     PlayerStats `json:"playerStats"`
}

// PlayerMatch is a match summary reduced to one player's line.
type PlayerMatch struct {
	MatchID          int64  `json:"matchId"`
	ServerIP         string `json:"serverIp"`
	MatchDate        string `json:"matchDate"`
	MapName          string `json:"mapName"`
	Frags            int    `json:"frags"`
	Deaths           int    `json:"deaths"`
	RatingAfterMatch int    `json:"ratingAfterMatch"`
	RatingDelta      int    `json:"ratingDelta"`
}

// PlayerHistoryCapture is one rating snapshot.
type PlayerHistoryCapture struct {
	CapturedAt time.Time `json:"capturedAt"`
	Rating     int       `json:"rating"`
}

// SearchResult is a player matching a search query.
type SearchResult struct {
	ID        int64  `json:"id"`
	SteamID   string `json:"steamID"`
	SteamName string `json:"steamName"`
	AvatarURL string `json:"avatarURL"`
}

// RecentPlayer is a player profile someone opened recently on this server.
type RecentPlayer struct {
	PlayerID  int64     `json:"playerId"`
	SteamName string    `json:"steamName"`
	AvatarURL string    `json:"avatarURL"`
	Rating    int       `json:"rating"`
	Views     int       `json:"views"`
	ViewedAt  time.Time `json:"viewedAt"`
}
