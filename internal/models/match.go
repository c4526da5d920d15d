package models

import "time"

// Side discriminator values on a match detail line.
const (
	ModelBlue = "blue"
	ModelRed  = "red"
)

// Match is a full scoreboard.
type Match struct {
	ID           int64          `json:"id"`
	ServerIP     string         `json:"serverIp"`
	MatchDate    time.Time      `json:"matchDate"`
	MapName      string         `json:"mapName"`
	MatchDetails []MatchDetails `json:"matchDetails"`
}

// MatchDetails is one player's stat line within a match. Player identity is
// denormalized so the scoreboard renders without a join.
type MatchDetails struct {
	PlayerID    int64   `json:"playerId"`
	SteamName   string  `json:"playerSteamName"`
	SteamID     string  `json:"playerSteamID"`
	AvatarURL   string  `json:"playerAvatarUrl"`
	Frags       int     `json:"frags"`
	Deaths      int     `json:"deaths"`
	AveragePing float64 `json:"averagePing"`
	DamageDealt int     `json:"damageDealt"`
	DamageTaken int     `json:"damageTaken"`
	Model       string  `json:"model"`
	RatingDelta int     `json:"ratingDelta"`
}
