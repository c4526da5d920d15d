package shion_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/shion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves canned JSON bodies keyed by request path.
func fakeAPI(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) (*shion.Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		h, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return shion.New(srv.URL+"/", shion.WithTimeout(2*time.Second)), &hits
}

func jsonBody(body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestFetchLeaderboard_MapsRecords(t *testing.T) {
	var gotPage, gotLimit string
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/players/leaderboard": func(w http.ResponseWriter, r *http.Request) {
			gotPage = r.URL.Query().Get("page")
			gotLimit = r.URL.Query().Get("limit")
			jsonBody(`[
				{"id": 7, "steam_id": "STEAM_0:1:7", "steam_name": "albert", "steam_avatar_url": "https://a/7.png", "country": "se",
				 "stats": {"rating": 1499.5, "wins": 10, "losses": 5, "total_frags": 300, "total_deaths": 150}},
				{"id": 8, "steam_id": "STEAM_0:1:8", "steam_name": null, "stats": {"rating": 1000.49, "wins": 0, "losses": 0, "total_frags": 0, "total_deaths": 0}}
			]`)(w, r)
		},
	})

	players, err := client.FetchLeaderboard(context.Background(), 2, 50)
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "50", gotLimit)

	assert.Equal(t, models.LeaderboardPlayer{
		ID:        7,
		SteamID:   "STEAM_0:1:7",
		SteamName: "albert",
		AvatarURL: "https://a/7.png",
		Country:   "se",
		Stats:     models.PlayerStats{Rating: 1500, Wins: 10, Losses: 5, TotalFrags: 300, TotalDeaths: 150},
	}, players[0])

	assert.Equal(t, models.UnknownPlayerName, players[1].SteamName)
	assert.Equal(t, 1000, players[1].Stats.Rating)
}

func TestFetchLeaderboard_RejectsNonPositivePaging(t *testing.T) {
	client, hits := fakeAPI(t, nil)

	_, err := client.FetchLeaderboard(context.Background(), 0, 50)
	assert.ErrorIs(t, err, shion.ErrInvalidArgument)
	_, err = client.FetchLeaderboard(context.Background(), 1, 0)
	assert.ErrorIs(t, err, shion.ErrInvalidArgument)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestClient_PropagatesTransportErrors(t *testing.T) {
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/players/leaderboard": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		},
	})

	_, err := client.FetchLeaderboard(context.Background(), 1, 10)
	var apiErr *shion.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "database unavailable", apiErr.Body)

	_, err = client.FetchPlayer(context.Background(), 99)
	assert.ErrorIs(t, err, shion.ErrNotFound)
}

func TestClient_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := shion.New(srv.URL).FetchMatch(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, shion.ErrNotFound)
}

func TestFetchMatch_MapsScoreboard(t *testing.T) {
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/matches/31": jsonBody(`{
			"id": 31, "server_ip": "10.0.0.1:27015", "match_date": "2024-05-01T20:15:00Z", "map_name": "crossfire",
			"match_details": [
				{"player_id": 1, "steam_name": "blue1", "steam_id": "S1", "steam_avatar_url": "a1", "frags": 30, "deaths": 10,
				 "average_ping": 42.5, "damage_dealt": 3000, "damage_taken": 1500, "model": "blue", "rating_delta": 12.5},
				{"player_id": 2, "steam_name": "", "steam_id": "S2", "frags": 10, "deaths": 30, "model": "red", "rating_delta": -12.5}
			]}`),
	})

	match, err := client.FetchMatch(context.Background(), 31)
	require.NoError(t, err)

	assert.Equal(t, int64(31), match.ID)
	assert.Equal(t, "10.0.0.1:27015", match.ServerIP)
	assert.Equal(t, "crossfire", match.MapName)
	assert.True(t, match.MatchDate.Equal(time.Date(2024, 5, 1, 20, 15, 0, 0, time.UTC)))

	require.Len(t, match.MatchDetails, 2)
	first := match.MatchDetails[0]
	assert.Equal(t, "blue1", first.SteamName)
	assert.Equal(t, 42.5, first.AveragePing)
	assert.Equal(t, 3000, first.DamageDealt)
	assert.Equal(t, 13, first.RatingDelta)

	second := match.MatchDetails[1]
	assert.Equal(t, models.UnknownPlayerName, second.SteamName)
	assert.Equal(t, -12, second.RatingDelta)
}

func TestFetchMatch_AcceptsSpaceSeparatedDate(t *testing.T) {
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/matches/5": jsonBody(`{"id": 5, "match_date": "2023-12-31 23:59:00", "match_details": []}`),
	})

	match, err := client.FetchMatch(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 2023, match.MatchDate.Year())
	assert.Empty(t, match.MatchDetails)
}

func TestFetchPlayer(t *testing.T) {
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/players/42": jsonBody(`{"id": 42, "steam_id": "S42", "steam_name": null, "steam_avatar_url": "a42",
			"stats": {"rating": 1612.7, "wins": 3, "losses": 1, "total_frags": 80, "total_deaths": 0}}`),
	})

	player, err := client.FetchPlayer(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownPlayerName, player.SteamName)
	assert.Equal(t, 1613, player.Stats.Rating)
	assert.Equal(t, "80.00", player.Stats.KDRatio())
}

func TestFetchPlayerMatches_ReducesToPlayerLine(t *testing.T) {
	var gotPage, gotLimit string
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/players/42/matches": func(w http.ResponseWriter, r *http.Request) {
			gotPage = r.URL.Query().Get("page")
			gotLimit = r.URL.Query().Get("limit")
			jsonBody(`[
				{"id": 900, "server_ip": "1.2.3.4", "match_date": "2024-02-02T10:00:00Z", "map_name": "stalkyard",
				 "match_details": [
					{"player_id": 41, "frags": 9, "deaths": 9},
					{"player_id": 42, "frags": 5, "deaths": 2, "rating_after_match": 1500.9, "rating_delta": 12.4}
				 ]},
				{"id": 901, "map_name": "boot_camp", "rating_after_match": 1488.2, "rating_delta": -12.6,
				 "match_details": [{"player_id": 42, "frags": 1, "deaths": 4}]},
				{"id": 902, "map_name": "bounce", "match_details": []}
			]`)(w, r)
		},
	})

	matches, err := client.FetchPlayerMatches(context.Background(), 42, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "10", gotLimit)
	require.Len(t, matches, 3)

	assert.Equal(t, models.PlayerMatch{
		MatchID:          900,
		ServerIP:         "1.2.3.4",
		MatchDate:        "2024-02-02T10:00:00Z",
		MapName:          "stalkyard",
		Frags:            5,
		Deaths:           2,
		RatingAfterMatch: 1500,
		RatingDelta:      12,
	}, matches[0])

	assert.Equal(t, 1, matches[1].Frags)
	assert.Equal(t, 1488, matches[1].RatingAfterMatch)
	assert.Equal(t, -13, matches[1].RatingDelta)

	assert.Zero(t, matches[2].Frags)
	assert.Zero(t, matches[2].RatingAfterMatch)
}

func TestFetchPlayerRatingHistory(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "wrapped captures",
			body: `{"captures": [
				{"captured_at": "2024-03-02T00:00:00Z", "rating": 1510.5},
				{"captured_at": "2024-03-01T00:00:00Z", "rating": 1500.2}
			]}`,
		},
		{
			name: "bare array",
			body: `[
				{"captured_at": "2024-03-02T00:00:00Z", "rating": 1510.5},
				{"captured_at": "2024-03-01T00:00:00Z", "rating": 1500.2}
			]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
				"/players/3/rating_history": jsonBody(tt.body),
			})

			history, err := client.FetchPlayerRatingHistory(context.Background(), 3)
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, 1500, history[0].Rating)
			assert.Equal(t, 1511, history[1].Rating)
			assert.True(t, history[0].CapturedAt.Before(history[1].CapturedAt))
		})
	}
}

func TestFetchPlayerRatingHistory_Empty(t *testing.T) {
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/players/3/rating_history": jsonBody(`{"captures": []}`),
	})

	history, err := client.FetchPlayerRatingHistory(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSearchPlayers(t *testing.T) {
	var gotQuery string
	client, _ := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/players/search": func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("query")
			jsonBody(`[{"id": 1, "steam_id": "S1", "steam_name": "shion", "steam_avatar_url": "a1"},
				{"id": 2, "steam_id": "S2", "steam_name": null}]`)(w, r)
		},
	})

	results, err := client.SearchPlayers(context.Background(), "  shi ")
	require.NoError(t, err)
	assert.Equal(t, "shi", gotQuery)
	require.Len(t, results, 2)
	assert.Equal(t, models.SearchResult{ID: 1, SteamID: "S1", SteamName: "shion", AvatarURL: "a1"}, results[0])
	assert.Equal(t, models.UnknownPlayerName, results[1].SteamName)
}
