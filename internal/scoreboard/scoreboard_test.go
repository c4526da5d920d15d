package scoreboard_test

import (
	"testing"

	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int64, model string, frags, deaths int) models.MatchDetails {
	return models.MatchDetails{PlayerID: id, Model: model, Frags: frags, Deaths: deaths}
}

func TestBuild_PartitionsAndSorts(t *testing.T) {
	board := scoreboard.Build([]models.MatchDetails{
		line(1, "blue", 5, 10),
		line(2, "red", 20, 3),
		line(3, "blue", 15, 4),
		line(4, "red", 1, 12),
	})

	require.Len(t, board.Blue.Players, 2)
	require.Len(t, board.Red.Players, 2)
	assert.Equal(t, int64(3), board.Blue.Players[0].PlayerID)
	assert.Equal(t, int64(2), board.Red.Players[0].PlayerID)

	assert.Equal(t, 20, board.Blue.Frags)
	assert.Equal(t, 14, board.Blue.Deaths)
	assert.Equal(t, 21, board.Red.Frags)
	assert.True(t, board.Red.Winner)
	assert.False(t, board.Blue.Winner)
	assert.Equal(t, "2vs2", board.MatchType())
	assert.Zero(t, board.Unassigned)
}

func TestBuild_UnrecognizedModelsAppearOnNoSide(t *testing.T) {
	details := []models.MatchDetails{
		line(1, "blue", 3, 1),
		line(2, "Blue", 3, 1),
		line(3, "red", 3, 1),
		line(4, "", 3, 1),
		line(5, "green", 3, 1),
	}

	board := scoreboard.Build(details)

	var union []int64
	for _, p := range append(board.Blue.Players, board.Red.Players...) {
		union = append(union, p.PlayerID)
	}
	assert.ElementsMatch(t, []int64{1, 3}, union)
	assert.Equal(t, 3, board.Unassigned)
	assert.Equal(t, "1vs1", board.MatchType())
}

func TestBuild_Draw(t *testing.T) {
	board := scoreboard.Build([]models.MatchDetails{
		line(1, "blue", 7, 7),
		line(2, "red", 7, 7),
	})
	assert.True(t, board.Draw())

	empty := scoreboard.Build(nil)
	assert.True(t, empty.Draw())
	assert.Equal(t, "0vs0", empty.MatchType())
}
