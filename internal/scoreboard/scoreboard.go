// Package scoreboard splits a match into its two sides for display.
package scoreboard

import (
	"fmt"
	"sort"

	"github.com/agstats/shionweb/internal/models"
)

// Team is one side of a match, sorted by frags descending.
type Team struct {
	Model   string
	Players []models.MatchDetails
	Frags   int
	Deaths  int
	Winner  bool
}

// Board is a match partitioned into blue and red sides.
type Board struct {
	Blue Team
	Red  Team
	// Unassigned counts detail lines whose model is neither blue nor red.
	// They appear on no side.
	Unassigned int
}

// Build partitions details by their model value. Only the exact values
// "blue" and "red" are recognized.
func Build(details []models.MatchDetails) Board {
	b := Board{
		Blue: Team{Model: models.ModelBlue},
		Red:  Team{Model: models.ModelRed},
	}
	for _, d := range details {
		switch d.Model {
		case models.ModelBlue:
			b.Blue.add(d)
		case models.ModelRed:
			b.Red.add(d)
		default:
			b.Unassigned++
		}
	}
	b.Blue.sort()
	b.Red.sort()

	b.Blue.Winner = b.Blue.Frags > b.Red.Frags
	b.Red.Winner = b.Red.Frags > b.Blue.Frags
	return b
}

func (t *Team) add(d models.MatchDetails) {
	t.Players = append(t.Players, d)
	t.Frags += d.Frags
	t.Deaths += d.Deaths
}

func (t *Team) sort() {
	sort.SliceStable(t.Players, func(i, j int) bool {
		return t.Players[i].Frags > t.Players[j].Frags
	})
}

// MatchType renders the side sizes, e.g. "2vs2".
func (b Board) MatchType() string {
	return fmt.Sprintf("%dvs%d", len(b.Blue.Players), len(b.Red.Players))
}

// Draw reports whether neither side out-fragged the other.
func (b Board) Draw() bool {
	return !b.Blue.Winner && !b.Red.Winner
}
