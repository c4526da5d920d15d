package api

import (
	"net/http"

	"github.com/agstats/shionweb/internal/display"
	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/page"
	"github.com/agstats/shionweb/internal/services"
)

type leaderboardRow struct {
	Position int
	Podium   bool
	Player   models.LeaderboardPlayer
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tr := s.translator(r)

	pageNum := queryInt(r, "page", 0)
	if pageNum < 0 {
		pageNum = 0
	}
	size := queryInt(r, "size", services.DefaultLeaderboardPageSize)
	if !services.ValidPageSize(size) {
		size = services.DefaultLeaderboardPageSize
	}
	log := logger.FromContext(ctx).WithFields(map[string]any{"page": pageNum, "size": size})

	var state page.State[[]leaderboardRow]
	status := http.StatusOK

	state.Begin()
	players, err := s.LeaderboardService.GetPage(ctx, pageNum, size)
	switch {
	case errors.HasCode(err, errors.ErrCodeValidation):
		log.Debug("rejected leaderboard request: %v", err)
		state.Fail(tr.T("error.bad_page"))
		status = http.StatusBadRequest
		pageNum = 0
	case err != nil:
		log.Warn("leaderboard unavailable: %v", err)
		state.Fail(tr.T("error.leaderboard"))
		status = http.StatusBadGateway
	default:
		rows := make([]leaderboardRow, len(players))
		for i, p := range players {
			pos := pageNum*size + i + 1
			rows[i] = leaderboardRow{
				Position: pos,
				Podium:   display.Podium(pos),
				Player:   p,
			}
		}
		state.Succeed(rows)
	}

	s.render(w, r, status, "pages/leaderboard.html", pageData{
		"title": tr.T("title.leaderboard"),
		"state": state,
		"pager": newPager(pageNum, size, len(state.Data)),
		"sizes": services.LeaderboardPageSizes,
	})
}
