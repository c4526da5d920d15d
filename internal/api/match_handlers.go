package api

import (
	"net/http"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/page"
	"github.com/agstats/shionweb/internal/services"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tr := s.translator(r)

	matchID, ok := parseID(chi.URLParam(r, "matchId"))
	if !ok {
		s.renderMessage(w, r, http.StatusBadRequest, "title.error", "match.missing_id")
		return
	}
	log := logger.FromContext(ctx).WithField("match_id", matchID)

	var state page.State[*services.MatchView]
	status := http.StatusOK

	state.Begin()
	view, err := s.MatchService.GetMatch(ctx, matchID)
	switch {
	case errors.HasCode(err, errors.ErrCodeNotFound):
		state.Fail(tr.T("error.match_missing"))
		status = http.StatusNotFound
	case err != nil:
		log.Warn("match unavailable: %v", err)
		state.Fail(tr.T("error.match"))
		status = http.StatusBadGateway
	default:
		state.Succeed(view)
	}

	s.render(w, r, status, "pages/match.html", pageData{
		"title":   tr.T("title.match", matchID),
		"matchId": matchID,
		"state":   state,
	})
}
