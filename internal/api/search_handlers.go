package api

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/search"
)

// handleSearch answers the navbar's incremental search. A request overtaken by
// a newer one from the same session gets 204 and no body.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	sessionID := searchSessionID(w, r)
	query := r.URL.Query().Get("q")

	results, err := s.Search.Query(ctx, sessionID, query)
	switch {
	case stderrors.Is(err, search.ErrSuperseded):
		w.WriteHeader(http.StatusNoContent)
		return
	case stderrors.Is(err, context.Canceled):
		log.Debug("search abandoned by client")
		return
	case err != nil:
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
