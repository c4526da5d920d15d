package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	appErr := errors.As(err)

	log = log.WithError(appErr)
	if appErr.Status >= 500 {
		log.Error("server error")
	} else if appErr.Status >= 400 {
		log.Warn("client error")
	} else {
		log.Debug("request error")
	}

	if wantsJSON(r) {
		writeJSON(w, appErr.Status, map[string]any{
			"error": map[string]any{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	messageKey := "error.generic"
	if appErr.Code == errors.ErrCodeNotFound {
		messageKey = "error.not_found"
	}
	s.renderMessage(w, r, appErr.Status, "title.error", messageKey)
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.handleError(w, r, errors.NewNotFoundError("page", r.URL.Path))
}
