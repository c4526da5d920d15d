package api

import (
	"net/http"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")

	recent := []models.RecentPlayer{}
	if s.RecentService != nil {
		players, err := s.RecentService.ListRecent(r.Context())
		if err != nil {
			log.Warn("failed to list recent players: %v", err)
		} else {
			recent = players
		}
	}

	s.render(w, r, http.StatusOK, "pages/home.html", pageData{
		"title":  s.translator(r).T("title.home"),
		"recent": recent,
	})
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	lang := r.FormValue("lang")
	if s.I18n.Supported(lang) {
		setLanguageCookie(w, lang)
		log.Debug("language switched: lang=%s", lang)
	} else {
		log.Warn("unsupported language requested: %q", lang)
	}
	http.Redirect(w, r, safeRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

// safeRedirect only allows local absolute paths.
func safeRedirect(target string) string {
	if len(target) == 0 || target[0] != '/' || (len(target) > 1 && (target[1] == '/' || target[1] == '\\')) {
		return "/"
	}
	return target
}
