package api

import (
	"bytes"
	"context"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/agstats/shionweb/internal/i18n"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/search"
	"github.com/agstats/shionweb/internal/services"
)

type Server struct {
	LeaderboardService services.LeaderboardService
	MatchService       services.MatchService
	PlayerService      services.PlayerService
	RecentService      services.RecentService
	Search             *search.Coordinator
	I18n               *i18n.Bundle
	Templates          *template.Template
	Static             fs.FS
	AssetPrefix        string
	CORSOrigins        []string
	// Ready reports whether backing stores answer; nil means always ready.
	Ready func(context.Context) error
}

type pageData map[string]any

// render executes the named template with the shared layout fields filled in.
// Output is buffered so a template failure never leaves a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	tr := translatorFromContext(r.Context())
	if tr == nil {
		tr = s.I18n.Resolve("", r.Header.Get("Accept-Language"))
	}
	data["tr"] = tr
	data["lang"] = tr.Lang()
	data["languages"] = s.I18n.Languages()
	data["assets"] = s.AssetPrefix
	data["path"] = r.URL.Path
	if s.Search != nil {
		data["searchMinChars"] = s.Search.MinChars()
	}
	if _, ok := data["title"]; !ok {
		data["title"] = tr.T("title.home")
	}

	log := logger.FromContext(r.Context())
	var buf bytes.Buffer
	if err := s.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderMessage shows a single translated message in place of page content.
func (s *Server) renderMessage(w http.ResponseWriter, r *http.Request, status int, titleKey, messageKey string) {
	tr := s.translator(r)
	s.render(w, r, status, "pages/message.html", pageData{
		"title":   tr.T(titleKey),
		"message": tr.T(messageKey),
	})
}

func (s *Server) translator(r *http.Request) *i18n.Translator {
	if tr := translatorFromContext(r.Context()); tr != nil {
		return tr
	}
	return s.I18n.Resolve(languageCookie(r), r.Header.Get("Accept-Language"))
}
