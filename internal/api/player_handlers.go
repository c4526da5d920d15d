package api

import (
	"net/http"

	"github.com/agstats/shionweb/internal/chart"
	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/page"
	"github.com/agstats/shionweb/internal/services"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const (
	chartWidth  = 640
	chartHeight = 200
)

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tr := s.translator(r)

	playerID, ok := parseID(chi.URLParam(r, "playerId"))
	if !ok {
		s.renderMessage(w, r, http.StatusBadRequest, "title.error", "player.missing_id")
		return
	}

	pageNum := queryInt(r, "page", 0)
	if pageNum < 0 {
		pageNum = 0
	}
	size := queryInt(r, "size", services.DefaultPlayerMatchesPageSize)
	if size <= 0 {
		size = services.DefaultPlayerMatchesPageSize
	}
	log := logger.FromContext(ctx).WithField("player_id", playerID)

	var (
		profile page.State[*models.Player]
		history page.State[chart.Series]
		matches page.State[[]models.PlayerMatch]
	)
	var profileMissing bool
	profile.Begin()
	history.Begin()
	matches.Begin()

	// Each fetch owns its state slice; one failing never hides the others.
	var g errgroup.Group
	g.Go(func() error {
		p, err := s.PlayerService.GetPlayer(ctx, playerID)
		switch {
		case errors.HasCode(err, errors.ErrCodeNotFound):
			profileMissing = true
			profile.Fail(tr.T("error.player_missing"))
		case err != nil:
			log.Warn("profile unavailable: %v", err)
			profile.Fail(tr.T("error.player_profile"))
		default:
			profile.Succeed(p)
		}
		return nil
	})
	g.Go(func() error {
		captures, err := s.PlayerService.GetRatingHistory(ctx, playerID)
		if err != nil {
			log.Warn("rating history unavailable: %v", err)
			history.Fail(tr.T("error.player_history"))
			return nil
		}
		history.Succeed(chart.FromCaptures(captures))
		return nil
	})
	g.Go(func() error {
		list, err := s.PlayerService.GetMatches(ctx, playerID, pageNum, size)
		if errors.HasCode(err, errors.ErrCodeValidation) {
			matches.Fail(tr.T("error.bad_page"))
			return nil
		}
		if err != nil {
			log.Warn("player matches unavailable: %v", err)
			matches.Fail(tr.T("error.player_matches"))
			return nil
		}
		matches.Succeed(list)
		return nil
	})
	_ = g.Wait()

	status := http.StatusOK
	title := tr.T("title.error")
	if profile.Loaded() {
		title = tr.T("title.player", profile.Data.SteamName)
		if s.RecentService != nil {
			if err := s.RecentService.RecordView(ctx, profile.Data); err != nil {
				log.Debug("recent view not recorded: %v", err)
			}
		}
	} else if profileMissing {
		status = http.StatusNotFound
	}

	s.render(w, r, status, "pages/player.html", pageData{
		"title":       title,
		"playerId":    playerID,
		"profile":     profile,
		"history":     history,
		"chartPath":   history.Data.Path(chartWidth, chartHeight),
		"chartWidth":  chartWidth,
		"chartHeight": chartHeight,
		"matches":     matches,
		"pager":       newPager(pageNum, size, len(matches.Data)),
	})
}
