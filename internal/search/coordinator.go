// Package search coalesces incremental player searches per browser session.
//
// Each keystroke request takes a sequence token for its session, waits out the
// debounce window, and only reaches the stats API if no newer request arrived
// meanwhile. Results are committed only if the token is still the latest once
// the API answers, so a slow early response can never overwrite newer results.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
)

// ErrSuperseded is returned to a request overtaken by a newer one in the same session.
var ErrSuperseded = errors.New("search superseded by a newer query")

const (
	sessionTTL     = 10 * time.Minute
	sweepThreshold = 1024
)

// Func performs the actual lookup.
type Func func(ctx context.Context, query string) ([]models.SearchResult, error)

type session struct {
	seq      uint64
	lastSeen time.Time
}

type Coordinator struct {
	mu       sync.Mutex
	sessions map[string]*session
	debounce time.Duration
	minChars int
	search   Func
	log      *logger.Logger
}

func NewCoordinator(search Func, debounce time.Duration, minChars int) *Coordinator {
	if minChars < 1 {
		minChars = 1
	}
	return &Coordinator{
		sessions: make(map[string]*session),
		debounce: debounce,
		minChars: minChars,
		search:   search,
		log:      logger.Default().WithPrefix("search"),
	}
}

// MinChars is the shortest query that reaches the stats API.
func (c *Coordinator) MinChars() int {
	return c.minChars
}

// Query runs a debounced search for sessionID. Queries shorter than MinChars
// return no results without a lookup, and still cancel pending ones.
func (c *Coordinator) Query(ctx context.Context, sessionID, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	token := c.next(sessionID)
	log := logger.FromContext(ctx).WithPrefix("search").WithFields(map[string]any{
		"session": sessionID,
		"seq":     token,
	})

	if utf8.RuneCountInString(query) < c.minChars {
		log.Debug("query below %d characters, clearing results", c.minChars)
		return []models.SearchResult{}, nil
	}

	if c.debounce > 0 {
		timer := time.NewTimer(c.debounce)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if !c.isLatest(sessionID, token) {
		log.Debug("dropped during debounce")
		return nil, ErrSuperseded
	}

	results, err := c.search(ctx, query)
	if !c.isLatest(sessionID, token) {
		log.Debug("discarding out-of-order response")
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}

func (c *Coordinator) next(sessionID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if len(c.sessions) >= sweepThreshold {
		c.sweep(now)
	}
	s, ok := c.sessions[sessionID]
	if !ok {
		s = &session{}
		c.sessions[sessionID] = s
	}
	s.seq++
	s.lastSeen = now
	return s.seq
}

func (c *Coordinator) isLatest(sessionID string, token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[sessionID]
	return ok && s.seq == token
}

// sweep drops idle sessions. Caller holds c.mu.
func (c *Coordinator) sweep(now time.Time) {
	removed := 0
	for id, s := range c.sessions {
		if now.Sub(s.lastSeen) > sessionTTL {
			delete(c.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		c.log.Debug("swept %d idle search sessions", removed)
	}
}
