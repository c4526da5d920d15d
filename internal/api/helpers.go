package api

import (
	"net/http"
	"strconv"
	"strings"
)

// parseID accepts only positive decimal ids.
func parseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// pager describes the previous/next links under a paged table. The stats API
// reports no totals, so a full page is taken to mean another may follow.
type pager struct {
	Page    int
	Size    int
	HasPrev bool
	HasNext bool
}

func newPager(page, size, got int) pager {
	return pager{
		Page:    page,
		Size:    size,
		HasPrev: page > 0,
		HasNext: got >= size,
	}
}
