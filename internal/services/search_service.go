package services

import (
	"context"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/shion"
)

// SearchService looks players up by name
type SearchService interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

type searchService struct {
	api shion.API
}

// NewSearchService creates a new SearchService
func NewSearchService(api shion.API) SearchService {
	return &searchService{api: api}
}

func (s *searchService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("searching players: query=%q", query)

	results, err := s.api.SearchPlayers(ctx, query)
	if err != nil {
		log.Error("player search failed: %v", err)
		return nil, upstreamError("search", "players", query, err)
	}
	return results, nil
}
