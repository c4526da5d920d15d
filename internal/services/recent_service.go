package services

import (
	"context"
	"time"

	"github.com/agstats/shionweb/internal/errors"
	"github.com/agstats/shionweb/internal/jobs"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/repository"
)

// RecentService tracks which player profiles were opened on this server
type RecentService interface {
	// RecordView queues the view; it does not wait for the write.
	RecordView(ctx context.Context, player *models.Player) error
	ListRecent(ctx context.Context) ([]models.RecentPlayer, error)
}

type recentService struct {
	recentRepo repository.RecentPlayerRepository
	jobQueue   jobs.JobQueue
	limit      int
	now        func() time.Time
}

// NewRecentService creates a new RecentService listing at most limit players
func NewRecentService(recentRepo repository.RecentPlayerRepository, jobQueue jobs.JobQueue, limit int) RecentService {
	return &recentService{
		recentRepo: recentRepo,
		jobQueue:   jobQueue,
		limit:      limit,
		now:        time.Now,
	}
}

func (s *recentService) RecordView(ctx context.Context, player *models.Player) error {
	log := logger.FromContext(ctx)
	if player == nil || player.ID <= 0 {
		return errors.NewValidationError("player", "missing id")
	}

	err := s.jobQueue.EnqueueRecordView(models.RecentPlayer{
		PlayerID:  player.ID,
		SteamName: player.SteamName,
		AvatarURL: player.AvatarURL,
		Rating:    player.Stats.Rating,
		ViewedAt:  s.now(),
	})
	if err != nil {
		log.Warn("failed to queue recent view: player_id=%d: %v", player.ID, err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *recentService) ListRecent(ctx context.Context) ([]models.RecentPlayer, error) {
	log := logger.FromContext(ctx)

	players, err := s.recentRepo.List(ctx, s.limit)
	if err != nil {
		log.Error("failed to list recent players: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return players, nil
}
