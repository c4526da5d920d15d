package worker

import (
	"context"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/repository"
)

// RecordViewJob stores a profile view and trims the recent list to Keep entries.
type RecordViewJob struct {
	Repo   repository.RecentPlayerRepository
	Player models.RecentPlayer
	Keep   int
}

func (j *RecordViewJob) Name() string { return "record_view" }

func (j *RecordViewJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("player_id", j.Player.PlayerID)

	if err := j.Repo.Record(ctx, j.Player); err != nil {
		log.Error("failed to record view: %v", err)
		return err
	}
	if j.Keep > 0 {
		if err := j.Repo.Prune(ctx, j.Keep); err != nil {
			log.Warn("failed to prune recent players: %v", err)
			return err
		}
	}
	return nil
}
