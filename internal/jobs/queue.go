package jobs

import "github.com/agstats/shionweb/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueRecordView(player models.RecentPlayer) error
}
