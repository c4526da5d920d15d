package jobs

import (
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/repository"
	"github.com/agstats/shionweb/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool       *worker.Pool
	recentRepo repository.RecentPlayerRepository
	keep       int
}

// NewWorkerQueue creates a new WorkerQueue. keep bounds how many recent players are retained.
func NewWorkerQueue(pool *worker.Pool, recentRepo repository.RecentPlayerRepository, keep int) JobQueue {
	return &WorkerQueue{
		pool:       pool,
		recentRepo: recentRepo,
		keep:       keep,
	}
}

// EnqueueRecordView never blocks the request; a full queue drops the view.
func (q *WorkerQueue) EnqueueRecordView(player models.RecentPlayer) error {
	return q.pool.TrySubmit(&worker.RecordViewJob{
		Repo:   q.recentRepo,
		Player: player,
		Keep:   q.keep,
	})
}
