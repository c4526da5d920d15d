package repository

import (
	"context"

	"github.com/agstats/shionweb/internal/models"
)

// RecentPlayerRepository stores the player profiles most recently opened on this server.
type RecentPlayerRepository interface {
	// Record inserts the player or bumps its view count and timestamp.
	Record(ctx context.Context, player models.RecentPlayer) error
	// List returns up to limit players, most recently viewed first.
	List(ctx context.Context, limit int) ([]models.RecentPlayer, error)
	// Prune keeps only the keep most recently viewed players.
	Prune(ctx context.Context, keep int) error
}
