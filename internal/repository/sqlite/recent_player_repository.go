package sqlite

import (
	"context"
	"database/sql"

	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/repository"
)

type recentPlayerRepository struct {
	db *sql.DB
}

// NewRecentPlayerRepository creates a RecentPlayerRepository backed by SQLite.
func NewRecentPlayerRepository(db *sql.DB) repository.RecentPlayerRepository {
	return &recentPlayerRepository{db: db}
}

func (r *recentPlayerRepository) Record(ctx context.Context, p models.RecentPlayer) error {
	log := logger.FromContext(ctx).WithPrefix("recent_repo")
	log.Debug("recording view: player_id=%d", p.PlayerID)

	query, args, err := sqlBuilder.
		Insert("recent_players").
		Columns("player_id", "steam_name", "avatar_url", "rating", "views", "viewed_at").
		Values(p.PlayerID, p.SteamName, p.AvatarURL, p.Rating, 1, p.ViewedAt.UTC()).
		Suffix(`ON CONFLICT(player_id) DO UPDATE SET
    steam_name = excluded.steam_name,
    avatar_url = excluded.avatar_url,
    rating = excluded.rating,
    views = recent_players.views + 1,
    viewed_at = excluded.viewed_at`).
		ToSql()
	if err != nil {
		log.Error("failed to build record query: %v", err)
		return err
	}

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to record view: %v", err)
			return err
		}
		return nil
	})
}

func (r *recentPlayerRepository) List(ctx context.Context, limit int) ([]models.RecentPlayer, error) {
	log := logger.FromContext(ctx).WithPrefix("recent_repo")
	if limit <= 0 {
		return []models.RecentPlayer{}, nil
	}

	query, args, err := sqlBuilder.
		Select("player_id", "steam_name", "avatar_url", "rating", "views", "viewed_at").
		From("recent_players").
		OrderBy("viewed_at DESC", "player_id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Error("failed to build list query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list recent players: %v", err)
		return nil, err
	}
	defer rows.Close()

	players := []models.RecentPlayer{}
	for rows.Next() {
		var p models.RecentPlayer
		if err := rows.Scan(&p.PlayerID, &p.SteamName, &p.AvatarURL, &p.Rating, &p.Views, &p.ViewedAt); err != nil {
			log.Error("failed to scan recent player row: %v", err)
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("found %d recent players", len(players))
	return players, nil
}

func (r *recentPlayerRepository) Prune(ctx context.Context, keep int) error {
	log := logger.FromContext(ctx).WithPrefix("recent_repo")
	if keep < 0 {
		keep = 0
	}

	query, args, err := sqlBuilder.
		Delete("recent_players").
		Where(`player_id NOT IN (
    SELECT player_id FROM recent_players
    ORDER BY viewed_at DESC, player_id DESC
    LIMIT ?
)`, keep).
		ToSql()
	if err != nil {
		log.Error("failed to build prune query: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to prune recent players: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Debug("pruned %d recent players", n)
	}
	return nil
}
