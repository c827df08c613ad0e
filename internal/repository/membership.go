package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"love_space/pkg/logger"
)

type MembershipRepository interface {
	Upsert(ctx context.Context, roomID uuid.UUID, username string, joinedAt time.Time) error
	GetUsernames(ctx context.Context, roomID uuid.UUID) ([]string, error)
}

type membershipRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewMembershipRepository(db *pgxpool.Pool, log logger.Logger) MembershipRepository {
	return &membershipRepository{db: db, log: log}
}

// Upsert выполняет атомарный insert-or-update одним запросом: два
// одновременных join для одной пары (room, username) не создают дубликат,
// повторный join только обновляет joined_at.
func (r *membershipRepository) Upsert(ctx context.Context, roomID uuid.UUID, username string, joinedAt time.Time) error {
	query := `
		INSERT INTO room_users (room_id, username, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_id, username)
		DO UPDATE SET joined_at = EXCLUDED.joined_at
	`

	_, err := r.db.Exec(ctx, query, roomID, username, joinedAt)
	if err != nil {
		r.log.Error("Failed to upsert room user", "error", err, "room_id", roomID, "username", username)
		return err
	}

	return nil
}

func (r *membershipRepository) GetUsernames(ctx context.Context, roomID uuid.UUID) ([]string, error) {
	query := `
		SELECT username FROM room_users
		WHERE room_id = $1
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to get room users", "error", err, "room_id", roomID)
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			r.log.Error("Failed to scan room user", "error", err)
			return nil, err
		}
		usernames = append(usernames, username)
	}

	return usernames, nil
}
