package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"love_space/internal/domain"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

// Код unique_violation в PostgreSQL
const pgUniqueViolation = "23505"

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByCode(ctx context.Context, code string) (*domain.Room, error)
	UpdateThemeByCode(ctx context.Context, code, theme string) error
}

type roomRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewRoomRepository(db *pgxpool.Pool, log logger.Logger) RoomRepository {
	return &roomRepository{db: db, log: log}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (id, code, theme, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		room.ID, room.Code, room.Theme, room.CreatedAt,
	).Scan(&room.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrRoomExists
		}
		r.log.Error("Failed to create room", "error", err, "code", room.Code)
		return err
	}

	return nil
}

func (r *roomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	query := `
		SELECT id, code, theme, created_at
		FROM rooms
		WHERE code = $1
	`

	room := &domain.Room{}
	err := r.db.QueryRow(ctx, query, code).Scan(
		&room.ID, &room.Code, &room.Theme, &room.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		r.log.Error("Failed to get room by code", "error", err, "code", code)
		return nil, err
	}

	return room, nil
}

func (r *roomRepository) UpdateThemeByCode(ctx context.Context, code, theme string) error {
	query := `
		UPDATE rooms
		SET theme = $2
		WHERE code = $1
	`

	result, err := r.db.Exec(ctx, query, code, theme)
	if err != nil {
		r.log.Error("Failed to update room theme", "error", err, "code", code)
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
