package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"love_space/internal/domain"
	"love_space/pkg/logger"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.Message, error)
}

type messageRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewMessageRepository(db *pgxpool.Pool, log logger.Logger) MessageRepository {
	return &messageRepository{db: db, log: log}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (room_id, text, author, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.RoomID, message.Text, message.Author, message.Color,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create message", "error", err, "room_id", message.RoomID)
		return err
	}

	return nil
}

// GetByRoom возвращает все сообщения комнаты по возрастанию created_at,
// равные метки упорядочены по id
func (r *messageRepository) GetByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.Message, error) {
	query := `
		SELECT id, room_id, text, author, color, created_at
		FROM messages
		WHERE room_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to get messages", "error", err, "room_id", roomID)
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		message := &domain.Message{}
		err := rows.Scan(
			&message.ID, &message.RoomID, &message.Text,
			&message.Author, &message.Color, &message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan message", "error", err)
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}
