package service

import (
	"context"
	"strings"

	"love_space/internal/domain"
	"love_space/internal/metrics"
	"love_space/internal/repository"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type MessageService interface {
	Post(ctx context.Context, code, text, author, color string) (*domain.MessageView, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	roomRepo    repository.RoomRepository
	stateCache  repository.StateCacheRepository
	log         logger.Logger
}

func NewMessageService(repos *repository.Repositories, log logger.Logger) MessageService {
	return &messageService{
		messageRepo: repos.Message,
		roomRepo:    repos.Room,
		stateCache:  repos.StateCache,
		log:         log,
	}
}

func (s *messageService) Post(ctx context.Context, code, text, author, color string) (*domain.MessageView, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(author) == "" {
		return nil, apperrors.ErrMissingMessage
	}

	room, err := s.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// Цвет фиксируется в момент отправки и не пересчитывается
	// при последующей смене темы комнаты
	if color == "" {
		color = domain.DefaultMessageColor
	}

	message := &domain.Message{
		RoomID: room.ID,
		Text:   text,
		Author: author,
		Color:  color,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := s.stateCache.Invalidate(ctx, code); err != nil {
		s.log.Warn("Failed to invalidate room state after message", "error", err, "code", code)
	}

	metrics.MessagesPosted.Inc()

	view := message.View()
	return &view, nil
}
